package records

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/houseworklog/houseworklog/modules/housework/presentation/viewmodels"
)

// FormPage renders the single-page entry form: outcome messages, the
// manual record fields and the CSV upload control.
func FormPage(props *viewmodels.RecordFormPageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>Housework Log</title>`+
			`<link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css" rel="stylesheet">`+
			`</head><body><main class="container py-4" style="max-width:40rem">`+
			`<h1 class="h3 mb-4">Add Task Record</h1>`); err != nil {
			return err
		}

		if err := Messages(props.Messages).Render(ctx, w); err != nil {
			return err
		}
		if err := RecordForm(props).Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

// Messages renders the categorized outcome list from the previous request.
func Messages(messages []viewmodels.Message) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(messages) == 0 {
			return nil
		}
		if _, err := io.WriteString(w, `<div id="messages">`); err != nil {
			return err
		}
		for _, m := range messages {
			alert := fmt.Sprintf(`<div class="alert alert-%s" role="alert">%s</div>`,
				templ.EscapeString(m.Category), templ.EscapeString(m.Text))
			if _, err := io.WriteString(w, alert); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// RecordForm renders the entry form itself, repopulating submitted values
// and field-level errors on a failed validation pass.
func RecordForm(props *viewmodels.RecordFormPageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		form := props.Form
		if form == nil {
			form = &viewmodels.RecordFormVM{}
		}

		if _, err := io.WriteString(w, `<form method="post" action="`+templ.EscapeString(props.PostTo)+`" enctype="multipart/form-data" novalidate>`); err != nil {
			return err
		}

		if err := dateField(w, form.Date, props.Errors["Date"]); err != nil {
			return err
		}
		if err := selectField(w, "person", "Person", props.Persons, form.PersonID, props.Errors["PersonID"]); err != nil {
			return err
		}
		if err := selectField(w, "task", "Task", props.Tasks, form.TaskID, props.Errors["TaskID"]); err != nil {
			return err
		}
		if err := minutesField(w, form.DurationMinutes, props.Errors["DurationMinutes"]); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<div class="mb-3"><label class="form-label" for="file">Upload CSV</label>`+
			`<input class="form-control" type="file" id="file" name="file" accept=".csv"></div>`); err != nil {
			return err
		}

		_, err := io.WriteString(w, `<div class="d-flex gap-2">`+
			`<button class="btn btn-primary" type="submit" name="action" value="submit_record">Submit</button>`+
			`<button class="btn btn-secondary" type="submit" name="action" value="upload_csv">Upload CSV</button>`+
			`</div></form>`)
		return err
	})
}

func dateField(w io.Writer, value, fieldErr string) error {
	if _, err := io.WriteString(w, `<div class="mb-3"><label class="form-label" for="date">Date</label>`+
		`<input class="form-control" type="date" id="date" name="date" required value="`+templ.EscapeString(value)+`">`); err != nil {
		return err
	}
	return fieldError(w, fieldErr)
}

func minutesField(w io.Writer, value int, fieldErr string) error {
	if _, err := io.WriteString(w, `<div class="mb-3"><label class="form-label" for="task_duration_minutes">Minutes</label>`+
		`<input class="form-control" type="number" id="task_duration_minutes" name="task_duration_minutes" min="1" required value="`+
		templ.EscapeString(fmt.Sprintf("%d", value))+`">`); err != nil {
		return err
	}
	return fieldError(w, fieldErr)
}

func selectField(w io.Writer, name, label string, options []viewmodels.SelectOption, selected int, fieldErr string) error {
	if _, err := io.WriteString(w, `<div class="mb-3"><label class="form-label" for="`+name+`">`+
		templ.EscapeString(label)+`</label><select class="form-select" id="`+name+`" name="`+name+`" required>`); err != nil {
		return err
	}
	for _, opt := range options {
		sel := ""
		if opt.ID == selected {
			sel = " selected"
		}
		option := fmt.Sprintf(`<option value="%d"%s>%s</option>`, opt.ID, sel, templ.EscapeString(opt.Name))
		if _, err := io.WriteString(w, option); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, `</select>`); err != nil {
		return err
	}
	return fieldError(w, fieldErr)
}

func fieldError(w io.Writer, message string) error {
	if message != "" {
		if _, err := io.WriteString(w, `<div class="text-danger small">`+templ.EscapeString(message)+`</div>`); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</div>`)
	return err
}
