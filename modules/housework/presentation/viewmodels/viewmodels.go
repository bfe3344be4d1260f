package viewmodels

// Message categories mirror the bootstrap alert classes the form renders.
const (
	CategorySuccess = "success"
	CategoryWarning = "warning"
	CategoryDanger  = "danger"
)

// Message is one human-readable outcome line surfaced after a request.
type Message struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

func Success(text string) Message { return Message{Category: CategorySuccess, Text: text} }
func Warning(text string) Message { return Message{Category: CategoryWarning, Text: text} }
func Danger(text string) Message  { return Message{Category: CategoryDanger, Text: text} }

// SelectOption is one dropdown entry built from reference data.
type SelectOption struct {
	ID   int
	Name string
}

// RecordFormVM carries the submitted values back into a re-rendered form.
type RecordFormVM struct {
	Date            string
	PersonID        int
	TaskID          int
	DurationMinutes int
}

type RecordFormPageProps struct {
	Persons  []SelectOption
	Tasks    []SelectOption
	Form     *RecordFormVM
	Errors   map[string]string
	Messages []Message
	PostTo   string
}
