package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"

	"github.com/houseworklog/houseworklog/modules/housework/domain/person"
	"github.com/houseworklog/houseworklog/modules/housework/domain/record"
	"github.com/houseworklog/houseworklog/modules/housework/domain/task"
	"github.com/houseworklog/houseworklog/modules/housework/presentation/mappers"
	recordtemplates "github.com/houseworklog/houseworklog/modules/housework/presentation/templates/pages/records"
	"github.com/houseworklog/houseworklog/modules/housework/presentation/viewmodels"
	"github.com/houseworklog/houseworklog/modules/housework/services"
	"github.com/houseworklog/houseworklog/pkg/application"
	"github.com/houseworklog/houseworklog/pkg/composables"
	"github.com/houseworklog/houseworklog/pkg/configuration"
)

const (
	actionSubmitRecord = "submit_record"
	actionUploadCSV    = "upload_csv"
)

type RecordController struct {
	app      application.Application
	conf     *configuration.Configuration
	records  *services.RecordService
	dims     *services.DimensionService
	basePath string
}

func NewRecordController(app application.Application, conf *configuration.Configuration) application.Controller {
	return &RecordController{
		app:      app,
		conf:     conf,
		records:  app.Service(services.RecordService{}).(*services.RecordService),
		dims:     app.Service(services.DimensionService{}).(*services.DimensionService),
		basePath: "/",
	}
}

func (c *RecordController) Key() string {
	return c.basePath
}

func (c *RecordController) Register(r *mux.Router) {
	r.HandleFunc(c.basePath, c.Show).Methods(http.MethodGet)
	r.HandleFunc(c.basePath, c.Handle).Methods(http.MethodPost)
}

func (c *RecordController) Show(w http.ResponseWriter, r *http.Request) {
	messages, err := composables.UseFlashSlice[viewmodels.Message](w, r, c.conf.FlashCookieKey)
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Warn("failed to read flash messages")
	}

	form := &viewmodels.RecordFormVM{Date: time.Now().Format(record.DateLayout)}
	c.renderForm(w, r, form, map[string]string{}, messages)
}

// Handle dispatches a POST by its action field: a manual record, a CSV
// upload, or anything else, which re-renders the form with a generic
// invalid-action message.
func (c *RecordController) Handle(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(c.conf.MaxUploadSize); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	} else if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	switch r.FormValue("action") {
	case actionSubmitRecord:
		c.submitRecord(w, r)
	case actionUploadCSV:
		c.uploadCSV(w, r)
	default:
		c.renderForm(w, r, nil, map[string]string{}, []viewmodels.Message{
			viewmodels.Danger("Invalid action or form submission."),
		})
	}
}

func (c *RecordController) submitRecord(w http.ResponseWriter, r *http.Request) {
	dto, err := composables.UseForm(&record.CreateDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	form := &viewmodels.RecordFormVM{
		Date:            dto.Date,
		PersonID:        dto.PersonID,
		TaskID:          dto.TaskID,
		DurationMinutes: dto.DurationMinutes,
	}

	fieldErrors, ok := dto.Ok()
	if !ok {
		messages := []viewmodels.Message{viewmodels.Danger("Invalid action or form submission.")}
		if dto.DurationMinutes <= 0 {
			messages = append(messages, viewmodels.Danger("Minutes field should be greater than 0."))
		}
		c.renderForm(w, r, form, fieldErrors, messages)
		return
	}

	_, err = c.records.SubmitRecord(r.Context(), dto)
	switch {
	case errors.Is(err, person.ErrNotFound):
		c.renderForm(w, r, form, map[string]string{"PersonID": "Selected person is not known."}, nil)
		return
	case errors.Is(err, task.ErrNotFound):
		c.renderForm(w, r, form, map[string]string{"TaskID": "Selected task is not known."}, nil)
		return
	case err != nil:
		composables.UseLogger(r.Context()).WithError(err).Error("staging pipeline failed")
		c.flashAndRedirect(w, r, viewmodels.Danger(fmt.Sprintf("Error while running staging pipeline: %v", err)))
		return
	}

	c.flashAndRedirect(w, r, viewmodels.Success("Task record added successfully!"))
}

func (c *RecordController) uploadCSV(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		c.renderForm(w, r, nil, map[string]string{}, []viewmodels.Message{
			viewmodels.Danger("Invalid action or form submission."),
		})
		return
	}
	defer func() {
		_ = file.Close()
	}()

	// Disallowed extensions are rejected before any database work.
	if !allowedFile(header.Filename) {
		c.flashAndRedirect(w, r, viewmodels.Danger("Please upload a valid CSV file."))
		return
	}

	result, err := c.records.IngestCSV(r.Context(), file)

	messages := make([]viewmodels.Message, 0, len(result.RowErrors)+2)
	for _, rowErr := range result.RowErrors {
		messages = append(messages, viewmodels.Danger(rowErr.Message))
	}

	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("CSV ingestion failed")
		messages = append(messages, viewmodels.Danger(fmt.Sprintf("Error processing CSV: %v", err)))
		c.flashAndRedirect(w, r, messages...)
		return
	}

	if result.Inserted() > 0 {
		messages = append(messages, viewmodels.Success(fmt.Sprintf("Successfully inserted %d task records.", result.Inserted())))
	} else {
		messages = append(messages, viewmodels.Warning("No valid task records to insert."))
	}
	messages = append(messages, viewmodels.Success("CSV file processed successfully!"))

	c.flashAndRedirect(w, r, messages...)
}

func (c *RecordController) renderForm(
	w http.ResponseWriter,
	r *http.Request,
	form *viewmodels.RecordFormVM,
	fieldErrors map[string]string,
	messages []viewmodels.Message,
) {
	persons, err := c.dims.Persons(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	tasks, err := c.dims.Tasks(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	props := &viewmodels.RecordFormPageProps{
		Persons:  mappers.PersonsToOptions(persons),
		Tasks:    mappers.TasksToOptions(tasks),
		Form:     form,
		Errors:   fieldErrors,
		Messages: messages,
		PostTo:   c.basePath,
	}
	templ.Handler(recordtemplates.FormPage(props), templ.WithStreaming()).ServeHTTP(w, r)
}

func (c *RecordController) flashAndRedirect(w http.ResponseWriter, r *http.Request, messages ...viewmodels.Message) {
	payload, err := json.Marshal(messages)
	if err == nil {
		composables.SetFlash(w, c.conf.FlashCookieKey, payload)
	}
	http.Redirect(w, r, c.basePath, http.StatusFound)
}

func allowedFile(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".csv")
}
