package record

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/houseworklog/houseworklog/pkg/constants"
)

// CreateDTO carries one manually entered record from the form. Person and
// Task arrive as reference-data ids picked from the dropdowns.
type CreateDTO struct {
	Date            string `form:"date" validate:"required,datetime=2006-01-02"`
	PersonID        int    `form:"person" validate:"required"`
	TaskID          int    `form:"task" validate:"required"`
	DurationMinutes int    `form:"task_duration_minutes" validate:"required,gt=0"`
}

func (d *CreateDTO) Normalize() {
	d.Date = strings.TrimSpace(d.Date)
}

// Ok validates the DTO and returns a field → message map usable directly
// by the form template.
func (d *CreateDTO) Ok() (map[string]string, bool) {
	d.Normalize()

	errs := constants.Validate.Struct(d)
	if errs == nil {
		return map[string]string{}, true
	}

	fieldErrors := make(map[string]string)
	for _, err := range errs.(validator.ValidationErrors) {
		fieldErrors[err.Field()] = fieldMessage(err)
	}
	return fieldErrors, false
}

func (d *CreateDTO) ToEntity() (Record, error) {
	date, err := time.Parse(DateLayout, d.Date)
	if err != nil {
		return Record{}, err
	}
	return New(date, d.PersonID, d.TaskID, d.DurationMinutes), nil
}

func fieldMessage(err validator.FieldError) string {
	switch {
	case err.Field() == "DurationMinutes" && (err.Tag() == "gt" || err.Tag() == "required"):
		return "Minutes field should be greater than 0."
	case err.Tag() == "required":
		return "This field is required."
	case err.Tag() == "datetime":
		return fmt.Sprintf("Value must be a date in %s format.", DateLayout)
	default:
		return "Invalid value."
	}
}
