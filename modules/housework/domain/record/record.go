package record

import "time"

// DateLayout is the wire format of every date handled by the service:
// the manual form field, the CSV Date column and the staging table.
const DateLayout = "2006-01-02"

// Record is one staged fact of housework performed. Staging rows are
// ephemeral: truncated at the start of each pipeline run and fully
// replaced by the submitted batch.
type Record struct {
	date            time.Time
	personID        int
	taskID          int
	durationMinutes int
}

func New(date time.Time, personID, taskID, durationMinutes int) Record {
	return Record{
		date:            date,
		personID:        personID,
		taskID:          taskID,
		durationMinutes: durationMinutes,
	}
}

func (r Record) Date() time.Time      { return r.date }
func (r Record) PersonID() int        { return r.personID }
func (r Record) TaskID() int          { return r.taskID }
func (r Record) DurationMinutes() int { return r.durationMinutes }
