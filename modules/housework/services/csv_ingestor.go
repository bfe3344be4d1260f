package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	pkgerrors "github.com/pkg/errors"

	"github.com/houseworklog/houseworklog/modules/housework/domain/person"
	"github.com/houseworklog/houseworklog/modules/housework/domain/record"
	"github.com/houseworklog/houseworklog/modules/housework/domain/task"
)

func init() {
	// A CSV missing one of the expected header columns is a malformed
	// batch, not a silently zeroed field.
	gocsv.FailIfUnmatchedStructTags = true
}

// csvRow is the typed schema of one upload line. Date and duration stay
// strings here so coercion failures can be reported per row instead of
// aborting the whole decode.
type csvRow struct {
	Date            string `csv:"Date"`
	Person          string `csv:"Person"`
	Task            string `csv:"Task"`
	DurationMinutes string `csv:"Task Duration Minutes"`
}

// RowError describes why a single CSV row was skipped. Line is the
// 1-based position in the uploaded file where the row starts, as
// reported by the parser, so blank lines between records do not shift
// the numbering.
type RowError struct {
	Line    int
	Field   string
	Message string
}

func (e RowError) String() string {
	return fmt.Sprintf("Row %d: %s", e.Line, e.Message)
}

// IngestResult summarizes one CSV batch: how many staging records were
// built and which rows were skipped.
type IngestResult struct {
	Records   []record.Record
	RowErrors []RowError
}

func (r IngestResult) Inserted() int { return len(r.Records) }
func (r IngestResult) Skipped() int  { return len(r.RowErrors) }

// CSVIngestor resolves uploaded rows against the person and task
// reference data and converts them into staging records.
type CSVIngestor struct {
	persons person.Repository
	tasks   task.Repository
}

func NewCSVIngestor(persons person.Repository, tasks task.Repository) *CSVIngestor {
	return &CSVIngestor{persons: persons, tasks: tasks}
}

// Ingest parses and validates the upload. Reference lookups use maps
// built once per batch, not one query per row. A returned error means the
// batch as a whole was unusable; per-row problems land in the result and
// never abort the scan.
func (s *CSVIngestor) Ingest(ctx context.Context, r io.Reader) (IngestResult, error) {
	personsByName, err := s.personLookup(ctx)
	if err != nil {
		return IngestResult{}, err
	}
	tasksByName, err := s.taskLookup(ctx)
	if err != nil {
		return IngestResult{}, err
	}

	reader := newLineReader(r)
	var rows []csvRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return IngestResult{}, pkgerrors.Wrap(err, "failed to parse CSV")
	}

	var result IngestResult
	for i, row := range rows {
		line := reader.recordLine(i + 1) // record 0 is the header

		personID, ok := personsByName[strings.TrimSpace(row.Person)]
		if !ok {
			result.RowErrors = append(result.RowErrors, RowError{
				Line:    line,
				Field:   "Person",
				Message: fmt.Sprintf("Person '%s' not found in database.", strings.TrimSpace(row.Person)),
			})
			continue
		}

		taskID, ok := tasksByName[strings.TrimSpace(row.Task)]
		if !ok {
			result.RowErrors = append(result.RowErrors, RowError{
				Line:    line,
				Field:   "Task",
				Message: fmt.Sprintf("Task '%s' not found in database.", strings.TrimSpace(row.Task)),
			})
			continue
		}

		date, err := time.Parse(record.DateLayout, strings.TrimSpace(row.Date))
		if err != nil {
			result.RowErrors = append(result.RowErrors, RowError{
				Line:    line,
				Field:   "Date",
				Message: fmt.Sprintf("Date '%s' is not a valid %s date.", strings.TrimSpace(row.Date), record.DateLayout),
			})
			continue
		}

		minutes, err := strconv.Atoi(strings.TrimSpace(row.DurationMinutes))
		if err != nil {
			result.RowErrors = append(result.RowErrors, RowError{
				Line:    line,
				Field:   "Task Duration Minutes",
				Message: fmt.Sprintf("Task duration '%s' is not a whole number of minutes.", strings.TrimSpace(row.DurationMinutes)),
			})
			continue
		}
		if minutes <= 0 {
			result.RowErrors = append(result.RowErrors, RowError{
				Line:    line,
				Field:   "Task Duration Minutes",
				Message: "Minutes field should be greater than 0.",
			})
			continue
		}

		result.Records = append(result.Records, record.New(date, personID, taskID, minutes))
	}

	return result, nil
}

// lineReader remembers the file line each record starts on. The parser
// skips blank lines, so record indexes alone cannot recover file
// positions.
type lineReader struct {
	r     *csv.Reader
	lines []int
}

func newLineReader(in io.Reader) *lineReader {
	return &lineReader{r: csv.NewReader(in)}
}

func (l *lineReader) Read() ([]string, error) {
	rec, err := l.r.Read()
	if err != nil {
		return rec, err
	}
	line, _ := l.r.FieldPos(0)
	l.lines = append(l.lines, line)
	return rec, nil
}

func (l *lineReader) ReadAll() ([][]string, error) {
	var records [][]string
	for {
		rec, err := l.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}

func (l *lineReader) recordLine(i int) int {
	if i < len(l.lines) {
		return l.lines[i]
	}
	return i + 1
}

func (s *CSVIngestor) personLookup(ctx context.Context) (map[string]int, error) {
	all, err := s.persons.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	lookup := make(map[string]int, len(all))
	for _, p := range all {
		lookup[p.Name()] = p.ID()
	}
	return lookup, nil
}

func (s *CSVIngestor) taskLookup(ctx context.Context) (map[string]int, error) {
	all, err := s.tasks.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	lookup := make(map[string]int, len(all))
	for _, t := range all {
		lookup[t.Name()] = t.ID()
	}
	return lookup, nil
}
