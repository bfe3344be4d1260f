package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/houseworklog/houseworklog/modules/housework/domain/person"
	"github.com/houseworklog/houseworklog/modules/housework/domain/task"
)

type mockPersonRepo struct {
	persons []person.Person
	err     error
}

func (m *mockPersonRepo) GetAll(ctx context.Context) ([]person.Person, error) {
	return m.persons, m.err
}

func (m *mockPersonRepo) GetByID(ctx context.Context, id int) (person.Person, error) {
	for _, p := range m.persons {
		if p.ID() == id {
			return p, nil
		}
	}
	return person.Person{}, person.ErrNotFound
}

type mockTaskRepo struct {
	tasks []task.Task
	err   error
}

func (m *mockTaskRepo) GetAll(ctx context.Context) ([]task.Task, error) {
	return m.tasks, m.err
}

func (m *mockTaskRepo) GetByID(ctx context.Context, id int) (task.Task, error) {
	for _, t := range m.tasks {
		if t.ID() == id {
			return t, nil
		}
	}
	return task.Task{}, task.ErrNotFound
}

func householdRepos() (*mockPersonRepo, *mockTaskRepo) {
	persons := &mockPersonRepo{persons: []person.Person{
		person.Hydrate(1, "Alice"),
		person.Hydrate(2, "Carol"),
	}}
	tasks := &mockTaskRepo{tasks: []task.Task{
		task.Hydrate(1, "Dishes"),
		task.Hydrate(2, "Laundry"),
	}}
	return persons, tasks
}

func TestCSVIngestor_ResolvesKnownRowsAndSkipsUnknownPerson(t *testing.T) {
	persons, tasks := householdRepos()
	ingestor := NewCSVIngestor(persons, tasks)

	csv := strings.Join([]string{
		"Date,Person,Task,Task Duration Minutes",
		"2024-01-15,Alice,Dishes,30",
		"2024-01-15,Bob,Dishes,20",
	}, "\n")

	result, err := ingestor.Ingest(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)

	require.Equal(t, 1, result.Inserted())
	require.Equal(t, 1, result.Skipped())

	rec := result.Records[0]
	require.Equal(t, 1, rec.PersonID())
	require.Equal(t, 1, rec.TaskID())
	require.Equal(t, 30, rec.DurationMinutes())
	require.Equal(t, "2024-01-15", rec.Date().Format("2006-01-02"))

	rowErr := result.RowErrors[0]
	require.Equal(t, 3, rowErr.Line)
	require.Equal(t, "Person", rowErr.Field)
	require.Equal(t, "Person 'Bob' not found in database.", rowErr.Message)
}

func TestCSVIngestor_ReportsEachInvalidRowWithItsLine(t *testing.T) {
	persons, tasks := householdRepos()
	ingestor := NewCSVIngestor(persons, tasks)

	csv := strings.Join([]string{
		"Date,Person,Task,Task Duration Minutes",
		"2024-01-15,Alice,Mopping,30",
		"not-a-date,Alice,Dishes,30",
		"2024-01-15,Alice,Dishes,thirty",
		"2024-01-15,Alice,Dishes,0",
		"2024-01-16,Carol,Laundry,45",
	}, "\n")

	result, err := ingestor.Ingest(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)

	require.Equal(t, 1, result.Inserted())
	require.Equal(t, 4, result.Skipped())

	require.Equal(t, "Task", result.RowErrors[0].Field)
	require.Equal(t, 2, result.RowErrors[0].Line)
	require.Equal(t, "Task 'Mopping' not found in database.", result.RowErrors[0].Message)

	require.Equal(t, "Date", result.RowErrors[1].Field)
	require.Equal(t, 3, result.RowErrors[1].Line)

	require.Equal(t, "Task Duration Minutes", result.RowErrors[2].Field)
	require.Equal(t, 4, result.RowErrors[2].Line)

	require.Equal(t, "Task Duration Minutes", result.RowErrors[3].Field)
	require.Equal(t, 5, result.RowErrors[3].Line)
	require.Equal(t, "Minutes field should be greater than 0.", result.RowErrors[3].Message)
}

func TestCSVIngestor_TrimsCellWhitespace(t *testing.T) {
	persons, tasks := householdRepos()
	ingestor := NewCSVIngestor(persons, tasks)

	csv := "Date,Person,Task,Task Duration Minutes\n 2024-01-15 , Alice , Dishes , 30 \n"

	result, err := ingestor.Ingest(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	require.Equal(t, 1, result.Inserted())
	require.Equal(t, 0, result.Skipped())
}

func TestCSVIngestor_BlankLinesDoNotShiftErrorLines(t *testing.T) {
	persons, tasks := householdRepos()
	ingestor := NewCSVIngestor(persons, tasks)

	csv := strings.Join([]string{
		"Date,Person,Task,Task Duration Minutes",
		"2024-01-15,Alice,Dishes,30",
		"",
		"2024-01-15,Bob,Dishes,20",
	}, "\n")

	result, err := ingestor.Ingest(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)

	require.Equal(t, 1, result.Inserted())
	require.Equal(t, 1, result.Skipped())
	require.Equal(t, 4, result.RowErrors[0].Line, "the skipped blank line must not shift the reported position")
	require.Equal(t, "Person 'Bob' not found in database.", result.RowErrors[0].Message)
}

func TestCSVIngestor_MissingColumnFailsTheBatch(t *testing.T) {
	persons, tasks := householdRepos()
	ingestor := NewCSVIngestor(persons, tasks)

	csv := "Date,Person,Task\n2024-01-15,Alice,Dishes\n"

	_, err := ingestor.Ingest(context.Background(), strings.NewReader(csv))
	require.Error(t, err)
}

func TestCSVIngestor_EmptyFileFailsTheBatch(t *testing.T) {
	persons, tasks := householdRepos()
	ingestor := NewCSVIngestor(persons, tasks)

	_, err := ingestor.Ingest(context.Background(), strings.NewReader(""))
	require.Error(t, err)
}
