package services

import (
	"context"

	"github.com/houseworklog/houseworklog/modules/housework/domain/person"
	"github.com/houseworklog/houseworklog/modules/housework/domain/task"
)

// DimensionService reads the person and task reference data backing the
// form dropdowns and the CSV lookups.
type DimensionService struct {
	persons person.Repository
	tasks   task.Repository
}

func NewDimensionService(persons person.Repository, tasks task.Repository) *DimensionService {
	return &DimensionService{persons: persons, tasks: tasks}
}

func (s *DimensionService) Persons(ctx context.Context) ([]person.Person, error) {
	return s.persons.GetAll(ctx)
}

func (s *DimensionService) Tasks(ctx context.Context) ([]task.Task, error) {
	return s.tasks.GetAll(ctx)
}
