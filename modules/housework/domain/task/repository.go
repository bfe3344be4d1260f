package task

import (
	"context"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("task not found")

type Repository interface {
	GetAll(ctx context.Context) ([]Task, error)
	GetByID(ctx context.Context, id int) (Task, error)
}
