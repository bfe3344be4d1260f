package person

import (
	"context"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("person not found")

type Repository interface {
	GetAll(ctx context.Context) ([]Person, error)
	GetByID(ctx context.Context, id int) (Person, error)
}
