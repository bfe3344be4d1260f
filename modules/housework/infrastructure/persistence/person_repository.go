package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	pkgerrors "github.com/pkg/errors"

	"github.com/houseworklog/houseworklog/modules/housework/domain/person"
	"github.com/houseworklog/houseworklog/pkg/composables"
)

type PgPersonRepository struct{}

func NewPersonRepository() person.Repository {
	return &PgPersonRepository{}
}

func (r *PgPersonRepository) GetAll(ctx context.Context) ([]person.Person, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `SELECT id, name FROM dim_person ORDER BY name`)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to list persons")
	}
	defer rows.Close()

	var out []person.Person
	for rows.Next() {
		var id int
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		out = append(out, person.Hydrate(id, name))
	}
	return out, rows.Err()
}

func (r *PgPersonRepository) GetByID(ctx context.Context, id int) (person.Person, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return person.Person{}, err
	}

	var name string
	err = tx.QueryRow(ctx, `SELECT name FROM dim_person WHERE id = $1`, id).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return person.Person{}, person.ErrNotFound
		}
		return person.Person{}, err
	}
	return person.Hydrate(id, name), nil
}
