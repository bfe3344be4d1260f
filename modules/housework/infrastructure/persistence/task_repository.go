package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	pkgerrors "github.com/pkg/errors"

	"github.com/houseworklog/houseworklog/modules/housework/domain/task"
	"github.com/houseworklog/houseworklog/pkg/composables"
)

type PgTaskRepository struct{}

func NewTaskRepository() task.Repository {
	return &PgTaskRepository{}
}

func (r *PgTaskRepository) GetAll(ctx context.Context) ([]task.Task, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `SELECT id, name FROM dim_task ORDER BY name`)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to list tasks")
	}
	defer rows.Close()

	var out []task.Task
	for rows.Next() {
		var id int
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		out = append(out, task.Hydrate(id, name))
	}
	return out, rows.Err()
}

func (r *PgTaskRepository) GetByID(ctx context.Context, id int) (task.Task, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return task.Task{}, err
	}

	var name string
	err = tx.QueryRow(ctx, `SELECT name FROM dim_task WHERE id = $1`, id).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrNotFound
		}
		return task.Task{}, err
	}
	return task.Hydrate(id, name), nil
}
