package persistence

import (
	"context"

	"github.com/jackc/pgx/v5"
	pkgerrors "github.com/pkg/errors"

	"github.com/houseworklog/houseworklog/modules/housework/domain/record"
	"github.com/houseworklog/houseworklog/pkg/composables"
)

var stagingColumns = []string{"date", "person_id", "task_id", "task_duration_minutes"}

type PgRecordRepository struct{}

func NewRecordRepository() record.Repository {
	return &PgRecordRepository{}
}

func (r *PgRecordRepository) Create(ctx context.Context, rec record.Record) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
INSERT INTO stg_fact_housework_tasks (date, person_id, task_id, task_duration_minutes)
VALUES ($1, $2, $3, $4)
`, rec.Date(), rec.PersonID(), rec.TaskID(), rec.DurationMinutes())
	if err != nil {
		return pkgerrors.Wrap(err, "failed to insert task record")
	}
	return nil
}

// BulkCreate inserts the whole batch with a single COPY.
func (r *PgRecordRepository) BulkCreate(ctx context.Context, records []record.Record) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}

	n, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"stg_fact_housework_tasks"},
		stagingColumns,
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			rec := records[i]
			return []any{rec.Date(), rec.PersonID(), rec.TaskID(), rec.DurationMinutes()}, nil
		}),
	)
	if err != nil {
		return 0, pkgerrors.Wrap(err, "failed to bulk insert task records")
	}
	return n, nil
}
