package persistence

import (
	"context"

	pkgerrors "github.com/pkg/errors"

	"github.com/houseworklog/houseworklog/modules/housework/domain/record"
	"github.com/houseworklog/houseworklog/pkg/composables"
)

// PgPipelineRepository invokes the stored procedures maintaining the
// staging, fact and aggregate tables. The procedures are opaque: assumed
// correct, idempotent and transactional on the database side.
type PgPipelineRepository struct{}

func NewPipelineRepository() record.Pipeline {
	return &PgPipelineRepository{}
}

func (r *PgPipelineRepository) TruncateStaging(ctx context.Context) error {
	return r.call(ctx, "truncate_stg_fact_housework_tasks")
}

func (r *PgPipelineRepository) PopulateFact(ctx context.Context) error {
	return r.call(ctx, "populate_fact_housework_tasks")
}

func (r *PgPipelineRepository) BackfillAggregate(ctx context.Context) error {
	return r.call(ctx, "backfill_agg_daily_housework_tasks")
}

func (r *PgPipelineRepository) call(ctx context.Context, procedure string) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, "CALL "+procedure+"()"); err != nil {
		return pkgerrors.Wrapf(err, "failed to call %s", procedure)
	}
	return nil
}
