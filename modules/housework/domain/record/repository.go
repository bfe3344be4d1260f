package record

import "context"

type Repository interface {
	Create(ctx context.Context, r Record) error
	BulkCreate(ctx context.Context, records []Record) (int64, error)
}

// Pipeline wraps the three stored procedures that maintain the staging,
// fact and aggregate tables. Their internals live entirely in the
// database; the application only invokes them in order.
type Pipeline interface {
	TruncateStaging(ctx context.Context) error
	PopulateFact(ctx context.Context) error
	BackfillAggregate(ctx context.Context) error
}
