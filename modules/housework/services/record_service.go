package services

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/houseworklog/houseworklog/modules/housework/domain/person"
	"github.com/houseworklog/houseworklog/modules/housework/domain/record"
	"github.com/houseworklog/houseworklog/modules/housework/domain/task"
	"github.com/houseworklog/houseworklog/pkg/composables"
	"github.com/houseworklog/houseworklog/pkg/eventbus"
)

// RecordService runs the staging pipeline: truncate staging, insert the
// submission, populate the fact table, backfill the daily aggregate.
//
// The four steps execute inside a single transaction, so a failure at any
// point leaves the previous fact and aggregate state untouched. Runs are
// serialized with a mutex: two concurrent submissions otherwise race on
// the shared staging truncate.
type RecordService struct {
	mu        sync.Mutex
	persons   person.Repository
	tasks     task.Repository
	records   record.Repository
	pipeline  record.Pipeline
	ingestor  *CSVIngestor
	publisher eventbus.EventBus
	inTx      func(context.Context, func(context.Context) error) error
}

func NewRecordService(
	persons person.Repository,
	tasks task.Repository,
	records record.Repository,
	pipeline record.Pipeline,
	publisher eventbus.EventBus,
) *RecordService {
	return &RecordService{
		persons:   persons,
		tasks:     tasks,
		records:   records,
		pipeline:  pipeline,
		ingestor:  NewCSVIngestor(persons, tasks),
		publisher: publisher,
		inTx:      composables.InTx,
	}
}

// SubmitRecord stages one manually entered record and runs the pipeline.
// The referenced person and task must exist; person.ErrNotFound and
// task.ErrNotFound are returned before anything is written.
func (s *RecordService) SubmitRecord(ctx context.Context, dto *record.CreateDTO) (record.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entity, err := dto.ToEntity()
	if err != nil {
		return record.Record{}, err
	}

	err = s.inTx(ctx, func(txCtx context.Context) error {
		if _, err := s.persons.GetByID(txCtx, entity.PersonID()); err != nil {
			return err
		}
		if _, err := s.tasks.GetByID(txCtx, entity.TaskID()); err != nil {
			return err
		}
		if err := s.pipeline.TruncateStaging(txCtx); err != nil {
			return err
		}
		if err := s.records.Create(txCtx, entity); err != nil {
			return err
		}
		if err := s.pipeline.PopulateFact(txCtx); err != nil {
			return err
		}
		return s.pipeline.BackfillAggregate(txCtx)
	})
	if err != nil {
		return record.Record{}, err
	}

	s.publisher.Publish(&record.CreatedEvent{Record: entity})
	return entity, nil
}

// IngestCSV validates the upload and, when at least one row resolves,
// runs the pipeline with the batch. A batch with zero valid rows leaves
// the database completely untouched: the transaction carrying the
// truncate is rolled back rather than promoting an empty staging table
// into the fact table.
func (s *RecordService) IngestCSV(ctx context.Context, r io.Reader) (IngestResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result IngestResult
	err := s.inTx(ctx, func(txCtx context.Context) error {
		var err error
		result, err = s.ingestor.Ingest(txCtx, r)
		if err != nil {
			return err
		}
		if len(result.Records) == 0 {
			return errEmptyBatch
		}
		if err := s.pipeline.TruncateStaging(txCtx); err != nil {
			return err
		}
		if _, err := s.records.BulkCreate(txCtx, result.Records); err != nil {
			return err
		}
		if err := s.pipeline.PopulateFact(txCtx); err != nil {
			return err
		}
		return s.pipeline.BackfillAggregate(txCtx)
	})
	if errors.Is(err, errEmptyBatch) {
		return result, nil
	}
	if err != nil {
		return result, err
	}

	s.publisher.Publish(&record.BatchIngestedEvent{
		Inserted: result.Inserted(),
		Skipped:  result.Skipped(),
	})
	return result, nil
}

// errEmptyBatch aborts the ingest transaction without surfacing an error:
// "no valid rows" is an outcome, not a failure.
var errEmptyBatch = errors.New("no valid task records in batch")
