package repository

import (
	"context"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/persistence/sheetrow"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/infrastructure/sheets"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// JobSheetRepository persists Job entities in the Jobs sheet.
type JobSheetRepository struct {
	sheetTable
}

var (
	_ interfaces.IJobRepository      = (*JobSheetRepository)(nil)
	_ interfaces.ISchemaBootstrapper = (*JobSheetRepository)(nil)
)

func NewJobSheetRepository(store *sheets.Store, logger *zap.Logger) *JobSheetRepository {
	return &JobSheetRepository{newSheetTable(store, sheetrow.JobsTable, sheetrow.JobHeader, logger)}
}

func (r *JobSheetRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	row, err := sheetrow.EncodeJob(j)
	if err != nil {
		return entities.Job{}, err
	}
	if err := r.store.Append(ctx, r.table, row); err != nil {
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobSheetRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	return first(ctx, r.sheetTable, "id:"+id, sheets.FieldEquals("ID", id), sheetrow.DecodeJob)
}

func (r *JobSheetRepository) List(ctx context.Context) ([]entities.Job, error) {
	recs, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	return decodeAll(r.sheetTable, recs, sheetrow.DecodeJob), nil
}

// ListByDate returns the jobs scheduled on date, cached per day.
func (r *JobSheetRepository) ListByDate(ctx context.Context, date time.Time) ([]entities.Job, error) {
	key := date.Format(entities.DateLayout)
	recs, err := r.store.ScanCached(ctx, r.table, "jobs_for_date:"+key, func(rec sheets.Record) bool {
		d := rec.Get("Date")
		return len(d) >= len(key) && d[:len(key)] == key
	})
	if err != nil {
		return nil, err
	}
	return decodeAll(r.sheetTable, recs, sheetrow.DecodeJob), nil
}

func (r *JobSheetRepository) Update(ctx context.Context, j entities.Job) (entities.Job, error) {
	row, err := sheetrow.EncodeJob(j)
	if err != nil {
		return entities.Job{}, err
	}
	if err := r.store.Replace(ctx, r.table, j.ID, row); err != nil {
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobSheetRepository) UpdateStatus(ctx context.Context, id string, status entities.JobStatus) error {
	fields := map[string]string{"Status": string(status)}
	if status == entities.JobStatusCompleted {
		fields["Completed"] = entities.YesNo(true)
	}
	return r.store.UpdateFields(ctx, r.table, id, fields)
}
