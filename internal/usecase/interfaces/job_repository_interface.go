package interfaces

import (
	"context"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
)

// IJobRepository abstracts spreadsheet persistence for Job.
type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	List(ctx context.Context) ([]entities.Job, error)
	ListByDate(ctx context.Context, date time.Time) ([]entities.Job, error)
	Update(ctx context.Context, j entities.Job) (entities.Job, error)
	UpdateStatus(ctx context.Context, id string, status entities.JobStatus) error
}
