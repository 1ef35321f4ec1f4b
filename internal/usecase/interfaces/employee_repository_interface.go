package interfaces

import (
	"context"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
)

// IEmployeeRepository abstracts spreadsheet persistence for Employee.
type IEmployeeRepository interface {
	Create(ctx context.Context, e entities.Employee) (entities.Employee, error)
	GetByID(ctx context.Context, id string) (entities.Employee, error)
	GetByUsername(ctx context.Context, username string) (entities.Employee, error)
	List(ctx context.Context) ([]entities.Employee, error)
	Update(ctx context.Context, e entities.Employee) (entities.Employee, error)
	SetActive(ctx context.Context, id string, active bool) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}
