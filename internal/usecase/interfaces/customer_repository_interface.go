package interfaces

import (
	"context"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
)

// ICustomerRepository abstracts spreadsheet persistence for Customer.
type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	GetByEmail(ctx context.Context, email string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	UpdateStatus(ctx context.Context, id string, status entities.CustomerStatus) error
}
