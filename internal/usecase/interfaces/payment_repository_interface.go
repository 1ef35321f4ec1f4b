package interfaces

import (
	"context"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
)

// IPaymentRepository abstracts spreadsheet persistence for Payment.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	List(ctx context.Context) ([]entities.Payment, error)
	UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) error
}
