package interfaces

import (
	"context"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
)

// INotifier sends quote notifications to the customer and the office.
type INotifier interface {
	NotifyQuote(ctx context.Context, q entities.Quote) error
}
