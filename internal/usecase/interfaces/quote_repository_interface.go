package interfaces

import (
	"context"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
)

// IQuoteRepository abstracts spreadsheet persistence for Quote.
//
// GetByID returns a zero Quote (empty ID) when no row matches.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) error
}
