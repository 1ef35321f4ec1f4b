package repository

import (
	"context"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/persistence/sheetrow"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/infrastructure/sheets"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// QuoteSheetRepository persists Quote entities in the Quotes sheet.
//
// Table requirements:
//   - header: sheetrow.QuoteHeader (37 columns, fixed order)
//   - ID column is the lookup key
type QuoteSheetRepository struct {
	sheetTable
}

var (
	_ interfaces.IQuoteRepository    = (*QuoteSheetRepository)(nil)
	_ interfaces.ISchemaBootstrapper = (*QuoteSheetRepository)(nil)
)

func NewQuoteSheetRepository(store *sheets.Store, logger *zap.Logger) *QuoteSheetRepository {
	return &QuoteSheetRepository{newSheetTable(store, sheetrow.QuotesTable, sheetrow.QuoteHeader, logger)}
}

func (r *QuoteSheetRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	row, err := sheetrow.EncodeQuote(q)
	if err != nil {
		return entities.Quote{}, err
	}
	if err := r.store.Append(ctx, r.table, row); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteSheetRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	return first(ctx, r.sheetTable, "id:"+id, sheets.FieldEquals("ID", id), sheetrow.DecodeQuote)
}

func (r *QuoteSheetRepository) List(ctx context.Context) ([]entities.Quote, error) {
	recs, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	return decodeAll(r.sheetTable, recs, sheetrow.DecodeQuote), nil
}

func (r *QuoteSheetRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	row, err := sheetrow.EncodeQuote(q)
	if err != nil {
		return entities.Quote{}, err
	}
	if err := r.store.Replace(ctx, r.table, q.ID, row); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteSheetRepository) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) error {
	return r.store.UpdateField(ctx, r.table, id, "Status", string(status))
}
