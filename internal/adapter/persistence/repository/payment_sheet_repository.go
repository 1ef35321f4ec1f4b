package repository

import (
	"context"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/persistence/sheetrow"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/infrastructure/sheets"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// PaymentSheetRepository persists Payment entities in the Payments sheet.
type PaymentSheetRepository struct {
	sheetTable
}

var (
	_ interfaces.IPaymentRepository  = (*PaymentSheetRepository)(nil)
	_ interfaces.ISchemaBootstrapper = (*PaymentSheetRepository)(nil)
)

func NewPaymentSheetRepository(store *sheets.Store, logger *zap.Logger) *PaymentSheetRepository {
	return &PaymentSheetRepository{newSheetTable(store, sheetrow.PaymentsTable, sheetrow.PaymentHeader, logger)}
}

func (r *PaymentSheetRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	row, err := sheetrow.EncodePayment(p)
	if err != nil {
		return entities.Payment{}, err
	}
	if err := r.store.Append(ctx, r.table, row); err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentSheetRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	return first(ctx, r.sheetTable, "id:"+id, sheets.FieldEquals("ID", id), sheetrow.DecodePayment)
}

func (r *PaymentSheetRepository) List(ctx context.Context) ([]entities.Payment, error) {
	recs, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	return decodeAll(r.sheetTable, recs, sheetrow.DecodePayment), nil
}

func (r *PaymentSheetRepository) UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) error {
	return r.store.UpdateField(ctx, r.table, id, "Status", string(status))
}
