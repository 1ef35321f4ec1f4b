package repository

import (
	"context"
	"strings"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/persistence/sheetrow"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/infrastructure/sheets"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// CustomerSheetRepository persists Customer entities in the Customers sheet.
type CustomerSheetRepository struct {
	sheetTable
}

var (
	_ interfaces.ICustomerRepository = (*CustomerSheetRepository)(nil)
	_ interfaces.ISchemaBootstrapper = (*CustomerSheetRepository)(nil)
)

func NewCustomerSheetRepository(store *sheets.Store, logger *zap.Logger) *CustomerSheetRepository {
	return &CustomerSheetRepository{newSheetTable(store, sheetrow.CustomersTable, sheetrow.CustomerHeader, logger)}
}

func (r *CustomerSheetRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	row, err := sheetrow.EncodeCustomer(c)
	if err != nil {
		return entities.Customer{}, err
	}
	if err := r.store.Append(ctx, r.table, row); err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerSheetRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	return first(ctx, r.sheetTable, "id:"+id, sheets.FieldEquals("ID", id), sheetrow.DecodeCustomer)
}

// GetByEmail matches case-insensitively and ignores deleted customers.
func (r *CustomerSheetRepository) GetByEmail(ctx context.Context, email string) (entities.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return entities.Customer{}, nil
	}
	pred := func(rec sheets.Record) bool {
		return strings.EqualFold(strings.TrimSpace(rec.Get("Email")), email) &&
			rec.Get("Status") != string(entities.CustomerStatusDeleted)
	}
	return first(ctx, r.sheetTable, "email:"+email, pred, sheetrow.DecodeCustomer)
}

func (r *CustomerSheetRepository) List(ctx context.Context) ([]entities.Customer, error) {
	recs, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	return decodeAll(r.sheetTable, recs, sheetrow.DecodeCustomer), nil
}

func (r *CustomerSheetRepository) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	row, err := sheetrow.EncodeCustomer(c)
	if err != nil {
		return entities.Customer{}, err
	}
	if err := r.store.Replace(ctx, r.table, c.ID, row); err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerSheetRepository) UpdateStatus(ctx context.Context, id string, status entities.CustomerStatus) error {
	return r.store.UpdateField(ctx, r.table, id, "Status", string(status))
}
