package repository

import (
	"context"
	"strings"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/persistence/sheetrow"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/infrastructure/sheets"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// EmployeeSheetRepository persists Employee entities in the Employees sheet.
type EmployeeSheetRepository struct {
	sheetTable
}

var (
	_ interfaces.IEmployeeRepository = (*EmployeeSheetRepository)(nil)
	_ interfaces.ISchemaBootstrapper = (*EmployeeSheetRepository)(nil)
)

func NewEmployeeSheetRepository(store *sheets.Store, logger *zap.Logger) *EmployeeSheetRepository {
	return &EmployeeSheetRepository{newSheetTable(store, sheetrow.EmployeesTable, sheetrow.EmployeeHeader, logger)}
}

func (r *EmployeeSheetRepository) Create(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	row, err := sheetrow.EncodeEmployee(e)
	if err != nil {
		return entities.Employee{}, err
	}
	if err := r.store.Append(ctx, r.table, row); err != nil {
		return entities.Employee{}, err
	}
	return e, nil
}

func (r *EmployeeSheetRepository) GetByID(ctx context.Context, id string) (entities.Employee, error) {
	return first(ctx, r.sheetTable, "id:"+id, sheets.FieldEquals("ID", id), sheetrow.DecodeEmployee)
}

// GetByUsername reads fresh rows so a just-reset password is honored.
func (r *EmployeeSheetRepository) GetByUsername(ctx context.Context, username string) (entities.Employee, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return entities.Employee{}, nil
	}
	recs, err := r.store.Scan(ctx, r.table, func(rec sheets.Record) bool {
		return strings.EqualFold(strings.TrimSpace(rec.Get("Username")), username)
	})
	if err != nil {
		return entities.Employee{}, err
	}
	items := decodeAll(r.sheetTable, recs, sheetrow.DecodeEmployee)
	if len(items) == 0 {
		return entities.Employee{}, nil
	}
	return items[0], nil
}

func (r *EmployeeSheetRepository) List(ctx context.Context) ([]entities.Employee, error) {
	recs, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	return decodeAll(r.sheetTable, recs, sheetrow.DecodeEmployee), nil
}

func (r *EmployeeSheetRepository) Update(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	row, err := sheetrow.EncodeEmployee(e)
	if err != nil {
		return entities.Employee{}, err
	}
	if err := r.store.Replace(ctx, r.table, e.ID, row); err != nil {
		return entities.Employee{}, err
	}
	return e, nil
}

func (r *EmployeeSheetRepository) SetActive(ctx context.Context, id string, active bool) error {
	return r.store.UpdateField(ctx, r.table, id, "Active", entities.YesNo(active))
}

func (r *EmployeeSheetRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	return r.store.UpdateField(ctx, r.table, id, "Last_Login", at.UTC().Format(time.RFC3339))
}
