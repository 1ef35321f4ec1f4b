package repository

import (
	"context"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/persistence/sheetrow"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/infrastructure/sheets"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// ActivitySheetRepository appends audit lines to Activity_Log.
type ActivitySheetRepository struct {
	sheetTable
}

var (
	_ interfaces.IActivityRepository = (*ActivitySheetRepository)(nil)
	_ interfaces.ISchemaBootstrapper = (*ActivitySheetRepository)(nil)
)

func NewActivitySheetRepository(store *sheets.Store, logger *zap.Logger) *ActivitySheetRepository {
	return &ActivitySheetRepository{newSheetTable(store, sheetrow.ActivityTable, sheetrow.ActivityHeader, logger)}
}

func (r *ActivitySheetRepository) Append(ctx context.Context, a entities.Activity) error {
	row, err := sheetrow.EncodeActivity(a)
	if err != nil {
		return err
	}
	return r.store.Append(ctx, r.table, row)
}
