package repository

import (
	"context"
	"os"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/infrastructure/sheets"
	"go.uber.org/zap"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// sheetTable is the part every spreadsheet repository shares: the table it
// owns, its header and the store behind it.
type sheetTable struct {
	store  *sheets.Store
	table  string
	header []string
	logger *zap.Logger
}

func newSheetTable(store *sheets.Store, table string, header []string, logger *zap.Logger) sheetTable {
	if logger == nil {
		logger = zap.NewNop()
	}
	return sheetTable{store: store, table: table, header: header, logger: logger}
}

// Bootstrap makes sure the table exists with the expected header.
func (t sheetTable) Bootstrap(ctx context.Context) error {
	return t.store.EnsureSchema(ctx, t.table, t.header)
}

// decodeAll decodes records in sheet order. Rows that fail to decode are
// skipped with a warning so one bad row does not hide the rest of the table.
func decodeAll[T any](t sheetTable, recs []sheets.Record, decode func([]string) (T, error)) []T {
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		v, err := decode(rec.Values)
		if err != nil {
			t.logger.Warn("[sheets][repository] skipping undecodable row",
				zap.String("table", t.table), zap.Int("row", rec.Row), zap.Error(err))
			continue
		}
		out = append(out, v)
	}
	return out
}

// first returns the first decoded match of shape/pred or the zero value.
func first[T any](ctx context.Context, t sheetTable, shape string, pred sheets.Predicate, decode func([]string) (T, error)) (T, error) {
	var zero T
	recs, err := t.store.ScanCached(ctx, t.table, shape, pred)
	if err != nil {
		return zero, err
	}
	items := decodeAll(t, recs, decode)
	if len(items) == 0 {
		return zero, nil
	}
	return items[0], nil
}

func (t sheetTable) all(ctx context.Context) ([]sheets.Record, error) {
	return t.store.ScanCached(ctx, t.table, "all", nil)
}
