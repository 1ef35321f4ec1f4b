// Package sheets is the only code that talks to the tabular store. Tables are
// sheets, the first row holds the column names and every record is a row.
package sheets

import "context"

// Backend is a remote or local spreadsheet. Row and column numbers are
// 1-based. Implementations wrap quota rejections as apperr.ErrRateLimited and
// connectivity or auth failures as apperr.ErrStoreUnavailable.
type Backend interface {
	ListTables(ctx context.Context) ([]string, error)
	CreateTable(ctx context.Context, table string, columns int) error
	ReadAll(ctx context.Context, table string) ([][]string, error)
	AppendRow(ctx context.Context, table string, values []string) error
	UpdateCell(ctx context.Context, table string, row, col int, value string) error
	WriteRow(ctx context.Context, table string, row int, values []string) error
}
