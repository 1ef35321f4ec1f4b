package sheets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/apperr"
	"github.com/xuri/excelize/v2"
)

const defaultSheetName = "Sheet1"

// WorkbookBackend keeps the tables in a local .xlsx workbook. With an empty
// path the workbook lives in memory only.
type WorkbookBackend struct {
	mu   sync.Mutex
	file *excelize.File
	path string
}

var _ Backend = (*WorkbookBackend)(nil)

func NewWorkbookBackend(path string) (*WorkbookBackend, error) {
	if path == "" {
		return &WorkbookBackend{file: excelize.NewFile()}, nil
	}
	if _, err := os.Stat(path); err == nil {
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("open workbook %s: %w", path, err)
		}
		return &WorkbookBackend{file: f, path: path}, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	b := &WorkbookBackend{file: excelize.NewFile(), path: path}
	if err := b.save(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *WorkbookBackend) ListTables(_ context.Context) ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.file.GetSheetList(), nil
}

func (b *WorkbookBackend) CreateTable(_ context.Context, table string, _ int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	sheets := b.file.GetSheetList()
	if slices.Contains(sheets, table) {
		return nil
	}
	// Reuse the blank sheet a new workbook starts with.
	if len(sheets) == 1 && sheets[0] == defaultSheetName {
		rows, err := b.file.GetRows(defaultSheetName)
		if err == nil && len(rows) == 0 {
			if err := b.file.SetSheetName(defaultSheetName, table); err != nil {
				return apperr.Unavailable("create "+table, err)
			}
			return b.save()
		}
	}
	if _, err := b.file.NewSheet(table); err != nil {
		return apperr.Unavailable("create "+table, err)
	}
	return b.save()
}

func (b *WorkbookBackend) ReadAll(_ context.Context, table string) ([][]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.exists(table); err != nil {
		return nil, err
	}
	rows, err := b.file.GetRows(table)
	if err != nil {
		return nil, apperr.Unavailable("read "+table, err)
	}
	return rows, nil
}

func (b *WorkbookBackend) AppendRow(_ context.Context, table string, values []string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.exists(table); err != nil {
		return err
	}
	rows, err := b.file.GetRows(table)
	if err != nil {
		return apperr.Unavailable("append "+table, err)
	}
	if err := b.writeRow(table, len(rows)+1, values); err != nil {
		return err
	}
	return b.save()
}

func (b *WorkbookBackend) UpdateCell(_ context.Context, table string, row, col int, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.exists(table); err != nil {
		return err
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := b.file.SetCellStr(table, cell, value); err != nil {
		return apperr.Unavailable("update "+table, err)
	}
	return b.save()
}

func (b *WorkbookBackend) WriteRow(_ context.Context, table string, row int, values []string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.exists(table); err != nil {
		return err
	}
	if err := b.writeRow(table, row, values); err != nil {
		return err
	}
	return b.save()
}

// Close releases the workbook.
func (b *WorkbookBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.file.Close()
}

func (b *WorkbookBackend) writeRow(table string, row int, values []string) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := b.file.SetCellStr(table, cell, v); err != nil {
			return apperr.Unavailable("write "+table, err)
		}
	}
	return nil
}

func (b *WorkbookBackend) exists(table string) error {
	idx, err := b.file.GetSheetIndex(table)
	if err != nil || idx < 0 {
		return apperr.NotFound("table", table)
	}
	return nil
}

func (b *WorkbookBackend) save() error {
	if b.path == "" {
		return nil
	}
	if err := b.file.SaveAs(b.path); err != nil {
		return apperr.Unavailable("save workbook", err)
	}
	return nil
}
