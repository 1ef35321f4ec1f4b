package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/apperr"
	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const defaultGridRows = 1000

// GoogleSheetsBackend stores tables as sheets of one Google spreadsheet.
// Values are written RAW so the text written is the text read back.
type GoogleSheetsBackend struct {
	svc           *sheets.Service
	spreadsheetID string
}

var _ Backend = (*GoogleSheetsBackend)(nil)

// NewGoogleSheetsBackend authenticates with a service account file. When
// spreadsheetID is empty a new spreadsheet titled title is created.
func NewGoogleSheetsBackend(ctx context.Context, credentialsFile, spreadsheetID, title string) (*GoogleSheetsBackend, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, apperr.Unavailable("sheets client", err)
	}
	if spreadsheetID == "" {
		ss, err := svc.Spreadsheets.Create(&sheets.Spreadsheet{
			Properties: &sheets.SpreadsheetProperties{Title: title},
		}).Context(ctx).Do()
		if err != nil {
			return nil, classify("create spreadsheet", err)
		}
		spreadsheetID = ss.SpreadsheetId
	}
	return &GoogleSheetsBackend{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// SpreadsheetID is the id in use, useful after creation.
func (b *GoogleSheetsBackend) SpreadsheetID() string {
	return b.spreadsheetID
}

func (b *GoogleSheetsBackend) ListTables(ctx context.Context) ([]string, error) {
	ss, err := b.svc.Spreadsheets.Get(b.spreadsheetID).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return nil, classify("list tables", err)
	}
	out := make([]string, 0, len(ss.Sheets))
	for _, sh := range ss.Sheets {
		if sh.Properties != nil {
			out = append(out, sh.Properties.Title)
		}
	}
	return out, nil
}

func (b *GoogleSheetsBackend) CreateTable(ctx context.Context, table string, columns int) error {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{
					Title: table,
					GridProperties: &sheets.GridProperties{
						RowCount:    defaultGridRows,
						ColumnCount: int64(columns),
					},
				},
			},
		}},
	}
	if _, err := b.svc.Spreadsheets.BatchUpdate(b.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return classify("create "+table, err)
	}
	return nil
}

func (b *GoogleSheetsBackend) ReadAll(ctx context.Context, table string) ([][]string, error) {
	vr, err := b.svc.Spreadsheets.Values.Get(b.spreadsheetID, sheetRange(table)).Context(ctx).Do()
	if err != nil {
		return nil, classify("read "+table, err)
	}
	rows := make([][]string, len(vr.Values))
	for i, r := range vr.Values {
		row := make([]string, len(r))
		for j, v := range r {
			row[j] = cast.ToString(v)
		}
		rows[i] = row
	}
	return rows, nil
}

func (b *GoogleSheetsBackend) AppendRow(ctx context.Context, table string, values []string) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{toInterfaces(values)}}
	_, err := b.svc.Spreadsheets.Values.Append(b.spreadsheetID, sheetRange(table), vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return classify("append "+table, err)
	}
	return nil
}

func (b *GoogleSheetsBackend) UpdateCell(ctx context.Context, table string, row, col int, value string) error {
	rng, err := cellRange(table, row, col)
	if err != nil {
		return err
	}
	vr := &sheets.ValueRange{Values: [][]interface{}{{value}}}
	if _, err := b.svc.Spreadsheets.Values.Update(b.spreadsheetID, rng, vr).ValueInputOption("RAW").Context(ctx).Do(); err != nil {
		return classify("update "+table, err)
	}
	return nil
}

func (b *GoogleSheetsBackend) WriteRow(ctx context.Context, table string, row int, values []string) error {
	rng, err := cellRange(table, row, 1)
	if err != nil {
		return err
	}
	vr := &sheets.ValueRange{Values: [][]interface{}{toInterfaces(values)}}
	if _, err := b.svc.Spreadsheets.Values.Update(b.spreadsheetID, rng, vr).ValueInputOption("RAW").Context(ctx).Do(); err != nil {
		return classify("write "+table, err)
	}
	return nil
}

// classify maps API failures onto the store error taxonomy.
func classify(op string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusTooManyRequests:
			return apperr.RateLimited(op, err)
		case http.StatusNotFound:
			return fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
		}
	}
	return apperr.Unavailable(op, err)
}

func sheetRange(table string) string {
	return "'" + strings.ReplaceAll(table, "'", "''") + "'"
}

func cellRange(table string, row, col int) (string, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}
	return sheetRange(table) + "!" + cell, nil
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
