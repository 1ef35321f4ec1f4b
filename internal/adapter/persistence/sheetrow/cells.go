// Package sheetrow converts domain entities to and from positional
// spreadsheet rows. Every cell is plain text.
package sheetrow

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/apperr"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Layouts accepted when reading timestamps. Rows written by the previous
// tooling used naive ISO timestamps without a zone.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// CheckWidth fails when a row does not have exactly want fields.
func CheckWidth(table string, values []string, want int) error {
	if len(values) != want {
		return &apperr.SchemaMismatchError{Table: table, Want: want, Got: len(values)}
	}
	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func parseTime(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperr.NewValidationError(field, "invalid timestamp "+s)
}

// formatMoney renders with two decimals. Rounding happens here and nowhere
// upstream.
func formatMoney(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func formatNumber(v float64) string {
	if v == 0 {
		return ""
	}
	return decimal.NewFromFloat(v).String()
}

func parseNumber(field, s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, nil
	}
	v, err := cast.ToFloat64E(s)
	if err != nil {
		return 0, apperr.NewValidationError(field, "invalid number "+s)
	}
	return v, nil
}

// cell returns values[i] or "" for short rows. Sheet backends drop trailing
// empty cells.
func cell(values []string, i int) string {
	if i < len(values) {
		return strings.TrimSpace(values[i])
	}
	return ""
}

// indexOf maps header names to positions.
func indexOf(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[h] = i
	}
	return idx
}

// decoder collects the first error so callers can read every column in one pass.
type decoder struct {
	values []string
	idx    map[string]int
	err    error
}

func (d *decoder) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

func (d *decoder) str(field string) string {
	i, ok := d.idx[field]
	if !ok {
		return ""
	}
	return cell(d.values, i)
}

func (d *decoder) num(field string) float64 {
	v, err := parseNumber(field, d.str(field))
	if err != nil {
		d.fail(err)
	}
	return v
}

func (d *decoder) ts(field string) time.Time {
	v, err := parseTime(field, d.str(field))
	if err != nil {
		d.fail(err)
	}
	return v
}

func (d *decoder) json(field string, dst any) {
	raw := d.str(field)
	if raw == "" {
		return
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		d.fail(fmt.Errorf("%s: %w", field, err))
	}
}

func (d *decoder) yesNo(field string) bool {
	v, err := entities.ParseYesNo(field, d.str(field))
	if err != nil {
		d.fail(err)
	}
	return v
}

func (d *decoder) list(field string) []string {
	raw := d.str(field)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
