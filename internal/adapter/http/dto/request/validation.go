package request

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/apperr"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const formDateLayout = "2006-01-02"

// asValidationError turns the first ozzo field error (by field name) into an
// *apperr.ValidationError so handlers only deal with one error shape.
func asValidationError(err error) error {
	if err == nil {
		return nil
	}
	var errs validation.Errors
	if errors.As(err, &errs) {
		fields := make([]string, 0, len(errs))
		for f := range errs {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			if errs[f] != nil {
				return apperr.NewValidationError(f, errs[f].Error())
			}
		}
	}
	return apperr.NewValidationError("", err.Error())
}

// parseDate accepts an empty string as the zero time.
func parseDate(field, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(formDateLayout, raw)
	if err != nil {
		return time.Time{}, apperr.NewValidationError(field, "expected YYYY-MM-DD")
	}
	return t, nil
}

// splitList splits a comma separated form value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// validDate is an ozzo rule for optional YYYY-MM-DD values.
var validDate = validation.Date(formDateLayout)

// trimFields strips surrounding whitespace in place so rules see what the
// mapping functions will store.
func trimFields(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
