package entities

import (
	"strings"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/apperr"
)

// Status enums are closed sets. Values outside the set are rejected at the
// form boundary and when decoding stored rows.

type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusContacted QuoteStatus = "contacted"
	QuoteStatusConverted QuoteStatus = "converted"
	QuoteStatusDeclined  QuoteStatus = "declined"
)

var QuoteStatuses = []QuoteStatus{QuoteStatusPending, QuoteStatusContacted, QuoteStatusConverted, QuoteStatusDeclined}

// legacyQuoteStatuses are values written by older admin screens.
var legacyQuoteStatuses = map[string]QuoteStatus{
	"lost":     QuoteStatusDeclined,
	"accepted": QuoteStatusConverted,
	"sent":     QuoteStatusContacted,
}

func ParseQuoteStatus(raw string) (QuoteStatus, error) {
	if s, ok := legacyQuoteStatuses[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s, nil
	}
	return parseEnum("status", raw, QuoteStatuses)
}

type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
	CustomerStatusDeleted  CustomerStatus = "deleted"
)

var CustomerStatuses = []CustomerStatus{CustomerStatusActive, CustomerStatusInactive, CustomerStatusDeleted}

func ParseCustomerStatus(raw string) (CustomerStatus, error) {
	return parseEnum("status", raw, CustomerStatuses)
}

type JobStatus string

const (
	JobStatusScheduled  JobStatus = "scheduled"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"
)

var JobStatuses = []JobStatus{JobStatusScheduled, JobStatusInProgress, JobStatusCompleted, JobStatusCancelled}

func ParseJobStatus(raw string) (JobStatus, error) {
	return parseEnum("status", raw, JobStatuses)
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

var PaymentStatuses = []PaymentStatus{PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded}

func ParsePaymentStatus(raw string) (PaymentStatus, error) {
	return parseEnum("status", raw, PaymentStatuses)
}

type PaymentMethod string

const (
	PaymentMethodCash        PaymentMethod = "cash"
	PaymentMethodCheck       PaymentMethod = "check"
	PaymentMethodCard        PaymentMethod = "card"
	PaymentMethodTransfer    PaymentMethod = "transfer"
	PaymentMethodMercadoPago PaymentMethod = "mercadopago"
)

var PaymentMethods = []PaymentMethod{PaymentMethodCash, PaymentMethodCheck, PaymentMethodCard, PaymentMethodTransfer, PaymentMethodMercadoPago}

func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	return parseEnum("method", raw, PaymentMethods)
}

// ParseYesNo decodes the yes/no flags used by the spreadsheet.
func ParseYesNo(field, raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0", "":
		return false, nil
	}
	return false, apperr.NewValidationError(field, "expected yes or no, got "+raw)
}

func YesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func parseEnum[T ~string](field, raw string, allowed []T) (T, error) {
	v := T(strings.ToLower(strings.TrimSpace(raw)))
	for _, a := range allowed {
		if v == a {
			return v, nil
		}
	}
	var zero T
	return zero, apperr.NewValidationError(field, "unknown value "+raw)
}
