package entities

import (
	"fmt"
	"time"
)

// Payment records money received for one or more jobs.
//
// ProviderReference keeps the Mercado Pago payment id when the charge went
// through the online gateway.
type Payment struct {
	ID                string
	CustomerID        string
	CustomerName      string
	Amount            float64
	Date              time.Time
	Method            PaymentMethod
	InvoiceNumber     string
	Status            PaymentStatus
	JobIDs            []string
	Notes             string
	ProviderReference string
}

// InvoiceNumber is INV + yyyymmdd + the last four characters of the payment id.
func InvoiceNumber(paymentID string, date time.Time) string {
	tail := paymentID
	if len(tail) > 4 {
		tail = tail[len(tail)-4:]
	}
	return fmt.Sprintf("INV%s%s", date.Format("20060102"), tail)
}
