package sheetrow

import (
	"fmt"
	"strings"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
)

const PaymentsTable = "Payments"

var PaymentHeader = []string{
	"ID", "Customer_Name", "Amount", "Date", "Method", "Invoice_Number", "Status",
	"Job_IDs", "Notes", "Customer_ID", "Provider_Reference",
}

func EncodePayment(p entities.Payment) ([]string, error) {
	row := []string{
		p.ID,
		p.CustomerName,
		formatMoney(p.Amount),
		formatTime(p.Date),
		string(p.Method),
		p.InvoiceNumber,
		string(p.Status),
		strings.Join(p.JobIDs, ","),
		p.Notes,
		p.CustomerID,
		p.ProviderReference,
	}
	return row, CheckWidth(PaymentsTable, row, len(PaymentHeader))
}

func DecodePayment(values []string) (entities.Payment, error) {
	d := decoder{values: values, idx: indexOf(PaymentHeader)}
	p := entities.Payment{
		ID:                d.str("ID"),
		CustomerName:      d.str("Customer_Name"),
		Amount:            d.num("Amount"),
		Date:              d.ts("Date"),
		InvoiceNumber:     d.str("Invoice_Number"),
		JobIDs:            d.list("Job_IDs"),
		Notes:             d.str("Notes"),
		CustomerID:        d.str("Customer_ID"),
		ProviderReference: d.str("Provider_Reference"),
	}
	p.Status = entities.PaymentStatusCompleted
	if raw := d.str("Status"); raw != "" {
		s, err := entities.ParsePaymentStatus(raw)
		d.fail(err)
		p.Status = s
	}
	p.Method = entities.PaymentMethodCash
	if raw := d.str("Method"); raw != "" {
		m, err := entities.ParsePaymentMethod(raw)
		d.fail(err)
		p.Method = m
	}
	if d.err != nil {
		return entities.Payment{}, fmt.Errorf("decode payment %s: %w", p.ID, d.err)
	}
	return p, nil
}
