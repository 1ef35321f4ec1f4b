package sheetrow

import (
	"testing"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/apperr"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerRow(t *testing.T) {
	c := entities.Customer{
		ID:               "CUST20250101120000AAAA",
		Name:             "Acme Dental",
		Email:            "ops@acme.test",
		BusinessType:     "medical",
		SquareFeet:       3200,
		ServiceFrequency: "weekly",
		AddedDate:        time.Date(2025, 1, 1, 8, 30, 0, 0, time.UTC),
		Status:           entities.CustomerStatusInactive,
	}
	row, err := EncodeCustomer(c)
	require.NoError(t, err)
	require.Len(t, row, len(CustomerHeader))

	got, err := DecodeCustomer(row)
	require.NoError(t, err)
	assert.Equal(t, c, got)

	got, err = DecodeCustomer([]string{"CUST1", "Walk In"})
	require.NoError(t, err)
	assert.Equal(t, entities.CustomerStatusActive, got.Status, "missing status defaults to active")
}

func TestEmployeeRow(t *testing.T) {
	e := entities.Employee{
		ID:           "EMP20250101120000BBBB",
		Name:         "Lee Park",
		Username:     "lpark",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		HireDate:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Active:       true,
		HourlyRate:   22.5,
	}
	row, err := EncodeEmployee(e)
	require.NoError(t, err)
	assert.Equal(t, "yes", row[7])
	assert.Equal(t, "22.50", row[8])

	got, err := DecodeEmployee(row)
	require.NoError(t, err)
	assert.Equal(t, e, got)

	row[7] = "sometimes"
	_, err = DecodeEmployee(row)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestJobRow(t *testing.T) {
	j := entities.Job{
		ID:           "JOB20250101120000CCCC",
		CustomerID:   "CUST1",
		CustomerName: "Acme Dental",
		Date:         time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		Time:         "09:00",
		EmployeeID:   "EMP1",
		EmployeeName: "Lee Park",
		Price:        180,
		Status:       entities.JobStatusCompleted,
		Completed:    true,
		CheckInTime:  time.Date(2025, 1, 2, 9, 2, 0, 0, time.UTC),
		CheckOutTime: time.Date(2025, 1, 2, 11, 40, 0, 0, time.UTC),
		Photos:       "uploads/JOB1.jpg",
	}
	row, err := EncodeJob(j)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-02", row[2])
	assert.Equal(t, "CUST1", row[14])

	got, err := DecodeJob(row)
	require.NoError(t, err)
	assert.Equal(t, j, got)
}

func TestPaymentRow(t *testing.T) {
	p := entities.Payment{
		ID:            "PAY20250101120000DDDD",
		CustomerID:    "CUST1",
		CustomerName:  "Acme Dental",
		Amount:        251.02,
		Date:          time.Date(2025, 1, 3, 15, 0, 0, 0, time.UTC),
		Method:        entities.PaymentMethodCard,
		InvoiceNumber: "INV20250103DDDD",
		Status:        entities.PaymentStatusCompleted,
		JobIDs:        []string{"JOB1", "JOB2"},
	}
	row, err := EncodePayment(p)
	require.NoError(t, err)
	assert.Equal(t, "JOB1,JOB2", row[7])

	got, err := DecodePayment(row)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestActivityRow(t *testing.T) {
	row, err := EncodeActivity(entities.Activity{
		Timestamp: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Action:    "customer.create",
		User:      "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-01T00:00:00Z", "customer.create", "", "admin", ""}, row)
}
