package request

import (
	"errors"
	"testing"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/apperr"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldOf(t *testing.T, err error) string {
	t.Helper()
	var ve *apperr.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *apperr.ValidationError, got %T %v", err, err)
	}
	return ve.Field
}

func TestQuoteForm_ToIntake(t *testing.T) {
	t.Run("defaults and add-on parsing", func(t *testing.T) {
		f := QuoteForm{
			Name:       "  Ana Souza ",
			Email:      "ana@example.com",
			State:      "ma",
			SquareFeet: 2500,
			Services:   []string{"vacuum, windows", "bathroom", " "},
			Bathrooms:  3,
		}
		in, err := f.ToIntake()
		require.NoError(t, err)
		assert.Equal(t, "Ana Souza", in.Contact.Name)
		assert.Equal(t, "MA", in.Contact.State)
		assert.Equal(t, "office", in.PropertyType)
		assert.Equal(t, "monthly", in.Frequency)
		assert.Equal(t, []string{"vacuum", "windows", "bathroom"}, in.AddOns)
		assert.Equal(t, 3, in.Bathrooms)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := QuoteForm{SquareFeet: 100}.ToIntake()
		if !errors.Is(err, apperr.ErrValidation) || fieldOf(t, err) != "name" {
			t.Fatalf("expected name validation error, got %v", err)
		}
	})

	t.Run("bad email", func(t *testing.T) {
		_, err := QuoteForm{Name: "Ana", Email: "not-an-email"}.ToIntake()
		if fieldOf(t, err) != "email" {
			t.Fatalf("expected email validation error, got %v", err)
		}
	})

	t.Run("negative bathrooms", func(t *testing.T) {
		_, err := QuoteForm{Name: "Ana", Bathrooms: -1}.ToIntake()
		if fieldOf(t, err) != "bathrooms" {
			t.Fatalf("expected bathrooms validation error, got %v", err)
		}
	})
}

func TestEstimateRequest_ToIntake(t *testing.T) {
	in, err := EstimateRequest{PropertyType: " Medical ", SquareFeet: 1200, AddOns: []string{"kitchen,laundry"}, Mileage: 12}.ToIntake()
	require.NoError(t, err)
	assert.Equal(t, "medical", in.PropertyType)
	assert.Equal(t, []string{"kitchen", "laundry"}, in.AddOns)
	assert.Equal(t, 12.0, in.Mileage)

	_, err = EstimateRequest{SquareFeet: 1200}.ToIntake()
	if fieldOf(t, err) != "property_type" {
		t.Fatalf("expected property_type error, got %v", err)
	}
	_, err = EstimateRequest{PropertyType: "office", Mileage: -3}.ToIntake()
	if fieldOf(t, err) != "mileage" {
		t.Fatalf("expected mileage error, got %v", err)
	}
}

func TestCustomerForm_ToCustomer(t *testing.T) {
	c, err := CustomerForm{Name: "Acme Dental", Email: " Office@Acme.COM ", SquareFeet: 1800}.ToCustomer("CUST1")
	require.NoError(t, err)
	assert.Equal(t, "CUST1", c.ID)
	assert.Equal(t, "office@acme.com", c.Email)

	_, err = CustomerForm{Email: "x@example.com"}.ToCustomer("")
	assert.Equal(t, "name", fieldOf(t, err))
}

func TestEmployeeForm_ToInput(t *testing.T) {
	in, err := EmployeeForm{Name: "Maria", Username: "maria", Password: "secret1", HourlyRate: 22.5, ColorCode: "#3B82F6", HireDate: "2024-05-01"}.ToInput()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), in.HireDate)

	_, err = EmployeeForm{Name: "Maria", Username: "maria", ColorCode: "blue"}.ToInput()
	assert.Equal(t, "color_code", fieldOf(t, err))

	_, err = EmployeeForm{Name: "Maria", Username: "maria", HireDate: "01/05/2024"}.ToInput()
	assert.Equal(t, "hire_date", fieldOf(t, err))
}

func TestJobForm_ToInput(t *testing.T) {
	in, err := JobForm{CustomerID: "CUST1", Date: "2025-03-20", Time: "09:00", Status: "Scheduled"}.ToInput()
	require.NoError(t, err)
	assert.Equal(t, entities.JobStatusScheduled, in.Status)
	assert.Equal(t, "2025-03-20", in.Date.Format(formDateLayout))

	_, err = JobForm{CustomerID: "CUST1", Date: "2025-03-20", Status: "paused"}.ToInput()
	assert.Equal(t, "status", fieldOf(t, err))

	_, err = JobForm{Date: "2025-03-20"}.ToInput()
	assert.Equal(t, "customer_id", fieldOf(t, err))
}

func TestPaymentForm_ToInput(t *testing.T) {
	t.Run("card payment", func(t *testing.T) {
		in, err := PaymentForm{CustomerID: "CUST1", Amount: 150, Method: "card", JobIDs: "JOB1, JOB2"}.ToInput(false)
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentMethodCard, in.Method)
		assert.Equal(t, []string{"JOB1", "JOB2"}, in.JobIDs)
		assert.Nil(t, in.GatewayPayload)
	})

	t.Run("invalid gateway payload", func(t *testing.T) {
		_, err := PaymentForm{CustomerID: "CUST1", Amount: 150, Method: "mercadopago", GatewayPayload: "{"}.ToInput(false)
		assert.Equal(t, "gateway_payload", fieldOf(t, err))
	})

	t.Run("invalid gateway payload in mock mode", func(t *testing.T) {
		in, err := PaymentForm{CustomerID: "CUST1", Amount: 150, Method: "mercadopago", GatewayPayload: "{"}.ToInput(true)
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(in.GatewayPayload))
	})

	t.Run("zero amount", func(t *testing.T) {
		_, err := PaymentForm{CustomerID: "CUST1"}.ToInput(false)
		assert.Equal(t, "amount", fieldOf(t, err))
	})
}

func TestQuoteUpdateForm_ToUpdate(t *testing.T) {
	upd, err := QuoteUpdateForm{Notes: "call after 5", AssignedTo: "EMP1", TotalAmount: "$1,250.00"}.ToUpdate()
	require.NoError(t, err)
	require.NotNil(t, upd.TotalAmount)
	assert.Equal(t, 1250.0, *upd.TotalAmount)
	assert.Nil(t, upd.ServiceType)
	assert.Equal(t, "call after 5", *upd.Notes)

	_, err = QuoteUpdateForm{TotalAmount: "lots"}.ToUpdate()
	assert.Equal(t, "total_amount", fieldOf(t, err))
}

func TestForms_TrimBeforeValidating(t *testing.T) {
	t.Run("quote wizard email", func(t *testing.T) {
		in, err := QuoteForm{Name: "Ana", Email: " ana@example.com ", SquareFeet: 2000}.ToIntake()
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", in.Contact.Email)
	})

	t.Run("blank name is still missing", func(t *testing.T) {
		_, err := QuoteForm{Name: "   ", SquareFeet: 2000}.ToIntake()
		assert.Equal(t, "name", fieldOf(t, err))
	})

	t.Run("employee email and hire date", func(t *testing.T) {
		in, err := EmployeeForm{Name: "Maria", Username: " maria ", Email: " maria@example.com ", HireDate: " 2024-05-01 "}.ToInput()
		require.NoError(t, err)
		assert.Equal(t, "maria@example.com", in.Email)
		assert.Equal(t, "maria", in.Username)
		assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), in.HireDate)
	})

	t.Run("payment and job dates", func(t *testing.T) {
		p, err := PaymentForm{CustomerID: " CUST1 ", Amount: 10, Date: " 2025-03-20 "}.ToInput(false)
		require.NoError(t, err)
		assert.Equal(t, "CUST1", p.CustomerID)

		j, err := JobForm{CustomerID: "CUST1", Date: "2025-03-20 "}.ToInput()
		require.NoError(t, err)
		assert.Equal(t, "2025-03-20", j.Date.Format(formDateLayout))
	})
}
