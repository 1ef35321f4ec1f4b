package request

import (
	"encoding/json"
	"strings"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/apperr"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// PaymentForm is the admin "record payment" form.
//
// GatewayPayload is kept as raw JSON so Mercado Pago fields (token, issuer,
// installments, payer) can vary without changing this form.
type PaymentForm struct {
	CustomerID     string  `form:"customer_id" json:"customer_id"`
	Amount         float64 `form:"amount" json:"amount"`
	Date           string  `form:"date" json:"date"`
	Method         string  `form:"method" json:"method"`
	JobIDs         string  `form:"job_ids" json:"job_ids"`
	Notes          string  `form:"notes" json:"notes"`
	GatewayPayload string  `form:"gateway_payload" json:"gateway_payload"`
}

func (f PaymentForm) Validate() error {
	trimFields(&f.CustomerID, &f.Date)
	return asValidationError(validation.ValidateStruct(&f,
		validation.Field(&f.CustomerID, validation.Required.Error("is required")),
		validation.Field(&f.Amount, validation.Required.Error("must be greater than zero"), validation.Min(0.01)),
		validation.Field(&f.Date, validDate),
	))
}

// ToInput maps the form. With mockGateway set an unreadable payload is
// replaced by an empty object instead of failing the request.
func (f PaymentForm) ToInput(mockGateway bool) (usecase.PaymentInput, error) {
	if err := f.Validate(); err != nil {
		return usecase.PaymentInput{}, err
	}
	date, err := parseDate("date", f.Date)
	if err != nil {
		return usecase.PaymentInput{}, err
	}
	in := usecase.PaymentInput{
		CustomerID: strings.TrimSpace(f.CustomerID),
		Amount:     f.Amount,
		Date:       date,
		JobIDs:     splitList(f.JobIDs),
		Notes:      strings.TrimSpace(f.Notes),
	}
	if strings.TrimSpace(f.Method) != "" {
		method, err := entities.ParsePaymentMethod(f.Method)
		if err != nil {
			return usecase.PaymentInput{}, err
		}
		in.Method = method
	}
	if raw := strings.TrimSpace(f.GatewayPayload); raw != "" {
		switch {
		case json.Valid([]byte(raw)):
			in.GatewayPayload = json.RawMessage(raw)
		case mockGateway:
			in.GatewayPayload = json.RawMessage("{}")
		default:
			return usecase.PaymentInput{}, apperr.NewValidationError("gateway_payload", "must be valid JSON")
		}
	}
	return in, nil
}
