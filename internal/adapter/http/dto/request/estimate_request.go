package request

import (
	"strings"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// EstimateRequest is the JSON body of the live price preview shown while the
// customer fills the quote wizard.
type EstimateRequest struct {
	PropertyType string   `json:"property_type"`
	SquareFeet   float64  `json:"sqft"`
	Frequency    string   `json:"frequency"`
	ServiceType  string   `json:"service_type"`
	AddOns       []string `json:"services"`
	Bathrooms    int      `json:"bathrooms"`
	Mileage      float64  `json:"mileage"`
}

func (r EstimateRequest) Validate() error {
	trimFields(&r.PropertyType)
	return asValidationError(validation.ValidateStruct(&r,
		validation.Field(&r.PropertyType, validation.Required, validation.Length(1, 40)),
		validation.Field(&r.Bathrooms, validation.Min(0)),
		validation.Field(&r.Mileage, validation.Min(0.0)),
	))
}

func (r EstimateRequest) ToIntake() (usecase.QuoteIntake, error) {
	if err := r.Validate(); err != nil {
		return usecase.QuoteIntake{}, err
	}
	var addOns []string
	for _, a := range r.AddOns {
		addOns = append(addOns, splitList(a)...)
	}
	return usecase.QuoteIntake{
		PropertyType: strings.ToLower(strings.TrimSpace(r.PropertyType)),
		SquareFeet:   r.SquareFeet,
		Frequency:    strings.ToLower(strings.TrimSpace(r.Frequency)),
		ServiceType:  strings.ToLower(strings.TrimSpace(r.ServiceType)),
		AddOns:       addOns,
		Bathrooms:    r.Bathrooms,
		Mileage:      r.Mileage,
	}, nil
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}
