package response

import (
	"strconv"
	"strings"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase"
	"github.com/Cleaning-Company-dex/cleaning-company-web/pkg"
)

const (
	ResultStatusPending = "pending"
	ResultStatusError   = "error"
	basicCleaning       = "Basic Cleaning"
)

// QuoteResult is the confirmation handed from POST /quote-submit to
// GET /quote-result through the session. Amounts are preformatted.
type QuoteResult struct {
	QuoteID        string `json:"quote_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	PropertyType   string `json:"property_type"`
	SquareFeet     string `json:"sqft"`
	Services       string `json:"services,omitempty"`
	Frequency      string `json:"frequency"`
	City           string `json:"city,omitempty"`
	Address        string `json:"address,omitempty"`
	EstimatedPrice string `json:"estimated_price,omitempty"`
	Status         string `json:"status"`
	BaseCost       string `json:"base_cost,omitempty"`
	Profit         string `json:"profit,omitempty"`
	Tax            string `json:"tax,omitempty"`
	ErrorMessage   string `json:"error_message,omitempty"`
}

// FromConfirmation builds the result page model. A degraded confirmation
// keeps the contact details and the price but reports status "error".
func FromConfirmation(conf usecase.QuoteConfirmation, addOns []string) QuoteResult {
	q := conf.Quote
	services := basicCleaning
	if len(addOns) > 0 {
		services = strings.Join(addOns, ", ")
	}
	r := QuoteResult{
		QuoteID:        q.ID,
		Name:           q.Customer.Name,
		Email:          q.Customer.Email,
		Phone:          q.Customer.Phone,
		Services:       services,
		Frequency:      q.Frequency,
		City:           q.Customer.City,
		Address:        q.Customer.Address,
		EstimatedPrice: pkg.Money(conf.Breakdown.TotalAmount),
		Status:         ResultStatusPending,
		BaseCost:       pkg.Money(conf.Breakdown.BaseCost),
		Profit:         pkg.Money(conf.Breakdown.ProfitAmount),
		Tax:            pkg.Money(conf.Breakdown.TaxAmount),
	}
	if len(q.Properties) > 0 {
		r.PropertyType = q.Properties[0].FacilityType
		r.SquareFeet = strconv.FormatFloat(q.Properties[0].SquareFeet, 'f', -1, 64)
	}
	if !conf.Persisted {
		r.Status = ResultStatusError
		r.ErrorMessage = conf.ErrorMessage
	}
	return r
}
