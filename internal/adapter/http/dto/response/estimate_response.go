package response

import (
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/pricing"
	"github.com/Cleaning-Company-dex/cleaning-company-web/pkg"

	"github.com/shopspring/decimal"
)

// EstimateResponse is the live price preview.
type EstimateResponse struct {
	PropertyRate   float64 `json:"property_rate"`
	LaborHours     float64 `json:"labor_hours"`
	LaborCost      float64 `json:"labor_cost"`
	MaterialCost   float64 `json:"material_cost"`
	ServiceCost    float64 `json:"service_cost"`
	TravelCost     float64 `json:"travel_cost"`
	BaseCost       float64 `json:"base_cost"`
	Profit         float64 `json:"profit"`
	Subtotal       float64 `json:"subtotal"`
	Tax            float64 `json:"tax"`
	Total          float64 `json:"total"`
	EstimatedPrice string  `json:"estimated_price"`
}

func FromBreakdown(b pricing.Breakdown) EstimateResponse {
	return EstimateResponse{
		PropertyRate:   b.PropertyRate,
		LaborHours:     round2(b.LaborHours),
		LaborCost:      round2(b.LaborCost),
		MaterialCost:   round2(b.MaterialCost),
		ServiceCost:    round2(b.ServiceCost),
		TravelCost:     round2(b.TravelCost),
		BaseCost:       round2(b.BaseCost),
		Profit:         round2(b.ProfitAmount),
		Subtotal:       round2(b.Subtotal),
		Tax:            round2(b.TaxAmount),
		Total:          round2(b.TotalAmount),
		EstimatedPrice: pkg.Money(b.TotalAmount),
	}
}

// ChatResponse is the body returned by POST /api/chat.
type ChatResponse struct {
	Response string `json:"response"`
}

// HealthResponse is the body returned by GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Time    string `json:"time"`
}

func NewHealthResponse(service string) HealthResponse {
	return HealthResponse{Status: "ok", Service: service, Time: time.Now().UTC().Format(time.RFC3339)}
}

func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
