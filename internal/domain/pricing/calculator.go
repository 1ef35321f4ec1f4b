// Package pricing computes quote prices. Values are kept at full precision;
// rounding happens where they are encoded or displayed.
package pricing

import (
	"math"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/apperr"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
)

type Input struct {
	PropertyType string
	SquareFeet   float64
	Frequency    string
	ServiceType  string
	AddOns       []AddOn
	Bathrooms    int
	Mileage      float64
}

type Breakdown struct {
	PropertyRate  float64
	KnownProperty bool
	KnownFreq     bool
	PropertyCost  float64
	LaborHours    float64
	LaborCost     float64
	MaterialCost  float64
	ServiceCost   float64
	TravelCost    float64
	BaseCost      float64
	ProfitAmount  float64
	Subtotal      float64
	TaxAmount     float64
	TotalAmount   float64
}

// Calculate prices one property.
func Calculate(in Input) (Breakdown, error) {
	if math.IsNaN(in.SquareFeet) || math.IsInf(in.SquareFeet, 0) {
		return Breakdown{}, apperr.NewValidationError("square_feet", "must be a number")
	}
	if in.SquareFeet <= 0 {
		return Breakdown{}, apperr.NewValidationError("square_feet", "must be greater than zero")
	}
	if in.Bathrooms < 0 {
		return Breakdown{}, apperr.NewValidationError("bathrooms", "cannot be negative")
	}
	if in.Mileage < 0 || math.IsNaN(in.Mileage) {
		return Breakdown{}, apperr.NewValidationError("mileage", "cannot be negative")
	}

	rate, knownProperty := RateFor(in.PropertyType)
	multiplier, _ := MultiplierFor(in.ServiceType)
	discount, knownFreq := DiscountFor(in.Frequency)

	b := Breakdown{PropertyRate: rate, KnownProperty: knownProperty, KnownFreq: knownFreq}
	b.PropertyCost = in.SquareFeet * rate * multiplier * (1 - discount)
	b.LaborHours = math.Max(MinLaborHours, in.SquareFeet/SquareFeetPerHour)
	b.LaborCost = b.LaborHours * HourlyRate
	b.MaterialCost = in.SquareFeet * MaterialRate
	b.ServiceCost = serviceCost(in.AddOns, in.Bathrooms)
	b.TravelCost = in.Mileage * TravelRatePerMile

	// Minimum charge applies before profit and tax.
	b.BaseCost = math.Max(MinimumCharge, b.PropertyCost+b.LaborCost+b.MaterialCost+b.ServiceCost+b.TravelCost)
	b.ProfitAmount = b.BaseCost * ProfitMargin
	b.Subtotal = b.BaseCost + b.ProfitAmount
	b.TaxAmount = b.Subtotal * TaxRate
	b.TotalAmount = b.Subtotal * (1 + TaxRate)
	return b, nil
}

func serviceCost(addOns []AddOn, bathrooms int) float64 {
	seen := make(map[AddOn]bool, len(addOns))
	total := 0.0
	for _, a := range addOns {
		if seen[a] {
			continue
		}
		seen[a] = true
		if a == AddOnBathroom {
			total += addOnSurcharges[a] * float64(bathrooms)
			continue
		}
		total += addOnSurcharges[a]
	}
	return total
}

// Costs converts the breakdown into the persisted quote columns.
func (b Breakdown) Costs() entities.QuoteCosts {
	return entities.QuoteCosts{
		LaborHours:   b.LaborHours,
		LaborCost:    b.LaborCost,
		MaterialCost: b.MaterialCost,
		ServiceCost:  b.ServiceCost,
		TravelCost:   b.TravelCost,
		BaseCost:     b.BaseCost,
		ProfitMargin: ProfitMargin * 100,
		ProfitAmount: b.ProfitAmount,
		Subtotal:     b.Subtotal,
		TaxAmount:    b.TaxAmount,
		TotalAmount:  b.TotalAmount,
	}
}
