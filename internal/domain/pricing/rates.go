package pricing

import "strings"

const (
	DefaultPropertyRate = 0.05
	HourlyRate          = 25.0
	MinLaborHours       = 2.0
	SquareFeetPerHour   = 3000.0
	MaterialRate        = 0.01
	MinimumCharge       = 75.0
	ProfitMargin        = 0.35
	TaxRate             = 0.0625
	TravelRatePerMile   = 0.655
)

// Per square foot rates by property type.
var propertyRates = map[string]float64{
	"office":      0.05,
	"medical":     0.08,
	"retail":      0.04,
	"restaurant":  0.06,
	"warehouse":   0.03,
	"school":      0.04,
	"residential": 0.06,
	"industrial":  0.035,
	"gym":         0.045,
	"bank":        0.055,
	"church":      0.04,
	"government":  0.065,
}

var serviceMultipliers = map[string]float64{
	"regular":           1.0,
	"deep-clean":        2.0,
	"post-construction": 2.5,
	"move-in-out":       1.8,
	"disinfection":      1.5,
	"emergency":         3.0,
	"one-time":          1.3,
}

var frequencyDiscounts = map[string]float64{
	"one-time":  0.0,
	"daily":     0.25,
	"weekly":    0.20,
	"bi-weekly": 0.15,
	"monthly":   0.10,
	"quarterly": 0.05,
}

// AddOn is an optional service picked in the quote wizard.
type AddOn string

const (
	AddOnVacuum   AddOn = "vacuum"
	AddOnMop      AddOn = "mop"
	AddOnBathroom AddOn = "bathroom"
	AddOnKitchen  AddOn = "kitchen"
	AddOnWindows  AddOn = "windows"
	AddOnLaundry  AddOn = "laundry"
)

// Flat surcharges. Bathroom is charged per bathroom; vacuum and mop are
// covered by the property rate.
var addOnSurcharges = map[AddOn]float64{
	AddOnVacuum:   0,
	AddOnMop:      0,
	AddOnBathroom: 25,
	AddOnKitchen:  50,
	AddOnWindows:  30,
	AddOnLaundry:  40,
}

// Service catalog ids written to the Services column.
var addOnServiceIDs = map[AddOn]string{
	AddOnVacuum:   "SRV001",
	AddOnMop:      "SRV002",
	AddOnWindows:  "SRV002",
	AddOnLaundry:  "SRV008",
	AddOnKitchen:  "SRV009",
	AddOnBathroom: "SRV010",
}

func normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// RateFor returns the per square foot rate; unknown types get DefaultPropertyRate.
func RateFor(propertyType string) (float64, bool) {
	if r, ok := propertyRates[normalize(propertyType)]; ok {
		return r, true
	}
	return DefaultPropertyRate, false
}

// MultiplierFor returns the service type multiplier; unknown types get 1.0.
func MultiplierFor(serviceType string) (float64, bool) {
	if m, ok := serviceMultipliers[normalize(serviceType)]; ok {
		return m, true
	}
	return 1.0, false
}

// DiscountFor returns the frequency discount; unknown frequencies get 0.
func DiscountFor(frequency string) (float64, bool) {
	if d, ok := frequencyDiscounts[normalize(frequency)]; ok {
		return d, true
	}
	return 0, false
}

// ParseAddOn reports whether name is a known add-on.
func ParseAddOn(name string) (AddOn, bool) {
	a := AddOn(normalize(name))
	_, ok := addOnSurcharges[a]
	return a, ok
}

// ServiceID is the catalog id for an add-on.
func ServiceID(a AddOn) string {
	return addOnServiceIDs[a]
}

// PropertyTypes lists the known property types in display order.
func PropertyTypes() []string {
	return []string{"office", "medical", "retail", "restaurant", "warehouse", "school", "residential", "industrial", "gym", "bank", "church", "government"}
}

// Frequencies lists the known frequencies in display order.
func Frequencies() []string {
	return []string{"one-time", "daily", "weekly", "bi-weekly", "monthly", "quarterly"}
}

// AddOns lists the add-ons offered in the quote wizard.
func AddOns() []string {
	return []string{string(AddOnVacuum), string(AddOnMop), string(AddOnBathroom), string(AddOnKitchen), string(AddOnWindows), string(AddOnLaundry)}
}
