package entities

import "time"

// Contact is the customer identity captured by the quote wizard.
type Contact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

// Property describes one facility in a quote. Field names follow the JSON the
// spreadsheet automation reads from the Properties column.
type Property struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	FacilityType string  `json:"facilityType"`
	SquareFeet   float64 `json:"squareFeet"`
	Restrooms    int     `json:"restrooms"`
	Windows      int     `json:"windows"`
	Rooms        int     `json:"rooms"`
	Floors       int     `json:"floors"`
}

type Material struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

type ServiceItem struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

type EmployeeRef struct {
	ID    string  `json:"id"`
	Name  string  `json:"name,omitempty"`
	Hours float64 `json:"hours,omitempty"`
}

// QuoteCosts is the itemized price. ProfitMargin is a percentage (35 = 35%).
type QuoteCosts struct {
	LaborHours   float64 `json:"labor_hours"`
	LaborCost    float64 `json:"labor_cost"`
	MaterialCost float64 `json:"material_cost"`
	ServiceCost  float64 `json:"service_cost"`
	TravelCost   float64 `json:"travel_cost"`
	BaseCost     float64 `json:"base_cost"`
	ProfitMargin float64 `json:"profit_margin"`
	ProfitAmount float64 `json:"profit_amount"`
	Subtotal     float64 `json:"subtotal"`
	TaxAmount    float64 `json:"tax_amount"`
	TotalAmount  float64 `json:"total_amount"`
}

// Quote is one row of the Quotes sheet.
//
// Storage model (spreadsheet):
//   - 37 positional columns, see sheetrow.QuoteHeader
//   - zero times are stored as empty cells
type Quote struct {
	ID            string
	DateCreated   time.Time
	Customer      Contact
	Properties    []Property
	Materials     []Material
	Services      []ServiceItem
	Employees     []EmployeeRef
	Costs         QuoteCosts
	Status        QuoteStatus
	ValidUntil    time.Time
	Notes         string
	InternalNotes string
	CreatedBy     string
	AssignedTo    string
	FollowUpDate  time.Time
	CustomerID    string
	ConvertedDate time.Time
	DeclineReason string
	ServiceType   string
	Frequency     string
	Mileage       float64
}

// QuoteValidity is how long a web quote stays valid.
const QuoteValidity = 30 * 24 * time.Hour
