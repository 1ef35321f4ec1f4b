package sheetrow

import (
	"encoding/json"
	"fmt"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
)

const QuotesTable = "Quotes"

// QuoteHeader is the positional layout read by the spreadsheet automation.
// Do not reorder.
var QuoteHeader = []string{
	"ID", "Date_Created", "Customer_Name", "Customer_Email", "Customer_Phone",
	"Customer_Address", "Customer_City", "Customer_State", "Customer_Zip",
	"Properties", "Materials", "Services", "Employees",
	"Labor_Hours", "Labor_Cost", "Material_Cost", "Service_Cost", "Travel_Cost",
	"Base_Cost", "Profit_Margin", "Profit_Amount", "Subtotal", "Tax_Amount", "Total_Amount",
	"Status", "Valid_Until", "Notes", "Internal_Notes", "Created_By", "Assigned_To",
	"Follow_Up_Date", "Customer_ID", "Converted_Date", "Decline_Reason",
	"Service_Type", "Frequency", "Mileage",
}

const QuoteColumnCount = 37

// EncodeQuote renders q as exactly QuoteColumnCount cells.
func EncodeQuote(q entities.Quote) ([]string, error) {
	props, err := encodeJSON(q.Properties)
	if err != nil {
		return nil, fmt.Errorf("encode properties: %w", err)
	}
	mats, err := encodeJSON(q.Materials)
	if err != nil {
		return nil, fmt.Errorf("encode materials: %w", err)
	}
	svcs, err := encodeJSON(q.Services)
	if err != nil {
		return nil, fmt.Errorf("encode services: %w", err)
	}
	emps, err := encodeJSON(q.Employees)
	if err != nil {
		return nil, fmt.Errorf("encode employees: %w", err)
	}

	c := q.Costs
	row := []string{
		q.ID,
		formatTime(q.DateCreated),
		q.Customer.Name,
		q.Customer.Email,
		q.Customer.Phone,
		q.Customer.Address,
		q.Customer.City,
		q.Customer.State,
		q.Customer.Zip,
		props,
		mats,
		svcs,
		emps,
		formatMoney(c.LaborHours),
		formatMoney(c.LaborCost),
		formatMoney(c.MaterialCost),
		formatMoney(c.ServiceCost),
		formatMoney(c.TravelCost),
		formatMoney(c.BaseCost),
		formatNumber(c.ProfitMargin),
		formatMoney(c.ProfitAmount),
		formatMoney(c.Subtotal),
		formatMoney(c.TaxAmount),
		formatMoney(c.TotalAmount),
		string(q.Status),
		formatTime(q.ValidUntil),
		q.Notes,
		q.InternalNotes,
		q.CreatedBy,
		q.AssignedTo,
		formatDate(q.FollowUpDate),
		q.CustomerID,
		formatTime(q.ConvertedDate),
		q.DeclineReason,
		q.ServiceType,
		q.Frequency,
		formatNumber(q.Mileage),
	}
	if err := CheckWidth(QuotesTable, row, QuoteColumnCount); err != nil {
		return nil, err
	}
	return row, nil
}

// DecodeQuote parses a stored row. Short rows are accepted because backends
// trim trailing empty cells; rows wider than the layout are rejected.
func DecodeQuote(values []string) (entities.Quote, error) {
	if len(values) > QuoteColumnCount {
		return entities.Quote{}, CheckWidth(QuotesTable, values, QuoteColumnCount)
	}
	d := decoder{values: values, idx: indexOf(QuoteHeader)}

	q := entities.Quote{
		ID: d.str("ID"),
		Customer: entities.Contact{
			Name:    d.str("Customer_Name"),
			Email:   d.str("Customer_Email"),
			Phone:   d.str("Customer_Phone"),
			Address: d.str("Customer_Address"),
			City:    d.str("Customer_City"),
			State:   d.str("Customer_State"),
			Zip:     d.str("Customer_Zip"),
		},
		Notes:         d.str("Notes"),
		InternalNotes: d.str("Internal_Notes"),
		CreatedBy:     d.str("Created_By"),
		AssignedTo:    d.str("Assigned_To"),
		CustomerID:    d.str("Customer_ID"),
		DeclineReason: d.str("Decline_Reason"),
		ServiceType:   d.str("Service_Type"),
		Frequency:     d.str("Frequency"),
	}
	q.DateCreated = d.ts("Date_Created")
	q.ValidUntil = d.ts("Valid_Until")
	q.FollowUpDate = d.ts("Follow_Up_Date")
	q.ConvertedDate = d.ts("Converted_Date")
	d.json("Properties", &q.Properties)
	d.json("Materials", &q.Materials)
	d.json("Services", &q.Services)
	d.json("Employees", &q.Employees)
	q.Costs = entities.QuoteCosts{
		LaborHours:   d.num("Labor_Hours"),
		LaborCost:    d.num("Labor_Cost"),
		MaterialCost: d.num("Material_Cost"),
		ServiceCost:  d.num("Service_Cost"),
		TravelCost:   d.num("Travel_Cost"),
		BaseCost:     d.num("Base_Cost"),
		ProfitMargin: d.num("Profit_Margin"),
		ProfitAmount: d.num("Profit_Amount"),
		Subtotal:     d.num("Subtotal"),
		TaxAmount:    d.num("Tax_Amount"),
		TotalAmount:  d.num("Total_Amount"),
	}
	q.Mileage = d.num("Mileage")

	status := d.str("Status")
	if status == "" {
		q.Status = entities.QuoteStatusPending
	} else if s, err := entities.ParseQuoteStatus(status); err != nil {
		d.fail(err)
	} else {
		q.Status = s
	}

	if d.err != nil {
		return entities.Quote{}, fmt.Errorf("decode quote %s: %w", q.ID, d.err)
	}
	return q, nil
}

func encodeJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	if s := string(b); s != "null" {
		return s, nil
	}
	return "[]", nil
}

