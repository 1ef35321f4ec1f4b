package sheetrow

import (
	"fmt"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
)

const CustomersTable = "Customers"

var CustomerHeader = []string{
	"ID", "Name", "Email", "Phone", "Address", "Business_Type", "Square_Feet",
	"Service_Frequency", "Added_Date", "Status", "Special_Instructions",
	"Preferred_Day", "Preferred_Time",
}

func EncodeCustomer(c entities.Customer) ([]string, error) {
	row := []string{
		c.ID,
		c.Name,
		c.Email,
		c.Phone,
		c.Address,
		c.BusinessType,
		formatNumber(c.SquareFeet),
		c.ServiceFrequency,
		formatTime(c.AddedDate),
		string(c.Status),
		c.SpecialInstructions,
		c.PreferredDay,
		c.PreferredTime,
	}
	return row, CheckWidth(CustomersTable, row, len(CustomerHeader))
}

func DecodeCustomer(values []string) (entities.Customer, error) {
	d := decoder{values: values, idx: indexOf(CustomerHeader)}
	c := entities.Customer{
		ID:                  d.str("ID"),
		Name:                d.str("Name"),
		Email:               d.str("Email"),
		Phone:               d.str("Phone"),
		Address:             d.str("Address"),
		BusinessType:        d.str("Business_Type"),
		SquareFeet:          d.num("Square_Feet"),
		ServiceFrequency:    d.str("Service_Frequency"),
		AddedDate:           d.ts("Added_Date"),
		SpecialInstructions: d.str("Special_Instructions"),
		PreferredDay:        d.str("Preferred_Day"),
		PreferredTime:       d.str("Preferred_Time"),
	}
	c.Status = entities.CustomerStatusActive
	if raw := d.str("Status"); raw != "" {
		s, err := entities.ParseCustomerStatus(raw)
		d.fail(err)
		c.Status = s
	}
	if d.err != nil {
		return entities.Customer{}, fmt.Errorf("decode customer %s: %w", c.ID, d.err)
	}
	return c, nil
}
