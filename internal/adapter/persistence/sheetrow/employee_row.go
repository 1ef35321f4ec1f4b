package sheetrow

import (
	"fmt"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
)

const EmployeesTable = "Employees"

var EmployeeHeader = []string{
	"ID", "Name", "Email", "Phone", "Username", "Password_Hash", "Hire_Date",
	"Active", "Hourly_Rate", "Color_Code", "Last_Login",
}

func EncodeEmployee(e entities.Employee) ([]string, error) {
	row := []string{
		e.ID,
		e.Name,
		e.Email,
		e.Phone,
		e.Username,
		e.PasswordHash,
		formatDate(e.HireDate),
		entities.YesNo(e.Active),
		formatMoney(e.HourlyRate),
		e.ColorCode,
		formatTime(e.LastLogin),
	}
	return row, CheckWidth(EmployeesTable, row, len(EmployeeHeader))
}

func DecodeEmployee(values []string) (entities.Employee, error) {
	d := decoder{values: values, idx: indexOf(EmployeeHeader)}
	e := entities.Employee{
		ID:           d.str("ID"),
		Name:         d.str("Name"),
		Email:        d.str("Email"),
		Phone:        d.str("Phone"),
		Username:     d.str("Username"),
		PasswordHash: d.str("Password_Hash"),
		HireDate:     d.ts("Hire_Date"),
		Active:       d.yesNo("Active"),
		HourlyRate:   d.num("Hourly_Rate"),
		ColorCode:    d.str("Color_Code"),
		LastLogin:    d.ts("Last_Login"),
	}
	if d.err != nil {
		return entities.Employee{}, fmt.Errorf("decode employee %s: %w", e.ID, d.err)
	}
	return e, nil
}
