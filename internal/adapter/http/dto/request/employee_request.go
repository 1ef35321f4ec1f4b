package request

import (
	"regexp"
	"strings"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var colorCode = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// EmployeeForm is the admin create/edit employee form. Password is optional
// on edit.
type EmployeeForm struct {
	Name       string  `form:"name" json:"name"`
	Email      string  `form:"email" json:"email"`
	Phone      string  `form:"phone" json:"phone"`
	Username   string  `form:"username" json:"username"`
	Password   string  `form:"password" json:"password"`
	HourlyRate float64 `form:"hourly_rate" json:"hourly_rate"`
	ColorCode  string  `form:"color_code" json:"color_code"`
	HireDate   string  `form:"hire_date" json:"hire_date"`
}

func (f EmployeeForm) Validate() error {
	trimFields(&f.Name, &f.Username, &f.Email, &f.ColorCode, &f.HireDate)
	return asValidationError(validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required.Error("is required"), validation.Length(1, 120)),
		validation.Field(&f.Username, validation.Required.Error("is required"), validation.Length(3, 40)),
		validation.Field(&f.Email, is.EmailFormat.Error("must be a valid email address")),
		validation.Field(&f.HourlyRate, validation.Min(0.0)),
		validation.Field(&f.ColorCode, validation.Match(colorCode).Error("must look like #3B82F6")),
		validation.Field(&f.HireDate, validDate),
	))
}

func (f EmployeeForm) ToInput() (usecase.EmployeeInput, error) {
	if err := f.Validate(); err != nil {
		return usecase.EmployeeInput{}, err
	}
	hired, err := parseDate("hire_date", f.HireDate)
	if err != nil {
		return usecase.EmployeeInput{}, err
	}
	return usecase.EmployeeInput{
		Name:       strings.TrimSpace(f.Name),
		Email:      strings.TrimSpace(f.Email),
		Phone:      strings.TrimSpace(f.Phone),
		Username:   strings.TrimSpace(f.Username),
		Password:   f.Password,
		HourlyRate: f.HourlyRate,
		ColorCode:  strings.TrimSpace(f.ColorCode),
		HireDate:   hired,
	}, nil
}
