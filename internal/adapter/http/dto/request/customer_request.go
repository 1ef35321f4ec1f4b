package request

import (
	"strings"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CustomerForm is the admin create/edit customer form.
type CustomerForm struct {
	Name                string  `form:"name" json:"name"`
	Email               string  `form:"email" json:"email"`
	Phone               string  `form:"phone" json:"phone"`
	Address             string  `form:"address" json:"address"`
	BusinessType        string  `form:"business_type" json:"business_type"`
	SquareFeet          float64 `form:"square_feet" json:"square_feet"`
	ServiceFrequency    string  `form:"service_frequency" json:"service_frequency"`
	SpecialInstructions string  `form:"special_instructions" json:"special_instructions"`
	PreferredDay        string  `form:"preferred_day" json:"preferred_day"`
	PreferredTime       string  `form:"preferred_time" json:"preferred_time"`
}

func (f CustomerForm) Validate() error {
	trimFields(&f.Name, &f.Email)
	return asValidationError(validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required.Error("is required"), validation.Length(1, 120)),
		validation.Field(&f.Email, is.EmailFormat.Error("must be a valid email address")),
		validation.Field(&f.SquareFeet, validation.Min(0.0)),
	))
}

// ToCustomer maps the form to an entity; id is empty on create.
func (f CustomerForm) ToCustomer(id string) (entities.Customer, error) {
	if err := f.Validate(); err != nil {
		return entities.Customer{}, err
	}
	return entities.Customer{
		ID:                  id,
		Name:                strings.TrimSpace(f.Name),
		Email:               strings.ToLower(strings.TrimSpace(f.Email)),
		Phone:               strings.TrimSpace(f.Phone),
		Address:             strings.TrimSpace(f.Address),
		BusinessType:        strings.TrimSpace(f.BusinessType),
		SquareFeet:          f.SquareFeet,
		ServiceFrequency:    strings.ToLower(strings.TrimSpace(f.ServiceFrequency)),
		SpecialInstructions: strings.TrimSpace(f.SpecialInstructions),
		PreferredDay:        strings.TrimSpace(f.PreferredDay),
		PreferredTime:       strings.TrimSpace(f.PreferredTime),
	}, nil
}

// StatusForm carries a status change for customers, quotes and payments.
type StatusForm struct {
	Status string `form:"status" json:"status"`
}
