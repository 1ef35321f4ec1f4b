package request

import (
	"strings"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// QuoteForm is the public quote wizard. Services holds the add-ons ticked by
// the customer.
type QuoteForm struct {
	Name           string   `form:"name" json:"name"`
	Email          string   `form:"email" json:"email"`
	Phone          string   `form:"phone" json:"phone"`
	Address        string   `form:"address" json:"address"`
	City           string   `form:"city" json:"city"`
	State          string   `form:"state" json:"state"`
	Zip            string   `form:"zip" json:"zip"`
	PropertyType   string   `form:"property_type" json:"property_type"`
	SquareFeet     float64  `form:"sqft" json:"sqft"`
	Services       []string `form:"services" json:"services"`
	Frequency      string   `form:"frequency" json:"frequency"`
	ServiceType    string   `form:"service_type" json:"service_type"`
	AdditionalInfo string   `form:"additional_info" json:"additional_info"`
	Bedrooms       int      `form:"bedrooms" json:"bedrooms"`
	Bathrooms      int      `form:"bathrooms" json:"bathrooms"`
	Kitchens       int      `form:"kitchen" json:"kitchen"`
}

// Defaults mirror what the wizard pre-selects when a field is left out.
func (f *QuoteForm) applyDefaults() {
	if strings.TrimSpace(f.PropertyType) == "" {
		f.PropertyType = "office"
	}
	if strings.TrimSpace(f.Frequency) == "" {
		f.Frequency = "monthly"
	}
}

func (f QuoteForm) Validate() error {
	trimFields(&f.Name, &f.Email, &f.Phone, &f.Zip)
	return asValidationError(validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required.Error("is required"), validation.Length(0, 120)),
		validation.Field(&f.Email, is.EmailFormat.Error("must be a valid email address")),
		validation.Field(&f.Phone, validation.Length(0, 40)),
		validation.Field(&f.Zip, validation.Length(0, 10)),
		validation.Field(&f.Bedrooms, validation.Min(0)),
		validation.Field(&f.Bathrooms, validation.Min(0)),
		validation.Field(&f.Kitchens, validation.Min(0)),
	))
}

// addOns accepts repeated checkbox values as well as one comma separated value.
func (f QuoteForm) addOns() []string {
	var out []string
	for _, v := range f.Services {
		out = append(out, splitList(v)...)
	}
	return out
}

// ToIntake validates the form and maps it to the use case input. Square
// footage is checked by the pricing calculator.
func (f QuoteForm) ToIntake() (usecase.QuoteIntake, error) {
	f.applyDefaults()
	if err := f.Validate(); err != nil {
		return usecase.QuoteIntake{}, err
	}
	return usecase.QuoteIntake{
		Contact: entities.Contact{
			Name:    strings.TrimSpace(f.Name),
			Email:   strings.TrimSpace(f.Email),
			Phone:   strings.TrimSpace(f.Phone),
			Address: strings.TrimSpace(f.Address),
			City:    strings.TrimSpace(f.City),
			State:   strings.ToUpper(strings.TrimSpace(f.State)),
			Zip:     strings.TrimSpace(f.Zip),
		},
		PropertyType:   strings.ToLower(strings.TrimSpace(f.PropertyType)),
		SquareFeet:     f.SquareFeet,
		AddOns:         f.addOns(),
		Frequency:      strings.ToLower(strings.TrimSpace(f.Frequency)),
		ServiceType:    strings.ToLower(strings.TrimSpace(f.ServiceType)),
		Bedrooms:       f.Bedrooms,
		Bathrooms:      f.Bathrooms,
		Kitchens:       f.Kitchens,
		AdditionalInfo: strings.TrimSpace(f.AdditionalInfo),
	}, nil
}
