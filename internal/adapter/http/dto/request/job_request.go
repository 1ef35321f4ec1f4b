package request

import (
	"strings"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// JobForm is the admin create/edit job form.
type JobForm struct {
	CustomerID  string  `form:"customer_id" json:"customer_id"`
	EmployeeID  string  `form:"employee_id" json:"employee_id"`
	Date        string  `form:"date" json:"date"`
	Time        string  `form:"time" json:"time"`
	Address     string  `form:"address" json:"address"`
	ServiceType string  `form:"service_type" json:"service_type"`
	Price       float64 `form:"price" json:"price"`
	Notes       string  `form:"notes" json:"notes"`
	Status      string  `form:"status" json:"status"`
}

func (f JobForm) Validate() error {
	trimFields(&f.CustomerID, &f.Date)
	return asValidationError(validation.ValidateStruct(&f,
		validation.Field(&f.CustomerID, validation.Required.Error("is required")),
		validation.Field(&f.Date, validation.Required.Error("is required"), validDate),
		validation.Field(&f.Price, validation.Min(0.0)),
	))
}

func (f JobForm) ToInput() (usecase.JobInput, error) {
	if err := f.Validate(); err != nil {
		return usecase.JobInput{}, err
	}
	date, err := parseDate("date", f.Date)
	if err != nil {
		return usecase.JobInput{}, err
	}
	in := usecase.JobInput{
		CustomerID:  strings.TrimSpace(f.CustomerID),
		EmployeeID:  strings.TrimSpace(f.EmployeeID),
		Date:        date,
		Time:        strings.TrimSpace(f.Time),
		Address:     strings.TrimSpace(f.Address),
		ServiceType: strings.TrimSpace(f.ServiceType),
		Price:       f.Price,
		Notes:       strings.TrimSpace(f.Notes),
	}
	if strings.TrimSpace(f.Status) != "" {
		status, err := entities.ParseJobStatus(f.Status)
		if err != nil {
			return usecase.JobInput{}, err
		}
		in.Status = status
	}
	return in, nil
}

// CompleteJobForm is posted by the employee portal when a visit ends. The
// optional photo arrives as a multipart file named "photo".
type CompleteJobForm struct {
	Notes string `form:"notes" json:"notes"`
}
