package request

import (
	"strconv"
	"strings"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/apperr"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// QuoteUpdateForm is the admin quote edit form. Notes, assignment and
// follow-up are always applied; the other fields only when non-empty.
type QuoteUpdateForm struct {
	Notes         string `form:"notes" json:"notes"`
	InternalNotes string `form:"internal_notes" json:"internal_notes"`
	AssignedTo    string `form:"assigned_to" json:"assigned_to"`
	FollowUpDate  string `form:"follow_up_date" json:"follow_up_date"`
	ServiceType   string `form:"service_type" json:"service_type"`
	Frequency     string `form:"frequency" json:"frequency"`
	TotalAmount   string `form:"total_amount" json:"total_amount"`
}

func (f QuoteUpdateForm) Validate() error {
	trimFields(&f.FollowUpDate)
	return asValidationError(validation.ValidateStruct(&f,
		validation.Field(&f.FollowUpDate, validDate),
		validation.Field(&f.Notes, validation.Length(0, 2000)),
		validation.Field(&f.InternalNotes, validation.Length(0, 2000)),
	))
}

func (f QuoteUpdateForm) ToUpdate() (usecase.QuoteUpdate, error) {
	if err := f.Validate(); err != nil {
		return usecase.QuoteUpdate{}, err
	}
	follow, err := parseDate("follow_up_date", f.FollowUpDate)
	if err != nil {
		return usecase.QuoteUpdate{}, err
	}
	notes := strings.TrimSpace(f.Notes)
	internal := strings.TrimSpace(f.InternalNotes)
	assigned := strings.TrimSpace(f.AssignedTo)
	upd := usecase.QuoteUpdate{
		Notes:         &notes,
		InternalNotes: &internal,
		AssignedTo:    &assigned,
		FollowUpDate:  &follow,
	}
	if v := strings.ToLower(strings.TrimSpace(f.ServiceType)); v != "" {
		upd.ServiceType = &v
	}
	if v := strings.ToLower(strings.TrimSpace(f.Frequency)); v != "" {
		upd.Frequency = &v
	}
	if raw := strings.TrimSpace(f.TotalAmount); raw != "" {
		total, err := strconv.ParseFloat(strings.TrimPrefix(strings.ReplaceAll(raw, ",", ""), "$"), 64)
		if err != nil || total < 0 {
			return usecase.QuoteUpdate{}, apperr.NewValidationError("total_amount", "must be a positive amount")
		}
		upd.TotalAmount = &total
	}
	return upd, nil
}

// DeclineForm carries the reason a quote was lost.
type DeclineForm struct {
	Reason string `form:"reason" json:"reason"`
}

// LoginForm is shared by the admin and employee login pages.
type LoginForm struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}
