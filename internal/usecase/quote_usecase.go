package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/apperr"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/pricing"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/logger"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Quote submission outcomes reported to the metrics recorder.
const (
	OutcomePersisted = "persisted"
	OutcomeDegraded  = "degraded"
	OutcomeInvalid   = "invalid"
)

const (
	DefaultState     = "MA"
	WebQuoteAuthor   = "Web Form"
	DegradedQuoteMsg = "There was an issue processing your quote, but we received your information. Our team will contact you shortly."
	defaultBathrooms = 2
	defaultKitchens  = 1
	defaultWindows   = 10
	vacuumMaterialID = "MAT001"
)

// QuoteIntake is what the public quote wizard collects.
type QuoteIntake struct {
	Contact        entities.Contact
	PropertyType   string
	SquareFeet     float64
	AddOns         []string
	Frequency      string
	ServiceType    string
	Bedrooms       int
	Bathrooms      int
	Kitchens       int
	Mileage        float64
	AdditionalInfo string
}

// QuoteConfirmation is shown to the customer after Submit. Persisted is false
// when the quote could not be written and Quote.ID is a TEMP id.
type QuoteConfirmation struct {
	Quote        entities.Quote
	Breakdown    pricing.Breakdown
	Persisted    bool
	ErrorMessage string
}

// QuoteUpdate carries the admin-editable quote fields. Nil pointers are left
// untouched.
type QuoteUpdate struct {
	Notes         *string
	InternalNotes *string
	AssignedTo    *string
	FollowUpDate  *time.Time
	ServiceType   *string
	Frequency     *string
	TotalAmount   *float64
}

// SubmissionRecorder receives quote submission outcomes.
type SubmissionRecorder interface {
	RecordQuoteSubmission(outcome string)
}

type IQuoteUseCase interface {
	Estimate(ctx context.Context, in QuoteIntake) (pricing.Breakdown, error)
	Submit(ctx context.Context, in QuoteIntake) (QuoteConfirmation, error)
	List(ctx context.Context, status string) ([]entities.Quote, error)
	Get(ctx context.Context, id string) (entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) error
	Update(ctx context.Context, id string, upd QuoteUpdate) (entities.Quote, error)
	Convert(ctx context.Context, id string) (entities.Quote, entities.Customer, error)
	Decline(ctx context.Context, id, reason string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo      interfaces.IQuoteRepository
	customers interfaces.ICustomerRepository
	notifier  interfaces.INotifier
	recorder  SubmissionRecorder
	now       func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

// NewQuoteUseCase wires the quote workflow. notifier and recorder may be nil.
func NewQuoteUseCase(repo interfaces.IQuoteRepository, customers interfaces.ICustomerRepository, notifier interfaces.INotifier, recorder SubmissionRecorder) *QuoteUseCase {
	return &QuoteUseCase{
		repo:      repo,
		customers: customers,
		notifier:  notifier,
		recorder:  recorder,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *QuoteUseCase) Estimate(ctx context.Context, in QuoteIntake) (pricing.Breakdown, error) {
	addOns, err := parseAddOns(in.AddOns)
	if err != nil {
		return pricing.Breakdown{}, err
	}
	b, err := pricing.Calculate(pricingInput(in, addOns))
	if err != nil {
		return pricing.Breakdown{}, err
	}
	if !b.KnownFreq && in.Frequency != "" {
		logger.FromContext(ctx).Debug("[quote][usecase] unknown frequency, no discount applied", zap.String("frequency", in.Frequency))
	}
	return b, nil
}

// Submit runs intake -> validated -> priced -> persisted -> confirmed.
//
// Only validation failures return an error. When the store write fails the
// customer still gets a confirmation carrying a TEMP id.
func (u *QuoteUseCase) Submit(ctx context.Context, in QuoteIntake) (QuoteConfirmation, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(in.Contact.Name) == "" {
		u.record(OutcomeInvalid)
		return QuoteConfirmation{}, apperr.NewValidationError("name", "is required")
	}
	b, err := u.Estimate(ctx, in)
	if err != nil {
		u.record(OutcomeInvalid)
		log.Info("[quote][usecase] submit rejected", zap.Error(err))
		return QuoteConfirmation{}, err
	}

	now := u.now()
	q := u.buildQuote(in, b, now)
	q.ID = entities.NewID(entities.PrefixQuote, now)

	saved, err := u.repo.Create(ctx, q)
	if err != nil {
		tempID := entities.TempID(now)
		log.Warn("[quote][usecase] submit not persisted, returning temporary confirmation",
			zap.String("quote_id", q.ID), zap.String("temp_id", tempID), zap.Error(err))
		u.record(OutcomeDegraded)
		q.ID = tempID
		return QuoteConfirmation{Quote: q, Breakdown: b, Persisted: false, ErrorMessage: DegradedQuoteMsg}, nil
	}
	u.record(OutcomePersisted)
	log.Info("[quote][usecase] submit persisted", zap.String("quote_id", saved.ID), zap.Float64("total", saved.Costs.TotalAmount))

	if u.notifier != nil {
		if err := u.notifier.NotifyQuote(ctx, saved); err != nil {
			log.Warn("[quote][usecase] notification failed", zap.String("quote_id", saved.ID), zap.Error(err))
		}
	}
	return QuoteConfirmation{Quote: saved, Breakdown: b, Persisted: true}, nil
}

func (u *QuoteUseCase) buildQuote(in QuoteIntake, b pricing.Breakdown, now time.Time) entities.Quote {
	contact := in.Contact
	if strings.TrimSpace(contact.State) == "" {
		contact.State = DefaultState
	}
	bathrooms := in.Bathrooms
	if bathrooms <= 0 {
		bathrooms = defaultBathrooms
	}
	kitchens := in.Kitchens
	if kitchens <= 0 {
		kitchens = defaultKitchens
	}
	serviceType := strings.TrimSpace(in.ServiceType)
	if serviceType == "" {
		serviceType = "regular"
	}

	var materials []entities.Material
	var services []entities.ServiceItem
	for _, raw := range in.AddOns {
		a, ok := pricing.ParseAddOn(raw)
		if !ok {
			continue
		}
		if a == pricing.AddOnVacuum {
			materials = append(materials, entities.Material{ID: vacuumMaterialID, Quantity: 1})
		}
		services = append(services, entities.ServiceItem{ID: pricing.ServiceID(a), Quantity: 1})
	}

	return entities.Quote{
		DateCreated: now,
		Customer:    contact,
		Properties: []entities.Property{{
			ID:           1,
			Name:         titleWord(in.PropertyType) + " Property",
			FacilityType: strings.ToLower(in.PropertyType),
			SquareFeet:   in.SquareFeet,
			Restrooms:    bathrooms,
			Windows:      defaultWindows,
			Rooms:        in.Bedrooms + bathrooms + kitchens,
			Floors:       1,
		}},
		Materials:     materials,
		Services:      services,
		Employees:     []entities.EmployeeRef{},
		Costs:         b.Costs(),
		Status:        entities.QuoteStatusPending,
		ValidUntil:    now.Add(entities.QuoteValidity),
		Notes:         in.AdditionalInfo,
		InternalNotes: fmt.Sprintf("Web quote from %s property - %v sqft - %s service", in.PropertyType, in.SquareFeet, in.Frequency),
		CreatedBy:     WebQuoteAuthor,
		ServiceType:   serviceType,
		Frequency:     in.Frequency,
		Mileage:       in.Mileage,
	}
}

// List returns quotes newest first, optionally filtered by status.
func (u *QuoteUseCase) List(ctx context.Context, status string) ([]entities.Quote, error) {
	var want entities.QuoteStatus
	if strings.TrimSpace(status) != "" {
		s, err := entities.ParseQuoteStatus(status)
		if err != nil {
			return nil, err
		}
		want = s
	}
	quotes, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Quote, 0, len(quotes))
	for _, q := range quotes {
		if want == "" || q.Status == want {
			out = append(out, q)
		}
	}
	slices.SortStableFunc(out, func(a, b entities.Quote) int {
		return cmp.Compare(b.DateCreated.UnixNano(), a.DateCreated.UnixNano())
	})
	return out, nil
}

func (u *QuoteUseCase) Get(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	if _, err := entities.ParseQuoteStatus(string(status)); err != nil {
		return err
	}
	if err := u.repo.UpdateStatus(ctx, id, status); err != nil {
		return notFoundAs(err, ErrQuoteNotFound)
	}
	logger.FromContext(ctx).Info("[quote][usecase] status updated", zap.String("quote_id", id), zap.String("status", string(status)))
	return nil
}

func (u *QuoteUseCase) Update(ctx context.Context, id string, upd QuoteUpdate) (entities.Quote, error) {
	q, err := u.Get(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if upd.Notes != nil {
		q.Notes = *upd.Notes
	}
	if upd.InternalNotes != nil {
		q.InternalNotes = *upd.InternalNotes
	}
	if upd.AssignedTo != nil {
		q.AssignedTo = strings.TrimSpace(*upd.AssignedTo)
	}
	if upd.FollowUpDate != nil {
		q.FollowUpDate = *upd.FollowUpDate
	}
	if upd.ServiceType != nil {
		q.ServiceType = *upd.ServiceType
	}
	if upd.Frequency != nil {
		q.Frequency = *upd.Frequency
	}
	if upd.TotalAmount != nil {
		if *upd.TotalAmount < 0 {
			return entities.Quote{}, apperr.NewValidationError("total_amount", "cannot be negative")
		}
		q.Costs.TotalAmount = *upd.TotalAmount
	}
	updated, err := u.repo.Update(ctx, q)
	if err != nil {
		return entities.Quote{}, notFoundAs(err, ErrQuoteNotFound)
	}
	return updated, nil
}

// Convert turns a quote into a customer, reusing an existing customer with the
// same email.
func (u *QuoteUseCase) Convert(ctx context.Context, id string) (entities.Quote, entities.Customer, error) {
	log := logger.FromContext(ctx)
	q, err := u.Get(ctx, id)
	if err != nil {
		return entities.Quote{}, entities.Customer{}, err
	}
	if q.Status == entities.QuoteStatusConverted {
		return entities.Quote{}, entities.Customer{}, ErrQuoteAlreadyConverted
	}

	now := u.now()
	customer := entities.Customer{}
	if email := strings.TrimSpace(q.Customer.Email); email != "" {
		customer, err = u.customers.GetByEmail(ctx, email)
		if err != nil {
			return entities.Quote{}, entities.Customer{}, err
		}
	}
	if customer.ID == "" {
		customer, err = u.customers.Create(ctx, customerFromQuote(q, now))
		if err != nil {
			return entities.Quote{}, entities.Customer{}, err
		}
		log.Info("[quote][usecase] customer created from quote", zap.String("quote_id", q.ID), zap.String("customer_id", customer.ID))
	}

	q.CustomerID = customer.ID
	q.ConvertedDate = now
	q.Status = entities.QuoteStatusConverted
	updated, err := u.repo.Update(ctx, q)
	if err != nil {
		return entities.Quote{}, entities.Customer{}, notFoundAs(err, ErrQuoteNotFound)
	}
	log.Info("[quote][usecase] converted", zap.String("quote_id", q.ID), zap.String("customer_id", customer.ID))
	return updated, customer, nil
}

func (u *QuoteUseCase) Decline(ctx context.Context, id, reason string) (entities.Quote, error) {
	q, err := u.Get(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	q.Status = entities.QuoteStatusDeclined
	q.DeclineReason = strings.TrimSpace(reason)
	updated, err := u.repo.Update(ctx, q)
	if err != nil {
		return entities.Quote{}, notFoundAs(err, ErrQuoteNotFound)
	}
	return updated, nil
}

func (u *QuoteUseCase) record(outcome string) {
	if u.recorder != nil {
		u.recorder.RecordQuoteSubmission(outcome)
	}
}

func customerFromQuote(q entities.Quote, now time.Time) entities.Customer {
	c := entities.Customer{
		ID:                  entities.NewID(entities.PrefixCustomer, now),
		Name:                q.Customer.Name,
		Email:               q.Customer.Email,
		Phone:               q.Customer.Phone,
		Address:             joinAddress(q.Customer),
		ServiceFrequency:    q.Frequency,
		AddedDate:           now,
		Status:              entities.CustomerStatusActive,
		SpecialInstructions: q.Notes,
	}
	if len(q.Properties) > 0 {
		c.BusinessType = q.Properties[0].FacilityType
		c.SquareFeet = q.Properties[0].SquareFeet
	}
	return c
}

func joinAddress(c entities.Contact) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{c.Address, c.City, strings.TrimSpace(c.State + " " + c.Zip)} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func parseAddOns(raw []string) ([]pricing.AddOn, error) {
	out := make([]pricing.AddOn, 0, len(raw))
	for _, r := range raw {
		if strings.TrimSpace(r) == "" {
			continue
		}
		a, ok := pricing.ParseAddOn(r)
		if !ok {
			return nil, apperr.NewValidationError("services", "unknown service "+r)
		}
		out = append(out, a)
	}
	return out, nil
}

func pricingInput(in QuoteIntake, addOns []pricing.AddOn) pricing.Input {
	bathrooms := in.Bathrooms
	if bathrooms <= 0 {
		bathrooms = defaultBathrooms
	}
	return pricing.Input{
		PropertyType: in.PropertyType,
		SquareFeet:   in.SquareFeet,
		Frequency:    in.Frequency,
		ServiceType:  in.ServiceType,
		AddOns:       addOns,
		Bathrooms:    bathrooms,
		Mileage:      in.Mileage,
	}
}

func titleWord(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
