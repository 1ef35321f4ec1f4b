package usecase

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/apperr"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/logger"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// PaymentInput is the admin payment form. GatewayPayload is only used with the
// mercadopago method and is forwarded to the provider after enrichment.
type PaymentInput struct {
	CustomerID     string
	Amount         float64
	Date           time.Time
	Method         entities.PaymentMethod
	JobIDs         []string
	Notes          string
	GatewayPayload json.RawMessage
}

type IPaymentUseCase interface {
	List(ctx context.Context) ([]entities.Payment, error)
	Get(ctx context.Context, id string) (entities.Payment, error)
	Create(ctx context.Context, in PaymentInput) (entities.Payment, error)
	UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) error
	Invoice(ctx context.Context, id string) ([]byte, entities.Payment, error)
}

type PaymentUseCase struct {
	repo      interfaces.IPaymentRepository
	customers interfaces.ICustomerRepository
	gateway   interfaces.IPaymentGateway
	documents interfaces.IDocumentRenderer
	now       func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

// NewPaymentUseCase wires payments. gateway may be nil when online charges are
// disabled.
func NewPaymentUseCase(repo interfaces.IPaymentRepository, customers interfaces.ICustomerRepository, gateway interfaces.IPaymentGateway, documents interfaces.IDocumentRenderer) *PaymentUseCase {
	return &PaymentUseCase{
		repo:      repo,
		customers: customers,
		gateway:   gateway,
		documents: documents,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// List returns payments newest first.
func (u *PaymentUseCase) List(ctx context.Context) ([]entities.Payment, error) {
	payments, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(payments, func(a, b entities.Payment) int {
		return cmp.Compare(b.Date.UnixNano(), a.Date.UnixNano())
	})
	return payments, nil
}

func (u *PaymentUseCase) Get(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) Create(ctx context.Context, in PaymentInput) (entities.Payment, error) {
	log := logger.FromContext(ctx)
	if in.Amount <= 0 {
		return entities.Payment{}, apperr.NewValidationError("amount", "must be greater than zero")
	}
	if in.Method == "" {
		in.Method = entities.PaymentMethodCard
	}
	if _, err := entities.ParsePaymentMethod(string(in.Method)); err != nil {
		return entities.Payment{}, err
	}
	customerID := strings.TrimSpace(in.CustomerID)
	if customerID == "" {
		return entities.Payment{}, apperr.NewValidationError("customer_id", "is required")
	}
	customer, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		return entities.Payment{}, err
	}
	if customer.ID == "" {
		return entities.Payment{}, ErrCustomerNotFound
	}

	now := u.now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	p := entities.Payment{
		ID:           entities.NewID(entities.PrefixPayment, now),
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Amount:       in.Amount,
		Date:         date,
		Method:       in.Method,
		Status:       entities.PaymentStatusCompleted,
		JobIDs:       in.JobIDs,
		Notes:        in.Notes,
	}
	p.InvoiceNumber = entities.InvoiceNumber(p.ID, date)

	if p.Method == entities.PaymentMethodMercadoPago {
		if err := u.charge(ctx, &p, customer, in.GatewayPayload); err != nil {
			return entities.Payment{}, err
		}
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error("[payment][usecase] persist failed", zap.String("payment_id", p.ID), zap.String("provider_reference", p.ProviderReference), zap.Error(err))
		return entities.Payment{}, err
	}
	log.Info("[payment][usecase] created",
		zap.String("payment_id", created.ID), zap.String("invoice", created.InvoiceNumber), zap.String("status", string(created.Status)))
	return created, nil
}

// charge sends the enriched payload to the gateway. The amount always comes
// from the payment, never from the caller's payload.
func (u *PaymentUseCase) charge(ctx context.Context, p *entities.Payment, customer entities.Customer, payload json.RawMessage) error {
	log := logger.FromContext(ctx)
	if u.gateway == nil {
		return ErrGatewayUnavailable
	}
	req := map[string]any{}
	if len(payload) > 0 {
		if !json.Valid(payload) {
			return ErrInvalidGatewayPayload
		}
		if err := json.Unmarshal(payload, &req); err != nil {
			return ErrInvalidGatewayPayload
		}
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = p.ID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Invoice %s", p.InvoiceNumber)
	}
	if _, ok := req["payer"]; !ok && customer.Email != "" {
		req["payer"] = map[string]any{"email": customer.Email}
	}
	req["transaction_amount"] = p.Amount

	body, err := json.Marshal(req)
	if err != nil {
		return err
	}
	providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, body)
	if err != nil {
		log.Error("[payment][usecase] gateway create failed", zap.String("payment_id", p.ID), zap.Error(err))
		return err
	}
	p.ProviderReference = providerID
	p.Status = statusFromProvider(providerStatus)
	log.Info("[payment][usecase] gateway charged",
		zap.String("payment_id", p.ID), zap.String("provider_payment_id", providerID), zap.String("provider_status", providerStatus))
	return nil
}

func statusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusCompleted
	case "rejected", "cancelled":
		return entities.PaymentStatusFailed
	case "refunded", "charged_back":
		return entities.PaymentStatusRefunded
	default:
		return entities.PaymentStatusPending
	}
}

func (u *PaymentUseCase) UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	if _, err := entities.ParsePaymentStatus(string(status)); err != nil {
		return err
	}
	if err := u.repo.UpdateStatus(ctx, id, status); err != nil {
		return notFoundAs(err, ErrPaymentNotFound)
	}
	return nil
}

// Invoice renders the payment invoice PDF.
func (u *PaymentUseCase) Invoice(ctx context.Context, id string) ([]byte, entities.Payment, error) {
	p, err := u.Get(ctx, id)
	if err != nil {
		return nil, entities.Payment{}, err
	}
	customer, err := u.customers.GetByID(ctx, p.CustomerID)
	if err != nil {
		return nil, entities.Payment{}, err
	}
	if customer.ID == "" {
		customer = entities.Customer{ID: p.CustomerID, Name: p.CustomerName}
	}
	pdf, err := u.documents.InvoicePDF(p, customer)
	if err != nil {
		return nil, entities.Payment{}, err
	}
	return pdf, p, nil
}
