package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/apperr"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/logger"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type ICustomerUseCase interface {
	List(ctx context.Context, includeInactive bool) ([]entities.Customer, error)
	Get(ctx context.Context, id string) (entities.Customer, error)
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	SetStatus(ctx context.Context, id string, status entities.CustomerStatus) error
	Delete(ctx context.Context, id string) error
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
	now  func() time.Time
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// List hides deleted customers; inactive ones only show when asked.
func (u *CustomerUseCase) List(ctx context.Context, includeInactive bool) ([]entities.Customer, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Customer, 0, len(all))
	for _, c := range all {
		switch c.Status {
		case entities.CustomerStatusDeleted:
			continue
		case entities.CustomerStatusInactive:
			if !includeInactive {
				continue
			}
		}
		out = append(out, c)
	}
	return out, nil
}

func (u *CustomerUseCase) Get(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	if c.Name == "" {
		return entities.Customer{}, apperr.NewValidationError("name", "is required")
	}
	if c.Email != "" {
		existing, err := u.repo.GetByEmail(ctx, c.Email)
		if err != nil {
			return entities.Customer{}, err
		}
		if existing.ID != "" {
			return entities.Customer{}, ErrCustomerExists
		}
	}

	now := u.now()
	c.ID = entities.NewID(entities.PrefixCustomer, now)
	c.AddedDate = now
	if c.Status == "" {
		c.Status = entities.CustomerStatusActive
	}
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Customer{}, err
	}
	logger.FromContext(ctx).Info("[customer][usecase] created", zap.String("customer_id", created.ID))
	return created, nil
}

// Update replaces the editable fields; identity and creation date are kept.
func (u *CustomerUseCase) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	existing, err := u.Get(ctx, c.ID)
	if err != nil {
		return entities.Customer{}, err
	}
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.Customer{}, apperr.NewValidationError("name", "is required")
	}
	c.AddedDate = existing.AddedDate
	if c.Status == "" {
		c.Status = existing.Status
	}
	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.Customer{}, notFoundAs(err, ErrCustomerNotFound)
	}
	return updated, nil
}

func (u *CustomerUseCase) SetStatus(ctx context.Context, id string, status entities.CustomerStatus) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	if _, err := entities.ParseCustomerStatus(string(status)); err != nil {
		return err
	}
	if err := u.repo.UpdateStatus(ctx, id, status); err != nil {
		return notFoundAs(err, ErrCustomerNotFound)
	}
	logger.FromContext(ctx).Info("[customer][usecase] status updated", zap.String("customer_id", id), zap.String("status", string(status)))
	return nil
}

// Delete is a soft delete: the row stays with status deleted.
func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	return u.SetStatus(ctx, id, entities.CustomerStatusDeleted)
}
