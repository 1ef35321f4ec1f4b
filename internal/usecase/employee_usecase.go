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
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// EmployeeInput is the admin employee form. An empty Password on update keeps
// the current one.
type EmployeeInput struct {
	Name       string
	Email      string
	Phone      string
	Username   string
	Password   string
	HourlyRate float64
	ColorCode  string
	HireDate   time.Time
}

type IEmployeeUseCase interface {
	List(ctx context.Context) ([]entities.Employee, error)
	Get(ctx context.Context, id string) (entities.Employee, error)
	Create(ctx context.Context, in EmployeeInput) (entities.Employee, error)
	Update(ctx context.Context, id string, in EmployeeInput) (entities.Employee, error)
	ToggleActive(ctx context.Context, id string) (bool, error)
}

type EmployeeUseCase struct {
	repo interfaces.IEmployeeRepository
	now  func() time.Time
}

var _ IEmployeeUseCase = (*EmployeeUseCase)(nil)

func NewEmployeeUseCase(repo interfaces.IEmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *EmployeeUseCase) List(ctx context.Context) ([]entities.Employee, error) {
	return u.repo.List(ctx)
}

func (u *EmployeeUseCase) Get(ctx context.Context, id string) (entities.Employee, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Employee{}, ErrInvalidID
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Employee{}, err
	}
	if e.ID == "" {
		return entities.Employee{}, ErrEmployeeNotFound
	}
	return e, nil
}

func (u *EmployeeUseCase) Create(ctx context.Context, in EmployeeInput) (entities.Employee, error) {
	if err := validateEmployee(in, true); err != nil {
		return entities.Employee{}, err
	}
	username := strings.TrimSpace(in.Username)
	existing, err := u.repo.GetByUsername(ctx, username)
	if err != nil {
		return entities.Employee{}, err
	}
	if existing.ID != "" {
		return entities.Employee{}, ErrUsernameTaken
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return entities.Employee{}, err
	}

	now := u.now()
	hireDate := in.HireDate
	if hireDate.IsZero() {
		hireDate = now
	}
	e := entities.Employee{
		ID:           entities.NewID(entities.PrefixEmployee, now),
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.TrimSpace(in.Email),
		Phone:        strings.TrimSpace(in.Phone),
		Username:     username,
		PasswordHash: hash,
		HireDate:     hireDate,
		Active:       true,
		HourlyRate:   in.HourlyRate,
		ColorCode:    in.ColorCode,
	}
	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return entities.Employee{}, err
	}
	logger.FromContext(ctx).Info("[employee][usecase] created", zap.String("employee_id", created.ID), zap.String("username", created.Username))
	return created, nil
}

func (u *EmployeeUseCase) Update(ctx context.Context, id string, in EmployeeInput) (entities.Employee, error) {
	e, err := u.Get(ctx, id)
	if err != nil {
		return entities.Employee{}, err
	}
	if err := validateEmployee(in, false); err != nil {
		return entities.Employee{}, err
	}
	username := strings.TrimSpace(in.Username)
	if !strings.EqualFold(username, e.Username) {
		other, err := u.repo.GetByUsername(ctx, username)
		if err != nil {
			return entities.Employee{}, err
		}
		if other.ID != "" && other.ID != e.ID {
			return entities.Employee{}, ErrUsernameTaken
		}
	}
	if in.Password != "" {
		hash, err := HashPassword(in.Password)
		if err != nil {
			return entities.Employee{}, err
		}
		e.PasswordHash = hash
	}
	e.Name = strings.TrimSpace(in.Name)
	e.Email = strings.TrimSpace(in.Email)
	e.Phone = strings.TrimSpace(in.Phone)
	e.Username = username
	e.HourlyRate = in.HourlyRate
	e.ColorCode = in.ColorCode
	if !in.HireDate.IsZero() {
		e.HireDate = in.HireDate
	}
	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		return entities.Employee{}, notFoundAs(err, ErrEmployeeNotFound)
	}
	return updated, nil
}

// ToggleActive flips the Active flag and returns the new value.
func (u *EmployeeUseCase) ToggleActive(ctx context.Context, id string) (bool, error) {
	e, err := u.Get(ctx, id)
	if err != nil {
		return false, err
	}
	active := !e.Active
	if err := u.repo.SetActive(ctx, e.ID, active); err != nil {
		return false, notFoundAs(err, ErrEmployeeNotFound)
	}
	logger.FromContext(ctx).Info("[employee][usecase] active toggled", zap.String("employee_id", e.ID), zap.Bool("active", active))
	return active, nil
}

func validateEmployee(in EmployeeInput, requirePassword bool) error {
	if strings.TrimSpace(in.Name) == "" {
		return apperr.NewValidationError("name", "is required")
	}
	if strings.TrimSpace(in.Username) == "" {
		return apperr.NewValidationError("username", "is required")
	}
	if in.HourlyRate < 0 {
		return apperr.NewValidationError("hourly_rate", "cannot be negative")
	}
	if requirePassword || in.Password != "" {
		if len(in.Password) < minPasswordLength {
			return apperr.NewValidationError("password", "must be at least 6 characters")
		}
	}
	return nil
}

// HashPassword returns a bcrypt hash for storage in Password_Hash.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
