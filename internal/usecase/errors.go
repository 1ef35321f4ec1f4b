package usecase

import (
	"errors"
	"fmt"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/apperr"
)

var (
	ErrQuoteNotFound         = fmt.Errorf("quote %w", apperr.ErrNotFound)
	ErrCustomerNotFound      = fmt.Errorf("customer %w", apperr.ErrNotFound)
	ErrEmployeeNotFound      = fmt.Errorf("employee %w", apperr.ErrNotFound)
	ErrJobNotFound           = fmt.Errorf("job %w", apperr.ErrNotFound)
	ErrPaymentNotFound       = fmt.Errorf("payment %w", apperr.ErrNotFound)
	ErrInvalidID             = errors.New("invalid id")
	ErrQuoteAlreadyConverted = errors.New("quote already converted")
	ErrCustomerExists        = errors.New("customer with this email already exists")
	ErrUsernameTaken         = errors.New("username already taken")
	ErrJobNotAssigned        = errors.New("job is not assigned to this employee")
	ErrJobClosed             = errors.New("job is already closed")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidToken          = errors.New("invalid token")
	ErrGatewayUnavailable    = errors.New("payment gateway not configured")
	ErrInvalidGatewayPayload = errors.New("invalid payment gateway payload")
)

// notFoundAs replaces a store not-found error with the entity sentinel.
func notFoundAs(err, sentinel error) error {
	if errors.Is(err, apperr.ErrNotFound) {
		return sentinel
	}
	return err
}
