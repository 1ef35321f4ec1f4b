// Package apperr holds the error taxonomy shared by the pricing, storage and
// workflow layers. Callers match with errors.Is against the sentinels.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrSchemaMismatch   = errors.New("schema mismatch")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrRateLimited      = errors.New("rate limited")
	ErrNotFound         = errors.New("not found")
)

// ValidationError reports bad user input on a single field.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// SchemaMismatchError reports a row whose width does not match its table layout.
type SchemaMismatchError struct {
	Table string
	Want  int
	Got   int
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("schema mismatch on %s: want %d fields, got %d", e.Table, e.Want, e.Got)
}

func (e *SchemaMismatchError) Is(target error) bool {
	return target == ErrSchemaMismatch
}

// NotFound wraps ErrNotFound with the missing identity.
func NotFound(table, id string) error {
	return fmt.Errorf("%s %q: %w", table, id, ErrNotFound)
}

// Unavailable wraps a backend failure as ErrStoreUnavailable.
func Unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrStoreUnavailable, err)
}

// RateLimited wraps a quota rejection as ErrRateLimited.
func RateLimited(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrRateLimited, err)
}
