package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestTypedErrorsMatchSentinels(t *testing.T) {
	var err error = NewValidationError("square_feet", "must be greater than zero")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("validation error should match ErrValidation")
	}
	if errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("validation error should not match ErrSchemaMismatch")
	}

	err = fmt.Errorf("encode: %w", &SchemaMismatchError{Table: "Quotes", Want: 37, Got: 36})
	if !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("wrapped schema error should match ErrSchemaMismatch")
	}
	var sm *SchemaMismatchError
	if !errors.As(err, &sm) || sm.Got != 36 {
		t.Fatalf("expected to unwrap SchemaMismatchError, got %v", err)
	}
}

func TestWrappers(t *testing.T) {
	cause := errors.New("boom")
	if !errors.Is(NotFound("Jobs", "JOB1"), ErrNotFound) {
		t.Fatalf("NotFound should wrap ErrNotFound")
	}
	if !errors.Is(Unavailable("read", cause), ErrStoreUnavailable) {
		t.Fatalf("Unavailable should wrap ErrStoreUnavailable")
	}
	if !errors.Is(RateLimited("append", cause), ErrRateLimited) {
		t.Fatalf("RateLimited should wrap ErrRateLimited")
	}
}
