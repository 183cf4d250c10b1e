package port

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation marks input rejected before reaching the store.
	ErrValidation = errors.New("validation failed")
	// ErrHasDependents marks a delete refused because invoices still
	// reference the entity.
	ErrHasDependents = errors.New("entity has dependent invoices")
	// ErrStoreUnavailable is returned by writes when no database is
	// configured and the service runs against the offline store.
	ErrStoreUnavailable = errors.New("record store unavailable")
)

// ValidationError describes one rejected input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrValidation) hold for every ValidationError.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Invalid is shorthand for a ValidationError on field.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// DependentsError is returned when a customer or vendor cannot be deleted
// because Count invoices reference it. A zero Count means the store refused
// the delete without reporting how many rows blocked it.
type DependentsError struct {
	Entity string
	Count  int
}

func (e *DependentsError) Error() string {
	if e.Count <= 0 {
		return fmt.Sprintf("cannot delete %s: invoices still reference it", e.Entity)
	}
	return fmt.Sprintf("cannot delete %s with %d invoice(s); delete the invoices first", e.Entity, e.Count)
}

// Is makes errors.Is(err, ErrHasDependents) hold for every DependentsError.
func (e *DependentsError) Is(target error) bool { return target == ErrHasDependents }
