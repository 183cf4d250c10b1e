package port

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDependentsError(t *testing.T) {
	err := fmt.Errorf("delete: %w", &DependentsError{Entity: "customer", Count: 3})

	assert.True(t, errors.Is(err, ErrHasDependents))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.EqualError(t, err, "delete: cannot delete customer with 3 invoice(s); delete the invoices first")

	var de *DependentsError
	assert.True(t, errors.As(err, &de))
	assert.Equal(t, 3, de.Count)
}

func TestDependentsErrorWithoutCount(t *testing.T) {
	err := &DependentsError{Entity: "vendor"}
	assert.EqualError(t, err, "cannot delete vendor: invoices still reference it")
}

func TestValidationError(t *testing.T) {
	err := Invalid("amount", "must not be negative")

	assert.True(t, errors.Is(err, ErrValidation))
	assert.EqualError(t, err, "amount: must not be negative")
}
