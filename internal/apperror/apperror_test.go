package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError(
		FieldError{Field: "name", Message: "is required"},
		FieldError{Field: "email", Message: "must be a valid email"},
	)
	assert.Equal(t, "validation failed: name: is required; email: must be a valid email", err.Error())
}

func TestPersistenceKeepsDomainErrors(t *testing.T) {
	nf := NotFound("customer", 7)
	wrapped := fmt.Errorf("lock parties: %w", nf)

	got := Persistence("create order", wrapped)
	assert.Same(t, wrapped, got)

	var target *NotFoundError
	assert.True(t, errors.As(got, &target))
	assert.Equal(t, int64(7), target.ID)
}

func TestPersistenceWrapsStoreFaults(t *testing.T) {
	cause := errors.New("connection reset")
	got := Persistence("insert order", cause)

	var pe *PersistenceError
	assert.True(t, errors.As(got, &pe))
	assert.ErrorIs(t, got, cause)
	assert.Nil(t, Persistence("noop", nil))
}

func TestInsufficientStockMessage(t *testing.T) {
	err := &InsufficientStockError{ProductID: 1, ProductName: "Widget", Available: 2, Requested: 3}
	assert.Equal(t, "insufficient stock for product Widget: available 2, requested 3", err.Error())
	assert.True(t, IsDomain(fmt.Errorf("reserve: %w", err)))
}
