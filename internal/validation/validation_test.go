package validation

import (
	"errors"
	"testing"

	"github.com/fekuna/omnipos-backoffice/internal/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type line struct {
	ProductID int64 `json:"product_id" validate:"gt=0"`
	Quantity  int   `json:"quantity" validate:"min=1"`
}

type sample struct {
	Name   string          `json:"name" validate:"required,max=5"`
	Email  string          `json:"email" validate:"omitempty,email"`
	Status string          `json:"status" validate:"omitempty,oneof=active inactive"`
	Date   string          `json:"date" validate:"required,datetime=2006-01-02"`
	Price  decimal.Decimal `json:"price" validate:"gte=0"`
	Items  []line          `json:"items" validate:"required,min=1,dive"`
}

func TestStructValid(t *testing.T) {
	s := sample{
		Name:  "abc",
		Date:  "2024-01-31",
		Price: decimal.RequireFromString("10.50"),
		Items: []line{{ProductID: 1, Quantity: 2}},
	}
	assert.NoError(t, Struct(&s))
}

func TestStructCollectsFieldErrors(t *testing.T) {
	s := sample{
		Name:   "too long name",
		Email:  "not-an-email",
		Status: "deleted",
		Date:   "31/01/2024",
		Price:  decimal.NewFromInt(-1),
		Items:  []line{{ProductID: 0, Quantity: 0}},
	}

	err := Struct(&s)
	require.Error(t, err)

	var verr *apperror.ValidationError
	require.True(t, errors.As(err, &verr))

	got := map[string]string{}
	for _, f := range verr.Fields {
		got[f.Field] = f.Message
	}
	assert.Equal(t, "may not be greater than 5 characters", got["name"])
	assert.Equal(t, "must be a valid email address", got["email"])
	assert.Equal(t, "must be one of: active, inactive", got["status"])
	assert.Equal(t, "must be a date in format YYYY-MM-DD", got["date"])
	assert.Equal(t, "must be greater than or equal to 0", got["price"])
	assert.Equal(t, "must be greater than 0", got["items[0].product_id"])
	assert.Equal(t, "must be at least 1", got["items[0].quantity"])
}

func TestStructEmptyItems(t *testing.T) {
	s := sample{Name: "a", Date: "2024-01-01", Items: []line{}}
	err := Struct(&s)

	var verr *apperror.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "items", verr.Fields[0].Field)
	assert.Equal(t, "must have at least 1 item(s)", verr.Fields[0].Message)
}
