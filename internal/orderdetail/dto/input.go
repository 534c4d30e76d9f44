package dto

import "github.com/fekuna/omnipos-backoffice/internal/validation"

// Price and subtotal are always computed by the order engine; any values a
// client sends are ignored.
type AddDetailInput struct {
	OrderID   int64 `json:"order_id" validate:"gt=0"`
	ProductID int64 `json:"product_id" validate:"gt=0"`
	Quantity  int   `json:"quantity" validate:"min=1,max=2147483647"`
}

func (in *AddDetailInput) Validate() error {
	return validation.Struct(in)
}

type UpdateDetailInput struct {
	ProductID int64 `json:"product_id" validate:"gt=0"`
	Quantity  int   `json:"quantity" validate:"min=1,max=2147483647"`
}

func (in *UpdateDetailInput) Validate() error {
	return validation.Struct(in)
}
