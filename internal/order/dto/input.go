package dto

import (
	"time"

	"github.com/fekuna/omnipos-backoffice/internal/validation"
	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

type OrderItemInput struct {
	ProductID int64 `json:"product_id" validate:"gt=0"`
	Quantity  int   `json:"quantity" validate:"min=1,max=2147483647"`
	// Price keeps an existing line's snapshot through an edit. Clients
	// cannot set it; new lines are priced at the product's selling price.
	Price *decimal.Decimal `json:"-" validate:"-"`
}

// OrderInput is the body of both create and replace.
type OrderInput struct {
	OrderDate  string           `json:"order_date" validate:"required,datetime=2006-01-02"`
	CustomerID int64            `json:"customer_id" validate:"gt=0"`
	EmployeeID int64            `json:"employee_id" validate:"gt=0"`
	ShipperID  int64            `json:"shipper_id" validate:"gt=0"`
	Items      []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

func (in *OrderInput) Validate() error {
	return validation.Struct(in)
}

// Date returns the parsed order date. Call after Validate.
func (in *OrderInput) Date() time.Time {
	d, _ := time.Parse(DateLayout, in.OrderDate)
	return d
}

type UpdateStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
}

func (in *UpdateStatusInput) Validate() error {
	return validation.Struct(in)
}
