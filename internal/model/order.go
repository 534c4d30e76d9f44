package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

type Order struct {
	BaseModel
	OrderDate   time.Time       `db:"order_date" json:"order_date"`
	TotalAmount decimal.Decimal `db:"total_amount" json:"total_amount"`
	Status      string          `db:"status" json:"status"`
	CustomerID  int64           `db:"customer_id" json:"customer_id"`
	EmployeeID  int64           `db:"employee_id" json:"employee_id"`
	ShipperID   int64           `db:"shipper_id" json:"shipper_id"`
}

type OrderDetail struct {
	BaseModel
	OrderID   int64           `db:"order_id" json:"order_id"`
	ProductID int64           `db:"product_id" json:"product_id"`
	Quantity  int             `db:"quantity" json:"quantity"`
	Price     decimal.Decimal `db:"price" json:"price"`
	Subtotal  decimal.Decimal `db:"subtotal" json:"subtotal"`
	Product   *Product        `db:"-" json:"product,omitempty"` // Joined data
}
