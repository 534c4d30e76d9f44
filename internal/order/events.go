package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventOrderCreated       = "OrderCreated"
	EventOrderReplaced      = "OrderReplaced"
	EventOrderDeleted       = "OrderDeleted"
	EventOrderStatusChanged = "OrderStatusChanged"
)

// Publisher delivers serialized events to the message broker.
type Publisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}

type EventItem struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Event is published on the orders topic after a successful commit.
type Event struct {
	EventID     string          `json:"event_id"`
	Type        string          `json:"type"`
	OrderID     int64           `json:"order_id"`
	CustomerID  int64           `json:"customer_id,omitempty"`
	Status      string          `json:"status,omitempty"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Items       []EventItem     `json:"items,omitempty"`
	OccurredAt  time.Time       `json:"occurred_at"`
}
