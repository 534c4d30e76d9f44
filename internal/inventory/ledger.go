package inventory

import (
	"context"

	"github.com/fekuna/omnipos-backoffice/internal/model"
)

const (
	RefOrder            = "order"
	RefManualAdjustment = "manual_adjustment"
)

// Reference identifies what caused a stock movement.
type Reference struct {
	Type  string
	ID    *int64
	Notes string
}

type Reservation struct {
	Product *model.Product
	Change  model.StockChange
}

// Ledger is the only writer of products.quantity_in_stock. Every call must
// run inside a transaction started by database.Transactor.
type Ledger interface {
	// Lock takes row locks on the given products in ascending id order.
	Lock(ctx context.Context, productIDs ...int64) error
	Reserve(ctx context.Context, productID int64, quantity int, ref Reference) (*Reservation, error)
	Release(ctx context.Context, productID int64, quantity int, ref Reference) (*Reservation, error)
}
