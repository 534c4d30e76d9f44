package inventory

import (
	"context"

	"github.com/fekuna/omnipos-backoffice/internal/inventory/dto"
	"github.com/fekuna/omnipos-backoffice/internal/model"
)

type Repository interface {
	// Row locks, only meaningful inside a transaction
	LockProducts(ctx context.Context, ids []int64) error
	LockProduct(ctx context.Context, id int64) (*model.Product, error)

	SetStock(ctx context.Context, productID int64, quantity int) error

	// Movements / Audit
	LogMovement(ctx context.Context, movement *model.StockMovement) error
	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.StockMovement, int, error)

	ListLowStock(ctx context.Context, filters *dto.LowStockFilters) ([]model.Product, int, error)
}
