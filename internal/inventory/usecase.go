package inventory

import (
	"context"

	"github.com/fekuna/omnipos-backoffice/internal/inventory/dto"
	"github.com/fekuna/omnipos-backoffice/internal/model"
)

type UseCase interface {
	ListLowStock(ctx context.Context, filters *dto.LowStockFilters) ([]model.Product, int, error)
	AdjustStock(ctx context.Context, input *dto.AdjustStockInput) (*model.StockChange, error)
	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.StockMovement, int, error)
}
