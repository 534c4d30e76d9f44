package usecase

import (
	"context"

	"github.com/fekuna/omnipos-backoffice/internal/database"
	"github.com/fekuna/omnipos-backoffice/internal/inventory"
	"github.com/fekuna/omnipos-backoffice/internal/inventory/dto"
	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/fekuna/omnipos-backoffice/pkg/logger"
	"go.uber.org/zap"
)

// CacheInvalidator drops cached product listings after stock changes.
type CacheInvalidator interface {
	InvalidateListCache(ctx context.Context)
}

type inventoryUseCase struct {
	repo   inventory.Repository
	ledger inventory.Ledger
	tx     database.Transactor
	cache  CacheInvalidator
	logger logger.ZapLogger
}

func NewInventoryUseCase(repo inventory.Repository, ledger inventory.Ledger, tx database.Transactor, cache CacheInvalidator, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{
		repo:   repo,
		ledger: ledger,
		tx:     tx,
		cache:  cache,
		logger: log,
	}
}

func (uc *inventoryUseCase) ListLowStock(ctx context.Context, filters *dto.LowStockFilters) ([]model.Product, int, error) {
	return uc.repo.ListLowStock(ctx, filters)
}

// AdjustStock applies a manual correction through the ledger: negative
// changes reserve, positive changes release.
func (uc *inventoryUseCase) AdjustStock(ctx context.Context, input *dto.AdjustStockInput) (*model.StockChange, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ref := inventory.Reference{Type: inventory.RefManualAdjustment, Notes: input.Reason}

	var change model.StockChange
	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var (
			res *inventory.Reservation
			err error
		)
		if input.QuantityChange < 0 {
			res, err = uc.ledger.Reserve(ctx, input.ProductID, -input.QuantityChange, ref)
		} else {
			res, err = uc.ledger.Release(ctx, input.ProductID, input.QuantityChange, ref)
		}
		if err != nil {
			return err
		}
		change = res.Change
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("stock adjusted",
		zap.Int64("product_id", change.ProductID),
		zap.Int("previous_stock", change.PreviousStock),
		zap.Int("new_stock", change.NewStock),
		zap.String("reason", input.Reason),
	)

	if uc.cache != nil {
		uc.cache.InvalidateListCache(ctx)
	}

	return &change, nil
}

func (uc *inventoryUseCase) ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.StockMovement, int, error) {
	return uc.repo.ListMovements(ctx, filters)
}
