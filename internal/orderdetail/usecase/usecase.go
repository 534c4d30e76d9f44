package usecase

import (
	"context"

	"github.com/fekuna/omnipos-backoffice/internal/apperror"
	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/fekuna/omnipos-backoffice/internal/order"
	orderdto "github.com/fekuna/omnipos-backoffice/internal/order/dto"
	"github.com/fekuna/omnipos-backoffice/internal/orderdetail"
	"github.com/fekuna/omnipos-backoffice/internal/orderdetail/dto"
	"github.com/fekuna/omnipos-backoffice/pkg/logger"
	"go.uber.org/zap"
)

type orderDetailUseCase struct {
	repo   order.Repository
	orders order.UseCase
	logger logger.ZapLogger
}

func NewOrderDetailUseCase(repo order.Repository, orders order.UseCase, log logger.ZapLogger) orderdetail.UseCase {
	return &orderDetailUseCase{
		repo:   repo,
		orders: orders,
		logger: log,
	}
}

func (uc *orderDetailUseCase) ListDetails(ctx context.Context, filters *orderdto.DetailFilters) ([]model.OrderDetail, int, error) {
	return uc.repo.FindDetails(ctx, filters)
}

func (uc *orderDetailUseCase) GetDetail(ctx context.Context, id int64) (*model.OrderDetail, error) {
	d, err := uc.repo.FindDetailByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperror.NotFound("order detail", id)
	}
	return d, nil
}

func (uc *orderDetailUseCase) AddDetail(ctx context.Context, input *dto.AddDetailInput) (*orderdto.OrderResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	res, err := uc.orders.EditItems(ctx, input.OrderID, func(lines []model.OrderDetail) ([]orderdto.OrderItemInput, error) {
		items := toItems(lines)
		return append(items, orderdto.OrderItemInput{ProductID: input.ProductID, Quantity: input.Quantity}), nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("order detail added",
		zap.Int64("order_id", input.OrderID),
		zap.Int64("product_id", input.ProductID),
	)
	return res, nil
}

// UpdateDetail rewrites one line, priced at the product's current selling
// price. The other lines keep their snapshots.
func (uc *orderDetailUseCase) UpdateDetail(ctx context.Context, id int64, input *dto.UpdateDetailInput) (*orderdto.OrderResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	d, err := uc.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	res, err := uc.orders.EditItems(ctx, d.OrderID, func(lines []model.OrderDetail) ([]orderdto.OrderItemInput, error) {
		if !containsLine(lines, id) {
			return nil, apperror.NotFound("order detail", id)
		}
		items := make([]orderdto.OrderItemInput, 0, len(lines))
		for _, l := range lines {
			if l.ID == id {
				items = append(items, orderdto.OrderItemInput{ProductID: input.ProductID, Quantity: input.Quantity})
				continue
			}
			items = append(items, keep(l))
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("order detail updated", zap.Int64("order_id", d.OrderID), zap.Int64("detail_id", id))
	return res, nil
}

// DeleteDetail removes one line from its order. The remaining lines keep
// their price snapshots. An order cannot lose its last line; the order itself
// has to be deleted instead.
func (uc *orderDetailUseCase) DeleteDetail(ctx context.Context, id int64) (*orderdto.OrderResult, error) {
	d, err := uc.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	res, err := uc.orders.EditItems(ctx, d.OrderID, func(lines []model.OrderDetail) ([]orderdto.OrderItemInput, error) {
		if !containsLine(lines, id) {
			return nil, apperror.NotFound("order detail", id)
		}
		if len(lines) == 1 {
			return nil, apperror.BusinessRule("order detail %d is the last line of order %d; delete the order instead", id, d.OrderID)
		}
		items := make([]orderdto.OrderItemInput, 0, len(lines)-1)
		for _, l := range lines {
			if l.ID != id {
				items = append(items, keep(l))
			}
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("order detail deleted", zap.Int64("order_id", d.OrderID), zap.Int64("detail_id", id))
	return res, nil
}

func toItems(lines []model.OrderDetail) []orderdto.OrderItemInput {
	items := make([]orderdto.OrderItemInput, 0, len(lines)+1)
	for _, l := range lines {
		items = append(items, keep(l))
	}
	return items
}

// keep turns an untouched line back into an item carrying its price snapshot.
func keep(l model.OrderDetail) orderdto.OrderItemInput {
	price := l.Price
	return orderdto.OrderItemInput{ProductID: l.ProductID, Quantity: l.Quantity, Price: &price}
}

func containsLine(lines []model.OrderDetail, id int64) bool {
	for _, l := range lines {
		if l.ID == id {
			return true
		}
	}
	return false
}
