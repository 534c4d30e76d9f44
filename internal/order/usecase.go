package order

import (
	"context"

	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/fekuna/omnipos-backoffice/internal/order/dto"
)

// ItemEditor derives an order's new item list from its current lines.
type ItemEditor func(lines []model.OrderDetail) ([]dto.OrderItemInput, error)

type UseCase interface {
	CreateOrder(ctx context.Context, input *dto.OrderInput) (*dto.OrderResult, error)
	ReplaceOrder(ctx context.Context, id int64, input *dto.OrderInput) (*dto.OrderResult, error)
	EditItems(ctx context.Context, id int64, edit ItemEditor) (*dto.OrderResult, error)
	DeleteOrder(ctx context.Context, id int64) error
	UpdateStatus(ctx context.Context, id int64, input *dto.UpdateStatusInput) (*dto.OrderResult, error)

	GetOrder(ctx context.Context, id int64) (*dto.OrderResult, error)
	ListOrders(ctx context.Context, filters *dto.OrderFilters) ([]dto.OrderResult, int, error)
}
