package orderdetail

import (
	"context"

	"github.com/fekuna/omnipos-backoffice/internal/model"
	orderdto "github.com/fekuna/omnipos-backoffice/internal/order/dto"
	"github.com/fekuna/omnipos-backoffice/internal/orderdetail/dto"
)

// UseCase exposes order lines as a resource. Every write goes through the
// order engine as a replacement of the owning order.
type UseCase interface {
	ListDetails(ctx context.Context, filters *orderdto.DetailFilters) ([]model.OrderDetail, int, error)
	GetDetail(ctx context.Context, id int64) (*model.OrderDetail, error)
	AddDetail(ctx context.Context, input *dto.AddDetailInput) (*orderdto.OrderResult, error)
	UpdateDetail(ctx context.Context, id int64, input *dto.UpdateDetailInput) (*orderdto.OrderResult, error)
	DeleteDetail(ctx context.Context, id int64) (*orderdto.OrderResult, error)
}
