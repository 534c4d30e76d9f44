package shipper

import (
	"context"

	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/fekuna/omnipos-backoffice/internal/shipper/dto"
)

type UseCase interface {
	CreateShipper(ctx context.Context, input *dto.ShipperInput) (*model.Shipper, error)
	GetShipper(ctx context.Context, id int64) (*model.Shipper, error)
	ListShippers(ctx context.Context, filters *dto.ShipperFilters) ([]model.Shipper, int, error)
	UpdateShipper(ctx context.Context, id int64, input *dto.ShipperInput) (*model.Shipper, error)
	DeleteShipper(ctx context.Context, id int64) error
}
