package shipper

import (
	"context"

	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/fekuna/omnipos-backoffice/internal/shipper/dto"
)

type Repository interface {
	Create(ctx context.Context, shipper *model.Shipper) error
	FindByID(ctx context.Context, id int64) (*model.Shipper, error)
	FindAll(ctx context.Context, filters *dto.ShipperFilters) ([]model.Shipper, int, error)
	Update(ctx context.Context, shipper *model.Shipper) error
	Delete(ctx context.Context, id int64) error
}
