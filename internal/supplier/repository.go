package supplier

import (
	"context"

	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/fekuna/omnipos-backoffice/internal/supplier/dto"
)

type Repository interface {
	Create(ctx context.Context, supplier *model.Supplier) error
	FindByID(ctx context.Context, id int64) (*model.Supplier, error)
	FindAll(ctx context.Context, filters *dto.SupplierFilters) ([]model.Supplier, int, error)
	Update(ctx context.Context, supplier *model.Supplier) error
	Delete(ctx context.Context, id int64) error
}
