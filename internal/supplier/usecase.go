package supplier

import (
	"context"

	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/fekuna/omnipos-backoffice/internal/supplier/dto"
)

type UseCase interface {
	CreateSupplier(ctx context.Context, input *dto.SupplierInput) (*model.Supplier, error)
	GetSupplier(ctx context.Context, id int64) (*model.Supplier, error)
	ListSuppliers(ctx context.Context, filters *dto.SupplierFilters) ([]model.Supplier, int, error)
	UpdateSupplier(ctx context.Context, id int64, input *dto.SupplierInput) (*model.Supplier, error)
	DeleteSupplier(ctx context.Context, id int64) error
}
