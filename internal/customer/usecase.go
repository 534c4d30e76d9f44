package customer

import (
	"context"

	"github.com/fekuna/omnipos-backoffice/internal/customer/dto"
	"github.com/fekuna/omnipos-backoffice/internal/model"
)

type UseCase interface {
	CreateCustomer(ctx context.Context, input *dto.CustomerInput) (*model.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*model.Customer, error)
	ListCustomers(ctx context.Context, filters *dto.CustomerFilters) ([]model.Customer, int, error)
	UpdateCustomer(ctx context.Context, id int64, input *dto.CustomerInput) (*model.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
}
