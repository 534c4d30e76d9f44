package order

import (
	"context"

	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/fekuna/omnipos-backoffice/internal/order/dto"
)

type Repository interface {
	// Party rows are share-locked so they cannot be deleted before commit.
	// A nil result means the row does not exist.
	LockCustomer(ctx context.Context, id int64) (*model.Customer, error)
	LockEmployee(ctx context.Context, id int64) (*model.Employee, error)
	LockShipper(ctx context.Context, id int64) (*model.Shipper, error)

	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, id int64) (*model.Order, error)
	LockByID(ctx context.Context, id int64) (*model.Order, error)
	FindAll(ctx context.Context, filters *dto.OrderFilters) ([]model.Order, int, error)
	Update(ctx context.Context, order *model.Order) error
	Delete(ctx context.Context, id int64) error

	// Order lines, returned with their product
	CreateDetail(ctx context.Context, detail *model.OrderDetail) error
	FindDetailByID(ctx context.Context, id int64) (*model.OrderDetail, error)
	FindDetails(ctx context.Context, filters *dto.DetailFilters) ([]model.OrderDetail, int, error)
	FindDetailsByOrderIDs(ctx context.Context, orderIDs []int64) ([]model.OrderDetail, error)
	DeleteDetailsByOrderID(ctx context.Context, orderID int64) error

	// Batch loads for read-side composition
	FindCustomersByIDs(ctx context.Context, ids []int64) ([]model.Customer, error)
	FindEmployeesByIDs(ctx context.Context, ids []int64) ([]model.Employee, error)
	FindShippersByIDs(ctx context.Context, ids []int64) ([]model.Shipper, error)
}
