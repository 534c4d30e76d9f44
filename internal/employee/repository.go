package employee

import (
	"context"

	"github.com/fekuna/omnipos-backoffice/internal/employee/dto"
	"github.com/fekuna/omnipos-backoffice/internal/model"
)

type Repository interface {
	Create(ctx context.Context, employee *model.Employee) error
	FindByID(ctx context.Context, id int64) (*model.Employee, error)
	FindAll(ctx context.Context, filters *dto.EmployeeFilters) ([]model.Employee, int, error)
	Update(ctx context.Context, employee *model.Employee) error
	Delete(ctx context.Context, id int64) error
}
