package employee

import (
	"context"

	"github.com/fekuna/omnipos-backoffice/internal/employee/dto"
	"github.com/fekuna/omnipos-backoffice/internal/model"
)

type UseCase interface {
	CreateEmployee(ctx context.Context, input *dto.EmployeeInput) (*model.Employee, error)
	GetEmployee(ctx context.Context, id int64) (*model.Employee, error)
	ListEmployees(ctx context.Context, filters *dto.EmployeeFilters) ([]model.Employee, int, error)
	UpdateEmployee(ctx context.Context, id int64, input *dto.EmployeeInput) (*model.Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error
}
