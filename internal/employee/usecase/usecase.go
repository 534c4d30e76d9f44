package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-backoffice/internal/apperror"
	"github.com/fekuna/omnipos-backoffice/internal/employee"
	"github.com/fekuna/omnipos-backoffice/internal/employee/dto"
	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/fekuna/omnipos-backoffice/pkg/logger"
	"go.uber.org/zap"
)

type employeeUseCase struct {
	repo   employee.Repository
	logger logger.ZapLogger
}

func NewEmployeeUseCase(repo employee.Repository, log logger.ZapLogger) employee.UseCase {
	return &employeeUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *employeeUseCase) CreateEmployee(ctx context.Context, input *dto.EmployeeInput) (*model.Employee, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	e := &model.Employee{BaseModel: model.BaseModel{CreatedAt: now, UpdatedAt: now}}
	input.ApplyTo(e)

	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}

	uc.logger.Info("employee created", zap.Int64("employee_id", e.ID))
	return e, nil
}

func (uc *employeeUseCase) GetEmployee(ctx context.Context, id int64) (*model.Employee, error) {
	e, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperror.NotFound("employee", id)
	}
	return e, nil
}

func (uc *employeeUseCase) ListEmployees(ctx context.Context, filters *dto.EmployeeFilters) ([]model.Employee, int, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *employeeUseCase) UpdateEmployee(ctx context.Context, id int64, input *dto.EmployeeInput) (*model.Employee, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	e, err := uc.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	input.ApplyTo(e)
	e.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (uc *employeeUseCase) DeleteEmployee(ctx context.Context, id int64) error {
	if _, err := uc.GetEmployee(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("employee deleted", zap.Int64("employee_id", id))
	return nil
}
