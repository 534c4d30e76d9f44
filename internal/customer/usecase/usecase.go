package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-backoffice/internal/apperror"
	"github.com/fekuna/omnipos-backoffice/internal/customer"
	"github.com/fekuna/omnipos-backoffice/internal/customer/dto"
	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/fekuna/omnipos-backoffice/pkg/logger"
	"go.uber.org/zap"
)

type customerUseCase struct {
	repo   customer.Repository
	logger logger.ZapLogger
}

func NewCustomerUseCase(repo customer.Repository, log logger.ZapLogger) customer.UseCase {
	return &customerUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *customerUseCase) CreateCustomer(ctx context.Context, input *dto.CustomerInput) (*model.Customer, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	c := &model.Customer{BaseModel: model.BaseModel{CreatedAt: now, UpdatedAt: now}}
	input.ApplyTo(c)

	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	uc.logger.Info("customer created", zap.Int64("customer_id", c.ID))
	return c, nil
}

func (uc *customerUseCase) GetCustomer(ctx context.Context, id int64) (*model.Customer, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperror.NotFound("customer", id)
	}
	return c, nil
}

func (uc *customerUseCase) ListCustomers(ctx context.Context, filters *dto.CustomerFilters) ([]model.Customer, int, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *customerUseCase) UpdateCustomer(ctx context.Context, id int64, input *dto.CustomerInput) (*model.Customer, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := uc.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	input.ApplyTo(c)
	c.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *customerUseCase) DeleteCustomer(ctx context.Context, id int64) error {
	if _, err := uc.GetCustomer(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("customer deleted", zap.Int64("customer_id", id))
	return nil
}
