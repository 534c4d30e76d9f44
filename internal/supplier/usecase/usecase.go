package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-backoffice/internal/apperror"
	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/fekuna/omnipos-backoffice/internal/supplier"
	"github.com/fekuna/omnipos-backoffice/internal/supplier/dto"
	"github.com/fekuna/omnipos-backoffice/pkg/logger"
	"go.uber.org/zap"
)

type supplierUseCase struct {
	repo   supplier.Repository
	logger logger.ZapLogger
}

func NewSupplierUseCase(repo supplier.Repository, log logger.ZapLogger) supplier.UseCase {
	return &supplierUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *supplierUseCase) CreateSupplier(ctx context.Context, input *dto.SupplierInput) (*model.Supplier, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	s := &model.Supplier{BaseModel: model.BaseModel{CreatedAt: now, UpdatedAt: now}}
	input.ApplyTo(s)

	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}

	uc.logger.Info("supplier created", zap.Int64("supplier_id", s.ID))
	return s, nil
}

func (uc *supplierUseCase) GetSupplier(ctx context.Context, id int64) (*model.Supplier, error) {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, apperror.NotFound("supplier", id)
	}
	return s, nil
}

func (uc *supplierUseCase) ListSuppliers(ctx context.Context, filters *dto.SupplierFilters) ([]model.Supplier, int, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *supplierUseCase) UpdateSupplier(ctx context.Context, id int64, input *dto.SupplierInput) (*model.Supplier, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	s, err := uc.GetSupplier(ctx, id)
	if err != nil {
		return nil, err
	}

	input.ApplyTo(s)
	s.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *supplierUseCase) DeleteSupplier(ctx context.Context, id int64) error {
	if _, err := uc.GetSupplier(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("supplier deleted", zap.Int64("supplier_id", id))
	return nil
}
