package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-backoffice/internal/apperror"
	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/fekuna/omnipos-backoffice/internal/shipper"
	"github.com/fekuna/omnipos-backoffice/internal/shipper/dto"
	"github.com/fekuna/omnipos-backoffice/pkg/logger"
	"go.uber.org/zap"
)

type shipperUseCase struct {
	repo   shipper.Repository
	logger logger.ZapLogger
}

func NewShipperUseCase(repo shipper.Repository, log logger.ZapLogger) shipper.UseCase {
	return &shipperUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *shipperUseCase) CreateShipper(ctx context.Context, input *dto.ShipperInput) (*model.Shipper, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	s := &model.Shipper{BaseModel: model.BaseModel{CreatedAt: now, UpdatedAt: now}}
	input.ApplyTo(s)

	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}

	uc.logger.Info("shipper created", zap.Int64("shipper_id", s.ID))
	return s, nil
}

func (uc *shipperUseCase) GetShipper(ctx context.Context, id int64) (*model.Shipper, error) {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, apperror.NotFound("shipper", id)
	}
	return s, nil
}

func (uc *shipperUseCase) ListShippers(ctx context.Context, filters *dto.ShipperFilters) ([]model.Shipper, int, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *shipperUseCase) UpdateShipper(ctx context.Context, id int64, input *dto.ShipperInput) (*model.Shipper, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	s, err := uc.GetShipper(ctx, id)
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

func (uc *shipperUseCase) DeleteShipper(ctx context.Context, id int64) error {
	if _, err := uc.GetShipper(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("shipper deleted", zap.Int64("shipper_id", id))
	return nil
}
