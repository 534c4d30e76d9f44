package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-backoffice/internal/apperror"
	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/fekuna/omnipos-backoffice/internal/product"
	"github.com/fekuna/omnipos-backoffice/internal/product/dto"
	"github.com/fekuna/omnipos-backoffice/pkg/logger"
	"go.uber.org/zap"
)

const listCachePattern = "products:list:*"

type cachedList struct {
	Products []model.Product
	Count    int
}

type productUseCase struct {
	repo     product.Repository
	cache    product.ListCache
	cacheTTL time.Duration
	logger   logger.ZapLogger
}

// NewProductUseCase builds the product usecase. cache may be nil, in which
// case listings always hit the store.
func NewProductUseCase(repo product.Repository, cache product.ListCache, cacheTTL time.Duration, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.ProductInput) (*model.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	p := &model.Product{
		BaseModel:       model.BaseModel{CreatedAt: now, UpdatedAt: now},
		QuantityInStock: input.QuantityInStock,
	}
	input.ApplyTo(p)

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.logger.Info("product created",
		zap.Int64("product_id", p.ID),
		zap.Int("quantity_in_stock", p.QuantityInStock),
	)
	uc.InvalidateListCache(ctx)
	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NotFound("product", id)
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	cacheKey, err := uc.generateCacheKey(filters)
	if err == nil && uc.cache != nil {
		if val, err := uc.cache.Get(ctx, cacheKey); err == nil {
			var result cachedList
			if err := json.Unmarshal(val, &result); err == nil {
				return result.Products, result.Count, nil
			}
		}
	}

	products, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, err
	}

	if cacheKey != "" && uc.cache != nil {
		if data, err := json.Marshal(cachedList{Products: products, Count: count}); err == nil {
			if err := uc.cache.Set(ctx, cacheKey, data, uc.cacheTTL); err != nil {
				uc.logger.Warn("failed to cache product list", zap.Error(err))
			}
		}
	}

	return products, count, nil
}

func (uc *productUseCase) generateCacheKey(filters *dto.ProductFilters) (string, error) {
	data, err := json.Marshal(filters)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("products:list:%x", md5.Sum(data)), nil
}

func (uc *productUseCase) InvalidateListCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.DeletePattern(ctx, listCachePattern); err != nil {
		uc.logger.Warn("failed to invalidate product list cache", zap.Error(err))
	}
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, id int64, input *dto.ProductInput) (*model.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := uc.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	input.ApplyTo(p)
	p.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.InvalidateListCache(ctx)
	// Relations may have changed; reload so the response reflects them.
	return uc.GetProduct(ctx, id)
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int64) error {
	if _, err := uc.GetProduct(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("product deleted", zap.Int64("product_id", id))
	uc.InvalidateListCache(ctx)
	return nil
}
