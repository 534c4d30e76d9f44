package product

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/fekuna/omnipos-backoffice/internal/product/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.ProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	UpdateProduct(ctx context.Context, id int64, input *dto.ProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	// InvalidateListCache drops every cached listing. Stock writers call it
	// after their transaction commits.
	InvalidateListCache(ctx context.Context)
}

// ListCache holds serialized product listings.
type ListCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeletePattern(ctx context.Context, pattern string) error
}
