package category

import (
	"context"

	"github.com/fekuna/omnipos-backoffice/internal/category/dto"
	"github.com/fekuna/omnipos-backoffice/internal/model"
)

type UseCase interface {
	CreateCategory(ctx context.Context, input *dto.CategoryInput) (*model.Category, error)
	GetCategory(ctx context.Context, id int64) (*model.Category, error)
	ListCategories(ctx context.Context, filters *dto.CategoryFilters) ([]model.Category, int, error)
	UpdateCategory(ctx context.Context, id int64, input *dto.CategoryInput) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}
