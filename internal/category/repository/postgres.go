package repository

import (
	"context"

	"github.com/fekuna/omnipos-backoffice/internal/apperror"
	"github.com/fekuna/omnipos-backoffice/internal/category/dto"
	"github.com/fekuna/omnipos-backoffice/internal/database"
	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, c *model.Category) error {
	query := `
        INSERT INTO categories (category_name, description, created_at, updated_at)
        VALUES (:category_name, :description, :created_at, :updated_at)
        RETURNING id
    `
	err := database.NamedGet(ctx, database.Conn(ctx, r.DB), &c.ID, query, c)
	return database.WriteError("create category", err)
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Category, error) {
	c, err := database.GetByID[model.Category](ctx, database.Conn(ctx, r.DB), "categories", id)
	if err != nil {
		return nil, apperror.Persistence("find category", err)
	}
	return c, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.CategoryFilters) ([]model.Category, int, error) {
	filter := database.NewFilter().Search(f.Search, "category_name")

	categories, count, err := database.SelectPage[model.Category](ctx, database.Conn(ctx, r.DB), "categories", filter, "category_name ASC, id ASC", f.Page, f.PageSize)
	if err != nil {
		return nil, 0, apperror.Persistence("list categories", err)
	}
	return categories, count, nil
}

func (r *PGRepository) Update(ctx context.Context, c *model.Category) error {
	query := `
        UPDATE categories
        SET category_name = :category_name,
            description = :description,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := sqlx.NamedExecContext(ctx, database.Conn(ctx, r.DB), query, c)
	return database.WriteError("update category", err)
}

func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	_, err := database.Conn(ctx, r.DB).ExecContext(ctx, "DELETE FROM categories WHERE id = $1", id)
	return database.DeleteError("delete category", "category", err)
}
