package repository

import (
	"context"
	"strings"

	"github.com/fekuna/omnipos-backoffice/internal/apperror"
	"github.com/fekuna/omnipos-backoffice/internal/database"
	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/fekuna/omnipos-backoffice/internal/product/dto"
	"github.com/jmoiron/sqlx"
)

var sortColumns = map[string]string{
	dto.SortName:      "product_name",
	dto.SortPrice:     "selling_price",
	dto.SortCreatedAt: "created_at",
}

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (
            product_name, cost_price, selling_price, quantity_in_stock, minimum_stock_level, status,
            image, barcode, description, brand, model, color, size, weight, dimensions, warranty,
            country_of_origin, supplier_id, category_id, created_at, updated_at
        )
        VALUES (
            :product_name, :cost_price, :selling_price, :quantity_in_stock, :minimum_stock_level, :status,
            :image, :barcode, :description, :brand, :model, :color, :size, :weight, :dimensions, :warranty,
            :country_of_origin, :supplier_id, :category_id, :created_at, :updated_at
        )
        RETURNING id
    `
	err := database.NamedGet(ctx, database.Conn(ctx, r.DB), &p.ID, query, p)
	return database.WriteError("create product", err)
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	conn := database.Conn(ctx, r.DB)

	p, err := database.GetByID[model.Product](ctx, conn, "products", id)
	if err != nil {
		return nil, apperror.Persistence("find product", err)
	}
	if p == nil {
		return nil, nil
	}

	products := []model.Product{*p}
	if err := attachRelations(ctx, conn, products); err != nil {
		return nil, err
	}
	return &products[0], nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	conn := database.Conn(ctx, r.DB)

	filter := database.NewFilter().
		Search(f.Search, "product_name", "barcode", "brand").
		Eq("category_id", f.CategoryID, f.CategoryID > 0).
		Eq("supplier_id", f.SupplierID, f.SupplierID > 0).
		Eq("status", f.Status, f.Status != "")

	products, count, err := database.SelectPage[model.Product](ctx, conn, "products", filter, orderBy(f), f.Page, f.PageSize)
	if err != nil {
		return nil, 0, apperror.Persistence("list products", err)
	}
	if err := attachRelations(ctx, conn, products); err != nil {
		return nil, 0, err
	}
	return products, count, nil
}

func (r *PGRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
        UPDATE products
        SET product_name = :product_name,
            cost_price = :cost_price,
            selling_price = :selling_price,
            minimum_stock_level = :minimum_stock_level,
            status = :status,
            image = :image,
            barcode = :barcode,
            description = :description,
            brand = :brand,
            model = :model,
            color = :color,
            size = :size,
            weight = :weight,
            dimensions = :dimensions,
            warranty = :warranty,
            country_of_origin = :country_of_origin,
            supplier_id = :supplier_id,
            category_id = :category_id,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := sqlx.NamedExecContext(ctx, database.Conn(ctx, r.DB), query, p)
	return database.WriteError("update product", err)
}

func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	_, err := database.Conn(ctx, r.DB).ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	return database.DeleteError("delete product", "product", err)
}

func orderBy(f *dto.ProductFilters) string {
	col, ok := sortColumns[f.SortBy]
	if !ok {
		col = "created_at"
	}
	dir := "DESC"
	if strings.EqualFold(f.SortOrder, "asc") {
		dir = "ASC"
	}
	return col + " " + dir + ", id " + dir
}

// attachRelations loads the categories and suppliers of products with one
// query each.
func attachRelations(ctx context.Context, q sqlx.ExtContext, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}

	categoryIDs := make([]int64, 0, len(products))
	supplierIDs := make([]int64, 0, len(products))
	for _, p := range products {
		categoryIDs = append(categoryIDs, p.CategoryID)
		supplierIDs = append(supplierIDs, p.SupplierID)
	}

	var categories []model.Category
	if err := selectIn(ctx, q, &categories, `SELECT * FROM categories WHERE id IN (?)`, categoryIDs); err != nil {
		return apperror.Persistence("load product categories", err)
	}
	var suppliers []model.Supplier
	if err := selectIn(ctx, q, &suppliers, `SELECT * FROM suppliers WHERE id IN (?)`, supplierIDs); err != nil {
		return apperror.Persistence("load product suppliers", err)
	}

	byCategory := make(map[int64]*model.Category, len(categories))
	for i := range categories {
		byCategory[categories[i].ID] = &categories[i]
	}
	bySupplier := make(map[int64]*model.Supplier, len(suppliers))
	for i := range suppliers {
		bySupplier[suppliers[i].ID] = &suppliers[i]
	}

	for i := range products {
		products[i].Category = byCategory[products[i].CategoryID]
		products[i].Supplier = bySupplier[products[i].SupplierID]
	}
	return nil
}

func selectIn(ctx context.Context, q sqlx.ExtContext, dest any, query string, ids []int64) error {
	query, args, err := sqlx.In(query, ids)
	if err != nil {
		return err
	}
	return sqlx.SelectContext(ctx, q, dest, q.Rebind(query), args...)
}
