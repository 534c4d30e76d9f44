package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-backoffice/internal/apperror"
	"github.com/fekuna/omnipos-backoffice/internal/database"
	"github.com/fekuna/omnipos-backoffice/internal/inventory/dto"
	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) LockProducts(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`SELECT id FROM products WHERE id IN (?) ORDER BY id FOR UPDATE`, ids)
	if err != nil {
		return err
	}

	conn := database.Conn(ctx, r.DB)
	var locked []int64
	if err := sqlx.SelectContext(ctx, conn, &locked, conn.Rebind(query), args...); err != nil {
		return apperror.Persistence("lock products", err)
	}
	return nil
}

func (r *PGRepository) LockProduct(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	err := sqlx.GetContext(ctx, database.Conn(ctx, r.DB), &p, `SELECT * FROM products WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Persistence("lock product", err)
	}
	return &p, nil
}

func (r *PGRepository) SetStock(ctx context.Context, productID int64, quantity int) error {
	_, err := database.Conn(ctx, r.DB).ExecContext(ctx,
		`UPDATE products SET quantity_in_stock = $1, updated_at = NOW() WHERE id = $2`,
		quantity, productID,
	)
	return database.WriteError("set stock", err)
}

func (r *PGRepository) LogMovement(ctx context.Context, m *model.StockMovement) error {
	query := `
        INSERT INTO stock_movements (
            product_id, movement_type, quantity_change, quantity_before, quantity_after,
            reference_type, reference_id, notes, created_at
        )
        VALUES (
            :product_id, :movement_type, :quantity_change, :quantity_before, :quantity_after,
            :reference_type, :reference_id, :notes, :created_at
        )
        RETURNING id
    `
	if err := database.NamedGet(ctx, database.Conn(ctx, r.DB), &m.ID, query, m); err != nil {
		return fmt.Errorf("failed to log movement: %w", database.WriteError("log movement", err))
	}
	return nil
}

func (r *PGRepository) ListMovements(ctx context.Context, f *dto.MovementFilters) ([]model.StockMovement, int, error) {
	items := []model.StockMovement{}
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.ProductID != 0 {
		conditions = append(conditions, "product_id = :product_id")
		args["product_id"] = f.ProductID
	}
	if f.MovementType != "" {
		conditions = append(conditions, "movement_type = :movement_type")
		args["movement_type"] = f.MovementType
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	conn := database.Conn(ctx, r.DB)
	if err := database.NamedGet(ctx, conn, &count, "SELECT count(*) FROM stock_movements"+whereClause, args); err != nil {
		return nil, 0, apperror.Persistence("count movements", err)
	}

	query := "SELECT * FROM stock_movements" + whereClause + " ORDER BY created_at DESC, id DESC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	bound, boundArgs, err := conn.BindNamed(query, args)
	if err != nil {
		return nil, 0, err
	}
	if err := sqlx.SelectContext(ctx, conn, &items, bound, boundArgs...); err != nil {
		return nil, 0, apperror.Persistence("list movements", err)
	}
	return items, count, nil
}

func (r *PGRepository) ListLowStock(ctx context.Context, f *dto.LowStockFilters) ([]model.Product, int, error) {
	items := []model.Product{}
	var count int

	const where = " WHERE quantity_in_stock <= minimum_stock_level"

	conn := database.Conn(ctx, r.DB)
	if err := sqlx.GetContext(ctx, conn, &count, "SELECT count(*) FROM products"+where); err != nil {
		return nil, 0, apperror.Persistence("count low stock", err)
	}

	query := "SELECT * FROM products" + where + " ORDER BY quantity_in_stock ASC, id ASC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	if err := sqlx.SelectContext(ctx, conn, &items, query); err != nil {
		return nil, 0, apperror.Persistence("list low stock", err)
	}
	return items, count, nil
}
