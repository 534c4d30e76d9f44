package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-backoffice/internal/apperror"
	"github.com/fekuna/omnipos-backoffice/internal/database"
	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/fekuna/omnipos-backoffice/internal/order/dto"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// getOne scans a single row into dest. It returns false when no row matched.
func (r *PGRepository) getOne(ctx context.Context, op string, dest any, query string, args ...any) (bool, error) {
	err := sqlx.GetContext(ctx, database.Conn(ctx, r.DB), dest, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, apperror.Persistence(op, err)
	}
	return true, nil
}

func (r *PGRepository) LockCustomer(ctx context.Context, id int64) (*model.Customer, error) {
	var c model.Customer
	ok, err := r.getOne(ctx, "lock customer", &c, `SELECT * FROM customers WHERE id = $1 FOR KEY SHARE`, id)
	if !ok {
		return nil, err
	}
	return &c, nil
}

func (r *PGRepository) LockEmployee(ctx context.Context, id int64) (*model.Employee, error) {
	var e model.Employee
	ok, err := r.getOne(ctx, "lock employee", &e, `SELECT * FROM employees WHERE id = $1 FOR KEY SHARE`, id)
	if !ok {
		return nil, err
	}
	return &e, nil
}

func (r *PGRepository) LockShipper(ctx context.Context, id int64) (*model.Shipper, error) {
	var s model.Shipper
	ok, err := r.getOne(ctx, "lock shipper", &s, `SELECT * FROM shippers WHERE id = $1 FOR KEY SHARE`, id)
	if !ok {
		return nil, err
	}
	return &s, nil
}

func (r *PGRepository) Create(ctx context.Context, o *model.Order) error {
	query := `
        INSERT INTO orders (
            order_date, total_amount, status, customer_id, employee_id, shipper_id, created_at, updated_at
        )
        VALUES (
            :order_date, :total_amount, :status, :customer_id, :employee_id, :shipper_id, :created_at, :updated_at
        )
        RETURNING id
    `
	err := database.NamedGet(ctx, database.Conn(ctx, r.DB), &o.ID, query, o)
	return database.WriteError("create order", err)
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Order, error) {
	var o model.Order
	ok, err := r.getOne(ctx, "find order", &o, `SELECT * FROM orders WHERE id = $1`, id)
	if !ok {
		return nil, err
	}
	return &o, nil
}

func (r *PGRepository) LockByID(ctx context.Context, id int64) (*model.Order, error) {
	var o model.Order
	ok, err := r.getOne(ctx, "lock order", &o, `SELECT * FROM orders WHERE id = $1 FOR UPDATE`, id)
	if !ok {
		return nil, err
	}
	return &o, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.OrderFilters) ([]model.Order, int, error) {
	orders := []model.Order{}
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.CustomerID != 0 {
		conditions = append(conditions, "customer_id = :customer_id")
		args["customer_id"] = f.CustomerID
	}
	if f.Status != "" {
		conditions = append(conditions, "status = :status")
		args["status"] = f.Status
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	conn := database.Conn(ctx, r.DB)
	if err := database.NamedGet(ctx, conn, &count, "SELECT count(*) FROM orders"+whereClause, args); err != nil {
		return nil, 0, apperror.Persistence("count orders", err)
	}

	query := "SELECT * FROM orders" + whereClause + " ORDER BY created_at DESC, id DESC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	bound, boundArgs, err := conn.BindNamed(query, args)
	if err != nil {
		return nil, 0, err
	}
	if err := sqlx.SelectContext(ctx, conn, &orders, bound, boundArgs...); err != nil {
		return nil, 0, apperror.Persistence("list orders", err)
	}
	return orders, count, nil
}

func (r *PGRepository) Update(ctx context.Context, o *model.Order) error {
	query := `
        UPDATE orders
        SET order_date = :order_date,
            total_amount = :total_amount,
            status = :status,
            customer_id = :customer_id,
            employee_id = :employee_id,
            shipper_id = :shipper_id,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := sqlx.NamedExecContext(ctx, database.Conn(ctx, r.DB), query, o)
	return database.WriteError("update order", err)
}

func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	_, err := database.Conn(ctx, r.DB).ExecContext(ctx, "DELETE FROM orders WHERE id = $1", id)
	return database.DeleteError("delete order", "order", err)
}

func (r *PGRepository) CreateDetail(ctx context.Context, d *model.OrderDetail) error {
	query := `
        INSERT INTO order_details (
            order_id, product_id, quantity, price, subtotal, created_at, updated_at
        )
        VALUES (
            :order_id, :product_id, :quantity, :price, :subtotal, :created_at, :updated_at
        )
        RETURNING id
    `
	err := database.NamedGet(ctx, database.Conn(ctx, r.DB), &d.ID, query, d)
	return database.WriteError("create order detail", err)
}

func (r *PGRepository) FindDetailByID(ctx context.Context, id int64) (*model.OrderDetail, error) {
	var d model.OrderDetail
	ok, err := r.getOne(ctx, "find order detail", &d, `SELECT * FROM order_details WHERE id = $1`, id)
	if !ok {
		return nil, err
	}

	details := []model.OrderDetail{d}
	if err := r.attachProducts(ctx, details); err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (r *PGRepository) FindDetails(ctx context.Context, f *dto.DetailFilters) ([]model.OrderDetail, int, error) {
	details := []model.OrderDetail{}
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.OrderID != 0 {
		conditions = append(conditions, "order_id = :order_id")
		args["order_id"] = f.OrderID
	}
	if f.ProductID != 0 {
		conditions = append(conditions, "product_id = :product_id")
		args["product_id"] = f.ProductID
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	conn := database.Conn(ctx, r.DB)
	if err := database.NamedGet(ctx, conn, &count, "SELECT count(*) FROM order_details"+whereClause, args); err != nil {
		return nil, 0, apperror.Persistence("count order details", err)
	}

	query := "SELECT * FROM order_details" + whereClause + " ORDER BY id ASC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	bound, boundArgs, err := conn.BindNamed(query, args)
	if err != nil {
		return nil, 0, err
	}
	if err := sqlx.SelectContext(ctx, conn, &details, bound, boundArgs...); err != nil {
		return nil, 0, apperror.Persistence("list order details", err)
	}

	if err := r.attachProducts(ctx, details); err != nil {
		return nil, 0, err
	}
	return details, count, nil
}

func (r *PGRepository) FindDetailsByOrderIDs(ctx context.Context, orderIDs []int64) ([]model.OrderDetail, error) {
	details := []model.OrderDetail{}
	if len(orderIDs) == 0 {
		return details, nil
	}

	query, args, err := sqlx.In(`SELECT * FROM order_details WHERE order_id IN (?) ORDER BY order_id, id`, orderIDs)
	if err != nil {
		return nil, err
	}

	conn := database.Conn(ctx, r.DB)
	if err := sqlx.SelectContext(ctx, conn, &details, conn.Rebind(query), args...); err != nil {
		return nil, apperror.Persistence("find order details", err)
	}

	if err := r.attachProducts(ctx, details); err != nil {
		return nil, err
	}
	return details, nil
}

func (r *PGRepository) DeleteDetailsByOrderID(ctx context.Context, orderID int64) error {
	_, err := database.Conn(ctx, r.DB).ExecContext(ctx, "DELETE FROM order_details WHERE order_id = $1", orderID)
	return apperror.Persistence("delete order details", err)
}

// attachProducts loads the products referenced by details with one query.
func (r *PGRepository) attachProducts(ctx context.Context, details []model.OrderDetail) error {
	if len(details) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(details))
	for _, d := range details {
		ids = append(ids, d.ProductID)
	}

	query, args, err := sqlx.In(`SELECT * FROM products WHERE id IN (?)`, ids)
	if err != nil {
		return err
	}

	conn := database.Conn(ctx, r.DB)
	var products []model.Product
	if err := sqlx.SelectContext(ctx, conn, &products, conn.Rebind(query), args...); err != nil {
		return apperror.Persistence("find products", err)
	}

	byID := make(map[int64]*model.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}
	for i := range details {
		details[i].Product = byID[details[i].ProductID]
	}
	return nil
}

func (r *PGRepository) FindCustomersByIDs(ctx context.Context, ids []int64) ([]model.Customer, error) {
	var out []model.Customer
	err := r.selectIn(ctx, "find customers", &out, `SELECT * FROM customers WHERE id IN (?)`, ids)
	return out, err
}

func (r *PGRepository) FindEmployeesByIDs(ctx context.Context, ids []int64) ([]model.Employee, error) {
	var out []model.Employee
	err := r.selectIn(ctx, "find employees", &out, `SELECT * FROM employees WHERE id IN (?)`, ids)
	return out, err
}

func (r *PGRepository) FindShippersByIDs(ctx context.Context, ids []int64) ([]model.Shipper, error) {
	var out []model.Shipper
	err := r.selectIn(ctx, "find shippers", &out, `SELECT * FROM shippers WHERE id IN (?)`, ids)
	return out, err
}

func (r *PGRepository) selectIn(ctx context.Context, op string, dest any, query string, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	q, args, err := sqlx.In(query, ids)
	if err != nil {
		return err
	}
	conn := database.Conn(ctx, r.DB)
	if err := sqlx.SelectContext(ctx, conn, dest, conn.Rebind(q), args...); err != nil {
		return apperror.Persistence(op, err)
	}
	return nil
}
