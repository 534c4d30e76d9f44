package repository

import (
	"context"

	"github.com/fekuna/omnipos-backoffice/internal/apperror"
	"github.com/fekuna/omnipos-backoffice/internal/customer/dto"
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

func (r *PGRepository) Create(ctx context.Context, c *model.Customer) error {
	query := `
        INSERT INTO customers (
            customer_name, contact_name, phone, email, address, city, state, zip, country,
            company, website, status, customer_type, bank_name, account_name, account_number,
            notes, created_at, updated_at
        )
        VALUES (
            :customer_name, :contact_name, :phone, :email, :address, :city, :state, :zip, :country,
            :company, :website, :status, :customer_type, :bank_name, :account_name, :account_number,
            :notes, :created_at, :updated_at
        )
        RETURNING id
    `
	err := database.NamedGet(ctx, database.Conn(ctx, r.DB), &c.ID, query, c)
	return database.WriteError("create customer", err)
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	c, err := database.GetByID[model.Customer](ctx, database.Conn(ctx, r.DB), "customers", id)
	if err != nil {
		return nil, apperror.Persistence("find customer", err)
	}
	return c, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.CustomerFilters) ([]model.Customer, int, error) {
	filter := database.NewFilter().
		Search(f.Search, "customer_name", "email", "company").
		Eq("status", f.Status, f.Status != "").
		Eq("customer_type", f.CustomerType, f.CustomerType != "")

	customers, count, err := database.SelectPage[model.Customer](ctx, database.Conn(ctx, r.DB), "customers", filter, "created_at DESC, id DESC", f.Page, f.PageSize)
	if err != nil {
		return nil, 0, apperror.Persistence("list customers", err)
	}
	return customers, count, nil
}

func (r *PGRepository) Update(ctx context.Context, c *model.Customer) error {
	query := `
        UPDATE customers
        SET customer_name = :customer_name,
            contact_name = :contact_name,
            phone = :phone,
            email = :email,
            address = :address,
            city = :city,
            state = :state,
            zip = :zip,
            country = :country,
            company = :company,
            website = :website,
            status = :status,
            customer_type = :customer_type,
            bank_name = :bank_name,
            account_name = :account_name,
            account_number = :account_number,
            notes = :notes,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := sqlx.NamedExecContext(ctx, database.Conn(ctx, r.DB), query, c)
	return database.WriteError("update customer", err)
}

func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	_, err := database.Conn(ctx, r.DB).ExecContext(ctx, "DELETE FROM customers WHERE id = $1", id)
	return database.DeleteError("delete customer", "customer", err)
}
