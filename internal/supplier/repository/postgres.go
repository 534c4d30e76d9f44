package repository

import (
	"context"

	"github.com/fekuna/omnipos-backoffice/internal/apperror"
	"github.com/fekuna/omnipos-backoffice/internal/database"
	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/fekuna/omnipos-backoffice/internal/supplier/dto"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, s *model.Supplier) error {
	query := `
        INSERT INTO suppliers (
            supplier_name, contact_person, phone, email, website, address, brand_name,
            bank_account_name, bank_account_number, bank_name, country, city, active,
            logo, bio, created_at, updated_at
        )
        VALUES (
            :supplier_name, :contact_person, :phone, :email, :website, :address, :brand_name,
            :bank_account_name, :bank_account_number, :bank_name, :country, :city, :active,
            :logo, :bio, :created_at, :updated_at
        )
        RETURNING id
    `
	err := database.NamedGet(ctx, database.Conn(ctx, r.DB), &s.ID, query, s)
	return database.WriteError("create supplier", err)
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Supplier, error) {
	s, err := database.GetByID[model.Supplier](ctx, database.Conn(ctx, r.DB), "suppliers", id)
	if err != nil {
		return nil, apperror.Persistence("find supplier", err)
	}
	return s, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.SupplierFilters) ([]model.Supplier, int, error) {
	filter := database.NewFilter().
		Search(f.Search, "supplier_name", "contact_person", "brand_name").
		Eq("active", f.Active, f.Active != nil)

	suppliers, count, err := database.SelectPage[model.Supplier](ctx, database.Conn(ctx, r.DB), "suppliers", filter, "supplier_name ASC, id ASC", f.Page, f.PageSize)
	if err != nil {
		return nil, 0, apperror.Persistence("list suppliers", err)
	}
	return suppliers, count, nil
}

func (r *PGRepository) Update(ctx context.Context, s *model.Supplier) error {
	query := `
        UPDATE suppliers
        SET supplier_name = :supplier_name,
            contact_person = :contact_person,
            phone = :phone,
            email = :email,
            website = :website,
            address = :address,
            brand_name = :brand_name,
            bank_account_name = :bank_account_name,
            bank_account_number = :bank_account_number,
            bank_name = :bank_name,
            country = :country,
            city = :city,
            active = :active,
            logo = :logo,
            bio = :bio,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := sqlx.NamedExecContext(ctx, database.Conn(ctx, r.DB), query, s)
	return database.WriteError("update supplier", err)
}

func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	_, err := database.Conn(ctx, r.DB).ExecContext(ctx, "DELETE FROM suppliers WHERE id = $1", id)
	return database.DeleteError("delete supplier", "supplier", err)
}
