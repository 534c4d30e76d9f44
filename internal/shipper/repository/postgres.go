package repository

import (
	"context"

	"github.com/fekuna/omnipos-backoffice/internal/apperror"
	"github.com/fekuna/omnipos-backoffice/internal/database"
	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/fekuna/omnipos-backoffice/internal/shipper/dto"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, s *model.Shipper) error {
	query := `
        INSERT INTO shippers (
            shipper_name, contact_person, phone, address, shipping_methods, email, notes,
            created_at, updated_at
        )
        VALUES (
            :shipper_name, :contact_person, :phone, :address, :shipping_methods, :email, :notes,
            :created_at, :updated_at
        )
        RETURNING id
    `
	err := database.NamedGet(ctx, database.Conn(ctx, r.DB), &s.ID, query, s)
	return database.WriteError("create shipper", err)
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Shipper, error) {
	s, err := database.GetByID[model.Shipper](ctx, database.Conn(ctx, r.DB), "shippers", id)
	if err != nil {
		return nil, apperror.Persistence("find shipper", err)
	}
	return s, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ShipperFilters) ([]model.Shipper, int, error) {
	filter := database.NewFilter().Search(f.Search, "shipper_name", "contact_person")

	shippers, count, err := database.SelectPage[model.Shipper](ctx, database.Conn(ctx, r.DB), "shippers", filter, "shipper_name ASC, id ASC", f.Page, f.PageSize)
	if err != nil {
		return nil, 0, apperror.Persistence("list shippers", err)
	}
	return shippers, count, nil
}

func (r *PGRepository) Update(ctx context.Context, s *model.Shipper) error {
	query := `
        UPDATE shippers
        SET shipper_name = :shipper_name,
            contact_person = :contact_person,
            phone = :phone,
            address = :address,
            shipping_methods = :shipping_methods,
            email = :email,
            notes = :notes,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := sqlx.NamedExecContext(ctx, database.Conn(ctx, r.DB), query, s)
	return database.WriteError("update shipper", err)
}

func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	_, err := database.Conn(ctx, r.DB).ExecContext(ctx, "DELETE FROM shippers WHERE id = $1", id)
	return database.DeleteError("delete shipper", "shipper", err)
}
