package repository

import (
	"context"

	"github.com/fekuna/omnipos-backoffice/internal/apperror"
	"github.com/fekuna/omnipos-backoffice/internal/database"
	"github.com/fekuna/omnipos-backoffice/internal/employee/dto"
	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, e *model.Employee) error {
	query := `
        INSERT INTO employees (
            first_name, last_name, position, department, hire_date, phone, email,
            address, photo, gender, created_at, updated_at
        )
        VALUES (
            :first_name, :last_name, :position, :department, :hire_date, :phone, :email,
            :address, :photo, :gender, :created_at, :updated_at
        )
        RETURNING id
    `
	err := database.NamedGet(ctx, database.Conn(ctx, r.DB), &e.ID, query, e)
	return database.WriteError("create employee", err)
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Employee, error) {
	e, err := database.GetByID[model.Employee](ctx, database.Conn(ctx, r.DB), "employees", id)
	if err != nil {
		return nil, apperror.Persistence("find employee", err)
	}
	return e, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.EmployeeFilters) ([]model.Employee, int, error) {
	filter := database.NewFilter().
		Search(f.Search, "first_name", "last_name", "email").
		Eq("department", f.Department, f.Department != "")

	employees, count, err := database.SelectPage[model.Employee](ctx, database.Conn(ctx, r.DB), "employees", filter, "last_name ASC, first_name ASC, id ASC", f.Page, f.PageSize)
	if err != nil {
		return nil, 0, apperror.Persistence("list employees", err)
	}
	return employees, count, nil
}

func (r *PGRepository) Update(ctx context.Context, e *model.Employee) error {
	query := `
        UPDATE employees
        SET first_name = :first_name,
            last_name = :last_name,
            position = :position,
            department = :department,
            hire_date = :hire_date,
            phone = :phone,
            email = :email,
            address = :address,
            photo = :photo,
            gender = :gender,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := sqlx.NamedExecContext(ctx, database.Conn(ctx, r.DB), query, e)
	return database.WriteError("update employee", err)
}

func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	_, err := database.Conn(ctx, r.DB).ExecContext(ctx, "DELETE FROM employees WHERE id = $1", id)
	return database.DeleteError("delete employee", "employee", err)
}
