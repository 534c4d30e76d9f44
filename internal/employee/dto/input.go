package dto

import (
	"time"

	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/fekuna/omnipos-backoffice/internal/validation"
)

const DateLayout = "2006-01-02"

type EmployeeInput struct {
	FirstName  string  `json:"first_name" validate:"required,max=255"`
	LastName   string  `json:"last_name" validate:"required,max=255"`
	Position   string  `json:"position" validate:"required,max=255"`
	Department string  `json:"department" validate:"required,max=255"`
	HireDate   string  `json:"hire_date" validate:"required,datetime=2006-01-02"`
	Phone      *string `json:"phone" validate:"omitempty,max=255"`
	Email      string  `json:"email" validate:"required,email,max=255"`
	Address    *string `json:"address"`
	Photo      *string `json:"photo" validate:"omitempty,max=255"`
	Gender     *string `json:"gender" validate:"omitempty,oneof=male female other"`
}

func (in *EmployeeInput) Validate() error {
	return validation.Struct(in)
}

// ApplyTo copies the input onto e. Call after Validate.
func (in *EmployeeInput) ApplyTo(e *model.Employee) {
	hired, _ := time.Parse(DateLayout, in.HireDate)

	e.FirstName = in.FirstName
	e.LastName = in.LastName
	e.Position = in.Position
	e.Department = in.Department
	e.HireDate = hired
	e.Phone = in.Phone
	e.Email = in.Email
	e.Address = in.Address
	e.Photo = in.Photo
	e.Gender = in.Gender
}
