package dto

import (
	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/fekuna/omnipos-backoffice/internal/validation"
)

type SupplierInput struct {
	SupplierName      string  `json:"supplier_name" validate:"required,max=100"`
	ContactPerson     string  `json:"contact_person" validate:"required,max=100"`
	Phone             *string `json:"phone" validate:"omitempty,max=20"`
	Email             *string `json:"email" validate:"omitempty,email,max=100"`
	Website           *string `json:"website" validate:"omitempty,url,max=255"`
	Address           *string `json:"address" validate:"omitempty,max=255"`
	BrandName         *string `json:"brand_name" validate:"omitempty,max=100"`
	BankAccountName   *string `json:"bank_account_name" validate:"omitempty,max=255"`
	BankAccountNumber *string `json:"bank_account_number" validate:"omitempty,max=255"`
	BankName          *string `json:"bank_name" validate:"omitempty,max=255"`
	Country           *string `json:"country" validate:"omitempty,max=50"`
	City              *string `json:"city" validate:"omitempty,max=50"`
	Active            *bool   `json:"active"`
	Logo              *string `json:"logo" validate:"omitempty,max=255"`
	Bio               *string `json:"bio"`
}

func (in *SupplierInput) Validate() error {
	return validation.Struct(in)
}

// ApplyTo copies the input onto s. An omitted active flag means active.
func (in *SupplierInput) ApplyTo(s *model.Supplier) {
	s.SupplierName = in.SupplierName
	s.ContactPerson = in.ContactPerson
	s.Phone = in.Phone
	s.Email = in.Email
	s.Website = in.Website
	s.Address = in.Address
	s.BrandName = in.BrandName
	s.BankAccountName = in.BankAccountName
	s.BankAccountNumber = in.BankAccountNumber
	s.BankName = in.BankName
	s.Country = in.Country
	s.City = in.City
	s.Active = in.Active == nil || *in.Active
	s.Logo = in.Logo
	s.Bio = in.Bio
}
