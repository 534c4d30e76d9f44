package dto

import (
	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/fekuna/omnipos-backoffice/internal/validation"
)

type CustomerInput struct {
	CustomerName  string  `json:"customer_name" validate:"required,max=255"`
	ContactName   *string `json:"contact_name" validate:"omitempty,max=255"`
	Phone         *string `json:"phone" validate:"omitempty,max=255"`
	Email         string  `json:"email" validate:"required,email,max=255"`
	Address       *string `json:"address" validate:"omitempty,max=255"`
	City          *string `json:"city" validate:"omitempty,max=255"`
	State         *string `json:"state" validate:"omitempty,max=255"`
	Zip           *string `json:"zip" validate:"omitempty,max=255"`
	Country       *string `json:"country" validate:"omitempty,max=255"`
	Company       *string `json:"company" validate:"omitempty,max=255"`
	Website       *string `json:"website" validate:"omitempty,url,max=255"`
	Status        string  `json:"status" validate:"omitempty,oneof=active inactive suspended"`
	CustomerType  string  `json:"customer_type" validate:"omitempty,oneof=regular premium vip"`
	BankName      *string `json:"bank_name" validate:"omitempty,max=255"`
	AccountName   *string `json:"account_name" validate:"omitempty,max=255"`
	AccountNumber *string `json:"account_number" validate:"omitempty,max=255"`
	Notes         *string `json:"notes"`
}

func (in *CustomerInput) Validate() error {
	return validation.Struct(in)
}

// ApplyTo copies the input onto c, filling the status and type defaults.
func (in *CustomerInput) ApplyTo(c *model.Customer) {
	c.CustomerName = in.CustomerName
	c.ContactName = in.ContactName
	c.Phone = in.Phone
	c.Email = in.Email
	c.Address = in.Address
	c.City = in.City
	c.State = in.State
	c.Zip = in.Zip
	c.Country = in.Country
	c.Company = in.Company
	c.Website = in.Website
	c.Status = in.Status
	if c.Status == "" {
		c.Status = model.CustomerStatusActive
	}
	c.CustomerType = in.CustomerType
	if c.CustomerType == "" {
		c.CustomerType = model.CustomerTypeRegular
	}
	c.BankName = in.BankName
	c.AccountName = in.AccountName
	c.AccountNumber = in.AccountNumber
	c.Notes = in.Notes
}
