package dto

import (
	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/fekuna/omnipos-backoffice/internal/validation"
)

type ShipperInput struct {
	ShipperName     string   `json:"shipper_name" validate:"required,max=255"`
	ContactPerson   *string  `json:"contact_person" validate:"omitempty,max=255"`
	Phone           *string  `json:"phone" validate:"omitempty,max=255"`
	Address         *string  `json:"address"`
	ShippingMethods []string `json:"shipping_methods" validate:"omitempty,dive,required,max=100"`
	Email           *string  `json:"email" validate:"omitempty,email,max=255"`
	Notes           *string  `json:"notes"`
}

func (in *ShipperInput) Validate() error {
	return validation.Struct(in)
}

func (in *ShipperInput) ApplyTo(s *model.Shipper) {
	s.ShipperName = in.ShipperName
	s.ContactPerson = in.ContactPerson
	s.Phone = in.Phone
	s.Address = in.Address
	s.ShippingMethods = model.StringList(in.ShippingMethods)
	s.Email = in.Email
	s.Notes = in.Notes
}
