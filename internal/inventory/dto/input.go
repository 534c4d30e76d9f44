package dto

import (
	"github.com/fekuna/omnipos-backoffice/internal/apperror"
	"github.com/fekuna/omnipos-backoffice/internal/validation"
)

type AdjustStockInput struct {
	ProductID      int64  `json:"product_id" validate:"gt=0"`
	QuantityChange int    `json:"quantity_change" validate:"min=-2147483647,max=2147483647"`
	Reason         string `json:"reason" validate:"required,max=255"`
}

func (in *AdjustStockInput) Validate() error {
	if err := validation.Struct(in); err != nil {
		return err
	}
	if in.QuantityChange == 0 {
		return apperror.Field("quantity_change", "must not be zero")
	}
	return nil
}
