package dto

import (
	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/fekuna/omnipos-backoffice/internal/validation"
	"github.com/shopspring/decimal"
)

// ProductInput is the body of both create and update. QuantityInStock is
// only honoured on create.
type ProductInput struct {
	ProductName       string           `json:"product_name" validate:"required,max=255"`
	CostPrice         *decimal.Decimal `json:"cost_price" validate:"required,gte=0,lte=99999999.99"`
	SellingPrice      *decimal.Decimal `json:"selling_price" validate:"required,gte=0,lte=99999999.99"`
	QuantityInStock   int              `json:"quantity_in_stock" validate:"gte=0,lte=2147483647"`
	MinimumStockLevel int              `json:"minimum_stock_level" validate:"gte=0,lte=2147483647"`
	Status            string           `json:"status" validate:"omitempty,oneof=active inactive discontinued out_of_stock"`
	Image             *string          `json:"image" validate:"omitempty,max=255"`
	Barcode           *string          `json:"barcode" validate:"omitempty,max=255"`
	Description       *string          `json:"description"`
	Brand             *string          `json:"brand" validate:"omitempty,max=255"`
	Model             *string          `json:"model" validate:"omitempty,max=255"`
	Color             *string          `json:"color" validate:"omitempty,max=255"`
	Size              *string          `json:"size" validate:"omitempty,max=255"`
	Weight            *string          `json:"weight" validate:"omitempty,max=255"`
	Dimensions        *string          `json:"dimensions" validate:"omitempty,max=255"`
	Warranty          *string          `json:"warranty" validate:"omitempty,max=255"`
	CountryOfOrigin   *string          `json:"country_of_origin" validate:"omitempty,max=255"`
	SupplierID        int64            `json:"supplier_id" validate:"gt=0"`
	CategoryID        int64            `json:"category_id" validate:"gt=0"`
}

func (in *ProductInput) Validate() error {
	return validation.Struct(in)
}

// ApplyTo copies every field except stock onto p. Call after Validate.
func (in *ProductInput) ApplyTo(p *model.Product) {
	p.ProductName = in.ProductName
	p.CostPrice = *in.CostPrice
	p.SellingPrice = *in.SellingPrice
	p.MinimumStockLevel = in.MinimumStockLevel
	p.Status = in.Status
	if p.Status == "" {
		p.Status = model.ProductStatusActive
	}
	p.Image = in.Image
	p.Barcode = in.Barcode
	p.Description = in.Description
	p.Brand = in.Brand
	p.Model = in.Model
	p.Color = in.Color
	p.Size = in.Size
	p.Weight = in.Weight
	p.Dimensions = in.Dimensions
	p.Warranty = in.Warranty
	p.CountryOfOrigin = in.CountryOfOrigin
	p.SupplierID = in.SupplierID
	p.CategoryID = in.CategoryID
}
