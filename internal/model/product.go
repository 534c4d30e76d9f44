package model

import "github.com/shopspring/decimal"

const (
	ProductStatusActive       = "active"
	ProductStatusInactive     = "inactive"
	ProductStatusDiscontinued = "discontinued"
	ProductStatusOutOfStock   = "out_of_stock"
)

type Product struct {
	BaseModel
	ProductName       string          `db:"product_name" json:"product_name"`
	CostPrice         decimal.Decimal `db:"cost_price" json:"cost_price"`
	SellingPrice      decimal.Decimal `db:"selling_price" json:"selling_price"`
	QuantityInStock   int             `db:"quantity_in_stock" json:"quantity_in_stock"`
	MinimumStockLevel int             `db:"minimum_stock_level" json:"minimum_stock_level"`
	Status            string          `db:"status" json:"status"`
	Image             *string         `db:"image" json:"image"`
	Barcode           *string         `db:"barcode" json:"barcode"`
	Description       *string         `db:"description" json:"description"`
	Brand             *string         `db:"brand" json:"brand"`
	Model             *string         `db:"model" json:"model"`
	Color             *string         `db:"color" json:"color"`
	Size              *string         `db:"size" json:"size"`
	Weight            *string         `db:"weight" json:"weight"`
	Dimensions        *string         `db:"dimensions" json:"dimensions"`
	Warranty          *string         `db:"warranty" json:"warranty"`
	CountryOfOrigin   *string         `db:"country_of_origin" json:"country_of_origin"`
	SupplierID        int64           `db:"supplier_id" json:"supplier_id"`
	CategoryID        int64           `db:"category_id" json:"category_id"`
	Category          *Category       `db:"-" json:"category,omitempty"` // Joined data
	Supplier          *Supplier       `db:"-" json:"supplier,omitempty"` // Joined data
}

// IsLowStock reports whether stock has reached the reorder threshold.
func (p *Product) IsLowStock() bool {
	return p.QuantityInStock <= p.MinimumStockLevel
}
