package dto

const (
	SortName      = "name"
	SortPrice     = "price"
	SortCreatedAt = "created_at"
)

type ProductFilters struct {
	Search     string `json:"search,omitempty"`
	CategoryID int64  `json:"category_id,omitempty"`
	SupplierID int64  `json:"supplier_id,omitempty"`
	Status     string `json:"status,omitempty"`
	SortBy     string `json:"sort_by,omitempty"`    // name, price, created_at
	SortOrder  string `json:"sort_order,omitempty"` // asc, desc
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
}
