package dto

type SupplierFilters struct {
	Search   string
	Active   *bool
	Page     int
	PageSize int
}
