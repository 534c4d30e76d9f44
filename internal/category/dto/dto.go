package dto

type CategoryFilters struct {
	Search   string
	Page     int
	PageSize int
}
