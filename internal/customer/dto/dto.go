package dto

type CustomerFilters struct {
	Search       string
	Status       string
	CustomerType string
	Page         int
	PageSize     int
}
