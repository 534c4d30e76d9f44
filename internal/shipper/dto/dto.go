package dto

type ShipperFilters struct {
	Search   string
	Page     int
	PageSize int
}
