package dto

type LowStockFilters struct {
	Page     int
	PageSize int
}

type MovementFilters struct {
	ProductID    int64
	MovementType string
	Page         int
	PageSize     int
}
