package model

// StockChange is one entry of the stock-delta report returned with an order.
type StockChange struct {
	ProductID     int64  `json:"product_id"`
	ProductName   string `json:"product_name"`
	PreviousStock int    `json:"previous_stock"`
	NewStock      int    `json:"new_stock"`
	Difference    int    `json:"difference"`
}
