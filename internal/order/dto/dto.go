package dto

import (
	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/shopspring/decimal"
)

type OrderFilters struct {
	CustomerID int64
	Status     string
	Page       int
	PageSize   int
}

type DetailFilters struct {
	OrderID   int64
	ProductID int64
	Page      int
	PageSize  int
}

type OrderSummary struct {
	ID          int64           `json:"id"`
	OrderDate   string          `json:"order_date"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
}

type CustomerSummary struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Contact *string `json:"contact"`
	Phone   *string `json:"phone"`
}

type EmployeeSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ShipperSummary struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Phone *string `json:"phone"`
}

// OrderResult is the composed view of an order returned by every order
// operation. StockUpdates is only set by writes.
type OrderResult struct {
	Order        OrderSummary        `json:"order"`
	Customer     *CustomerSummary    `json:"customer"`
	Employee     *EmployeeSummary    `json:"employee"`
	Shipper      *ShipperSummary     `json:"shipper"`
	Items        []model.OrderDetail `json:"items"`
	StockUpdates []model.StockChange `json:"stock_updates,omitempty"`
	TotalPrice   decimal.Decimal     `json:"total_price"`
}
