package model

const (
	CustomerStatusActive    = "active"
	CustomerStatusInactive  = "inactive"
	CustomerStatusSuspended = "suspended"

	CustomerTypeRegular = "regular"
	CustomerTypePremium = "premium"
	CustomerTypeVIP     = "vip"
)

type Customer struct {
	BaseModel
	CustomerName  string  `db:"customer_name" json:"customer_name"`
	ContactName   *string `db:"contact_name" json:"contact_name"`
	Phone         *string `db:"phone" json:"phone"`
	Email         string  `db:"email" json:"email"`
	Address       *string `db:"address" json:"address"`
	City          *string `db:"city" json:"city"`
	State         *string `db:"state" json:"state"`
	Zip           *string `db:"zip" json:"zip"`
	Country       *string `db:"country" json:"country"`
	Company       *string `db:"company" json:"company"`
	Website       *string `db:"website" json:"website"`
	Status        string  `db:"status" json:"status"`
	CustomerType  string  `db:"customer_type" json:"customer_type"`
	BankName      *string `db:"bank_name" json:"bank_name"`
	AccountName   *string `db:"account_name" json:"account_name"`
	AccountNumber *string `db:"account_number" json:"account_number"`
	Notes         *string `db:"notes" json:"notes"`
}
