package model

type Supplier struct {
	BaseModel
	SupplierName      string  `db:"supplier_name" json:"supplier_name"`
	ContactPerson     string  `db:"contact_person" json:"contact_person"`
	Phone             *string `db:"phone" json:"phone"`
	Email             *string `db:"email" json:"email"`
	Website           *string `db:"website" json:"website"`
	Address           *string `db:"address" json:"address"`
	BrandName         *string `db:"brand_name" json:"brand_name"`
	BankAccountName   *string `db:"bank_account_name" json:"bank_account_name"`
	BankAccountNumber *string `db:"bank_account_number" json:"bank_account_number"`
	BankName          *string `db:"bank_name" json:"bank_name"`
	Country           *string `db:"country" json:"country"`
	City              *string `db:"city" json:"city"`
	Active            bool    `db:"active" json:"active"`
	Logo              *string `db:"logo" json:"logo"`
	Bio               *string `db:"bio" json:"bio"`
}
