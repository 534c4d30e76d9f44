package model

type Category struct {
	BaseModel
	CategoryName string  `db:"category_name" json:"category_name"`
	Description  *string `db:"description" json:"description"`
}
