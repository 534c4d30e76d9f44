package model

import "time"

type Employee struct {
	BaseModel
	FirstName  string    `db:"first_name" json:"first_name"`
	LastName   string    `db:"last_name" json:"last_name"`
	Position   string    `db:"position" json:"position"`
	Department string    `db:"department" json:"department"`
	HireDate   time.Time `db:"hire_date" json:"hire_date"`
	Phone      *string   `db:"phone" json:"phone"`
	Email      string    `db:"email" json:"email"`
	Address    *string   `db:"address" json:"address"`
	Photo      *string   `db:"photo" json:"photo"`
	Gender     *string   `db:"gender" json:"gender"`
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
