package model

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Storage limits: money columns are NUMERIC(10,2) and quantities INTEGER.
const MaxQuantity = math.MaxInt32

var MaxAmount = decimal.RequireFromString("99999999.99")

type BaseModel struct {
	ID        int64     `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
