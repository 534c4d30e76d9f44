package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type Shipper struct {
	BaseModel
	ShipperName     string     `db:"shipper_name" json:"shipper_name"`
	ContactPerson   *string    `db:"contact_person" json:"contact_person"`
	Phone           *string    `db:"phone" json:"phone"`
	Address         *string    `db:"address" json:"address"`
	ShippingMethods StringList `db:"shipping_methods" json:"shipping_methods"`
	Email           *string    `db:"email" json:"email"`
	Notes           *string    `db:"notes" json:"notes"`
}

// StringList is stored as a JSONB array.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
	return json.Unmarshal(data, (*[]string)(l))
}
