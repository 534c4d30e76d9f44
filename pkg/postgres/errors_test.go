package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsViolation(t *testing.T) {
	tests := []struct {
		name       string
		err        *pgconn.PgError
		column     string
		unique     bool
		fk         bool
		outOfRange bool
	}{
		{
			name:   "unique",
			err:    &pgconn.PgError{Code: CodeUniqueViolation, TableName: "customers", ConstraintName: "customers_email_key"},
			column: "email",
			unique: true,
		},
		{
			name:   "foreign key",
			err:    &pgconn.PgError{Code: CodeForeignKeyViolation, TableName: "products", ConstraintName: "products_category_id_fkey"},
			column: "category_id",
			fk:     true,
		},
		{
			name:   "check",
			err:    &pgconn.PgError{Code: CodeCheckViolation, TableName: "products", ConstraintName: "products_quantity_in_stock_check"},
			column: "quantity_in_stock",
		},
		{
			name:       "numeric out of range",
			err:        &pgconn.PgError{Code: CodeNumericOutOfRange, Message: "numeric field overflow"},
			outOfRange: true,
		},
		{
			name:       "out of range with column",
			err:        &pgconn.PgError{Code: CodeNumericOutOfRange, TableName: "products", ColumnName: "selling_price"},
			column:     "selling_price",
			outOfRange: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := AsViolation(fmt.Errorf("insert: %w", tt.err))
			require.True(t, ok)
			assert.Equal(t, tt.column, v.Column)
			assert.Equal(t, tt.unique, v.IsUnique())
			assert.Equal(t, tt.fk, v.IsForeignKey())
			assert.Equal(t, tt.outOfRange, v.IsOutOfRange())
		})
	}
}

func TestAsViolationIgnoresOtherErrors(t *testing.T) {
	_, ok := AsViolation(errors.New("boom"))
	assert.False(t, ok)

	_, ok = AsViolation(&pgconn.PgError{Code: "40P01"})
	assert.False(t, ok)
}
