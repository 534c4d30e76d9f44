package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fekuna/omnipos-backoffice/internal/apperror"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		field   string
		message string
	}{
		{
			name:    "unique",
			err:     &pgconn.PgError{Code: "23505", TableName: "customers", ConstraintName: "customers_email_key"},
			field:   "email",
			message: "has already been taken",
		},
		{
			name:    "foreign key",
			err:     &pgconn.PgError{Code: "23503", TableName: "products", ConstraintName: "products_supplier_id_fkey"},
			field:   "supplier_id",
			message: "does not exist",
		},
		{
			name:    "numeric overflow without column",
			err:     &pgconn.PgError{Code: "22003", Message: "numeric field overflow"},
			field:   "value",
			message: "is out of range",
		},
		{
			name:    "integer overflow on column",
			err:     &pgconn.PgError{Code: "22003", TableName: "products", ColumnName: "quantity_in_stock"},
			field:   "quantity_in_stock",
			message: "is out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WriteError("create", fmt.Errorf("exec: %w", tt.err))

			var verr *apperror.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tt.field, verr.Fields[0].Field)
			assert.Equal(t, tt.message, verr.Fields[0].Message)
		})
	}
}

func TestWriteErrorKeepsOtherFaults(t *testing.T) {
	err := WriteError("create order", &pgconn.PgError{Code: "40P01"})

	var perr *apperror.PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "create order", perr.Op)

	domain := apperror.NotFound("order", 1)
	assert.Same(t, domain, WriteError("create order", domain))
	assert.NoError(t, WriteError("create order", nil))
}

func TestDeleteErrorReportsReference(t *testing.T) {
	err := DeleteError("delete category", "category", &pgconn.PgError{Code: "23503", TableName: "products", ConstraintName: "products_category_id_fkey"})

	var verr *apperror.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "id", verr.Fields[0].Field)

	assert.True(t, errors.As(DeleteError("delete category", "category", errors.New("conn reset")), new(*apperror.PersistenceError)))
}
