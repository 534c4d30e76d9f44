package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeCheckViolation      = "23514"
	CodeNumericOutOfRange   = "22003"
)

// Violation describes an integrity constraint failure reported by PostgreSQL.
type Violation struct {
	Code       string
	Table      string
	Constraint string
	// Column is derived from the constraint name when it follows the
	// <table>_<column>_{key,fkey,check} convention.
	Column string
}

func (v *Violation) IsUnique() bool     { return v.Code == CodeUniqueViolation }
func (v *Violation) IsForeignKey() bool { return v.Code == CodeForeignKeyViolation }
func (v *Violation) IsCheck() bool      { return v.Code == CodeCheckViolation }
func (v *Violation) IsOutOfRange() bool { return v.Code == CodeNumericOutOfRange }

// AsViolation extracts a constraint violation or a numeric overflow from err.
// Overflows carry no constraint, so their Column may be empty.
func AsViolation(err error) (*Violation, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil, false
	}
	switch pgErr.Code {
	case CodeUniqueViolation, CodeForeignKeyViolation, CodeCheckViolation, CodeNumericOutOfRange:
	default:
		return nil, false
	}
	v := &Violation{
		Code:       pgErr.Code,
		Table:      pgErr.TableName,
		Constraint: pgErr.ConstraintName,
		Column:     pgErr.ColumnName,
	}
	if v.Column == "" && v.Constraint != "" {
		v.Column = columnOf(pgErr.TableName, pgErr.ConstraintName)
	}
	return v, true
}

func columnOf(table, constraint string) string {
	col := strings.TrimPrefix(constraint, table+"_")
	for _, suffix := range []string{"_fkey", "_key", "_check"} {
		if strings.HasSuffix(col, suffix) {
			return strings.TrimSuffix(col, suffix)
		}
	}
	return col
}
