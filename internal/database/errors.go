package database

import (
	"github.com/fekuna/omnipos-backoffice/internal/apperror"
	"github.com/fekuna/omnipos-backoffice/pkg/postgres"
)

// WriteError converts constraint violations and numeric overflows raised by
// an insert or update into field errors. Other store faults become
// PersistenceErrors.
func WriteError(op string, err error) error {
	if err == nil || apperror.IsDomain(err) {
		return err
	}
	if v, ok := postgres.AsViolation(err); ok {
		switch {
		case v.IsUnique():
			return apperror.Field(v.Column, "has already been taken")
		case v.IsForeignKey():
			return apperror.Field(v.Column, "does not exist")
		case v.IsOutOfRange():
			field := v.Column
			if field == "" {
				field = "value"
			}
			return apperror.Field(field, "is out of range")
		default:
			return apperror.Field(v.Column, "is invalid")
		}
	}
	return apperror.Persistence(op, err)
}

// DeleteError reports a foreign key violation on delete as a validation
// failure: the record is still referenced elsewhere.
func DeleteError(op, resource string, err error) error {
	if err == nil || apperror.IsDomain(err) {
		return err
	}
	if v, ok := postgres.AsViolation(err); ok && v.IsForeignKey() {
		return apperror.Field("id", resource+" is referenced by other records and cannot be deleted")
	}
	return apperror.Persistence(op, err)
}
