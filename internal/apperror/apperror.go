package apperror

import (
	"errors"
	"fmt"
	"strings"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field that failed validation. No mutation
// has happened when it is returned.
type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Field builds a ValidationError for a single field.
func Field(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

type NotFoundError struct {
	Resource string
	ID       int64
}

func NotFound(resource string, id int64) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

type InsufficientStockError struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Available   int    `json:"available"`
	Requested   int    `json:"requested"`
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: available %d, requested %d",
		e.ProductName, e.Available, e.Requested)
}

type BusinessRuleError struct {
	Message string
}

func BusinessRule(format string, args ...any) *BusinessRuleError {
	return &BusinessRuleError{Message: fmt.Sprintf(format, args...)}
}

func (e *BusinessRuleError) Error() string { return e.Message }

// PersistenceError wraps a store fault. Its message is never shown to clients.
type PersistenceError struct {
	Op  string
	Err error
}

func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsDomain(err) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

func (e *PersistenceError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *PersistenceError) Unwrap() error { return e.Err }

// IsDomain reports whether err already belongs to the taxonomy and must be
// propagated unchanged.
func IsDomain(err error) bool {
	var (
		v  *ValidationError
		nf *NotFoundError
		is *InsufficientStockError
		br *BusinessRuleError
		pe *PersistenceError
	)
	return errors.As(err, &v) || errors.As(err, &nf) || errors.As(err, &is) ||
		errors.As(err, &br) || errors.As(err, &pe)
}
