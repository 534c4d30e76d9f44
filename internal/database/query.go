package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Filter accumulates named WHERE conditions for listing queries.
type Filter struct {
	conditions []string
	Args       map[string]interface{}
}

func NewFilter() *Filter {
	return &Filter{Args: map[string]interface{}{}}
}

// Eq adds "column = :column" when the value is set.
func (f *Filter) Eq(column string, value interface{}, set bool) *Filter {
	if set {
		f.conditions = append(f.conditions, fmt.Sprintf("%s = :%s", column, column))
		f.Args[column] = value
	}
	return f
}

// Search adds a case-insensitive match of term against any of columns.
func (f *Filter) Search(term string, columns ...string) *Filter {
	if term == "" || len(columns) == 0 {
		return f
	}
	parts := make([]string, 0, len(columns))
	for _, c := range columns {
		parts = append(parts, c+" ILIKE :search")
	}
	f.conditions = append(f.conditions, "("+strings.Join(parts, " OR ")+")")
	f.Args["search"] = "%" + term + "%"
	return f
}

func (f *Filter) Where() string {
	if len(f.conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.conditions, " AND ")
}

// SelectPage runs the count and page queries of a filtered listing of table.
// orderBy must come from a whitelist, never from user input.
func SelectPage[T any](ctx context.Context, q sqlx.ExtContext, table string, f *Filter, orderBy string, page, pageSize int) ([]T, int, error) {
	items := []T{}
	var count int

	if err := NamedGet(ctx, q, &count, "SELECT count(*) FROM "+table+f.Where(), f.Args); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf("SELECT * FROM %s%s ORDER BY %s", table, f.Where(), orderBy)
	if pageSize > 0 {
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", pageSize, (page-1)*pageSize)
	}

	bound, args, err := q.BindNamed(query, f.Args)
	if err != nil {
		return nil, 0, err
	}
	if err := sqlx.SelectContext(ctx, q, &items, bound, args...); err != nil {
		return nil, 0, err
	}
	return items, count, nil
}

// GetByID loads one row of table by primary key. It returns nil when the
// row does not exist.
func GetByID[T any](ctx context.Context, q sqlx.ExtContext, table string, id int64) (*T, error) {
	var item T
	err := sqlx.GetContext(ctx, q, &item, "SELECT * FROM "+table+" WHERE id = $1 LIMIT 1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}
