package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// Predicate renders one WHERE term. next hands out the positional
// placeholder for each bound value.
type Predicate func(next func(value any) string) string

func Eq(column string, value any) Predicate {
	return func(next func(any) string) string {
		return column + " = " + next(value)
	}
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Predicate
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: columns}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(predicates ...Predicate) *SelectBuilder {
	b.where = append(b.where, predicates...)
	return b
}

func (b *SelectBuilder) OrderBy(terms ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, terms...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 || strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select needs columns and a table")
	}

	var args bindings
	sql := "SELECT " + strings.Join(b.columns, ", ") + " FROM " + b.table
	if len(b.where) > 0 {
		terms := make([]string, 0, len(b.where))
		for _, p := range b.where {
			terms = append(terms, p(args.bind))
		}
		sql += " WHERE " + strings.Join(terms, " AND ")
	}
	if len(b.orderBy) > 0 {
		sql += " ORDER BY " + strings.Join(b.orderBy, ", ")
	}
	if b.limit > 0 {
		sql += " LIMIT " + strconv.Itoa(b.limit)
	}
	return sql, args.values, nil
}

// bindings collects bound values and numbers them $1, $2, ...
type bindings struct {
	values []any
}

func (b *bindings) bind(value any) string {
	b.values = append(b.values, value)
	return "$" + strconv.Itoa(len(b.values))
}
