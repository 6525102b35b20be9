package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

type modelColumns struct {
	names  []string
	fields []int
}

var columnCache sync.Map // reflect.Type -> modelColumns

// InsertRows builds one multi-row INSERT for db-tagged structs. Untagged and
// unexported fields are skipped.
func InsertRows[M any](table string, rows []M) (string, []any, error) {
	if strings.TrimSpace(table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(rows) == 0 {
		return "", nil, fmt.Errorf("insert rows are required")
	}

	cols, err := columnsOf(reflect.TypeFor[M]())
	if err != nil {
		return "", nil, err
	}

	var args bindings
	tuples := make([]string, 0, len(rows))
	placeholders := make([]string, len(cols.fields))
	for _, row := range rows {
		value := reflect.ValueOf(row)
		for i, field := range cols.fields {
			placeholders[i] = args.bind(value.Field(field).Interface())
		}
		tuples = append(tuples, "("+strings.Join(placeholders, ", ")+")")
	}

	sql := "INSERT INTO " + table + " (" + strings.Join(cols.names, ", ") + ") VALUES " + strings.Join(tuples, ", ")
	return sql, args.values, nil
}

func columnsOf(typ reflect.Type) (modelColumns, error) {
	if cached, ok := columnCache.Load(typ); ok {
		return cached.(modelColumns), nil
	}
	if typ.Kind() != reflect.Struct {
		return modelColumns{}, fmt.Errorf("insert model %s must be a struct", typ)
	}

	var cols modelColumns
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" {
			continue
		}
		cols.names = append(cols.names, name)
		cols.fields = append(cols.fields, i)
	}
	if len(cols.names) == 0 {
		return modelColumns{}, fmt.Errorf("insert model %s has no db columns", typ)
	}

	columnCache.Store(typ, cols)
	return cols, nil
}
