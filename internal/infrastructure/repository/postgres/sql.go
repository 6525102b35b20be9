package postgres

import (
	"database/sql"

	crerr "github.com/cockroachdb/errors"
)

// insertChunkSize keeps multi-row inserts well below the postgres limit of
// 65535 bind parameters.
const insertChunkSize = 500

func isNotFound(err error) bool {
	return crerr.Is(err, sql.ErrNoRows)
}

func int64PtrToNull(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func intPtrToNull(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func chunks[T any](items []T, size int) [][]T {
	if size <= 0 {
		size = insertChunkSize
	}
	out := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		out = append(out, items[start:end])
	}
	return out
}
