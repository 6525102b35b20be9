package postgres

import (
	"database/sql"
	"fmt"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get latest run: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
	}
	if isNotFound(fmt.Errorf("pq: relation extraction_runs does not exist")) {
		t.Fatalf("expected false for unrelated error")
	}
}

func TestNullHelpers(t *testing.T) {
	t.Run("nil pointers are null", func(t *testing.T) {
		if int64PtrToNull(nil).Valid || intPtrToNull(nil).Valid {
			t.Fatalf("expected invalid null values")
		}
	})

	t.Run("values are kept", func(t *testing.T) {
		id := int64(14)
		rank := 3
		if got := int64PtrToNull(&id); !got.Valid || got.Int64 != 14 {
			t.Fatalf("unexpected null int64: %+v", got)
		}
		if got := intPtrToNull(&rank); !got.Valid || got.Int64 != 3 {
			t.Fatalf("unexpected null int: %+v", got)
		}
	})
}

func TestChunks(t *testing.T) {
	got := chunks([]int{1, 2, 3, 4, 5}, 2)
	if len(got) != 3 || len(got[2]) != 1 || got[2][0] != 5 {
		t.Fatalf("unexpected chunks: %+v", got)
	}
	if got := chunks([]int{}, 2); len(got) != 0 {
		t.Fatalf("expected no chunks for empty input, got %+v", got)
	}
}
