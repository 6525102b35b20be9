package usecase

import (
	"fmt"

	"github.com/riskibarqy/fpl-ledger/internal/domain/selection"
)

// CompareSelections compares two teams' squads for one period of an
// extraction result.
func CompareSelections(facts []selection.Fact, period int, entryA, entryB int64) (selection.Comparison, error) {
	if period < 1 {
		return selection.Comparison{}, fmt.Errorf("%w: period must be >= 1", ErrInvalidInput)
	}
	if entryA <= 0 || entryB <= 0 {
		return selection.Comparison{}, fmt.Errorf("%w: entry ids must be greater than zero", ErrInvalidInput)
	}
	if entryA == entryB {
		return selection.Comparison{}, fmt.Errorf("%w: entries to compare must differ", ErrInvalidInput)
	}

	var a, b []selection.Fact
	for _, fact := range facts {
		if fact.Period != period {
			continue
		}
		switch fact.EntryID {
		case entryA:
			a = append(a, fact)
		case entryB:
			b = append(b, fact)
		}
	}
	if len(a) == 0 {
		return selection.Comparison{}, fmt.Errorf("%w: no picks for entry=%d period=%d", ErrNotFound, entryA, period)
	}
	if len(b) == 0 {
		return selection.Comparison{}, fmt.Errorf("%w: no picks for entry=%d period=%d", ErrNotFound, entryB, period)
	}
	return selection.Compare(a, b), nil
}
