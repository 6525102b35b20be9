package history

import (
	"testing"

	"github.com/riskibarqy/fpl-ledger/internal/domain/league"
)

func TestDenseRankDescending(t *testing.T) {
	t.Parallel()

	got := DenseRankDescending([]int{50, 70, 50, 20, 70})
	want := []int{2, 1, 2, 3, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rank[%d]: got=%d want=%d (all=%v)", i, got[i], want[i], got)
		}
	}
}

func TestDerive_CumulativeIsRunningSumPerTeam(t *testing.T) {
	t.Parallel()

	// Deliberately unsorted and interleaved across teams.
	rows := []TeamPeriod{
		{EntryID: 2, TeamName: "Bravo", Period: 3, Points: 40},
		{EntryID: 1, TeamName: "Alpha", Period: 2, Points: 60, TransferPointCost: 4},
		{EntryID: 2, TeamName: "Bravo", Period: 1, Points: 70},
		{EntryID: 1, TeamName: "Alpha", Period: 1, Points: 50},
		{EntryID: 1, TeamName: "Alpha", Period: 3, Points: 30, TransferPointCost: 8},
		{EntryID: 2, TeamName: "Bravo", Period: 2, Points: 36},
	}

	got := Derive(rows)
	if len(got) != len(rows) {
		t.Fatalf("unexpected row count: got=%d want=%d", len(got), len(rows))
	}

	wantOrder := []struct {
		entry  int64
		period int
		net    int
		cum    int
	}{
		{1, 1, 50, 50},
		{1, 2, 56, 106},
		{1, 3, 22, 128},
		{2, 1, 70, 70},
		{2, 2, 36, 106},
		{2, 3, 40, 146},
	}
	for i, w := range wantOrder {
		row := got[i]
		if row.EntryID != w.entry || row.Period != w.period {
			t.Fatalf("row %d order: got=(%d,%d) want=(%d,%d)", i, row.EntryID, row.Period, w.entry, w.period)
		}
		if row.NetPoints != w.net {
			t.Fatalf("row %d net: got=%d want=%d", i, row.NetPoints, w.net)
		}
		if row.CumulativePoints != w.cum {
			t.Fatalf("row %d cumulative: got=%d want=%d", i, row.CumulativePoints, w.cum)
		}
	}

	// period 3 reconstruction: cumulative equals the sum of net points 1..3
	sum := 0
	for _, row := range got {
		if row.EntryID == 1 {
			sum += row.NetPoints
		}
	}
	if got[2].CumulativePoints != sum {
		t.Fatalf("period 3 cumulative: got=%d want=%d", got[2].CumulativePoints, sum)
	}
}

func TestDerive_LeagueRankIsDensePerPeriod(t *testing.T) {
	t.Parallel()

	rows := []TeamPeriod{
		{EntryID: 1, TeamName: "A", Period: 1, Points: 60},
		{EntryID: 2, TeamName: "B", Period: 1, Points: 60},
		{EntryID: 3, TeamName: "C", Period: 1, Points: 45},
		{EntryID: 1, TeamName: "A", Period: 2, Points: 10},
		{EntryID: 2, TeamName: "B", Period: 2, Points: 30},
		{EntryID: 3, TeamName: "C", Period: 2, Points: 80},
	}

	table := NewTable(rows, nil)
	cases := []struct {
		entry  int64
		period int
		rank   int
	}{
		{1, 1, 1}, {2, 1, 1}, {3, 1, 2},
		{1, 2, 3}, {2, 2, 2}, {3, 2, 1},
	}
	for _, tc := range cases {
		row, ok := table.Lookup(tc.entry, tc.period)
		if !ok {
			t.Fatalf("missing row entry=%d period=%d", tc.entry, tc.period)
		}
		if row.LeagueRank != tc.rank {
			t.Fatalf("rank entry=%d period=%d: got=%d want=%d", tc.entry, tc.period, row.LeagueRank, tc.rank)
		}
	}
}

func TestDerive_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	rows := []TeamPeriod{
		{EntryID: 1, TeamName: "Z", Period: 2, Points: 5},
		{EntryID: 1, TeamName: "Z", Period: 1, Points: 5},
	}
	_ = Derive(rows)
	if rows[0].Period != 2 || rows[0].CumulativePoints != 0 {
		t.Fatalf("input slice was modified: %+v", rows[0])
	}
}

func TestTable_KeepsTeamsWithoutHistory(t *testing.T) {
	t.Parallel()

	late := league.Team{EntryID: 9, TeamName: "Late Joiner"}
	table := NewTable(nil, []league.Team{late})
	if len(table.Rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(table.Rows))
	}
	if len(table.TeamsWithoutHistory) != 1 || table.TeamsWithoutHistory[0].EntryID != 9 {
		t.Fatalf("expected late joiner to be kept, got %+v", table.TeamsWithoutHistory)
	}
	if _, ok := table.Lookup(9, 1); ok {
		t.Fatalf("did not expect a history row for a team without history")
	}
}
