package history

import (
	"slices"
	"sort"
)

// Derive sorts rows by team name, entry and period, then fills NetPoints,
// CumulativePoints and LeagueRank. The input slice is not modified.
func Derive(rows []TeamPeriod) []TeamPeriod {
	out := slices.Clone(rows)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TeamName != out[j].TeamName {
			return out[i].TeamName < out[j].TeamName
		}
		if out[i].EntryID != out[j].EntryID {
			return out[i].EntryID < out[j].EntryID
		}
		return out[i].Period < out[j].Period
	})

	running := make(map[int64]int, 32)
	for i := range out {
		out[i].NetPoints = out[i].Points - out[i].TransferPointCost
		running[out[i].EntryID] += out[i].NetPoints
		out[i].CumulativePoints = running[out[i].EntryID]
	}

	byPeriod := make(map[int][]int, 38)
	for i := range out {
		byPeriod[out[i].Period] = append(byPeriod[out[i].Period], i)
	}
	for _, idx := range byPeriod {
		totals := make([]int, 0, len(idx))
		for _, i := range idx {
			totals = append(totals, out[i].CumulativePoints)
		}
		ranks := DenseRankDescending(totals)
		for n, i := range idx {
			out[i].LeagueRank = ranks[n]
		}
	}

	return out
}

// DenseRankDescending ranks values highest first. Equal values share a rank
// and no rank number is skipped.
func DenseRankDescending(values []int) []int {
	distinct := slices.Clone(values)
	slices.Sort(distinct)
	distinct = slices.Compact(distinct)

	rankOf := make(map[int]int, len(distinct))
	for i := len(distinct) - 1; i >= 0; i-- {
		rankOf[distinct[i]] = len(distinct) - i
	}

	out := make([]int, len(values))
	for i, v := range values {
		out[i] = rankOf[v]
	}
	return out
}
