package selection

import "github.com/shopspring/decimal"

type MatchReason string

const (
	MatchPerfect         MatchReason = "Perfect match"
	MatchCaptainMismatch MatchReason = "Captain/Vice-captain mismatch"
	MatchSideMismatch    MatchReason = "Position threshold mismatch"
)

var (
	scorePerfect         = decimal.NewFromInt(1)
	scoreCaptainMismatch = decimal.RequireFromString("0.8")
	scoreSideMismatch    = decimal.RequireFromString("0.5")
	hundred              = decimal.NewFromInt(100)
)

// SharedPick is a player picked by both squads.
type SharedPick struct {
	PlayerID int64
	A        Fact
	B        Fact
	Score    decimal.Decimal
	Reason   MatchReason
}

type Comparison struct {
	// Similarity is a percentage rounded to two places.
	Similarity decimal.Decimal
	Shared     []SharedPick
	OnlyA      []Fact
	OnlyB      []Fact
}

// Compare scores how alike two squads are. Each shared player scores 1 when
// captaincy and starting side agree, 0.8 when captaincy differs and 0.5 when
// only the side differs. The total is divided by the size of squad a.
func Compare(a, b []Fact) Comparison {
	byPlayerB := make(map[int64]Fact, len(b))
	for _, fact := range b {
		byPlayerB[fact.PlayerID] = fact
	}
	inA := make(map[int64]struct{}, len(a))

	out := Comparison{
		Similarity: decimal.Zero,
		Shared:     make([]SharedPick, 0, len(a)),
		OnlyA:      make([]Fact, 0),
		OnlyB:      make([]Fact, 0),
	}
	total := decimal.Zero
	for _, fa := range a {
		inA[fa.PlayerID] = struct{}{}
		fb, ok := byPlayerB[fa.PlayerID]
		if !ok {
			out.OnlyA = append(out.OnlyA, fa)
			continue
		}
		score, reason := matchScore(fa.Pick, fb.Pick)
		total = total.Add(score)
		out.Shared = append(out.Shared, SharedPick{
			PlayerID: fa.PlayerID,
			A:        fa,
			B:        fb,
			Score:    score,
			Reason:   reason,
		})
	}
	for _, fb := range b {
		if _, ok := inA[fb.PlayerID]; !ok {
			out.OnlyB = append(out.OnlyB, fb)
		}
	}

	if len(a) > 0 && len(out.Shared) > 0 {
		out.Similarity = total.Div(decimal.NewFromInt(int64(len(a)))).Mul(hundred).Round(2)
	}
	return out
}

func matchScore(a, b Pick) (decimal.Decimal, MatchReason) {
	sameCaptaincy := a.IsCaptain == b.IsCaptain && a.IsViceCaptain == b.IsViceCaptain
	switch {
	case sameCaptaincy && a.IsStarting() == b.IsStarting():
		return scorePerfect, MatchPerfect
	case !sameCaptaincy:
		return scoreCaptainMismatch, MatchCaptainMismatch
	default:
		return scoreSideMismatch, MatchSideMismatch
	}
}
