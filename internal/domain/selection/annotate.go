package selection

// Annotate sets the auto-substitution fields of picks from subs. A player
// can only be on one side of a substitution, so when the source lists both
// the "in" side wins. Picks are copied; subs may be empty.
func Annotate(picks []Pick, subs []Substitution) []Pick {
	inFor := make(map[int64]int64, len(subs))
	outFor := make(map[int64]int64, len(subs))
	for _, sub := range subs {
		inFor[sub.PlayerIn] = sub.PlayerOut
		outFor[sub.PlayerOut] = sub.PlayerIn
	}

	out := make([]Pick, len(picks))
	for i, pick := range picks {
		pick.AutoSubInFor = nil
		pick.AutoSubOutFor = nil
		if replaced, ok := inFor[pick.PlayerID]; ok {
			pick.AutoSubInFor = &replaced
		} else if replacement, ok := outFor[pick.PlayerID]; ok {
			pick.AutoSubOutFor = &replacement
		}
		out[i] = pick
	}
	return out
}
