package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/fpl-ledger/internal/domain/league"
	"go.opentelemetry.io/otel/attribute"
)

const maxStandingsPages = 200

// buildLeague reads every standings page. Failure on the first page is fatal
// for the run; a later page failure keeps the teams read so far.
func (s *ExtractionService) buildLeague(ctx context.Context, run *extractionRun, leagueID int64) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExtractionService.buildLeague", attribute.Int64("league_id", leagueID))
	defer span.End()

	page, err := s.source.FetchLeagueStandings(ctx, leagueID, 1)
	if err != nil {
		return league.League{}, fmt.Errorf("fetch standings league=%d page=1: %w", leagueID, err)
	}

	out := league.League{
		ID:          leagueID,
		Name:        strings.TrimSpace(page.LeagueName),
		StartPeriod: page.StartPeriod,
		Teams:       make([]league.Team, 0, len(page.Entries)),
	}
	if out.StartPeriod < 1 {
		out.StartPeriod = 1
	}

	seen := make(map[int64]struct{}, len(page.Entries))
	appendEntries := func(entries []ExternalStandingEntry) {
		for _, entry := range entries {
			if entry.EntryID <= 0 {
				continue
			}
			// standings can shift between page reads while a period is live
			if _, ok := seen[entry.EntryID]; ok {
				continue
			}
			seen[entry.EntryID] = struct{}{}
			out.Teams = append(out.Teams, league.Team{
				ID:          entry.ID,
				EntryID:     entry.EntryID,
				ManagerName: strings.TrimSpace(entry.ManagerName),
				TeamName:    strings.TrimSpace(entry.TeamName),
				Rank:        entry.Rank,
				Total:       entry.Total,
			})
		}
	}
	appendEntries(page.Entries)

	for n := 2; page.HasNext && n <= maxStandingsPages; n++ {
		next, err := s.source.FetchLeagueStandings(ctx, leagueID, n)
		if err != nil {
			if skipErr := run.skipUnit(ctx, "standings page fetch failed, keeping partial team list", err, "page", n); skipErr != nil {
				return league.League{}, skipErr
			}
			break
		}
		appendEntries(next.Entries)
		page = next
	}

	if err := out.Validate(); err != nil {
		return league.League{}, fmt.Errorf("%w: %w", ErrLeagueUnavailable, err)
	}
	return out, nil
}
