package usecase

import (
	"context"

	"github.com/riskibarqy/fpl-ledger/internal/domain/history"
	"github.com/riskibarqy/fpl-ledger/internal/domain/league"
	"github.com/riskibarqy/fpl-ledger/internal/domain/reconcile"
	"github.com/riskibarqy/fpl-ledger/internal/domain/selection"
)

type teamPeriodKey struct {
	entryID int64
	period  int
}

// checkConsistency compares each team's reported period points with the sum
// of points earned by its picks. Mismatches are logged and counted, never
// returned as errors. Teams without a history row report zero.
func checkConsistency(
	ctx context.Context,
	run *extractionRun,
	lg league.League,
	hist history.Table,
	facts []selection.Fact,
	startPeriod, maxPeriod int,
	basis reconcile.Basis,
) reconcile.Report {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExtractionService.checkConsistency")
	defer span.End()

	if basis == "" {
		basis = reconcile.BasisGross
	}

	observed := make(map[teamPeriodKey]int, len(hist.Rows))
	for _, fact := range facts {
		observed[teamPeriodKey{entryID: fact.EntryID, period: fact.Period}] += fact.PointsEarned
	}

	report := reconcile.Report{
		Basis:         basis,
		Periods:       make([]reconcile.PeriodSummary, 0, maxPeriod-startPeriod+1),
		Discrepancies: make([]reconcile.Discrepancy, 0),
	}
	for period := startPeriod; period <= maxPeriod; period++ {
		summary := reconcile.PeriodSummary{Period: period}
		for _, team := range lg.Teams {
			reported := 0
			if row, ok := hist.Lookup(team.EntryID, period); ok {
				reported = row.Points
				if basis == reconcile.BasisNet {
					reported = row.NetPoints
				}
			}
			got := observed[teamPeriodKey{entryID: team.EntryID, period: period}]
			summary.Checked++
			if reported == got {
				continue
			}

			summary.Errors++
			report.Discrepancies = append(report.Discrepancies, reconcile.Discrepancy{
				EntryID:     team.EntryID,
				ManagerName: team.ManagerName,
				TeamName:    team.TeamName,
				Period:      period,
				Reported:    reported,
				Observed:    got,
			})
			run.logger.WarnContext(ctx, "team period points do not match selection total",
				"entry_id", team.EntryID,
				"manager", team.ManagerName,
				"team", team.TeamName,
				"period", period,
				"reported", reported,
				"observed", got,
				"basis", string(basis),
			)
		}
		report.TotalErrors += summary.Errors
		report.Periods = append(report.Periods, summary)
		run.logger.DebugContext(ctx, "consistency checked period",
			"period", period,
			"checked", summary.Checked,
			"errors", summary.Errors,
		)
	}

	run.logger.InfoContext(ctx, "consistency check finished",
		"periods", len(report.Periods),
		"errors", report.TotalErrors,
		"basis", string(basis),
	)
	return report
}
