package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fpl-ledger/internal/domain/snapshot"
	qb "github.com/riskibarqy/fpl-ledger/internal/platform/querybuilder"
)

type SnapshotRepository struct {
	db *sqlx.DB
}

func NewSnapshotRepository(db *sqlx.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) Save(ctx context.Context, run snapshot.Run) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx save snapshot: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	summary := run.Summary()
	query, args, err := qb.InsertRows("extraction_runs", []extractionRunModel{{
		RunID:             run.RunID,
		LeagueID:          run.LeagueID,
		LeagueName:        run.LeagueName,
		StartPeriod:       run.StartPeriod,
		MaxPeriod:         run.MaxPeriod,
		HistoryRows:       summary.HistoryRows,
		FactRows:          summary.FactRows,
		LedgerRows:        summary.LedgerRows,
		ConsistencyBasis:  string(run.Consistency.Basis),
		ConsistencyErrors: summary.ConsistencyErrors,
		CreatedAt:         run.CreatedAt.UTC(),
	}})
	if err != nil {
		return fmt.Errorf("build insert extraction run query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert extraction run=%s: %w", run.RunID, err)
	}

	history := make([]teamPeriodInsertModel, 0, len(run.History))
	for _, row := range run.History {
		history = append(history, teamPeriodInsertModel{
			RunID:             run.RunID,
			EntryID:           row.EntryID,
			TeamID:            row.TeamID,
			ManagerName:       row.ManagerName,
			TeamName:          row.TeamName,
			Period:            row.Period,
			Points:            row.Points,
			TransferCount:     row.TransferCount,
			TransferPointCost: row.TransferPointCost,
			BankBalance:       row.BankBalance,
			SquadValue:        row.SquadValue,
			PointsOnBench:     row.PointsOnBench,
			OverallRank:       row.OverallRank,
			ActiveChip:        row.ActiveChip,
			NetPoints:         row.NetPoints,
			CumulativePoints:  row.CumulativePoints,
			LeagueRank:        row.LeagueRank,
		})
	}
	if err := insertChunked(ctx, tx, "team_period_history", history); err != nil {
		return err
	}

	facts := make([]selectionFactInsertModel, 0, len(run.Facts))
	for _, fact := range run.Facts {
		model := selectionFactInsertModel{
			RunID:         run.RunID,
			EntryID:       fact.EntryID,
			Period:        fact.Period,
			PlayerID:      fact.PlayerID,
			SquadSlot:     fact.SquadSlot,
			IsCaptain:     fact.IsCaptain,
			IsViceCaptain: fact.IsViceCaptain,
			Multiplier:    fact.Multiplier,
			ActiveChip:    fact.ActiveChip,
			AutoSubInFor:  int64PtrToNull(fact.AutoSubInFor),
			AutoSubOutFor: int64PtrToNull(fact.AutoSubOutFor),
			WebName:       fact.Player.WebName,
			ClubShortName: fact.Player.ClubShortName,
			PositionShort: fact.Player.PositionPluralNameShort,
			PointsEarned:  fact.PointsEarned,
		}
		if fact.HasStat {
			minutes, total := fact.Stat.Minutes, fact.Stat.TotalPoints
			model.Minutes = intPtrToNull(&minutes)
			model.TotalPoints = intPtrToNull(&total)
		}
		facts = append(facts, model)
	}
	if err := insertChunked(ctx, tx, "selection_facts", facts); err != nil {
		return err
	}

	ledger := make([]ledgerInsertModel, 0, len(run.Ledger))
	for _, row := range run.Ledger {
		ledger = append(ledger, ledgerInsertModel{
			RunID:         run.RunID,
			TransferID:    row.TransferID,
			Direction:     string(row.Direction),
			EntryID:       row.Team.EntryID,
			Period:        row.Period,
			LeagueRank:    intPtrToNull(row.LeagueRank),
			TransferredAt: row.Time.UTC(),
			LocalDate:     row.Date,
			LocalTime:     row.TimeOfDay,
			PlayerID:      row.PlayerID,
			Cost:          row.Cost,
			WebName:       row.Player.WebName,
			PointsEarned:  intPtrToNull(row.PointsEarned),
		})
	}
	if err := insertChunked(ctx, tx, "transfer_ledger", ledger); err != nil {
		return err
	}

	discrepancies := make([]discrepancyInsertModel, 0, len(run.Consistency.Discrepancies))
	for _, d := range run.Consistency.Discrepancies {
		discrepancies = append(discrepancies, discrepancyInsertModel{
			RunID:    run.RunID,
			EntryID:  d.EntryID,
			Period:   d.Period,
			Reported: d.Reported,
			Observed: d.Observed,
		})
	}
	if err := insertChunked(ctx, tx, "consistency_discrepancies", discrepancies); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save snapshot tx: %w", err)
	}
	return nil
}

func (r *SnapshotRepository) LatestByLeague(ctx context.Context, leagueID int64) (snapshot.Summary, bool, error) {
	query, args, err := qb.Select("*").From("extraction_runs").
		Where(qb.Eq("league_id", leagueID)).
		OrderBy("created_at DESC", "run_id").
		Limit(1).
		ToSQL()
	if err != nil {
		return snapshot.Summary{}, false, fmt.Errorf("build latest extraction run query: %w", err)
	}

	var row extractionRunModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return snapshot.Summary{}, false, nil
		}
		return snapshot.Summary{}, false, fmt.Errorf("get latest extraction run league=%d: %w", leagueID, err)
	}

	return snapshot.Summary{
		RunID:             row.RunID,
		LeagueID:          row.LeagueID,
		LeagueName:        row.LeagueName,
		StartPeriod:       row.StartPeriod,
		MaxPeriod:         row.MaxPeriod,
		HistoryRows:       row.HistoryRows,
		FactRows:          row.FactRows,
		LedgerRows:        row.LedgerRows,
		ConsistencyErrors: row.ConsistencyErrors,
		CreatedAt:         row.CreatedAt,
	}, true, nil
}

func insertChunked[M any](ctx context.Context, tx *sqlx.Tx, table string, rows []M) error {
	for i, chunk := range chunks(rows, insertChunkSize) {
		query, args, err := qb.InsertRows(table, chunk)
		if err != nil {
			return fmt.Errorf("build insert %s chunk=%d query: %w", table, i, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert %s chunk=%d: %w", table, i, err)
		}
	}
	return nil
}
