package httpapi

import (
	"time"

	"github.com/riskibarqy/fpl-ledger/internal/domain/history"
	"github.com/riskibarqy/fpl-ledger/internal/domain/league"
	"github.com/riskibarqy/fpl-ledger/internal/domain/reconcile"
	"github.com/riskibarqy/fpl-ledger/internal/domain/selection"
	"github.com/riskibarqy/fpl-ledger/internal/domain/snapshot"
	"github.com/riskibarqy/fpl-ledger/internal/domain/transfer"
	"github.com/riskibarqy/fpl-ledger/internal/usecase"
	"github.com/shopspring/decimal"
)

type extractionDTO struct {
	RunID               string              `json:"run_id"`
	LeagueID            int64               `json:"league_id"`
	LeagueName          string              `json:"league_name"`
	StartPeriod         int                 `json:"start_period"`
	MaxPeriod           int                 `json:"max_period"`
	FetchFailures       int                 `json:"fetch_failures"`
	History             []teamPeriodDTO     `json:"history"`
	TeamsWithoutHistory []teamDTO           `json:"teams_without_history"`
	Selections          []selectionFactDTO  `json:"selections"`
	Transfers           []transferLedgerDTO `json:"transfers"`
	Consistency         consistencyDTO      `json:"consistency"`
	StartedAt           time.Time           `json:"started_at"`
	ElapsedMS           int64               `json:"elapsed_ms"`
}

type teamDTO struct {
	ID          int64  `json:"id"`
	EntryID     int64  `json:"entry_id"`
	ManagerName string `json:"manager_name"`
	TeamName    string `json:"team_name"`
	Rank        int    `json:"rank"`
	Total       int    `json:"total"`
}

type teamPeriodDTO struct {
	EntryID           int64           `json:"entry_id"`
	TeamID            int64           `json:"team_id"`
	ManagerName       string          `json:"manager_name"`
	TeamName          string          `json:"team_name"`
	Period            int             `json:"period"`
	Points            int             `json:"points"`
	TransferCount     int             `json:"transfer_count"`
	TransferPointCost int             `json:"transfer_point_cost"`
	NetPoints         int             `json:"net_points"`
	CumulativePoints  int             `json:"cumulative_points"`
	LeagueRank        int             `json:"league_rank"`
	OverallRank       int             `json:"overall_rank"`
	BankBalance       decimal.Decimal `json:"bank_balance"`
	SquadValue        decimal.Decimal `json:"squad_value"`
	PointsOnBench     int             `json:"points_on_bench"`
	ActiveChip        string          `json:"active_chip,omitempty"`
}

type selectionFactDTO struct {
	EntryID        int64  `json:"entry_id"`
	TeamName       string `json:"team_name"`
	ManagerName    string `json:"manager_name"`
	Period         int    `json:"period"`
	PlayerID       int64  `json:"player_id"`
	PlayerName     string `json:"player_name,omitempty"`
	ClubShortName  string `json:"club_short_name,omitempty"`
	Position       string `json:"position,omitempty"`
	SquadSlot      int    `json:"squad_slot"`
	IsCaptain      bool   `json:"is_captain"`
	IsViceCaptain  bool   `json:"is_vice_captain"`
	Multiplier     int    `json:"multiplier"`
	ActiveChip     string `json:"active_chip,omitempty"`
	AutoSubInFor   *int64 `json:"auto_sub_in_for"`
	AutoSubOutFor  *int64 `json:"auto_sub_out_for"`
	Minutes        *int   `json:"minutes"`
	TotalPoints    *int   `json:"total_points"`
	PointsEarned   int    `json:"points_earned"`
	HasPlayerStats bool   `json:"has_player_stats"`
}

type transferLedgerDTO struct {
	TransferID   int             `json:"transfer_id"`
	Direction    string          `json:"direction"`
	EntryID      int64           `json:"entry_id"`
	TeamName     string          `json:"team_name"`
	Period       int             `json:"period"`
	LeagueRank   *int            `json:"league_rank"`
	Date         string          `json:"date"`
	Time         string          `json:"time"`
	PlayerID     int64           `json:"player_id"`
	PlayerName   string          `json:"player_name,omitempty"`
	Cost         decimal.Decimal `json:"cost"`
	PointsEarned *int            `json:"points_earned"`
}

type consistencyDTO struct {
	Basis         string           `json:"basis"`
	Consistent    bool             `json:"consistent"`
	TotalErrors   int              `json:"total_errors"`
	Periods       []periodCheckDTO `json:"periods"`
	Discrepancies []discrepancyDTO `json:"discrepancies"`
}

type periodCheckDTO struct {
	Period  int `json:"period"`
	Checked int `json:"checked"`
	Errors  int `json:"errors"`
}

type discrepancyDTO struct {
	EntryID     int64  `json:"entry_id"`
	ManagerName string `json:"manager_name"`
	TeamName    string `json:"team_name"`
	Period      int    `json:"period"`
	Reported    int    `json:"reported"`
	Observed    int    `json:"observed"`
}

type comparisonDTO struct {
	Period     int               `json:"period"`
	EntryA     int64             `json:"entry_a"`
	EntryB     int64             `json:"entry_b"`
	Similarity decimal.Decimal   `json:"similarity"`
	Shared     []sharedPickDTO   `json:"shared"`
	OnlyA      []comparedPickDTO `json:"only_a"`
	OnlyB      []comparedPickDTO `json:"only_b"`
}

type sharedPickDTO struct {
	PlayerID   int64           `json:"player_id"`
	PlayerName string          `json:"player_name,omitempty"`
	Score      decimal.Decimal `json:"score"`
	Reason     string          `json:"reason"`
}

type comparedPickDTO struct {
	PlayerID   int64  `json:"player_id"`
	PlayerName string `json:"player_name,omitempty"`
	SquadSlot  int    `json:"squad_slot"`
	IsCaptain  bool   `json:"is_captain"`
}

type snapshotDTO struct {
	RunID             string    `json:"run_id"`
	LeagueID          int64     `json:"league_id"`
	LeagueName        string    `json:"league_name"`
	StartPeriod       int       `json:"start_period"`
	MaxPeriod         int       `json:"max_period"`
	HistoryRows       int       `json:"history_rows"`
	SelectionRows     int       `json:"selection_rows"`
	LedgerRows        int       `json:"ledger_rows"`
	ConsistencyErrors int       `json:"consistency_errors"`
	CreatedAt         time.Time `json:"created_at"`
}

func extractionToDTO(result usecase.Result) extractionDTO {
	out := extractionDTO{
		RunID:               result.RunID.String(),
		LeagueID:            result.LeagueID,
		LeagueName:          result.LeagueName,
		StartPeriod:         result.StartPeriod,
		MaxPeriod:           result.MaxPeriod,
		FetchFailures:       result.FetchFailures,
		History:             make([]teamPeriodDTO, 0, len(result.History.Rows)),
		TeamsWithoutHistory: make([]teamDTO, 0, len(result.History.TeamsWithoutHistory)),
		Selections:          make([]selectionFactDTO, 0, len(result.Selections)),
		Transfers:           make([]transferLedgerDTO, 0, len(result.Ledger)),
		Consistency:         consistencyToDTO(result.Consistency),
		StartedAt:           result.StartedAt,
		ElapsedMS:           result.Elapsed.Milliseconds(),
	}
	for _, row := range result.History.Rows {
		out.History = append(out.History, teamPeriodToDTO(row))
	}
	for _, team := range result.History.TeamsWithoutHistory {
		out.TeamsWithoutHistory = append(out.TeamsWithoutHistory, teamToDTO(team))
	}
	for _, fact := range result.Selections {
		out.Selections = append(out.Selections, selectionFactToDTO(fact))
	}
	for _, entry := range result.Ledger {
		out.Transfers = append(out.Transfers, ledgerEntryToDTO(entry))
	}
	return out
}

func teamToDTO(team league.Team) teamDTO {
	return teamDTO{
		ID:          team.ID,
		EntryID:     team.EntryID,
		ManagerName: team.ManagerName,
		TeamName:    team.TeamName,
		Rank:        team.Rank,
		Total:       team.Total,
	}
}

func teamPeriodToDTO(row history.TeamPeriod) teamPeriodDTO {
	return teamPeriodDTO{
		EntryID:           row.EntryID,
		TeamID:            row.TeamID,
		ManagerName:       row.ManagerName,
		TeamName:          row.TeamName,
		Period:            row.Period,
		Points:            row.Points,
		TransferCount:     row.TransferCount,
		TransferPointCost: row.TransferPointCost,
		NetPoints:         row.NetPoints,
		CumulativePoints:  row.CumulativePoints,
		LeagueRank:        row.LeagueRank,
		OverallRank:       row.OverallRank,
		BankBalance:       row.BankBalance,
		SquadValue:        row.SquadValue,
		PointsOnBench:     row.PointsOnBench,
		ActiveChip:        row.ActiveChip,
	}
}

func selectionFactToDTO(fact selection.Fact) selectionFactDTO {
	out := selectionFactDTO{
		EntryID:        fact.Team.EntryID,
		TeamName:       fact.Team.TeamName,
		ManagerName:    fact.Team.ManagerName,
		Period:         fact.Period,
		PlayerID:       fact.PlayerID,
		SquadSlot:      fact.SquadSlot,
		IsCaptain:      fact.IsCaptain,
		IsViceCaptain:  fact.IsViceCaptain,
		Multiplier:     fact.Multiplier,
		ActiveChip:     fact.ActiveChip,
		AutoSubInFor:   fact.AutoSubInFor,
		AutoSubOutFor:  fact.AutoSubOutFor,
		PointsEarned:   fact.PointsEarned,
		HasPlayerStats: fact.HasStat,
	}
	if fact.HasReference {
		out.PlayerName = fact.Player.WebName
		out.ClubShortName = fact.Player.ClubShortName
		out.Position = fact.Player.PositionSingularName
	}
	if fact.HasStat {
		minutes, total := fact.Stat.Minutes, fact.Stat.TotalPoints
		out.Minutes = &minutes
		out.TotalPoints = &total
	}
	return out
}

func ledgerEntryToDTO(entry transfer.LedgerEntry) transferLedgerDTO {
	return transferLedgerDTO{
		TransferID:   entry.TransferID,
		Direction:    string(entry.Direction),
		EntryID:      entry.Team.EntryID,
		TeamName:     entry.Team.TeamName,
		Period:       entry.Period,
		LeagueRank:   entry.LeagueRank,
		Date:         entry.Date,
		Time:         entry.TimeOfDay,
		PlayerID:     entry.PlayerID,
		PlayerName:   entry.Player.WebName,
		Cost:         entry.Cost,
		PointsEarned: entry.PointsEarned,
	}
}

func consistencyToDTO(report reconcile.Report) consistencyDTO {
	out := consistencyDTO{
		Basis:         string(report.Basis),
		Consistent:    report.Consistent(),
		TotalErrors:   report.TotalErrors,
		Periods:       make([]periodCheckDTO, 0, len(report.Periods)),
		Discrepancies: make([]discrepancyDTO, 0, len(report.Discrepancies)),
	}
	for _, p := range report.Periods {
		out.Periods = append(out.Periods, periodCheckDTO{
			Period:  p.Period,
			Checked: p.Checked,
			Errors:  p.Errors,
		})
	}
	for _, d := range report.Discrepancies {
		out.Discrepancies = append(out.Discrepancies, discrepancyDTO{
			EntryID:     d.EntryID,
			ManagerName: d.ManagerName,
			TeamName:    d.TeamName,
			Period:      d.Period,
			Reported:    d.Reported,
			Observed:    d.Observed,
		})
	}
	return out
}

func comparisonToDTO(period int, entryA, entryB int64, cmp selection.Comparison) comparisonDTO {
	out := comparisonDTO{
		Period:     period,
		EntryA:     entryA,
		EntryB:     entryB,
		Similarity: cmp.Similarity,
		Shared:     make([]sharedPickDTO, 0, len(cmp.Shared)),
		OnlyA:      comparedPicksToDTO(cmp.OnlyA),
		OnlyB:      comparedPicksToDTO(cmp.OnlyB),
	}
	for _, shared := range cmp.Shared {
		out.Shared = append(out.Shared, sharedPickDTO{
			PlayerID:   shared.PlayerID,
			PlayerName: shared.A.Player.WebName,
			Score:      shared.Score,
			Reason:     string(shared.Reason),
		})
	}
	return out
}

func comparedPicksToDTO(facts []selection.Fact) []comparedPickDTO {
	out := make([]comparedPickDTO, 0, len(facts))
	for _, fact := range facts {
		out = append(out, comparedPickDTO{
			PlayerID:   fact.PlayerID,
			PlayerName: fact.Player.WebName,
			SquadSlot:  fact.SquadSlot,
			IsCaptain:  fact.IsCaptain,
		})
	}
	return out
}

func snapshotToDTO(summary snapshot.Summary) snapshotDTO {
	return snapshotDTO{
		RunID:             summary.RunID.String(),
		LeagueID:          summary.LeagueID,
		LeagueName:        summary.LeagueName,
		StartPeriod:       summary.StartPeriod,
		MaxPeriod:         summary.MaxPeriod,
		HistoryRows:       summary.HistoryRows,
		SelectionRows:     summary.FactRows,
		LedgerRows:        summary.LedgerRows,
		ConsistencyErrors: summary.ConsistencyErrors,
		CreatedAt:         summary.CreatedAt,
	}
}
