package postgres

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type extractionRunModel struct {
	RunID             uuid.UUID `db:"run_id"`
	LeagueID          int64     `db:"league_id"`
	LeagueName        string    `db:"league_name"`
	StartPeriod       int       `db:"start_period"`
	MaxPeriod         int       `db:"max_period"`
	HistoryRows       int       `db:"history_rows"`
	FactRows          int       `db:"fact_rows"`
	LedgerRows        int       `db:"ledger_rows"`
	ConsistencyBasis  string    `db:"consistency_basis"`
	ConsistencyErrors int       `db:"consistency_errors"`
	CreatedAt         time.Time `db:"created_at"`
}

type teamPeriodInsertModel struct {
	RunID             uuid.UUID       `db:"run_id"`
	EntryID           int64           `db:"entry_id"`
	TeamID            int64           `db:"team_id"`
	ManagerName       string          `db:"manager_name"`
	TeamName          string          `db:"team_name"`
	Period            int             `db:"period"`
	Points            int             `db:"points"`
	TransferCount     int             `db:"transfer_count"`
	TransferPointCost int             `db:"transfer_point_cost"`
	BankBalance       decimal.Decimal `db:"bank_balance"`
	SquadValue        decimal.Decimal `db:"squad_value"`
	PointsOnBench     int             `db:"points_on_bench"`
	OverallRank       int             `db:"overall_rank"`
	ActiveChip        string          `db:"active_chip"`
	NetPoints         int             `db:"net_points"`
	CumulativePoints  int             `db:"cumulative_points"`
	LeagueRank        int             `db:"league_rank"`
}

type selectionFactInsertModel struct {
	RunID         uuid.UUID     `db:"run_id"`
	EntryID       int64         `db:"entry_id"`
	Period        int           `db:"period"`
	PlayerID      int64         `db:"player_id"`
	SquadSlot     int           `db:"squad_slot"`
	IsCaptain     bool          `db:"is_captain"`
	IsViceCaptain bool          `db:"is_vice_captain"`
	Multiplier    int           `db:"multiplier"`
	ActiveChip    string        `db:"active_chip"`
	AutoSubInFor  sql.NullInt64 `db:"auto_sub_in_for"`
	AutoSubOutFor sql.NullInt64 `db:"auto_sub_out_for"`
	WebName       string        `db:"web_name"`
	ClubShortName string        `db:"club_short_name"`
	PositionShort string        `db:"position_short"`
	Minutes       sql.NullInt64 `db:"minutes"`
	TotalPoints   sql.NullInt64 `db:"total_points"`
	PointsEarned  int           `db:"points_earned"`
}

type ledgerInsertModel struct {
	RunID         uuid.UUID       `db:"run_id"`
	TransferID    int             `db:"transfer_id"`
	Direction     string          `db:"direction"`
	EntryID       int64           `db:"entry_id"`
	Period        int             `db:"period"`
	LeagueRank    sql.NullInt64   `db:"league_rank"`
	TransferredAt time.Time       `db:"transferred_at"`
	LocalDate     string          `db:"local_date"`
	LocalTime     string          `db:"local_time"`
	PlayerID      int64           `db:"player_id"`
	Cost          decimal.Decimal `db:"cost"`
	WebName       string          `db:"web_name"`
	PointsEarned  sql.NullInt64   `db:"points_earned"`
}

type discrepancyInsertModel struct {
	RunID    uuid.UUID `db:"run_id"`
	EntryID  int64     `db:"entry_id"`
	Period   int       `db:"period"`
	Reported int       `db:"reported"`
	Observed int       `db:"observed"`
}
