package fpl

import (
	"time"

	"github.com/shopspring/decimal"
)

type standingsEnvelope struct {
	League struct {
		ID         int64  `json:"id"`
		Name       string `json:"name"`
		StartEvent int    `json:"start_event"`
	} `json:"league"`
	Standings struct {
		HasNext bool             `json:"has_next"`
		Page    int              `json:"page"`
		Results []standingResult `json:"results"`
	} `json:"standings"`
}

type standingResult struct {
	ID         int64  `json:"id"`
	Entry      int64  `json:"entry"`
	EntryName  string `json:"entry_name"`
	PlayerName string `json:"player_name"`
	Rank       int    `json:"rank"`
	Total      int    `json:"total"`
}

type historyEnvelope struct {
	Current []historyEvent `json:"current"`
	Chips   []historyChip  `json:"chips"`
}

type historyEvent struct {
	Event              int `json:"event"`
	Points             int `json:"points"`
	TotalPoints        int `json:"total_points"`
	OverallRank        int `json:"overall_rank"`
	Bank               int `json:"bank"`
	Value              int `json:"value"`
	EventTransfers     int `json:"event_transfers"`
	EventTransfersCost int `json:"event_transfers_cost"`
	PointsOnBench      int `json:"points_on_bench"`
}

type historyChip struct {
	Name  string `json:"name"`
	Event int    `json:"event"`
}

type picksEnvelope struct {
	ActiveChip    *string        `json:"active_chip"`
	AutomaticSubs []automaticSub `json:"automatic_subs"`
	Picks         []pickItem     `json:"picks"`
}

type automaticSub struct {
	Entry      int64 `json:"entry"`
	ElementIn  int64 `json:"element_in"`
	ElementOut int64 `json:"element_out"`
	Event      int   `json:"event"`
}

type pickItem struct {
	Element       int64 `json:"element"`
	Position      int   `json:"position"`
	Multiplier    int   `json:"multiplier"`
	IsCaptain     bool  `json:"is_captain"`
	IsViceCaptain bool  `json:"is_vice_captain"`
}

type liveEnvelope struct {
	Elements []liveElement `json:"elements"`
}

type liveElement struct {
	ID    int64     `json:"id"`
	Stats liveStats `json:"stats"`
}

type liveStats struct {
	Minutes                  int             `json:"minutes"`
	GoalsScored              int             `json:"goals_scored"`
	Assists                  int             `json:"assists"`
	CleanSheets              int             `json:"clean_sheets"`
	GoalsConceded            int             `json:"goals_conceded"`
	OwnGoals                 int             `json:"own_goals"`
	PenaltiesSaved           int             `json:"penalties_saved"`
	PenaltiesMissed          int             `json:"penalties_missed"`
	YellowCards              int             `json:"yellow_cards"`
	RedCards                 int             `json:"red_cards"`
	Saves                    int             `json:"saves"`
	Bonus                    int             `json:"bonus"`
	BPS                      int             `json:"bps"`
	Starts                   int             `json:"starts"`
	Influence                decimal.Decimal `json:"influence"`
	Creativity               decimal.Decimal `json:"creativity"`
	Threat                   decimal.Decimal `json:"threat"`
	ICTIndex                 decimal.Decimal `json:"ict_index"`
	ExpectedGoals            decimal.Decimal `json:"expected_goals"`
	ExpectedAssists          decimal.Decimal `json:"expected_assists"`
	ExpectedGoalInvolvements decimal.Decimal `json:"expected_goal_involvements"`
	ExpectedGoalsConceded    decimal.Decimal `json:"expected_goals_conceded"`
	TotalPoints              int             `json:"total_points"`
}

type bootstrapEnvelope struct {
	Events       []bootstrapEvent   `json:"events"`
	Teams        []bootstrapTeam    `json:"teams"`
	ElementTypes []bootstrapType    `json:"element_types"`
	Elements     []bootstrapElement `json:"elements"`
}

type bootstrapEvent struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	DeadlineTime *time.Time `json:"deadline_time"`
	Finished     bool       `json:"finished"`
	IsPrevious   bool       `json:"is_previous"`
	IsCurrent    bool       `json:"is_current"`
	IsNext       bool       `json:"is_next"`
}

type bootstrapTeam struct {
	ID        int64  `json:"id"`
	Code      int64  `json:"code"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	PulseID   int64  `json:"pulse_id"`
}

type bootstrapType struct {
	ID              int    `json:"id"`
	SingularName    string `json:"singular_name"`
	PluralName      string `json:"plural_name"`
	PluralNameShort string `json:"plural_name_short"`
}

type bootstrapElement struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	SecondName  string `json:"second_name"`
	WebName     string `json:"web_name"`
	Team        int64  `json:"team"`
	TeamCode    int64  `json:"team_code"`
	ElementType int    `json:"element_type"`
}

type transferItem struct {
	ElementIn      int64     `json:"element_in"`
	ElementInCost  int       `json:"element_in_cost"`
	ElementOut     int64     `json:"element_out"`
	ElementOutCost int       `json:"element_out_cost"`
	Entry          int64     `json:"entry"`
	Event          int       `json:"event"`
	Time           time.Time `json:"time"`
}
