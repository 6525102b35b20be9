package fpl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fpl-ledger/internal/domain/playerstat"
	"github.com/riskibarqy/fpl-ledger/internal/domain/reference"
	"github.com/riskibarqy/fpl-ledger/internal/usecase"
)

var _ usecase.LeagueDataSource = (*Client)(nil)

func (c *Client) FetchLeagueStandings(ctx context.Context, leagueID int64, page int) (usecase.ExternalStandingsPage, error) {
	if leagueID <= 0 {
		return usecase.ExternalStandingsPage{}, fmt.Errorf("league id must be greater than zero")
	}
	if page < 1 {
		page = 1
	}

	resource := fmt.Sprintf("/leagues-classic/%d/standings/?page_standings=%d", leagueID, page)
	var payload standingsEnvelope
	if err := c.doJSON(ctx, resource, &payload); err != nil {
		return usecase.ExternalStandingsPage{}, fmt.Errorf("fetch league standings league=%d page=%d: %w", leagueID, page, err)
	}

	out := usecase.ExternalStandingsPage{
		LeagueID:    payload.League.ID,
		LeagueName:  strings.TrimSpace(payload.League.Name),
		StartPeriod: payload.League.StartEvent,
		Page:        payload.Standings.Page,
		HasNext:     payload.Standings.HasNext,
		Entries:     make([]usecase.ExternalStandingEntry, 0, len(payload.Standings.Results)),
	}
	for _, item := range payload.Standings.Results {
		out.Entries = append(out.Entries, usecase.ExternalStandingEntry{
			ID:          item.ID,
			EntryID:     item.Entry,
			ManagerName: item.PlayerName,
			TeamName:    item.EntryName,
			Rank:        item.Rank,
			Total:       item.Total,
		})
	}
	return out, nil
}

func (c *Client) FetchEntryHistory(ctx context.Context, entryID int64) ([]usecase.ExternalEntryPeriod, error) {
	resource := fmt.Sprintf("/entry/%d/history/", entryID)
	var payload historyEnvelope
	if err := c.doJSON(ctx, resource, &payload); err != nil {
		return nil, fmt.Errorf("fetch entry history entry=%d: %w", entryID, err)
	}

	chipByPeriod := make(map[int]string, len(payload.Chips))
	for _, chip := range payload.Chips {
		chipByPeriod[chip.Event] = chip.Name
	}

	out := make([]usecase.ExternalEntryPeriod, 0, len(payload.Current))
	for _, item := range payload.Current {
		out = append(out, usecase.ExternalEntryPeriod{
			Period:        item.Event,
			Points:        item.Points,
			TotalPoints:   item.TotalPoints,
			OverallRank:   item.OverallRank,
			Bank:          item.Bank,
			Value:         item.Value,
			TransferCount: item.EventTransfers,
			TransferCost:  item.EventTransfersCost,
			PointsOnBench: item.PointsOnBench,
			ActiveChip:    chipByPeriod[item.Event],
		})
	}
	return out, nil
}

func (c *Client) FetchEntryPicks(ctx context.Context, entryID int64, period int) (usecase.ExternalEntryPicks, error) {
	resource := fmt.Sprintf("/entry/%d/event/%d/picks/", entryID, period)
	var payload picksEnvelope
	if err := c.doJSON(ctx, resource, &payload); err != nil {
		return usecase.ExternalEntryPicks{}, fmt.Errorf("fetch entry picks entry=%d period=%d: %w", entryID, period, err)
	}

	out := usecase.ExternalEntryPicks{
		Picks:         make([]usecase.ExternalPick, 0, len(payload.Picks)),
		AutomaticSubs: make([]usecase.ExternalAutoSub, 0, len(payload.AutomaticSubs)),
	}
	if payload.ActiveChip != nil {
		out.ActiveChip = *payload.ActiveChip
	}
	for _, item := range payload.Picks {
		out.Picks = append(out.Picks, usecase.ExternalPick{
			PlayerID:      item.Element,
			Position:      item.Position,
			Multiplier:    item.Multiplier,
			IsCaptain:     item.IsCaptain,
			IsViceCaptain: item.IsViceCaptain,
		})
	}
	for _, sub := range payload.AutomaticSubs {
		out.AutomaticSubs = append(out.AutomaticSubs, usecase.ExternalAutoSub{
			EntryID:   sub.Entry,
			PlayerIn:  sub.ElementIn,
			PlayerOut: sub.ElementOut,
			Period:    sub.Event,
		})
	}
	return out, nil
}

func (c *Client) FetchLivePeriod(ctx context.Context, period int) ([]playerstat.Stat, error) {
	resource := fmt.Sprintf("/event/%d/live/", period)
	var payload liveEnvelope
	if err := c.doJSON(ctx, resource, &payload); err != nil {
		return nil, fmt.Errorf("fetch live period=%d: %w", period, err)
	}

	out := make([]playerstat.Stat, 0, len(payload.Elements))
	for _, item := range payload.Elements {
		s := item.Stats
		out = append(out, playerstat.Stat{
			PlayerID:                 item.ID,
			Period:                   period,
			Minutes:                  s.Minutes,
			GoalsScored:              s.GoalsScored,
			Assists:                  s.Assists,
			CleanSheets:              s.CleanSheets,
			GoalsConceded:            s.GoalsConceded,
			OwnGoals:                 s.OwnGoals,
			PenaltiesSaved:           s.PenaltiesSaved,
			PenaltiesMissed:          s.PenaltiesMissed,
			YellowCards:              s.YellowCards,
			RedCards:                 s.RedCards,
			Saves:                    s.Saves,
			Bonus:                    s.Bonus,
			BPS:                      s.BPS,
			Starts:                   s.Starts,
			Influence:                s.Influence,
			Creativity:               s.Creativity,
			Threat:                   s.Threat,
			ICTIndex:                 s.ICTIndex,
			ExpectedGoals:            s.ExpectedGoals,
			ExpectedAssists:          s.ExpectedAssists,
			ExpectedGoalInvolvements: s.ExpectedGoalInvolvements,
			ExpectedGoalsConceded:    s.ExpectedGoalsConceded,
			TotalPoints:              s.TotalPoints,
		})
	}
	return out, nil
}

func (c *Client) FetchBootstrap(ctx context.Context) (usecase.ExternalBootstrap, error) {
	var payload bootstrapEnvelope
	if err := c.doJSON(ctx, "/bootstrap-static/", &payload); err != nil {
		return usecase.ExternalBootstrap{}, fmt.Errorf("fetch bootstrap: %w", err)
	}

	out := usecase.ExternalBootstrap{
		Players:   make([]reference.Core, 0, len(payload.Elements)),
		Clubs:     make([]reference.Club, 0, len(payload.Teams)),
		Positions: make([]reference.Position, 0, len(payload.ElementTypes)),
		Events:    make([]usecase.ExternalEvent, 0, len(payload.Events)),
	}
	for _, item := range payload.Elements {
		out.Players = append(out.Players, reference.Core{
			ID:         item.ID,
			PositionID: item.ElementType,
			FirstName:  item.FirstName,
			SecondName: item.SecondName,
			WebName:    item.WebName,
			ClubID:     item.Team,
			ClubCode:   item.TeamCode,
		})
	}
	for _, item := range payload.Teams {
		out.Clubs = append(out.Clubs, reference.Club{
			ID:        item.ID,
			Code:      item.Code,
			Name:      item.Name,
			ShortName: item.ShortName,
			PulseID:   item.PulseID,
		})
	}
	for _, item := range payload.ElementTypes {
		out.Positions = append(out.Positions, reference.Position{
			ID:              item.ID,
			SingularName:    item.SingularName,
			PluralName:      item.PluralName,
			PluralNameShort: item.PluralNameShort,
		})
	}
	for _, item := range payload.Events {
		ev := usecase.ExternalEvent{
			ID:         item.ID,
			Name:       item.Name,
			Finished:   item.Finished,
			IsCurrent:  item.IsCurrent,
			IsPrevious: item.IsPrevious,
			IsNext:     item.IsNext,
		}
		if item.DeadlineTime != nil {
			ev.Deadline = item.DeadlineTime.UTC()
		}
		out.Events = append(out.Events, ev)
	}
	return out, nil
}

func (c *Client) FetchEntryTransfers(ctx context.Context, entryID int64) ([]usecase.ExternalTransfer, error) {
	resource := fmt.Sprintf("/entry/%d/transfers/", entryID)
	var payload []transferItem
	if err := c.doJSON(ctx, resource, &payload); err != nil {
		return nil, fmt.Errorf("fetch entry transfers entry=%d: %w", entryID, err)
	}

	out := make([]usecase.ExternalTransfer, 0, len(payload))
	for _, item := range payload {
		entry := item.Entry
		if entry == 0 {
			entry = entryID
		}
		out = append(out, usecase.ExternalTransfer{
			EntryID:       entry,
			Period:        item.Event,
			PlayerIn:      item.ElementIn,
			PlayerInCost:  item.ElementInCost,
			PlayerOut:     item.ElementOut,
			PlayerOutCost: item.ElementOutCost,
			Time:          item.Time.In(time.UTC),
		})
	}
	return out, nil
}
