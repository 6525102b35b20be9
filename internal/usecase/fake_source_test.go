package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/riskibarqy/fpl-ledger/internal/domain/playerstat"
	"github.com/riskibarqy/fpl-ledger/internal/domain/reconcile"
	"github.com/riskibarqy/fpl-ledger/internal/domain/reference"
	"github.com/riskibarqy/fpl-ledger/internal/platform/logging"
	"github.com/riskibarqy/fpl-ledger/internal/platform/resilience"
)

var errStubNotFound = errors.New("stub: resource not found")

type stubLeagueSource struct {
	mu sync.Mutex

	pages        map[int64]map[int]ExternalStandingsPage
	pageErr      map[int64]error
	history      map[int64][]ExternalEntryPeriod
	historyErr   map[int64]error
	picks        map[teamPeriodKey]ExternalEntryPicks
	picksErr     map[teamPeriodKey]error
	live         map[int][]playerstat.Stat
	liveErr      map[int]error
	bootstrap    ExternalBootstrap
	bootstrapErr error
	transfers    map[int64][]ExternalTransfer
	transfersErr map[int64]error

	pickCalls []teamPeriodKey
	breakers  []*resilience.CircuitBreaker
}

func (s *stubLeagueSource) FetchLeagueStandings(_ context.Context, leagueID int64, page int) (ExternalStandingsPage, error) {
	if err := s.pageErr[leagueID]; err != nil && page == 1 {
		return ExternalStandingsPage{}, err
	}
	byPage, ok := s.pages[leagueID]
	if !ok {
		return ExternalStandingsPage{}, errStubNotFound
	}
	out, ok := byPage[page]
	if !ok {
		return ExternalStandingsPage{}, fmt.Errorf("page %d: %w", page, errStubNotFound)
	}
	return out, nil
}

func (s *stubLeagueSource) FetchEntryHistory(_ context.Context, entryID int64) ([]ExternalEntryPeriod, error) {
	if err := s.historyErr[entryID]; err != nil {
		return nil, err
	}
	return s.history[entryID], nil
}

func (s *stubLeagueSource) FetchEntryPicks(_ context.Context, entryID int64, period int) (ExternalEntryPicks, error) {
	key := teamPeriodKey{entryID: entryID, period: period}
	s.mu.Lock()
	s.pickCalls = append(s.pickCalls, key)
	s.mu.Unlock()

	if err := s.picksErr[key]; err != nil {
		return ExternalEntryPicks{}, err
	}
	out, ok := s.picks[key]
	if !ok {
		return ExternalEntryPicks{}, errStubNotFound
	}
	return out, nil
}

func (s *stubLeagueSource) FetchLivePeriod(_ context.Context, period int) ([]playerstat.Stat, error) {
	if err := s.liveErr[period]; err != nil {
		return nil, err
	}
	return s.live[period], nil
}

func (s *stubLeagueSource) FetchBootstrap(ctx context.Context) (ExternalBootstrap, error) {
	s.mu.Lock()
	s.breakers = append(s.breakers, resilience.ScopedBreaker(ctx, s, resilience.CircuitBreakerConfig{Enabled: true}, nil))
	s.mu.Unlock()
	if s.bootstrapErr != nil {
		return ExternalBootstrap{}, s.bootstrapErr
	}
	return s.bootstrap, nil
}

func (s *stubLeagueSource) FetchEntryTransfers(_ context.Context, entryID int64) ([]ExternalTransfer, error) {
	if err := s.transfersErr[entryID]; err != nil {
		return nil, err
	}
	return s.transfers[entryID], nil
}

func (s *stubLeagueSource) pickCallCount(entryID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, key := range s.pickCalls {
		if key.entryID == entryID {
			count++
		}
	}
	return count
}

const (
	testLeagueID = int64(100)
	entryAlpha   = int64(1)
	entryBravo   = int64(2)
)

// newScenarioSource builds a two team league over two periods. Alpha
// captains player 10 in period 1, who scores 6.
func newScenarioSource() *stubLeagueSource {
	return &stubLeagueSource{
		pages: map[int64]map[int]ExternalStandingsPage{
			testLeagueID: {
				1: {
					LeagueID:    testLeagueID,
					LeagueName:  "Office League",
					StartPeriod: 1,
					Page:        1,
					Entries: []ExternalStandingEntry{
						{ID: 501, EntryID: entryAlpha, ManagerName: "Ana Lee", TeamName: "Alpha", Rank: 2, Total: 20},
						{ID: 502, EntryID: entryBravo, ManagerName: "Ben Ong", TeamName: "Bravo", Rank: 1, Total: 21},
					},
				},
			},
		},
		history: map[int64][]ExternalEntryPeriod{
			entryAlpha: {
				{Period: 1, Points: 15, Bank: 5, Value: 1000},
				{Period: 2, Points: 9, TransferCount: 2, TransferCost: 4, Bank: 15, Value: 1002},
			},
			entryBravo: {
				{Period: 1, Points: 8, Bank: 0, Value: 1000},
				{Period: 2, Points: 13, Bank: 0, Value: 1001, ActiveChip: "bboost"},
			},
		},
		picks: map[teamPeriodKey]ExternalEntryPicks{
			{entryID: entryAlpha, period: 1}: {
				Picks: []ExternalPick{
					{PlayerID: 10, Position: 1, Multiplier: 2, IsCaptain: true},
					{PlayerID: 11, Position: 2, Multiplier: 1, IsViceCaptain: true},
					{PlayerID: 12, Position: 12, Multiplier: 0},
				},
				AutomaticSubs: []ExternalAutoSub{{EntryID: entryAlpha, PlayerIn: 12, PlayerOut: 14, Period: 1}},
			},
			{entryID: entryAlpha, period: 2}: {
				Picks: []ExternalPick{
					{PlayerID: 10, Position: 1, Multiplier: 2, IsCaptain: true},
					{PlayerID: 11, Position: 2, Multiplier: 1, IsViceCaptain: true},
				},
			},
			{entryID: entryBravo, period: 1}: {
				Picks: []ExternalPick{
					{PlayerID: 11, Position: 1, Multiplier: 2, IsCaptain: true},
					{PlayerID: 13, Position: 2, Multiplier: 1, IsViceCaptain: true},
				},
			},
			{entryID: entryBravo, period: 2}: {
				ActiveChip: "bboost",
				Picks: []ExternalPick{
					{PlayerID: 13, Position: 1, Multiplier: 2, IsCaptain: true},
					{PlayerID: 11, Position: 12, Multiplier: 1, IsViceCaptain: true},
				},
			},
		},
		live: map[int][]playerstat.Stat{
			1: {
				{PlayerID: 10, TotalPoints: 6, Minutes: 90},
				{PlayerID: 11, TotalPoints: 3, Minutes: 90},
				{PlayerID: 12, TotalPoints: 1, Minutes: 20},
				{PlayerID: 13, TotalPoints: 2, Minutes: 60},
			},
			2: {
				{PlayerID: 10, TotalPoints: 2, Minutes: 90},
				{PlayerID: 11, TotalPoints: 5, Minutes: 90},
				{PlayerID: 13, TotalPoints: 4, Minutes: 90},
			},
		},
		bootstrap: ExternalBootstrap{
			Players: []reference.Core{
				{ID: 10, PositionID: 4, FirstName: "Erling", SecondName: "Haaland", WebName: "Haaland", ClubID: 13, ClubCode: 43},
				{ID: 11, PositionID: 3, FirstName: "Bukayo", SecondName: "Saka", WebName: "Saka", ClubID: 1, ClubCode: 3},
				{ID: 12, PositionID: 2, FirstName: "Ben", SecondName: "White", WebName: "White", ClubID: 1, ClubCode: 3},
				{ID: 13, PositionID: 3, FirstName: "Cole", SecondName: "Palmer", WebName: "Palmer", ClubID: 6, ClubCode: 8},
				{ID: 14, PositionID: 1, FirstName: "David", SecondName: "Raya", WebName: "Raya", ClubID: 1, ClubCode: 3},
			},
			Clubs: []reference.Club{
				{ID: 1, Code: 3, Name: "Arsenal", ShortName: "ARS", PulseID: 1},
				{ID: 6, Code: 8, Name: "Chelsea", ShortName: "CHE", PulseID: 4},
				{ID: 13, Code: 43, Name: "Man City", ShortName: "MCI", PulseID: 11},
			},
			Positions: []reference.Position{
				{ID: 1, SingularName: "Goalkeeper", PluralName: "Goalkeepers", PluralNameShort: "GKP"},
				{ID: 2, SingularName: "Defender", PluralName: "Defenders", PluralNameShort: "DEF"},
				{ID: 3, SingularName: "Midfielder", PluralName: "Midfielders", PluralNameShort: "MID"},
				{ID: 4, SingularName: "Forward", PluralName: "Forwards", PluralNameShort: "FWD"},
			},
			Events: []ExternalEvent{
				{ID: 1, Finished: true, IsPrevious: true},
				{ID: 2, Finished: true, IsCurrent: true},
				{ID: 3, IsNext: true},
			},
		},
		transfers: map[int64][]ExternalTransfer{
			entryAlpha: {
				{EntryID: entryAlpha, Period: 2, PlayerIn: 13, PlayerInCost: 55, PlayerOut: 12, PlayerOutCost: 45, Time: time.Date(2024, 8, 23, 10, 30, 0, 0, time.UTC)},
				{EntryID: entryAlpha, Period: 5, PlayerIn: 14, PlayerInCost: 50, PlayerOut: 13, PlayerOutCost: 56, Time: time.Date(2024, 9, 20, 9, 0, 0, 0, time.UTC)},
			},
			entryBravo: {
				{EntryID: entryBravo, Period: 1, PlayerIn: 11, PlayerInCost: 100, PlayerOut: 14, PlayerOutCost: 50, Time: time.Date(2024, 8, 16, 17, 0, 0, 0, time.UTC)},
			},
		},
	}
}

var testSingapore = time.FixedZone("SGT", 8*60*60)

func newTestExtractionService(source LeagueDataSource) *ExtractionService {
	svc := NewExtractionService(source, nil, ExtractionConfig{
		Location: testSingapore,
		Basis:    reconcile.BasisGross,
	}, logging.NewNop())
	svc.newRunID = func() uuid.UUID { return uuid.MustParse("2f1b5c4e-8d0a-4c1e-9f61-3a7f2b9d1e00") }
	fixed := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	return svc
}
