package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
)

const (
	batchStatusSuccess = "success"
	batchStatusFailed  = "failed"

	maxBatchWorkers = 8
)

type BatchInput struct {
	LeagueIDs  []int64
	MaxPeriod  int
	MaxWorkers int
	// Persist stores each successful run as a snapshot.
	Persist bool
}

type BatchResult struct {
	LeagueCount  int               `json:"league_count"`
	SuccessCount int               `json:"success_count"`
	FailedCount  int               `json:"failed_count"`
	WorkerCount  int               `json:"worker_count"`
	Tasks        []BatchTaskResult `json:"tasks"`
}

type BatchTaskResult struct {
	LeagueID          int64  `json:"league_id"`
	LeagueName        string `json:"league_name,omitempty"`
	RunID             string `json:"run_id,omitempty"`
	Status            string `json:"status"`
	HistoryRows       int    `json:"history_rows"`
	SelectionRows     int    `json:"selection_rows"`
	LedgerRows        int    `json:"ledger_rows"`
	ConsistencyErrors int    `json:"consistency_errors"`
	FetchFailures     int    `json:"fetch_failures"`
	DurationMs        int64  `json:"duration_ms"`
	Message           string `json:"message,omitempty"`
}

// RunBatch runs independent extractions for several leagues on a worker
// pool. Each run stays sequential; a failed league does not stop the others.
func (s *ExtractionService) RunBatch(ctx context.Context, input BatchInput) (BatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExtractionService.RunBatch")
	defer span.End()

	leagueIDs, err := normalizeBatchLeagues(input.LeagueIDs)
	if err != nil {
		return BatchResult{}, err
	}
	if input.Persist && s.snapshots == nil {
		return BatchResult{}, fmt.Errorf("%w: snapshot repository is not configured", ErrDependencyUnavailable)
	}

	workerCount := normalizeBatchWorkerCount(input.MaxWorkers, len(leagueIDs))
	result := BatchResult{
		LeagueCount: len(leagueIDs),
		WorkerCount: workerCount,
		Tasks:       make([]BatchTaskResult, 0, len(leagueIDs)),
	}

	results := make(chan BatchTaskResult, len(leagueIDs))
	var successCount atomic.Int32
	var failedCount atomic.Int32

	pool, err := ants.NewPool(workerCount, ants.WithLogger(s.logger))
	if err != nil {
		return BatchResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, leagueID := range leagueIDs {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := s.runBatchTask(ctx, leagueID, input.MaxPeriod, input.Persist)
			row.DurationMs = time.Since(start).Milliseconds()
			if row.Status == batchStatusSuccess {
				successCount.Add(1)
			} else {
				failedCount.Add(1)
			}
			results <- row
		}); err != nil {
			workers.Done()
			return BatchResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}
	sort.SliceStable(result.Tasks, func(i, j int) bool {
		return result.Tasks[i].LeagueID < result.Tasks[j].LeagueID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	s.logger.InfoContext(ctx, "batch extraction finished",
		"leagues", result.LeagueCount,
		"success", result.SuccessCount,
		"failed", result.FailedCount,
		"workers", result.WorkerCount,
	)
	return result, nil
}

func (s *ExtractionService) runBatchTask(ctx context.Context, leagueID int64, maxPeriod int, persist bool) BatchTaskResult {
	row := BatchTaskResult{LeagueID: leagueID}

	run := s.Run
	if persist {
		run = s.RunAndStore
	}
	res, err := run(ctx, maxPeriod, leagueID)
	if err != nil {
		row.Status = batchStatusFailed
		row.Message = err.Error()
		return row
	}

	row.Status = batchStatusSuccess
	row.LeagueName = res.LeagueName
	row.RunID = res.RunID.String()
	row.HistoryRows = len(res.History.Rows)
	row.SelectionRows = len(res.Selections)
	row.LedgerRows = len(res.Ledger)
	row.ConsistencyErrors = res.Consistency.TotalErrors
	row.FetchFailures = res.FetchFailures
	return row
}

func normalizeBatchLeagues(input []int64) ([]int64, error) {
	out := make([]int64, 0, len(input))
	seen := make(map[int64]struct{}, len(input))
	for _, id := range input {
		if id <= 0 {
			return nil, fmt.Errorf("%w: league id must be greater than zero, got %d", ErrInvalidInput, id)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: at least one league id is required", ErrInvalidInput)
	}
	return out, nil
}

func normalizeBatchWorkerCount(value int, taskCount int) int {
	if taskCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = 1
	}
	if value > maxBatchWorkers {
		value = maxBatchWorkers
	}
	if value > taskCount {
		value = taskCount
	}
	return value
}
