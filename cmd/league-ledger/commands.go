package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/fpl-ledger/internal/app"
	"github.com/riskibarqy/fpl-ledger/internal/config"
	"github.com/riskibarqy/fpl-ledger/internal/platform/logging"
	"github.com/riskibarqy/fpl-ledger/internal/usecase"
	"github.com/spf13/cobra"
)

type runOptions struct {
	leagueID  int64
	maxPeriod int
	json      bool
	persist   bool
}

type batchOptions struct {
	leagues   string
	maxPeriod int
	workers   int
	persist   bool
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "league-ledger",
		Short:         "Extract and reconcile a fantasy classic league",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCommand(), newBatchCommand(), newLatestCommand())
	return root
}

func newRunCommand() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one extraction and print the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadCLI()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			snapshots, closeRepo, err := app.NewSnapshotRepository(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer func() { _ = closeRepo() }()

			svc, err := app.NewExtractionService(cfg, snapshots, logger)
			if err != nil {
				return err
			}

			run := svc.Run
			if opts.persist {
				run = svc.RunAndStore
			}
			result, err := run(cmd.Context(), opts.maxPeriod, opts.leagueID)
			if err != nil {
				return err
			}

			if opts.json {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			return writeSummary(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().Int64Var(&opts.leagueID, "league", 0, "classic league id")
	cmd.Flags().IntVar(&opts.maxPeriod, "max-period", 0, "last gameweek to extract, 0 resolves the current one")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the full result as JSON")
	cmd.Flags().BoolVar(&opts.persist, "persist", false, "store the run as a snapshot")
	_ = cmd.MarkFlagRequired("league")
	return cmd
}

func newBatchCommand() *cobra.Command {
	var opts batchOptions
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run extractions for several leagues in parallel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			leagueIDs, err := parseLeagueIDs(opts.leagues)
			if err != nil {
				return err
			}
			cfg, logger, err := loadCLI()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			snapshots, closeRepo, err := app.NewSnapshotRepository(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer func() { _ = closeRepo() }()

			svc, err := app.NewExtractionService(cfg, snapshots, logger)
			if err != nil {
				return err
			}

			workers := opts.workers
			if workers <= 0 {
				workers = cfg.ExtractWorkers
			}
			result, err := svc.RunBatch(cmd.Context(), usecase.BatchInput{
				LeagueIDs:  leagueIDs,
				MaxPeriod:  opts.maxPeriod,
				MaxWorkers: workers,
				Persist:    opts.persist,
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&opts.leagues, "leagues", "", "comma separated league ids")
	cmd.Flags().IntVar(&opts.maxPeriod, "max-period", 0, "last gameweek to extract, 0 resolves the current one")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "parallel league runs, defaults to EXTRACT_WORKERS")
	cmd.Flags().BoolVar(&opts.persist, "persist", false, "store each run as a snapshot")
	_ = cmd.MarkFlagRequired("leagues")
	return cmd
}

func newLatestCommand() *cobra.Command {
	var leagueID int64
	cmd := &cobra.Command{
		Use:   "latest",
		Short: "Show the latest stored snapshot of a league",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadCLI()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			snapshots, closeRepo, err := app.NewSnapshotRepository(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer func() { _ = closeRepo() }()

			svc, err := app.NewExtractionService(cfg, snapshots, logger)
			if err != nil {
				return err
			}
			summary, err := svc.LatestSnapshot(cmd.Context(), leagueID)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), summary)
		},
	}

	cmd.Flags().Int64Var(&leagueID, "league", 0, "classic league id")
	_ = cmd.MarkFlagRequired("league")
	return cmd
}

func loadCLI() (config.Config, *logging.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	logger := logging.NewConsole(cfg.LogLevel, nil)
	logging.SetDefault(logger)
	return cfg, logger, nil
}

func parseLeagueIDs(raw string) ([]int64, error) {
	parts := strings.Split(raw, ",")
	out := make([]int64, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		id, err := strconv.ParseInt(item, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid league id %q: %w", item, err)
		}
		out = append(out, id)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("at least one league id is required")
	}
	return out, nil
}
