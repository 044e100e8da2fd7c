package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/raoulx24/dump-pruner/internal/config"
	"github.com/raoulx24/dump-pruner/internal/logging"
	"github.com/raoulx24/dump-pruner/internal/prune"
	"github.com/raoulx24/dump-pruner/internal/retention"
)

// newRootCmd builds the single dump-pruner command. now is read once per run.
func newRootCmd(now func() time.Time) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump-pruner",
		Short: "Apply a monthly/weekly/daily retention policy to dated backup files",
		Long: `dump-pruner keeps a rolling set of dated backups.

Each file must carry its date as YYYYMMDD followed by a dot, e.g. db-20250101.sql.gz.
Files dated on the 1st of a month are kept for 12 months, Mondays for 28 days and
every other day for 6 days. Files without a valid date are skipped.

Nothing is deleted unless --delete is given.

Environment overrides: DUMP_PRUNER_DIR, DUMP_PRUNER_GLOB, DUMP_PRUNER_OUTPUT,
DUMP_PRUNER_METRICS_FILE, DUMP_PRUNER_LOG_LEVEL, DUMP_PRUNER_LOG_FORMAT.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, now())
		},
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func run(cmd *cobra.Command, now time.Time) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	logg, err := logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}
	logg = logg.WithRunID()
	defer func() { _ = logg.Sync() }()

	reporter, err := prune.NewReporter(cfg.Output, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	policy := retention.New(now, logg)
	runner := prune.New(cfg.Dir, cfg.Glob, policy, reporter, logg, nil)

	logg.Debug("starting run", "dir", cfg.Dir, "glob", cfg.Glob, "delete", cfg.Delete, "now", now.Format(time.RFC3339))
	rep, runErr := runner.Run(cmd.Context(), cfg.Delete)

	if rep != nil && cfg.MetricsFile != "" {
		if err := prune.WriteMetrics(cfg.MetricsFile, rep); err != nil {
			logg.Error("metrics not written", "path", cfg.MetricsFile, "error", err)
		}
	}
	if err := reporter.Err(); err != nil && runErr == nil {
		runErr = fmt.Errorf("writing report: %w", err)
	}
	return runErr
}
