package prune

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// WriteMetrics stores the run outcome in Prometheus text format at path,
// for pickup by the node_exporter textfile collector.
func WriteMetrics(path string, rep *Report) error {
	reg := prometheus.NewRegistry()

	files := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "dump_pruner_files",
		Help: "Backup files matched by the last run, by decision.",
	}, []string{"action"})
	deleted := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dump_pruner_deleted_files",
		Help: "Files actually removed by the last run.",
	})
	failed := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dump_pruner_failed_deletions",
		Help: "Files the last run failed to remove.",
	})
	dryRun := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dump_pruner_dry_run",
		Help: "1 if the last run was a dry run.",
	})
	lastRun := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dump_pruner_last_run_timestamp_seconds",
		Help: "Unix time the last run started.",
	})
	reg.MustRegister(files, deleted, failed, dryRun, lastRun)

	files.WithLabelValues("keep").Set(float64(len(rep.Keep)))
	files.WithLabelValues("delete").Set(float64(len(rep.Delete)))
	files.WithLabelValues("skip").Set(float64(len(rep.Skip)))
	deleted.Set(float64(rep.Deleted))
	failed.Set(float64(len(rep.Failed)))
	if rep.DryRun {
		dryRun.Set(1)
	}
	lastRun.Set(float64(rep.Now.Unix()))

	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}
	return nil
}
