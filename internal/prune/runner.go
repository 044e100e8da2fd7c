// Package prune enumerates backups, records a decision per file and deletes the expired ones.
package prune

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/raoulx24/dump-pruner/internal/fs"
	"github.com/raoulx24/dump-pruner/internal/logging"
	"github.com/raoulx24/dump-pruner/internal/retention"
)

// ErrDeleteFailed is returned when at least one expired file could not be removed.
var ErrDeleteFailed = errors.New("delete failed")

// Runner drives one pass over the backup directory.
type Runner struct {
	dir      string
	glob     string
	fs       fs.FS
	log      logging.Logger
	policy   *retention.Policy
	reporter Reporter
}

// New creates a runner. A nil filesystem means the local OS filesystem.
func New(dir, glob string, policy *retention.Policy, reporter Reporter, log logging.Logger, filesystem fs.FS) *Runner {
	if filesystem == nil {
		filesystem = fs.New()
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Runner{
		dir:      dir,
		glob:     glob,
		fs:       filesystem,
		log:      log,
		policy:   policy,
		reporter: reporter,
	}
}

// Run plans and, when authorized, executes the deletions.
func (r *Runner) Run(ctx context.Context, authorized bool) (*Report, error) {
	rep, err := r.Plan(ctx)
	if err != nil {
		return nil, err
	}
	rep.DryRun = !authorized
	if rep.Matched() == 0 {
		r.reporter.NoMatch(rep)
		return rep, nil
	}

	r.reporter.Summary(rep)
	execErr := r.Execute(ctx, rep, authorized)
	r.reporter.Executed(rep)
	return rep, execErr
}

// Plan lists the directory and classifies every match in listing order.
// Files without a usable date are skipped with a diagnostic.
func (r *Runner) Plan(ctx context.Context) (*Report, error) {
	names, err := r.fs.List(ctx, r.dir, r.glob)
	if err != nil {
		return nil, err
	}
	r.log.Debug("listed backup directory", "dir", r.dir, "glob", r.glob, "matched", len(names))

	rep := newReport(r.dir, r.glob, r.policy)
	r.reporter.Begin(rep)

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		d := r.policy.Evaluate(name)
		rep.add(d)

		if d.Action == retention.Skip {
			r.log.Warn("skipping file", "file", name, "reason", d.Reason)
			continue
		}
		r.reporter.File(d)
	}

	return rep, nil
}

// Execute removes every file marked for deletion when authorized.
// Without authorization it records a dry run and touches nothing.
func (r *Runner) Execute(ctx context.Context, rep *Report, authorized bool) error {
	if !authorized {
		rep.DryRun = true
		return nil
	}

	var failed []error
	for _, name := range rep.Delete {
		if err := ctx.Err(); err != nil {
			return err
		}

		removed, err := r.fs.Remove(ctx, filepath.Join(r.dir, name))
		if err != nil {
			r.log.Error("remove failed", "file", name, "error", err)
			rep.Failed = append(rep.Failed, name)
			failed = append(failed, fmt.Errorf("%s: %w", name, err))
			continue
		}
		if !removed {
			r.log.Debug("already gone", "file", name)
			continue
		}
		rep.Deleted++
	}

	r.log.Info("deletion finished", "deleted", rep.Deleted, "failed", len(rep.Failed))
	if len(failed) > 0 {
		return fmt.Errorf("%w: %w", ErrDeleteFailed, errors.Join(failed...))
	}
	return nil
}
