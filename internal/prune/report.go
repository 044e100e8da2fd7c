package prune

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/raoulx24/dump-pruner/internal/retention"
)

// Report accumulates the outcome of one run.
type Report struct {
	Dir     string
	Glob    string
	Now     time.Time
	Cutoffs retention.Cutoffs

	// Decisions holds every matched file in listing order.
	Decisions []retention.Decision
	Keep      []string
	Delete    []string
	Skip      []string

	DryRun  bool
	Deleted int
	Failed  []string
}

func newReport(dir, glob string, p *retention.Policy) *Report {
	return &Report{
		Dir:     dir,
		Glob:    glob,
		Now:     p.Now(),
		Cutoffs: p.Cutoffs(),
	}
}

func (r *Report) add(d retention.Decision) {
	r.Decisions = append(r.Decisions, d)
	switch d.Action {
	case retention.Keep:
		r.Keep = append(r.Keep, d.Name)
	case retention.Delete:
		r.Delete = append(r.Delete, d.Name)
	default:
		r.Skip = append(r.Skip, d.Name)
	}
}

// Matched is the number of files the glob selected.
func (r *Report) Matched() int {
	return len(r.Decisions)
}

// Reporter receives the run as it progresses.
type Reporter interface {
	Begin(rep *Report)
	File(d retention.Decision)
	NoMatch(rep *Report)
	Summary(rep *Report)
	Executed(rep *Report)
	// Err returns the first output error, if any.
	Err() error
}

// NewReporter returns the reporter for an output format.
func NewReporter(format string, w io.Writer) (Reporter, error) {
	switch format {
	case "", "text":
		return &TextReporter{w: w}, nil
	case "yaml":
		return &YAMLReporter{w: w}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// TextReporter prints human-readable lines as soon as each file is decided.
type TextReporter struct {
	w   io.Writer
	err error
}

func (t *TextReporter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *TextReporter) Err() error {
	return t.err
}

func (t *TextReporter) Begin(rep *Report) {
	c := rep.Cutoffs
	t.printf("Retention policy as of %s:\n", rep.Now.Format(time.RFC3339))
	t.printf("  1st of month  keep 12 months  (cutoff %s)\n", c.Monthly.Format(time.DateOnly))
	t.printf("  Mondays       keep 28 days    (cutoff %s)\n", c.WeeklyAnchor.Format(time.DateOnly))
	t.printf("  other days    keep 6 days     (cutoff %s)\n", c.Daily.Format(time.DateOnly))
	t.printf("Scanning %s for %s\n", rep.Dir, rep.Glob)
}

func (t *TextReporter) File(d retention.Decision) {
	t.printf("%-6s  %s  %s  %s\n", d.Action, d.Name, d.Date, d.Reason)
}

func (t *TextReporter) NoMatch(rep *Report) {
	t.printf("No files matched %s in %s\n", rep.Glob, rep.Dir)
	if rep.DryRun {
		t.printf("Dry run: no files were deleted.\n")
	}
}

func (t *TextReporter) Summary(rep *Report) {
	t.printf("Summary: %d to keep, %d to delete, %d skipped\n", len(rep.Keep), len(rep.Delete), len(rep.Skip))
}

func (t *TextReporter) Executed(rep *Report) {
	if rep.DryRun {
		t.printf("Dry run: no files were deleted. Re-run with --delete to remove %d file(s).\n", len(rep.Delete))
		return
	}
	t.printf("Deleted %d file(s).\n", rep.Deleted)
	if len(rep.Failed) > 0 {
		t.printf("Failed to delete %d file(s).\n", len(rep.Failed))
	}
}

// YAMLReporter emits a single document once the run is over.
type YAMLReporter struct {
	w   io.Writer
	err error
}

type yamlCutoffs struct {
	Monthly      string `yaml:"monthly"`
	WeeklyAnchor string `yaml:"weekly-anchor"`
	Daily        string `yaml:"daily"`
}

type yamlSummary struct {
	Keep    int      `yaml:"keep"`
	Delete  int      `yaml:"delete"`
	Skip    int      `yaml:"skip"`
	DryRun  bool     `yaml:"dry-run"`
	Deleted int      `yaml:"deleted"`
	Failed  []string `yaml:"failed,omitempty"`
}

type yamlDocument struct {
	Dir     string               `yaml:"dir"`
	Glob    string               `yaml:"glob"`
	Now     string               `yaml:"now"`
	Cutoffs yamlCutoffs          `yaml:"cutoffs"`
	Files   []retention.Decision `yaml:"files"`
	Summary yamlSummary          `yaml:"summary"`
}

func (y *YAMLReporter) Err() error {
	return y.err
}

func (y *YAMLReporter) Begin(*Report)           {}
func (y *YAMLReporter) File(retention.Decision) {}
func (y *YAMLReporter) Summary(*Report)         {}
func (y *YAMLReporter) NoMatch(rep *Report)     { y.write(rep) }
func (y *YAMLReporter) Executed(rep *Report)    { y.write(rep) }

func (y *YAMLReporter) write(rep *Report) {
	files := rep.Decisions
	if files == nil {
		files = []retention.Decision{}
	}
	doc := yamlDocument{
		Dir:  rep.Dir,
		Glob: rep.Glob,
		Now:  rep.Now.Format(time.RFC3339),
		Cutoffs: yamlCutoffs{
			Monthly:      rep.Cutoffs.Monthly.Format(time.RFC3339),
			WeeklyAnchor: rep.Cutoffs.WeeklyAnchor.Format(time.RFC3339),
			Daily:        rep.Cutoffs.Daily.Format(time.RFC3339),
		},
		Files: files,
		Summary: yamlSummary{
			Keep:    len(rep.Keep),
			Delete:  len(rep.Delete),
			Skip:    len(rep.Skip),
			DryRun:  rep.DryRun,
			Deleted: rep.Deleted,
			Failed:  rep.Failed,
		},
	}

	enc := yaml.NewEncoder(y.w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		y.err = err
		return
	}
	y.err = enc.Close()
}
