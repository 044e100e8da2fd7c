// Package retention decides which dated backups fall outside their window.
package retention

import (
	"time"

	"github.com/raoulx24/dump-pruner/internal/backup"
	"github.com/raoulx24/dump-pruner/internal/logging"
)

// Cutoffs holds the instant before which each tier's files are deleted.
type Cutoffs struct {
	Monthly      time.Time
	WeeklyAnchor time.Time
	Daily        time.Time
}

// NewCutoffs derives all three cutoffs from a single now.
func NewCutoffs(now time.Time) Cutoffs {
	return Cutoffs{
		Monthly:      Monthly.cutoff(now),
		WeeklyAnchor: WeeklyAnchor.cutoff(now),
		Daily:        Daily.cutoff(now),
	}
}

// For returns the cutoff of tier t.
func (c Cutoffs) For(t Tier) time.Time {
	switch t {
	case Monthly:
		return c.Monthly
	case WeeklyAnchor:
		return c.WeeklyAnchor
	default:
		return c.Daily
	}
}

// Decision is the verdict for one file.
type Decision struct {
	Name   string `yaml:"name"`
	Date   string `yaml:"date,omitempty"`
	Tier   Tier   `yaml:"tier,omitempty"`
	Action Action `yaml:"action"`
	Reason string `yaml:"reason"`
}

// Policy classifies candidates against cutoffs fixed at construction.
type Policy struct {
	now     time.Time
	cutoffs Cutoffs
	log     logging.Logger
}

// New builds a policy for a run that started at now.
func New(now time.Time, log logging.Logger) *Policy {
	if log == nil {
		log = logging.Nop()
	}
	return &Policy{
		now:     now,
		cutoffs: NewCutoffs(now),
		log:     log,
	}
}

// Now returns the snapshot every decision of this policy is judged against.
func (p *Policy) Now() time.Time {
	return p.now
}

// Cutoffs returns the precomputed cutoffs.
func (p *Policy) Cutoffs() Cutoffs {
	return p.cutoffs
}

// TierOf assigns a tier. The 1st of a month beats Monday, Monday beats the rest.
func TierOf(c backup.Candidate) Tier {
	switch {
	case c.FirstOfMonth():
		return Monthly
	case c.ISOWeekday() == 1:
		return WeeklyAnchor
	default:
		return Daily
	}
}

// Classify decides keep or delete for a parsed candidate.
// A file exactly at its cutoff is kept.
func (p *Policy) Classify(c backup.Candidate) Decision {
	tier := TierOf(c)
	cutoff := p.cutoffs.For(tier)
	date := c.Midnight(p.now.Location())

	d := Decision{
		Name: c.Name,
		Date: c.ISODate(),
		Tier: tier,
	}
	if date.Before(cutoff) {
		d.Action = Delete
		d.Reason = tier.label() + ">" + tier.window()
	} else {
		d.Action = Keep
		d.Reason = tier.label() + "<=" + tier.window()
	}

	p.log.Debug("classified", "file", c.Name, "tier", tier.String(), "cutoff", cutoff.Format(time.RFC3339), "action", d.Action.String())
	return d
}

// Evaluate parses name and classifies it, skipping names without a valid date.
func (p *Policy) Evaluate(name string) Decision {
	c, err := backup.Parse(name)
	if err != nil {
		return Decision{
			Name:   name,
			Action: Skip,
			Reason: backup.Reason(err),
		}
	}
	return p.Classify(c)
}
