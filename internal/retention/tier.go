package retention

import "time"

// Tier is one of the fixed retention classes.
type Tier int

const (
	// Monthly holds backups taken on the 1st of a month.
	Monthly Tier = iota + 1
	// WeeklyAnchor holds Monday backups that are not also a 1st.
	WeeklyAnchor
	// Daily holds everything else.
	Daily
)

func (t Tier) String() string {
	switch t {
	case Monthly:
		return "monthly"
	case WeeklyAnchor:
		return "weekly-anchor"
	case Daily:
		return "daily"
	default:
		return "none"
	}
}

// label is the tier prefix used in reason tags.
func (t Tier) label() string {
	if t == WeeklyAnchor {
		return "monday"
	}
	return t.String()
}

// window is the lookback shown in reason tags.
func (t Tier) window() string {
	switch t {
	case Monthly:
		return "12mo"
	case WeeklyAnchor:
		return "28d"
	case Daily:
		return "6d"
	default:
		return ""
	}
}

// cutoff subtracts the tier's lookback from now.
// Months use calendar arithmetic, so 2025-10-29 minus 12 months is 2024-10-29.
func (t Tier) cutoff(now time.Time) time.Time {
	switch t {
	case Monthly:
		return now.AddDate(0, -12, 0)
	case WeeklyAnchor:
		return now.AddDate(0, 0, -28)
	case Daily:
		return now.AddDate(0, 0, -6)
	default:
		return now
	}
}

// Action is the outcome recorded for a single file.
type Action int

const (
	Keep Action = iota
	Delete
	Skip
)

func (a Action) String() string {
	switch a {
	case Keep:
		return "keep"
	case Delete:
		return "delete"
	case Skip:
		return "skip"
	default:
		return "unknown"
	}
}

// MarshalText lets reports encode actions by name.
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// MarshalText lets reports encode tiers by name.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
