// Package backup describes dated backup files found in the backup directory.
package backup

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// tokenLayout is the YYYYMMDD layout embedded in backup file names.
const tokenLayout = "20060102"

// matches the first 8 digits immediately followed by a dot
var tokenPattern = regexp.MustCompile(`(\d{8})\.`)

var (
	// ErrNoDate is returned when a name carries no YYYYMMDD. token.
	ErrNoDate = errors.New("no date")
	// ErrInvalidDate is returned when the token is not a real calendar date.
	ErrInvalidDate = errors.New("invalid date")
)

// Candidate describes a single backup file and the date embedded in its name.
type Candidate struct {
	Name  string
	Token string
	Year  int
	Month time.Month
	Day   int
}

// Parse extracts the embedded date from a file name.
// The leftmost match wins when a name contains several digit runs.
func Parse(name string) (Candidate, error) {
	m := tokenPattern.FindStringSubmatch(name)
	if m == nil {
		return Candidate{}, fmt.Errorf("%s: %w", name, ErrNoDate)
	}
	token := m[1]

	t, err := time.Parse(tokenLayout, token)
	if err != nil || t.Year() < 1 {
		return Candidate{}, fmt.Errorf("%s: token %s: %w", name, token, ErrInvalidDate)
	}

	return Candidate{
		Name:  name,
		Token: token,
		Year:  t.Year(),
		Month: t.Month(),
		Day:   t.Day(),
	}, nil
}

// Midnight returns the start of the candidate's date in loc.
func (c Candidate) Midnight(loc *time.Location) time.Time {
	return time.Date(c.Year, c.Month, c.Day, 0, 0, 0, 0, loc)
}

// ISODate formats the date as YYYY-MM-DD.
func (c Candidate) ISODate() string {
	return fmt.Sprintf("%04d-%02d-%02d", c.Year, int(c.Month), c.Day)
}

// ISOWeekday numbers the weekday Monday=1 through Sunday=7.
func (c Candidate) ISOWeekday() int {
	wd := int(c.Midnight(time.UTC).Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// FirstOfMonth reports whether the date is the 1st.
func (c Candidate) FirstOfMonth() bool {
	return c.Day == 1
}

// Reason maps a Parse error to its short skip tag.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrNoDate):
		return ErrNoDate.Error()
	case errors.Is(err, ErrInvalidDate):
		return ErrInvalidDate.Error()
	default:
		return "unreadable"
	}
}
