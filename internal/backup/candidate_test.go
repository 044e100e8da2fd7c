package backup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		wantToken string
		wantErr   error
	}{
		{name: "common layout", file: "db-20250101.sql.gz", wantToken: "20250101"},
		{name: "token at start", file: "20251027.tar", wantToken: "20251027"},
		{name: "no token", file: "readme.txt", wantErr: ErrNoDate},
		{name: "digits without dot", file: "db-20250101-full", wantErr: ErrNoDate},
		{name: "seven digits", file: "db-2025010.sql.gz", wantErr: ErrNoDate},
		{name: "feb 30", file: "db-20250230.sql.gz", wantErr: ErrInvalidDate},
		{name: "month 13", file: "db-20251301.sql.gz", wantErr: ErrInvalidDate},
		{name: "day 32", file: "db-20250132.sql.gz", wantErr: ErrInvalidDate},
		{name: "year zero", file: "db-00000101.sql.gz", wantErr: ErrInvalidDate},
		{name: "leap day", file: "db-20240229.sql.gz", wantToken: "20240229"},
		{name: "non leap feb 29", file: "db-20250229.sql.gz", wantErr: ErrInvalidDate},
		{name: "first run not followed by dot", file: "host12345678-20250315.sql.gz", wantToken: "20250315"},
		{name: "leftmost of two tokens", file: "20250101.20250202.gz", wantToken: "20250101"},
		{name: "leftmost token invalid", file: "db-20251399.20250202.gz", wantErr: ErrInvalidDate},
		{name: "long run uses last eight digits", file: "db-120250101.sql.gz", wantToken: "20250101"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.file)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.file, c.Name)
			assert.Equal(t, tt.wantToken, c.Token)
		})
	}
}

func TestCandidateDerivedFields(t *testing.T) {
	c, err := Parse("db-20251027.sql.gz")
	require.NoError(t, err)

	assert.Equal(t, 2025, c.Year)
	assert.Equal(t, time.October, c.Month)
	assert.Equal(t, 27, c.Day)
	assert.Equal(t, "2025-10-27", c.ISODate())
	assert.Equal(t, 1, c.ISOWeekday())
	assert.False(t, c.FirstOfMonth())

	loc := time.FixedZone("UTC+3", 3*60*60)
	assert.Equal(t, time.Date(2025, time.October, 27, 0, 0, 0, 0, loc), c.Midnight(loc))
}

func TestISOWeekdaySunday(t *testing.T) {
	c, err := Parse("db-20251026.sql.gz")
	require.NoError(t, err)
	assert.Equal(t, 7, c.ISOWeekday())
}

func TestFirstOfMonth(t *testing.T) {
	c, err := Parse("db-20250901.sql.gz")
	require.NoError(t, err)
	assert.True(t, c.FirstOfMonth())
	assert.Equal(t, 1, c.ISOWeekday(), "2025-09-01 is a Monday")
}

func TestReason(t *testing.T) {
	_, err := Parse("readme.txt")
	assert.Equal(t, "no date", Reason(err))

	_, err = Parse("db-20250230.sql.gz")
	assert.Equal(t, "invalid date", Reason(err))
}
