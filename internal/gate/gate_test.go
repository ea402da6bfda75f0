package gate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGate(t *testing.T) *Gate {
	t.Helper()
	g, err := New(DefaultConfig())
	require.NoError(t, err)
	return g
}

// 2025-01-05 is a Sunday.
func saoPauloTime(t *testing.T, day, hour, minute int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return time.Date(2025, time.January, day, hour, minute, 0, 0, loc)
}

func TestNew_UnknownTimezone(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timezone = "Mars/Olympus_Mons"
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestIsWindowOpen_Schedule(t *testing.T) {
	g := testGate(t)

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"sunday before open", saoPauloTime(t, 5, 8, 59), false},
		{"sunday at open", saoPauloTime(t, 5, 9, 0), true},
		{"sunday midday", saoPauloTime(t, 5, 15, 30), true},
		{"sunday last minute", saoPauloTime(t, 5, 23, 59), true},
		{"monday midnight", saoPauloTime(t, 6, 0, 0), false},
		{"saturday midday", saoPauloTime(t, 4, 15, 0), false},
		{"wednesday", saoPauloTime(t, 8, 12, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.IsWindowOpen(tt.now, nil))
		})
	}
}

func TestIsWindowOpen_OverrideWins(t *testing.T) {
	g := testGate(t)
	forcedOpen := true
	forcedClosed := false

	// Wednesday with a forced-open override.
	assert.True(t, g.IsWindowOpen(saoPauloTime(t, 8, 12, 0), &forcedOpen))
	// Sunday midday with a forced-closed override.
	assert.False(t, g.IsWindowOpen(saoPauloTime(t, 5, 15, 0), &forcedClosed))
}

func TestIsWindowOpen_UsesServiceTimezone(t *testing.T) {
	g := testGate(t)

	// 2025-01-06 01:00 UTC is still Sunday 22:00 in Sao Paulo (UTC-3).
	utc := time.Date(2025, time.January, 6, 1, 0, 0, 0, time.UTC)
	assert.True(t, g.IsWindowOpen(utc, nil))
}

func TestClaimDate(t *testing.T) {
	g := testGate(t)

	assert.Equal(t, "2025-01-05", g.ClaimDate(saoPauloTime(t, 5, 23, 59)))
	// A UTC timestamp past midnight still lands on Sunday locally.
	assert.Equal(t, "2025-01-05", g.ClaimDate(time.Date(2025, time.January, 6, 1, 0, 0, 0, time.UTC)))
}

func TestDaysBetween(t *testing.T) {
	g := testGate(t)

	tests := []struct {
		a, b string
		want int
	}{
		{"2025-01-05", "2025-01-12", 7},
		{"2025-01-05", "2025-01-11", 6},
		{"2025-01-05", "2025-01-13", 8},
		{"2025-01-05", "2025-01-19", 14},
		{"2025-01-05", "2025-01-05", 0},
		{"2025-01-12", "2025-01-05", -7},
	}
	for _, tt := range tests {
		got, err := g.DaysBetween(tt.a, tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s -> %s", tt.a, tt.b)
	}
}

func TestDaysBetween_InvalidDate(t *testing.T) {
	g := testGate(t)
	_, err := g.DaysBetween("not-a-date", "2025-01-05")
	assert.Error(t, err)
}

func TestDescribe(t *testing.T) {
	g := testGate(t)
	assert.Equal(t, "Sunday 09:00-23:59 America/Sao_Paulo", g.Describe())
}
