// Package gate decides whether the weekly claim window is currently open.
// The check is pure: given a timestamp and the manual override it always
// returns the same verdict, so the reconciler and the reward engine can
// both consult it without coordination.
package gate

import (
	"fmt"
	"math"
	"time"
)

// ClaimDateLayout is the calendar-date format stored in lastWorkDate.
const ClaimDateLayout = "2006-01-02"

// Config describes the recurring claim window in the service timezone.
type Config struct {
	Weekday   time.Weekday
	OpenHour  int // inclusive
	CloseHour int // exclusive; 24 means open through 23:59
	Timezone  string
}

// DefaultConfig is the observed production window: Sundays 09:00-23:59.
func DefaultConfig() Config {
	return Config{
		Weekday:   time.Sunday,
		OpenHour:  9,
		CloseHour: 24,
		Timezone:  "America/Sao_Paulo",
	}
}

// Gate evaluates the claim window.
type Gate struct {
	cfg Config
	loc *time.Location
}

// New creates a Gate, resolving the configured timezone.
func New(cfg Config) (*Gate, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}
	return &Gate{cfg: cfg, loc: loc}, nil
}

// Location returns the service timezone.
func (g *Gate) Location() *time.Location {
	return g.loc
}

// Config returns the configured window.
func (g *Gate) Config() Config {
	return g.cfg
}

// IsWindowOpen reports whether the window is open at now. A non-nil
// override wins unconditionally; otherwise the verdict is the schedule:
// configured weekday, hour in [OpenHour, CloseHour).
func (g *Gate) IsWindowOpen(now time.Time, override *bool) bool {
	if override != nil {
		return *override
	}
	local := now.In(g.loc)
	return local.Weekday() == g.cfg.Weekday &&
		local.Hour() >= g.cfg.OpenHour &&
		local.Hour() < g.cfg.CloseHour
}

// ClaimDate returns the calendar date of now in the service timezone,
// formatted as stored in lastWorkDate.
func (g *Gate) ClaimDate(now time.Time) string {
	return now.In(g.loc).Format(ClaimDateLayout)
}

// DaysBetween returns the number of calendar days from date a to date b
// (both ClaimDateLayout strings). Rounded so a DST-shortened or -lengthened
// week still counts as 7 days.
func (g *Gate) DaysBetween(a, b string) (int, error) {
	ta, err := time.ParseInLocation(ClaimDateLayout, a, g.loc)
	if err != nil {
		return 0, fmt.Errorf("parse date %q: %w", a, err)
	}
	tb, err := time.ParseInLocation(ClaimDateLayout, b, g.loc)
	if err != nil {
		return 0, fmt.Errorf("parse date %q: %w", b, err)
	}
	return int(math.Round(tb.Sub(ta).Hours() / 24)), nil
}

// Describe renders the schedule for status replies, e.g.
// "Sunday 09:00-23:59 America/Sao_Paulo".
func (g *Gate) Describe() string {
	return fmt.Sprintf("%s %02d:00-%02d:59 %s",
		g.cfg.Weekday, g.cfg.OpenHour, g.cfg.CloseHour-1, g.cfg.Timezone)
}
