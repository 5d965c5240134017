// Package gate rate-limits nutrition actions per in-game hour and reports
// the nightly sleep window.
package gate

import (
	"github.com/vovakirdan/tui-bloom/internal/config"
	"github.com/vovakirdan/tui-bloom/internal/garden"
)

// Gate tracks nutrition actions within the current in-game hour.
// The zero value is not usable; create one with New.
type Gate struct {
	limit      int
	disabled   bool
	sleepStart int
	sleepEnd   int
	startHour  int

	actionsThisHour int
	lastHour        int
}

// New creates a gate from configuration. The first observed hour is the
// configured start hour.
func New(cfg config.GateConfig) *Gate {
	g := &Gate{
		limit:      cfg.NutritionLimit,
		disabled:   cfg.Disabled,
		sleepStart: cfg.SleepStart,
		sleepEnd:   cfg.SleepEnd,
		startHour:  cfg.StartHour,
	}
	g.Reset()
	return g
}

// Hour returns the clock hour for a plant age, shifted by the start hour.
func (g *Gate) Hour(ageSeconds float64) int {
	return (garden.HourOf(ageSeconds) + g.startHour) % 24
}

// TickHour resets the counter when the derived hour differs from the last
// observed one. Call it once per tick before any permission check.
func (g *Gate) TickHour(ageSeconds float64) {
	hour := g.Hour(ageSeconds)
	if hour != g.lastHour {
		g.lastHour = hour
		g.actionsThisHour = 0
	}
}

// CanPerformNutritionAction reports whether another nutrition action fits
// in the current hour.
func (g *Gate) CanPerformNutritionAction() bool {
	return g.disabled || g.actionsThisHour < g.limit
}

// RecordNutritionAction counts an action and returns how many remain.
func (g *Gate) RecordNutritionAction() int {
	g.actionsThisHour++
	return g.Remaining()
}

// Remaining returns max(0, limit - actionsThisHour).
func (g *Gate) Remaining() int {
	if r := g.limit - g.actionsThisHour; r > 0 {
		return r
	}
	return 0
}

// Disabled reports whether the limit is lifted.
func (g *Gate) Disabled() bool {
	return g.disabled
}

// SetDisabled lifts or restores the limit.
func (g *Gate) SetDisabled(disabled bool) {
	g.disabled = disabled
}

// IsSleepTime reports whether the clock hour lies in [sleepStart, sleepEnd),
// wrapping past midnight when sleepStart > sleepEnd.
func (g *Gate) IsSleepTime(ageSeconds float64) bool {
	hour := g.Hour(ageSeconds)
	switch {
	case g.sleepStart == g.sleepEnd:
		return false
	case g.sleepStart < g.sleepEnd:
		return hour >= g.sleepStart && hour < g.sleepEnd
	default:
		return hour >= g.sleepStart || hour < g.sleepEnd
	}
}

// Reset clears the counter and the observed hour.
func (g *Gate) Reset() {
	g.actionsThisHour = 0
	g.lastHour = g.Hour(0)
}

// Sync sets the observed hour without clearing the counter, for sessions
// restored mid-game.
func (g *Gate) Sync(ageSeconds float64) {
	g.lastHour = g.Hour(ageSeconds)
}
