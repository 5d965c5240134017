package engine

import (
	"fmt"

	"github.com/vovakirdan/tui-bloom/internal/garden"
)

// MenuItem is the read-only view of one menu entry.
type MenuItem struct {
	ID      string
	Label   string
	Enabled bool
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	Screen   Screen
	HasPlant bool
	Plant    garden.State

	Alive          bool
	NeedsAttention bool
	Sleeping       bool
	Hour           int
	Clock          string

	Menu   []MenuItem
	Cursor int

	Info    string
	Invalid string

	TimeScale  float64
	Paused     bool
	ModeActive bool

	NutritionRemaining int
	NutritionUnlimited bool
}

// Snapshot captures the current session state.
func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		Screen:             c.screen,
		Cursor:             -1,
		Info:               c.info.text,
		Invalid:            c.invalid.text,
		TimeScale:          c.timeScale,
		Paused:             c.paused,
		ModeActive:         c.modeActive,
		NutritionRemaining: c.gate.Remaining(),
		NutritionUnlimited: c.gate.Disabled(),
	}

	if cur := c.cursor(); cur != nil {
		for _, it := range cur.Items() {
			snap.Menu = append(snap.Menu, MenuItem{ID: it.ID, Label: it.Label, Enabled: it.Enabled})
		}
		if len(snap.Menu) > 0 {
			snap.Cursor = cur.Index()
		}
	}

	if c.plant != nil {
		s := c.plant.State()
		snap.HasPlant = true
		snap.Plant = s
		snap.Alive = c.plant.IsAlive()
		snap.NeedsAttention = c.plant.NeedsAttention()
		snap.Sleeping = c.gate.IsSleepTime(s.AgeSeconds)
		snap.Hour = c.gate.Hour(s.AgeSeconds)
		snap.Clock = FormatClock(s.AgeSeconds + float64(c.cfg.Gate.StartHour)*3600)
	}
	return snap
}

// FormatClock renders an age as the in-game day and time, e.g. "Day 2 13:05".
func FormatClock(ageSeconds float64) string {
	if ageSeconds < 0 {
		ageSeconds = 0
	}
	total := int64(ageSeconds)
	day := total/86400 + 1
	hh := (total % 86400) / 3600
	mm := (total % 3600) / 60
	return fmt.Sprintf("Day %d %02d:%02d", day, hh, mm)
}
