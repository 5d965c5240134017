// Package garden implements the plant growth model: attribute decay, care
// actions, hazards and the irreversible branching between growth stages.
//
// A Plant is not safe for concurrent use. It never panics on out-of-range
// input; values are clamped and the simulation proceeds.
package garden

import (
	"github.com/vovakirdan/tui-bloom/internal/config"
)

// SeedKind is the seed chosen at the start of a session.
type SeedKind int

const (
	SeedSun SeedKind = iota
	SeedMoon
	SeedWind
	SeedRain
)

// Seeds lists every seed kind in selection order.
var Seeds = []SeedKind{SeedSun, SeedMoon, SeedWind, SeedRain}

// ID returns the stable identifier used in config tables and save records.
func (s SeedKind) ID() string {
	switch s {
	case SeedSun:
		return config.SeedSun
	case SeedMoon:
		return config.SeedMoon
	case SeedWind:
		return config.SeedWind
	case SeedRain:
		return config.SeedRain
	default:
		return ""
	}
}

// String returns a display name.
func (s SeedKind) String() string {
	switch s {
	case SeedSun:
		return "Sun"
	case SeedMoon:
		return "Moon"
	case SeedWind:
		return "Wind"
	case SeedRain:
		return "Rain"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is one of the four seed kinds.
func (s SeedKind) Valid() bool {
	return s >= SeedSun && s <= SeedRain
}

// ParseSeed converts an identifier back to a SeedKind.
func ParseSeed(id string) (SeedKind, bool) {
	for _, s := range Seeds {
		if s.ID() == id {
			return s, true
		}
	}
	return 0, false
}

// Stage is a growth stage. Stages only ever advance, one step at a time.
type Stage int

const (
	StageSeed Stage = iota
	StageSprout
	StageStem
	StageBud
	StageFlower
)

// ID returns the stable identifier used in save records.
func (s Stage) ID() string {
	switch s {
	case StageSeed:
		return "seed"
	case StageSprout:
		return "sprout"
	case StageStem:
		return "stem"
	case StageBud:
		return "bud"
	case StageFlower:
		return "flower"
	default:
		return ""
	}
}

// String returns a display name.
func (s Stage) String() string {
	switch s {
	case StageSeed:
		return "Seed"
	case StageSprout:
		return "Sprout"
	case StageStem:
		return "Stem"
	case StageBud:
		return "Bud"
	case StageFlower:
		return "Flower"
	default:
		return "Unknown"
	}
}

// ParseStage converts an identifier back to a Stage.
func ParseStage(id string) (Stage, bool) {
	for s := StageSeed; s <= StageFlower; s++ {
		if s.ID() == id {
			return s, true
		}
	}
	return 0, false
}

// Tendency is the light tendency fixed when the seed sprouts.
type Tendency int

const (
	TendencyUnset Tendency = iota
	TendencyYin
	TendencyYang
)

// ID returns the identifier used in config tables and save records.
func (t Tendency) ID() string {
	switch t {
	case TendencyYin:
		return config.TendencyYin
	case TendencyYang:
		return config.TendencyYang
	default:
		return ""
	}
}

// String returns a display name.
func (t Tendency) String() string {
	switch t {
	case TendencyYin:
		return "Yin"
	case TendencyYang:
		return "Yang"
	default:
		return "-"
	}
}

// ParseTendency converts an identifier back to a Tendency.
// Unknown identifiers map to TendencyUnset.
func ParseTendency(id string) Tendency {
	switch id {
	case config.TendencyYin:
		return TendencyYin
	case config.TendencyYang:
		return TendencyYang
	default:
		return TendencyUnset
	}
}

// State is a read-only copy of the plant's attributes.
type State struct {
	Seed        SeedKind
	Stage       Stage
	AgeSeconds  float64
	Water       float64 // [0, 100]
	Light       float64 // [0, 100], reset on every stage change
	Environment float64 // [0, 100]
	Mental      float64 // [0, 100]
	Weeds       int
	Pests       int
	LightOn     bool
	Tendency    Tendency // Set at Seed -> Sprout
	Phase2      string   // Set at Sprout -> Stem
	Phase3      string   // Set at Stem -> Bud
}

// HourOf returns floor(ageSeconds / 3600) mod 24.
func HourOf(ageSeconds float64) int {
	if ageSeconds < 0 {
		return 0
	}
	return int(ageSeconds/3600) % 24
}

// EventKind identifies what happened during an update.
type EventKind int

const (
	EventStageChanged EventKind = iota // From -> To
	EventWithered                      // The plant died
)

// Event is a growth model signal returned by Update, in occurrence order.
type Event struct {
	Kind EventKind
	From Stage
	To   Stage
}
