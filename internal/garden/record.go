package garden

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-bloom/internal/config"
	"github.com/vovakirdan/tui-bloom/internal/core"
	"github.com/vovakirdan/tui-bloom/internal/rng"
)

// SchemaVersion is the record layout written by Serialize.
//
// Version 1 lacked environment, mental, tendency and both branch outcomes.
const SchemaVersion = 2

// ErrCorruptRecord is returned when a record cannot be turned into a plant.
var ErrCorruptRecord = errors.New("garden: corrupt record")

// Record is the persisted form of a plant.
type Record struct {
	Version     int     `yaml:"version"`
	Seed        string  `yaml:"seed"`
	Stage       string  `yaml:"stage"`
	AgeSeconds  float64 `yaml:"age_seconds"`
	Water       float64 `yaml:"water"`
	Light       float64 `yaml:"light"`
	Environment float64 `yaml:"environment"`
	Mental      float64 `yaml:"mental"`
	Weeds       int     `yaml:"weeds"`
	Pests       int     `yaml:"pests"`
	LightOn     bool    `yaml:"light_on"`
	Tendency    string  `yaml:"tendency,omitempty"`
	Phase2      string  `yaml:"phase2,omitempty"`
	Phase3      string  `yaml:"phase3,omitempty"`
}

// Serialize returns the plant's persisted form at the current schema version.
func (p *Plant) Serialize() Record {
	s := p.state
	return Record{
		Version:     SchemaVersion,
		Seed:        s.Seed.ID(),
		Stage:       s.Stage.ID(),
		AgeSeconds:  s.AgeSeconds,
		Water:       s.Water,
		Light:       s.Light,
		Environment: s.Environment,
		Mental:      s.Mental,
		Weeds:       s.Weeds,
		Pests:       s.Pests,
		LightOn:     s.LightOn,
		Tendency:    s.Tendency.ID(),
		Phase2:      s.Phase2,
		Phase3:      s.Phase3,
	}
}

// Restore rebuilds a plant from a record.
//
// Older schemas are migrated: fields they lack take configured defaults,
// and branch outcomes a stage should already have are filled with the
// table defaults. Values out of range are clamped. A record with an
// unknown seed or stage, a missing version, or a newer schema returns
// ErrCorruptRecord.
func Restore(rec Record, cfg config.GardenConfig, src rng.Source) (*Plant, error) {
	switch {
	case rec.Version < 1:
		return nil, fmt.Errorf("%w: missing schema version", ErrCorruptRecord)
	case rec.Version > SchemaVersion:
		return nil, fmt.Errorf("%w: schema version %d is newer than %d", ErrCorruptRecord, rec.Version, SchemaVersion)
	}
	seed, ok := ParseSeed(rec.Seed)
	if !ok {
		return nil, fmt.Errorf("%w: unknown seed %q", ErrCorruptRecord, rec.Seed)
	}
	stage, ok := ParseStage(rec.Stage)
	if !ok {
		return nil, fmt.Errorf("%w: unknown stage %q", ErrCorruptRecord, rec.Stage)
	}

	rec = Migrate(rec, cfg)

	s := State{
		Seed:        seed,
		Stage:       stage,
		AgeSeconds:  finiteNonNegative(rec.AgeSeconds),
		Water:       core.ClampF(rec.Water, 0, maxLevel),
		Light:       core.ClampF(rec.Light, 0, maxLevel),
		Environment: core.ClampF(rec.Environment, 0, maxLevel),
		Mental:      core.ClampF(rec.Mental, 0, maxLevel),
		Weeds:       core.Clamp(rec.Weeds, 0, core.Max(0, cfg.Hazards.MaxWeeds)),
		Pests:       core.Clamp(rec.Pests, 0, core.Max(0, cfg.Hazards.MaxPests)),
		LightOn:     rec.LightOn,
		Tendency:    ParseTendency(rec.Tendency),
		Phase2:      rec.Phase2,
		Phase3:      rec.Phase3,
	}

	// Outcomes exist exactly for the transitions already passed.
	switch {
	case s.Stage < StageSprout:
		s.Tendency = TendencyUnset
	case s.Tendency == TendencyUnset:
		s.Tendency = TendencyYang
	}
	switch {
	case s.Stage < StageStem:
		s.Phase2 = ""
	case s.Phase2 == "":
		s.Phase2 = cfg.Branches.Phase2.Default
	}
	switch {
	case s.Stage < StageBud:
		s.Phase3 = ""
	case s.Phase3 == "":
		s.Phase3 = cfg.Branches.Phase3.Default
	}

	return &Plant{cfg: cfg, rng: src, state: s}, nil
}

// Migrate upgrades a record to SchemaVersion, filling the fields a
// version 1 record lacks. Records already at SchemaVersion pass through.
// It does not validate seed or stage.
func Migrate(rec Record, cfg config.GardenConfig) Record {
	if rec.Version == 1 {
		rec.Environment = cfg.Growth.InitialEnvironment
		rec.Mental = cfg.Growth.InitialMental
	}
	rec.Version = SchemaVersion
	return rec
}

func finiteNonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
