package garden

import (
	"math"

	"github.com/vovakirdan/tui-bloom/internal/config"
	"github.com/vovakirdan/tui-bloom/internal/core"
	"github.com/vovakirdan/tui-bloom/internal/rng"
)

const maxLevel = 100.0

// Plant is the growth model for one flower.
type Plant struct {
	cfg   config.GardenConfig
	rng   rng.Source
	state State

	witherReported bool
}

// New creates a plant grown from seed. The random source is shared with the
// rest of the session and must not be nil.
func New(seed SeedKind, cfg config.GardenConfig, src rng.Source) *Plant {
	p := &Plant{cfg: cfg, rng: src}
	p.state = initialState(seed, cfg)
	return p
}

func initialState(seed SeedKind, cfg config.GardenConfig) State {
	return State{
		Seed:        seed,
		Stage:       StageSeed,
		Water:       core.ClampF(cfg.Growth.InitialWater, 0, maxLevel),
		Environment: core.ClampF(cfg.Growth.InitialEnvironment, 0, maxLevel),
		Mental:      core.ClampF(cfg.Growth.InitialMental, 0, maxLevel),
	}
}

// State returns a copy of the current attributes.
func (p *Plant) State() State {
	return p.state
}

// Config returns the configuration the plant was created with.
func (p *Plant) Config() config.GardenConfig {
	return p.cfg
}

// Update advances the simulation by dt game seconds and returns what
// happened, in order. It does nothing when dt <= 0.
//
// Order within one update: age, water and environment decay, light gain,
// weed roll, pest roll, at most one stage transition, wither check.
func (p *Plant) Update(dt float64) []Event {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return nil
	}
	s := &p.state
	g := p.cfg.Growth

	s.AgeSeconds += dt
	s.Water = core.ClampF(s.Water-g.WaterDecay*dt, 0, maxLevel)
	s.Environment = core.ClampF(s.Environment-g.EnvironmentDecay*dt, 0, maxLevel)
	if s.LightOn {
		s.Light = core.ClampF(s.Light+g.LightRate*dt, 0, maxLevel)
	}

	s.Weeds = p.rollHazard(s.Weeds, p.cfg.Hazards.MaxWeeds, p.cfg.Hazards.WeedChance, dt)
	s.Pests = p.rollHazard(s.Pests, p.cfg.Hazards.MaxPests, p.cfg.Hazards.PestChance, dt)

	var events []Event
	if from, to, ok := p.advanceStage(); ok {
		events = append(events, Event{Kind: EventStageChanged, From: from, To: to})
	}

	if !p.IsAlive() && !p.witherReported {
		p.witherReported = true
		events = append(events, Event{Kind: EventWithered, From: s.Stage, To: s.Stage})
	}
	return events
}

// rollHazard draws from the random source only while count is below max.
func (p *Plant) rollHazard(count, max int, chance, dt float64) int {
	if count >= max || chance <= 0 {
		return core.Clamp(count, 0, core.Max(0, max))
	}
	if p.rng.Float64() < chance*dt {
		count++
	}
	return count
}

// advanceStage applies at most one transition.
func (p *Plant) advanceStage() (from, to Stage, ok bool) {
	s := &p.state
	g := p.cfg.Growth
	from = s.Stage

	switch s.Stage {
	case StageSeed:
		if s.Light < g.SproutLight {
			return from, from, false
		}
		if s.Light < g.YinBelow {
			s.Tendency = TendencyYin
		} else {
			s.Tendency = TendencyYang
		}
	case StageSprout:
		if s.Light < g.StemLight {
			return from, from, false
		}
		s.Phase2 = Phase2Outcome(p.cfg.Branches.Phase2, s.Seed, s.Water, s.Light, s.Mental)
	case StageStem:
		if s.Light < g.BudLight {
			return from, from, false
		}
		s.Phase3 = Phase3Outcome(p.cfg.Branches.Phase3, s.Seed, s.Phase2, s.Tendency, p.rng)
	case StageBud:
		if s.Light < g.FlowerLight && s.AgeSeconds < g.FlowerAgeSeconds {
			return from, from, false
		}
	default:
		return from, from, false
	}

	s.Stage++
	s.Light = 0
	s.LightOn = false
	return from, s.Stage, true
}

// ApplyWater adds the configured water amount.
func (p *Plant) ApplyWater() {
	p.state.Water = core.ClampF(p.state.Water+p.cfg.Care.WaterAmount, 0, maxLevel)
}

// ApplyFertilizer adds the configured fertilizer amount to water.
func (p *Plant) ApplyFertilizer() {
	p.state.Water = core.ClampF(p.state.Water+p.cfg.Care.FertilizerAmount, 0, maxLevel)
}

// SetLightOn toggles light accumulation. It does not change the light level.
func (p *Plant) SetLightOn(on bool) {
	p.state.LightOn = on
}

// RemoveWeeds pulls weeds and improves the environment.
func (p *Plant) RemoveWeeds() {
	p.state.Weeds = core.Max(0, p.state.Weeds-p.cfg.Care.WeedRemoval)
	p.state.Environment = core.ClampF(p.state.Environment+p.cfg.Care.EnvironmentBonus, 0, maxLevel)
}

// RemovePests removes pests and improves the environment.
func (p *Plant) RemovePests() {
	p.state.Pests = core.Max(0, p.state.Pests-p.cfg.Care.PestRemoval)
	p.state.Environment = core.ClampF(p.state.Environment+p.cfg.Care.EnvironmentBonus, 0, maxLevel)
}

// AdjustMental shifts the mental level by delta.
func (p *Plant) AdjustMental(delta float64) {
	p.state.Mental = core.ClampF(p.state.Mental+delta, 0, maxLevel)
}

// IsAlive reports whether water is above the wither threshold.
func (p *Plant) IsAlive() bool {
	return p.state.Water > p.cfg.Growth.WitherWater
}

// IsComplete reports whether the plant has flowered.
func (p *Plant) IsComplete() bool {
	return p.state.Stage == StageFlower
}

// NeedsAttention reports low water, low light, weeds or pests.
func (p *Plant) NeedsAttention() bool {
	s := p.state
	g := p.cfg.Growth
	return s.Water < g.LowWater || s.Light < g.LowLight || s.Weeds > 0 || s.Pests > 0
}
