package garden

import (
	"testing"

	"github.com/vovakirdan/tui-bloom/internal/config"
	"github.com/vovakirdan/tui-bloom/internal/rng"
)

// quietConfig returns defaults with hazards switched off.
func quietConfig() config.GardenConfig {
	cfg := config.DefaultGardenConfig()
	cfg.Hazards.WeedChance = 0
	cfg.Hazards.PestChance = 0
	return cfg
}

// countingSource wraps a Source and counts draws.
type countingSource struct {
	inner  rng.Source
	floats int
	ints   int
}

func (c *countingSource) Float64() float64 {
	c.floats++
	return c.inner.Float64()
}

func (c *countingSource) Intn(n int) int {
	c.ints++
	return c.inner.Intn(n)
}

func TestNewPlantInitialState(t *testing.T) {
	p := New(SeedMoon, quietConfig(), rng.New(1))
	s := p.State()

	if s.Seed != SeedMoon || s.Stage != StageSeed {
		t.Errorf("seed/stage = %v/%v, expected Moon/Seed", s.Seed, s.Stage)
	}
	if s.Water != 50 || s.Environment != 50 || s.Mental != 50 {
		t.Errorf("initial levels = %v/%v/%v, expected 50/50/50", s.Water, s.Environment, s.Mental)
	}
	if s.Light != 0 || s.LightOn {
		t.Error("light should start at 0 and off")
	}
	if s.Tendency != TendencyUnset || s.Phase2 != "" || s.Phase3 != "" {
		t.Error("branch outcomes should start unset")
	}
	if !p.IsAlive() {
		t.Error("new plant should be alive")
	}
}

func TestUpdateIgnoresNonPositiveDt(t *testing.T) {
	p := New(SeedSun, quietConfig(), rng.New(1))
	p.SetLightOn(true)
	before := p.State()

	for _, dt := range []float64{0, -1, -1000} {
		if events := p.Update(dt); len(events) != 0 {
			t.Errorf("Update(%v) returned events %v", dt, events)
		}
	}
	if p.State() != before {
		t.Errorf("Update with dt <= 0 changed state: %+v -> %+v", before, p.State())
	}
}

func TestUpdateDecay(t *testing.T) {
	cfg := quietConfig()
	p := New(SeedSun, cfg, rng.New(1))

	p.Update(100)
	s := p.State()
	if s.AgeSeconds != 100 {
		t.Errorf("AgeSeconds = %v, expected 100", s.AgeSeconds)
	}
	if want := 50 - cfg.Growth.WaterDecay*100; s.Water != want {
		t.Errorf("Water = %v, expected %v", s.Water, want)
	}
	if want := 50 - cfg.Growth.EnvironmentDecay*100; s.Environment != want {
		t.Errorf("Environment = %v, expected %v", s.Environment, want)
	}

	cfg.Growth.WaterDecay = 10
	cfg.Growth.EnvironmentDecay = 10
	p = New(SeedSun, cfg, rng.New(1))
	p.Update(60)
	if s := p.State(); s.Water != 0 || s.Environment != 0 {
		t.Errorf("decay should floor at 0, got water %v env %v", s.Water, s.Environment)
	}
}

func TestLightAccumulatesOnlyWhenOn(t *testing.T) {
	cfg := quietConfig()
	p := New(SeedSun, cfg, rng.New(1))

	p.Update(100)
	if p.State().Light != 0 {
		t.Errorf("light grew while off: %v", p.State().Light)
	}

	p.SetLightOn(true)
	p.Update(100)
	if want := cfg.Growth.LightRate * 100; p.State().Light != want {
		t.Errorf("Light = %v, expected %v", p.State().Light, want)
	}
}

func TestLightCapsAtHundred(t *testing.T) {
	cfg := quietConfig()
	cfg.Growth.LightRate = 1
	p, err := Restore(Record{Version: SchemaVersion, Seed: "sun", Stage: "flower", Water: 80, LightOn: true}, cfg, rng.New(1))
	if err != nil {
		t.Fatal(err)
	}

	p.Update(500)
	if p.State().Light != 100 {
		t.Errorf("Light = %v, expected cap of 100", p.State().Light)
	}
}

func TestSproutTendency(t *testing.T) {
	tests := []struct {
		name  string
		light float64
		want  Tendency
	}{
		{"threshold", 20, TendencyYin},
		{"just below half", 49, TendencyYin},
		{"half", 50, TendencyYang},
		{"full", 100, TendencyYang},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := New(SeedSun, quietConfig(), rng.New(1))
			p.state.Light = tc.light
			p.state.LightOn = true

			events := p.Update(0.001)
			s := p.State()
			if s.Stage != StageSprout {
				t.Fatalf("Stage = %v, expected Sprout", s.Stage)
			}
			if s.Tendency != tc.want {
				t.Errorf("Tendency = %v, expected %v", s.Tendency, tc.want)
			}
			if s.Light != 0 || s.LightOn {
				t.Errorf("after transition light = %v on=%v, expected 0 and off", s.Light, s.LightOn)
			}
			if len(events) != 1 || events[0].Kind != EventStageChanged || events[0].From != StageSeed || events[0].To != StageSprout {
				t.Errorf("events = %+v, expected one Seed->Sprout change", events)
			}
		})
	}
}

func TestNoTransitionBelowThreshold(t *testing.T) {
	p := New(SeedSun, quietConfig(), rng.New(1))
	p.state.Light = 19.99

	if events := p.Update(0.001); len(events) != 0 {
		t.Errorf("unexpected events %+v", events)
	}
	if p.State().Stage != StageSeed {
		t.Error("plant should stay a seed below the sprout threshold")
	}
}

func TestOneTransitionPerUpdate(t *testing.T) {
	p := New(SeedSun, quietConfig(), rng.New(1))
	p.state.Light = 100

	p.Update(1)
	if p.State().Stage != StageSprout {
		t.Errorf("Stage = %v, expected exactly one step to Sprout", p.State().Stage)
	}
}

func TestSproutToStemAssignsPhase2(t *testing.T) {
	p := New(SeedSun, quietConfig(), rng.New(1))
	p.state.Stage = StageSprout
	p.state.Tendency = TendencyYang
	p.state.Water = 100
	p.state.Mental = 100
	p.state.Light = 40

	p.Update(0.001)
	s := p.State()
	if s.Stage != StageStem {
		t.Fatalf("Stage = %v, expected Stem", s.Stage)
	}
	// mean(~100, 40, 100) = 80 + sun bias 5 + mental bonus 5 = 90
	if s.Phase2 != "straight" {
		t.Errorf("Phase2 = %q, expected straight", s.Phase2)
	}
	if s.Light != 0 {
		t.Errorf("Light = %v, expected reset", s.Light)
	}
}

func TestStemToBudAssignsPhase3(t *testing.T) {
	src := &countingSource{inner: &rng.Fixed{Ints: []int{0}}}
	p := New(SeedSun, quietConfig(), src)
	p.state.Stage = StageStem
	p.state.Tendency = TendencyYang
	p.state.Phase2 = "bending"
	p.state.Light = 60

	p.Update(0.001)
	s := p.State()
	if s.Stage != StageBud {
		t.Fatalf("Stage = %v, expected Bud", s.Stage)
	}
	// base 10 + 5 + 5 = 20 reaches every candidate; index 0 is "large"
	if s.Phase3 != "large" {
		t.Errorf("Phase3 = %q, expected large", s.Phase3)
	}
	if src.ints != 1 {
		t.Errorf("Intn called %d times, expected 1", src.ints)
	}
}

func TestBudToFlowerByAge(t *testing.T) {
	cfg := quietConfig()
	p := New(SeedRain, cfg, rng.New(1))
	p.state.Stage = StageBud
	p.state.Water = 100
	p.state.AgeSeconds = cfg.Growth.FlowerAgeSeconds - 1

	events := p.Update(2)
	if p.State().Stage != StageFlower {
		t.Fatalf("Stage = %v, expected Flower once age passes the threshold", p.State().Stage)
	}
	if len(events) != 1 || events[0].To != StageFlower {
		t.Errorf("events = %+v", events)
	}
	if !p.IsComplete() {
		t.Error("IsComplete() should be true")
	}
}

func TestBudToFlowerByLight(t *testing.T) {
	p := New(SeedRain, quietConfig(), rng.New(1))
	p.state.Stage = StageBud
	p.state.Light = 80

	p.Update(0.001)
	if p.State().Stage != StageFlower {
		t.Errorf("Stage = %v, expected Flower", p.State().Stage)
	}
}

func TestFlowerIsFinal(t *testing.T) {
	p := New(SeedRain, quietConfig(), rng.New(1))
	p.state.Stage = StageFlower
	p.state.Light = 100
	p.state.Water = 100

	if events := p.Update(1); len(events) != 0 {
		t.Errorf("flower should not transition, got %+v", events)
	}
}

func TestWitherFiresOnce(t *testing.T) {
	cfg := quietConfig()
	cfg.Growth.WaterDecay = 7
	p := New(SeedWind, cfg, rng.New(1))

	withered := 0
	for i := 0; i < 12; i++ {
		aliveBefore := p.IsAlive()
		for _, e := range p.Update(1) {
			if e.Kind != EventWithered {
				continue
			}
			withered++
			if !aliveBefore || p.IsAlive() {
				t.Errorf("Withered fired at update %d but alive went %v -> %v", i, aliveBefore, p.IsAlive())
			}
			// 50 - 7*7 = 1, which is at the threshold
			if i != 6 {
				t.Errorf("Withered fired at update %d, expected 6", i)
			}
		}
	}
	if withered != 1 {
		t.Errorf("Withered fired %d times, expected exactly 1", withered)
	}
}

func TestHazardsDrawOnlyBelowMax(t *testing.T) {
	cfg := quietConfig()
	cfg.Hazards.WeedChance = 1
	cfg.Hazards.MaxWeeds = 2
	src := &countingSource{inner: &rng.Fixed{Floats: []float64{0}}}
	p := New(SeedSun, cfg, src)

	for i := 0; i < 5; i++ {
		p.Update(1)
	}
	if p.State().Weeds != 2 {
		t.Errorf("Weeds = %d, expected max of 2", p.State().Weeds)
	}
	if src.floats != 2 {
		t.Errorf("Float64 drawn %d times, expected 2 (none once at max)", src.floats)
	}
	if p.State().Pests != 0 {
		t.Error("pests should not spawn with zero chance")
	}
}

func TestCareActions(t *testing.T) {
	cfg := quietConfig()
	p := New(SeedSun, cfg, rng.New(1))

	p.ApplyWater()
	if p.State().Water != 70 {
		t.Errorf("Water after ApplyWater = %v, expected 70", p.State().Water)
	}
	p.ApplyFertilizer()
	if p.State().Water != 100 {
		t.Errorf("Water after ApplyFertilizer = %v, expected cap 100", p.State().Water)
	}

	p.state.Weeds = 1
	p.state.Environment = 95
	p.RemoveWeeds()
	p.RemoveWeeds()
	if s := p.State(); s.Weeds != 0 || s.Environment != 100 {
		t.Errorf("after RemoveWeeds weeds=%d env=%v, expected 0 and 100", s.Weeds, s.Environment)
	}

	p.state.Pests = 3
	p.state.Environment = 10
	p.RemovePests()
	if s := p.State(); s.Pests != 2 || s.Environment != 20 {
		t.Errorf("after RemovePests pests=%d env=%v, expected 2 and 20", s.Pests, s.Environment)
	}

	p.AdjustMental(-500)
	if p.State().Mental != 0 {
		t.Errorf("Mental = %v, expected floor 0", p.State().Mental)
	}
	p.AdjustMental(cfg.Care.MentalStep)
	if p.State().Mental != 5 {
		t.Errorf("Mental = %v, expected 5", p.State().Mental)
	}
}

func TestNeedsAttention(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*State)
		want   bool
	}{
		{"healthy", func(s *State) { s.Water = 80; s.Light = 15 }, false},
		{"low water", func(s *State) { s.Water = 29; s.Light = 15 }, true},
		{"low light", func(s *State) { s.Water = 80; s.Light = 9 }, true},
		{"weeds", func(s *State) { s.Water = 80; s.Light = 15; s.Weeds = 1 }, true},
		{"pests", func(s *State) { s.Water = 80; s.Light = 15; s.Pests = 1 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := New(SeedSun, quietConfig(), rng.New(1))
			tc.mutate(&p.state)
			if got := p.NeedsAttention(); got != tc.want {
				t.Errorf("NeedsAttention() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestHourOf(t *testing.T) {
	tests := []struct {
		age  float64
		want int
	}{
		{0, 0},
		{3599, 0},
		{3600, 1},
		{22 * 3600, 22},
		{86400, 0},
		{90000, 1},
		{-5, 0},
	}
	for _, tc := range tests {
		if got := HourOf(tc.age); got != tc.want {
			t.Errorf("HourOf(%v) = %d, expected %d", tc.age, got, tc.want)
		}
	}
}

// TestLongRunInvariants drives a full session with hazards on and checks
// bounds, stage order, write-once outcomes and the light reset.
func TestLongRunInvariants(t *testing.T) {
	cfg := config.DefaultGardenConfig()
	cfg.Growth.LightRate = 1
	cfg.Hazards.WeedChance = 0.05
	cfg.Hazards.PestChance = 0.05
	src := rng.New(2024)
	p := New(SeedWind, cfg, src)

	prev := p.State()
	for i := 0; i < 5000; i++ {
		switch i % 7 {
		case 0:
			p.ApplyWater()
		case 1:
			p.SetLightOn(true)
		case 3:
			p.RemoveWeeds()
		case 4:
			p.RemovePests()
		case 5:
			p.AdjustMental(float64(i%11) - 5)
		}

		events := p.Update(3)
		s := p.State()

		for name, v := range map[string]float64{"water": s.Water, "light": s.Light, "environment": s.Environment, "mental": s.Mental} {
			if v < 0 || v > 100 {
				t.Fatalf("step %d: %s = %v out of range", i, name, v)
			}
		}
		if s.Weeds < 0 || s.Weeds > cfg.Hazards.MaxWeeds || s.Pests < 0 || s.Pests > cfg.Hazards.MaxPests {
			t.Fatalf("step %d: weeds=%d pests=%d out of range", i, s.Weeds, s.Pests)
		}
		if s.Stage < prev.Stage || s.Stage > prev.Stage+1 {
			t.Fatalf("step %d: stage went %v -> %v", i, prev.Stage, s.Stage)
		}
		if prev.Tendency != TendencyUnset && s.Tendency != prev.Tendency {
			t.Fatalf("step %d: tendency rewritten", i)
		}
		if prev.Phase2 != "" && s.Phase2 != prev.Phase2 {
			t.Fatalf("step %d: phase2 rewritten", i)
		}
		if prev.Phase3 != "" && s.Phase3 != prev.Phase3 {
			t.Fatalf("step %d: phase3 rewritten", i)
		}
		for _, e := range events {
			if e.Kind == EventStageChanged && s.Light != 0 {
				t.Fatalf("step %d: light = %v right after a transition", i, s.Light)
			}
		}
		prev = s
	}

	if prev.Stage != StageFlower {
		t.Errorf("final stage = %v, expected the plant to flower", prev.Stage)
	}
	if prev.Tendency == TendencyUnset || prev.Phase2 == "" || prev.Phase3 == "" {
		t.Errorf("final outcomes incomplete: %+v", prev)
	}
}

func TestDeterminismBySeed(t *testing.T) {
	run := func(seed int64) State {
		cfg := config.DefaultGardenConfig()
		cfg.Growth.LightRate = 0.5
		cfg.Hazards.WeedChance = 0.02
		cfg.Hazards.PestChance = 0.02
		p := New(SeedSun, cfg, rng.New(seed))
		for i := 0; i < 3000; i++ {
			if i%50 == 0 {
				p.ApplyWater()
				p.SetLightOn(true)
			}
			if i%120 == 0 {
				p.RemoveWeeds()
			}
			p.Update(2)
		}
		return p.State()
	}

	a, b := run(12345), run(12345)
	if a != b {
		t.Errorf("same seed diverged:\n%+v\n%+v", a, b)
	}
}
