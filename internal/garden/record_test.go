package garden

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/tui-bloom/internal/rng"
)

func TestSerializeRestore(t *testing.T) {
	cfg := quietConfig()
	p := New(SeedRain, cfg, rng.New(5))
	p.state.Stage = StageBud
	p.state.AgeSeconds = 7200.5
	p.state.Light = 12.25
	p.state.Weeds = 2
	p.state.LightOn = true
	p.state.Tendency = TendencyYin
	p.state.Phase2 = "vine"
	p.state.Phase3 = "small"

	rec := p.Serialize()
	if rec.Version != SchemaVersion {
		t.Errorf("Version = %d, expected %d", rec.Version, SchemaVersion)
	}
	if rec.Seed != "rain" || rec.Stage != "bud" || rec.Tendency != "yin" {
		t.Errorf("identifiers = %q/%q/%q", rec.Seed, rec.Stage, rec.Tendency)
	}

	restored, err := Restore(rec, cfg, rng.New(5))
	if err != nil {
		t.Fatalf("Restore() failed: %v", err)
	}
	if restored.State() != p.State() {
		t.Errorf("restored state differs:\n got %+v\nwant %+v", restored.State(), p.State())
	}
}

func TestRestoreMigratesVersionOne(t *testing.T) {
	cfg := quietConfig()
	rec := Record{Version: 1, Seed: "sun", Stage: "stem", AgeSeconds: 900, Water: 40, Light: 5}

	p, err := Restore(rec, cfg, rng.New(1))
	if err != nil {
		t.Fatalf("Restore() failed: %v", err)
	}
	s := p.State()
	if s.Environment != cfg.Growth.InitialEnvironment || s.Mental != cfg.Growth.InitialMental {
		t.Errorf("environment/mental = %v/%v, expected defaults", s.Environment, s.Mental)
	}
	if s.Tendency != TendencyYang {
		t.Errorf("Tendency = %v, expected Yang default for a past sprout", s.Tendency)
	}
	if s.Phase2 != "normal" {
		t.Errorf("Phase2 = %q, expected table default", s.Phase2)
	}
	if s.Phase3 != "" {
		t.Errorf("Phase3 = %q, expected unset before Bud", s.Phase3)
	}
}

func TestRestoreClearsOutcomesAheadOfStage(t *testing.T) {
	rec := Record{Version: SchemaVersion, Seed: "moon", Stage: "seed", Water: 50, Tendency: "yin", Phase2: "vine", Phase3: "small"}

	p, err := Restore(rec, quietConfig(), rng.New(1))
	if err != nil {
		t.Fatal(err)
	}
	s := p.State()
	if s.Tendency != TendencyUnset || s.Phase2 != "" || s.Phase3 != "" {
		t.Errorf("seed-stage plant kept outcomes: %+v", s)
	}
}

func TestRestoreClampsValues(t *testing.T) {
	rec := Record{
		Version:     SchemaVersion,
		Seed:        "wind",
		Stage:       "sprout",
		AgeSeconds:  -10,
		Water:       150,
		Light:       math.NaN(),
		Environment: -3,
		Mental:      101,
		Weeds:       99,
		Pests:       -2,
		Tendency:    "sideways",
	}

	p, err := Restore(rec, quietConfig(), rng.New(1))
	if err != nil {
		t.Fatal(err)
	}
	s := p.State()
	if s.AgeSeconds != 0 || s.Water != 100 || s.Light != 0 || s.Environment != 0 || s.Mental != 100 {
		t.Errorf("levels not clamped: %+v", s)
	}
	if s.Weeds != 5 || s.Pests != 0 {
		t.Errorf("counts not clamped: weeds=%d pests=%d", s.Weeds, s.Pests)
	}
	if s.Tendency != TendencyYang {
		t.Errorf("unknown tendency on a sprout should default to Yang, got %v", s.Tendency)
	}
}

func TestMigrateKeepsCurrentFields(t *testing.T) {
	cfg := quietConfig()

	tests := []struct {
		name        string
		rec         Record
		environment float64
		mental      float64
	}{
		{"version 1 takes defaults",
			Record{Version: 1, Seed: "sun", Stage: "seed", Environment: 80, Mental: 20},
			cfg.Growth.InitialEnvironment, cfg.Growth.InitialMental},
		{"current version keeps values",
			Record{Version: SchemaVersion, Seed: "sun", Stage: "seed", Environment: 80, Mental: 20},
			80, 20},
		{"current version keeps zeros",
			Record{Version: SchemaVersion, Seed: "sun", Stage: "seed"},
			0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Migrate(tc.rec, cfg)
			if got.Version != SchemaVersion {
				t.Errorf("Version = %d, expected %d", got.Version, SchemaVersion)
			}
			if got.Environment != tc.environment || got.Mental != tc.mental {
				t.Errorf("environment/mental = %v/%v, expected %v/%v",
					got.Environment, got.Mental, tc.environment, tc.mental)
			}
		})
	}
}

func TestRestoreRejectsCorruptRecords(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
	}{
		{"unknown seed", Record{Version: 2, Seed: "ember", Stage: "seed"}},
		{"missing seed", Record{Version: 2, Stage: "seed"}},
		{"unknown stage", Record{Version: 2, Seed: "sun", Stage: "tree"}},
		{"future version", Record{Version: SchemaVersion + 1, Seed: "sun", Stage: "seed"}},
		{"missing version", Record{Seed: "sun", Stage: "seed", Environment: 80, Mental: 20}},
		{"negative version", Record{Version: -1, Seed: "sun", Stage: "seed"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Restore(tc.rec, quietConfig(), rng.New(1))
			if !errors.Is(err, ErrCorruptRecord) {
				t.Errorf("Restore() error = %v, expected ErrCorruptRecord", err)
			}
			if p != nil {
				t.Error("Restore() should not return a plant on error")
			}
		})
	}
}

func TestRestoredDeadPlantWithersOnFirstUpdate(t *testing.T) {
	rec := Record{Version: SchemaVersion, Seed: "sun", Stage: "sprout", Water: 0, Tendency: "yin"}
	p, err := Restore(rec, quietConfig(), rng.New(1))
	if err != nil {
		t.Fatal(err)
	}

	events := p.Update(0.1)
	if len(events) != 1 || events[0].Kind != EventWithered {
		t.Errorf("events = %+v, expected a single Withered", events)
	}
	if events := p.Update(0.1); len(events) != 0 {
		t.Errorf("second update events = %+v, expected none", events)
	}
}
