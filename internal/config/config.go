// Package config provides YAML-based garden configuration loading,
// branch table validation and difficulty presets.
package config

// Seed identifiers used as keys in the branch tables.
const (
	SeedSun  = "sun"
	SeedMoon = "moon"
	SeedWind = "wind"
	SeedRain = "rain"
)

// SeedIDs lists every seed identifier in selection order.
var SeedIDs = []string{SeedSun, SeedMoon, SeedWind, SeedRain}

// Tendency identifiers used as keys in the phase-3 table.
const (
	TendencyYin  = "yin"
	TendencyYang = "yang"
)

// GardenConfig contains all tunable parameters of the simulation.
type GardenConfig struct {
	Growth   GrowthConfig  `yaml:"growth"`
	Care     CareConfig    `yaml:"care"`
	Hazards  HazardConfig  `yaml:"hazards"`
	Gate     GateConfig    `yaml:"gate"`
	Session  SessionConfig `yaml:"session"`
	Branches BranchTables  `yaml:"branches"`
}

// GrowthConfig defines stage thresholds and per-second rates.
type GrowthConfig struct {
	SproutLight      float64 `yaml:"sprout_light"` // Light needed for Seed -> Sprout
	StemLight        float64 `yaml:"stem_light"`   // Light needed for Sprout -> Stem
	BudLight         float64 `yaml:"bud_light"`    // Light needed for Stem -> Bud
	FlowerLight      float64 `yaml:"flower_light"` // Light needed for Bud -> Flower
	FlowerAgeSeconds float64 `yaml:"flower_age_seconds"`

	LightRate        float64 `yaml:"light_rate"`        // Light gained per second while on
	WaterDecay       float64 `yaml:"water_decay"`       // Water lost per second
	EnvironmentDecay float64 `yaml:"environment_decay"` // Environment lost per second

	WitherWater float64 `yaml:"wither_water"` // Plant dies at or below this water level
	YinBelow    float64 `yaml:"yin_below"`    // Light below this at sprouting means yin

	LowWater float64 `yaml:"low_water"` // Attention threshold for water
	LowLight float64 `yaml:"low_light"` // Attention threshold for light

	InitialWater       float64 `yaml:"initial_water"`
	InitialEnvironment float64 `yaml:"initial_environment"`
	InitialMental      float64 `yaml:"initial_mental"`
}

// CareConfig defines the effect size of each player action.
type CareConfig struct {
	WaterAmount      float64 `yaml:"water_amount"`
	FertilizerAmount float64 `yaml:"fertilizer_amount"`
	WeedRemoval      int     `yaml:"weed_removal"`
	PestRemoval      int     `yaml:"pest_removal"`
	EnvironmentBonus float64 `yaml:"environment_bonus"` // Added when weeds or pests are removed
	MentalStep       float64 `yaml:"mental_step"`       // Change per kind or harsh word
}

// HazardConfig defines weed and pest spawning.
type HazardConfig struct {
	WeedChance float64 `yaml:"weed_chance"` // Probability per second
	PestChance float64 `yaml:"pest_chance"` // Probability per second
	MaxWeeds   int     `yaml:"max_weeds"`
	MaxPests   int     `yaml:"max_pests"`
}

// GateConfig defines nutrition rate limiting and the sleep window.
type GateConfig struct {
	NutritionLimit int  `yaml:"nutrition_limit"` // Actions allowed per in-game hour
	Disabled       bool `yaml:"disabled"`        // Lift the limit entirely
	SleepStart     int  `yaml:"sleep_start"`     // Hour the sleep window opens
	SleepEnd       int  `yaml:"sleep_end"`       // Hour the sleep window closes (exclusive)
	StartHour      int  `yaml:"start_hour"`      // Clock hour at age zero
}

// SessionConfig defines real-time durations used by the screen flow.
type SessionConfig struct {
	ModeReturnSeconds     float64 `yaml:"mode_return_seconds"`
	InfoMessageSeconds    float64 `yaml:"info_message_seconds"`
	InvalidMessageSeconds float64 `yaml:"invalid_message_seconds"`
	AutosaveSeconds       float64 `yaml:"autosave_seconds"`
}

// BranchTables drives the irreversible outcomes decided at Sprout -> Stem
// and Stem -> Bud.
type BranchTables struct {
	Phase2 Phase2Table `yaml:"phase2"`
	Phase3 Phase3Table `yaml:"phase3"`
}

// Phase2Table maps a care score to the stem shape.
type Phase2Table struct {
	SeedBias             map[string]float64 `yaml:"seed_bias"`
	MentalBonus          float64            `yaml:"mental_bonus"`
	MentalBonusThreshold float64            `yaml:"mental_bonus_threshold"`
	Ranges               []ScoreRange       `yaml:"ranges"` // First match wins
	Default              string             `yaml:"default"`
}

// ScoreRange is an inclusive [Min, Max] band of the phase-2 score.
type ScoreRange struct {
	Name string `yaml:"name"`
	Min  int    `yaml:"min"`
	Max  int    `yaml:"max"`
}

// Contains reports whether score lies in the band.
func (r ScoreRange) Contains(score int) bool {
	return score >= r.Min && score <= r.Max
}

// Phase3Table maps accumulated traits to the flower form.
type Phase3Table struct {
	SeedBase      map[string]int `yaml:"seed_base"`
	Phase2Value   map[string]int `yaml:"phase2_value"`
	TendencyValue map[string]int `yaml:"tendency_value"`
	Candidates    []Candidate    `yaml:"candidates"`
	Default       string         `yaml:"default"`
}

// Candidate is a flower form available once the base score reaches MinBase.
type Candidate struct {
	Name    string `yaml:"name"`
	MinBase int    `yaml:"min_base"`
}
