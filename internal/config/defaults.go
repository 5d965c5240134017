package config

import (
	_ "embed"
)

//go:embed defaults/garden.yaml
var defaultGardenYAML []byte

// DefaultGardenConfig returns the hardcoded garden configuration.
// It is used when neither a config file nor the embedded YAML can be read.
func DefaultGardenConfig() GardenConfig {
	return GardenConfig{
		Growth: GrowthConfig{
			SproutLight:        20,
			StemLight:          40,
			BudLight:           60,
			FlowerLight:        80,
			FlowerAgeSeconds:   86400, // One in-game day
			LightRate:          0.02,
			WaterDecay:         0.01,
			EnvironmentDecay:   0.005,
			WitherWater:        1,
			YinBelow:           50,
			LowWater:           30,
			LowLight:           10,
			InitialWater:       50,
			InitialEnvironment: 50,
			InitialMental:      50,
		},
		Care: CareConfig{
			WaterAmount:      20,
			FertilizerAmount: 35,
			WeedRemoval:      1,
			PestRemoval:      1,
			EnvironmentBonus: 10,
			MentalStep:       5,
		},
		Hazards: HazardConfig{
			WeedChance: 0.0005,
			PestChance: 0.0003,
			MaxWeeds:   5,
			MaxPests:   5,
		},
		Gate: GateConfig{
			NutritionLimit: 3,
			SleepStart:     22,
			SleepEnd:       6,
			StartHour:      8,
		},
		Session: SessionConfig{
			ModeReturnSeconds:     0.8,
			InfoMessageSeconds:    2,
			InvalidMessageSeconds: 2,
			AutosaveSeconds:       30,
		},
		Branches: DefaultBranchTables(),
	}
}

// DefaultBranchTables returns the fallback branch tables.
func DefaultBranchTables() BranchTables {
	return BranchTables{
		Phase2: Phase2Table{
			SeedBias: map[string]float64{
				SeedSun:  5,
				SeedMoon: 0,
				SeedWind: 2,
				SeedRain: 3,
			},
			MentalBonus:          5,
			MentalBonusThreshold: 70,
			Ranges: []ScoreRange{
				{Name: "straight", Min: 70, Max: 100},
				{Name: "bending", Min: 40, Max: 69},
				{Name: "vine", Min: 0, Max: 39},
			},
			Default: "normal",
		},
		Phase3: Phase3Table{
			SeedBase: map[string]int{
				SeedSun:  10,
				SeedMoon: 0,
				SeedWind: 5,
				SeedRain: 5,
			},
			Phase2Value: map[string]int{
				"straight": 10,
				"bending":  5,
				"vine":     0,
				"normal":   0,
			},
			TendencyValue: map[string]int{
				TendencyYang: 5,
				TendencyYin:  0,
			},
			Candidates: []Candidate{
				{Name: "large", MinBase: 20},
				{Name: "round", MinBase: 15},
				{Name: "frilly", MinBase: 10},
				{Name: "small", MinBase: 5},
				{Name: "pointed", MinBase: 3},
			},
			Default: "normal",
		},
	}
}

// DefaultYAML returns the embedded default garden YAML.
func DefaultYAML() []byte {
	return defaultGardenYAML
}
