package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// presetScaling describes how a preset bends the base configuration.
type presetScaling struct {
	decay          float64 // Multiplier on water and environment decay
	hazard         float64 // Multiplier on weed and pest chances
	nutritionDelta int     // Added to the hourly nutrition limit
}

var presetScalings = map[DifficultyPreset]presetScaling{
	DifficultyEasy:   {decay: 0.5, hazard: 0.5, nutritionDelta: 2},
	DifficultyNormal: {decay: 1, hazard: 1, nutritionDelta: 0},
	DifficultyHard:   {decay: 1.5, hazard: 2, nutritionDelta: -1},
}

// ParseDifficulty converts a flag value to a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := presetScalings[p]; !ok {
		return DifficultyNormal, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
	return p, nil
}

// ApplyGardenPreset modifies the config based on a difficulty preset.
// Unknown presets leave the config untouched.
func ApplyGardenPreset(cfg *GardenConfig, preset DifficultyPreset) {
	sc, ok := presetScalings[preset]
	if !ok {
		return
	}

	cfg.Growth.WaterDecay *= sc.decay
	cfg.Growth.EnvironmentDecay *= sc.decay
	cfg.Hazards.WeedChance = clampF(cfg.Hazards.WeedChance*sc.hazard, 0, 1)
	cfg.Hazards.PestChance = clampF(cfg.Hazards.PestChance*sc.hazard, 0, 1)

	limit := cfg.Gate.NutritionLimit + sc.nutritionDelta
	if limit < 1 {
		limit = 1
	}
	cfg.Gate.NutritionLimit = limit
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
