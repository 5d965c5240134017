package garden

import (
	"math"

	"github.com/vovakirdan/tui-bloom/internal/config"
	"github.com/vovakirdan/tui-bloom/internal/core"
	"github.com/vovakirdan/tui-bloom/internal/rng"
)

// Phase2Score computes the stem score: the mean of water, light and mental
// plus the seed bias, plus the mental bonus when mental reaches its
// threshold. The result is clamped to [0, 100] and floored.
func Phase2Score(t config.Phase2Table, seed SeedKind, water, light, mental float64) int {
	water = core.ClampF(water, 0, maxLevel)
	light = core.ClampF(light, 0, maxLevel)
	mental = core.ClampF(mental, 0, maxLevel)

	score := (water+light+mental)/3 + t.SeedBias[seed.ID()]
	if mental >= t.MentalBonusThreshold {
		score += t.MentalBonus
	}
	return int(math.Floor(core.ClampF(score, 0, maxLevel)))
}

// Phase2Outcome maps the stem score through the ordered ranges.
// The first matching range wins; no match yields the table default.
func Phase2Outcome(t config.Phase2Table, seed SeedKind, water, light, mental float64) string {
	score := Phase2Score(t, seed, water, light, mental)
	for _, r := range t.Ranges {
		if r.Contains(score) {
			return r.Name
		}
	}
	return t.Default
}

// Phase3Base sums the seed base, the phase-2 value and the tendency value.
// Missing table keys count as zero.
func Phase3Base(t config.Phase3Table, seed SeedKind, phase2 string, tendency Tendency) int {
	return t.SeedBase[seed.ID()] + t.Phase2Value[phase2] + t.TendencyValue[tendency.ID()]
}

// Phase3Candidates returns the flower forms reachable from base, in table order.
func Phase3Candidates(t config.Phase3Table, base int) []string {
	var names []string
	for _, c := range t.Candidates {
		if c.MinBase <= base {
			names = append(names, c.Name)
		}
	}
	return names
}

// Phase3Outcome picks uniformly among the reachable candidates using src.
// With no candidate it returns the table default without drawing.
func Phase3Outcome(t config.Phase3Table, seed SeedKind, phase2 string, tendency Tendency, src rng.Source) string {
	names := Phase3Candidates(t, Phase3Base(t, seed, phase2, tendency))
	if len(names) == 0 {
		return t.Default
	}
	return names[src.Intn(len(names))]
}
