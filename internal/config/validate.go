package config

import (
	"errors"
	"fmt"
)

// ErrInvalidBranchTable is wrapped by every branch table validation error.
var ErrInvalidBranchTable = errors.New("invalid branch table")

// ErrInvalidGrowth is wrapped by every growth section validation error.
var ErrInvalidGrowth = errors.New("invalid growth config")

// Validate checks that both branch tables can produce an outcome for every seed.
func (b BranchTables) Validate() error {
	if err := b.Phase2.Validate(); err != nil {
		return err
	}
	return b.Phase3.Validate()
}

// Validate checks the phase-2 table.
func (t Phase2Table) Validate() error {
	if t.Default == "" {
		return fmt.Errorf("%w: phase2 default is empty", ErrInvalidBranchTable)
	}
	if len(t.Ranges) == 0 {
		return fmt.Errorf("%w: phase2 has no ranges", ErrInvalidBranchTable)
	}
	for i, r := range t.Ranges {
		if r.Name == "" {
			return fmt.Errorf("%w: phase2 range %d has no name", ErrInvalidBranchTable, i)
		}
		if r.Min > r.Max {
			return fmt.Errorf("%w: phase2 range %q has min %d > max %d", ErrInvalidBranchTable, r.Name, r.Min, r.Max)
		}
	}
	for _, id := range SeedIDs {
		if _, ok := t.SeedBias[id]; !ok {
			return fmt.Errorf("%w: phase2 seed_bias missing %q", ErrInvalidBranchTable, id)
		}
	}
	return nil
}

// Validate checks the phase-3 table.
func (t Phase3Table) Validate() error {
	if t.Default == "" {
		return fmt.Errorf("%w: phase3 default is empty", ErrInvalidBranchTable)
	}
	for i, c := range t.Candidates {
		if c.Name == "" {
			return fmt.Errorf("%w: phase3 candidate %d has no name", ErrInvalidBranchTable, i)
		}
	}
	for _, id := range SeedIDs {
		if _, ok := t.SeedBase[id]; !ok {
			return fmt.Errorf("%w: phase3 seed_base missing %q", ErrInvalidBranchTable, id)
		}
	}
	return nil
}

// Validate checks that stage thresholds are positive and ascending.
func (g GrowthConfig) Validate() error {
	steps := []float64{g.SproutLight, g.StemLight, g.BudLight, g.FlowerLight}
	prev := 0.0
	for i, v := range steps {
		if v <= prev {
			return fmt.Errorf("%w: light threshold %d (%g) must exceed %g", ErrInvalidGrowth, i+1, v, prev)
		}
		prev = v
	}
	if g.FlowerAgeSeconds <= 0 {
		return fmt.Errorf("%w: flower_age_seconds must be positive", ErrInvalidGrowth)
	}
	if g.LightRate < 0 || g.WaterDecay < 0 || g.EnvironmentDecay < 0 {
		return fmt.Errorf("%w: rates must not be negative", ErrInvalidGrowth)
	}
	return nil
}
