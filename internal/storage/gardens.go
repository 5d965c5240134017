package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-bloom/internal/garden"
)

// GardenInfo describes one save slot.
type GardenInfo struct {
	Owner     string
	Seed      string
	Stage     string
	UpdatedAt time.Time
}

// SaveGarden writes the owner's save slot, replacing any previous save.
func (s *Store) SaveGarden(owner string, rec garden.Record) error {
	_, err := s.db.Exec(
		`INSERT INTO gardens (
			owner, schema_version, seed, stage, age_seconds, water, light,
			weeds, pests, light_on, environment, mental, tendency, phase2, phase3, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(owner) DO UPDATE SET
			schema_version = excluded.schema_version,
			seed = excluded.seed,
			stage = excluded.stage,
			age_seconds = excluded.age_seconds,
			water = excluded.water,
			light = excluded.light,
			weeds = excluded.weeds,
			pests = excluded.pests,
			light_on = excluded.light_on,
			environment = excluded.environment,
			mental = excluded.mental,
			tendency = excluded.tendency,
			phase2 = excluded.phase2,
			phase3 = excluded.phase3,
			updated_at = CURRENT_TIMESTAMP`,
		owner, rec.Version, rec.Seed, rec.Stage, rec.AgeSeconds, rec.Water, rec.Light,
		rec.Weeds, rec.Pests, boolToInt(rec.LightOn), rec.Environment, rec.Mental,
		rec.Tendency, rec.Phase2, rec.Phase3,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save garden: %w", err)
	}
	return nil
}

// LoadGarden returns the owner's saved record, or nil if there is none.
// Columns missing from rows written by older versions come back as zero
// values; the record's Version tells the caller to migrate them.
func (s *Store) LoadGarden(owner string) (*garden.Record, error) {
	var (
		rec         garden.Record
		lightOn     int
		environment sql.NullFloat64
		mental      sql.NullFloat64
		tendency    sql.NullString
		phase2      sql.NullString
		phase3      sql.NullString
	)
	err := s.db.QueryRow(
		`SELECT schema_version, seed, stage, age_seconds, water, light, weeds, pests,
		        light_on, environment, mental, tendency, phase2, phase3
		 FROM gardens WHERE owner = ?`,
		owner,
	).Scan(&rec.Version, &rec.Seed, &rec.Stage, &rec.AgeSeconds, &rec.Water, &rec.Light,
		&rec.Weeds, &rec.Pests, &lightOn, &environment, &mental, &tendency, &phase2, &phase3)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load garden: %w", err)
	}

	rec.LightOn = lightOn != 0
	rec.Environment = environment.Float64
	rec.Mental = mental.Float64
	rec.Tendency = tendency.String
	rec.Phase2 = phase2.String
	rec.Phase3 = phase3.String
	return &rec, nil
}

// DeleteGarden removes the owner's save slot. Deleting a missing slot is not an error.
func (s *Store) DeleteGarden(owner string) error {
	if _, err := s.db.Exec("DELETE FROM gardens WHERE owner = ?", owner); err != nil {
		return fmt.Errorf("storage: cannot delete garden: %w", err)
	}
	return nil
}

// Gardens lists every save slot, most recently updated first.
func (s *Store) Gardens() ([]GardenInfo, error) {
	rows, err := s.db.Query(
		`SELECT owner, seed, stage, updated_at FROM gardens ORDER BY updated_at DESC, owner`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query gardens: %w", err)
	}
	defer rows.Close()

	var out []GardenInfo
	for rows.Next() {
		var g GardenInfo
		var updatedAt any
		if err := rows.Scan(&g.Owner, &g.Seed, &g.Stage, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		g.UpdatedAt = parseTime(updatedAt)
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
