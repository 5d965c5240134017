package storage

import (
	"fmt"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/vovakirdan/tui-bloom/internal/garden"
)

// BloomEntry is one finished flower. The csv tags define the export columns.
type BloomEntry struct {
	ID         int64     `csv:"id"`
	Owner      string    `csv:"owner"`
	Seed       string    `csv:"seed"`
	Tendency   string    `csv:"tendency"`
	Phase2     string    `csv:"phase2"`
	Phase3     string    `csv:"phase3"`
	AgeSeconds float64   `csv:"age_seconds"`
	CreatedAt  time.Time `csv:"created_at"`
}

// BloomStats summarizes finished flowers.
type BloomStats struct {
	Count      int
	MeanAge    float64 // Seconds of game time from seed to flower
	StdDevAge  float64 // Sample standard deviation; 0 with fewer than two blooms
	ByOutcome  map[string]int
	TopOutcome string
}

// RecordBloom stores a finished flower for owner.
// Returns the ID of the inserted record.
func (s *Store) RecordBloom(owner string, st garden.State) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO blooms (owner, seed, tendency, phase2, phase3, age_seconds)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		owner, st.Seed.ID(), st.Tendency.ID(), st.Phase2, st.Phase3, st.AgeSeconds,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record bloom: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// Blooms returns finished flowers, newest first. An empty owner means all
// owners; limit <= 0 means no limit.
func (s *Store) Blooms(owner string, limit int) ([]BloomEntry, error) {
	query := `SELECT id, owner, seed, tendency, phase2, phase3, age_seconds, created_at FROM blooms`
	var args []any
	if owner != "" {
		query += ` WHERE owner = ?`
		args = append(args, owner)
	}
	query += ` ORDER BY id DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query blooms: %w", err)
	}
	defer rows.Close()

	var entries []BloomEntry
	for rows.Next() {
		var e BloomEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Owner, &e.Seed, &e.Tendency, &e.Phase2, &e.Phase3, &e.AgeSeconds, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// BloomStats aggregates the owner's blooms (all owners when owner is empty).
func (s *Store) BloomStats(owner string) (*BloomStats, error) {
	entries, err := s.Blooms(owner, 0)
	if err != nil {
		return nil, err
	}
	return summarize(entries), nil
}

func summarize(entries []BloomEntry) *BloomStats {
	stats := &BloomStats{Count: len(entries), ByOutcome: make(map[string]int)}
	if len(entries) == 0 {
		return stats
	}

	ages := make([]float64, len(entries))
	for i, e := range entries {
		ages[i] = e.AgeSeconds
		stats.ByOutcome[e.Phase3]++
	}

	if len(ages) > 1 {
		stats.MeanAge, stats.StdDevAge = stat.MeanStdDev(ages, nil)
	} else {
		stats.MeanAge = stat.Mean(ages, nil)
	}

	outcomes := make([]string, 0, len(stats.ByOutcome))
	for name := range stats.ByOutcome {
		outcomes = append(outcomes, name)
	}
	sort.Strings(outcomes)
	for _, name := range outcomes {
		if stats.TopOutcome == "" || stats.ByOutcome[name] > stats.ByOutcome[stats.TopOutcome] {
			stats.TopOutcome = name
		}
	}
	return stats
}

// ClearBlooms deletes the owner's bloom history (everything when owner is empty).
func (s *Store) ClearBlooms(owner string) error {
	var err error
	if owner == "" {
		_, err = s.db.Exec("DELETE FROM blooms")
	} else {
		_, err = s.db.Exec("DELETE FROM blooms WHERE owner = ?", owner)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear blooms: %w", err)
	}
	return nil
}
