// Package storage provides SQLite-based persistence for gardens and finished blooms.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// LocalOwner is the save slot used by the local terminal session.
const LocalOwner = "local"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the schema. The gardens table starts with the first
// save layout; columns added later are appended by ensureColumns so that
// databases written by older versions keep working.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS gardens (
			owner TEXT PRIMARY KEY,
			schema_version INTEGER NOT NULL DEFAULT 1,
			seed TEXT NOT NULL,
			stage TEXT NOT NULL,
			age_seconds REAL NOT NULL DEFAULT 0,
			water REAL NOT NULL DEFAULT 0,
			light REAL NOT NULL DEFAULT 0,
			weeds INTEGER NOT NULL DEFAULT 0,
			pests INTEGER NOT NULL DEFAULT 0,
			light_on INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS blooms (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			owner TEXT NOT NULL,
			seed TEXT NOT NULL,
			tendency TEXT NOT NULL DEFAULT '',
			phase2 TEXT NOT NULL DEFAULT '',
			phase3 TEXT NOT NULL DEFAULT '',
			age_seconds REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_blooms_owner ON blooms(owner);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	return s.ensureColumns("gardens", gardenColumnsV2)
}

// gardenColumnsV2 are the columns introduced with save schema version 2.
var gardenColumnsV2 = []struct{ name, decl string }{
	{"environment", "REAL"},
	{"mental", "REAL"},
	{"tendency", "TEXT"},
	{"phase2", "TEXT"},
	{"phase3", "TEXT"},
}

func (s *Store) ensureColumns(table string, columns []struct{ name, decl string }) error {
	rows, err := s.db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return fmt.Errorf("cannot inspect %s: %w", table, err)
	}

	existing := make(map[string]bool)
	for rows.Next() {
		var (
			cid       int
			name      string
			ctype     string
			notNull   int
			dfltValue any
			pk        int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dfltValue, &pk); err != nil {
			rows.Close()
			return fmt.Errorf("cannot scan %s columns: %w", table, err)
		}
		existing[name] = true
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	for _, col := range columns {
		if existing[col.name] {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, col.name, col.decl)
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("cannot add column %s.%s: %w", table, col.name, err)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// parseTime handles both time.Time and the string form SQLite may return.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
