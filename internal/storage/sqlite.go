// Package storage provides SQLite-based persistence for named level slots.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/level"
)

// ErrLevelNotFound is returned when a slot has no saved level.
var ErrLevelNotFound = errors.New("storage: level not found")

// Store manages the SQLite database connection for level persistence.
type Store struct {
	db *sql.DB
}

// LevelInfo summarizes a saved slot.
type LevelInfo struct {
	Name      string
	Spawn     core.Vec2i
	Blocks    int
	UpdatedAt time.Time
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		PRAGMA foreign_keys = ON;

		CREATE TABLE IF NOT EXISTS levels (
			name TEXT PRIMARY KEY,
			spawn_x INTEGER NOT NULL,
			spawn_y INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS level_blocks (
			level_name TEXT NOT NULL REFERENCES levels(name) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			x INTEGER NOT NULL,
			y INTEGER NOT NULL,
			w INTEGER NOT NULL,
			h INTEGER NOT NULL,
			PRIMARY KEY (level_name, seq)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveLevel replaces the level stored under name.
func (s *Store) SaveLevel(name string, l level.Level) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // Best-effort rollback after commit

	if _, err := tx.Exec("DELETE FROM level_blocks WHERE level_name = ?", name); err != nil {
		return fmt.Errorf("storage: cannot clear blocks: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO levels (name, spawn_x, spawn_y, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET
		   spawn_x = excluded.spawn_x,
		   spawn_y = excluded.spawn_y,
		   updated_at = excluded.updated_at`,
		name, l.PlayerInitialPos.X, l.PlayerInitialPos.Y,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save level: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO level_blocks (level_name, seq, x, y, w, h) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("storage: cannot prepare block insert: %w", err)
	}
	defer stmt.Close()

	for i, b := range l.Blocks {
		if _, err := stmt.Exec(name, i, b.Pos.X, b.Pos.Y, b.Size.X, b.Size.Y); err != nil {
			return fmt.Errorf("storage: cannot save block %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit level: %w", err)
	}
	return nil
}

// LoadLevel retrieves the level stored under name.
// Returns ErrLevelNotFound if the slot is empty.
func (s *Store) LoadLevel(name string) (level.Level, error) {
	var l level.Level
	err := s.db.QueryRow(
		"SELECT spawn_x, spawn_y FROM levels WHERE name = ?",
		name,
	).Scan(&l.PlayerInitialPos.X, &l.PlayerInitialPos.Y)
	if errors.Is(err, sql.ErrNoRows) {
		return level.Level{}, ErrLevelNotFound
	}
	if err != nil {
		return level.Level{}, fmt.Errorf("storage: cannot query level: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT x, y, w, h
		 FROM level_blocks
		 WHERE level_name = ?
		 ORDER BY seq`,
		name,
	)
	if err != nil {
		return level.Level{}, fmt.Errorf("storage: cannot query blocks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var b core.Recti
		if err := rows.Scan(&b.Pos.X, &b.Pos.Y, &b.Size.X, &b.Size.Y); err != nil {
			return level.Level{}, fmt.Errorf("storage: cannot scan block: %w", err)
		}
		l.Blocks = append(l.Blocks, b)
	}

	if err := rows.Err(); err != nil {
		return level.Level{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return l, nil
}

// ListLevels returns every saved slot, most recently updated first.
func (s *Store) ListLevels() ([]LevelInfo, error) {
	rows, err := s.db.Query(
		`SELECT l.name, l.spawn_x, l.spawn_y, COUNT(b.seq), l.updated_at
		 FROM levels l
		 LEFT JOIN level_blocks b ON b.level_name = l.name
		 GROUP BY l.name
		 ORDER BY l.updated_at DESC, l.name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list levels: %w", err)
	}
	defer rows.Close()

	var infos []LevelInfo
	for rows.Next() {
		var info LevelInfo
		var updatedAt any
		if err := rows.Scan(&info.Name, &info.Spawn.X, &info.Spawn.Y, &info.Blocks, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.UpdatedAt = parseTime(updatedAt)
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return infos, nil
}

// DeleteLevel removes a slot and its blocks.
// Returns ErrLevelNotFound if the slot does not exist.
func (s *Store) DeleteLevel(name string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // Best-effort rollback after commit

	if _, err := tx.Exec("DELETE FROM level_blocks WHERE level_name = ?", name); err != nil {
		return fmt.Errorf("storage: cannot delete blocks: %w", err)
	}

	result, err := tx.Exec("DELETE FROM levels WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete level: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if n == 0 {
		return ErrLevelNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes returned by the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
