// Package progress persists per-item reading progress in a sqlite database.
// The browsing core only ever sees the loaded map; all mutation goes through
// the store.
package progress

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/models"
)

// Store manages the reading progress database.
type Store struct {
	db *sql.DB
}

// NewStore opens (creating if needed) the progress database at dbPath.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	store := &Store{db: db}
	if err := store.init(); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *Store) init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS reading_progress (
		comic_id TEXT PRIMARY KEY,
		current_page INTEGER NOT NULL DEFAULT 0,
		completed BOOLEAN NOT NULL DEFAULT 0,
		last_read TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_reading_progress_last_read ON reading_progress(last_read);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Load returns every progress entry keyed by item id.
func (s *Store) Load() (models.ProgressMap, error) {
	rows, err := s.db.Query(`
		SELECT comic_id, current_page, completed, last_read
		FROM reading_progress
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	progress := make(models.ProgressMap)
	for rows.Next() {
		var id string
		var entry models.ProgressEntry
		var lastRead sql.NullTime
		if err := rows.Scan(&id, &entry.Page, &entry.Completed, &lastRead); err != nil {
			return nil, err
		}
		if lastRead.Valid {
			entry.LastRead = lastRead.Time
		}
		progress[id] = entry
	}
	return progress, rows.Err()
}

// Update upserts the progress entry for an item, stamping it with the current
// time.
func (s *Store) Update(itemID string, page int, completed bool) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.Exec(`
		INSERT INTO reading_progress (comic_id, current_page, completed, last_read)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(comic_id) DO UPDATE SET
			current_page = excluded.current_page,
			completed = excluded.completed,
			last_read = excluded.last_read
	`, itemID, page, completed, time.Now().UTC())
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Remove deletes the progress entry for one item.
func (s *Store) Remove(itemID string) error {
	_, err := s.db.Exec("DELETE FROM reading_progress WHERE comic_id = ?", itemID)
	return err
}

// Clear deletes all progress entries.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM reading_progress")
	return err
}

// Stats summarizes reading history across the whole store.
type Stats struct {
	Started        int
	Completed      int
	PagesRead      int
	CompletionRate float64
}

// ReadStats computes the reading statistics roll-up.
func (s *Store) ReadStats() (Stats, error) {
	var stats Stats
	row := s.db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN completed THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(current_page), 0)
		FROM reading_progress
	`)
	if err := row.Scan(&stats.Started, &stats.Completed, &stats.PagesRead); err != nil {
		return Stats{}, err
	}
	if stats.Started > 0 {
		stats.CompletionRate = float64(stats.Completed) / float64(stats.Started) * 100
	}
	return stats, nil
}

// Close closes the store.
func (s *Store) Close() error {
	return s.db.Close()
}
