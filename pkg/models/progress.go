package models

import "time"

// ProgressEntry records a reader's position in one item. Entries are keyed by
// item id and owned by the progress store; the browsing core only reads them.
type ProgressEntry struct {
	Page      int       `json:"page"`
	Completed bool      `json:"completed"`
	LastRead  time.Time `json:"last_read"`
}

// Started reports whether the entry represents any reading activity at all.
func (p ProgressEntry) Started() bool {
	return p.Page > 0 || p.Completed
}

// ProgressMap maps item ids to their progress entries.
type ProgressMap map[string]ProgressEntry
