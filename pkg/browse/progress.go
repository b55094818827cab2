package browse

import (
	"time"

	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/models"
)

// ItemStats is the derived reading progress of one item.
type ItemStats struct {
	Percent     float64
	Page        int
	IsCompleted bool
	HasProgress bool
}

// TitleStats is the progress roll-up across a group of items (a title or a
// folder).
type TitleStats struct {
	Percent        float64
	ReadPages      int
	TotalPages     int
	CompletedCount int
	HasProgress    bool
}

func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// ItemProgress derives one item's progress from its entry, if any.
func ItemProgress(item models.Item, progress models.ProgressMap) ItemStats {
	entry, ok := progress[item.ID]
	if !ok {
		return ItemStats{}
	}
	stats := ItemStats{
		Page:        entry.Page,
		IsCompleted: entry.Completed,
		HasProgress: entry.Started(),
	}
	if item.Pages > 0 {
		stats.Percent = clampPercent(float64(entry.Page) / float64(item.Pages) * 100)
	}
	return stats
}

// Aggregate rolls up progress across a group of items. ReadPages sums raw
// page positions, not percentages, so long items weigh more than short ones.
func Aggregate(items []models.Item, progress models.ProgressMap) TitleStats {
	var stats TitleStats
	for _, item := range items {
		stats.TotalPages += item.Pages
		entry, ok := progress[item.ID]
		if !ok {
			continue
		}
		stats.ReadPages += entry.Page
		if entry.Completed {
			stats.CompletedCount++
		}
		if entry.Started() {
			stats.HasProgress = true
		}
	}
	if stats.TotalPages > 0 {
		stats.Percent = clampPercent(float64(stats.ReadPages) / float64(stats.TotalPages) * 100)
	}
	return stats
}

// LastRead returns the most recent per-item read timestamp found among the
// items, or the zero time when none has an entry.
func LastRead(items []models.Item, progress models.ProgressMap) time.Time {
	var latest time.Time
	for _, item := range items {
		if entry, ok := progress[item.ID]; ok && entry.LastRead.After(latest) {
			latest = entry.LastRead
		}
	}
	return latest
}
