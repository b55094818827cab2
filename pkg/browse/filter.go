// Package browse transforms the raw title sets resolved by the taxonomy into
// the sets a renderer actually shows: filtered, searched, ordered and
// annotated with reading progress. Everything here is a pure function over
// the in-memory tree and the progress map.
package browse

import (
	"sort"

	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/models"
	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/taxonomy"
)

// MatchesGenre reports whether any item in the title carries the genre tag or
// belongs to a category of that name. An empty genre matches everything.
func MatchesGenre(t *taxonomy.Title, genre string) bool {
	if genre == "" {
		return true
	}
	for _, item := range t.Items {
		if item.HasGenre(genre) || item.Category == genre {
			return true
		}
	}
	return false
}

// MatchesStatus reports whether any item in the title has the series status.
func MatchesStatus(t *taxonomy.Title, status string) bool {
	if status == "" {
		return true
	}
	for _, item := range t.Items {
		if item.SeriesStatus == status {
			return true
		}
	}
	return false
}

// readState derives the title's aggregate read state from its items' progress
// entries. started means any entry shows activity; allDone means every item
// has an entry and every entry is completed.
func readState(t *taxonomy.Title, progress models.ProgressMap) (started, allDone bool) {
	withProgress := 0
	allCompleted := true
	for _, item := range t.Items {
		entry, ok := progress[item.ID]
		if !ok {
			continue
		}
		withProgress++
		if entry.Started() {
			started = true
		}
		if !entry.Completed {
			allCompleted = false
		}
	}
	allDone = allCompleted && withProgress == len(t.Items)
	return started, allDone
}

// MatchesRead reports whether the title satisfies the read-state filter.
func MatchesRead(t *taxonomy.Title, read models.ReadFilter, progress models.ProgressMap) bool {
	if read == models.ReadAny {
		return true
	}
	started, allDone := readState(t, progress)
	switch read {
	case models.ReadCompleted:
		return allDone
	case models.ReadUnread:
		return !started
	case models.ReadReading:
		return started && !allDone
	}
	return false
}

// Apply keeps the titles passing all three filters. Each predicate is pure,
// so evaluation order does not matter.
func Apply(titles []*taxonomy.Title, filters models.FilterState, progress models.ProgressMap) []*taxonomy.Title {
	var kept []*taxonomy.Title
	for _, t := range titles {
		if MatchesGenre(t, filters.Genre) &&
			MatchesStatus(t, filters.Status) &&
			MatchesRead(t, filters.Read, progress) {
			kept = append(kept, t)
		}
	}
	return kept
}

// GenreOptions returns the genre values still reachable under the other two
// active filters, so the genre dropdown never offers a dead choice.
func GenreOptions(titles []*taxonomy.Title, filters models.FilterState, progress models.ProgressMap) []string {
	seen := map[string]bool{}
	for _, t := range titles {
		if !MatchesStatus(t, filters.Status) || !MatchesRead(t, filters.Read, progress) {
			continue
		}
		for _, item := range t.Items {
			for _, g := range item.Genres {
				seen[g] = true
			}
		}
	}
	return sortedKeys(seen)
}

// StatusOptions returns the series status values still reachable under the
// other two active filters.
func StatusOptions(titles []*taxonomy.Title, filters models.FilterState, progress models.ProgressMap) []string {
	seen := map[string]bool{}
	for _, t := range titles {
		if !MatchesGenre(t, filters.Genre) || !MatchesRead(t, filters.Read, progress) {
			continue
		}
		for _, item := range t.Items {
			if item.SeriesStatus != "" {
				seen[item.SeriesStatus] = true
			}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
