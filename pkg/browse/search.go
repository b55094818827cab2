package browse

import (
	"strconv"
	"strings"

	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/taxonomy"
)

// Scope controls how far a search reaches.
type Scope string

const (
	// ScopeCurrent searches the titles visible at the current location.
	ScopeCurrent Scope = "current"
	// ScopeEverywhere searches the whole tree.
	ScopeEverywhere Scope = "everywhere"
)

// Search finds titles whose name, or any of whose items, contains the query.
// Matching is a case-insensitive substring test; item matches look at the
// item title, series, and stringified chapter number. Inside a subcategory or
// a single title, the current scope matches on the title name alone — the
// titles are already on screen there, so item fields are not consulted.
// Results are de-duplicated by title name: a name already collected is not
// added again even when it recurs in another subcategory.
func Search(tree *taxonomy.Root, loc taxonomy.Location, scope Scope, query string) []*taxonomy.Title {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	seen := map[string]bool{}
	var results []*taxonomy.Title
	collect := func(titles []*taxonomy.Title, match func(*taxonomy.Title, string) bool) {
		for _, t := range titles {
			if !match(t, q) || seen[t.Name] {
				continue
			}
			seen[t.Name] = true
			results = append(results, t)
		}
	}

	if scope == ScopeCurrent {
		switch loc.Level {
		case taxonomy.LevelSubcategory, taxonomy.LevelTitle:
			collect(tree.TitlesAt(loc), matchName)
			return results
		case taxonomy.LevelCategory:
			collect(tree.TitlesAt(loc), matchTitle)
			return results
		}
		// Root location falls through to the whole tree.
	}

	collect(tree.TitlesAt(taxonomy.RootLocation()), matchTitle)
	return results
}

func matchName(t *taxonomy.Title, q string) bool {
	return strings.Contains(strings.ToLower(t.Name), q)
}

func matchTitle(t *taxonomy.Title, q string) bool {
	if matchName(t, q) {
		return true
	}
	for _, item := range t.Items {
		if strings.Contains(strings.ToLower(item.Title), q) ||
			strings.Contains(strings.ToLower(item.Series), q) {
			return true
		}
		if item.Chapter != nil {
			ch := strconv.FormatFloat(*item.Chapter, 'f', -1, 64)
			if strings.Contains(ch, q) {
				return true
			}
		}
	}
	return false
}
