package taxonomy

import (
	"strings"

	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/models"
)

// Level names a depth in the taxonomy.
type Level string

const (
	LevelRoot        Level = "root"
	LevelCategory    Level = "category"
	LevelSubcategory Level = "subcategory"
	LevelTitle       Level = "title"
)

// Location is where the user currently is in the tree. It is produced by the
// routing layer and may reference nodes that no longer exist after a rebuild;
// every query below degrades to empty results in that case.
type Location struct {
	Level       Level  `json:"level"`
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
	Title       string `json:"title,omitempty"`
}

// RootLocation is the default location.
func RootLocation() Location {
	return Location{Level: LevelRoot}
}

// ParsePath converts a slash-separated location path like
// "Action/Shounen/My Hero Academia" into a Location. Empty input is the root.
func ParsePath(path string) Location {
	var parts []string
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	switch len(parts) {
	case 0:
		return RootLocation()
	case 1:
		return Location{Level: LevelCategory, Category: parts[0]}
	case 2:
		return Location{Level: LevelSubcategory, Category: parts[0], Subcategory: parts[1]}
	default:
		return Location{Level: LevelTitle, Category: parts[0], Subcategory: parts[1], Title: parts[2]}
	}
}

// Path renders the location as a slash-separated path.
func (l Location) Path() string {
	switch l.Level {
	case LevelCategory:
		return l.Category
	case LevelSubcategory:
		return l.Category + "/" + l.Subcategory
	case LevelTitle:
		return l.Category + "/" + l.Subcategory + "/" + l.Title
	default:
		return ""
	}
}

// Descend returns the location one level below the receiver, entering the
// named child node.
func (l Location) Descend(name string) Location {
	switch l.Level {
	case LevelRoot:
		return Location{Level: LevelCategory, Category: name}
	case LevelCategory:
		return Location{Level: LevelSubcategory, Category: l.Category, Subcategory: name}
	case LevelSubcategory:
		return Location{Level: LevelTitle, Category: l.Category, Subcategory: l.Subcategory, Title: name}
	default:
		return l
	}
}

// Ascend returns the location one level above the receiver.
func (l Location) Ascend() Location {
	switch l.Level {
	case LevelTitle:
		return Location{Level: LevelSubcategory, Category: l.Category, Subcategory: l.Subcategory}
	case LevelSubcategory:
		return Location{Level: LevelCategory, Category: l.Category}
	default:
		return RootLocation()
	}
}

// FoldersAt returns the child nodes to display as folders at the location:
// categories at root, subcategories inside a category, titles inside a
// subcategory. Titles are leaves, so a title location has no folders.
func (r *Root) FoldersAt(loc Location) []Node {
	var nodes []Node
	switch loc.Level {
	case LevelRoot:
		for pair := r.Categories.Oldest(); pair != nil; pair = pair.Next() {
			nodes = append(nodes, pair.Value)
		}
	case LevelCategory:
		cat, ok := r.Categories.Get(loc.Category)
		if !ok {
			return nil
		}
		for pair := cat.Subcategories.Oldest(); pair != nil; pair = pair.Next() {
			nodes = append(nodes, pair.Value)
		}
	case LevelSubcategory:
		sub := r.lookupSubcategory(loc.Category, loc.Subcategory)
		if sub == nil {
			return nil
		}
		for pair := sub.Titles.Oldest(); pair != nil; pair = pair.Next() {
			nodes = append(nodes, pair.Value)
		}
	}
	return nodes
}

// TitlesAt returns the raw title set visible at the location, before any
// filtering. Same-named titles in different subcategories stay distinct.
func (r *Root) TitlesAt(loc Location) []*Title {
	var titles []*Title
	switch loc.Level {
	case LevelRoot:
		for pair := r.Categories.Oldest(); pair != nil; pair = pair.Next() {
			titles = append(titles, pair.Value.allTitles()...)
		}
	case LevelCategory:
		cat, ok := r.Categories.Get(loc.Category)
		if !ok {
			return nil
		}
		titles = cat.allTitles()
	case LevelSubcategory:
		sub := r.lookupSubcategory(loc.Category, loc.Subcategory)
		if sub == nil {
			return nil
		}
		for pair := sub.Titles.Oldest(); pair != nil; pair = pair.Next() {
			titles = append(titles, pair.Value)
		}
	case LevelTitle:
		if t := r.lookupTitle(loc); t != nil {
			titles = append(titles, t)
		}
	}
	return titles
}

// ItemsAt returns the items of the title named by the location, in build
// order. Non-title locations and stale references yield nil.
func (r *Root) ItemsAt(loc Location) []models.Item {
	if loc.Level != LevelTitle {
		return nil
	}
	t := r.lookupTitle(loc)
	if t == nil {
		return nil
	}
	return t.Items
}

// FindTitle locates the first title with the given name anywhere in the
// tree, in iteration order.
func (r *Root) FindTitle(name string) (Location, bool) {
	for cp := r.Categories.Oldest(); cp != nil; cp = cp.Next() {
		for sp := cp.Value.Subcategories.Oldest(); sp != nil; sp = sp.Next() {
			if _, ok := sp.Value.Titles.Get(name); ok {
				return Location{
					Level:       LevelTitle,
					Category:    cp.Value.Name,
					Subcategory: sp.Value.Name,
					Title:       name,
				}, true
			}
		}
	}
	return Location{}, false
}

func (r *Root) lookupSubcategory(category, subcategory string) *Subcategory {
	cat, ok := r.Categories.Get(category)
	if !ok {
		return nil
	}
	sub, ok := cat.Subcategories.Get(subcategory)
	if !ok {
		return nil
	}
	return sub
}

func (r *Root) lookupTitle(loc Location) *Title {
	sub := r.lookupSubcategory(loc.Category, loc.Subcategory)
	if sub == nil {
		return nil
	}
	t, ok := sub.Titles.Get(loc.Title)
	if !ok {
		return nil
	}
	return t
}

func (c *Category) allTitles() []*Title {
	var titles []*Title
	for pair := c.Subcategories.Oldest(); pair != nil; pair = pair.Next() {
		for tp := pair.Value.Titles.Oldest(); tp != nil; tp = tp.Next() {
			titles = append(titles, tp.Value)
		}
	}
	return titles
}
