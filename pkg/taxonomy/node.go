// Package taxonomy derives a fixed-depth category/subcategory/title hierarchy
// from a flat item collection and answers location-scoped queries against it.
//
// The tree is a disposable read-model: it is rebuilt wholesale from the item
// list on every reload and never patched in place.
package taxonomy

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/models"
)

// DirectBucket is the synthetic subcategory name used for items that sit
// directly inside a category folder with no subcategory of their own.
const DirectBucket = "_direct"

// Node is the common surface of every tree level the UI can list as a folder.
type Node interface {
	// NodeName returns the stored (raw) name of the node.
	NodeName() string
	// DisplayName returns the name to render, resolving synthetic buckets.
	DisplayName() string
	// ItemCount returns the number of items reachable below the node.
	ItemCount() int
	// NodeItems returns every item reachable below the node, in build order.
	NodeItems() []models.Item
}

// Root is the top of the taxonomy.
type Root struct {
	Name       string
	Categories *orderedmap.OrderedMap[string, *Category]
	Count      int
}

// Category is the first taxonomy level, taken from the top path segment.
type Category struct {
	Name          string
	Subcategories *orderedmap.OrderedMap[string, *Subcategory]
	Count         int
}

// Subcategory is the second taxonomy level. Its name is either a path segment
// or the synthetic DirectBucket.
type Subcategory struct {
	Name   string
	Titles *orderedmap.OrderedMap[string, *Title]
	Count  int
}

// Title is the leaf grouping. Items appear in build order.
type Title struct {
	Name  string
	Items []models.Item
	Count int
}

// NewRoot returns an empty tree.
func NewRoot() *Root {
	return &Root{
		Name:       "Library",
		Categories: orderedmap.New[string, *Category](),
	}
}

func (r *Root) NodeName() string    { return r.Name }
func (r *Root) DisplayName() string { return r.Name }
func (r *Root) ItemCount() int      { return r.Count }

func (c *Category) NodeName() string    { return c.Name }
func (c *Category) DisplayName() string { return c.Name }
func (c *Category) ItemCount() int      { return c.Count }

func (s *Subcategory) NodeName() string { return s.Name }

// Direct reports whether this is the synthetic uncategorized bucket.
func (s *Subcategory) Direct() bool { return s.Name == DirectBucket }

func (s *Subcategory) DisplayName() string {
	if s.Direct() {
		return "Uncategorized"
	}
	return s.Name
}

func (s *Subcategory) ItemCount() int { return s.Count }

func (t *Title) NodeName() string    { return t.Name }
func (t *Title) DisplayName() string { return t.Name }
func (t *Title) ItemCount() int      { return t.Count }

func (r *Root) NodeItems() []models.Item {
	var items []models.Item
	for pair := r.Categories.Oldest(); pair != nil; pair = pair.Next() {
		items = append(items, pair.Value.NodeItems()...)
	}
	return items
}

func (c *Category) NodeItems() []models.Item {
	var items []models.Item
	for pair := c.Subcategories.Oldest(); pair != nil; pair = pair.Next() {
		items = append(items, pair.Value.NodeItems()...)
	}
	return items
}

func (s *Subcategory) NodeItems() []models.Item {
	var items []models.Item
	for pair := s.Titles.Oldest(); pair != nil; pair = pair.Next() {
		items = append(items, pair.Value.Items...)
	}
	return items
}

func (t *Title) NodeItems() []models.Item { return t.Items }

func (r *Root) category(name string) *Category {
	if c, ok := r.Categories.Get(name); ok {
		return c
	}
	c := &Category{
		Name:          name,
		Subcategories: orderedmap.New[string, *Subcategory](),
	}
	r.Categories.Set(name, c)
	return c
}

func (c *Category) subcategory(name string) *Subcategory {
	if s, ok := c.Subcategories.Get(name); ok {
		return s
	}
	s := &Subcategory{
		Name:   name,
		Titles: orderedmap.New[string, *Title](),
	}
	c.Subcategories.Set(name, s)
	return s
}

func (s *Subcategory) title(name string) *Title {
	if t, ok := s.Titles.Get(name); ok {
		return t
	}
	t := &Title{Name: name}
	s.Titles.Set(name, t)
	return t
}
