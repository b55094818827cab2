package taxonomy

import "github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/models"

// Build constructs a fresh taxonomy tree from the full item collection. It
// never fails: items whose paths classify to zero segments are dropped, every
// other item is filed by its segment count.
//
// Items three or more levels deep are grouped under the item's preferred
// title, not the third folder name. Chapter folders inside a series directory
// are not reliable series boundaries, so metadata wins once the category and
// subcategory are known.
func Build(items []models.Item, libraryRoot string) *Root {
	root := NewRoot()
	for _, item := range items {
		segments := Classify(item, libraryRoot)
		if len(segments) == 0 {
			continue
		}

		var cat, sub, title string
		switch {
		case len(segments) >= 3:
			cat, sub = segments[0], segments[1]
			title = item.PreferredTitle()
		case len(segments) == 2:
			cat = segments[0]
			sub = item.PreferredTitle()
			title = sub
		default:
			cat = segments[0]
			sub = DirectBucket
			title = item.PreferredTitle()
		}

		c := root.category(cat)
		s := c.subcategory(sub)
		t := s.title(title)

		t.Items = append(t.Items, item)
		t.Count++
		s.Count++
		c.Count++
		root.Count++
	}
	return root
}
