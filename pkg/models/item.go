package models

// Item represents a single comic archive in the library. One Item corresponds
// to one .cbz/.cbr file; its metadata comes from the scanner and any sidecar
// series file found next to it.
type Item struct {
	ID           string   `json:"id"`
	Path         string   `json:"path"`
	Title        string   `json:"title"`
	Series       string   `json:"series"`
	Category     string   `json:"category"`
	Filename     string   `json:"filename,omitempty"`
	Volume       *float64 `json:"volume,omitempty"`
	Chapter      *float64 `json:"chapter,omitempty"`
	Pages        int      `json:"pages"`
	SizeStr      string   `json:"size_str"`
	Genres       []string `json:"genres,omitempty"`
	SeriesStatus string   `json:"series_status,omitempty"`
	NSFW         bool     `json:"is_nsfw,omitempty"`
}

// PreferredTitle returns the name an item should be grouped under: the series
// name when present, then the item title, then "Unknown".
func (i Item) PreferredTitle() string {
	if i.Series != "" {
		return i.Series
	}
	if i.Title != "" {
		return i.Title
	}
	return "Unknown"
}

// HasGenre reports whether the item carries the given genre tag.
func (i Item) HasGenre(genre string) bool {
	for _, g := range i.Genres {
		if g == genre {
			return true
		}
	}
	return false
}
