package browse

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Criterion names a sort order for folders, titles or items.
type Criterion string

const (
	SortAlphaAsc   Criterion = "alpha-asc"
	SortAlphaDesc  Criterion = "alpha-desc"
	SortDateAdded  Criterion = "date-added"
	SortPageCount  Criterion = "page-count"
	SortFileSize   Criterion = "file-size"
	SortRecentRead Criterion = "recent-read"
)

// Accessors supplies the per-element keys a sort criterion needs. Only the
// accessors a criterion uses have to be set; a nil accessor yields the zero
// key.
type Accessors[T any] struct {
	Name      func(T) string
	DateKey   func(T) string
	Pages     func(T) int
	SizeBytes func(T) int64
	LastRead  func(T) time.Time
}

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// alphaKey normalizes a name for comparison: strip everything that is not a
// letter or digit, then lower-case.
func alphaKey(name string) string {
	return strings.ToLower(nonAlnum.ReplaceAllString(name, ""))
}

// Sort returns a new, stably sorted copy of xs. Alpha ordering is
// locale-aware and numeric-run-aware, so "Chapter 2" sorts before
// "Chapter 10". Unknown criteria fall back to alpha-asc.
func Sort[T any](xs []T, criterion Criterion, acc Accessors[T]) []T {
	out := make([]T, len(xs))
	copy(out, xs)

	name := acc.Name
	if name == nil {
		name = func(T) string { return "" }
	}

	switch criterion {
	case SortAlphaDesc:
		coll := newAlphaCollator()
		sort.SliceStable(out, func(i, j int) bool {
			return coll.CompareString(alphaKey(name(out[j])), alphaKey(name(out[i]))) < 0
		})
	case SortDateAdded:
		key := acc.DateKey
		if key == nil {
			key = func(T) string { return "" }
		}
		sort.SliceStable(out, func(i, j int) bool {
			return key(out[i]) < key(out[j])
		})
	case SortPageCount:
		pages := acc.Pages
		if pages == nil {
			pages = func(T) int { return 0 }
		}
		sort.SliceStable(out, func(i, j int) bool {
			return pages(out[i]) > pages(out[j])
		})
	case SortFileSize:
		size := acc.SizeBytes
		if size == nil {
			size = func(T) int64 { return 0 }
		}
		sort.SliceStable(out, func(i, j int) bool {
			return size(out[i]) > size(out[j])
		})
	case SortRecentRead:
		last := acc.LastRead
		if last == nil {
			last = func(T) time.Time { return time.Time{} }
		}
		sort.SliceStable(out, func(i, j int) bool {
			return last(out[i]).After(last(out[j]))
		})
	default: // SortAlphaAsc and anything unrecognized
		coll := newAlphaCollator()
		sort.SliceStable(out, func(i, j int) bool {
			return coll.CompareString(alphaKey(name(out[i])), alphaKey(name(out[j]))) < 0
		})
	}
	return out
}

// newAlphaCollator builds a collator per sort call; collators are not safe
// for concurrent use.
func newAlphaCollator() *collate.Collator {
	return collate.New(language.English, collate.Numeric)
}

var sizePattern = regexp.MustCompile(`(?i)^\s*([\d.]+)\s*(B|KB|MB|GB)\s*$`)

var sizeUnits = map[string]int64{
	"B":  1,
	"KB": 1 << 10,
	"MB": 1 << 20,
	"GB": 1 << 30,
}

// ParseSize converts a display size string like "45.2 MB" to bytes.
// Unparseable strings count as zero.
func ParseSize(s string) int64 {
	m := sizePattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return int64(value * float64(sizeUnits[strings.ToUpper(m[2])]))
}
