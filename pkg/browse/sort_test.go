package browse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type sortElem struct {
	name  string
	date  string
	pages int
	size  int64
	read  time.Time
}

var sortAccessors = Accessors[sortElem]{
	Name:      func(e sortElem) string { return e.name },
	DateKey:   func(e sortElem) string { return e.date },
	Pages:     func(e sortElem) int { return e.pages },
	SizeBytes: func(e sortElem) int64 { return e.size },
	LastRead:  func(e sortElem) time.Time { return e.read },
}

func names(xs []sortElem) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = x.name
	}
	return out
}

func TestSortAlphaIsNumericAware(t *testing.T) {
	xs := []sortElem{
		{name: "Chapter 10"},
		{name: "Chapter 2"},
		{name: "Chapter 1"},
	}

	asc := Sort(xs, SortAlphaAsc, sortAccessors)
	assert.Equal(t, []string{"Chapter 1", "Chapter 2", "Chapter 10"}, names(asc))

	desc := Sort(xs, SortAlphaDesc, sortAccessors)
	assert.Equal(t, []string{"Chapter 10", "Chapter 2", "Chapter 1"}, names(desc))
}

func TestSortAlphaIgnoresPunctuation(t *testing.T) {
	xs := []sortElem{
		{name: "Berserk"},
		{name: "!!!Akira"},
	}
	sorted := Sort(xs, SortAlphaAsc, sortAccessors)
	assert.Equal(t, []string{"!!!Akira", "Berserk"}, names(sorted))
}

func TestSortCriteria(t *testing.T) {
	now := time.Now()
	xs := []sortElem{
		{name: "b", date: "2", pages: 10, size: 300, read: now.Add(-time.Hour)},
		{name: "a", date: "3", pages: 30, size: 100, read: now},
		{name: "c", date: "1", pages: 20, size: 200, read: time.Time{}},
	}

	assert.Equal(t, []string{"c", "b", "a"}, names(Sort(xs, SortDateAdded, sortAccessors)))
	assert.Equal(t, []string{"a", "c", "b"}, names(Sort(xs, SortPageCount, sortAccessors)))
	assert.Equal(t, []string{"b", "c", "a"}, names(Sort(xs, SortFileSize, sortAccessors)))
	assert.Equal(t, []string{"a", "b", "c"}, names(Sort(xs, SortRecentRead, sortAccessors)))
}

func TestSortUnknownCriterionFallsBackToAlpha(t *testing.T) {
	xs := []sortElem{{name: "b"}, {name: "a"}}
	sorted := Sort(xs, Criterion("bogus"), sortAccessors)
	assert.Equal(t, []string{"a", "b"}, names(sorted))
}

func TestSortIsStableAndNonDestructive(t *testing.T) {
	xs := []sortElem{
		{name: "same", date: "1"},
		{name: "same", date: "2"},
		{name: "aaa", date: "3"},
	}
	sorted := Sort(xs, SortAlphaAsc, sortAccessors)

	// Ties keep their input order; the input slice is untouched.
	assert.Equal(t, []string{"aaa", "same", "same"}, names(sorted))
	assert.Equal(t, "1", sorted[1].date)
	assert.Equal(t, "2", sorted[2].date)
	assert.Equal(t, "same", xs[0].name)
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"512 B", 512},
		{"2 KB", 2048},
		{"2 kb", 2048},
		{"45.2 MB", 47395635},
		{"1.5 GB", 1610612736},
		{"  1.5 GB  ", 1610612736},
		{"10", 0},
		{"lots", 0},
		{"", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseSize(tt.in), "input %q", tt.in)
	}
}
