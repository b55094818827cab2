package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/models"
)

func locationTree() *Root {
	items := []models.Item{
		{ID: "n1", Path: "/lib/Action/Shounen/Naruto/v1.cbz", Series: "Naruto"},
		{ID: "n2", Path: "/lib/Action/Shounen/Naruto/v2.cbz", Series: "Naruto"},
		{ID: "b1", Path: "/lib/Action/Seinen/Berserk/c1.cbz", Series: "Berserk"},
		{ID: "d1", Path: "/lib/Drama/Shoujo/Naruto/x.cbz", Series: "Naruto"},
		{ID: "o1", Path: "/lib/Action/OnePiece.cbz", Series: "One Piece"},
	}
	return Build(items, "/lib")
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		path string
		want Location
	}{
		{"", RootLocation()},
		{"Action", Location{Level: LevelCategory, Category: "Action"}},
		{"Action/Shounen", Location{Level: LevelSubcategory, Category: "Action", Subcategory: "Shounen"}},
		{"Action/Shounen/Naruto", Location{Level: LevelTitle, Category: "Action", Subcategory: "Shounen", Title: "Naruto"}},
		{"/Action//Shounen/", Location{Level: LevelSubcategory, Category: "Action", Subcategory: "Shounen"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePath(tt.path), "path %q", tt.path)
	}
}

func TestLocationRoundTrip(t *testing.T) {
	loc := Location{Level: LevelTitle, Category: "Action", Subcategory: "Shounen", Title: "Naruto"}
	assert.Equal(t, loc, ParsePath(loc.Path()))
}

func TestDescendAscend(t *testing.T) {
	loc := RootLocation().Descend("Action").Descend("Shounen").Descend("Naruto")
	assert.Equal(t, LevelTitle, loc.Level)
	assert.Equal(t, "Naruto", loc.Title)

	// Titles are leaves; descending further is a no-op.
	assert.Equal(t, loc, loc.Descend("deeper"))

	loc = loc.Ascend()
	assert.Equal(t, LevelSubcategory, loc.Level)
	loc = loc.Ascend().Ascend()
	assert.Equal(t, RootLocation(), loc)
	assert.Equal(t, RootLocation(), loc.Ascend())
}

func TestFoldersAt(t *testing.T) {
	tree := locationTree()

	rootFolders := tree.FoldersAt(RootLocation())
	require.Len(t, rootFolders, 2)
	assert.Equal(t, "Action", rootFolders[0].NodeName())
	assert.Equal(t, "Drama", rootFolders[1].NodeName())

	subFolders := tree.FoldersAt(ParsePath("Action"))
	require.Len(t, subFolders, 3)
	assert.Equal(t, "Shounen", subFolders[0].NodeName())
	assert.Equal(t, "Seinen", subFolders[1].NodeName())
	assert.Equal(t, DirectBucket, subFolders[2].NodeName())
	assert.Equal(t, "Uncategorized", subFolders[2].DisplayName())

	titleFolders := tree.FoldersAt(ParsePath("Action/Shounen"))
	require.Len(t, titleFolders, 1)
	assert.Equal(t, "Naruto", titleFolders[0].NodeName())
	assert.Equal(t, 2, titleFolders[0].ItemCount())

	// Titles are leaves.
	assert.Nil(t, tree.FoldersAt(ParsePath("Action/Shounen/Naruto")))
}

func TestFoldersAtStaleLocation(t *testing.T) {
	tree := locationTree()
	assert.Nil(t, tree.FoldersAt(ParsePath("Gone")))
	assert.Nil(t, tree.FoldersAt(ParsePath("Action/Gone")))
}

func TestTitlesAt(t *testing.T) {
	tree := locationTree()

	// Root flattens everything; the two Naruto titles stay distinct.
	all := tree.TitlesAt(RootLocation())
	require.Len(t, all, 4)
	naruto := 0
	for _, title := range all {
		if title.Name == "Naruto" {
			naruto++
		}
	}
	assert.Equal(t, 2, naruto)

	assert.Len(t, tree.TitlesAt(ParsePath("Action")), 3)
	assert.Len(t, tree.TitlesAt(ParsePath("Action/Seinen")), 1)

	single := tree.TitlesAt(ParsePath("Action/Shounen/Naruto"))
	require.Len(t, single, 1)
	assert.Equal(t, 2, single[0].Count)

	assert.Nil(t, tree.TitlesAt(ParsePath("Action/Gone")))
}

func TestItemsAt(t *testing.T) {
	tree := locationTree()

	items := tree.ItemsAt(ParsePath("Action/Shounen/Naruto"))
	require.Len(t, items, 2)
	assert.Equal(t, "n1", items[0].ID)
	assert.Equal(t, "n2", items[1].ID)

	// Non-title locations have no direct items.
	assert.Nil(t, tree.ItemsAt(ParsePath("Action/Shounen")))
	assert.Nil(t, tree.ItemsAt(RootLocation()))
	assert.Nil(t, tree.ItemsAt(ParsePath("Action/Shounen/Gone")))
}

func TestFindTitle(t *testing.T) {
	tree := locationTree()

	loc, ok := tree.FindTitle("Naruto")
	require.True(t, ok)
	assert.Equal(t, "Action", loc.Category)
	assert.Equal(t, "Shounen", loc.Subcategory)

	loc, ok = tree.FindTitle("One Piece")
	require.True(t, ok)
	assert.Equal(t, DirectBucket, loc.Subcategory)

	_, ok = tree.FindTitle("Missing")
	assert.False(t, ok)
}
