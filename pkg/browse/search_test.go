package browse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/models"
	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/taxonomy"
)

func searchTree() *taxonomy.Root {
	ch := 110.5
	items := []models.Item{
		{ID: "s1", Path: "/lib/Action/Shounen/Solo Leveling/c1.cbz", Series: "Solo Leveling"},
		{ID: "s2", Path: "/lib/Drama/Webtoon/Solo Leveling/c1.cbz", Series: "Solo Leveling"},
		{ID: "b1", Path: "/lib/Action/Seinen/Berserk/x.cbz", Series: "Berserk", Chapter: &ch},
	}
	return taxonomy.Build(items, "/lib")
}

func TestSearchDeduplicatesByName(t *testing.T) {
	tree := searchTree()

	// "Solo Leveling" exists under two subcategories but surfaces once.
	results := Search(tree, taxonomy.RootLocation(), ScopeEverywhere, "solo")
	require.Len(t, results, 1)
	assert.Equal(t, "Solo Leveling", results[0].Name)
}

func TestSearchScope(t *testing.T) {
	tree := searchTree()
	seinen := taxonomy.ParsePath("Action/Seinen")

	assert.Empty(t, Search(tree, seinen, ScopeCurrent, "solo"))
	assert.Len(t, Search(tree, seinen, ScopeEverywhere, "solo"), 1)

	// Scoped to the root location, "current" covers the whole tree.
	assert.Len(t, Search(tree, taxonomy.RootLocation(), ScopeCurrent, "solo"), 1)
}

func TestSearchMatchesItemFields(t *testing.T) {
	tree := searchTree()

	// The stringified chapter number of an item is searchable.
	results := Search(tree, taxonomy.RootLocation(), ScopeEverywhere, "110.5")
	require.Len(t, results, 1)
	assert.Equal(t, "Berserk", results[0].Name)
}

func TestSearchInsideSubcategoryMatchesNameOnly(t *testing.T) {
	tree := searchTree()
	seinen := taxonomy.ParsePath("Action/Seinen")

	// Inside a subcategory the current scope only looks at title names, so
	// an item-field query like a chapter number finds nothing there.
	assert.Empty(t, Search(tree, seinen, ScopeCurrent, "110.5"))
	assert.Len(t, Search(tree, seinen, ScopeCurrent, "berserk"), 1)

	// The same query still reaches the item fields everywhere else.
	assert.Len(t, Search(tree, seinen, ScopeEverywhere, "110.5"), 1)
	assert.Len(t, Search(tree, taxonomy.ParsePath("Action"), ScopeCurrent, "110.5"), 1)

	// A title location checks just the one title's name.
	berserk := taxonomy.ParsePath("Action/Seinen/Berserk")
	assert.Empty(t, Search(tree, berserk, ScopeCurrent, "110.5"))
	assert.Len(t, Search(tree, berserk, ScopeCurrent, "bers"), 1)
}

func TestSearchNormalizesQuery(t *testing.T) {
	tree := searchTree()

	assert.Len(t, Search(tree, taxonomy.RootLocation(), ScopeEverywhere, "  BERSERK  "), 1)
	assert.Nil(t, Search(tree, taxonomy.RootLocation(), ScopeEverywhere, "   "))
	assert.Nil(t, Search(tree, taxonomy.RootLocation(), ScopeEverywhere, ""))
}

func TestSearchNoMatches(t *testing.T) {
	tree := searchTree()
	assert.Empty(t, Search(tree, taxonomy.RootLocation(), ScopeEverywhere, "zzz"))
}
