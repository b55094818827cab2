package library

import (
	"time"

	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/browse"
	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/models"
	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/taxonomy"
)

// State is the application browsing state: the current tree, where the user
// is in it, the active filters, and the loaded progress map. Queries compose
// location resolution, filtering, sorting and progress annotation into the
// descriptor sequences a renderer consumes.
type State struct {
	Tree     *taxonomy.Root
	Location taxonomy.Location
	Filters  models.FilterState
	Progress models.ProgressMap

	libraryRoot string
}

// NewState builds a fresh tree from the item collection and wraps it with a
// root location and no filters.
func NewState(items []models.Item, libraryRoot string, progress models.ProgressMap) *State {
	if progress == nil {
		progress = make(models.ProgressMap)
	}
	return &State{
		Tree:        taxonomy.Build(items, libraryRoot),
		Location:    taxonomy.RootLocation(),
		Filters:     models.FilterState{},
		Progress:    progress,
		libraryRoot: libraryRoot,
	}
}

// Reload rebuilds the tree from a fresh item collection. The old tree stays
// queryable until the build returns; the swap is the last step, so no query
// ever observes a partial tree.
func (st *State) Reload(items []models.Item) {
	tree := taxonomy.Build(items, st.libraryRoot)
	st.Tree = tree
}

// Enter descends into the named child of the current location.
func (st *State) Enter(name string) {
	st.Location = st.Location.Descend(name)
}

// Back ascends one level.
func (st *State) Back() {
	st.Location = st.Location.Ascend()
}

// FolderView describes one folder entry for rendering.
type FolderView struct {
	Name        string
	DisplayName string
	Count       int
	IsTitle     bool
	Stats       browse.TitleStats
}

// TitleView describes one title entry for rendering.
type TitleView struct {
	Name  string
	Count int
	Items []models.Item
	Stats browse.TitleStats
}

// ItemView describes one item entry for rendering.
type ItemView struct {
	models.Item
	SizeBytes int64
	Stats     browse.ItemStats
}

// Folders returns the folders at the current location, ordered by the
// criterion and annotated with aggregate progress.
func (st *State) Folders(criterion browse.Criterion) []FolderView {
	nodes := st.Tree.FoldersAt(st.Location)
	nodes = browse.Sort(nodes, criterion, browse.Accessors[taxonomy.Node]{
		Name:    func(n taxonomy.Node) string { return n.DisplayName() },
		DateKey: func(n taxonomy.Node) string { return n.NodeName() },
		Pages: func(n taxonomy.Node) int {
			return browse.Aggregate(n.NodeItems(), st.Progress).TotalPages
		},
		SizeBytes: func(n taxonomy.Node) int64 { return itemsSize(n.NodeItems()) },
		LastRead:  func(n taxonomy.Node) time.Time { return browse.LastRead(n.NodeItems(), st.Progress) },
	})

	views := make([]FolderView, 0, len(nodes))
	for _, n := range nodes {
		_, isTitle := n.(*taxonomy.Title)
		views = append(views, FolderView{
			Name:        n.NodeName(),
			DisplayName: n.DisplayName(),
			Count:       n.ItemCount(),
			IsTitle:     isTitle,
			Stats:       browse.Aggregate(n.NodeItems(), st.Progress),
		})
	}
	return views
}

// Titles returns the filtered, ordered, annotated title set at the current
// location.
func (st *State) Titles(criterion browse.Criterion) []TitleView {
	titles := st.Tree.TitlesAt(st.Location)
	titles = browse.Apply(titles, st.Filters, st.Progress)
	return st.titleViews(titles, criterion)
}

// Items returns the ordered, annotated items of the current title location.
func (st *State) Items(criterion browse.Criterion) []ItemView {
	items := st.Tree.ItemsAt(st.Location)
	items = browse.Sort(items, criterion, browse.Accessors[models.Item]{
		Name:      func(i models.Item) string { return i.Filename },
		DateKey:   func(i models.Item) string { return i.ID },
		Pages:     func(i models.Item) int { return i.Pages },
		SizeBytes: func(i models.Item) int64 { return browse.ParseSize(i.SizeStr) },
		LastRead: func(i models.Item) time.Time {
			return browse.LastRead([]models.Item{i}, st.Progress)
		},
	})

	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, ItemView{
			Item:      item,
			SizeBytes: browse.ParseSize(item.SizeStr),
			Stats:     browse.ItemProgress(item, st.Progress),
		})
	}
	return views
}

// Search runs a scoped search from the current location and returns ordered,
// annotated results. Search results bypass the active filters.
func (st *State) Search(scope browse.Scope, query string, criterion browse.Criterion) []TitleView {
	titles := browse.Search(st.Tree, st.Location, scope, query)
	return st.titleViews(titles, criterion)
}

// GenreOptions lists the genre choices available at the current location
// given the other active filters.
func (st *State) GenreOptions() []string {
	return browse.GenreOptions(st.Tree.TitlesAt(st.Location), st.Filters, st.Progress)
}

// StatusOptions lists the status choices available at the current location
// given the other active filters.
func (st *State) StatusOptions() []string {
	return browse.StatusOptions(st.Tree.TitlesAt(st.Location), st.Filters, st.Progress)
}

func (st *State) titleViews(titles []*taxonomy.Title, criterion browse.Criterion) []TitleView {
	titles = browse.Sort(titles, criterion, browse.Accessors[*taxonomy.Title]{
		Name:    func(t *taxonomy.Title) string { return t.Name },
		DateKey: func(t *taxonomy.Title) string { return t.Name },
		Pages: func(t *taxonomy.Title) int {
			return browse.Aggregate(t.Items, st.Progress).TotalPages
		},
		SizeBytes: func(t *taxonomy.Title) int64 { return itemsSize(t.Items) },
		LastRead:  func(t *taxonomy.Title) time.Time { return browse.LastRead(t.Items, st.Progress) },
	})

	views := make([]TitleView, 0, len(titles))
	for _, t := range titles {
		views = append(views, TitleView{
			Name:  t.Name,
			Count: t.Count,
			Items: t.Items,
			Stats: browse.Aggregate(t.Items, st.Progress),
		})
	}
	return views
}

func itemsSize(items []models.Item) int64 {
	var total int64
	for _, item := range items {
		total += browse.ParseSize(item.SizeStr)
	}
	return total
}
