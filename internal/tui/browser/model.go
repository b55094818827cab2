package browser

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/browse"
	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/library"
	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/models"
)

// sortCycle is the order the sort key steps through.
var sortCycle = []browse.Criterion{
	browse.SortAlphaAsc,
	browse.SortAlphaDesc,
	browse.SortDateAdded,
	browse.SortPageCount,
	browse.SortFileSize,
	browse.SortRecentRead,
}

// row is a single selectable line in the browser: a folder, an item, or a
// search result title.
type row struct {
	folder *library.FolderView
	item   *library.ItemView
	title  *library.TitleView
}

func (r row) name() string {
	switch {
	case r.folder != nil:
		return r.folder.Name
	case r.item != nil:
		return r.item.Filename
	case r.title != nil:
		return r.title.Name
	}
	return ""
}

// Model is the main model for the library browser TUI
type Model struct {
	svc   *library.Service
	state *library.State

	rows         []row
	cursor       int
	scrollOffset int
	width        int
	height       int

	keys KeyMap
	help help.Model

	criterion browse.Criterion

	searchInput   textinput.Model
	searching     bool
	searchScope   browse.Scope
	searchResults []library.TitleView
	showingSearch bool

	readCycle []models.ReadFilter
	readIdx   int

	statusMessage string
}

// New creates a new TUI model over a loaded browsing state.
func New(svc *library.Service, state *library.State) Model {
	ti := textinput.New()
	ti.Placeholder = "Search titles..."
	ti.CharLimit = 100

	m := Model{
		svc:         svc,
		state:       state,
		keys:        keys,
		help:        help.New(),
		criterion:   svc.Config.DefaultSort,
		searchInput: ti,
		readCycle: []models.ReadFilter{
			models.ReadAny,
			models.ReadUnread,
			models.ReadReading,
			models.ReadCompleted,
		},
	}
	m.refresh()
	return m
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return nil
}

// refresh recomputes the visible rows from the current state, location,
// filters and sort order.
func (m *Model) refresh() {
	m.rows = nil
	m.showingSearch = false
	m.searchResults = nil

	if items := m.state.Items(m.criterion); len(items) > 0 {
		for i := range items {
			m.rows = append(m.rows, row{item: &items[i]})
		}
	} else {
		folders := m.state.Folders(m.criterion)
		kept := keptNames(m.state, m.criterion)
		for i := range folders {
			if folders[i].IsTitle && !kept[folders[i].Name] {
				continue
			}
			m.rows = append(m.rows, row{folder: &folders[i]})
		}
	}

	if m.cursor >= len(m.rows) {
		m.cursor = 0
		m.scrollOffset = 0
	}
}

// keptNames returns the title names surviving the active filters, used to
// hide filtered-out title folders.
func keptNames(state *library.State, criterion browse.Criterion) map[string]bool {
	kept := map[string]bool{}
	for _, t := range state.Titles(criterion) {
		kept[t.Name] = true
	}
	return kept
}

// showSearch swaps the row set for search results.
func (m *Model) showSearch(results []library.TitleView) {
	m.rows = nil
	m.searchResults = results
	m.showingSearch = true
	for i := range results {
		m.rows = append(m.rows, row{title: &results[i]})
	}
	m.cursor = 0
	m.scrollOffset = 0
}

// itemsRescannedMsg is sent when a background rescan finishes
type itemsRescannedMsg struct {
	items []models.Item
	err   error
}

func rescanCmd(svc *library.Service) tea.Cmd {
	return func() tea.Msg {
		items, err := svc.Scan()
		return itemsRescannedMsg{items: items, err: err}
	}
}
