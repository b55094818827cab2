package browser

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/browse"
	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/models"
	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/taxonomy"
)

// Update handles TUI messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case itemsRescannedMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("Rescan failed: %v", msg.err)
			return m, nil
		}
		m.state.Reload(msg.items)
		m.state.Location = taxonomy.RootLocation()
		m.cursor = 0
		m.scrollOffset = 0
		m.refresh()
		m.statusMessage = fmt.Sprintf("Rescanned: %d items", len(msg.items))
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearchInput(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.refresh()
		return m, nil
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		query := m.searchInput.Value()
		if query == "" {
			m.refresh()
			return m, nil
		}
		results := m.state.Search(m.searchScope, query, m.criterion)
		m.showSearch(results)
		m.statusMessage = fmt.Sprintf("%d results for %q", len(results), query)
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.clampScroll()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		m.clampScroll()
		return m, nil

	case key.Matches(msg, m.keys.GoToTop):
		m.cursor = 0
		m.clampScroll()
		return m, nil

	case key.Matches(msg, m.keys.GoToBottom):
		if len(m.rows) > 0 {
			m.cursor = len(m.rows) - 1
		}
		m.clampScroll()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		return m.enterSelected()

	case key.Matches(msg, m.keys.Back):
		if m.showingSearch {
			m.refresh()
			return m, nil
		}
		if m.state.Location.Level != taxonomy.LevelRoot {
			m.state.Back()
			m.cursor = 0
			m.scrollOffset = 0
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchScope = browse.ScopeCurrent
		m.searchInput.SetValue("")
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.SearchAll):
		m.searching = true
		m.searchScope = browse.ScopeEverywhere
		m.searchInput.SetValue("")
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.Sort):
		m.criterion = nextCriterion(m.criterion)
		m.refresh()
		m.statusMessage = "Sort: " + string(m.criterion)
		return m, nil

	case key.Matches(msg, m.keys.CycleGenre):
		m.state.Filters.Genre = nextOption(m.state.GenreOptions(), m.state.Filters.Genre)
		m.refresh()
		m.statusMessage = filterMessage("Genre", m.state.Filters.Genre)
		return m, nil

	case key.Matches(msg, m.keys.CycleStatus):
		m.state.Filters.Status = nextOption(m.state.StatusOptions(), m.state.Filters.Status)
		m.refresh()
		m.statusMessage = filterMessage("Status", m.state.Filters.Status)
		return m, nil

	case key.Matches(msg, m.keys.CycleRead):
		m.readIdx = (m.readIdx + 1) % len(m.readCycle)
		m.state.Filters.Read = m.readCycle[m.readIdx]
		m.refresh()
		m.statusMessage = filterMessage("Read", string(m.state.Filters.Read))
		return m, nil

	case key.Matches(msg, m.keys.ClearFilter):
		m.state.Filters = models.FilterState{}
		m.readIdx = 0
		m.refresh()
		m.statusMessage = "Filters cleared"
		return m, nil

	case key.Matches(msg, m.keys.Rescan):
		m.statusMessage = "Rescanning..."
		return m, rescanCmd(m.svc)
	}
	return m, nil
}

func (m Model) enterSelected() (tea.Model, tea.Cmd) {
	if m.cursor >= len(m.rows) {
		return m, nil
	}
	selected := m.rows[m.cursor]

	switch {
	case selected.item != nil:
		// Items are leaves; an external reader opens them.
		m.statusMessage = selected.item.Path
		return m, nil
	case selected.title != nil:
		// Jumping from a search result loses the subcategory context when
		// the same name exists in several places; the first match wins.
		loc, ok := m.state.Tree.FindTitle(selected.title.Name)
		if !ok {
			m.statusMessage = "Title no longer present"
			return m, nil
		}
		m.state.Location = loc
	case selected.folder != nil:
		m.state.Enter(selected.folder.Name)
	}

	m.cursor = 0
	m.scrollOffset = 0
	m.refresh()
	return m, nil
}

func (m *Model) clampScroll() {
	visible := m.visibleRows()
	if visible <= 0 {
		return
	}
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

func nextCriterion(current browse.Criterion) browse.Criterion {
	for i, c := range sortCycle {
		if c == current {
			return sortCycle[(i+1)%len(sortCycle)]
		}
	}
	return sortCycle[0]
}

// nextOption steps through "" -> options... -> "".
func nextOption(options []string, current string) string {
	if len(options) == 0 {
		return ""
	}
	if current == "" {
		return options[0]
	}
	for i, o := range options {
		if o == current {
			if i == len(options)-1 {
				return ""
			}
			return options[i+1]
		}
	}
	return ""
}

func filterMessage(name, value string) string {
	if value == "" {
		return name + " filter off"
	}
	return name + ": " + value
}

