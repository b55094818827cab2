package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/library"
	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/taxonomy"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("221"))
)

// chromeLines is the number of non-row lines in the layout: header, filter
// line, blank, status and help.
const chromeLines = 6

func (m Model) visibleRows() int {
	if m.height == 0 {
		return 20
	}
	v := m.height - chromeLines
	if v < 1 {
		return 1
	}
	return v
}

// View renders the TUI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Library » "+locationLabel(m.state.Location)) + "\n")
	b.WriteString(dimStyle.Render(m.filterLine()) + "\n\n")

	if m.searching {
		b.WriteString("Search: " + m.searchInput.View() + "\n")
	}

	if len(m.rows) == 0 {
		b.WriteString(dimStyle.Render("  Nothing here.") + "\n")
	} else {
		visible := m.visibleRows()
		end := m.scrollOffset + visible
		if end > len(m.rows) {
			end = len(m.rows)
		}
		for i := m.scrollOffset; i < end; i++ {
			b.WriteString(m.renderRow(i) + "\n")
		}
	}

	if m.statusMessage != "" {
		b.WriteString(statusStyle.Render(m.statusMessage) + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderRow(i int) string {
	r := m.rows[i]

	prefix := "  "
	if i == m.cursor {
		prefix = cursorStyle.Render("> ")
	}

	var line string
	switch {
	case r.folder != nil:
		line = renderFolder(*r.folder)
	case r.item != nil:
		line = renderItem(*r.item)
	case r.title != nil:
		line = renderTitle(*r.title)
	}

	if i == m.cursor {
		return prefix + cursorStyle.Render(line)
	}
	return prefix + line
}

func renderFolder(f library.FolderView) string {
	marker := "/"
	if f.IsTitle {
		marker = ""
	}
	line := fmt.Sprintf("%s%s %s", f.DisplayName, marker, dimStyle.Render(fmt.Sprintf("(%d)", f.Count)))
	if f.Stats.HasProgress {
		line += " " + progressStyle.Render(fmt.Sprintf("%.0f%%", f.Stats.Percent))
	}
	return line
}

func renderTitle(t library.TitleView) string {
	line := fmt.Sprintf("%s %s", t.Name, dimStyle.Render(fmt.Sprintf("(%d)", t.Count)))
	if t.Stats.HasProgress {
		line += " " + progressStyle.Render(fmt.Sprintf("%.0f%%", t.Stats.Percent))
	}
	return line
}

func renderItem(i library.ItemView) string {
	line := i.Filename
	if i.Chapter != nil {
		line += dimStyle.Render(fmt.Sprintf("  c%g", *i.Chapter))
	}
	line += dimStyle.Render("  " + i.SizeStr)
	if i.Stats.HasProgress {
		line += " " + progressStyle.Render(fmt.Sprintf("%.0f%%", i.Stats.Percent))
	}
	return line
}

func (m Model) filterLine() string {
	parts := []string{"sort: " + string(m.criterion)}
	if m.state.Filters.Genre != "" {
		parts = append(parts, "genre: "+m.state.Filters.Genre)
	}
	if m.state.Filters.Status != "" {
		parts = append(parts, "status: "+m.state.Filters.Status)
	}
	if m.state.Filters.Read != "" {
		parts = append(parts, "read: "+string(m.state.Filters.Read))
	}
	if m.showingSearch {
		parts = append(parts, fmt.Sprintf("search results: %d", len(m.searchResults)))
	}
	return strings.Join(parts, "  ·  ")
}

func locationLabel(loc taxonomy.Location) string {
	if loc.Level == taxonomy.LevelRoot {
		return "all categories"
	}
	path := loc.Path()
	if loc.Subcategory == taxonomy.DirectBucket {
		path = strings.Replace(path, taxonomy.DirectBucket, "Uncategorized", 1)
	}
	return path
}
