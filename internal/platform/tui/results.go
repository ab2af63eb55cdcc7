package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

const maxResults = 100 // Max results to load into the table

// ResultsView shows the rounds finished during this process, best first.
type ResultsView struct {
	table   table.Model
	help    help.Model
	keys    KeyMap
	results []storage.Result
	err     error
	width   int
	height  int
}

// NewResultsView creates an empty results view sized for the terminal.
func NewResultsView(keys KeyMap, width, height int) ResultsView {
	h := help.New()
	h.ShowAll = false

	v := ResultsView{
		help:   h,
		keys:   keys,
		width:  width,
		height: height,
	}
	v.table = v.createTable()
	return v
}

// createTable creates a new table with columns fitted to the width.
func (v *ResultsView) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Cause", Width: 8},
		{Title: "Steps", Width: 8},
		{Title: "Time", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(v.height-8, 3)), // Title, help, borders
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Load refreshes the rows from the store. A nil store shows an empty table.
func (v *ResultsView) Load(store *storage.Store) {
	v.results, v.err = nil, nil
	if store != nil {
		v.results, v.err = store.TopResults(maxResults)
	}
	v.updateTableRows()
}

// Err returns the error from the last Load, if any.
func (v ResultsView) Err() error {
	return v.err
}

// updateTableRows updates the table with the loaded results.
func (v *ResultsView) updateTableRows() {
	rows := make([]table.Row, len(v.results))
	for i, r := range v.results {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			r.Cause,
			fmt.Sprintf("%d", r.Ticks),
			r.CreatedAt.Format("15:04:05"),
		}
	}
	v.table.SetRows(rows)
	v.table.GotoTop()
}

// SetSize adapts the view to a new terminal size.
func (v *ResultsView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.table = v.createTable()
	v.updateTableRows()
	v.help.Width = width
}

// Update passes scrolling keys to the table.
func (v ResultsView) Update(msg tea.Msg) (ResultsView, tea.Cmd) {
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// View renders the results screen.
func (v ResultsView) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("RESULTS - this session", v.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(boxStyle.Render(v.renderTableContent()), v.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(v.help.View(v.keys)))

	return b.String()
}

// renderTableContent renders the table, the load error or an empty message.
func (v ResultsView) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if v.err != nil {
		return emptyStyle.Render("Results unavailable:\n" + v.err.Error())
	}
	if len(v.results) == 0 {
		return emptyStyle.Render("No rounds finished yet.")
	}
	return v.table.View()
}

// centerText centers each line of text within the given width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		w := lipgloss.Width(line)
		if w < width {
			lines[i] = strings.Repeat(" ", (width-w)/2) + line
		}
	}
	return strings.Join(lines, "\n")
}
