// Package status provides the shipment status breakdown tab.
package status

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"awdash/internal/app"
	"awdash/internal/present"
	"awdash/internal/ui/components"
	"awdash/internal/ui/styles"
)

// keyMap defines the key bindings specific to the status tab.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Reload key.Binding
}

// defaultKeyMap returns the default key bindings for the status tab.
func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload report"),
		),
	}
}

// Model represents the status tab state.
type Model struct {
	state   *app.AppState
	table   table.Model
	spinner components.LoadingSpinner
	keys    keyMap
	width   int
	height  int
}

// New creates a new status model.
func New(state *app.AppState) *Model {
	columns := []table.Column{
		{Title: "Status", Width: 20},
		{Title: "Shipments", Width: 12},
		{Title: "Share", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Subtle).
		BorderBottom(true).
		Bold(true).
		Foreground(styles.Primary)
	s.Selected = s.Selected.
		Foreground(styles.TextPrimary).
		Background(styles.BgAccent).
		Bold(true)
	t.SetStyles(s)

	return &Model{
		state:   state,
		table:   t,
		spinner: components.NewSpinner("Loading report..."),
		keys:    defaultKeyMap(),
	}
}

// Init initializes the status tab.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the status tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)

	case app.ReportLoadedMsg:
		m.updateTableData()
	}

	return m, tea.Batch(cmds...)
}

// updateTableData rebuilds the table rows from the current analysis.
func (m *Model) updateTableData() {
	a := m.state.GetAnalysis()
	if a == nil {
		m.table.SetRows(nil)
		return
	}

	dist := present.Distribution(a.StatusCounts)
	total := int64(0)
	for _, entry := range dist {
		total += int64(entry.Count)
	}

	rows := make([]table.Row, 0, len(dist))
	for _, entry := range dist {
		rows = append(rows, table.Row{
			entry.Category,
			fmt.Sprintf("%d", entry.Count),
			present.FormatPercent(int64(entry.Count), total),
		})
	}

	m.table.SetRows(rows)
}

// SetSize sets the available size for the status tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(max(height-20, 5))

	statusWidth := width - 30
	if statusWidth < 20 {
		statusWidth = 20
	}
	if statusWidth > 40 {
		statusWidth = 40
	}

	columns := []table.Column{
		{Title: "Status", Width: statusWidth},
		{Title: "Shipments", Width: 12},
		{Title: "Share", Width: 8},
	}
	m.table.SetColumns(columns)
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{
		m.keys.Up,
		m.keys.Down,
	}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Up, m.keys.Down},
		{m.keys.Reload},
	}
}
