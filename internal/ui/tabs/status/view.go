package status

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"awdash/internal/present"
	"awdash/internal/ui/components"
	"awdash/internal/ui/styles"
)

// View renders the status tab.
func (m *Model) View() string {
	if m.state.IsInitialLoading() {
		return m.renderLoading()
	}

	var sections []string

	sections = append(sections, m.renderTitle())

	a := m.state.GetAnalysis()
	if a == nil || len(a.StatusCounts) == 0 {
		sections = append(sections, m.renderEmptyState())
	} else {
		sections = append(sections, m.renderTable())
		sections = append(sections, m.renderChart())
	}

	sections = append(sections, m.renderFooter())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(content)
}

// renderLoading renders the loading state.
func (m *Model) renderLoading() string {
	return components.RenderSpinnerCentered(m.spinner, m.width, m.height)
}

// renderTitle renders the status tab title.
func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Status Breakdown")

	subtitle := styles.HelpStyle.Render("No report loaded")
	if a := m.state.GetAnalysis(); a != nil {
		subtitle = styles.HelpStyle.Render(fmt.Sprintf("%d shipments across %d statuses",
			a.RowCount, len(a.StatusCounts)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

// renderTable renders the status distribution table.
func (m *Model) renderTable() string {
	m.updateTableData()

	cardWidth := m.width - 6
	if cardWidth < 50 {
		cardWidth = 50
	}

	return styles.CardStyle.Width(cardWidth).Render(m.table.View())
}

// renderChart renders a bar chart of the distribution, largest first.
func (m *Model) renderChart() string {
	a := m.state.GetAnalysis()
	dist := present.Distribution(a.StatusCounts)

	cardWidth := m.width - 6
	if cardWidth < 50 {
		cardWidth = 50
	}

	// Labels stay unstyled so the chart's padding math holds.
	values := make([]float64, len(dist))
	labels := make([]string, len(dist))
	for i, entry := range dist {
		values[i] = float64(entry.Count)
		labels[i] = entry.Category
	}

	var rows []string
	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("▥")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Distribution")))
	rows = append(rows, "")
	rows = append(rows, components.RenderBarChart(values, labels, max(cardWidth-8, 30)))
	rows = append(rows, "")
	rows = append(rows, "  "+m.renderStatusLegend(dist))

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderStatusLegend renders each status name in its theme color.
func (m *Model) renderStatusLegend(dist []present.DistributionEntry) string {
	parts := make([]string, 0, len(dist))
	for _, entry := range dist {
		parts = append(parts, styles.GetStatusStyle(entry.Category).Render("■ "+entry.Category))
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, joinWithSep(parts, "  ")...)
}

func joinWithSep(parts []string, sep string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p)
	}
	return out
}

// renderEmptyState renders the empty state when no report is loaded.
func (m *Model) renderEmptyState() string {
	cardWidth := m.width - 6
	if cardWidth < 40 {
		cardWidth = 40
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		"",
		styles.SubTitleStyle.Render("No Report Loaded"),
		"",
		styles.HelpStyle.Render("Load a shipment report to see the status breakdown."),
		"",
		styles.InfoTextStyle.Render("Press 'r' to reload the latest report"),
		"",
	)

	return styles.CardStyle.Width(cardWidth).Render(content)
}

// renderFooter renders the footer with keyboard shortcuts.
func (m *Model) renderFooter() string {
	shortcuts := []string{
		styles.HelpKeyStyle.Render("j/k") + " navigate",
		styles.HelpKeyStyle.Render("r") + " reload",
	}

	footer := ""
	for i, s := range shortcuts {
		if i > 0 {
			footer += styles.HelpStyle.Render(" | ")
		}
		footer += s
	}

	return lipgloss.NewStyle().
		MarginTop(1).
		Foreground(styles.TextMuted).
		Render(footer)
}
