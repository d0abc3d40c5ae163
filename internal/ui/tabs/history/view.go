package history

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"awdash/internal/models"
	"awdash/internal/ui/components"
	"awdash/internal/ui/styles"
)

// View renders the history tab.
func (m *Model) View() string {
	if m.errorMsg != "" {
		return m.renderError()
	}

	entries := m.state.GetHistory()
	if len(entries) == 0 {
		return m.renderEmpty()
	}

	var sections []string

	sections = append(sections,
		m.renderHeader(entries),
		m.renderTrendChart(entries),
		m.renderEntryList(entries),
	)

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderError() string {
	content := fmt.Sprintf("%s %s",
		styles.ErrorTextStyle.Render("Error:"),
		m.errorMsg,
	)
	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(content)
}

func (m *Model) renderEmpty() string {
	hint := "Entries will appear as reports are analyzed."
	if !m.historyEnabled() {
		hint = "History persistence is disabled (HISTORY_DISABLED=1)."
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("Analysis History"),
		"",
		styles.HelpStyle.Render("No past analyses recorded."),
		styles.HelpStyle.Render(hint),
	)
	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(content)
}

func (m *Model) renderHeader(entries []models.HistoryEntry) string {
	title := styles.TitleStyle.Render("Analysis History")

	oldest := entries[len(entries)-1].LoadedAt
	newest := entries[0].LoadedAt
	subtitle := styles.HelpStyle.Render(fmt.Sprintf("%d analyses, %s → %s",
		len(entries),
		oldest.Format("Jan 2, 2006"),
		newest.Format("Jan 2, 2006"),
	))

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

// renderTrendChart plots the gauge percentage over past analyses, oldest
// on the left.
func (m *Model) renderTrendChart(entries []models.HistoryEntry) string {
	cardWidth := max(m.width-6, 40)

	var rows []string

	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("◢")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Reception Trend")), "")

	if len(entries) < 2 {
		rows = append(rows, styles.HelpStyle.Render("  Not enough analyses for a trend yet"))
	} else {
		// Entries arrive newest first; the chart wants chronological order.
		data := make([]float64, len(entries))
		for i, e := range entries {
			data[len(entries)-1-i] = e.GaugePercent
		}

		chartWidth := max(cardWidth-12, 30)
		chart := components.RenderLineChart(data, chartWidth, 8, "Current-month reception (%)")

		for _, line := range strings.Split(chart, "\n") {
			rows = append(rows, "  "+line)
		}

		rows = append(rows, "")
		rows = append(rows, "  "+styles.HelpStyle.Render("trend ")+components.RenderSparkline(data, min(len(data), 40)))
	}

	rows = append(rows, "")

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderEntryList renders one line per recorded analysis, newest first.
func (m *Model) renderEntryList(entries []models.HistoryEntry) string {
	cardWidth := max(m.width-6, 40)

	var rows []string

	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("▤")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Past Analyses")), "")

	header := fmt.Sprintf("  %-17s %-28s %6s %7s %8s  %s",
		"Loaded", "Report", "Rows", "Skipped", "Gauge", "Month")
	rows = append(rows, styles.HelpStyle.Render(header))

	dividerWidth := max(cardWidth-8, 20)
	rows = append(rows, lipgloss.NewStyle().Foreground(styles.Subtle).Render(
		"  ├"+strings.Repeat("─", dividerWidth)+"┤",
	))

	for _, e := range entries {
		rows = append(rows, m.renderEntryRow(e))
	}
	rows = append(rows, "")

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderEntryRow(e models.HistoryEntry) string {
	name := filepath.Base(e.Source)
	if len(name) > 28 {
		name = name[:25] + "..."
	}

	gaugeStr := styles.GetReceptionStyle(e.GaugePercent).
		Width(8).
		Align(lipgloss.Right).
		Render(fmt.Sprintf("%.1f%%", e.GaugePercent))

	line := fmt.Sprintf("  %-17s %-28s %6d %7d %s  %s",
		e.LoadedAt.Format("2006-01-02 15:04"),
		name,
		e.RowCount,
		e.SkippedRows,
		gaugeStr,
		e.GaugeLabel,
	)

	return lipgloss.NewStyle().Foreground(styles.TextPrimary).Render(line)
}
