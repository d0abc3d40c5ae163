package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"awdash/internal/models"
	"awdash/internal/present"
	"awdash/internal/ui/components"
	"awdash/internal/ui/styles"
)

// View renders the dashboard tab.
func (m *Model) View() string {
	if m.state.IsInitialLoading() {
		return m.renderLoading()
	}

	var sections []string

	sections = append(sections, m.renderTitle())

	if m.promptingPath {
		sections = append(sections, m.renderPathPrompt())
	}

	a := m.state.GetAnalysis()
	if a == nil {
		sections = append(sections, m.renderNoReport())
		sections = append(sections, m.renderFileList())
	} else {
		sections = append(sections, m.renderGaugeCard(a))
		sections = append(sections, m.renderReceptionCard(a))
		sections = append(sections, m.renderChartCard(a))
		sections = append(sections, m.renderMetricsCard(a))
		sections = append(sections, m.renderFileList())
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

// renderLoading renders the loading state.
func (m *Model) renderLoading() string {
	return components.RenderSpinnerCentered(m.spinner, m.width, m.height)
}

// renderTitle renders the dashboard title.
func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("AWD Shipment Dashboard")
	subtitle := styles.HelpStyle.Render("FBA shipment reception monitor")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) cardWidth() int {
	return max(m.width-6, 40)
}

// renderPathPrompt renders the open-by-path input.
func (m *Model) renderPathPrompt() string {
	cardWidth := m.cardWidth()
	if cardWidth > 70 {
		cardWidth = 70
	}

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Open Report"))
	rows = append(rows, "")
	rows = append(rows, styles.FocusedStyle.Render("> Path:"))
	rows = append(rows, styles.FocusedBorderStyle.Width(cardWidth-6).Render(m.pathInput.View()))
	rows = append(rows, "")
	rows = append(rows, styles.HelpStyle.Render("Enter: load | Esc: cancel"))

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderNoReport() string {
	var rows []string

	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("◈")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Current Month")))
	rows = append(rows, "")
	emptyIcon := lipgloss.NewStyle().Foreground(styles.Subtle).Render("○")
	rows = append(rows, fmt.Sprintf("  %s %s", emptyIcon, styles.HelpStyle.Render("No report loaded")))
	rows = append(rows, "")
	rows = append(rows, styles.InfoTextStyle.Render("  ╰─▶ Drop a shipment report into the reports directory"))

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderGaugeCard renders the headline gauge for the current month.
func (m *Model) renderGaugeCard(a *models.Analysis) string {
	cardWidth := m.cardWidth()
	contentWidth := max(cardWidth-8, 30)

	gauge := present.Gauge(a.CurrentMonth)
	percent := m.displayPercent(gaugeAnimKey, gauge.Value)

	var rows []string

	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("◈")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Current Month Reception")))
	rows = append(rows, "")
	rows = append(rows, "  "+components.SimpleGaugeBar(percent, gauge.Label, contentWidth))
	rows = append(rows, "")

	detail := fmt.Sprintf("  %s of %s shipments received",
		present.FormatCount(int64(a.CurrentMonth.Received)),
		present.FormatCount(int64(a.CurrentMonth.Total)),
	)
	rows = append(rows, styles.HelpStyle.Render(detail))

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderReceptionCard renders one animated bar per month, oldest first.
func (m *Model) renderReceptionCard(a *models.Analysis) string {
	cardWidth := m.cardWidth()

	var rows []string

	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("▤")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Monthly Reception")))

	if len(a.Reception) == 0 {
		rows = append(rows, "")
		rows = append(rows, styles.HelpStyle.Render("  No dated shipments in this report"))
		return styles.CardStyle.Width(cardWidth).Render(
			lipgloss.JoinVertical(lipgloss.Left, rows...),
		)
	}

	rows = append(rows, "")
	for _, mr := range a.Reception {
		rows = append(rows, m.renderMonthRow(mr, cardWidth-4))
	}
	rows = append(rows, "")

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderMonthRow(mr models.MonthReception, width int) string {
	const (
		labelWidth   = 10
		percentWidth = 7
		countWidth   = 12
	)

	barWidth := max(width-labelWidth-percentWidth-countWidth-8, 10)

	percent := m.displayPercent("month:"+mr.Month.String(), mr.Percent())

	labelStr := lipgloss.NewStyle().
		Foreground(styles.TextPrimary).
		Width(labelWidth).
		Render(mr.Month.String())

	bar := components.RenderGradientBar(percent, barWidth)

	percentStr := styles.GetReceptionStyle(mr.Percent()).
		Width(percentWidth).
		Align(lipgloss.Right).
		Render(fmt.Sprintf("%.1f%%", percent))

	countStr := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Width(countWidth).
		Align(lipgloss.Right).
		Render(fmt.Sprintf("%d/%d", mr.Received, mr.Total))

	return lipgloss.JoinHorizontal(lipgloss.Left,
		"  ",
		labelStr,
		" ",
		bar,
		" ",
		percentStr,
		" ",
		countStr,
	)
}

// renderChartCard plots shipments created vs received per month.
func (m *Model) renderChartCard(a *models.Analysis) string {
	if len(a.Reception) < 2 {
		return ""
	}

	cardWidth := m.cardWidth()
	chartWidth := max(cardWidth-14, 20)

	total := make([]float64, len(a.Reception))
	received := make([]float64, len(a.Reception))
	for i, mr := range a.Reception {
		total[i] = float64(mr.Total)
		received[i] = float64(mr.Received)
	}

	first := a.Reception[0].Month
	last := a.Reception[len(a.Reception)-1].Month
	caption := fmt.Sprintf("%s – %s", first.Label(), last.Label())

	var rows []string

	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("◢")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Shipments per Month")))
	rows = append(rows, "")
	rows = append(rows, components.RenderReceptionChart(total, received, chartWidth, 8, caption))
	rows = append(rows, "")
	rows = append(rows, "  "+components.RenderLegend([]components.LegendItem{
		{Label: "created", Color: components.ChartSentColor},
		{Label: "received", Color: components.ChartReceivedColor},
	}))

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderMetricsCard renders unit-level stats for the trailing months.
func (m *Model) renderMetricsCard(a *models.Analysis) string {
	if len(a.Metrics) == 0 {
		return ""
	}

	cardWidth := m.cardWidth()

	var rows []string

	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("Σ")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Unit Metrics")))
	rows = append(rows, "")

	header := lipgloss.JoinHorizontal(lipgloss.Left,
		"  ",
		metricCell("Month", 10, lipgloss.Left),
		metricCell("Sent", 10, lipgloss.Right),
		metricCell("Received", 10, lipgloss.Right),
		metricCell("Open", 8, lipgloss.Right),
		metricCell("Pending", 10, lipgloss.Right),
	)
	rows = append(rows, styles.HelpStyle.Render(header))

	dividerWidth := max(cardWidth-8, 20)
	rows = append(rows, lipgloss.NewStyle().Foreground(styles.Subtle).Render(
		"  ├"+strings.Repeat("─", dividerWidth)+"┤",
	))

	for _, mm := range a.Metrics {
		row := lipgloss.JoinHorizontal(lipgloss.Left,
			"  ",
			metricCell(mm.Month.String(), 10, lipgloss.Left),
			metricCell(present.FormatCount(mm.TotalUnitsSent), 10, lipgloss.Right),
			metricCell(present.FormatCount(mm.TotalUnitsReceived), 10, lipgloss.Right),
			metricCell(fmt.Sprintf("%d", mm.OpenShipments), 8, lipgloss.Right),
			metricCell(present.FormatCount(mm.UnitsNotReceivedOpen), 10, lipgloss.Right),
		)
		rows = append(rows, lipgloss.NewStyle().Foreground(styles.TextPrimary).Render(row))
	}
	rows = append(rows, "")

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func metricCell(text string, width int, align lipgloss.Position) string {
	return lipgloss.NewStyle().Width(width).Align(align).Render(text)
}

// renderFileList renders the report files known to the watcher, newest first.
func (m *Model) renderFileList() string {
	cardWidth := m.cardWidth()
	files := m.state.GetReportFiles()

	var rows []string

	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("▣")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Report Files")))

	if len(files) == 0 {
		rows = append(rows, "")
		emptyIcon := lipgloss.NewStyle().Foreground(styles.Subtle).Render("○")
		rows = append(rows, fmt.Sprintf("  %s %s", emptyIcon, styles.HelpStyle.Render("No report files found")))

		return styles.CardStyle.Width(cardWidth).Render(
			lipgloss.JoinVertical(lipgloss.Left, rows...),
		)
	}

	rows = append(rows, "")

	loadedSource := ""
	if rep := m.state.GetReport(); rep != nil {
		loadedSource = rep.Source
	}

	for i, f := range files {
		rows = append(rows, m.renderFileRow(f.Name, f.Path == loadedSource, i == m.selectedIndex, f.Size, f.ModTime.Format("2006-01-02 15:04")))
	}
	rows = append(rows, "")
	rows = append(rows, styles.HelpStyle.Render("  enter: open selected report"))

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderFileRow(name string, loaded, selected bool, size int64, modTime string) string {
	loadedIndicator := lipgloss.NewStyle().Foreground(styles.Subtle).Render("○ ")
	if loaded {
		loadedIndicator = styles.SuccessTextStyle.Render("● ")
	}

	selectionPrefix := "  "
	if selected {
		selectionPrefix = styles.FocusedStyle.Render("▸ ")
	}

	if len(name) > 40 {
		name = name[:37] + "..."
	}

	nameStyle := lipgloss.NewStyle().Foreground(styles.TextPrimary)
	if selected {
		nameStyle = nameStyle.Bold(true)
	}

	meta := styles.HelpStyle.Render(fmt.Sprintf("%s  %s", humanize.IBytes(uint64(size)), modTime))

	return fmt.Sprintf("%s%s%s  %s",
		selectionPrefix,
		loadedIndicator,
		nameStyle.Render(name),
		meta,
	)
}
