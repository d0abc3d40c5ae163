// Package components provides reusable UI components.
package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"awdash/internal/logger"
	"awdash/internal/ui/styles"
)

type AnimationTickMsg time.Time

func animationTick() tea.Cmd {
	return tea.Tick(time.Millisecond*50, func(t time.Time) tea.Msg {
		return AnimationTickMsg(t)
	})
}

// GaugeBar renders the reception-progress gauge with label and percentage.
type GaugeBar struct {
	progress       progress.Model
	label          string
	percent        float64
	isAnimating    bool
	targetPercent  float64
	currentPercent float64
}

// NewGaugeBar creates a new gauge bar with gradient colors.
func NewGaugeBar() GaugeBar {
	return NewGaugeBarWithWidth(30)
}

// NewGaugeBarWithWidth creates a gauge bar with a specific width.
func NewGaugeBarWithWidth(width int) GaugeBar {
	p := progress.New(
		progress.WithScaledGradient("#ff6b6b", "#51cf66"),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)

	return GaugeBar{
		progress:       p,
		label:          "",
		percent:        0,
		isAnimating:    false,
		targetPercent:  0,
		currentPercent: 0,
	}
}

// Init initializes the progress bar model.
func (g GaugeBar) Init() tea.Cmd {
	return nil
}

// Update handles progress bar animation messages.
func (g GaugeBar) Update(msg tea.Msg) (GaugeBar, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg.(type) {
	case AnimationTickMsg:
		if g.isAnimating {
			if g.currentPercent < g.targetPercent {
				step := (g.targetPercent - g.currentPercent) / 10
				if step < 0.5 {
					step = 0.5
				}
				g.currentPercent += step
				if g.currentPercent > g.targetPercent {
					g.currentPercent = g.targetPercent
				}
				cmds = append(cmds, animationTick())
			} else if g.currentPercent > g.targetPercent {
				step := (g.currentPercent - g.targetPercent) / 10
				if step < 0.5 {
					step = 0.5
				}
				g.currentPercent -= step
				if g.currentPercent < g.targetPercent {
					g.currentPercent = g.targetPercent
				}
				cmds = append(cmds, animationTick())
			} else {
				g.isAnimating = false
			}
		}
	}

	var cmd tea.Cmd
	model, cmd := g.progress.Update(msg)
	g.progress = model.(progress.Model)
	cmds = append(cmds, cmd)

	return g, tea.Batch(cmds...)
}

// SetPercent sets the current percentage.
func (g *GaugeBar) SetPercent(percent float64) tea.Cmd {
	g.percent = percent
	g.targetPercent = percent

	if !g.isAnimating {
		g.isAnimating = true
		return tea.Batch(
			g.progress.SetPercent(percent/100),
			animationTick(),
		)
	}

	return g.progress.SetPercent(percent / 100)
}

// SetLabel sets the bar label.
func (g *GaugeBar) SetLabel(label string) {
	g.label = label
}

// SetWidth sets the progress bar width.
func (g *GaugeBar) SetWidth(width int) {
	g.progress.Width = width
}

// View renders the gauge bar with percentage and label.
func (g GaugeBar) View(percent float64, label string, width int) string {
	// Reserve space for label and percentage
	barWidth := width - 30
	if barWidth < 10 {
		barWidth = 10
	}
	g.progress.Width = barWidth

	bar := g.progress.ViewAs(percent / 100)

	percentStyle := styles.GetReceptionStyle(percent)
	percentStr := percentStyle.Width(6).Align(lipgloss.Right).Render(fmt.Sprintf("%.1f%%", percent))

	labelStr := styles.ProgressLabelStyle.Width(15).Render(label)

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		labelStr,
		bar,
		" ",
		percentStr,
	)
}

// ViewCompact renders a compact version without label.
func (g GaugeBar) ViewCompact(percent float64, width int) string {
	barWidth := width - 8
	if barWidth < 5 {
		barWidth = 5
	}
	g.progress.Width = barWidth

	bar := g.progress.ViewAs(percent / 100)
	percentStr := styles.GetReceptionStyle(percent).Render(fmt.Sprintf("%.1f%%", percent))

	return lipgloss.JoinHorizontal(lipgloss.Center, bar, " ", percentStr)
}

// RenderGradientBar renders just the bar part with gradient colors.
func RenderGradientBar(percent float64, width int) string {
	if width < 1 {
		return ""
	}

	filled := int(float64(width) * percent / 100)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	var barChars []string
	for i := 0; i < width; i++ {
		if i < filled {
			t := float64(i) / float64(max(1, width-1))
			color := interpolateColor("#ff6b6b", "#51cf66", t)
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			barChars = append(barChars, style.Render("█"))
		} else {
			style := lipgloss.NewStyle().Foreground(styles.Subtle)
			barChars = append(barChars, style.Render("░"))
		}
	}

	return strings.Join(barChars, "")
}

// SimpleGaugeBar renders a simple ASCII progress bar with gradient colors.
func SimpleGaugeBar(percent float64, label string, width int) string {
	labelWidth := len(label) + 1
	percentWidth := 7
	barWidth := width - labelWidth - percentWidth - 4

	if barWidth < 5 {
		barWidth = 5
	}

	bar := RenderGradientBar(percent, barWidth)

	labelStr := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Render(label)

	percentStr := styles.GetReceptionStyle(percent).
		Width(percentWidth).
		Align(lipgloss.Right).
		Render(fmt.Sprintf("%.1f%%", percent))

	return fmt.Sprintf("%s [%s] %s", labelStr, bar, percentStr)
}

// SimpleGaugeBarLoading renders a shimmering placeholder while data loads.
func SimpleGaugeBarLoading(label string, width int, frame int) string {
	const (
		indentWidth  = 4
		percentWidth = 7
	)

	barWidth := width - indentWidth - percentWidth - 4
	if barWidth < 10 {
		barWidth = 10
	}

	cycle := 120
	t := float64(frame%cycle) / float64(cycle)
	var p float64
	if t < 0.5 {
		p = t * 2
	} else {
		p = (1 - t) * 2
	}
	eased := p * p * (3 - 2*p)
	shimmerPos := int(eased * float64(barWidth))

	var barChars []string
	for i := 0; i < barWidth; i++ {
		dist := shimmerPos - i
		if dist < 0 {
			dist = -dist
		}

		var char string
		var style lipgloss.Style

		if dist < 3 {
			char = "▓"
			style = lipgloss.NewStyle().Foreground(styles.Primary)
		} else if dist < 5 {
			char = "▒"
			style = lipgloss.NewStyle().Foreground(styles.TextSecondary)
		} else {
			char = "░"
			style = lipgloss.NewStyle().Foreground(styles.BgLight)
		}

		barChars = append(barChars, style.Render(char))
	}

	bar := strings.Join(barChars, "")
	indent := "    "

	dots := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	dot := dots[(frame/2)%len(dots)]

	loadingStr := lipgloss.NewStyle().
		Width(percentWidth).
		Align(lipgloss.Right).
		Foreground(styles.Primary).
		Render(dot)

	return lipgloss.JoinHorizontal(lipgloss.Left,
		indent,
		bar,
		" ",
		loadingStr,
	)
}

func interpolateColor(fromHex, toHex string, t float64) string {
	from := hexToRGB(fromHex)
	to := hexToRGB(toHex)

	r := int(float64(from[0]) + t*(float64(to[0])-float64(from[0])))
	g := int(float64(from[1]) + t*(float64(to[1])-float64(from[1])))
	b := int(float64(from[2]) + t*(float64(to[2])-float64(from[2])))

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func hexToRGB(hex string) [3]int {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		logger.Error("failed to parse hex color", "hex", hex, "error", err)
		return [3]int{0, 0, 0}
	}
	return [3]int{r, g, b}
}
