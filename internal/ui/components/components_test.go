package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

func TestNewSpinner(t *testing.T) {
	s := NewSpinner("Loading")
	if s.label != "Loading" {
		t.Error("Spinner label mismatch")
	}
}

func TestSpinner_Methods(t *testing.T) {
	s := NewSpinner("Init")

	s.SetLabel("Loading")
	if s.Label() != "Loading" {
		t.Errorf("Label = %s, want Loading", s.Label())
	}

	if s.View() == "" {
		t.Error("View returned empty")
	}
	if s.ViewWithLabel() == "" {
		t.Error("ViewWithLabel returned empty")
	}
	if s.Init() == nil {
		t.Error("Init should return command")
	}

	_, cmd := s.Update(spinner.TickMsg{})
	if cmd == nil {
		t.Error("Update should return command for tick")
	}

	if s.Tick() == nil {
		t.Error("Tick should return command")
	}
	if s.Spinner().Spinner.Frames == nil {
		t.Error("Spinner accessor failed")
	}
}

func TestRenderSpinnerCentered(t *testing.T) {
	s := NewSpinner("Loading...")
	if RenderSpinnerCentered(s, 20, 5) == "" {
		t.Error("RenderSpinnerCentered returned empty")
	}
}

func TestGaugeBar_View(t *testing.T) {
	g := NewGaugeBar()

	view := g.View(66.7, "February 2024", 80)
	if view == "" {
		t.Error("View returned empty")
	}
	if !strings.Contains(view, "66.7%") {
		t.Errorf("view missing percentage: %q", view)
	}
	if !strings.Contains(view, "February 2024") {
		t.Errorf("view missing label: %q", view)
	}
}

func TestGaugeBar_ViewCompact(t *testing.T) {
	g := NewGaugeBarWithWidth(20)
	view := g.ViewCompact(100, 40)
	if !strings.Contains(view, "100.0%") {
		t.Errorf("compact view missing percentage: %q", view)
	}
}

func TestGaugeBar_SetPercent(t *testing.T) {
	g := NewGaugeBar()

	cmd := g.SetPercent(75)
	if cmd == nil {
		t.Error("SetPercent should return an animation command")
	}
	if g.targetPercent != 75 {
		t.Errorf("targetPercent = %v, want 75", g.targetPercent)
	}

	g.SetLabel("January 2024")
	if g.label != "January 2024" {
		t.Error("SetLabel failed")
	}
}

func TestSimpleGaugeBar(t *testing.T) {
	s := SimpleGaugeBar(50, "2024-01", 60)
	if s == "" {
		t.Error("SimpleGaugeBar returned empty")
	}
	if !strings.Contains(s, "50.0%") {
		t.Errorf("bar missing percentage: %q", s)
	}
}

func TestSimpleGaugeBarLoading(t *testing.T) {
	if SimpleGaugeBarLoading("loading", 60, 10) == "" {
		t.Error("SimpleGaugeBarLoading returned empty")
	}
}

func TestRenderGradientBar_Bounds(t *testing.T) {
	if RenderGradientBar(50, 0) != "" {
		t.Error("zero width should render empty")
	}
	if RenderGradientBar(150, 10) == "" {
		t.Error("over-100 percent should clamp, not fail")
	}
	if RenderGradientBar(-5, 10) == "" {
		t.Error("negative percent should clamp, not fail")
	}
}

func TestRenderLineChart(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	if RenderLineChart(data, 20, 5, "Gauge trend") == "" {
		t.Error("RenderLineChart returned empty")
	}
	if RenderLineChart(nil, 20, 5, "") == "" {
		t.Error("empty data should render a placeholder")
	}
}

func TestRenderReceptionChart(t *testing.T) {
	total := []float64{2, 1}
	received := []float64{1, 1}
	if RenderReceptionChart(total, received, 20, 5, "Monthly reception") == "" {
		t.Error("RenderReceptionChart returned empty")
	}
	if RenderReceptionChart(nil, nil, 20, 5, "") == "" {
		t.Error("empty data should render a placeholder")
	}
}

func TestRenderBarChart(t *testing.T) {
	values := []float64{10, 20}
	labels := []string{"RECEIVED", "WORKING"}
	s := RenderBarChart(values, labels, 40)
	if s == "" {
		t.Error("RenderBarChart returned empty")
	}
	if !strings.Contains(s, "RECEIVED") {
		t.Errorf("bar chart missing label: %q", s)
	}
}

func TestRenderSparkline(t *testing.T) {
	data := []float64{1, 2, 3}
	if RenderSparkline(data, 10) == "" {
		t.Error("RenderSparkline returned empty")
	}
}

func TestRenderLegend(t *testing.T) {
	items := []LegendItem{
		{Label: "Total", Color: ChartSentColor},
		{Label: "Received", Color: lipgloss.Color("#51cf66")},
	}
	s := RenderLegend(items)
	if !strings.Contains(s, "Total") || !strings.Contains(s, "Received") {
		t.Errorf("legend missing labels: %q", s)
	}
}
