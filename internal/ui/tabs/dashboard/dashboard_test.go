package dashboard

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"awdash/internal/app"
	"awdash/internal/models"
	"awdash/internal/services/reports"
)

func sampleAnalysis() *models.Analysis {
	jan := models.Month{Year: 2024, Month: time.January}
	feb := models.Month{Year: 2024, Month: time.February}

	return &models.Analysis{
		Source:     "/tmp/report.csv",
		RowCount:   3,
		ComputedAt: time.Now(),
		Reception: []models.MonthReception{
			{Month: jan, Total: 2, Received: 1},
			{Month: feb, Total: 1, Received: 1},
		},
		CurrentMonth: models.MonthReception{Month: feb, Total: 1, Received: 1},
		StatusCounts: map[string]int{"RECEIVED": 2, "WORKING": 1},
		Metrics: []models.MonthMetrics{
			{Month: feb, TotalUnitsSent: 120, TotalUnitsReceived: 120},
		},
	}
}

func sampleReport() *models.Report {
	return &models.Report{Source: "/tmp/report.csv"}
}

func TestNew(t *testing.T) {
	state := app.NewAppState()
	m := New(state)
	if m == nil {
		t.Fatal("New returned nil")
	}
}

func TestModel_Init(t *testing.T) {
	state := app.NewAppState()
	m := New(state)
	if m.Init() == nil {
		t.Error("Init returned nil")
	}
}

func TestModel_Update(t *testing.T) {
	state := app.NewAppState()
	m := New(state)

	updated, _ := m.Update(nil)
	if updated == nil {
		t.Error("Update returned nil model")
	}
}

func TestModel_View_NoReport(t *testing.T) {
	state := app.NewAppState()
	state.SetLoading("initial", false)
	m := New(state)
	m.SetSize(80, 24)

	view := m.View()
	if !strings.Contains(view, "No report loaded") {
		t.Errorf("View should show empty state, got %q", view)
	}
}

func TestModel_View_WithAnalysis(t *testing.T) {
	state := app.NewAppState()
	state.SetLoading("initial", false)
	state.SetAnalysis(sampleReport(), sampleAnalysis())
	state.SetReportFiles([]reports.File{
		{Path: "/tmp/report.csv", Name: "report.csv", Size: 1024, ModTime: time.Now()},
	})

	m := New(state)
	m.SetSize(100, 40)
	m.syncAnimationTargets(time.Now())

	view := m.View()
	if !strings.Contains(view, "February 2024") {
		t.Error("View should contain the current month label")
	}
	if !strings.Contains(view, "2024-01") {
		t.Error("View should contain the monthly reception rows")
	}
	if !strings.Contains(view, "report.csv") {
		t.Error("View should list the report file")
	}
}

func TestModel_KeySelection(t *testing.T) {
	state := app.NewAppState()
	state.SetReportFiles([]reports.File{
		{Path: "/tmp/a.csv", Name: "a.csv"},
		{Path: "/tmp/b.csv", Name: "b.csv"},
	})

	m := New(state)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.selectedIndex != 1 {
		t.Errorf("selectedIndex = %d, want 1", m.selectedIndex)
	}

	// Wraps back to the first file.
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.selectedIndex != 0 {
		t.Errorf("selectedIndex = %d, want 0 after wrap", m.selectedIndex)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.selectedIndex != 1 {
		t.Errorf("selectedIndex = %d, want 1 after prev", m.selectedIndex)
	}
}

func TestModel_EnterLoadsSelectedFile(t *testing.T) {
	state := app.NewAppState()
	state.SetReportFiles([]reports.File{
		{Path: "/tmp/a.csv", Name: "a.csv"},
		{Path: "/tmp/b.csv", Name: "b.csv"},
	})

	m := New(state)
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should produce a command")
	}

	msg := cmd()
	load, ok := msg.(app.LoadReportMsg)
	if !ok {
		t.Fatalf("expected LoadReportMsg, got %T", msg)
	}
	if load.Path != "/tmp/b.csv" {
		t.Errorf("Path = %q, want /tmp/b.csv", load.Path)
	}
}

func TestModel_PathPrompt(t *testing.T) {
	state := app.NewAppState()
	m := New(state)
	m.SetSize(80, 30)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}})
	if !m.promptingPath {
		t.Fatal("o should open the path prompt")
	}

	m.pathInput.SetValue("/tmp/manual.csv")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should produce a load command")
	}

	msg := cmd()
	load, ok := msg.(app.LoadReportMsg)
	if !ok {
		t.Fatalf("expected LoadReportMsg, got %T", msg)
	}
	if load.Path != "/tmp/manual.csv" {
		t.Errorf("Path = %q, want /tmp/manual.csv", load.Path)
	}
	if m.promptingPath {
		t.Error("prompt should close after enter")
	}
}

func TestModel_PathPromptEscape(t *testing.T) {
	state := app.NewAppState()
	m := New(state)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}})
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.promptingPath {
		t.Error("esc should close the path prompt")
	}
}

func TestModel_AnimationConverges(t *testing.T) {
	state := app.NewAppState()
	state.SetAnalysis(sampleReport(), sampleAnalysis())

	m := New(state)
	now := time.Now()
	m.syncAnimationTargets(now)
	m.stepAnimations(now.Add(2 * time.Second))

	anim, ok := m.animations[gaugeAnimKey]
	if !ok {
		t.Fatal("gauge animation not tracked")
	}
	if anim.CurrentPercent != 100.0 {
		t.Errorf("CurrentPercent = %f, want 100.0", anim.CurrentPercent)
	}
}

func TestModel_SetSize(t *testing.T) {
	state := app.NewAppState()
	m := New(state)
	m.SetSize(100, 50)
	if m.width != 100 || m.height != 50 {
		t.Error("SetSize did not apply")
	}
}

func TestModel_Help(t *testing.T) {
	state := app.NewAppState()
	m := New(state)
	if len(m.ShortHelp()) == 0 {
		t.Error("ShortHelp empty")
	}
	if len(m.FullHelp()) == 0 {
		t.Error("FullHelp empty")
	}
}
