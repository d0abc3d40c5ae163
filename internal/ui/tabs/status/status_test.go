package status

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"awdash/internal/app"
	"awdash/internal/models"
)

func sampleAnalysis() *models.Analysis {
	feb := models.Month{Year: 2024, Month: time.February}
	return &models.Analysis{
		Source:       "/tmp/report.csv",
		RowCount:     6,
		ComputedAt:   time.Now(),
		CurrentMonth: models.MonthReception{Month: feb, Total: 1, Received: 1},
		StatusCounts: map[string]int{
			"RECEIVED": 3,
			"WORKING":  2,
			"CLOSED":   1,
		},
	}
}

func TestNew(t *testing.T) {
	m := New(app.NewAppState())
	if m == nil {
		t.Fatal("New returned nil")
	}
}

func TestModel_View_Empty(t *testing.T) {
	state := app.NewAppState()
	state.SetLoading("initial", false)

	m := New(state)
	m.SetSize(80, 30)

	view := m.View()
	if !strings.Contains(view, "No Report Loaded") {
		t.Errorf("View should show empty state, got %q", view)
	}
}

func TestModel_View_WithAnalysis(t *testing.T) {
	state := app.NewAppState()
	state.SetLoading("initial", false)
	state.SetAnalysis(&models.Report{Source: "/tmp/report.csv"}, sampleAnalysis())

	m := New(state)
	m.SetSize(100, 40)
	m.updateTableData()

	view := m.View()
	for _, status := range []string{"RECEIVED", "WORKING", "CLOSED"} {
		if !strings.Contains(view, status) {
			t.Errorf("View should contain status %q", status)
		}
	}
	if !strings.Contains(view, "6 shipments across 3 statuses") {
		t.Error("View should show the summary line")
	}
}

func TestModel_TableRows_Descending(t *testing.T) {
	state := app.NewAppState()
	state.SetAnalysis(&models.Report{Source: "/tmp/report.csv"}, sampleAnalysis())

	m := New(state)
	m.updateTableData()

	rows := m.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[0][0] != "RECEIVED" || rows[0][1] != "3" {
		t.Errorf("first row = %v, want RECEIVED/3", rows[0])
	}
	if rows[0][2] != "50.0%" {
		t.Errorf("share = %q, want 50.0%%", rows[0][2])
	}
	if rows[2][0] != "CLOSED" {
		t.Errorf("last row = %v, want CLOSED", rows[2])
	}
}

func TestModel_Update_ReportLoaded(t *testing.T) {
	state := app.NewAppState()
	m := New(state)

	state.SetAnalysis(&models.Report{Source: "/tmp/report.csv"}, sampleAnalysis())
	m.Update(app.ReportLoadedMsg{})

	if len(m.table.Rows()) != 3 {
		t.Errorf("rows = %d after ReportLoadedMsg, want 3", len(m.table.Rows()))
	}
}

func TestModel_Update_Keys(t *testing.T) {
	state := app.NewAppState()
	state.SetAnalysis(&models.Report{Source: "/tmp/report.csv"}, sampleAnalysis())

	m := New(state)
	m.updateTableData()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if updated == nil {
		t.Error("Update returned nil model")
	}
}

func TestModel_Help(t *testing.T) {
	m := New(app.NewAppState())
	if len(m.ShortHelp()) == 0 {
		t.Error("ShortHelp empty")
	}
	if len(m.FullHelp()) == 0 {
		t.Error("FullHelp empty")
	}
}
