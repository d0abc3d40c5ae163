package history

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"awdash/internal/app"
	"awdash/internal/models"
)

func sampleEntries() []models.HistoryEntry {
	now := time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC)
	return []models.HistoryEntry{
		{
			ID:           2,
			Source:       "/reports/feb.csv",
			RowCount:     3,
			GaugePercent: 100.0,
			GaugeLabel:   "February 2024",
			LoadedAt:     now,
		},
		{
			ID:           1,
			Source:       "/reports/jan.csv",
			RowCount:     2,
			SkippedRows:  1,
			GaugePercent: 50.0,
			GaugeLabel:   "January 2024",
			LoadedAt:     now.Add(-24 * time.Hour),
		},
	}
}

func TestNew(t *testing.T) {
	m := New(app.NewAppState(), nil)
	if m == nil {
		t.Fatal("New returned nil")
	}
}

func TestModel_View_Empty(t *testing.T) {
	state := app.NewAppState()
	state.SetLoading("initial", false)

	m := New(state, nil)
	m.SetSize(80, 30)

	view := m.View()
	if !strings.Contains(view, "No past analyses recorded") {
		t.Errorf("View should show empty state, got %q", view)
	}
}

func TestModel_View_WithEntries(t *testing.T) {
	state := app.NewAppState()
	state.SetLoading("initial", false)
	state.SetHistory(sampleEntries())

	m := New(state, nil)
	m.SetSize(120, 40)

	view := m.View()
	if !strings.Contains(view, "feb.csv") {
		t.Error("View should list the newest entry")
	}
	if !strings.Contains(view, "February 2024") {
		t.Error("View should show the gauge label")
	}
	if !strings.Contains(view, "2 analyses") {
		t.Error("View should show the entry count")
	}
}

func TestModel_Update_HistoryLoaded(t *testing.T) {
	state := app.NewAppState()
	m := New(state, nil)

	m.Update(app.HistoryLoadedMsg{Entries: sampleEntries()})
	if m.lastRefresh.IsZero() {
		t.Error("lastRefresh should be set after HistoryLoadedMsg")
	}
	if m.errorMsg != "" {
		t.Errorf("errorMsg = %q, want empty", m.errorMsg)
	}
}

func TestModel_RefreshKey(t *testing.T) {
	state := app.NewAppState()
	m := New(state, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'R'}})
	if cmd == nil {
		t.Fatal("R should produce a refresh command")
	}

	msg := cmd()
	refresh, ok := msg.(app.RefreshMsg)
	if !ok {
		t.Fatalf("expected RefreshMsg, got %T", msg)
	}
	if refresh.Resource != "history" {
		t.Errorf("Resource = %q, want history", refresh.Resource)
	}
}

func TestModel_Help(t *testing.T) {
	m := New(app.NewAppState(), nil)
	if len(m.ShortHelp()) == 0 {
		t.Error("ShortHelp empty")
	}
	if len(m.FullHelp()) == 0 {
		t.Error("FullHelp empty")
	}
}
