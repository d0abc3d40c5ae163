package info

import (
	"strings"
	"testing"

	"awdash/internal/app"
	"awdash/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		ReportsDir:       "/data/reports",
		DatabasePath:     "/data/awdash.db",
		ExportDir:        "/data/exports",
		ReceivedStatuses: []string{"RECEIVED", "CLOSED"},
		CurrentMonthMode: "latest",
		SkipRows:         1,
	}
}

func TestNew(t *testing.T) {
	m := New(app.NewAppState(), testConfig())
	if m == nil {
		t.Fatal("New returned nil")
	}
}

func TestModel_Init(t *testing.T) {
	m := New(app.NewAppState(), testConfig())
	if cmd := m.Init(); cmd != nil {
		t.Error("Init should return nil")
	}
}

func TestModel_View(t *testing.T) {
	m := New(app.NewAppState(), testConfig())
	m.SetSize(100, 40)

	view := m.View()
	if !strings.Contains(view, "/data/reports") {
		t.Error("View should show the reports directory")
	}
	if !strings.Contains(view, "RECEIVED, CLOSED") {
		t.Error("View should list the received statuses")
	}
	if !strings.Contains(view, "enabled") {
		t.Error("View should show history as enabled")
	}
}

func TestModel_View_NilConfig(t *testing.T) {
	m := New(app.NewAppState(), nil)
	m.SetSize(80, 30)

	view := m.View()
	if !strings.Contains(view, "Configuration not loaded") {
		t.Error("View should handle a nil config")
	}
}

func TestModel_View_HistoryDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.HistoryDisabled = true

	m := New(app.NewAppState(), cfg)
	m.SetSize(80, 30)

	if !strings.Contains(m.View(), "disabled") {
		t.Error("View should show history as disabled")
	}
}

func TestModel_Help(t *testing.T) {
	m := New(app.NewAppState(), testConfig())
	if len(m.ShortHelp()) == 0 {
		t.Error("ShortHelp empty")
	}
	if len(m.FullHelp()) == 0 {
		t.Error("FullHelp empty")
	}
}
