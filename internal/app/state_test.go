package app

import (
	"testing"
	"time"

	"awdash/internal/models"
	"awdash/internal/services/reports"
)

func TestNewAppState(t *testing.T) {
	s := NewAppState()
	if s == nil {
		t.Fatal("NewAppState returned nil")
	}
	if s.HasAnalysis() {
		t.Error("fresh state should have no analysis")
	}
	if len(s.ReportFiles) != 0 {
		t.Error("ReportFiles should be empty")
	}
	if s.Loading.Initial != true {
		t.Error("Initial loading should be true")
	}
}

func TestState_SetLoading(t *testing.T) {
	s := NewAppState()

	s.SetLoading("report", true)
	if !s.Loading.Report {
		t.Error("Report loading should be true")
	}
	if !s.AnyLoading() {
		t.Error("AnyLoading should be true")
	}

	s.SetLoading("report", false)
	// Initial is still true
	if !s.AnyLoading() {
		t.Error("AnyLoading should be true (Initial is true)")
	}

	s.SetLoading("initial", false)
	if s.AnyLoading() {
		t.Error("AnyLoading should be false")
	}

	s.SetLoading("export", true)
	if !s.AnyLoading() {
		t.Error("AnyLoading should be true while exporting")
	}
}

func TestState_SetAnalysis(t *testing.T) {
	s := NewAppState()

	rep := &models.Report{Source: "shipments.csv"}
	a := &models.Analysis{Source: "shipments.csv", RowCount: 3}

	s.SetAnalysis(rep, a)

	if !s.HasAnalysis() {
		t.Error("HasAnalysis should be true")
	}
	if got := s.GetReport(); got != rep {
		t.Error("GetReport returned wrong report")
	}
	if got := s.GetAnalysis(); got != a {
		t.Error("GetAnalysis returned wrong analysis")
	}
	if s.GetLastUpdated().IsZero() {
		t.Error("LastUpdated should be set")
	}
	if s.TimeSinceUpdate() < 0 {
		t.Error("TimeSinceUpdate should be non-negative")
	}
}

func TestState_ReportFiles(t *testing.T) {
	s := NewAppState()

	files := []reports.File{
		{Path: "/r/newer.csv", Name: "newer.csv"},
		{Path: "/r/older.csv", Name: "older.csv"},
	}

	s.SetReportFiles(files)

	if s.GetReportFileCount() != 2 {
		t.Errorf("GetReportFileCount = %d, want 2", s.GetReportFileCount())
	}

	got := s.GetReportFiles()
	if len(got) != 2 || got[0].Name != "newer.csv" {
		t.Errorf("GetReportFiles = %v", got)
	}

	// Must be a copy
	got[0].Name = "mutated"
	if s.GetReportFiles()[0].Name != "newer.csv" {
		t.Error("GetReportFiles should return a copy")
	}
}

func TestState_SelectedFileIndexClamped(t *testing.T) {
	s := NewAppState()

	s.SetReportFiles([]reports.File{{Path: "/r/a.csv"}, {Path: "/r/b.csv"}})
	s.SetSelectedFileIndex(1)

	if s.GetSelectedFileIndex() != 1 {
		t.Errorf("GetSelectedFileIndex = %d, want 1", s.GetSelectedFileIndex())
	}

	// Shrinking the list resets an out-of-range selection.
	s.SetReportFiles([]reports.File{{Path: "/r/a.csv"}})
	if s.GetSelectedFileIndex() != 0 {
		t.Errorf("GetSelectedFileIndex = %d after shrink, want 0", s.GetSelectedFileIndex())
	}
}

func TestState_History(t *testing.T) {
	s := NewAppState()

	entries := []models.HistoryEntry{
		{ID: 2, Source: "b.csv", GaugePercent: 50},
		{ID: 1, Source: "a.csv", GaugePercent: 100},
	}
	s.SetHistory(entries)

	got := s.GetHistory()
	if len(got) != 2 || got[0].ID != 2 {
		t.Errorf("GetHistory = %v", got)
	}
}

func TestState_Notifications(t *testing.T) {
	s := NewAppState()

	id := s.AddNotification(NotificationSuccess, "report loaded", time.Minute)
	if id == "" {
		t.Fatal("AddNotification returned empty ID")
	}

	notifs := s.GetNotifications()
	if len(notifs) != 1 {
		t.Fatalf("GetNotifications returned %d, want 1", len(notifs))
	}
	if notifs[0].Message != "report loaded" {
		t.Errorf("Message = %q", notifs[0].Message)
	}

	s.RemoveNotification(id)
	if len(s.GetNotifications()) != 0 {
		t.Error("notification should be removed")
	}
}

func TestState_NotificationExpiry(t *testing.T) {
	s := NewAppState()

	s.AddNotification(NotificationInfo, "ephemeral", time.Nanosecond)
	time.Sleep(time.Millisecond)

	if got := s.GetNotifications(); len(got) != 0 {
		t.Errorf("expired notification still visible: %v", got)
	}

	s.ClearExpiredNotifications()
	s.AddNotification(NotificationInfo, "sticky", 0)
	if got := s.GetNotifications(); len(got) != 1 {
		t.Errorf("persistent notification missing: %v", got)
	}
}

func TestState_NotificationCap(t *testing.T) {
	s := NewAppState()

	for i := 0; i < 15; i++ {
		s.AddNotification(NotificationInfo, "n", time.Minute)
	}

	if got := len(s.GetNotifications()); got > 10 {
		t.Errorf("notification list grew to %d, want at most 10", got)
	}
}

func TestState_LoadingNotification(t *testing.T) {
	s := NewAppState()

	s.SetLoadingNotification("Loading...")
	notifs := s.GetNotifications()
	if len(notifs) != 1 || notifs[0].ID != LoadingNotificationID {
		t.Fatalf("loading notification missing: %v", notifs)
	}

	s.SetLoadingNotification("Still loading...")
	notifs = s.GetNotifications()
	if len(notifs) != 1 || notifs[0].Message != "Still loading..." {
		t.Errorf("loading notification not updated: %v", notifs)
	}

	s.ClearLoadingNotification()
	if len(s.GetNotifications()) != 0 {
		t.Error("loading notification should be cleared")
	}
}

func TestNotificationType_String(t *testing.T) {
	tests := []struct {
		typ  NotificationType
		want string
	}{
		{NotificationSuccess, "success"},
		{NotificationError, "error"},
		{NotificationWarning, "warning"},
		{NotificationInfo, "info"},
		{NotificationType(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
