// Package app provides the main Bubble Tea application model and state management.
package app

import (
	"sync"
	"time"

	"awdash/internal/models"
	"awdash/internal/services/reports"
)

// NotificationType defines the type of notification.
type NotificationType int

const (
	// NotificationSuccess represents a success notification.
	NotificationSuccess NotificationType = iota
	// NotificationError represents an error notification.
	NotificationError
	// NotificationWarning represents a warning notification.
	NotificationWarning
	// NotificationInfo represents an informational notification.
	NotificationInfo
	// NotificationLoading represents a loading notification with spinner.
	NotificationLoading
)

const (
	// LoadingNotificationID is the fixed ID for loading notifications.
	LoadingNotificationID = "__loading__"
)

// String returns the string representation of a NotificationType.
func (n NotificationType) String() string {
	switch n {
	case NotificationSuccess:
		return "success"
	case NotificationError:
		return "error"
	case NotificationWarning:
		return "warning"
	case NotificationInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Notification represents a user-facing notification message.
type Notification struct {
	ID        string
	Type      NotificationType
	Message   string
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired returns true if the notification has expired.
func (n *Notification) IsExpired() bool {
	if n.Duration <= 0 {
		return false
	}
	return time.Since(n.CreatedAt) > n.Duration
}

// LoadingState tracks loading states for different resources.
type LoadingState struct {
	Initial bool
	Report  bool
	Export  bool
	History bool
}

// AppState holds the shared application state behind a mutex so Bubble Tea
// commands running on other goroutines can update it safely.
type AppState struct {
	mu sync.RWMutex

	Report            *models.Report
	Analysis          *models.Analysis
	ReportFiles       []reports.File
	History           []models.HistoryEntry
	SelectedFileIndex int

	Loading LoadingState

	LastUpdated time.Time

	notifications   []Notification
	notificationSeq int
}

// NewAppState creates an empty application state.
func NewAppState() *AppState {
	return &AppState{
		ReportFiles:   make([]reports.File, 0),
		History:       make([]models.HistoryEntry, 0),
		notifications: make([]Notification, 0),
		Loading: LoadingState{
			Initial: true,
		},
	}
}

// SetLoading sets the loading state for a specific resource.
func (s *AppState) SetLoading(resource string, loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch resource {
	case "initial":
		s.Loading.Initial = loading
	case "report":
		s.Loading.Report = loading
	case "export":
		s.Loading.Export = loading
	case "history":
		s.Loading.History = loading
	}
}

// AnyLoading returns true if any resource is currently loading.
func (s *AppState) AnyLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.Loading.Initial ||
		s.Loading.Report ||
		s.Loading.Export ||
		s.Loading.History
}

// IsInitialLoading returns true if initial data is still loading.
func (s *AppState) IsInitialLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Loading.Initial
}

// SetAnalysis stores a freshly analyzed report.
func (s *AppState) SetAnalysis(rep *models.Report, a *models.Analysis) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Report = rep
	s.Analysis = a
	s.LastUpdated = time.Now()
}

// GetReport returns the currently loaded report, or nil.
func (s *AppState) GetReport() *models.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Report
}

// GetAnalysis returns the current analysis, or nil.
func (s *AppState) GetAnalysis() *models.Analysis {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Analysis
}

// HasAnalysis reports whether a report has been loaded and analyzed.
func (s *AppState) HasAnalysis() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Analysis != nil
}

// SetReportFiles updates the known report files.
func (s *AppState) SetReportFiles(files []reports.File) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ReportFiles = files
	if s.SelectedFileIndex >= len(files) {
		s.SelectedFileIndex = 0
	}
	s.LastUpdated = time.Now()
}

// GetReportFiles returns a copy of the known report files.
func (s *AppState) GetReportFiles() []reports.File {
	s.mu.RLock()
	defer s.mu.RUnlock()

	files := make([]reports.File, len(s.ReportFiles))
	copy(files, s.ReportFiles)
	return files
}

// GetReportFileCount returns the number of known report files.
func (s *AppState) GetReportFileCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ReportFiles)
}

// SetHistory replaces the cached analysis history.
func (s *AppState) SetHistory(entries []models.HistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.History = entries
}

// GetHistory returns a copy of the cached analysis history.
func (s *AppState) GetHistory() []models.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]models.HistoryEntry, len(s.History))
	copy(entries, s.History)
	return entries
}

// GetSelectedFileIndex returns the currently selected report file index.
func (s *AppState) GetSelectedFileIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.SelectedFileIndex
}

// SetSelectedFileIndex updates the selected report file index.
func (s *AppState) SetSelectedFileIndex(idx int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SelectedFileIndex = idx
}

// AddNotification adds a new notification and returns its ID.
func (s *AppState) AddNotification(notifType NotificationType, message string, duration time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notificationSeq++
	id := time.Now().Format("20060102150405") + "-" + string(rune('A'+s.notificationSeq%26))

	notification := Notification{
		ID:        id,
		Type:      notifType,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  duration,
	}

	s.notifications = append(s.notifications, notification)

	// Keep only the last 10 notifications
	if len(s.notifications) > 10 {
		s.notifications = s.notifications[len(s.notifications)-10:]
	}

	return id
}

// RemoveNotification removes a notification by ID.
func (s *AppState) RemoveNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// ClearExpiredNotifications removes all expired notifications.
func (s *AppState) ClearExpiredNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}
	s.notifications = active
}

// GetNotifications returns a copy of all active notifications.
func (s *AppState) GetNotifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Clear expired inline when reading
	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}

	return active
}

// ClearAllNotifications removes all notifications.
func (s *AppState) ClearAllNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = make([]Notification, 0)
}

// SetLoadingNotification sets a loading notification message.
func (s *AppState) SetLoadingNotification(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == LoadingNotificationID {
			s.notifications[i].Message = message
			return
		}
	}

	s.notifications = append(s.notifications, Notification{
		ID:        LoadingNotificationID,
		Type:      NotificationLoading,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  0,
	})
}

// ClearLoadingNotification removes the loading notification.
func (s *AppState) ClearLoadingNotification() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == LoadingNotificationID {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// GetLastUpdated returns the last time the state was updated.
func (s *AppState) GetLastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.LastUpdated
}

// TimeSinceUpdate returns the duration since the last update.
func (s *AppState) TimeSinceUpdate() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.LastUpdated.IsZero() {
		return 0
	}
	return time.Since(s.LastUpdated)
}
