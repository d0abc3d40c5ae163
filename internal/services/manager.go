// Package services provides service orchestration for the TUI.
package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"awdash/internal/analysis"
	"awdash/internal/config"
	"awdash/internal/db"
	"awdash/internal/export"
	"awdash/internal/logger"
	"awdash/internal/models"
	"awdash/internal/present"
	"awdash/internal/report"
	"awdash/internal/services/reports"
)

type (
	// ReportsChangedEvent is emitted when the set of report files changes.
	ReportsChangedEvent struct {
		Files []reports.File
	}

	// AnalysisEvent is emitted when a report has been loaded and analyzed.
	AnalysisEvent struct {
		Report   *models.Report
		Analysis *models.Analysis
	}

	// ExportedEvent is emitted when an Excel summary has been written.
	ExportedEvent struct {
		Path string
	}

	// ErrorEvent is emitted when an error occurs in any service.
	ErrorEvent struct {
		Service string
		Error   error
	}
)

// ServiceEvent is the interface implemented by all service events.
type ServiceEvent interface {
	isServiceEvent()
}

func (ReportsChangedEvent) isServiceEvent() {}
func (AnalysisEvent) isServiceEvent()       {}
func (ExportedEvent) isServiceEvent()       {}
func (ErrorEvent) isServiceEvent()          {}

// Manager orchestrates report loading, analysis and event routing.
type Manager struct {
	mu          sync.RWMutex
	cfg         *config.Config
	reports     *reports.Service
	database    *db.DB
	rule        analysis.ReceivedRule
	mode        analysis.CurrentMonthMode
	eventChan   chan ServiceEvent
	stopChan    chan struct{}
	subscribers []chan<- ServiceEvent
}

// NewManager creates a new service manager.
func NewManager(cfg *config.Config) (*Manager, error) {
	m := &Manager{
		cfg:       cfg,
		rule:      analysis.NewReceivedRule(cfg.ReceivedStatuses),
		mode:      analysis.ParseCurrentMonthMode(cfg.CurrentMonthMode),
		eventChan: make(chan ServiceEvent, 100),
		stopChan:  make(chan struct{}),
	}

	var err error
	m.reports, err = reports.New(cfg.ReportsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to start reports watcher: %w", err)
	}

	if !cfg.HistoryDisabled {
		m.database, err = db.New(cfg.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
	}

	go m.routeEvents()

	return m, nil
}

// routeEvents routes events from individual services to subscribers.
func (m *Manager) routeEvents() {
	for {
		select {
		case event := <-m.reports.Events():
			m.handleReportsEvent(event)

		case <-m.stopChan:
			return
		}
	}
}

// handleReportsEvent converts and broadcasts report directory events.
func (m *Manager) handleReportsEvent(event reports.Event) {
	switch event.Type {
	case reports.EventScanned, reports.EventFileAdded,
		reports.EventFileChanged, reports.EventFileRemoved:

		m.broadcast(ReportsChangedEvent{Files: m.reports.Files()})

		// A new report file is loaded immediately, so dropping a file
		// into the watched directory acts as the upload gesture.
		if event.Type == reports.EventFileAdded && event.File != nil {
			if _, _, err := m.LoadAndAnalyze(event.File.Path); err != nil {
				_ = beeep.Notify("Report load failed",
					fmt.Sprintf("%s: %v", event.File.Name, err), "")
			} else {
				_ = beeep.Notify("Shipment report loaded",
					fmt.Sprintf("%s from %s", event.File.Name, m.reports.Dir()), "")
			}
		}

	case reports.EventError:
		m.broadcast(ErrorEvent{
			Service: "reports",
			Error:   event.Error,
		})
	}
}

// LoadAndAnalyze loads the report at path, analyzes it and records the
// result in the analysis history.
func (m *Manager) LoadAndAnalyze(path string) (*models.Report, *models.Analysis, error) {
	rep, err := report.Load(path, m.cfg.LoaderOptions())
	if err != nil {
		m.broadcast(ErrorEvent{Service: "loader", Error: err})
		return nil, nil, err
	}

	a := analysis.Analyze(rep, m.rule, m.mode, time.Now())

	m.recordHistory(rep, a)
	m.broadcast(AnalysisEvent{Report: rep, Analysis: a})

	return rep, a, nil
}

// LoadLatest loads the most recently modified report in the watched directory.
func (m *Manager) LoadLatest() (*models.Report, *models.Analysis, error) {
	latest := m.reports.Latest()
	if latest == nil {
		return nil, nil, fmt.Errorf("no report files in %s", m.reports.Dir())
	}
	return m.LoadAndAnalyze(latest.Path)
}

// recordHistory persists a one-line summary of the analysis.
func (m *Manager) recordHistory(rep *models.Report, a *models.Analysis) {
	if m.database == nil {
		return
	}

	gauge := present.Gauge(a.CurrentMonth)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := m.database.RecordAnalysis(ctx, models.HistoryEntry{
		Source:       a.Source,
		RowCount:     a.RowCount,
		SkippedRows:  a.SkippedRows,
		GaugePercent: gauge.Value,
		GaugeLabel:   gauge.Label,
		LoadedAt:     rep.LoadedAt,
	})
	if err != nil {
		logger.Error("failed to record analysis history", "error", err)
	}
}

// Export writes an Excel summary for the given report and analysis and
// returns the path of the written file.
func (m *Manager) Export(rep *models.Report, a *models.Analysis) (string, error) {
	path, err := export.WriteSummary(m.cfg.ExportDir, rep, a, time.Now())
	if err != nil {
		m.broadcast(ErrorEvent{Service: "export", Error: err})
		return "", err
	}

	m.broadcast(ExportedEvent{Path: path})
	return path, nil
}

// History returns the most recent persisted analyses, newest first.
func (m *Manager) History(limit int) ([]models.HistoryEntry, error) {
	if m.database == nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return m.database.RecentAnalyses(ctx, limit)
}

// HistoryEnabled reports whether analyses are persisted.
func (m *Manager) HistoryEnabled() bool {
	return m.database != nil
}

// broadcast sends an event to all subscribers.
func (m *Manager) broadcast(event ServiceEvent) {
	// Send to main event channel
	select {
	case m.eventChan <- event:
	default:
	}

	// Send to subscribers
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, sub := range m.subscribers {
		select {
		case sub <- event:
		default:
			// Subscriber channel full, skip
		}
	}
}

// Subscribe creates a channel for receiving service events.
// Returns a tea.Cmd that can be used in Bubble Tea's Init or Update.
func (m *Manager) Subscribe() (chan ServiceEvent, tea.Cmd) {
	ch := make(chan ServiceEvent, 50)

	m.mu.Lock()
	m.subscribers = append(m.subscribers, ch)
	m.mu.Unlock()

	return ch, waitForEvent(ch)
}

// waitForEvent returns a tea.Cmd that waits for the next event.
func waitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// WaitForEvent returns a tea.Cmd for the next event on a channel.
func WaitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return waitForEvent(ch)
}

// Unsubscribe removes a subscriber channel.
func (m *Manager) Unsubscribe(ch chan ServiceEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, sub := range m.subscribers {
		if sub == ch {
			m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
			close(ch)
			break
		}
	}
}

// Reports returns the reports watcher service.
func (m *Manager) Reports() *reports.Service {
	return m.reports
}

// Config returns the manager's configuration.
func (m *Manager) Config() *config.Config {
	return m.cfg
}

// Database returns the database instance for direct access, or nil when
// history is disabled.
func (m *Manager) Database() *db.DB {
	return m.database
}

// Close closes the manager and all its services.
func (m *Manager) Close() error {
	close(m.stopChan)

	m.mu.Lock()
	for _, sub := range m.subscribers {
		close(sub)
	}
	m.subscribers = nil
	m.mu.Unlock()

	var errs []error

	if err := m.reports.Close(); err != nil {
		errs = append(errs, err)
	}

	if m.database != nil {
		if err := m.database.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
