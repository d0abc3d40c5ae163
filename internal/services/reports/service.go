// Package reports watches a directory for shipment report files.
package reports

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"awdash/internal/logger"
)

// File describes a report file found in the watched directory.
type File struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Event represents a reports service event.
type Event struct {
	Type  EventType
	File  *File
	Error error
}

// EventType defines the type of reports event.
type EventType int

const (
	EventScanned EventType = iota
	EventFileAdded
	EventFileChanged
	EventFileRemoved
	EventError
)

// Service watches a directory for report files and emits change events.
type Service struct {
	mu            sync.RWMutex
	dir           string
	files         map[string]File
	watcher       *fsnotify.Watcher
	eventChan     chan Event
	stopChan      chan struct{}
	debounceTimer *time.Timer
}

// reportExts lists the file extensions the loader understands.
var reportExts = map[string]bool{
	".csv":  true,
	".xlsx": true,
	".xlsm": true,
}

// IsReportFile reports whether path looks like a loadable report.
func IsReportFile(path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "~") {
		return false
	}
	return reportExts[strings.ToLower(filepath.Ext(name))]
}

// New creates a reports service watching dir and performs an initial scan.
func New(dir string) (*Service, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, err
	}

	s := &Service{
		dir:       dir,
		files:     make(map[string]File),
		eventChan: make(chan Event, 100),
		stopChan:  make(chan struct{}),
	}

	if err := s.scan(); err != nil {
		return nil, err
	}

	if err := s.startWatcher(); err != nil {
		return nil, err
	}

	s.sendEvent(Event{Type: EventScanned})

	return s, nil
}

// Events returns the event channel for subscribing to report changes.
func (s *Service) Events() <-chan Event {
	return s.eventChan
}

// Dir returns the watched directory.
func (s *Service) Dir() string {
	return s.dir
}

// Files returns the known report files, newest first.
func (s *Service) Files() []File {
	s.mu.RLock()
	defer s.mu.RUnlock()

	files := make([]File, 0, len(s.files))
	for _, f := range s.files {
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool {
		if !files[i].ModTime.Equal(files[j].ModTime) {
			return files[i].ModTime.After(files[j].ModTime)
		}
		return files[i].Name < files[j].Name
	})
	return files
}

// Latest returns the most recently modified report file, or nil.
func (s *Service) Latest() *File {
	files := s.Files()
	if len(files) == 0 {
		return nil
	}
	f := files[0]
	return &f
}

// Count returns the number of known report files.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.files)
}

// scan reads the directory and rebuilds the file index.
func (s *Service) scan() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return err
	}

	files := make(map[string]File)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		if !IsReportFile(path) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files[path] = File{
			Path:    path,
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		}
	}

	s.mu.Lock()
	s.files = files
	s.mu.Unlock()

	return nil
}

// startWatcher starts the file system watcher on the reports directory.
func (s *Service) startWatcher() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	s.watcher = watcher

	if err := watcher.Add(s.dir); err != nil {
		if closeErr := watcher.Close(); closeErr != nil {
			logger.Error("failed to close watcher", "error", closeErr)
		}
		return err
	}

	go s.watchLoop()
	return nil
}

// watchLoop handles file system events with debouncing.
func (s *Service) watchLoop() {
	const debounceInterval = 250 * time.Millisecond

	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}

			if !IsReportFile(event.Name) {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				// Spreadsheets are often written in several bursts;
				// wait for the writes to settle before rescanning.
				if s.debounceTimer != nil {
					s.debounceTimer.Stop()
				}
				s.debounceTimer = time.AfterFunc(debounceInterval, func() {
					s.handleChange()
				})
			}

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.sendEvent(Event{Type: EventError, Error: err})

		case <-s.stopChan:
			return
		}
	}
}

// handleChange rescans the directory and emits per-file diff events.
func (s *Service) handleChange() {
	s.mu.RLock()
	old := make(map[string]File, len(s.files))
	for k, v := range s.files {
		old[k] = v
	}
	s.mu.RUnlock()

	if err := s.scan(); err != nil {
		s.sendEvent(Event{Type: EventError, Error: err})
		return
	}

	s.mu.RLock()
	current := make(map[string]File, len(s.files))
	for k, v := range s.files {
		current[k] = v
	}
	s.mu.RUnlock()

	for path, f := range current {
		prev, existed := old[path]
		switch {
		case !existed:
			file := f
			s.sendEvent(Event{Type: EventFileAdded, File: &file})
		case !prev.ModTime.Equal(f.ModTime) || prev.Size != f.Size:
			file := f
			s.sendEvent(Event{Type: EventFileChanged, File: &file})
		}
	}
	for path, f := range old {
		if _, exists := current[path]; !exists {
			file := f
			s.sendEvent(Event{Type: EventFileRemoved, File: &file})
		}
	}
}

// sendEvent sends an event without blocking.
func (s *Service) sendEvent(event Event) {
	select {
	case s.eventChan <- event:
	default:
		logger.Warn("reports event channel full, dropping event")
	}
}

// Close stops the watcher and releases resources.
func (s *Service) Close() error {
	close(s.stopChan)

	if s.debounceTimer != nil {
		s.debounceTimer.Stop()
	}

	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}
