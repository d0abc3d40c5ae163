// Package dashboard provides the main reception dashboard tab.
package dashboard

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"awdash/internal/app"
	"awdash/internal/ui/components"
)

type animationTickMsg time.Time

func animationTickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*40, func(t time.Time) tea.Msg {
		return animationTickMsg(t)
	})
}

// gaugeAnimKey tracks the headline gauge; monthly rows use "month:<key>".
const gaugeAnimKey = "gauge"

// keyMap defines the key bindings specific to the dashboard tab.
type keyMap struct {
	NextFile  key.Binding
	PrevFile  key.Binding
	FirstFile key.Binding
	LastFile  key.Binding
	Open      key.Binding
	OpenPath  key.Binding
	Reload    key.Binding
	Escape    key.Binding
}

// defaultKeyMap returns the default key bindings for the dashboard tab.
func defaultKeyMap() keyMap {
	return keyMap{
		NextFile: key.NewBinding(
			key.WithKeys("n", "j", "down"),
			key.WithHelp("j/n", "next report"),
		),
		PrevFile: key.NewBinding(
			key.WithKeys("p", "k", "up"),
			key.WithHelp("k/p", "prev report"),
		),
		FirstFile: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first report"),
		),
		LastFile: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last report"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open report"),
		),
		OpenPath: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open by path"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload report"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// AnimationState tracks the state of one animated percentage.
type AnimationState struct {
	StartTime      time.Time
	CurrentPercent float64
	TargetPercent  float64
	StartPercent   float64
}

// Model represents the dashboard tab state.
type Model struct {
	state          *app.AppState
	animations     map[string]*AnimationState
	spinner        components.LoadingSpinner
	keys           keyMap
	viewport       viewport.Model
	gaugeBar       components.GaugeBar
	pathInput      textinput.Model
	promptingPath  bool
	width          int
	height         int
	selectedIndex  int
	animationFrame int
}

// New creates a new dashboard model.
func New(state *app.AppState) *Model {
	pathInput := textinput.New()
	pathInput.Placeholder = "/path/to/report.csv"
	pathInput.CharLimit = 500
	pathInput.Width = 50

	return &Model{
		state:         state,
		spinner:       components.NewSpinner("Loading report..."),
		gaugeBar:      components.NewGaugeBar(),
		pathInput:     pathInput,
		keys:          defaultKeyMap(),
		selectedIndex: 0,
		viewport:      viewport.New(0, 0),
		animations:    make(map[string]*AnimationState),
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Init(), animationTickCmd())
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case animationTickMsg:
		cmds = append(cmds, m.handleAnimationTick(msg))

	case app.StartLoadingMsg:
		cmds = append(cmds, animationTickCmd())

	case app.ReportLoadedMsg, app.ReportFilesMsg, app.RefreshMsg:
		m.syncAnimationTargets(time.Now())
		cmds = append(cmds, animationTickCmd())

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKeyMsg(msg))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	default:
		if m.promptingPath {
			var cmd tea.Cmd
			m.pathInput, cmd = m.pathInput.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// handlePathPromptKey drives the open-by-path prompt.
func (m *Model) handlePathPromptKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.promptingPath = false
		m.pathInput.Blur()
		return nil

	case msg.Type == tea.KeyEnter:
		path := strings.TrimSpace(m.pathInput.Value())
		m.promptingPath = false
		m.pathInput.Blur()
		if path == "" {
			return nil
		}
		return func() tea.Msg {
			return app.LoadReportMsg{Path: path}
		}

	default:
		var cmd tea.Cmd
		m.pathInput, cmd = m.pathInput.Update(msg)
		return cmd
	}
}

func (m *Model) handleAnimationTick(msg animationTickMsg) tea.Cmd {
	m.animationFrame++
	now := time.Time(msg)

	animating := m.syncAnimationTargets(now)
	m.stepAnimations(now)

	shouldTick := animating || m.state.AnyLoading() || m.state.IsInitialLoading()
	if shouldTick {
		return animationTickCmd()
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if m.promptingPath {
		return m.handlePathPromptKey(msg)
	}

	files := m.state.GetReportFiles()
	fileCount := len(files)

	switch {
	case key.Matches(msg, m.keys.NextFile):
		if fileCount > 0 {
			m.selectedIndex = (m.selectedIndex + 1) % fileCount
			m.state.SetSelectedFileIndex(m.selectedIndex)
		}
	case key.Matches(msg, m.keys.PrevFile):
		if fileCount > 0 {
			m.selectedIndex = (m.selectedIndex - 1 + fileCount) % fileCount
			m.state.SetSelectedFileIndex(m.selectedIndex)
		}
	case key.Matches(msg, m.keys.FirstFile):
		if fileCount > 0 {
			m.selectedIndex = 0
			m.state.SetSelectedFileIndex(0)
		}
	case key.Matches(msg, m.keys.LastFile):
		if fileCount > 0 {
			m.selectedIndex = fileCount - 1
			m.state.SetSelectedFileIndex(m.selectedIndex)
		}
	case key.Matches(msg, m.keys.Open):
		if m.selectedIndex < fileCount {
			path := files[m.selectedIndex].Path
			return func() tea.Msg {
				return app.LoadReportMsg{Path: path}
			}
		}
	case key.Matches(msg, m.keys.OpenPath):
		m.promptingPath = true
		m.pathInput.SetValue("")
		m.pathInput.Focus()
		return textinput.Blink
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}
	return nil
}

// SetSize sets the available size for the dashboard.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
}

// syncAnimationTargets points every animated bar at the percentages of the
// current analysis. Returns true while any bar is still moving.
func (m *Model) syncAnimationTargets(now time.Time) bool {
	a := m.state.GetAnalysis()
	if a == nil {
		return false
	}

	animating := false

	if m.updateAnimationState(gaugeAnimKey, a.CurrentMonth.Percent(), now) {
		animating = true
	}

	for _, mr := range a.Reception {
		if m.updateAnimationState("month:"+mr.Month.String(), mr.Percent(), now) {
			animating = true
		}
	}

	return animating
}

func (m *Model) updateAnimationState(animKey string, target float64, now time.Time) bool {
	if target < 0 {
		return false
	}

	state, exists := m.animations[animKey]
	if !exists {
		state = &AnimationState{
			CurrentPercent: 0,
			StartPercent:   0,
			TargetPercent:  0,
			StartTime:      now,
		}
		m.animations[animKey] = state
	}

	if target != state.TargetPercent {
		state.StartPercent = state.CurrentPercent
		state.TargetPercent = target
		state.StartTime = now
	}

	return state.CurrentPercent != state.TargetPercent
}

func (m *Model) stepAnimations(now time.Time) {
	for _, state := range m.animations {
		if state.CurrentPercent != state.TargetPercent {
			elapsed := now.Sub(state.StartTime).Seconds()
			duration := 1.5

			if elapsed >= duration {
				state.CurrentPercent = state.TargetPercent
			} else {
				progress := elapsed / duration
				ease := 1.0 - (1.0-progress)*(1.0-progress)
				state.CurrentPercent = state.StartPercent + (state.TargetPercent-state.StartPercent)*ease
			}
		}
	}
}

// displayPercent returns the animated value for a key, falling back to the
// target when no animation is tracked yet.
func (m *Model) displayPercent(animKey string, target float64) float64 {
	if anim, ok := m.animations[animKey]; ok {
		return anim.CurrentPercent
	}
	return target
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	if m.promptingPath {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "load")),
			m.keys.Escape,
		}
	}
	return []key.Binding{
		m.keys.NextFile,
		m.keys.PrevFile,
		m.keys.Open,
		m.keys.OpenPath,
	}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.NextFile, m.keys.PrevFile},
		{m.keys.FirstFile, m.keys.LastFile},
		{m.keys.Open, m.keys.OpenPath, m.keys.Reload},
	}
}
