package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/secureweb/secureweb/internal/provisioning"
	"github.com/secureweb/secureweb/internal/ui/benchmarks"
)

// StepView is one pipeline step as displayed.
type StepView struct {
	Name      string
	Active    bool
	Done      bool
	Warned    bool
	Failed    bool
	StartedAt time.Time
	Duration  time.Duration
}

// finished reports whether the step no longer runs, in any outcome.
func (s StepView) finished() bool {
	return s.Done || s.Warned || s.Failed
}

// ResourceView is one cloud resource row.
type ResourceView struct {
	Kind string
	Name string
	Done bool
}

// Model is the Bubble Tea model for the provisioning dashboard.
type Model struct {
	// Run info
	Project     string
	Environment string
	Location    string

	// Pipeline state
	Steps     []StepView
	Resources []ResourceView
	Warnings  []string
	LastLog   string

	// ETA
	EstimatedRemaining time.Duration
	PerformanceScale   float64
	StartTime          time.Time

	// Animation
	SpinnerFrame int

	// UI state
	Width  int
	Height int
	Err    error
	Done   bool
}

// NewProvisionModel creates a model for the provision command TUI.
func NewProvisionModel(project, environment, location string, stepNames []string) Model {
	steps := make([]StepView, len(stepNames))
	for i, name := range stepNames {
		steps[i] = StepView{Name: name}
	}
	return Model{
		Project:          project,
		Environment:      environment,
		Location:         location,
		StartTime:        time.Now(),
		PerformanceScale: 1.0,
		Steps:            steps,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case EventMsg:
		m.applyEvent(msg.Event)

	case TickMsg:
		m.SpinnerFrame++
		m.updateETA()
		return m, tickCmd()

	case ErrMsg:
		m.Err = msg.Err
		return m, tea.Quit

	case DoneMsg:
		m.Done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) applyEvent(event provisioning.Event) {
	switch event.Type {
	case provisioning.EventStepStarted:
		if s := m.step(event.Step); s != nil {
			s.Active = true
			s.StartedAt = event.Timestamp
			if s.StartedAt.IsZero() {
				s.StartedAt = time.Now()
			}
		}

	case provisioning.EventStepCompleted:
		m.finishStep(event, func(s *StepView) { s.Done = true })

	case provisioning.EventStepFailed:
		m.finishStep(event, func(s *StepView) { s.Failed = true })

	case provisioning.EventStepWarning:
		m.finishStep(event, func(s *StepView) { s.Warned = true })
		m.Warnings = append(m.Warnings, event.Step+": "+event.Message)

	case provisioning.EventResourceCreating:
		if m.resource(event.Resource) == nil {
			m.Resources = append(m.Resources, ResourceView{
				Kind: event.Fields["type"],
				Name: event.Resource,
			})
		}

	case provisioning.EventResourceCreated:
		if r := m.resource(event.Resource); r != nil {
			r.Done = true
		} else {
			m.Resources = append(m.Resources, ResourceView{
				Kind: event.Fields["type"],
				Name: event.Resource,
				Done: true,
			})
		}

	case provisioning.EventLog:
		m.LastLog = event.Message
	}
}

func (m *Model) step(name string) *StepView {
	for i := range m.Steps {
		if m.Steps[i].Name == name {
			return &m.Steps[i]
		}
	}
	return nil
}

func (m *Model) resource(name string) *ResourceView {
	if name == "" {
		return nil
	}
	for i := range m.Resources {
		if m.Resources[i].Name == name {
			return &m.Resources[i]
		}
	}
	return nil
}

func (m *Model) finishStep(event provisioning.Event, mark func(*StepView)) {
	s := m.step(event.Step)
	if s == nil {
		return
	}
	mark(s)
	s.Active = false
	if !s.StartedAt.IsZero() {
		end := event.Timestamp
		if end.IsZero() {
			end = time.Now()
		}
		s.Duration = end.Sub(s.StartedAt)
	}
}

func (m *Model) updateETA() {
	current := ""
	var elapsed time.Duration
	var history []benchmarks.StepRecord

	for i := range m.Steps {
		s := &m.Steps[i]
		switch {
		case s.finished():
			if !s.StartedAt.IsZero() {
				end := s.StartedAt.Add(s.Duration)
				history = append(history, benchmarks.StepRecord{
					Step:      s.Name,
					StartedAt: s.StartedAt,
					EndedAt:   &end,
				})
			}
		case s.Active:
			current = s.Name
			if !s.StartedAt.IsZero() {
				elapsed = time.Since(s.StartedAt)
			}
		}
	}

	if current == "" {
		m.EstimatedRemaining = 0
		return
	}
	m.PerformanceScale = benchmarks.PerformanceScale(current, elapsed, history)
	m.EstimatedRemaining = benchmarks.EstimateRemainingWithScale(current, elapsed, history, m.PerformanceScale)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}
