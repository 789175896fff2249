package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/secureweb/secureweb/internal/provisioning"
)

// RunProvisionTUI wraps a provisioning run with a Bubble Tea TUI. runFn
// executes the pipeline and reports through the observer it is handed; the
// dashboard consumes the event stream until the run finishes.
func RunProvisionTUI(
	ctx context.Context,
	project, environment, location string,
	stepNames []string,
	runFn func(observer provisioning.Observer) error,
) error {
	m := NewProvisionModel(project, environment, location, stepNames)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	// Run the pipeline in a background goroutine
	go func() {
		events := make(chan provisioning.Event, 64)
		observer := provisioning.NewChannelObserver(events)

		result := make(chan error, 1)
		go func() {
			defer close(events)
			result <- runFn(observer)
		}()

		for event := range events {
			p.Send(EventMsg{Event: event})
		}

		if err := <-result; err != nil {
			p.Send(ErrMsg{Err: err})
			return
		}
		p.Send(DoneMsg{})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	fm := finalModel.(Model)
	if fm.Err != nil {
		return fm.Err
	}
	return nil
}
