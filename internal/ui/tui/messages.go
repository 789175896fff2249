// Package tui provides a Bubble Tea-based terminal UI for provisioning runs.
package tui

import "github.com/secureweb/secureweb/internal/provisioning"

// EventMsg wraps one provisioning event for the dashboard.
type EventMsg struct {
	Event provisioning.Event
}

// TickMsg is sent periodically to refresh the display.
type TickMsg struct{}

// ErrMsg carries an error.
type ErrMsg struct{ Err error }

// DoneMsg signals that the run is complete.
type DoneMsg struct{}
