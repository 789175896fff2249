package provisioning

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"
)

// Logger is the minimal logging interface steps depend on.
type Logger interface {
	Printf(format string, v ...interface{})
}

// Observer defines the interface for structured observability during
// provisioning.
type Observer interface {
	Logger

	// Event emits a structured event
	Event(event Event)

	// Progress reports the pipeline position
	Progress(step string, current, total int)
}

// Event represents a structured provisioning event.
type Event struct {
	Type      EventType         // Type of event
	Step      string            // Step name (e.g. "storage", "database")
	Message   string            // Human-readable message
	Resource  string            // Resource name if applicable
	Timestamp time.Time         // When the event occurred
	Fields    map[string]string // Additional contextual fields
}

// EventType represents the type of provisioning event.
type EventType string

const (
	// EventStepStarted indicates a provisioning step has started.
	EventStepStarted EventType = "step.started"
	// EventStepCompleted indicates a provisioning step completed successfully.
	EventStepCompleted EventType = "step.completed"
	// EventStepFailed indicates a mandatory step failed and the run aborts.
	EventStepFailed EventType = "step.failed"
	// EventStepWarning indicates a best-effort step failed and the run continues.
	EventStepWarning EventType = "step.warning"

	// EventResourceCreating indicates a resource is being created.
	EventResourceCreating EventType = "resource.creating"
	// EventResourceCreated indicates a resource was created successfully.
	EventResourceCreated EventType = "resource.created"
	// EventResourceFailed indicates resource creation failed.
	EventResourceFailed EventType = "resource.failed"

	// EventProgress indicates the pipeline position changed.
	EventProgress EventType = "progress"
	// EventLog carries an unstructured log line.
	EventLog EventType = "log"
)

// ConsoleObserver implements Observer using the standard log package.
type ConsoleObserver struct{}

// NewConsoleObserver creates a new console-based observer.
func NewConsoleObserver() *ConsoleObserver {
	return &ConsoleObserver{}
}

// Printf implements the Logger interface.
func (o *ConsoleObserver) Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// Event implements the Observer interface.
func (o *ConsoleObserver) Event(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	log.Print(formatEvent(event))
}

// Progress implements the Observer interface.
func (o *ConsoleObserver) Progress(step string, current, total int) {
	if total == 0 {
		log.Printf("[%s] Progress: %d/%d", step, current, total)
		return
	}
	percentage := (current * 100) / total
	log.Printf("[%s] Progress: %d/%d (%d%%)", step, current, total, percentage)
}

// formatEvent formats an event for console output.
func formatEvent(event Event) string {
	var parts []string

	parts = append(parts, string(event.Type))

	if event.Step != "" {
		parts = append(parts, fmt.Sprintf("[%s]", event.Step))
	}

	if event.Resource != "" {
		parts = append(parts, fmt.Sprintf("resource=%s", event.Resource))
	}

	parts = append(parts, event.Message)

	if len(event.Fields) > 0 {
		var fieldParts []string
		for k, v := range event.Fields {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%s", k, v))
		}
		parts = append(parts, fmt.Sprintf("(%s)", strings.Join(fieldParts, ", ")))
	}

	return strings.Join(parts, " ")
}

// ChannelObserver forwards events to a channel, typically into the TUI event
// loop. Sends never block; events are dropped once the receiver is gone.
type ChannelObserver struct {
	events chan<- Event
}

// NewChannelObserver creates an observer writing to the given channel.
func NewChannelObserver(events chan<- Event) *ChannelObserver {
	return &ChannelObserver{events: events}
}

// Printf implements the Logger interface.
func (o *ChannelObserver) Printf(format string, v ...interface{}) {
	o.send(Event{Type: EventLog, Message: fmt.Sprintf(format, v...)})
}

// Event implements the Observer interface.
func (o *ChannelObserver) Event(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	o.send(event)
}

// Progress implements the Observer interface.
func (o *ChannelObserver) Progress(step string, current, total int) {
	o.send(Event{
		Type:      EventProgress,
		Step:      step,
		Message:   fmt.Sprintf("%d/%d", current, total),
		Timestamp: time.Now(),
		Fields: map[string]string{
			"current": strconv.Itoa(current),
			"total":   strconv.Itoa(total),
		},
	})
}

func (o *ChannelObserver) send(event Event) {
	select {
	case o.events <- event:
	default:
	}
}

// Helper functions for common events

// LogStepStart logs a step start event.
func LogStepStart(observer Observer, step string) {
	observer.Event(Event{
		Type:    EventStepStarted,
		Step:    step,
		Message: "starting",
	})
}

// LogStepComplete logs a step completion event.
func LogStepComplete(observer Observer, step string, duration time.Duration) {
	observer.Event(Event{
		Type:    EventStepCompleted,
		Step:    step,
		Message: fmt.Sprintf("completed in %v", duration.Round(time.Millisecond)),
	})
}

// LogStepFailed logs a step failure event.
func LogStepFailed(observer Observer, step string, err error) {
	observer.Event(Event{
		Type:    EventStepFailed,
		Step:    step,
		Message: fmt.Sprintf("failed: %v", err),
	})
}

// LogStepWarning logs a best-effort step failure the run continues past.
func LogStepWarning(observer Observer, step string, err error) {
	observer.Event(Event{
		Type:    EventStepWarning,
		Step:    step,
		Message: fmt.Sprintf("failed (continuing): %v", err),
	})
}

// LogResourceCreating logs a resource creation start event.
func LogResourceCreating(observer Observer, step, resourceType, resourceName string) {
	observer.Event(Event{
		Type:     EventResourceCreating,
		Step:     step,
		Resource: resourceName,
		Message:  fmt.Sprintf("creating %s", resourceType),
		Fields: map[string]string{
			"type": resourceType,
		},
	})
}

// LogResourceCreated logs a successful resource creation event.
func LogResourceCreated(observer Observer, step, resourceType, resourceName, resourceID string) {
	observer.Event(Event{
		Type:     EventResourceCreated,
		Step:     step,
		Resource: resourceName,
		Message:  fmt.Sprintf("%s created", resourceType),
		Fields: map[string]string{
			"type": resourceType,
			"id":   resourceID,
		},
	})
}
