// Package provisioning provides shared types and interfaces for deployment
// provisioning.
//
// The provisioning domain is organized into focused pieces:
//   - steps/: one step per resource family (storage, database, vault, ...)
//
// This root package contains the step contract, the shared state, and the
// observability types used across steps.
package provisioning

// Policy controls how the pipeline reacts when a step fails.
type Policy int

const (
	// Mandatory steps abort the run on failure. Nothing is rolled back;
	// resources created by earlier steps stay in place.
	Mandatory Policy = iota

	// BestEffort steps record their failure and let the run continue.
	BestEffort
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case BestEffort:
		return "best-effort"
	default:
		return "mandatory"
	}
}

// Step defines the interface for a provisioning step.
type Step interface {
	// Name returns the human-readable name of this step.
	Name() string

	// Policy returns how the pipeline treats a failure of this step.
	Policy() Policy

	// Run executes the provisioning logic for this step.
	Run(ctx *Context) error
}
