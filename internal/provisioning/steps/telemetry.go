package steps

import (
	"fmt"

	"github.com/secureweb/secureweb/internal/provisioning"
)

// Telemetry creates the Application Insights component and records its
// instrumentation key for the web app settings.
type Telemetry struct{}

// NewTelemetry creates the telemetry step.
func NewTelemetry() *Telemetry {
	return &Telemetry{}
}

// Name implements the provisioning.Step interface.
func (s *Telemetry) Name() string { return "telemetry" }

// Policy implements the provisioning.Step interface.
func (s *Telemetry) Policy() provisioning.Policy { return provisioning.Mandatory }

// Run implements the provisioning.Step interface.
func (s *Telemetry) Run(ctx *provisioning.Context) error {
	p := ctx.Plan

	provisioning.LogResourceCreating(ctx.Observer, s.Name(), "application insights", p.InsightsName)
	component, err := ctx.Cloud.CreateInsightsComponent(ctx, p.ResourceGroup, p.InsightsName, p.Location, p.Tags)
	if err != nil {
		return fmt.Errorf("failed to create application insights: %w", err)
	}
	ctx.State.InstrumentationKey = component.InstrumentationKey
	ctx.State.TelemetryConnection = component.ConnectionString
	provisioning.LogResourceCreated(ctx.Observer, s.Name(), "application insights", p.InsightsName, p.InsightsName)

	return nil
}
