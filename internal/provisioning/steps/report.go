package steps

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/secureweb/secureweb/internal/artifacts"
	"github.com/secureweb/secureweb/internal/plan"
	"github.com/secureweb/secureweb/internal/provisioning"
)

// Report resolves the deployed hostname and persists the run summary.
type Report struct{}

// NewReport creates the report step.
func NewReport() *Report {
	return &Report{}
}

// Name implements the provisioning.Step interface.
func (s *Report) Name() string { return "report" }

// Policy implements the provisioning.Step interface.
func (s *Report) Policy() provisioning.Policy { return provisioning.Mandatory }

// Run implements the provisioning.Step interface.
func (s *Report) Run(ctx *provisioning.Context) error {
	p := ctx.Plan

	hostname, err := ctx.Cloud.GetDefaultHostname(ctx, p.ResourceGroup, p.WebAppName)
	if err != nil {
		return fmt.Errorf("failed to resolve the site hostname: %w", err)
	}
	ctx.State.Hostname = hostname

	path := filepath.Join(ctx.ArtifactsDir, artifacts.SummaryFile)
	if err := artifacts.WriteSummary(path, BuildSummary(p, ctx.State)); err != nil {
		return err
	}
	ctx.State.SummaryPath = path

	ctx.Observer.Printf("Saved deployment summary to %s", path)
	return nil
}

// BuildSummary assembles the persisted summary from the plan and the
// provisioning results.
func BuildSummary(p *plan.Plan, state *provisioning.State) *artifacts.Summary {
	hostname := state.Hostname
	if hostname == "" {
		hostname = p.Hostname()
	}

	s := &artifacts.Summary{
		Project:     p.Project,
		Environment: p.Environment,
		Location:    p.Location,
		RunID:       p.RunID,
		SavedAt:     time.Now().UTC().Format(time.RFC3339),

		ResourceGroup:  p.ResourceGroup,
		StorageAccount: p.StorageAccount,
		ServerName:     p.ServerName,
		DatabaseName:   p.DatabaseName,
		VaultName:      p.VaultName,
		InsightsName:   p.InsightsName,
		PlanName:       p.PlanName,
		WebAppName:     p.WebAppName,
		Hostname:       hostname,
		SiteURL:        "https://" + hostname,

		AdminUser:        p.AdminUser,
		AdminPassword:    p.AdminPassword,
		ConnectionString: p.ConnectionString(),
	}

	if len(state.SecretURIs) > 0 {
		s.SecretURIs = state.SecretURIs
	}
	for _, f := range state.Failures {
		s.Warnings = append(s.Warnings, fmt.Sprintf("%s: %v", f.Step, f.Err))
	}
	return s
}
