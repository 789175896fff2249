package steps

import (
	"fmt"

	"github.com/secureweb/secureweb/internal/artifacts"
	"github.com/secureweb/secureweb/internal/platform/azure"
	"github.com/secureweb/secureweb/internal/provisioning"
)

// WebApp creates the App Service plan and the web app, then configures
// settings, startup command, logging, managed identity, the vault grant for
// that identity, and HTTPS enforcement.
type WebApp struct{}

// NewWebApp creates the web app step.
func NewWebApp() *WebApp {
	return &WebApp{}
}

// Name implements the provisioning.Step interface.
func (s *WebApp) Name() string { return "webapp" }

// Policy implements the provisioning.Step interface.
func (s *WebApp) Policy() provisioning.Policy { return provisioning.Mandatory }

// Run implements the provisioning.Step interface.
func (s *WebApp) Run(ctx *provisioning.Context) error {
	p := ctx.Plan

	provisioning.LogResourceCreating(ctx.Observer, s.Name(), "app service plan", p.PlanName)
	planID, err := ctx.Cloud.CreateAppServicePlan(ctx, azure.PlanOpts{
		ResourceGroup: p.ResourceGroup,
		Name:          p.PlanName,
		Location:      p.Location,
		SKUName:       p.PlanSKU,
		Tier:          p.PlanTier,
		Tags:          p.Tags,
	})
	if err != nil {
		return fmt.Errorf("failed to create app service plan: %w", err)
	}
	ctx.State.PlanID = planID
	provisioning.LogResourceCreated(ctx.Observer, s.Name(), "app service plan", p.PlanName, planID)

	provisioning.LogResourceCreating(ctx.Observer, s.Name(), "web app", p.WebAppName)
	if err := ctx.Cloud.CreateWebApp(ctx, azure.WebAppOpts{
		ResourceGroup: p.ResourceGroup,
		Name:          p.WebAppName,
		Location:      p.Location,
		PlanID:        planID,
		LinuxFx:       p.LinuxFx,
		Tags:          p.Tags,
	}); err != nil {
		return fmt.Errorf("failed to create web app: %w", err)
	}
	provisioning.LogResourceCreated(ctx.Observer, s.Name(), "web app", p.WebAppName, p.WebAppName)

	settings := buildAppSettings(ctx)
	if err := ctx.Cloud.UpdateAppSettings(ctx, p.ResourceGroup, p.WebAppName, settings); err != nil {
		return fmt.Errorf("failed to configure app settings: %w", err)
	}
	ctx.Observer.Printf("Configured %d application settings on %s", len(settings), p.WebAppName)

	if err := ctx.Cloud.SetStartupCommand(ctx, p.ResourceGroup, p.WebAppName, artifacts.StartupScriptFile); err != nil {
		return fmt.Errorf("failed to set startup command: %w", err)
	}

	if err := ctx.Cloud.EnableSiteLogs(ctx, p.ResourceGroup, p.WebAppName); err != nil {
		return fmt.Errorf("failed to enable site logs: %w", err)
	}

	principalID, err := ctx.Cloud.AssignSystemIdentity(ctx, p.ResourceGroup, p.WebAppName)
	if err != nil {
		return fmt.Errorf("failed to assign managed identity: %w", err)
	}
	ctx.State.PrincipalID = principalID
	ctx.Observer.Printf("Web app identity principal is %s", principalID)

	// The site's identity needs to read the referenced secrets at boot.
	if err := ctx.Cloud.AddAccessPolicy(ctx, p.ResourceGroup, p.VaultName, ctx.State.TenantID, principalID,
		[]azure.SecretPermission{azure.SecretGet, azure.SecretList}); err != nil {
		return fmt.Errorf("failed to grant vault access to the web app: %w", err)
	}

	if err := ctx.Cloud.SetHTTPSOnly(ctx, p.ResourceGroup, p.WebAppName); err != nil {
		return fmt.Errorf("failed to enforce HTTPS: %w", err)
	}

	return nil
}
