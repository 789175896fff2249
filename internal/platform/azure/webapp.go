package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"
)

// CreateAppServicePlan creates a Linux App Service plan and returns its
// resource id. Reserved is the ARM flag that makes a plan Linux.
func (c *RealClient) CreateAppServicePlan(ctx context.Context, opts PlanOpts) (string, error) {
	poller, err := c.plans.BeginCreateOrUpdate(ctx, opts.ResourceGroup, opts.Name, armappservice.Plan{
		Location: to.Ptr(opts.Location),
		Tags:     ptrTags(opts.Tags),
		Kind:     to.Ptr("linux"),
		SKU: &armappservice.SKUDescription{
			Name: to.Ptr(opts.SKUName),
			Tier: to.Ptr(opts.Tier),
		},
		Properties: &armappservice.PlanProperties{
			Reserved: to.Ptr(true),
		},
	}, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create app service plan %s: %w", opts.Name, err)
	}

	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create app service plan %s: %w", opts.Name, err)
	}

	if resp.ID == nil {
		return "", fmt.Errorf("app service plan %s came back without an id", opts.Name)
	}
	return *resp.ID, nil
}

// CreateWebApp creates the web app on the given plan with the Python runtime
// stack. Settings, logging, and identity are configured in separate calls.
func (c *RealClient) CreateWebApp(ctx context.Context, opts WebAppOpts) error {
	poller, err := c.sites.BeginCreateOrUpdate(ctx, opts.ResourceGroup, opts.Name, armappservice.Site{
		Location: to.Ptr(opts.Location),
		Tags:     ptrTags(opts.Tags),
		Properties: &armappservice.SiteProperties{
			ServerFarmID: to.Ptr(opts.PlanID),
			SiteConfig: &armappservice.SiteConfig{
				LinuxFxVersion: to.Ptr(opts.LinuxFx),
			},
		},
	}, nil)
	if err == nil {
		_, err = poller.PollUntilDone(ctx, nil)
	}
	if err != nil {
		return fmt.Errorf("failed to create web app %s: %w", opts.Name, err)
	}
	return nil
}

// UpdateAppSettings replaces the web app's application settings.
func (c *RealClient) UpdateAppSettings(ctx context.Context, resourceGroup, site string, settings map[string]string) error {
	_, err := c.sites.UpdateApplicationSettings(ctx, resourceGroup, site, armappservice.StringDictionary{
		Properties: ptrTags(settings),
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to update app settings on %s: %w", site, err)
	}
	return nil
}

// SetStartupCommand sets the site's startup command. The site config is a
// PUT resource, so the current config is fetched and patched to avoid
// clearing the runtime stack.
func (c *RealClient) SetStartupCommand(ctx context.Context, resourceGroup, site, command string) error {
	current, err := c.sites.GetConfiguration(ctx, resourceGroup, site, nil)
	if err != nil {
		return fmt.Errorf("failed to read configuration of %s: %w", site, err)
	}

	cfg := current.SiteConfigResource
	if cfg.Properties == nil {
		cfg.Properties = &armappservice.SiteConfig{}
	}
	cfg.Properties.AppCommandLine = to.Ptr(command)

	_, err = c.sites.UpdateConfiguration(ctx, resourceGroup, site, cfg, nil)
	if err != nil {
		return fmt.Errorf("failed to set startup command on %s: %w", site, err)
	}
	return nil
}

// EnableSiteLogs turns on filesystem application logging, HTTP logging with
// a small retention window, detailed error pages, and failed request traces.
func (c *RealClient) EnableSiteLogs(ctx context.Context, resourceGroup, site string) error {
	_, err := c.sites.UpdateDiagnosticLogsConfig(ctx, resourceGroup, site, armappservice.SiteLogsConfig{
		Properties: &armappservice.SiteLogsConfigProperties{
			ApplicationLogs: &armappservice.ApplicationLogsConfig{
				FileSystem: &armappservice.FileSystemApplicationLogsConfig{
					Level: to.Ptr(armappservice.LogLevelInformation),
				},
			},
			HTTPLogs: &armappservice.HTTPLogsConfig{
				FileSystem: &armappservice.FileSystemHTTPLogsConfig{
					Enabled:         to.Ptr(true),
					RetentionInDays: to.Ptr(int32(7)),
					RetentionInMb:   to.Ptr(int32(35)),
				},
			},
			DetailedErrorMessages: &armappservice.EnabledConfig{
				Enabled: to.Ptr(true),
			},
			FailedRequestsTracing: &armappservice.EnabledConfig{
				Enabled: to.Ptr(true),
			},
		},
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to enable logs on %s: %w", site, err)
	}
	return nil
}

// AssignSystemIdentity enables the system-assigned managed identity on the
// site and returns the principal id Entra minted for it.
func (c *RealClient) AssignSystemIdentity(ctx context.Context, resourceGroup, site string) (string, error) {
	resp, err := c.sites.Update(ctx, resourceGroup, site, armappservice.SitePatchResource{
		Identity: &armappservice.ManagedServiceIdentity{
			Type: to.Ptr(armappservice.ManagedServiceIdentityTypeSystemAssigned),
		},
	}, nil)
	if err != nil {
		return "", fmt.Errorf("failed to assign identity to %s: %w", site, err)
	}

	if resp.Identity == nil || resp.Identity.PrincipalID == nil || *resp.Identity.PrincipalID == "" {
		return "", fmt.Errorf("web app %s came back without an identity principal", site)
	}
	return *resp.Identity.PrincipalID, nil
}

// SetHTTPSOnly redirects all plain HTTP traffic to HTTPS.
func (c *RealClient) SetHTTPSOnly(ctx context.Context, resourceGroup, site string) error {
	_, err := c.sites.Update(ctx, resourceGroup, site, armappservice.SitePatchResource{
		Properties: &armappservice.SitePatchResourceProperties{
			HTTPSOnly: to.Ptr(true),
		},
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to enforce HTTPS on %s: %w", site, err)
	}
	return nil
}

// GetDefaultHostname returns the site's public hostname.
func (c *RealClient) GetDefaultHostname(ctx context.Context, resourceGroup, site string) (string, error) {
	resp, err := c.sites.Get(ctx, resourceGroup, site, nil)
	if err != nil {
		return "", fmt.Errorf("failed to get web app %s: %w", site, err)
	}
	if resp.Properties == nil || resp.Properties.DefaultHostName == nil {
		return "", fmt.Errorf("web app %s came back without a hostname", site)
	}
	return *resp.Properties.DefaultHostName, nil
}
