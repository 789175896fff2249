package azure

import "context"

// MockClient is a mock implementation of CloudManager.
type MockClient struct {
	// Identity
	CallerPrincipalFunc func(ctx context.Context) (*Principal, error)
	GetSubscriptionFunc func(ctx context.Context) (*Subscription, error)

	// Resource groups
	EnsureResourceGroupFunc func(ctx context.Context, name, location string, tags map[string]string) error

	// Storage
	CreateStorageAccountFunc func(ctx context.Context, resourceGroup, name, location string, tags map[string]string) error
	GetStorageKeyFunc        func(ctx context.Context, resourceGroup, name string) (string, error)
	CreateBlobContainerFunc  func(ctx context.Context, resourceGroup, account, name string, publicRead bool) error

	// Database
	CreateFlexibleServerFunc func(ctx context.Context, opts FlexibleServerOpts) (string, error)
	CreateDatabaseFunc       func(ctx context.Context, resourceGroup, server, name string) error
	AllowAzureAccessFunc     func(ctx context.Context, resourceGroup, server string) error

	// Vault
	CreateVaultFunc     func(ctx context.Context, opts VaultOpts) (string, error)
	AddAccessPolicyFunc func(ctx context.Context, resourceGroup, vault, tenantID, objectID string, permissions []SecretPermission) error
	SetSecretFunc       func(ctx context.Context, vaultURI, name, value string) (string, error)

	// Telemetry
	CreateInsightsComponentFunc func(ctx context.Context, resourceGroup, name, location string, tags map[string]string) (*TelemetryComponent, error)

	// Web app
	CreateAppServicePlanFunc func(ctx context.Context, opts PlanOpts) (string, error)
	CreateWebAppFunc         func(ctx context.Context, opts WebAppOpts) error
	UpdateAppSettingsFunc    func(ctx context.Context, resourceGroup, site string, settings map[string]string) error
	SetStartupCommandFunc    func(ctx context.Context, resourceGroup, site, command string) error
	EnableSiteLogsFunc       func(ctx context.Context, resourceGroup, site string) error
	AssignSystemIdentityFunc func(ctx context.Context, resourceGroup, site string) (string, error)
	SetHTTPSOnlyFunc         func(ctx context.Context, resourceGroup, site string) error
	GetDefaultHostnameFunc   func(ctx context.Context, resourceGroup, site string) (string, error)
}

// Ensure interface compliance
var _ CloudManager = (*MockClient)(nil)

// CallerPrincipal mocks resolving the caller principal.
func (m *MockClient) CallerPrincipal(ctx context.Context) (*Principal, error) {
	if m.CallerPrincipalFunc != nil {
		return m.CallerPrincipalFunc(ctx)
	}
	return &Principal{TenantID: "mock-tenant", ObjectID: "mock-object"}, nil
}

// GetSubscription mocks fetching the subscription.
func (m *MockClient) GetSubscription(ctx context.Context) (*Subscription, error) {
	if m.GetSubscriptionFunc != nil {
		return m.GetSubscriptionFunc(ctx)
	}
	return &Subscription{ID: "mock-subscription", DisplayName: "Mock Subscription", State: "Enabled"}, nil
}

// EnsureResourceGroup mocks resource group creation.
func (m *MockClient) EnsureResourceGroup(ctx context.Context, name, location string, tags map[string]string) error {
	if m.EnsureResourceGroupFunc != nil {
		return m.EnsureResourceGroupFunc(ctx, name, location, tags)
	}
	return nil
}

// CreateStorageAccount mocks storage account creation.
func (m *MockClient) CreateStorageAccount(ctx context.Context, resourceGroup, name, location string, tags map[string]string) error {
	if m.CreateStorageAccountFunc != nil {
		return m.CreateStorageAccountFunc(ctx, resourceGroup, name, location, tags)
	}
	return nil
}

// GetStorageKey mocks reading the primary storage key.
func (m *MockClient) GetStorageKey(ctx context.Context, resourceGroup, name string) (string, error) {
	if m.GetStorageKeyFunc != nil {
		return m.GetStorageKeyFunc(ctx, resourceGroup, name)
	}
	return "mock-storage-key", nil
}

// CreateBlobContainer mocks blob container creation.
func (m *MockClient) CreateBlobContainer(ctx context.Context, resourceGroup, account, name string, publicRead bool) error {
	if m.CreateBlobContainerFunc != nil {
		return m.CreateBlobContainerFunc(ctx, resourceGroup, account, name, publicRead)
	}
	return nil
}

// CreateFlexibleServer mocks PostgreSQL server creation.
func (m *MockClient) CreateFlexibleServer(ctx context.Context, opts FlexibleServerOpts) (string, error) {
	if m.CreateFlexibleServerFunc != nil {
		return m.CreateFlexibleServerFunc(ctx, opts)
	}
	return opts.Name + ".postgres.database.azure.com", nil
}

// CreateDatabase mocks database creation.
func (m *MockClient) CreateDatabase(ctx context.Context, resourceGroup, server, name string) error {
	if m.CreateDatabaseFunc != nil {
		return m.CreateDatabaseFunc(ctx, resourceGroup, server, name)
	}
	return nil
}

// AllowAzureAccess mocks installing the Azure services firewall rule.
func (m *MockClient) AllowAzureAccess(ctx context.Context, resourceGroup, server string) error {
	if m.AllowAzureAccessFunc != nil {
		return m.AllowAzureAccessFunc(ctx, resourceGroup, server)
	}
	return nil
}

// CreateVault mocks vault creation.
func (m *MockClient) CreateVault(ctx context.Context, opts VaultOpts) (string, error) {
	if m.CreateVaultFunc != nil {
		return m.CreateVaultFunc(ctx, opts)
	}
	return "https://" + opts.Name + ".vault.azure.net/", nil
}

// AddAccessPolicy mocks adding a vault access policy.
func (m *MockClient) AddAccessPolicy(ctx context.Context, resourceGroup, vault, tenantID, objectID string, permissions []SecretPermission) error {
	if m.AddAccessPolicyFunc != nil {
		return m.AddAccessPolicyFunc(ctx, resourceGroup, vault, tenantID, objectID, permissions)
	}
	return nil
}

// SetSecret mocks writing a secret.
func (m *MockClient) SetSecret(ctx context.Context, vaultURI, name, value string) (string, error) {
	if m.SetSecretFunc != nil {
		return m.SetSecretFunc(ctx, vaultURI, name, value)
	}
	return vaultURI + "secrets/" + name + "/mock-version", nil
}

// CreateInsightsComponent mocks Application Insights creation.
func (m *MockClient) CreateInsightsComponent(ctx context.Context, resourceGroup, name, location string, tags map[string]string) (*TelemetryComponent, error) {
	if m.CreateInsightsComponentFunc != nil {
		return m.CreateInsightsComponentFunc(ctx, resourceGroup, name, location, tags)
	}
	return &TelemetryComponent{
		InstrumentationKey: "mock-instrumentation-key",
		ConnectionString:   "InstrumentationKey=mock-instrumentation-key",
	}, nil
}

// CreateAppServicePlan mocks plan creation.
func (m *MockClient) CreateAppServicePlan(ctx context.Context, opts PlanOpts) (string, error) {
	if m.CreateAppServicePlanFunc != nil {
		return m.CreateAppServicePlanFunc(ctx, opts)
	}
	return "/subscriptions/mock/resourceGroups/" + opts.ResourceGroup + "/providers/Microsoft.Web/serverfarms/" + opts.Name, nil
}

// CreateWebApp mocks web app creation.
func (m *MockClient) CreateWebApp(ctx context.Context, opts WebAppOpts) error {
	if m.CreateWebAppFunc != nil {
		return m.CreateWebAppFunc(ctx, opts)
	}
	return nil
}

// UpdateAppSettings mocks replacing app settings.
func (m *MockClient) UpdateAppSettings(ctx context.Context, resourceGroup, site string, settings map[string]string) error {
	if m.UpdateAppSettingsFunc != nil {
		return m.UpdateAppSettingsFunc(ctx, resourceGroup, site, settings)
	}
	return nil
}

// SetStartupCommand mocks setting the startup command.
func (m *MockClient) SetStartupCommand(ctx context.Context, resourceGroup, site, command string) error {
	if m.SetStartupCommandFunc != nil {
		return m.SetStartupCommandFunc(ctx, resourceGroup, site, command)
	}
	return nil
}

// EnableSiteLogs mocks enabling diagnostic logs.
func (m *MockClient) EnableSiteLogs(ctx context.Context, resourceGroup, site string) error {
	if m.EnableSiteLogsFunc != nil {
		return m.EnableSiteLogsFunc(ctx, resourceGroup, site)
	}
	return nil
}

// AssignSystemIdentity mocks enabling the managed identity.
func (m *MockClient) AssignSystemIdentity(ctx context.Context, resourceGroup, site string) (string, error) {
	if m.AssignSystemIdentityFunc != nil {
		return m.AssignSystemIdentityFunc(ctx, resourceGroup, site)
	}
	return "mock-principal-id", nil
}

// SetHTTPSOnly mocks enforcing HTTPS.
func (m *MockClient) SetHTTPSOnly(ctx context.Context, resourceGroup, site string) error {
	if m.SetHTTPSOnlyFunc != nil {
		return m.SetHTTPSOnlyFunc(ctx, resourceGroup, site)
	}
	return nil
}

// GetDefaultHostname mocks reading the site hostname.
func (m *MockClient) GetDefaultHostname(ctx context.Context, resourceGroup, site string) (string, error) {
	if m.GetDefaultHostnameFunc != nil {
		return m.GetDefaultHostnameFunc(ctx, resourceGroup, site)
	}
	return site + ".azurewebsites.net", nil
}
