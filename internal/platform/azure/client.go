// Package azure provides a wrapper around the Azure Resource Manager and
// Key Vault data-plane APIs.
package azure

import "context"

// Principal identifies the authenticated caller.
type Principal struct {
	// TenantID is the Entra tenant the credential belongs to.
	TenantID string
	// ObjectID is the caller's object id, used in vault access policies.
	ObjectID string
}

// Subscription describes the target subscription.
type Subscription struct {
	ID          string
	DisplayName string
	State       string
}

// SecretPermission is a vault access-policy secret permission.
type SecretPermission string

const (
	SecretGet    SecretPermission = "get"
	SecretList   SecretPermission = "list"
	SecretSet    SecretPermission = "set"
	SecretDelete SecretPermission = "delete"
)

// FlexibleServerOpts holds all parameters for creating a PostgreSQL
// flexible server.
type FlexibleServerOpts struct {
	ResourceGroup string
	Name          string
	Location      string
	AdminUser     string
	AdminPassword string
	SKUName       string
	Tier          string
	StorageGB     int32
	Tags          map[string]string
}

// VaultOpts holds all parameters for creating a vault. The caller principal
// is granted full secret permissions at creation time.
type VaultOpts struct {
	ResourceGroup string
	Name          string
	Location      string
	TenantID      string
	CallerObject  string
	Tags          map[string]string
}

// PlanOpts holds all parameters for creating a Linux App Service plan.
type PlanOpts struct {
	ResourceGroup string
	Name          string
	Location      string
	SKUName       string
	Tier          string
	Tags          map[string]string
}

// WebAppOpts holds all parameters for creating a web app bound to a plan.
type WebAppOpts struct {
	ResourceGroup string
	Name          string
	Location      string
	PlanID        string
	LinuxFx       string
	Tags          map[string]string
}

// TelemetryComponent is the result of creating an Application Insights
// component.
type TelemetryComponent struct {
	InstrumentationKey string
	ConnectionString   string
}

// IdentityResolver resolves who the configured credential authenticates as.
type IdentityResolver interface {
	// CallerPrincipal extracts the tenant and object id from an ARM token.
	CallerPrincipal(ctx context.Context) (*Principal, error)
	// GetSubscription probes the subscription, which doubles as the
	// cheapest possible authentication check.
	GetSubscription(ctx context.Context) (*Subscription, error)
}

// ResourceGroupManager defines the interface for managing resource groups.
type ResourceGroupManager interface {
	EnsureResourceGroup(ctx context.Context, name, location string, tags map[string]string) error
}

// StorageManager defines the interface for managing storage accounts.
type StorageManager interface {
	CreateStorageAccount(ctx context.Context, resourceGroup, name, location string, tags map[string]string) error
	// GetStorageKey returns the account's primary access key.
	GetStorageKey(ctx context.Context, resourceGroup, name string) (string, error)
	// CreateBlobContainer creates a container. publicRead enables anonymous
	// blob-level read access, which is what static asset serving needs.
	CreateBlobContainer(ctx context.Context, resourceGroup, account, name string, publicRead bool) error
}

// DatabaseManager defines the interface for managing PostgreSQL flexible
// servers.
type DatabaseManager interface {
	// CreateFlexibleServer creates the server and returns its FQDN.
	CreateFlexibleServer(ctx context.Context, opts FlexibleServerOpts) (string, error)
	CreateDatabase(ctx context.Context, resourceGroup, server, name string) error
	// AllowAzureAccess installs the 0.0.0.0 firewall rule that admits
	// connections from Azure services such as the web app.
	AllowAzureAccess(ctx context.Context, resourceGroup, server string) error
}

// VaultManager defines the interface for managing vaults and their secrets.
type VaultManager interface {
	// CreateVault creates the vault with an access policy for the caller
	// and returns the vault URI.
	CreateVault(ctx context.Context, opts VaultOpts) (string, error)
	// AddAccessPolicy grants the given principal the listed secret
	// permissions on an existing vault.
	AddAccessPolicy(ctx context.Context, resourceGroup, vault, tenantID, objectID string, permissions []SecretPermission) error
	// SetSecret writes a secret value and returns the versioned secret URI.
	SetSecret(ctx context.Context, vaultURI, name, value string) (string, error)
}

// TelemetryManager defines the interface for managing Application Insights.
type TelemetryManager interface {
	CreateInsightsComponent(ctx context.Context, resourceGroup, name, location string, tags map[string]string) (*TelemetryComponent, error)
}

// WebAppManager defines the interface for managing App Service plans and
// web apps.
type WebAppManager interface {
	// CreateAppServicePlan creates a Linux plan and returns its resource id.
	CreateAppServicePlan(ctx context.Context, opts PlanOpts) (string, error)
	CreateWebApp(ctx context.Context, opts WebAppOpts) error
	UpdateAppSettings(ctx context.Context, resourceGroup, site string, settings map[string]string) error
	// SetStartupCommand sets the container startup command.
	SetStartupCommand(ctx context.Context, resourceGroup, site, command string) error
	// EnableSiteLogs turns on filesystem application and HTTP logging.
	EnableSiteLogs(ctx context.Context, resourceGroup, site string) error
	// AssignSystemIdentity enables the system-assigned managed identity and
	// returns its principal id.
	AssignSystemIdentity(ctx context.Context, resourceGroup, site string) (string, error)
	SetHTTPSOnly(ctx context.Context, resourceGroup, site string) error
	// GetDefaultHostname returns the site's public hostname.
	GetDefaultHostname(ctx context.Context, resourceGroup, site string) (string, error)
}

// CloudManager combines all provisioning interfaces.
type CloudManager interface {
	IdentityResolver
	ResourceGroupManager
	StorageManager
	DatabaseManager
	VaultManager
	TelemetryManager
	WebAppManager
}
