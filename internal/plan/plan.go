// Package plan computes the provisioning plan: every resource name, SKU
// choice, tag, and generated credential for one run. The plan is immutable
// once computed and never persisted; a rerun derives a fresh plan with a new
// suffix instead of reconciling with existing resources.
package plan

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/secureweb/secureweb/internal/config"
	"github.com/secureweb/secureweb/internal/util/naming"
	"github.com/secureweb/secureweb/internal/util/secretgen"
)

// Blob containers created on the storage account.
const (
	StaticContainer = "static"
	MediaContainer  = "media"
)

// Vault secret names.
const (
	SecretNameDjangoKey        = "django-secret-key"
	SecretNameDatabasePassword = "database-password"
	SecretNameStorageKey       = "storage-account-key"
)

// Injection points for tests.
var (
	now          = time.Now
	newRunID     = uuid.NewString
	newPassword  = secretgen.Password
	newSecretKey = secretgen.SecretKey
)

// Plan holds everything one provisioning run creates or configures.
type Plan struct {
	RunID     string
	CreatedAt time.Time
	Suffix    string

	Project     string
	Environment string
	Location    string
	Tags        map[string]string

	ResourceGroup  string
	StorageAccount string
	ServerName     string
	DatabaseName   string
	VaultName      string
	InsightsName   string
	PlanName       string
	WebAppName     string

	DatabaseSKU  string
	DatabaseTier string
	PlanSKU      string
	PlanTier     string
	LinuxFx      string

	AdminUser     string
	AdminPassword string
	SecretKey     string

	AllowedHosts string
	LogLevel     string
	Debug        bool
}

// New computes a plan from a validated configuration. Credentials are
// generated here exactly once; every later step reads them from the plan.
func New(cfg *config.Config) (*Plan, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	createdAt := now()
	suffix := naming.Suffix(createdAt)
	region := cfg.Region.Normalize()
	env := string(cfg.Environment)

	password, err := newPassword()
	if err != nil {
		return nil, err
	}
	secretKey, err := newSecretKey()
	if err != nil {
		return nil, err
	}

	p := &Plan{
		RunID:     newRunID(),
		CreatedAt: createdAt,
		Suffix:    suffix,

		Project:     cfg.Project,
		Environment: env,
		Location:    string(region),
		Tags: map[string]string{
			"project":     cfg.Project,
			"environment": env,
			"created-by":  "secureweb",
		},

		ResourceGroup:  naming.ResourceGroup(cfg.Project, env),
		StorageAccount: naming.StorageAccount(cfg.Project, suffix),
		ServerName:     naming.DatabaseServer(cfg.Project, suffix),
		DatabaseName:   naming.Database(cfg.Project),
		VaultName:      naming.KeyVault(cfg.Project, suffix),
		InsightsName:   naming.AppInsights(cfg.Project, env),
		PlanName:       naming.AppServicePlan(cfg.Project, env),
		WebAppName:     naming.WebApp(cfg.Project, env, suffix),

		DatabaseSKU:  string(cfg.Database.SKU),
		DatabaseTier: cfg.Database.SKU.Tier(),
		PlanSKU:      string(cfg.WebApp.SKU),
		PlanTier:     cfg.WebApp.SKU.Tier(),
		LinuxFx:      cfg.WebApp.PythonVersion.LinuxFxVersion(),

		AdminUser:     cfg.Database.AdminUser,
		AdminPassword: password,
		SecretKey:     secretKey,

		AllowedHosts: cfg.WebApp.AllowedHosts,
		LogLevel:     cfg.WebApp.LogLevel,
		Debug:        cfg.WebApp.Debug,
	}

	for k, v := range cfg.Tags {
		p.Tags[k] = v
	}

	if p.AllowedHosts == "" {
		p.AllowedHosts = p.Hostname()
	}

	return p, nil
}

// ServerFQDN returns the database server's public hostname.
func (p *Plan) ServerFQDN() string {
	return naming.ServerFQDN(p.ServerName)
}

// Hostname returns the web app's default hostname.
func (p *Plan) Hostname() string {
	return naming.SiteHostname(p.WebAppName)
}

// VaultURI returns the vault's data-plane endpoint.
func (p *Plan) VaultURI() string {
	return naming.VaultURI(p.VaultName)
}

// ConnectionString assembles the Django DATABASE_URL value. The password is
// embedded literally, which is why its charset is URL-safe.
func (p *Plan) ConnectionString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:5432/%s?sslmode=require",
		p.AdminUser, p.AdminPassword, p.ServerFQDN(), p.DatabaseName)
}

// SiteURL returns the HTTPS URL the deployed application answers on.
func (p *Plan) SiteURL() string {
	return fmt.Sprintf("https://%s", p.Hostname())
}
