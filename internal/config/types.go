// Package config provides the opinionated deployment configuration schema.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Config is the deployment configuration for secureweb.
// It requires only 3 fields (project, environment, region) to provision a
// production-ready Django hosting stack; everything else has defaults.
type Config struct {
	// Project is the short project name, used as the stem of every resource
	// name. Must be 3-12 lowercase alphanumeric characters starting with a
	// letter so the tightest Azure naming constraints hold downstream.
	Project string `yaml:"project"`

	// Environment selects the deployment environment tag and name segment.
	Environment Environment `yaml:"environment"`

	// Region is the Azure location all resources are created in.
	Region Region `yaml:"region"`

	// Database configures the PostgreSQL flexible server.
	Database Database `yaml:"database,omitempty"`

	// WebApp configures the App Service plan and the Django runtime.
	WebApp WebApp `yaml:"webapp,omitempty"`

	// Tags are merged into the common tag set stamped on every resource.
	Tags map[string]string `yaml:"tags,omitempty"`
}

// Environment is a deployment environment.
type Environment string

const (
	// EnvProduction is the live environment.
	EnvProduction Environment = "production"
	// EnvStaging is the pre-production environment.
	EnvStaging Environment = "staging"
	// EnvDevelopment is the throwaway environment.
	EnvDevelopment Environment = "development"
)

// ValidEnvironments returns all valid environments.
func ValidEnvironments() []Environment {
	return []Environment{EnvProduction, EnvStaging, EnvDevelopment}
}

// IsValid returns true if the environment is recognized.
func (e Environment) IsValid() bool {
	switch e {
	case EnvProduction, EnvStaging, EnvDevelopment:
		return true
	default:
		return false
	}
}

// String returns a human-readable description of the environment.
func (e Environment) String() string {
	switch e {
	case EnvProduction:
		return "production (live traffic)"
	case EnvStaging:
		return "staging (pre-production)"
	case EnvDevelopment:
		return "development (disposable)"
	default:
		return string(e)
	}
}

// Region is an Azure location. Canonical form is the compact lowercase name
// the APIs expect; display forms like "West Europe" are accepted on input and
// normalized before use.
type Region string

const (
	// RegionWestEurope is the Netherlands datacenter (westeurope).
	RegionWestEurope Region = "westeurope"
	// RegionNorthEurope is the Ireland datacenter (northeurope).
	RegionNorthEurope Region = "northeurope"
	// RegionEastUS is the Virginia datacenter (eastus).
	RegionEastUS Region = "eastus"
	// RegionWestUS2 is the Washington datacenter (westus2).
	RegionWestUS2 Region = "westus2"
	// RegionUKSouth is the London datacenter (uksouth).
	RegionUKSouth Region = "uksouth"
	// RegionGermanyWestCentral is the Frankfurt datacenter (germanywestcentral).
	RegionGermanyWestCentral Region = "germanywestcentral"
)

// ValidRegions returns all valid regions in canonical form.
func ValidRegions() []Region {
	return []Region{
		RegionWestEurope,
		RegionNorthEurope,
		RegionEastUS,
		RegionWestUS2,
		RegionUKSouth,
		RegionGermanyWestCentral,
	}
}

// Normalize returns the canonical region name. Display forms ("West Europe")
// and mixed case collapse to the compact lowercase form the APIs expect.
func (r Region) Normalize() Region {
	compact := strings.ToLower(strings.ReplaceAll(string(r), " ", ""))
	return Region(compact)
}

// IsValid returns true if the region, after normalization, is a recognized
// Azure location.
func (r Region) IsValid() bool {
	switch r.Normalize() {
	case RegionWestEurope, RegionNorthEurope, RegionEastUS, RegionWestUS2, RegionUKSouth, RegionGermanyWestCentral:
		return true
	default:
		return false
	}
}

// DisplayName returns the human-readable location name.
func (r Region) DisplayName() string {
	switch r.Normalize() {
	case RegionWestEurope:
		return "West Europe"
	case RegionNorthEurope:
		return "North Europe"
	case RegionEastUS:
		return "East US"
	case RegionWestUS2:
		return "West US 2"
	case RegionUKSouth:
		return "UK South"
	case RegionGermanyWestCentral:
		return "Germany West Central"
	default:
		return string(r)
	}
}

// String returns a human-readable description of the region.
func (r Region) String() string {
	normalized := r.Normalize()
	if !normalized.IsValid() {
		return string(r)
	}
	return fmt.Sprintf("%s (%s)", string(normalized), normalized.DisplayName())
}

// Database configures the PostgreSQL flexible server.
type Database struct {
	// SKU is the compute tier for the server.
	SKU DatabaseSKU `yaml:"sku,omitempty"`

	// AdminUser is the administrator login name.
	AdminUser string `yaml:"adminUser,omitempty"`
}

// DatabaseSKU is a PostgreSQL flexible server compute size.
type DatabaseSKU string

const (
	// DatabaseSKUB1ms is 1 vCore, 2GB RAM, burstable (~€13/mo).
	DatabaseSKUB1ms DatabaseSKU = "Standard_B1ms"
	// DatabaseSKUB2s is 2 vCores, 4GB RAM, burstable (~€26/mo).
	DatabaseSKUB2s DatabaseSKU = "Standard_B2s"
	// DatabaseSKUD2s is 2 vCores, 8GB RAM, general purpose (~€130/mo).
	DatabaseSKUD2s DatabaseSKU = "Standard_D2s_v3"
)

// ValidDatabaseSKUs returns all valid database SKUs.
func ValidDatabaseSKUs() []DatabaseSKU {
	return []DatabaseSKU{DatabaseSKUB1ms, DatabaseSKUB2s, DatabaseSKUD2s}
}

// IsValid returns true if the database SKU is valid.
func (s DatabaseSKU) IsValid() bool {
	switch s {
	case DatabaseSKUB1ms, DatabaseSKUB2s, DatabaseSKUD2s:
		return true
	default:
		return false
	}
}

// Tier returns the pricing tier the SKU belongs to.
func (s DatabaseSKU) Tier() string {
	switch s {
	case DatabaseSKUB1ms, DatabaseSKUB2s:
		return "Burstable"
	case DatabaseSKUD2s:
		return "GeneralPurpose"
	default:
		return ""
	}
}

// String returns a human-readable description of the database SKU.
func (s DatabaseSKU) String() string {
	switch s {
	case DatabaseSKUB1ms:
		return "Standard_B1ms (1 vCore, 2GB RAM, burstable)"
	case DatabaseSKUB2s:
		return "Standard_B2s (2 vCores, 4GB RAM, burstable)"
	case DatabaseSKUD2s:
		return "Standard_D2s_v3 (2 vCores, 8GB RAM, general purpose)"
	default:
		return string(s)
	}
}

// WebApp configures the App Service plan and the Django runtime.
type WebApp struct {
	// SKU is the App Service plan size.
	SKU PlanSKU `yaml:"sku,omitempty"`

	// PythonVersion selects the Linux Python runtime.
	PythonVersion PythonVersion `yaml:"pythonVersion,omitempty"`

	// AllowedHosts overrides Django's ALLOWED_HOSTS. Empty means the web
	// app's own hostname, which is only known after provisioning.
	AllowedHosts string `yaml:"allowedHosts,omitempty"`

	// LogLevel is passed to Django as LOG_LEVEL.
	LogLevel string `yaml:"logLevel,omitempty"`

	// Debug enables Django debug mode. Never enable in production.
	Debug bool `yaml:"debug,omitempty"`
}

// PlanSKU is an App Service plan size.
type PlanSKU string

const (
	// PlanSKUB1 is 1 core, 1.75GB RAM, Basic tier (~€12/mo).
	PlanSKUB1 PlanSKU = "B1"
	// PlanSKUB2 is 2 cores, 3.5GB RAM, Basic tier (~€23/mo).
	PlanSKUB2 PlanSKU = "B2"
	// PlanSKUS1 is 1 core, 1.75GB RAM, Standard tier with slots (~€65/mo).
	PlanSKUS1 PlanSKU = "S1"
	// PlanSKUP1v2 is 1 core, 3.5GB RAM, PremiumV2 tier (~€75/mo).
	PlanSKUP1v2 PlanSKU = "P1v2"
)

// ValidPlanSKUs returns all valid plan SKUs.
func ValidPlanSKUs() []PlanSKU {
	return []PlanSKU{PlanSKUB1, PlanSKUB2, PlanSKUS1, PlanSKUP1v2}
}

// IsValid returns true if the plan SKU is valid.
func (s PlanSKU) IsValid() bool {
	switch s {
	case PlanSKUB1, PlanSKUB2, PlanSKUS1, PlanSKUP1v2:
		return true
	default:
		return false
	}
}

// Tier returns the App Service pricing tier for the SKU.
func (s PlanSKU) Tier() string {
	switch s {
	case PlanSKUB1, PlanSKUB2:
		return "Basic"
	case PlanSKUS1:
		return "Standard"
	case PlanSKUP1v2:
		return "PremiumV2"
	default:
		return ""
	}
}

// String returns a human-readable description of the plan SKU.
func (s PlanSKU) String() string {
	switch s {
	case PlanSKUB1:
		return "B1 (1 core, 1.75GB RAM, Basic)"
	case PlanSKUB2:
		return "B2 (2 cores, 3.5GB RAM, Basic)"
	case PlanSKUS1:
		return "S1 (1 core, 1.75GB RAM, Standard)"
	case PlanSKUP1v2:
		return "P1v2 (1 core, 3.5GB RAM, PremiumV2)"
	default:
		return string(s)
	}
}

// PythonVersion is a supported Linux Python runtime version.
type PythonVersion string

const (
	// Python311 is the current default runtime.
	Python311 PythonVersion = "3.11"
	// Python310 is supported for existing applications.
	Python310 PythonVersion = "3.10"
	// Python39 is supported for existing applications.
	Python39 PythonVersion = "3.9"
)

// ValidPythonVersions returns all supported Python versions.
func ValidPythonVersions() []PythonVersion {
	return []PythonVersion{Python311, Python310, Python39}
}

// IsValid returns true if the Python version is supported.
func (v PythonVersion) IsValid() bool {
	switch v {
	case Python311, Python310, Python39:
		return true
	default:
		return false
	}
}

// LinuxFxVersion returns the App Service runtime stack string.
func (v PythonVersion) LinuxFxVersion() string {
	return fmt.Sprintf("PYTHON|%s", string(v))
}

// String returns a human-readable description of the Python version.
func (v PythonVersion) String() string {
	return fmt.Sprintf("Python %s", string(v))
}

// Defaults applied to fields left empty in the YAML.
const (
	DefaultAdminUser = "dbadmin"
	DefaultLogLevel  = "INFO"
)

// applyDefaults fills in the optional fields the YAML omitted.
func (c *Config) applyDefaults() {
	if c.Database.SKU == "" {
		c.Database.SKU = DatabaseSKUB1ms
	}
	if c.Database.AdminUser == "" {
		c.Database.AdminUser = DefaultAdminUser
	}
	if c.WebApp.SKU == "" {
		c.WebApp.SKU = PlanSKUB1
	}
	if c.WebApp.PythonVersion == "" {
		c.WebApp.PythonVersion = Python311
	}
	if c.WebApp.LogLevel == "" {
		c.WebApp.LogLevel = DefaultLogLevel
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var errs []error

	// Project: required, constrained so every derived resource name fits
	if c.Project == "" {
		errs = append(errs, errors.New("project is required"))
	} else if !isValidProjectName(c.Project) {
		errs = append(errs, errors.New("project must be 3-12 lowercase alphanumeric characters starting with a letter"))
	}

	if !c.Environment.IsValid() {
		errs = append(errs, fmt.Errorf("environment must be one of: %v", ValidEnvironments()))
	}

	if !c.Region.IsValid() {
		errs = append(errs, fmt.Errorf("region must be one of: %v", ValidRegions()))
	}

	if !c.Database.SKU.IsValid() {
		errs = append(errs, fmt.Errorf("database.sku must be one of: %v", ValidDatabaseSKUs()))
	}
	if c.Database.AdminUser == "" {
		errs = append(errs, errors.New("database.adminUser is required"))
	} else if !isValidAdminUser(c.Database.AdminUser) {
		errs = append(errs, errors.New("database.adminUser must be alphanumeric starting with a letter and not a reserved login"))
	}

	if !c.WebApp.SKU.IsValid() {
		errs = append(errs, fmt.Errorf("webapp.sku must be one of: %v", ValidPlanSKUs()))
	}
	if !c.WebApp.PythonVersion.IsValid() {
		errs = append(errs, fmt.Errorf("webapp.pythonVersion must be one of: %v", ValidPythonVersions()))
	}

	if c.Environment == EnvProduction && c.WebApp.Debug {
		errs = append(errs, errors.New("webapp.debug must be false in production"))
	}

	return errors.Join(errs...)
}

// isValidProjectName checks the project name constraint. The bound of 12
// characters keeps the storage account name (project + "stor" + 6-digit
// suffix) within its 24-character limit.
func isValidProjectName(name string) bool {
	if len(name) < 3 || len(name) > 12 {
		return false
	}
	if name[0] < 'a' || name[0] > 'z' {
		return false
	}
	for _, c := range name {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// reservedLogins are administrator names the flexible server rejects.
var reservedLogins = map[string]bool{
	"azure_superuser": true,
	"admin":           true,
	"administrator":   true,
	"root":            true,
	"guest":           true,
	"public":          true,
}

// isValidAdminUser checks the database administrator login constraint.
func isValidAdminUser(name string) bool {
	lower := strings.ToLower(name)
	if reservedLogins[lower] || strings.HasPrefix(lower, "pg_") {
		return false
	}
	first := name[0]
	if (first < 'a' || first > 'z') && (first < 'A' || first > 'Z') {
		return false
	}
	for _, c := range name {
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') && (c < '0' || c > '9') && c != '_' {
			return false
		}
	}
	return true
}
