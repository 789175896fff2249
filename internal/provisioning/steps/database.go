package steps

import (
	"fmt"

	"github.com/secureweb/secureweb/internal/platform/azure"
	"github.com/secureweb/secureweb/internal/provisioning"
)

// databaseStorageGB is the provisioned disk size for the flexible server.
const databaseStorageGB = 32

// Database creates the PostgreSQL flexible server, the application database
// on it, and the firewall rule admitting Azure services.
type Database struct{}

// NewDatabase creates the database step.
func NewDatabase() *Database {
	return &Database{}
}

// Name implements the provisioning.Step interface.
func (s *Database) Name() string { return "database" }

// Policy implements the provisioning.Step interface.
func (s *Database) Policy() provisioning.Policy { return provisioning.Mandatory }

// Run implements the provisioning.Step interface.
func (s *Database) Run(ctx *provisioning.Context) error {
	p := ctx.Plan

	provisioning.LogResourceCreating(ctx.Observer, s.Name(), "flexible server", p.ServerName)
	fqdn, err := ctx.Cloud.CreateFlexibleServer(ctx, azure.FlexibleServerOpts{
		ResourceGroup: p.ResourceGroup,
		Name:          p.ServerName,
		Location:      p.Location,
		AdminUser:     p.AdminUser,
		AdminPassword: p.AdminPassword,
		SKUName:       p.DatabaseSKU,
		Tier:          p.DatabaseTier,
		StorageGB:     databaseStorageGB,
		Tags:          p.Tags,
	})
	if err != nil {
		return fmt.Errorf("failed to create flexible server: %w", err)
	}
	ctx.State.ServerFQDN = fqdn
	provisioning.LogResourceCreated(ctx.Observer, s.Name(), "flexible server", p.ServerName, fqdn)

	provisioning.LogResourceCreating(ctx.Observer, s.Name(), "database", p.DatabaseName)
	if err := ctx.Cloud.CreateDatabase(ctx, p.ResourceGroup, p.ServerName, p.DatabaseName); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	provisioning.LogResourceCreated(ctx.Observer, s.Name(), "database", p.DatabaseName, p.DatabaseName)

	if err := ctx.Cloud.AllowAzureAccess(ctx, p.ResourceGroup, p.ServerName); err != nil {
		return fmt.Errorf("failed to open firewall for Azure services: %w", err)
	}
	ctx.Observer.Printf("Firewall on %s admits Azure services", p.ServerName)

	return nil
}
