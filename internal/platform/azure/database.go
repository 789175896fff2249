package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/postgresql/armpostgresqlflexibleservers"
)

// allowAzureRuleName is the firewall rule admitting Azure-internal traffic.
// The 0.0.0.0 start/end address is the ARM convention for "Azure services",
// not an open-to-the-internet range.
const allowAzureRuleName = "AllowAllAzureServicesAndResources"

// CreateFlexibleServer creates a PostgreSQL 14 flexible server and returns
// its fully qualified domain name. Server creation is by far the slowest
// operation in a run, regularly over five minutes.
func (c *RealClient) CreateFlexibleServer(ctx context.Context, opts FlexibleServerOpts) (string, error) {
	storageGB := opts.StorageGB
	if storageGB == 0 {
		storageGB = 32
	}

	poller, err := c.servers.BeginCreate(ctx, opts.ResourceGroup, opts.Name, armpostgresqlflexibleservers.Server{
		Location: to.Ptr(opts.Location),
		Tags:     ptrTags(opts.Tags),
		SKU: &armpostgresqlflexibleservers.SKU{
			Name: to.Ptr(opts.SKUName),
			Tier: to.Ptr(armpostgresqlflexibleservers.SKUTier(opts.Tier)),
		},
		Properties: &armpostgresqlflexibleservers.ServerProperties{
			CreateMode:                 to.Ptr(armpostgresqlflexibleservers.CreateModeCreate),
			AdministratorLogin:         to.Ptr(opts.AdminUser),
			AdministratorLoginPassword: to.Ptr(opts.AdminPassword),
			Version:                    to.Ptr(armpostgresqlflexibleservers.ServerVersionFourteen),
			Storage: &armpostgresqlflexibleservers.Storage{
				StorageSizeGB: to.Ptr(storageGB),
			},
			Backup: &armpostgresqlflexibleservers.Backup{
				BackupRetentionDays: to.Ptr(int32(7)),
				GeoRedundantBackup:  to.Ptr(armpostgresqlflexibleservers.GeoRedundantBackupEnumDisabled),
			},
			HighAvailability: &armpostgresqlflexibleservers.HighAvailability{
				Mode: to.Ptr(armpostgresqlflexibleservers.HighAvailabilityModeDisabled),
			},
		},
	}, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create database server %s: %w", opts.Name, err)
	}

	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create database server %s: %w", opts.Name, err)
	}

	if resp.Properties == nil || resp.Properties.FullyQualifiedDomainName == nil {
		return "", fmt.Errorf("database server %s came back without a FQDN", opts.Name)
	}
	return *resp.Properties.FullyQualifiedDomainName, nil
}

// CreateDatabase creates a UTF8 database on the server.
func (c *RealClient) CreateDatabase(ctx context.Context, resourceGroup, server, name string) error {
	poller, err := c.databases.BeginCreate(ctx, resourceGroup, server, name, armpostgresqlflexibleservers.Database{
		Properties: &armpostgresqlflexibleservers.DatabaseProperties{
			Charset:   to.Ptr("UTF8"),
			Collation: to.Ptr("en_US.utf8"),
		},
	}, nil)
	if err == nil {
		_, err = poller.PollUntilDone(ctx, nil)
	}
	if err != nil {
		return fmt.Errorf("failed to create database %s on %s: %w", name, server, err)
	}
	return nil
}

// AllowAzureAccess installs the firewall rule that lets Azure services reach
// the server. The web app has no stable outbound address, so this is the
// supported way to let it connect.
func (c *RealClient) AllowAzureAccess(ctx context.Context, resourceGroup, server string) error {
	poller, err := c.firewalls.BeginCreateOrUpdate(ctx, resourceGroup, server, allowAzureRuleName, armpostgresqlflexibleservers.FirewallRule{
		Properties: &armpostgresqlflexibleservers.FirewallRuleProperties{
			StartIPAddress: to.Ptr("0.0.0.0"),
			EndIPAddress:   to.Ptr("0.0.0.0"),
		},
	}, nil)
	if err == nil {
		_, err = poller.PollUntilDone(ctx, nil)
	}
	if err != nil {
		return fmt.Errorf("failed to create firewall rule on %s: %w", server, err)
	}
	return nil
}
