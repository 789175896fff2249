package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/keyvault/armkeyvault"
	"github.com/Azure/azure-sdk-for-go/sdk/security/keyvault/azsecrets"
)

// CreateVault creates a standard-SKU vault with access-policy authorization
// and grants the calling principal full secret permissions. Returns the
// vault URI for data-plane calls.
func (c *RealClient) CreateVault(ctx context.Context, opts VaultOpts) (string, error) {
	callerPolicy := &armkeyvault.AccessPolicyEntry{
		TenantID: to.Ptr(opts.TenantID),
		ObjectID: to.Ptr(opts.CallerObject),
		Permissions: &armkeyvault.Permissions{
			Secrets: to.SliceOfPtrs(
				armkeyvault.SecretPermissionsGet,
				armkeyvault.SecretPermissionsList,
				armkeyvault.SecretPermissionsSet,
				armkeyvault.SecretPermissionsDelete,
			),
		},
	}

	poller, err := c.vaults.BeginCreateOrUpdate(ctx, opts.ResourceGroup, opts.Name, armkeyvault.VaultCreateOrUpdateParameters{
		Location: to.Ptr(opts.Location),
		Tags:     ptrTags(opts.Tags),
		Properties: &armkeyvault.VaultProperties{
			TenantID: to.Ptr(opts.TenantID),
			SKU: &armkeyvault.SKU{
				Family: to.Ptr(armkeyvault.SKUFamilyA),
				Name:   to.Ptr(armkeyvault.SKUNameStandard),
			},
			AccessPolicies:          []*armkeyvault.AccessPolicyEntry{callerPolicy},
			EnableRbacAuthorization: to.Ptr(false),
		},
	}, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create vault %s: %w", opts.Name, err)
	}

	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create vault %s: %w", opts.Name, err)
	}

	if resp.Properties == nil || resp.Properties.VaultURI == nil {
		return "", fmt.Errorf("vault %s came back without a URI", opts.Name)
	}
	return *resp.Properties.VaultURI, nil
}

// AddAccessPolicy grants a principal the listed secret permissions on an
// existing vault without touching the policies already in place.
func (c *RealClient) AddAccessPolicy(ctx context.Context, resourceGroup, vault, tenantID, objectID string, permissions []SecretPermission) error {
	secretPerms := make([]armkeyvault.SecretPermissions, len(permissions))
	for i, p := range permissions {
		secretPerms[i] = armkeyvault.SecretPermissions(p)
	}

	entry := &armkeyvault.AccessPolicyEntry{
		TenantID: to.Ptr(tenantID),
		ObjectID: to.Ptr(objectID),
		Permissions: &armkeyvault.Permissions{
			Secrets: to.SliceOfPtrs(secretPerms...),
		},
	}

	_, err := c.vaults.UpdateAccessPolicy(ctx, resourceGroup, vault, armkeyvault.AccessPolicyUpdateKindAdd, armkeyvault.VaultAccessPolicyParameters{
		Properties: &armkeyvault.VaultAccessPolicyProperties{
			AccessPolicies: []*armkeyvault.AccessPolicyEntry{entry},
		},
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to add access policy on vault %s: %w", vault, err)
	}
	return nil
}

// SetSecret writes a secret through the data plane and returns the versioned
// secret URI for use in Key Vault references.
func (c *RealClient) SetSecret(ctx context.Context, vaultURI, name, value string) (string, error) {
	client, err := c.secretsClient(vaultURI)
	if err != nil {
		return "", err
	}

	resp, err := client.SetSecret(ctx, name, azsecrets.SetSecretParameters{
		Value: to.Ptr(value),
	}, nil)
	if err != nil {
		return "", fmt.Errorf("failed to set secret %s: %w", name, err)
	}

	if resp.ID == nil {
		return "", fmt.Errorf("secret %s came back without an id", name)
	}
	return string(*resp.ID), nil
}
