package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
)

// CreateStorageAccount creates a general-purpose v2 account with LRS
// redundancy. Blob-level public access stays allowed at the account level so
// individual containers can opt in for static asset serving.
func (c *RealClient) CreateStorageAccount(ctx context.Context, resourceGroup, name, location string, tags map[string]string) error {
	poller, err := c.accounts.BeginCreate(ctx, resourceGroup, name, armstorage.AccountCreateParameters{
		Location: to.Ptr(location),
		Tags:     ptrTags(tags),
		Kind:     to.Ptr(armstorage.KindStorageV2),
		SKU: &armstorage.SKU{
			Name: to.Ptr(armstorage.SKUNameStandardLRS),
		},
		Properties: &armstorage.AccountPropertiesCreateParameters{
			AllowBlobPublicAccess:  to.Ptr(true),
			EnableHTTPSTrafficOnly: to.Ptr(true),
			MinimumTLSVersion:      to.Ptr(armstorage.MinimumTLSVersionTLS12),
		},
	}, nil)
	if err == nil {
		_, err = poller.PollUntilDone(ctx, nil)
	}
	if err != nil {
		return fmt.Errorf("failed to create storage account %s: %w", name, err)
	}
	return nil
}

// GetStorageKey returns the account's primary access key.
func (c *RealClient) GetStorageKey(ctx context.Context, resourceGroup, name string) (string, error) {
	resp, err := c.accounts.ListKeys(ctx, resourceGroup, name, nil)
	if err != nil {
		return "", fmt.Errorf("failed to list keys for storage account %s: %w", name, err)
	}
	if len(resp.Keys) == 0 || resp.Keys[0].Value == nil {
		return "", fmt.Errorf("storage account %s returned no keys", name)
	}
	return *resp.Keys[0].Value, nil
}

// CreateBlobContainer creates a container on the account. With publicRead
// the container allows anonymous read access to blobs (not to listings).
func (c *RealClient) CreateBlobContainer(ctx context.Context, resourceGroup, account, name string, publicRead bool) error {
	access := armstorage.PublicAccessNone
	if publicRead {
		access = armstorage.PublicAccessBlob
	}

	_, err := c.containers.Create(ctx, resourceGroup, account, name, armstorage.BlobContainer{
		ContainerProperties: &armstorage.ContainerProperties{
			PublicAccess: to.Ptr(access),
		},
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to create container %s on %s: %w", name, account, err)
	}
	return nil
}
