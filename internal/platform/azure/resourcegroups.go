package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

// EnsureResourceGroup creates the resource group or updates its tags if it
// already exists. Resource group creation is one of the few synchronous ARM
// operations.
func (c *RealClient) EnsureResourceGroup(ctx context.Context, name, location string, tags map[string]string) error {
	_, err := c.groups.CreateOrUpdate(ctx, name, armresources.ResourceGroup{
		Location: to.Ptr(location),
		Tags:     ptrTags(tags),
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to create resource group %s: %w", name, err)
	}
	return nil
}
