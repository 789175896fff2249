package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/applicationinsights/armapplicationinsights"
)

// CreateInsightsComponent creates a web-kind Application Insights component
// and returns its instrumentation key and connection string.
func (c *RealClient) CreateInsightsComponent(ctx context.Context, resourceGroup, name, location string, tags map[string]string) (*TelemetryComponent, error) {
	resp, err := c.components.CreateOrUpdate(ctx, resourceGroup, name, armapplicationinsights.Component{
		Location: to.Ptr(location),
		Tags:     ptrTags(tags),
		Kind:     to.Ptr("web"),
		Properties: &armapplicationinsights.ComponentProperties{
			ApplicationType: to.Ptr(armapplicationinsights.ApplicationTypeWeb),
			RequestSource:   to.Ptr(armapplicationinsights.RequestSourceRest),
		},
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create insights component %s: %w", name, err)
	}

	component := &TelemetryComponent{}
	if resp.Properties != nil {
		if resp.Properties.InstrumentationKey != nil {
			component.InstrumentationKey = *resp.Properties.InstrumentationKey
		}
		if resp.Properties.ConnectionString != nil {
			component.ConnectionString = *resp.Properties.ConnectionString
		}
	}
	if component.InstrumentationKey == "" {
		return nil, fmt.Errorf("insights component %s came back without an instrumentation key", name)
	}
	return component, nil
}
