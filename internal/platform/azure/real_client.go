package azure

import (
	"fmt"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/applicationinsights/armapplicationinsights"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/keyvault/armkeyvault"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/postgresql/armpostgresqlflexibleservers"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
	"github.com/Azure/azure-sdk-for-go/sdk/security/keyvault/azsecrets"
)

// RealClient implements CloudManager using the Azure SDK.
type RealClient struct {
	credential     azcore.TokenCredential
	subscriptionID string
	clientOptions  *arm.ClientOptions

	groups        *armresources.ResourceGroupsClient
	subscriptions *armsubscriptions.Client
	accounts      *armstorage.AccountsClient
	containers    *armstorage.BlobContainersClient
	servers       *armpostgresqlflexibleservers.ServersClient
	databases     *armpostgresqlflexibleservers.DatabasesClient
	firewalls     *armpostgresqlflexibleservers.FirewallRulesClient
	vaults        *armkeyvault.VaultsClient
	components    *armapplicationinsights.ComponentsClient
	plans         *armappservice.PlansClient
	sites         *armappservice.WebAppsClient

	mu      sync.Mutex
	secrets map[string]*azsecrets.Client
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithCredential sets a custom token credential (useful for testing).
func WithCredential(cred azcore.TokenCredential) ClientOption {
	return func(c *RealClient) {
		c.credential = cred
	}
}

// WithClientOptions sets custom ARM client options, e.g. a different cloud
// configuration or an injected transport.
func WithClientOptions(opts *arm.ClientOptions) ClientOption {
	return func(c *RealClient) {
		c.clientOptions = opts
	}
}

// NewRealClient creates a new RealClient for the given subscription. Without
// WithCredential it builds the default credential chain (environment,
// workload identity, managed identity, Azure CLI).
func NewRealClient(subscriptionID string, opts ...ClientOption) (*RealClient, error) {
	if subscriptionID == "" {
		return nil, fmt.Errorf("subscription id is required")
	}

	c := &RealClient{
		subscriptionID: subscriptionID,
		secrets:        make(map[string]*azsecrets.Client),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.credential == nil {
		cred, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to build credential chain: %w", err)
		}
		c.credential = cred
	}

	if err := c.buildClients(); err != nil {
		return nil, err
	}
	return c, nil
}

// buildClients constructs one management client per resource family.
func (c *RealClient) buildClients() error {
	var err error
	if c.groups, err = armresources.NewResourceGroupsClient(c.subscriptionID, c.credential, c.clientOptions); err != nil {
		return fmt.Errorf("failed to create resource groups client: %w", err)
	}
	if c.subscriptions, err = armsubscriptions.NewClient(c.credential, c.clientOptions); err != nil {
		return fmt.Errorf("failed to create subscriptions client: %w", err)
	}
	if c.accounts, err = armstorage.NewAccountsClient(c.subscriptionID, c.credential, c.clientOptions); err != nil {
		return fmt.Errorf("failed to create storage accounts client: %w", err)
	}
	if c.containers, err = armstorage.NewBlobContainersClient(c.subscriptionID, c.credential, c.clientOptions); err != nil {
		return fmt.Errorf("failed to create blob containers client: %w", err)
	}
	if c.servers, err = armpostgresqlflexibleservers.NewServersClient(c.subscriptionID, c.credential, c.clientOptions); err != nil {
		return fmt.Errorf("failed to create flexible servers client: %w", err)
	}
	if c.databases, err = armpostgresqlflexibleservers.NewDatabasesClient(c.subscriptionID, c.credential, c.clientOptions); err != nil {
		return fmt.Errorf("failed to create databases client: %w", err)
	}
	if c.firewalls, err = armpostgresqlflexibleservers.NewFirewallRulesClient(c.subscriptionID, c.credential, c.clientOptions); err != nil {
		return fmt.Errorf("failed to create firewall rules client: %w", err)
	}
	if c.vaults, err = armkeyvault.NewVaultsClient(c.subscriptionID, c.credential, c.clientOptions); err != nil {
		return fmt.Errorf("failed to create vaults client: %w", err)
	}
	if c.components, err = armapplicationinsights.NewComponentsClient(c.subscriptionID, c.credential, c.clientOptions); err != nil {
		return fmt.Errorf("failed to create insights components client: %w", err)
	}
	if c.plans, err = armappservice.NewPlansClient(c.subscriptionID, c.credential, c.clientOptions); err != nil {
		return fmt.Errorf("failed to create app service plans client: %w", err)
	}
	if c.sites, err = armappservice.NewWebAppsClient(c.subscriptionID, c.credential, c.clientOptions); err != nil {
		return fmt.Errorf("failed to create web apps client: %w", err)
	}
	return nil
}

// secretsClient returns the data-plane client for a vault URI, creating it
// on first use.
func (c *RealClient) secretsClient(vaultURI string) (*azsecrets.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if client, ok := c.secrets[vaultURI]; ok {
		return client, nil
	}
	client, err := azsecrets.NewClient(vaultURI, c.credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create secrets client for %s: %w", vaultURI, err)
	}
	c.secrets[vaultURI] = client
	return client, nil
}

// SubscriptionID returns the subscription the client operates on.
func (c *RealClient) SubscriptionID() string {
	return c.subscriptionID
}

// ptrTags converts a tag map to the pointer-valued map the SDK expects.
func ptrTags(tags map[string]string) map[string]*string {
	out := make(map[string]*string, len(tags))
	for k, v := range tags {
		out[k] = to.Ptr(v)
	}
	return out
}
