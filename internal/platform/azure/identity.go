package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/golang-jwt/jwt/v5"
)

// armScope is the token audience for Azure Resource Manager.
const armScope = "https://management.azure.com/.default"

// CallerPrincipal acquires an ARM token and reads the tenant and object id
// claims out of it. The token was just issued to us by Entra, so the claims
// are read without signature verification; they only feed the vault access
// policy for the identity making the calls anyway.
func (c *RealClient) CallerPrincipal(ctx context.Context) (*Principal, error) {
	token, err := c.credential.GetToken(ctx, policy.TokenRequestOptions{
		Scopes: []string{armScope},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to acquire management token: %w", err)
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token.Token, claims); err != nil {
		return nil, fmt.Errorf("failed to parse management token: %w", err)
	}

	objectID, _ := claims["oid"].(string)
	tenantID, _ := claims["tid"].(string)
	if objectID == "" || tenantID == "" {
		return nil, fmt.Errorf("management token is missing oid/tid claims")
	}

	return &Principal{TenantID: tenantID, ObjectID: objectID}, nil
}

// GetSubscription fetches the target subscription.
func (c *RealClient) GetSubscription(ctx context.Context) (*Subscription, error) {
	resp, err := c.subscriptions.Get(ctx, c.subscriptionID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription %s: %w", c.subscriptionID, err)
	}

	sub := &Subscription{ID: c.subscriptionID}
	if resp.DisplayName != nil {
		sub.DisplayName = *resp.DisplayName
	}
	if resp.State != nil {
		sub.State = string(*resp.State)
	}
	return sub, nil
}
