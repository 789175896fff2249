package steps

import (
	"fmt"

	"github.com/secureweb/secureweb/internal/provisioning"
)

// Preflight verifies the credential works and resolves the caller principal
// before anything is created.
type Preflight struct{}

// NewPreflight creates the preflight step.
func NewPreflight() *Preflight {
	return &Preflight{}
}

// Name implements the provisioning.Step interface.
func (s *Preflight) Name() string { return "preflight" }

// Policy implements the provisioning.Step interface.
func (s *Preflight) Policy() provisioning.Policy { return provisioning.Mandatory }

// Run implements the provisioning.Step interface.
func (s *Preflight) Run(ctx *provisioning.Context) error {
	sub, err := ctx.Cloud.GetSubscription(ctx)
	if err != nil {
		return fmt.Errorf("failed to reach the subscription: %w", err)
	}
	if sub.State != "" && sub.State != "Enabled" {
		return fmt.Errorf("subscription %s is %s, not Enabled", sub.ID, sub.State)
	}
	ctx.State.SubscriptionName = sub.DisplayName

	principal, err := ctx.Cloud.CallerPrincipal(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve the caller principal: %w", err)
	}
	ctx.State.TenantID = principal.TenantID
	ctx.State.ObjectID = principal.ObjectID

	ctx.Observer.Printf("Authenticated to subscription %q as object %s", sub.DisplayName, principal.ObjectID)
	return nil
}
