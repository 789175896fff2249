package steps

import (
	"fmt"

	"github.com/secureweb/secureweb/internal/platform/azure"
	"github.com/secureweb/secureweb/internal/provisioning"
)

// Vault creates the key vault with an access policy granting the caller full
// secret permissions.
type Vault struct{}

// NewVault creates the vault step.
func NewVault() *Vault {
	return &Vault{}
}

// Name implements the provisioning.Step interface.
func (s *Vault) Name() string { return "vault" }

// Policy implements the provisioning.Step interface.
func (s *Vault) Policy() provisioning.Policy { return provisioning.Mandatory }

// Run implements the provisioning.Step interface.
func (s *Vault) Run(ctx *provisioning.Context) error {
	p := ctx.Plan

	provisioning.LogResourceCreating(ctx.Observer, s.Name(), "key vault", p.VaultName)
	uri, err := ctx.Cloud.CreateVault(ctx, azure.VaultOpts{
		ResourceGroup: p.ResourceGroup,
		Name:          p.VaultName,
		Location:      p.Location,
		TenantID:      ctx.State.TenantID,
		CallerObject:  ctx.State.ObjectID,
		Tags:          p.Tags,
	})
	if err != nil {
		return fmt.Errorf("failed to create key vault: %w", err)
	}
	ctx.State.VaultURI = uri
	provisioning.LogResourceCreated(ctx.Observer, s.Name(), "key vault", p.VaultName, uri)

	return nil
}
