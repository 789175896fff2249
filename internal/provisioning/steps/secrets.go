package steps

import (
	"fmt"

	"github.com/secureweb/secureweb/internal/plan"
	"github.com/secureweb/secureweb/internal/provisioning"
)

// Secret writes one value into the vault. Each secret is its own best-effort
// step: a failed write is logged and reported but never aborts the run, and
// the remaining secrets are still attempted.
type Secret struct {
	secretName string
	value      func(ctx *provisioning.Context) string
}

// NewDjangoKeySecret stores the generated Django secret key.
func NewDjangoKeySecret() *Secret {
	return &Secret{
		secretName: plan.SecretNameDjangoKey,
		value: func(ctx *provisioning.Context) string {
			return ctx.Plan.SecretKey
		},
	}
}

// NewDatabasePasswordSecret stores the generated database admin password.
func NewDatabasePasswordSecret() *Secret {
	return &Secret{
		secretName: plan.SecretNameDatabasePassword,
		value: func(ctx *provisioning.Context) string {
			return ctx.Plan.AdminPassword
		},
	}
}

// NewStorageKeySecret stores the storage account key the storage step read.
func NewStorageKeySecret() *Secret {
	return &Secret{
		secretName: plan.SecretNameStorageKey,
		value: func(ctx *provisioning.Context) string {
			return ctx.State.StorageKey
		},
	}
}

// Name implements the provisioning.Step interface.
func (s *Secret) Name() string { return "secret " + s.secretName }

// Policy implements the provisioning.Step interface.
func (s *Secret) Policy() provisioning.Policy { return provisioning.BestEffort }

// Run implements the provisioning.Step interface.
func (s *Secret) Run(ctx *provisioning.Context) error {
	value := s.value(ctx)
	if value == "" {
		return fmt.Errorf("no value available for secret %s", s.secretName)
	}

	uri, err := ctx.Cloud.SetSecret(ctx, ctx.State.VaultURI, s.secretName, value)
	if err != nil {
		return fmt.Errorf("failed to write secret %s: %w", s.secretName, err)
	}
	ctx.State.SecretURIs[s.secretName] = uri

	ctx.Observer.Printf("Stored secret %s", s.secretName)
	return nil
}
