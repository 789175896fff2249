package steps

import (
	"fmt"

	"github.com/secureweb/secureweb/internal/plan"
	"github.com/secureweb/secureweb/internal/provisioning"
)

// Storage creates the storage account, reads its primary key, and creates
// the static and media blob containers.
type Storage struct{}

// NewStorage creates the storage step.
func NewStorage() *Storage {
	return &Storage{}
}

// Name implements the provisioning.Step interface.
func (s *Storage) Name() string { return "storage" }

// Policy implements the provisioning.Step interface.
func (s *Storage) Policy() provisioning.Policy { return provisioning.Mandatory }

// Run implements the provisioning.Step interface.
func (s *Storage) Run(ctx *provisioning.Context) error {
	p := ctx.Plan

	provisioning.LogResourceCreating(ctx.Observer, s.Name(), "storage account", p.StorageAccount)
	if err := ctx.Cloud.CreateStorageAccount(ctx, p.ResourceGroup, p.StorageAccount, p.Location, p.Tags); err != nil {
		return fmt.Errorf("failed to create storage account: %w", err)
	}
	provisioning.LogResourceCreated(ctx.Observer, s.Name(), "storage account", p.StorageAccount, p.StorageAccount)

	key, err := ctx.Cloud.GetStorageKey(ctx, p.ResourceGroup, p.StorageAccount)
	if err != nil {
		return fmt.Errorf("failed to read storage key: %w", err)
	}
	ctx.State.StorageKey = key

	// Both containers serve assets to anonymous browsers, so blob-level
	// public read is on for each.
	for _, container := range []string{plan.StaticContainer, plan.MediaContainer} {
		provisioning.LogResourceCreating(ctx.Observer, s.Name(), "blob container", container)
		if err := ctx.Cloud.CreateBlobContainer(ctx, p.ResourceGroup, p.StorageAccount, container, true); err != nil {
			return fmt.Errorf("failed to create container %s: %w", container, err)
		}
		provisioning.LogResourceCreated(ctx.Observer, s.Name(), "blob container", container, container)
	}

	return nil
}
