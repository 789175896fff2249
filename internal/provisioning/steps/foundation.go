package steps

import (
	"fmt"

	"github.com/secureweb/secureweb/internal/provisioning"
)

// Foundation creates the resource group every other resource lands in.
type Foundation struct{}

// NewFoundation creates the foundation step.
func NewFoundation() *Foundation {
	return &Foundation{}
}

// Name implements the provisioning.Step interface.
func (s *Foundation) Name() string { return "foundation" }

// Policy implements the provisioning.Step interface.
func (s *Foundation) Policy() provisioning.Policy { return provisioning.Mandatory }

// Run implements the provisioning.Step interface.
func (s *Foundation) Run(ctx *provisioning.Context) error {
	p := ctx.Plan

	provisioning.LogResourceCreating(ctx.Observer, s.Name(), "resource group", p.ResourceGroup)
	if err := ctx.Cloud.EnsureResourceGroup(ctx, p.ResourceGroup, p.Location, p.Tags); err != nil {
		return fmt.Errorf("failed to ensure resource group: %w", err)
	}
	provisioning.LogResourceCreated(ctx.Observer, s.Name(), "resource group", p.ResourceGroup, p.ResourceGroup)

	return nil
}
