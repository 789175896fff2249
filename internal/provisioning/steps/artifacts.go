package steps

import (
	"fmt"

	"github.com/secureweb/secureweb/internal/artifacts"
	"github.com/secureweb/secureweb/internal/provisioning"
)

// Artifacts writes the local deployment files.
type Artifacts struct{}

// NewArtifacts creates the artifacts step.
func NewArtifacts() *Artifacts {
	return &Artifacts{}
}

// Name implements the provisioning.Step interface.
func (s *Artifacts) Name() string { return "artifacts" }

// Policy implements the provisioning.Step interface.
func (s *Artifacts) Policy() provisioning.Policy { return provisioning.Mandatory }

// Run implements the provisioning.Step interface.
func (s *Artifacts) Run(ctx *provisioning.Context) error {
	paths, err := artifacts.WriteAll(ctx.ArtifactsDir, ctx.Plan)
	if err != nil {
		return fmt.Errorf("failed to write artifacts: %w", err)
	}
	ctx.State.ArtifactPaths = paths

	for _, path := range paths {
		ctx.Observer.Printf("Wrote %s", path)
	}
	return nil
}
