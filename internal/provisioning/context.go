package provisioning

import (
	"context"

	"github.com/secureweb/secureweb/internal/plan"
	"github.com/secureweb/secureweb/internal/platform/azure"
)

// DefaultArtifactsDir is where local deployment files land unless the caller
// overrides it.
const DefaultArtifactsDir = "."

// Context wraps all dependencies and state needed for a provisioning step.
type Context struct {
	context.Context
	Plan     *plan.Plan
	State    *State
	Cloud    azure.CloudManager
	Observer Observer

	// ArtifactsDir is the directory the artifact and report steps write
	// local files into.
	ArtifactsDir string
}

// NewContext creates a new provisioning context.
func NewContext(ctx context.Context, p *plan.Plan, cloud azure.CloudManager) *Context {
	return &Context{
		Context:      ctx,
		Plan:         p,
		State:        NewState(),
		Cloud:        cloud,
		Observer:     NewConsoleObserver(),
		ArtifactsDir: DefaultArtifactsDir,
	}
}
