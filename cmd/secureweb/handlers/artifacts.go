package handlers

import (
	"fmt"

	"github.com/secureweb/secureweb/internal/artifacts"
	"github.com/secureweb/secureweb/internal/provisioning"
)

// writeArtifacts writes the deployment files (for testing injection).
var writeArtifacts = artifacts.WriteAll

// Artifacts generates the local deployment files without provisioning.
func Artifacts(configPath, dir string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	p, err := newPlan(cfg)
	if err != nil {
		return err
	}

	if dir == "" {
		dir = provisioning.DefaultArtifactsDir
	}

	paths, err := writeArtifacts(dir, p)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Deployment files written:")
	for _, path := range paths {
		fmt.Printf("  %s\n", path)
	}
	fmt.Println()
	fmt.Println("Resource names in these files use a fresh suffix; 'secureweb provision'")
	fmt.Println("writes the authoritative set for an actual deployment.")
	fmt.Println()

	return nil
}
