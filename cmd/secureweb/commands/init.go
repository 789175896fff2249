package commands

import (
	"github.com/spf13/cobra"

	"github.com/secureweb/secureweb/cmd/secureweb/handlers"
)

// Init returns the command for interactively creating a deployment
// configuration.
//
// This command guides users through creating a deployment configuration YAML
// file using an interactive wizard with text inputs and single-select
// prompts.
//
// Flags:
//
//	--output, -o: Path to output file (default "secureweb.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a deployment configuration",
		Long: `Interactively create a deployment configuration file.

This command guides you through configuring your Django deployment
step by step. It will ask about:

  - Project name (used as the stem of every Azure resource name)
  - Deployment environment (production, staging, or development)
  - Azure region
  - PostgreSQL compute size
  - App Service plan size

Everything else (Python version, log level, containers, secret names)
uses production-ready defaults and can be edited in the generated YAML.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "secureweb.yaml", "Output file path")

	return cmd
}
