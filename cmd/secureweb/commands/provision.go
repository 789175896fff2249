package commands

import (
	"github.com/spf13/cobra"

	"github.com/secureweb/secureweb/cmd/secureweb/handlers"
)

// Provision returns the command for provisioning the full deployment.
//
// This command handles the complete lifecycle of one deployment: loading
// configuration, computing the provisioning plan, creating every Azure
// resource in order, and writing the local deployment files and summary.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: auto-detect secureweb.yaml)
//	--artifacts-dir: Directory for the generated deployment files
//	--plain: Plain log output instead of the interactive dashboard
//
// Environment variables:
//
//	AZURE_SUBSCRIPTION_ID: Azure subscription to provision into (required)
func Provision() *cobra.Command {
	var (
		configPath   string
		artifactsDir string
		plain        bool
	)

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Create the full Azure deployment",
		Long: `Create the full Azure deployment for your Django application.

This command provisions a resource group, storage account with static and
media containers, PostgreSQL flexible server, key vault, Application
Insights, and a Linux web app wired to all of them. It also writes the
local deployment files (requirements.txt, .env.template, startup.sh,
web.config) and a summary of everything created.

Each run provisions a fresh set of uniquely named resources; reruns never
modify resources from earlier runs.

If no config file is specified, it looks for secureweb.yaml in the current
directory. Use 'secureweb init' to create a configuration file.

Examples:
  # Provision using secureweb.yaml in the current directory
  secureweb provision

  # Provision using a specific config file
  secureweb provision -c production.yaml

  # Plain log output (CI, or piping to a file)
  secureweb provision --plain`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Provision(cmd.Context(), configPath, artifactsDir, plain)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: secureweb.yaml)")
	cmd.Flags().StringVar(&artifactsDir, "artifacts-dir", "", "Directory for generated deployment files (default: current directory)")
	cmd.Flags().BoolVar(&plain, "plain", false, "Plain log output instead of the interactive dashboard")

	return cmd
}
