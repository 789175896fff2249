package commands

import (
	"github.com/spf13/cobra"

	"github.com/secureweb/secureweb/cmd/secureweb/handlers"
)

// Doctor returns the command for diagnosing the local environment.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: auto-detect secureweb.yaml)
func Doctor() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration, credentials, and local tools",
		Long: `Check configuration, credentials, and local tools.

This command verifies everything a provisioning run needs before any
resource is created:

  - The configuration file parses and validates
  - AZURE_SUBSCRIPTION_ID is set and the subscription is reachable
  - The Azure credential resolves to a caller identity
  - Optional local tools (az, psql, python3) are reported

Examples:
  # Diagnose using secureweb.yaml in the current directory
  secureweb doctor

  # Diagnose a specific config
  secureweb doctor -c production.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Doctor(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: secureweb.yaml)")

	return cmd
}
