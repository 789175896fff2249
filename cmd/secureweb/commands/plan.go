package commands

import (
	"github.com/spf13/cobra"

	"github.com/secureweb/secureweb/cmd/secureweb/handlers"
)

// Plan returns the command for previewing a provisioning run.
//
// This command computes the full provisioning plan (resource names, SKUs,
// tags) from the configuration without creating anything, so users can
// review what 'secureweb provision' would do.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: auto-detect secureweb.yaml)
//	--json: Output the plan as JSON
func Plan() *cobra.Command {
	var (
		configPath string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Preview the resources a provisioning run would create",
		Long: `Preview the resources a provisioning run would create.

This command computes every resource name, SKU choice, and tag from the
configuration and prints them without touching Azure. Generated credentials
are redacted; the real values are generated fresh on 'secureweb provision'.

Note that resource names carry a timestamp-derived suffix, so the names
shown here differ from the names an actual provisioning run creates.

Examples:
  # Preview using secureweb.yaml in the current directory
  secureweb plan

  # Preview a specific config as JSON
  secureweb plan -c production.yaml --json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Plan(configPath, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: secureweb.yaml)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the plan as JSON")

	return cmd
}
