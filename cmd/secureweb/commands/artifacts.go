package commands

import (
	"github.com/spf13/cobra"

	"github.com/secureweb/secureweb/cmd/secureweb/handlers"
)

// Artifacts returns the command for generating local deployment files
// without provisioning.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: auto-detect secureweb.yaml)
//	--dir: Directory to write the files into (default: current directory)
func Artifacts() *cobra.Command {
	var (
		configPath string
		dir        string
	)

	cmd := &cobra.Command{
		Use:   "artifacts",
		Short: "Generate the local deployment files without provisioning",
		Long: `Generate the local deployment files without provisioning.

This command writes the four files a provisioning run would produce:

  requirements.txt  Python dependencies for the App Service build
  .env.template     Environment variables for local development
  startup.sh        Gunicorn startup script for the web app
  web.config        IIS handler declaration

The files reference resource names derived from the configuration with a
fresh suffix; they are meant as editable templates, not as a record of an
actual deployment. 'secureweb provision' writes the authoritative set.

Examples:
  # Write the files into the current directory
  secureweb artifacts

  # Write the files into ./deploy
  secureweb artifacts --dir deploy`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Artifacts(configPath, dir)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: secureweb.yaml)")
	cmd.Flags().StringVar(&dir, "dir", "", "Directory for the generated files (default: current directory)")

	return cmd
}
