package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/secureweb/secureweb/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the configuration wizard.
	runWizard = config.RunWizard

	// saveConfig writes the config to a file.
	saveConfig = config.Save
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return err
	}

	cfg := result.ToConfig()

	if err := saveConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("secureweb - Django hosting on Azure")
	fmt.Println("===================================")
	fmt.Println()
	fmt.Println("This wizard creates a deployment configuration with sensible defaults.")
	fmt.Println("Just answer 5 simple questions.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	// Summary
	fmt.Println("Deployment Summary")
	fmt.Println("------------------")
	fmt.Printf("  Project:     %s\n", cfg.Project)
	fmt.Printf("  Environment: %s\n", cfg.Environment)
	fmt.Printf("  Region:      %s\n", cfg.Region.String())
	fmt.Printf("  Database:    %s\n", cfg.Database.SKU)
	fmt.Printf("  Web plan:    %s\n", cfg.WebApp.SKU)
	fmt.Printf("  Runtime:     %s\n", cfg.WebApp.PythonVersion)
	fmt.Println()

	// Resources created on provision
	fmt.Println("Provisioned Resources")
	fmt.Println("---------------------")
	fmt.Println("  - Resource group (everything lives here)")
	fmt.Println("  - Storage account (static and media containers)")
	fmt.Println("  - PostgreSQL flexible server (TLS enforced)")
	fmt.Println("  - Key vault (credentials stored as secrets)")
	fmt.Println("  - Application Insights (telemetry)")
	fmt.Println("  - Linux web app (HTTPS only, managed identity)")
	fmt.Println()

	// Next steps
	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Println("  1. Set your Azure subscription:")
	fmt.Println("     export AZURE_SUBSCRIPTION_ID=<your-subscription-id>")
	fmt.Println()
	fmt.Printf("  2. Review %s if needed\n", outputPath)
	fmt.Println()
	fmt.Println("  3. Provision the deployment:")
	fmt.Printf("     secureweb provision\n")
	fmt.Println()
}
