package config

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
)

// WizardResult holds the user's choices from the configuration wizard.
type WizardResult struct {
	Project       string
	Environment   Environment
	Region        Region
	DatabaseSKU   DatabaseSKU
	PlanSKU       PlanSKU
	PythonVersion PythonVersion
}

// RunWizard runs the interactive configuration wizard.
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{
		// Defaults
		Environment:   EnvProduction,
		Region:        RegionWestEurope,
		DatabaseSKU:   DatabaseSKUB1ms,
		PlanSKU:       PlanSKUB1,
		PythonVersion: Python311,
	}

	// Build the form
	form := huh.NewForm(
		// Project identity
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Description("A short name used as the stem of every resource name (lowercase alphanumeric)").
				Placeholder("myapp").
				Value(&result.Project).
				Validate(validateProjectName),
		),

		// Environment selection
		huh.NewGroup(
			huh.NewSelect[Environment]().
				Title("Environment").
				Description("Tagged on every resource and embedded in names").
				Options(
					huh.NewOption("Production", EnvProduction),
					huh.NewOption("Staging", EnvStaging),
					huh.NewOption("Development", EnvDevelopment),
				).
				Value(&result.Environment),
		),

		// Region selection
		huh.NewGroup(
			huh.NewSelect[Region]().
				Title("Region").
				Description("Azure location for all resources").
				Options(
					huh.NewOption("West Europe (Netherlands)", RegionWestEurope),
					huh.NewOption("North Europe (Ireland)", RegionNorthEurope),
					huh.NewOption("East US (Virginia)", RegionEastUS),
					huh.NewOption("West US 2 (Washington)", RegionWestUS2),
					huh.NewOption("UK South (London)", RegionUKSouth),
					huh.NewOption("Germany West Central (Frankfurt)", RegionGermanyWestCentral),
				).
				Value(&result.Region),
		),

		// Database tier
		huh.NewGroup(
			huh.NewSelect[DatabaseSKU]().
				Title("Database size").
				Description("PostgreSQL flexible server compute tier").
				Options(
					huh.NewOption("Standard_B1ms - 1 vCore, 2GB RAM (~€13/mo)", DatabaseSKUB1ms),
					huh.NewOption("Standard_B2s - 2 vCores, 4GB RAM (~€26/mo)", DatabaseSKUB2s),
					huh.NewOption("Standard_D2s_v3 - 2 vCores, 8GB RAM (~€130/mo)", DatabaseSKUD2s),
				).
				Value(&result.DatabaseSKU),
		),

		// Web tier
		huh.NewGroup(
			huh.NewSelect[PlanSKU]().
				Title("App Service plan").
				Description("Linux plan size for the web app").
				Options(
					huh.NewOption("B1 - 1 core, 1.75GB RAM (~€12/mo)", PlanSKUB1),
					huh.NewOption("B2 - 2 cores, 3.5GB RAM (~€23/mo)", PlanSKUB2),
					huh.NewOption("S1 - 1 core, Standard tier (~€65/mo)", PlanSKUS1),
					huh.NewOption("P1v2 - 1 core, PremiumV2 tier (~€75/mo)", PlanSKUP1v2),
				).
				Value(&result.PlanSKU),

			huh.NewSelect[PythonVersion]().
				Title("Python version").
				Description("Linux runtime stack for Django").
				Options(
					huh.NewOption("Python 3.11 (recommended)", Python311),
					huh.NewOption("Python 3.10", Python310),
					huh.NewOption("Python 3.9", Python39),
				).
				Value(&result.PythonVersion),
		),
	)

	// Run the form
	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	return result, nil
}

// ToConfig converts the wizard result to a Config.
func (r *WizardResult) ToConfig() *Config {
	cfg := &Config{
		Project:     r.Project,
		Environment: r.Environment,
		Region:      r.Region,
		Database: Database{
			SKU: r.DatabaseSKU,
		},
		WebApp: WebApp{
			SKU:           r.PlanSKU,
			PythonVersion: r.PythonVersion,
		},
	}
	cfg.applyDefaults()
	return cfg
}

// validateProjectName validates the project name wizard input.
func validateProjectName(s string) error {
	if s == "" {
		return fmt.Errorf("project name is required")
	}
	if !isValidProjectName(s) {
		return fmt.Errorf("project name must be 3-12 lowercase alphanumeric characters starting with a letter")
	}
	return nil
}
