// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/secureweb/secureweb/internal/config"
	"github.com/secureweb/secureweb/internal/plan"
	"github.com/secureweb/secureweb/internal/platform/azure"
	"github.com/secureweb/secureweb/internal/provisioning"
	"github.com/secureweb/secureweb/internal/provisioning/steps"
	"github.com/secureweb/secureweb/internal/ui/tui"
)

// subscriptionEnv names the environment variable holding the target
// subscription id.
const subscriptionEnv = "AZURE_SUBSCRIPTION_ID"

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// newCloudClient creates a new Azure client.
	newCloudClient = func(subscriptionID string) (azure.CloudManager, error) {
		return azure.NewRealClient(subscriptionID)
	}

	// newPlan computes the provisioning plan from a configuration.
	newPlan = plan.New

	// provisionSteps returns the ordered step list for one run.
	provisionSteps = steps.ForPlan

	// runSteps executes the step pipeline.
	runSteps = provisioning.RunSteps

	// runProvisionTUI wraps the pipeline in the interactive dashboard.
	runProvisionTUI = tui.RunProvisionTUI

	// isTerminal reports whether stdout is an interactive terminal.
	isTerminal = isInteractiveTTY

	// loadConfigFile loads config from file (for testing injection).
	loadConfigFile = config.Load

	// findConfigFile finds the default config file (for testing injection).
	findConfigFile = config.FindConfigFile
)

// Provision creates the full Azure deployment described by the configuration.
//
// This function orchestrates the complete provisioning workflow:
//  1. Loads and validates the deployment configuration
//  2. Computes the provisioning plan (resource names, SKUs, fresh credentials)
//  3. Initializes the Azure client using AZURE_SUBSCRIPTION_ID from the environment
//  4. Runs the ordered step pipeline, resource group through web app
//  5. Writes the local deployment files and the deployment summary
//
// On interactive terminals the run is wrapped in a live dashboard; --plain or
// a non-TTY stdout falls back to line-oriented logs. A mandatory step failure
// aborts the run and leaves already created resources in place for manual
// cleanup; best-effort failures are collected and reported in the summary.
func Provision(ctx context.Context, configPath, artifactsDir string, plain bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	p, err := newPlan(cfg)
	if err != nil {
		return err
	}

	cloud, err := initializeCloud()
	if err != nil {
		return err
	}

	pctx := provisioning.NewContext(ctx, p, cloud)
	if artifactsDir != "" {
		pctx.ArtifactsDir = artifactsDir
	}

	stepList := provisionSteps()

	if plain || !isTerminal() {
		log.Printf("Provisioning %s (%s) in %s", p.Project, p.Environment, p.Location)
		if err := runSteps(pctx, stepList); err != nil {
			return err
		}
	} else {
		names := make([]string, len(stepList))
		for i, s := range stepList {
			names[i] = s.Name()
		}
		err := runProvisionTUI(ctx, p.Project, p.Environment, p.Location, names, func(observer provisioning.Observer) error {
			pctx.Observer = observer
			return runSteps(pctx, stepList)
		})
		if err != nil {
			return err
		}
	}

	printProvisionSummary(p, pctx.State)
	return nil
}

// initializeCloud creates an Azure client for the subscription named by
// AZURE_SUBSCRIPTION_ID. Credential validation is delegated to the client.
func initializeCloud() (azure.CloudManager, error) {
	subscriptionID := os.Getenv(subscriptionEnv)
	if subscriptionID == "" {
		return nil, fmt.Errorf("%s is not set", subscriptionEnv)
	}
	return newCloudClient(subscriptionID)
}

// loadConfig loads and validates the deployment configuration.
// If configPath is empty, it looks for secureweb.yaml in the current directory.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		path, err := findConfigFile()
		if err != nil {
			return nil, fmt.Errorf("no config file found: %w\nRun 'secureweb init' to create one", err)
		}
		configPath = path
	}

	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}

// summaryEntry represents a single deployment detail for display.
type summaryEntry struct {
	Category string
	Name     string
	Value    string
}

// collectSummaryEntries flattens the run results into display rows. The
// database password is printed because the summary is the operator's only
// copy outside the vault.
func collectSummaryEntries(p *plan.Plan, state *provisioning.State) []summaryEntry {
	hostname := state.Hostname
	if hostname == "" {
		hostname = p.Hostname()
	}

	entries := []summaryEntry{
		{Category: "Application", Name: "url", Value: "https://" + hostname},
		{Category: "Application", Name: "web app", Value: p.WebAppName},
		{Category: "Application", Name: "resource group", Value: p.ResourceGroup},

		{Category: "Database", Name: "server", Value: p.ServerFQDN()},
		{Category: "Database", Name: "database", Value: p.DatabaseName},
		{Category: "Database", Name: "admin user", Value: p.AdminUser},
		{Category: "Database", Name: "admin password", Value: p.AdminPassword},

		{Category: "Storage", Name: "account", Value: p.StorageAccount},
		{Category: "Storage", Name: "containers", Value: plan.StaticContainer + ", " + plan.MediaContainer},
	}

	if state.VaultURI != "" {
		entries = append(entries, summaryEntry{Category: "Key Vault", Name: "vault", Value: state.VaultURI})
		for _, name := range []string{plan.SecretNameDjangoKey, plan.SecretNameDatabasePassword, plan.SecretNameStorageKey} {
			if uri := state.SecretURI(name); uri != "" {
				entries = append(entries, summaryEntry{Category: "Key Vault", Name: name, Value: uri})
			}
		}
	}

	for _, path := range state.ArtifactPaths {
		entries = append(entries, summaryEntry{Category: "Files", Name: "artifact", Value: path})
	}
	if state.SummaryPath != "" {
		entries = append(entries, summaryEntry{Category: "Files", Name: "summary", Value: state.SummaryPath})
	}

	for _, f := range state.Failures {
		entries = append(entries, summaryEntry{Category: "Warnings", Name: f.Step, Value: f.Err.Error()})
	}

	return entries
}

func printProvisionSummary(p *plan.Plan, state *provisioning.State) {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f9fafb"))
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3b82f6"))
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))

	fmt.Println()
	fmt.Println(titleStyle.Render(fmt.Sprintf("  secureweb deployment: %s (%s)", p.Project, p.Environment)))
	fmt.Println(dimStyle.Render("  " + strings.Repeat("=", 30)))
	fmt.Println()

	currentCategory := ""
	for _, entry := range collectSummaryEntries(p, state) {
		if entry.Category != currentCategory {
			if currentCategory != "" {
				fmt.Println()
			}
			fmt.Println(sectionStyle.Render("  " + entry.Category))
			fmt.Println(dimStyle.Render("  " + strings.Repeat("-", 35)))
			currentCategory = entry.Category
		}
		fmt.Printf("  %s  %s\n", nameStyle.Render(fmt.Sprintf("%-18s", entry.Name)), valueStyle.Render(entry.Value))
	}

	fmt.Println()
	fmt.Println(dimStyle.Render("  Deploy your code with: az webapp deployment source config-zip"))
	fmt.Println()
}

func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
