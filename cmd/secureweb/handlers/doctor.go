package handlers

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/secureweb/secureweb/internal/util/prerequisites"
)

// checkOptionalTools lists advisory client tools (for testing injection).
var checkOptionalTools = prerequisites.CheckAll

// Doctor checks everything a provisioning run needs before any resource is
// created: the configuration file, the subscription, the credential, and the
// advisory local tools. It returns an error when any load-bearing check
// fails; missing optional tools are reported but never fail the run.
func Doctor(ctx context.Context, configPath string) error {
	fmt.Println()
	title := "secureweb doctor"
	fmt.Printf("  %s\n", title)
	fmt.Println("  " + strings.Repeat("=", len(title)))
	fmt.Println()

	failures := 0

	fmt.Println("  Configuration")
	fmt.Println("  " + strings.Repeat("-", 35))
	failures += checkConfiguration(configPath)
	fmt.Println()

	fmt.Println("  Azure")
	fmt.Println("  " + strings.Repeat("-", 35))
	failures += checkAzureAccess(ctx)
	fmt.Println()

	fmt.Println("  Optional Tools")
	fmt.Println("  " + strings.Repeat("-", 35))
	results := checkOptionalTools()
	for _, r := range results.Results {
		extra := r.Version
		if !r.Found {
			extra = "not found, see " + r.Tool.InstallURL
		}
		printCheckRow(r.Tool.Name, r.Found, extra)
	}
	fmt.Println()

	if failures > 0 {
		return fmt.Errorf("%d check(s) failed", failures)
	}

	fmt.Println("  All checks passed. Run 'secureweb provision' to deploy.")
	fmt.Println()
	return nil
}

// checkConfiguration verifies the config file exists, parses, and validates.
func checkConfiguration(configPath string) int {
	path := configPath
	if path == "" {
		found, err := findConfigFile()
		if err != nil {
			printCheckRow("config file", false, "not found, run 'secureweb init' to create one")
			return 1
		}
		path = found
	}

	cfg, err := loadConfigFile(path)
	if err != nil {
		printCheckRow("config file", false, err.Error())
		return 1
	}

	printCheckRow("config file", true, path)
	printCheckRow("project", true, fmt.Sprintf("%s (%s)", cfg.Project, cfg.Environment))
	printCheckRow("region", true, string(cfg.Region.Normalize()))
	return 0
}

// checkAzureAccess probes the subscription and the credential. The
// subscription read doubles as the cheapest possible authentication check.
func checkAzureAccess(ctx context.Context) int {
	subscriptionID := os.Getenv(subscriptionEnv)
	if subscriptionID == "" {
		printCheckRow("subscription", false, subscriptionEnv+" is not set")
		return 1
	}

	cloud, err := newCloudClient(subscriptionID)
	if err != nil {
		printCheckRow("credential", false, err.Error())
		return 1
	}

	failures := 0

	sub, err := cloud.GetSubscription(ctx)
	if err != nil {
		printCheckRow("subscription", false, err.Error())
		failures++
	} else {
		printCheckRow("subscription", true, fmt.Sprintf("%s (%s)", sub.DisplayName, sub.State))
	}

	principal, err := cloud.CallerPrincipal(ctx)
	if err != nil {
		printCheckRow("credential", false, err.Error())
		failures++
	} else {
		printCheckRow("credential", true, "object "+principal.ObjectID)
	}

	return failures
}

func printCheckRow(name string, ok bool, extra string) {
	indicator := "[OK]"
	if !ok {
		indicator = "[!!]"
	}

	if extra != "" {
		fmt.Printf("  %s  %-20s %s\n", indicator, name, extra)
	} else {
		fmt.Printf("  %s  %s\n", indicator, name)
	}
}
