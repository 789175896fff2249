package naming

import (
	"fmt"
	"strconv"
	"time"
)

// Naming functions for deployment resources.
// Globally unique names (storage, database server, vault, web app) embed a
// run suffix; subscription-scoped names (resource group, plan, insights) stay
// stable across runs so the summary reads predictably.

// SuffixLength is the number of trailing timestamp digits kept in unique
// names. Six digits roll over every second, which is the granularity the
// uniqueness guarantee needs between consecutive runs.
const SuffixLength = 6

// Suffix derives the run suffix from the given time: the trailing digits of
// the Unix timestamp, truncated so the longest composed name still fits the
// tightest Azure limit (24 characters for storage accounts and vaults).
func Suffix(t time.Time) string {
	s := strconv.FormatInt(t.Unix(), 10)
	if len(s) > SuffixLength {
		s = s[len(s)-SuffixLength:]
	}
	return s
}

func ResourceGroup(project, environment string) string {
	return fmt.Sprintf("%s-%s-rg", project, environment)
}

// StorageAccount must be 3-24 lowercase alphanumeric characters, so it is the
// one name composed without separators.
func StorageAccount(project, suffix string) string {
	return fmt.Sprintf("%sstor%s", project, suffix)
}

// KeyVault must be 3-24 characters starting with a letter.
func KeyVault(project, suffix string) string {
	return fmt.Sprintf("%s-kv-%s", project, suffix)
}

func DatabaseServer(project, suffix string) string {
	return fmt.Sprintf("%s-db-%s", project, suffix)
}

func Database(project string) string {
	return fmt.Sprintf("%sdb", project)
}

func WebApp(project, environment, suffix string) string {
	return fmt.Sprintf("%s-%s-%s", project, environment, suffix)
}

func AppServicePlan(project, environment string) string {
	return fmt.Sprintf("%s-%s-plan", project, environment)
}

func AppInsights(project, environment string) string {
	return fmt.Sprintf("%s-%s-insights", project, environment)
}

// ServerFQDN is the public hostname the flexible server is reachable under.
func ServerFQDN(server string) string {
	return fmt.Sprintf("%s.postgres.database.azure.com", server)
}

// SiteHostname is the default hostname App Service assigns to a web app.
func SiteHostname(webApp string) string {
	return fmt.Sprintf("%s.azurewebsites.net", webApp)
}

// VaultURI is the data-plane endpoint for a vault name.
func VaultURI(vault string) string {
	return fmt.Sprintf("https://%s.vault.azure.net/", vault)
}
