package naming

import (
	"regexp"
	"testing"
	"time"
)

func TestNamingFunctions(t *testing.T) {
	project := "app"
	env := "production"
	suffix := "405152"

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "ResourceGroup",
			got:      ResourceGroup(project, env),
			expected: "app-production-rg",
		},
		{
			name:     "StorageAccount",
			got:      StorageAccount(project, suffix),
			expected: "appstor405152",
		},
		{
			name:     "KeyVault",
			got:      KeyVault(project, suffix),
			expected: "app-kv-405152",
		},
		{
			name:     "DatabaseServer",
			got:      DatabaseServer(project, suffix),
			expected: "app-db-405152",
		},
		{
			name:     "Database",
			got:      Database(project),
			expected: "appdb",
		},
		{
			name:     "WebApp",
			got:      WebApp(project, env, suffix),
			expected: "app-production-405152",
		},
		{
			name:     "AppServicePlan",
			got:      AppServicePlan(project, env),
			expected: "app-production-plan",
		},
		{
			name:     "AppInsights",
			got:      AppInsights(project, env),
			expected: "app-production-insights",
		},
		{
			name:     "ServerFQDN",
			got:      ServerFQDN("app-db-405152"),
			expected: "app-db-405152.postgres.database.azure.com",
		},
		{
			name:     "SiteHostname",
			got:      SiteHostname("app-production-405152"),
			expected: "app-production-405152.azurewebsites.net",
		},
		{
			name:     "VaultURI",
			got:      VaultURI("app-kv-405152"),
			expected: "https://app-kv-405152.vault.azure.net/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, tt.got)
			}
		})
	}
}

func TestSuffix(t *testing.T) {
	first := Suffix(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	second := Suffix(time.Date(2024, 3, 1, 12, 0, 1, 0, time.UTC))

	if len(first) != SuffixLength {
		t.Fatalf("Expected suffix length %d, got %d (%q)", SuffixLength, len(first), first)
	}
	if first == second {
		t.Errorf("Suffixes for distinct seconds must differ, both were %q", first)
	}
	if m, _ := regexp.MatchString(`^[0-9]+$`, first); !m {
		t.Errorf("Suffix must be digits only, got %q", first)
	}
}

// Azure enforces per-type name constraints; the derivations must satisfy them
// for the longest project name config validation allows (12 characters).
func TestNameConstraints(t *testing.T) {
	project := "longproject1"
	suffix := Suffix(time.Now())

	storage := StorageAccount(project, suffix)
	if len(storage) > 24 {
		t.Errorf("Storage account name %q exceeds 24 characters", storage)
	}
	if m, _ := regexp.MatchString(`^[a-z0-9]+$`, storage); !m {
		t.Errorf("Storage account name %q must be lowercase alphanumeric", storage)
	}

	vault := KeyVault(project, suffix)
	if len(vault) > 24 {
		t.Errorf("Vault name %q exceeds 24 characters", vault)
	}
	if m, _ := regexp.MatchString(`^[a-z][a-z0-9-]*$`, vault); !m {
		t.Errorf("Vault name %q must start with a letter and use alphanumerics and hyphens", vault)
	}

	server := DatabaseServer(project, suffix)
	if m, _ := regexp.MatchString(`^[a-z0-9][a-z0-9-]*[a-z0-9]$`, server); !m {
		t.Errorf("Database server name %q violates flexible server naming", server)
	}

	webApp := WebApp(project, "production", suffix)
	if len(webApp) > 60 {
		t.Errorf("Web app name %q exceeds 60 characters", webApp)
	}
	if m, _ := regexp.MatchString(`^[a-z0-9][a-z0-9-]*[a-z0-9]$`, webApp); !m {
		t.Errorf("Web app name %q is not DNS safe", webApp)
	}
}
