package artifacts

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Summary is the persisted record of one provisioning run. It deliberately
// contains the plaintext credentials so the operator can reach the database
// without the vault; the file is written 0600.
type Summary struct {
	Project     string `yaml:"project"`
	Environment string `yaml:"environment"`
	Location    string `yaml:"location"`
	RunID       string `yaml:"run_id"`
	SavedAt     string `yaml:"saved_at"`

	ResourceGroup  string `yaml:"resource_group"`
	StorageAccount string `yaml:"storage_account"`
	ServerName     string `yaml:"database_server"`
	DatabaseName   string `yaml:"database_name"`
	VaultName      string `yaml:"key_vault"`
	InsightsName   string `yaml:"app_insights"`
	PlanName       string `yaml:"app_service_plan"`
	WebAppName     string `yaml:"web_app"`
	Hostname       string `yaml:"hostname"`
	SiteURL        string `yaml:"site_url"`

	AdminUser        string `yaml:"admin_user"`
	AdminPassword    string `yaml:"admin_password"`
	ConnectionString string `yaml:"connection_string"`

	SecretURIs map[string]string `yaml:"secret_uris,omitempty"`
	Warnings   []string          `yaml:"warnings,omitempty"`
}

// WriteSummary marshals the summary to YAML and writes it to path with owner
// only permissions.
func WriteSummary(path string, s *Summary) error {
	content, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	if err := os.WriteFile(path, content, 0600); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
