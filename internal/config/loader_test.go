package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_ValidConfig(t *testing.T) {
	t.Parallel()
	content := `
project: myapp
environment: production
region: westeurope
database:
  sku: Standard_B2s
  adminUser: djadmin
webapp:
  sku: S1
  pythonVersion: "3.10"
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "secureweb.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Project != "myapp" {
		t.Errorf("Project = %q, want %q", cfg.Project, "myapp")
	}
	if cfg.Environment != EnvProduction {
		t.Errorf("Environment = %q, want %q", cfg.Environment, EnvProduction)
	}
	if cfg.Region != RegionWestEurope {
		t.Errorf("Region = %q, want %q", cfg.Region, RegionWestEurope)
	}
	if cfg.Database.SKU != DatabaseSKUB2s {
		t.Errorf("Database.SKU = %q, want %q", cfg.Database.SKU, DatabaseSKUB2s)
	}
	if cfg.Database.AdminUser != "djadmin" {
		t.Errorf("Database.AdminUser = %q, want %q", cfg.Database.AdminUser, "djadmin")
	}
	if cfg.WebApp.SKU != PlanSKUS1 {
		t.Errorf("WebApp.SKU = %q, want %q", cfg.WebApp.SKU, PlanSKUS1)
	}
	if cfg.WebApp.PythonVersion != Python310 {
		t.Errorf("WebApp.PythonVersion = %q, want %q", cfg.WebApp.PythonVersion, Python310)
	}
}

func TestLoad_MinimalConfigAppliesDefaults(t *testing.T) {
	t.Parallel()
	content := `
project: myapp
environment: staging
region: uksouth
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "secureweb.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database.SKU != DatabaseSKUB1ms {
		t.Errorf("Database.SKU = %q, want default %q", cfg.Database.SKU, DatabaseSKUB1ms)
	}
	if cfg.Database.AdminUser != DefaultAdminUser {
		t.Errorf("Database.AdminUser = %q, want default %q", cfg.Database.AdminUser, DefaultAdminUser)
	}
	if cfg.WebApp.SKU != PlanSKUB1 {
		t.Errorf("WebApp.SKU = %q, want default %q", cfg.WebApp.SKU, PlanSKUB1)
	}
	if cfg.WebApp.PythonVersion != Python311 {
		t.Errorf("WebApp.PythonVersion = %q, want default %q", cfg.WebApp.PythonVersion, Python311)
	}
	if cfg.WebApp.LogLevel != DefaultLogLevel {
		t.Errorf("WebApp.LogLevel = %q, want default %q", cfg.WebApp.LogLevel, DefaultLogLevel)
	}
}

func TestLoad_DisplayRegionNormalized(t *testing.T) {
	t.Parallel()
	content := `
project: myapp
environment: production
region: West Europe
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "secureweb.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Region != RegionWestEurope {
		t.Errorf("Region = %q, want normalized %q", cfg.Region, RegionWestEurope)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()
	_, err := Load("/nonexistent/path/secureweb.yaml")
	if err == nil {
		t.Error("Load() expected error for nonexistent file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()
	content := `
project: myapp
region: [invalid yaml
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "secureweb.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Error("Load() expected error for invalid YAML")
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	t.Parallel()
	content := `
project: My_App
environment: production
region: westeurope
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "secureweb.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Error("Load() expected validation error")
	}
}

func TestLoadWithoutValidation(t *testing.T) {
	t.Parallel()
	content := `
project: INVALID_NAME
environment: qa
region: mars
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "secureweb.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	// LoadWithoutValidation should not return validation errors
	cfg, err := LoadWithoutValidation(configPath)
	if err != nil {
		t.Fatalf("LoadWithoutValidation() error = %v", err)
	}

	if cfg.Project != "INVALID_NAME" {
		t.Errorf("Project = %q, want %q", cfg.Project, "INVALID_NAME")
	}
}

func TestLoadFromBytes(t *testing.T) {
	t.Parallel()
	content := []byte(`
project: testapp
environment: development
region: eastus
`)

	cfg, err := LoadFromBytes(content)
	if err != nil {
		t.Fatalf("LoadFromBytes() error = %v", err)
	}

	if cfg.Project != "testapp" {
		t.Errorf("Project = %q, want %q", cfg.Project, "testapp")
	}
	if cfg.Region != RegionEastUS {
		t.Errorf("Region = %q, want %q", cfg.Region, RegionEastUS)
	}
}

func TestLoadFromBytes_ValidationError(t *testing.T) {
	t.Parallel()
	// Valid YAML but invalid config (uppercase project)
	content := []byte(`
project: INVALID
environment: production
region: westeurope
`)
	_, err := LoadFromBytes(content)
	if err == nil {
		t.Error("LoadFromBytes() expected validation error for invalid project")
	}
	if !strings.Contains(err.Error(), "validation failed") {
		t.Errorf("Expected validation error, got: %v", err)
	}
}

func TestLoadFromBytes_InvalidYAML(t *testing.T) {
	t.Parallel()
	_, err := LoadFromBytes([]byte("{{{{invalid yaml"))
	if err == nil {
		t.Fatal("LoadFromBytes() expected error for invalid YAML, got nil")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Parallel()
	path := DefaultConfigPath()
	if path == "" {
		t.Error("DefaultConfigPath() returned empty string")
	}
	if filepath.Base(path) != "secureweb.yaml" {
		t.Errorf("DefaultConfigPath() = %q, want filename secureweb.yaml", path)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	t.Parallel()
	cfg := &Config{
		Project:     "testapp",
		Environment: EnvStaging,
		Region:      RegionNorthEurope,
		Database: Database{
			SKU:       DatabaseSKUB1ms,
			AdminUser: "dbadmin",
		},
		WebApp: WebApp{
			SKU:           PlanSKUB1,
			PythonVersion: Python311,
		},
	}

	tmpDir := t.TempDir()
	savePath := filepath.Join(tmpDir, "output.yaml")

	if err := Save(cfg, savePath); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := LoadWithoutValidation(savePath)
	if err != nil {
		t.Fatalf("LoadWithoutValidation() error = %v", err)
	}
	if loaded.Project != cfg.Project {
		t.Errorf("Project = %q, want %q", loaded.Project, cfg.Project)
	}
	if loaded.Environment != cfg.Environment {
		t.Errorf("Environment = %q, want %q", loaded.Environment, cfg.Environment)
	}
	if loaded.Region != cfg.Region {
		t.Errorf("Region = %q, want %q", loaded.Region, cfg.Region)
	}
	if loaded.Database.SKU != cfg.Database.SKU {
		t.Errorf("Database.SKU = %q, want %q", loaded.Database.SKU, cfg.Database.SKU)
	}
}

func TestSave_InvalidPath(t *testing.T) {
	t.Parallel()
	cfg := &Config{Project: "test"}
	err := Save(cfg, "/nonexistent/directory/secureweb.yaml")
	if err == nil {
		t.Error("Save() expected error for invalid path")
	}
}

func TestFindConfigFile(t *testing.T) {
	// Create a temp directory with a config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "secureweb.yaml")
	if err := os.WriteFile(configPath, []byte("project: test"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	// Change to temp dir for the test
	originalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get cwd: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to chdir: %v", err)
	}
	defer os.Chdir(originalDir)

	found, err := FindConfigFile()
	if err != nil {
		t.Fatalf("FindConfigFile() error = %v", err)
	}
	if found != configPath {
		t.Errorf("FindConfigFile() = %q, want %q", found, configPath)
	}
}

func TestFindConfigFile_InParentDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	childDir := filepath.Join(tmpDir, "child")
	if err := os.Mkdir(childDir, 0755); err != nil {
		t.Fatalf("Failed to create child dir: %v", err)
	}

	configPath := filepath.Join(tmpDir, DefaultConfigFilename)
	if err := os.WriteFile(configPath, []byte("project: test"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	originalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get cwd: %v", err)
	}
	if err := os.Chdir(childDir); err != nil {
		t.Fatalf("Failed to chdir: %v", err)
	}
	defer os.Chdir(originalDir)

	found, err := FindConfigFile()
	if err != nil {
		t.Fatalf("FindConfigFile() error = %v", err)
	}
	if found != configPath {
		t.Errorf("FindConfigFile() = %q, want %q", found, configPath)
	}
}

func TestFindConfigFile_NotFound(t *testing.T) {
	tmpDir := t.TempDir()

	originalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get cwd: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to chdir: %v", err)
	}
	defer os.Chdir(originalDir)

	_, err = FindConfigFile()
	if err == nil {
		t.Error("FindConfigFile() expected error when no config file exists")
	}
}
