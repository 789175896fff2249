package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secureweb/secureweb/internal/config"
)

// saveAndRestoreInitFactories saves and restores init factory functions.
func saveAndRestoreInitFactories(t *testing.T) {
	t.Helper()
	origFileExists := fileExists
	origRunWizard := runWizard
	origSaveConfig := saveConfig

	t.Cleanup(func() {
		fileExists = origFileExists
		runWizard = origRunWizard
		saveConfig = origSaveConfig
	})
}

func TestPrintWelcome(t *testing.T) {
	output := captureOutput(func() {
		printWelcome()
	})

	assert.Contains(t, output, "secureweb - Django hosting on Azure")
	assert.Contains(t, output, "5 simple questions")
}

func TestPrintInitSuccess(t *testing.T) {
	cfg := validConfig()

	output := captureOutput(func() {
		printInitSuccess("secureweb.yaml", cfg)
	})

	assert.Contains(t, output, "Configuration saved!")
	assert.Contains(t, output, "secureweb.yaml")
	assert.Contains(t, output, "myapp")
	assert.Contains(t, output, "westeurope")
	assert.Contains(t, output, "Standard_B1ms")
	assert.Contains(t, output, "AZURE_SUBSCRIPTION_ID")
	assert.Contains(t, output, "secureweb provision")
}

func TestInit_WithInjection(t *testing.T) {
	saveAndRestoreInitFactories(t)

	validResult := &config.WizardResult{
		Project:       "myapp",
		Environment:   config.EnvProduction,
		Region:        config.RegionWestEurope,
		DatabaseSKU:   config.DatabaseSKUB1ms,
		PlanSKU:       config.PlanSKUB1,
		PythonVersion: config.Python311,
	}

	t.Run("success flow - new file", func(t *testing.T) {
		fileExists = func(_ string) bool {
			return false
		}
		runWizard = func(_ context.Context) (*config.WizardResult, error) {
			return validResult, nil
		}

		var savedPath string
		var savedCfg *config.Config
		saveConfig = func(cfg *config.Config, path string) error {
			savedCfg = cfg
			savedPath = path
			return nil
		}

		_ = captureOutput(func() {
			err := Init(context.Background(), "output.yaml")
			require.NoError(t, err)
		})

		assert.Equal(t, "output.yaml", savedPath)
		require.NotNil(t, savedCfg)
		assert.Equal(t, "myapp", savedCfg.Project)
		assert.Equal(t, config.DefaultAdminUser, savedCfg.Database.AdminUser)
	})

	t.Run("existing file prints overwrite warning", func(t *testing.T) {
		fileExists = func(_ string) bool {
			return true
		}
		runWizard = func(_ context.Context) (*config.WizardResult, error) {
			return validResult, nil
		}
		saveConfig = func(_ *config.Config, _ string) error {
			return nil
		}

		output := captureOutput(func() {
			err := Init(context.Background(), "existing.yaml")
			require.NoError(t, err)
		})

		assert.Contains(t, output, "existing.yaml already exists")
	})

	t.Run("wizard error", func(t *testing.T) {
		fileExists = func(_ string) bool {
			return false
		}
		runWizard = func(_ context.Context) (*config.WizardResult, error) {
			return nil, errors.New("wizard canceled: user aborted")
		}

		_ = captureOutput(func() {
			err := Init(context.Background(), "output.yaml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "wizard canceled")
		})
	})

	t.Run("write config error", func(t *testing.T) {
		fileExists = func(_ string) bool {
			return false
		}
		runWizard = func(_ context.Context) (*config.WizardResult, error) {
			return validResult, nil
		}
		saveConfig = func(_ *config.Config, _ string) error {
			return errors.New("permission denied")
		}

		_ = captureOutput(func() {
			err := Init(context.Background(), "/readonly/output.yaml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to write config")
		})
	})
}
