package handlers

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secureweb/secureweb/internal/config"
	"github.com/secureweb/secureweb/internal/plan"
)

func TestArtifacts_WritesFiles(t *testing.T) {
	saveAndRestoreFactories(t)

	loadConfigFile = func(_ string) (*config.Config, error) {
		return validConfig(), nil
	}

	dir := t.TempDir()

	output := captureOutput(func() {
		err := Artifacts("secureweb.yaml", dir)
		require.NoError(t, err)
	})

	for _, name := range []string{"requirements.txt", ".env.template", "startup.sh", "web.config"} {
		assert.FileExists(t, filepath.Join(dir, name))
		assert.Contains(t, output, name)
	}

	// The startup script is executable
	info, err := os.Stat(filepath.Join(dir, "startup.sh"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestArtifacts_DefaultDir(t *testing.T) {
	saveAndRestoreFactories(t)

	loadConfigFile = func(_ string) (*config.Config, error) {
		return validConfig(), nil
	}

	var gotDir string
	writeArtifacts = func(dir string, _ *plan.Plan) ([]string, error) {
		gotDir = dir
		return nil, nil
	}

	_ = captureOutput(func() {
		err := Artifacts("secureweb.yaml", "")
		require.NoError(t, err)
	})

	assert.Equal(t, ".", gotDir)
}

func TestArtifacts_ConfigError(t *testing.T) {
	saveAndRestoreFactories(t)

	loadConfigFile = func(_ string) (*config.Config, error) {
		return nil, errors.New("file not found")
	}

	err := Artifacts("missing.yaml", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestArtifacts_WriteError(t *testing.T) {
	saveAndRestoreFactories(t)

	loadConfigFile = func(_ string) (*config.Config, error) {
		return validConfig(), nil
	}
	writeArtifacts = func(_ string, _ *plan.Plan) ([]string, error) {
		return nil, errors.New("disk full")
	}

	err := Artifacts("secureweb.yaml", "out")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
