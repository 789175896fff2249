// Package artifacts renders the local deployment files a provisioned Django
// application needs: the dependency manifest, the environment template, the
// startup script, the legacy IIS handler descriptor, and the run summary.
package artifacts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/secureweb/secureweb/internal/plan"
)

// Artifact file names, written into the artifacts directory.
const (
	RequirementsFile  = "requirements.txt"
	EnvTemplateFile   = ".env.template"
	StartupScriptFile = "startup.sh"
	WebConfigFile     = "web.config"
	SummaryFile       = "deployment-summary.yaml"
)

// Requirements returns the pinned dependency manifest for the deployed
// application.
func Requirements() string {
	return `Django>=4.2,<5.0
gunicorn>=21.2
psycopg2-binary>=2.9
dj-database-url>=2.1
python-dotenv>=1.0
whitenoise>=6.6
django-storages[azure]>=1.14
azure-storage-blob>=12.19
applicationinsights>=0.11.10
`
}

// EnvTemplate returns the environment file template. Values that live in the
// vault or on the platform stay placeholders; everything derivable from the
// plan is filled in.
func EnvTemplate(p *plan.Plan) string {
	debug := "False"
	if p.Debug {
		debug = "True"
	}
	return fmt.Sprintf(`# Environment for %s (%s)
# Values in angle brackets resolve from Azure at runtime.

SECRET_KEY=<stored-in-key-vault>
DEBUG=%s
ALLOWED_HOSTS=%s
LOG_LEVEL=%s

DATABASE_URL=%s

AZURE_STORAGE_ACCOUNT_NAME=%s
AZURE_STORAGE_ACCOUNT_KEY=<stored-in-key-vault>
AZURE_STATIC_CONTAINER=%s
AZURE_MEDIA_CONTAINER=%s

APPINSIGHTS_INSTRUMENTATIONKEY=<from-application-insights>
`,
		p.Project, p.Environment,
		debug,
		p.AllowedHosts,
		p.LogLevel,
		p.ConnectionString(),
		p.StorageAccount,
		plan.StaticContainer,
		plan.MediaContainer,
	)
}

// StartupScript returns the script App Service runs on boot: collect static
// assets, apply migrations, then exec gunicorn so it replaces the shell and
// receives platform signals directly.
func StartupScript(p *plan.Plan) string {
	return fmt.Sprintf(`#!/bin/bash
set -e

python manage.py collectstatic --noinput
python manage.py migrate --noinput

exec gunicorn --bind=0.0.0.0:8000 --workers=3 %s.wsgi
`, p.Project)
}

// WebConfig returns the legacy IIS handler descriptor. Linux App Service
// ignores it; it is kept for parity with Windows-hosted deployments.
func WebConfig() string {
	return `<?xml version="1.0" encoding="utf-8"?>
<configuration>
  <system.webServer>
    <handlers>
      <add name="PythonHandler" path="*" verb="*" modules="FastCgiModule"
           scriptProcessor="D:\home\Python364x64\python.exe|D:\home\Python364x64\wfastcgi.py"
           resourceType="Unspecified" requireAccess="Script"/>
    </handlers>
  </system.webServer>
</configuration>
`
}

// WriteAll writes the four deployment files into dir, creating it if needed,
// and returns the written paths. The startup script is executable; the rest
// are plain files.
func WriteAll(dir string, p *plan.Plan) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create artifacts directory %s: %w", dir, err)
	}

	files := []struct {
		name    string
		content string
		mode    os.FileMode
	}{
		{RequirementsFile, Requirements(), 0644},
		{EnvTemplateFile, EnvTemplate(p), 0644},
		{StartupScriptFile, StartupScript(p), 0755},
		{WebConfigFile, WebConfig(), 0644},
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, []byte(f.content), f.mode); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", f.name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
