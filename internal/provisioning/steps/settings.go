package steps

import (
	"fmt"

	"github.com/secureweb/secureweb/internal/plan"
	"github.com/secureweb/secureweb/internal/provisioning"
)

// keyVaultReference wraps a secret URI in the App Service reference syntax
// the platform resolves at boot using the site's managed identity.
func keyVaultReference(secretURI string) string {
	return fmt.Sprintf("@Microsoft.KeyVault(SecretUri=%s)", secretURI)
}

// buildAppSettings assembles the web app's environment. The Django secret key
// and the storage key resolve through the vault when their secrets were
// written; if a best-effort write failed the literal value keeps the app
// bootable.
func buildAppSettings(ctx *provisioning.Context) map[string]string {
	p := ctx.Plan

	debug := "False"
	if p.Debug {
		debug = "True"
	}

	settings := map[string]string{
		"DATABASE_URL":                   p.ConnectionString(),
		"AZURE_STORAGE_ACCOUNT_NAME":     p.StorageAccount,
		"AZURE_STATIC_CONTAINER":         plan.StaticContainer,
		"AZURE_MEDIA_CONTAINER":          plan.MediaContainer,
		"APPINSIGHTS_INSTRUMENTATIONKEY": ctx.State.InstrumentationKey,
		"DEBUG":                          debug,
		"ALLOWED_HOSTS":                  p.AllowedHosts,
		"LOG_LEVEL":                      p.LogLevel,
		"SCM_DO_BUILD_DURING_DEPLOYMENT": "true",
	}

	if uri := ctx.State.SecretURI(plan.SecretNameDjangoKey); uri != "" {
		settings["SECRET_KEY"] = keyVaultReference(uri)
	} else {
		settings["SECRET_KEY"] = p.SecretKey
	}

	if uri := ctx.State.SecretURI(plan.SecretNameStorageKey); uri != "" {
		settings["AZURE_STORAGE_ACCOUNT_KEY"] = keyVaultReference(uri)
	} else {
		settings["AZURE_STORAGE_ACCOUNT_KEY"] = ctx.State.StorageKey
	}

	return settings
}
