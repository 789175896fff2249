package steps

import "github.com/secureweb/secureweb/internal/provisioning"

// ForPlan returns the full ordered step list for one provisioning run. The
// order is load-bearing: later steps read state earlier steps produced.
func ForPlan() []provisioning.Step {
	return []provisioning.Step{
		NewPreflight(),
		NewFoundation(),
		NewStorage(),
		NewDatabase(),
		NewVault(),
		NewDjangoKeySecret(),
		NewDatabasePasswordSecret(),
		NewStorageKeySecret(),
		NewTelemetry(),
		NewWebApp(),
		NewArtifacts(),
		NewReport(),
	}
}
