// Package main is the entry point for the secureweb CLI.
//
// secureweb is a command-line tool for provisioning the complete Azure
// footprint of a Django web application: resource group, storage, PostgreSQL
// flexible server, key vault, Application Insights, and a Linux web app,
// plus the local deployment files the app needs.
//
// Commands: init, provision, plan, artifacts, doctor, version, completion.
//
// For detailed usage information, run:
//
//	secureweb --help
package main

import (
	"fmt"
	"os"

	"github.com/secureweb/secureweb/cmd/secureweb/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
