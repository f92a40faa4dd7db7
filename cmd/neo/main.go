package main

import (
	"os"

	"github.com/AntonioJCosta/neo/internal/adapters/aliasmapping"
	"github.com/AntonioJCosta/neo/internal/handlers/cli"
)

// Version and Commit are set at build time
var (
	Version = "dev"
	Commit  = ""
)

func main() {
	// The alias table is static and shared read-only by every session.
	aliasMapping := aliasmapping.NewStaticMapping()

	rootCmd := cli.NewRootCommand(
		cli.BuildInfo{Version: Version, Commit: Commit},
		aliasMapping,
		newSessionFactory(aliasMapping),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
