// Package main provides the CLI entry point for the taxonomy importer
// The tool has two workflows selected by flags:
// 1. load  - Parse a Darwin Core taxonomy export and store it in the database
// 2. merge - Combine all provider tables into one consolidated table
package main

import (
	"fmt"
	"os"

	"taxonomy-importer/internal/commands"
)

func main() {
	rootCmd := commands.NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}
