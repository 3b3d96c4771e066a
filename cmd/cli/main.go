// Package main is the entry point for the planbook CLI.
// planctl is the terminal tool for generating, tracking and exporting a
// business playbook.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"planbook/cmd/cli/cmd"
)

func main() {
	// A missing .env is fine; environment variables still apply.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
