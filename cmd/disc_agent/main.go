// Package main provides the disc_agent CLI: scoring, reference data checks and the HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "disc_agent",
	Short: "DISC questionnaire scoring and interpretation",
	Long:  "disc_agent scores most/least answers to the DISC questionnaire, resolves the profile interpretation texts and serves the assessment REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
