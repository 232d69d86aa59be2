package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/NeyGuaiume2/sdisc/internal/observability"
	"github.com/NeyGuaiume2/sdisc/internal/refdata"
	"github.com/spf13/cobra"
)

var validateDataCmd = &cobra.Command{
	Use:   "validate-data",
	Short: "Check the reference data for integrity issues",
	Long: `Loads the question bank and the interpretation tables, validates them against their schemas and reports
ambiguous words, id problems and missing interpretation cells.

With --strict the command fails when any error-severity issue is found.`,
	RunE: runValidateData,
}

var (
	validateDataFlags  commonFlags
	validateDataStrict bool
	validateDataJSON   bool
)

func init() {
	validateDataFlags.register(validateDataCmd)
	validateDataCmd.Flags().BoolVar(&validateDataStrict, "strict", false, "Exit with an error when error-severity issues are found")
	validateDataCmd.Flags().BoolVar(&validateDataJSON, "json", false, "Print issues as JSON")
	rootCmd.AddCommand(validateDataCmd)
}

func runValidateData(cmd *cobra.Command, _ []string) error {
	cfg, err := validateDataFlags.resolve(0)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	store, err := newDataCache(cfg, logger).Get(context.Background())
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	issues := store.Issues()
	out := cmd.OutOrStdout()

	if validateDataJSON {
		if issues == nil {
			issues = []refdata.Issue{}
		}
		jsonBytes, err := json.MarshalIndent(issues, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal issues to JSON: %w", err)
		}
		_, _ = fmt.Fprintln(out, string(jsonBytes))
	} else {
		observability.NewPrinter(out).PrintIssues(issues)
	}

	if validateDataStrict && refdata.HasErrors(issues) {
		// Return error to indicate issues were found (exit code 1)
		return fmt.Errorf("reference data has error-severity issues")
	}
	return nil
}
