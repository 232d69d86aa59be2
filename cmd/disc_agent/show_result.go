package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/NeyGuaiume2/sdisc/internal/db"
	"github.com/NeyGuaiume2/sdisc/internal/observability"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var showResultCmd = &cobra.Command{
	Use:   "show-result",
	Short: "Print a stored assessment result",
	Long:  "Fetches a result saved by serve or score --save and prints it as JSON. Requires DATABASE_URL.",
	RunE:  runShowResult,
}

var (
	showResultFlags commonFlags
	showResultID    string
)

func init() {
	showResultFlags.register(showResultCmd)
	showResultCmd.Flags().StringVar(&showResultID, "id", "", "Result UUID (required)")

	if err := showResultCmd.MarkFlagRequired("id"); err != nil {
		panic(fmt.Sprintf("failed to mark id flag as required: %v", err))
	}

	rootCmd.AddCommand(showResultCmd)
}

func runShowResult(cmd *cobra.Command, _ []string) error {
	id, err := uuid.Parse(showResultID)
	if err != nil {
		return fmt.Errorf("invalid result ID: %w", err)
	}

	cfg, err := showResultFlags.resolve(0)
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	rec, err := database.GetResult(ctx, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("result not found: %s", id)
	}

	result, err := rec.Result()
	if err != nil {
		return err
	}

	jsonBytes, err := json.MarshalIndent(map[string]any{
		"id":         rec.ID,
		"user_name":  rec.UserName,
		"created_at": rec.CreatedAt.Format(time.RFC3339),
		"result":     result,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result to JSON: %w", err)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, string(jsonBytes))

	if cfg.Verbose {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		printer.PrintResult(result)
		printer.PrintSummary(result.Summary)
	}
	return nil
}
