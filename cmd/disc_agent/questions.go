package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/NeyGuaiume2/sdisc/internal/types"
	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the question bank as JSON",
	Long:  "Prints every question id with its four words, without revealing which word belongs to which axis.",
	RunE:  runQuestions,
}

var questionsFlags commonFlags

func init() {
	questionsFlags.register(questionsCmd)
	rootCmd.AddCommand(questionsCmd)
}

func runQuestions(cmd *cobra.Command, _ []string) error {
	cfg, err := questionsFlags.resolve(0)
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
		return fmt.Errorf("failed to load reference data: %w", err)
	}

	questions := store.Questions()
	views := make([]types.QuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, q.View())
	}

	jsonBytes, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal questions to JSON: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
	return nil
}
