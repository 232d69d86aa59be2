package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/NeyGuaiume2/sdisc/internal/db"
	"github.com/NeyGuaiume2/sdisc/internal/observability"
	"github.com/NeyGuaiume2/sdisc/internal/scoring"
	"github.com/NeyGuaiume2/sdisc/internal/types"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a set of answers and print the DISC result",
	Long: `Reads most/least answers from a JSON file and prints the scored, classified and interpreted result as JSON.

The file holds either an array of {"question_id", "most", "least"} objects, an object keyed by question id
({"1": {"most": "...", "least": "..."}}), or either of these under an "answers" key.`,
	RunE: runScore,
}

var (
	scoreFlags   commonFlags
	scoreAnswers string
	scoreOutput  string
	scoreSave    bool
	scoreName    string
	scoreEmail   string
)

func init() {
	scoreFlags.register(scoreCmd)
	scoreCmd.Flags().StringVarP(&scoreAnswers, "answers", "a", "", "Path to answers JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output Result JSON file (defaults to stdout)")
	scoreCmd.Flags().BoolVar(&scoreSave, "save", false, "Persist the result (requires DATABASE_URL)")
	scoreCmd.Flags().StringVar(&scoreName, "name", "", "Respondent name stored with --save")
	scoreCmd.Flags().StringVar(&scoreEmail, "email", "", "Respondent email stored with --save")

	if err := scoreCmd.MarkFlagRequired("answers"); err != nil {
		panic(fmt.Sprintf("failed to mark answers flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg, err := scoreFlags.resolve(0)
	if err != nil {
		return err
	}
	if scoreSave && cfg.DatabaseURL == "" {
		return fmt.Errorf("--save requires DATABASE_URL environment variable")
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	content, err := os.ReadFile(scoreAnswers)
	if err != nil {
		return fmt.Errorf("failed to read answers file: %w", err)
	}
	raw := unwrapAnswers(content)

	ctx := context.Background()
	engine, err := newEngine(ctx, cfg, newDataCache(cfg, logger), logger)
	if err != nil {
		return err
	}

	result, err := engine.EvaluateJSON(raw)
	if err != nil {
		if errors.Is(err, scoring.ErrTotalInputFailure) {
			return fmt.Errorf("assessment rejected: %w", err)
		}
		return fmt.Errorf("failed to score answers: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result to JSON: %w", err)
	}

	out := cmd.OutOrStdout()
	if scoreOutput == "" {
		_, _ = fmt.Fprintln(out, string(jsonBytes))
	} else {
		outputDir := filepath.Dir(scoreOutput)
		if outputDir != "" && outputDir != "." {
			if err := os.MkdirAll(outputDir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		if err := os.WriteFile(scoreOutput, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write result to output file: %w", err)
		}
		_, _ = fmt.Fprintf(out, "Profile %s/%s written to %s\n", result.PrimaryProfile, result.SecondaryProfile, scoreOutput)
	}

	if cfg.Verbose {
		// Keep stdout machine-readable when the JSON goes there
		w := cmd.ErrOrStderr()
		if scoreOutput != "" {
			w = out
		}
		printer := observability.NewPrinter(w)
		printer.PrintResult(result)
		printer.PrintSummary(result.Summary)
	}

	if !scoreSave {
		return nil
	}

	saveCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	database, err := db.Connect(saveCtx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(saveCtx); err != nil {
		return err
	}

	answers, _, _ := types.DecodeAnswers(raw)
	id, err := database.SaveResult(saveCtx, db.SaveInput{
		UserName:     scoreName,
		UserEmail:    scoreEmail,
		RawResponses: answers,
		Result:       result,
	})
	if err != nil {
		return err
	}

	logger.Info("result saved", zap.String("id", id.String()))
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Result saved: %s\n", id)
	return nil
}

// unwrapAnswers returns the "answers" member of a wrapper object, or content itself.
// Question-id keys are numeric, so an "answers" key is never an answer.
func unwrapAnswers(content []byte) []byte {
	parsed := gjson.ParseBytes(content)
	if parsed.IsObject() {
		if inner := parsed.Get("answers"); inner.Exists() {
			return []byte(inner.Raw)
		}
	}
	return content
}
