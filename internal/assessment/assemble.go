// Package assessment runs the scoring pipeline end to end and assembles the result record.
package assessment

import (
	"github.com/NeyGuaiume2/sdisc/internal/scoring"
	"github.com/NeyGuaiume2/sdisc/internal/types"
)

// Assemble merges the scoring outcome and the resolved text into one Result.
// The Result holds copies only, so it outlives the reference data it was built from.
func Assemble(
	profile types.Profile,
	report scoring.Report,
	bundle types.Bundle,
	summary types.Summary,
	integrity []string,
) *types.Result {
	levels := make(map[string]types.Tier, len(profile.Levels))
	for axis, tier := range profile.Levels {
		levels[string(axis)] = tier
	}

	result := &types.Result{
		DScore:           profile.Scores.D,
		IScore:           profile.Scores.I,
		SScore:           profile.Scores.S,
		CScore:           profile.Scores.C,
		PrimaryProfile:   profile.Primary.Label(),
		SecondaryProfile: profile.Secondary.Label(),
		DiscLevels:       levels,
		Ranking:          append([]types.AxisScore(nil), profile.Ranking...),
		Interpretations:  bundle,
		Summary:          summary,
		Warnings: types.Warnings{
			SkippedAnswers:  report.Skipped,
			UnresolvedWords: report.Unresolved(),
			DiscardedLeast:  report.DiscardedLeast,
			DataIntegrity:   append([]string(nil), integrity...),
		},
	}
	result.Summary.DevelopmentAreas = append([]string(nil), summary.DevelopmentAreas...)
	result.Incomplete = report.Skipped > 0 || report.Unresolved() > 0 || bundle.Unavailable() > 0

	return result
}

// Unknown returns the result used when no profile could be determined.
func Unknown(report scoring.Report) *types.Result {
	return &types.Result{
		PrimaryProfile:   types.UnknownProfile,
		SecondaryProfile: types.UnknownProfile,
		DiscLevels:       map[string]types.Tier{},
		Warnings: types.Warnings{
			SkippedAnswers:  report.Skipped,
			UnresolvedWords: report.Unresolved(),
			DiscardedLeast:  report.DiscardedLeast,
		},
		Incomplete: true,
	}
}
