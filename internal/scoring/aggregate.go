package scoring

import (
	"fmt"

	"github.com/NeyGuaiume2/sdisc/internal/logging"
	"github.com/NeyGuaiume2/sdisc/internal/types"
	"go.uber.org/zap"
)

// Report describes how each submitted answer contributed to the scores
type Report struct {
	Total           int `json:"total"`
	Applied         int `json:"applied"`
	Skipped         int `json:"skipped"`
	UnresolvedMost  int `json:"unresolved_most"`
	UnresolvedLeast int `json:"unresolved_least"`
	DiscardedLeast  int `json:"discarded_least"`
	MostApplied     int `json:"most_applied"`
	LeastApplied    int `json:"least_applied"`
	// Warnings holds one human-readable line per skipped or partially applied answer
	Warnings []string `json:"warnings,omitempty"`
	// Collisions lists the ambiguous words that a pick actually resolved through
	Collisions []Collision `json:"collisions,omitempty"`
}

// Contributions returns the number of ±1 updates applied across all answers.
func (r Report) Contributions() int {
	return r.MostApplied + r.LeastApplied
}

// Unresolved returns how many picks had no matching axis word.
func (r Report) Unresolved() int {
	return r.UnresolvedMost + r.UnresolvedLeast
}

func (r *Report) addCollision(c *Collision) {
	if c == nil {
		return
	}
	for _, seen := range r.Collisions {
		if seen.QuestionID == c.QuestionID && seen.Word == c.Word {
			return
		}
	}
	r.Collisions = append(r.Collisions, *c)
}

// Aggregator turns answers into signed axis tallies
type Aggregator struct {
	resolver *WordResolver
	logger   *zap.Logger
}

// NewAggregator creates an Aggregator that resolves words with resolver.
func NewAggregator(resolver *WordResolver, logger *zap.Logger) *Aggregator {
	return &Aggregator{resolver: resolver, logger: logging.OrNop(logger)}
}

// Aggregate scores the answers: +1 to the axis of each resolved most pick and -1 to the axis
// of each resolved least pick. A least pick resolving to the same axis as its most pick is
// discarded. Answers missing a question id or a pick are skipped, and so is any later answer
// repeating a question id already scored, so each question counts once.
//
// It returns ErrNoAnswers for an empty list and ErrNoResolvableAnswers when no pick could be
// applied; the Report is filled in either case.
func (a *Aggregator) Aggregate(answers []types.Answer) (types.AxisScores, Report, error) {
	var scores types.AxisScores
	report := Report{Total: len(answers)}

	if len(answers) == 0 {
		return scores, report, ErrNoAnswers
	}

	scored := map[int]bool{}
	for _, raw := range answers {
		ans := raw.Normalized()
		if ans.QuestionID <= 0 || ans.Most == "" || ans.Least == "" {
			report.Skipped++
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("answer for question %d skipped: question id, most and least are required", ans.QuestionID))
			a.logger.Warn("skipping structurally incomplete answer",
				zap.Int("question_id", ans.QuestionID),
				zap.Bool("has_most", ans.Most != ""),
				zap.Bool("has_least", ans.Least != ""))
			continue
		}
		if scored[ans.QuestionID] {
			report.Skipped++
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("answer for question %d skipped: question already answered", ans.QuestionID))
			a.logger.Warn("skipping repeated answer", zap.Int("question_id", ans.QuestionID))
			continue
		}
		scored[ans.QuestionID] = true

		applied := false

		mostAxis, collision, mostOK := a.resolver.resolve(ans.QuestionID, ans.Most)
		report.addCollision(collision)
		if mostOK {
			scores.Add(mostAxis, 1)
			report.MostApplied++
			applied = true
		} else {
			report.UnresolvedMost++
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("question %d: most pick %q does not match any option", ans.QuestionID, ans.Most))
			a.logger.Debug("most pick not resolved",
				zap.Int("question_id", ans.QuestionID), zap.String("word", ans.Most))
		}

		leastAxis, collision, leastOK := a.resolver.resolve(ans.QuestionID, ans.Least)
		report.addCollision(collision)
		switch {
		case !leastOK:
			report.UnresolvedLeast++
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("question %d: least pick %q does not match any option", ans.QuestionID, ans.Least))
			a.logger.Debug("least pick not resolved",
				zap.Int("question_id", ans.QuestionID), zap.String("word", ans.Least))
		case mostOK && leastAxis == mostAxis:
			report.DiscardedLeast++
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("question %d: most and least resolve to axis %s, least discarded", ans.QuestionID, leastAxis))
			a.logger.Debug("least pick discarded, same axis as most",
				zap.Int("question_id", ans.QuestionID), zap.String("axis", string(leastAxis)))
		default:
			scores.Add(leastAxis, -1)
			report.LeastApplied++
			applied = true
		}

		if applied {
			report.Applied++
		}
	}

	if report.Contributions() == 0 {
		return scores, report, ErrNoResolvableAnswers
	}

	a.logger.Debug("answers aggregated",
		zap.Int("total", report.Total),
		zap.Int("applied", report.Applied),
		zap.Int("skipped", report.Skipped),
		zap.Any("scores", scores))

	return scores, report, nil
}
