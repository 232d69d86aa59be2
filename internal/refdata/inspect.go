package refdata

import (
	"fmt"
	"sort"
	"strings"

	"github.com/NeyGuaiume2/sdisc/internal/types"
)

// Severity grades an integrity issue
type Severity string

// Issue severities
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IssueCode classifies an integrity issue
type IssueCode string

// Issue codes
const (
	CodeDuplicateWord   IssueCode = "duplicate_word"
	CodeReusedWord      IssueCode = "reused_word"
	CodeDuplicateID     IssueCode = "duplicate_id"
	CodeInvalidID       IssueCode = "invalid_id"
	CodeMissingWord     IssueCode = "missing_word"
	CodeIDGap           IssueCode = "id_gap"
	CodeMissingEntry    IssueCode = "missing_entry"
	CodeInvalidKey      IssueCode = "invalid_key"
	CodeMissingDocument IssueCode = "missing_document"
)

// Issue is one integrity finding about the reference data
type Issue struct {
	Severity   Severity  `json:"severity"`
	Code       IssueCode `json:"code"`
	QuestionID int       `json:"question_id,omitempty"`
	Message    string    `json:"message"`
}

func (i Issue) String() string {
	if i.QuestionID != 0 {
		return fmt.Sprintf("[%s] question %d: %s", i.Severity, i.QuestionID, i.Message)
	}
	return fmt.Sprintf("[%s] %s", i.Severity, i.Message)
}

// HasErrors reports whether any issue has error severity.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Inspect re-runs the integrity checks over the store's questions and tables.
// Unlike Store.Issues it does not include findings made while decoding documents.
func Inspect(s *Store) []Issue {
	return inspect(s.contents)
}

// inspect checks the question bank and interpretation tables for ambiguity and gaps.
// Questions must already be sorted by id.
func inspect(c Contents) []Issue {
	var issues []Issue
	issues = append(issues, inspectQuestions(c.Questions)...)
	issues = append(issues, inspectPrimary(DocGeneralPrimary, c.GeneralPrimary)...)
	issues = append(issues, inspectPrimary(DocProfessionalPrimary, c.ProfessionalPrimary)...)
	return issues
}

func inspectQuestions(questions []types.Question) []Issue {
	var issues []Issue

	seenIDs := map[int]bool{}
	// normalized word -> question ids using it
	usage := map[string][]int{}

	for _, q := range questions {
		if q.ID <= 0 {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Code:     CodeInvalidID,
				Message:  fmt.Sprintf("question id %d is not positive; answers cannot reference it", q.ID),
			})
		}
		if seenIDs[q.ID] {
			issues = append(issues, Issue{
				Severity:   SeverityError,
				Code:       CodeDuplicateID,
				QuestionID: q.ID,
				Message:    "question id appears more than once; only the first is used",
			})
			continue
		}
		seenIDs[q.ID] = true

		// An ambiguous word inside one question cannot be resolved to one axis
		axesByWord := map[string][]types.Axis{}
		for _, axis := range types.Axes {
			word := types.NormalizeWord(q.Word(axis))
			if word == "" {
				issues = append(issues, Issue{
					Severity:   SeverityError,
					Code:       CodeMissingWord,
					QuestionID: q.ID,
					Message:    fmt.Sprintf("no word authored for axis %s", axis),
				})
				continue
			}
			axesByWord[word] = append(axesByWord[word], axis)
		}
		for _, axis := range types.Axes {
			word := types.NormalizeWord(q.Word(axis))
			axes := axesByWord[word]
			if len(axes) < 2 || axes[0] != axis {
				continue
			}
			issues = append(issues, Issue{
				Severity:   SeverityError,
				Code:       CodeDuplicateWord,
				QuestionID: q.ID,
				Message:    fmt.Sprintf("word %q is listed for axes %s", q.Word(axis), joinAxes(axes)),
			})
		}

		for word := range axesByWord {
			usage[word] = append(usage[word], q.ID)
		}
	}

	words := make([]string, 0, len(usage))
	for word, ids := range usage {
		if len(ids) > 1 {
			words = append(words, word)
		}
	}
	sort.Strings(words)
	for _, word := range words {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Code:     CodeReusedWord,
			Message:  fmt.Sprintf("word %q appears in questions %v", word, usage[word]),
		})
	}

	for i, q := range questions {
		if q.ID != i+1 {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Code:     CodeIDGap,
				Message:  fmt.Sprintf("question ids are not contiguous from 1: position %d holds id %d", i+1, q.ID),
			})
			break
		}
	}

	return issues
}

func inspectPrimary(doc string, table types.PrimaryTable) []Issue {
	// An empty table is reported once as a missing document
	if len(table) == 0 {
		return nil
	}
	var issues []Issue
	for _, axis := range types.Axes {
		for _, tier := range types.Tiers {
			if _, ok := table.Lookup(axis, tier); ok {
				continue
			}
			issues = append(issues, Issue{
				Severity: SeverityInfo,
				Code:     CodeMissingEntry,
				Message:  fmt.Sprintf("%s has no entry for %s/%s", doc, axis, tier),
			})
		}
	}
	return issues
}

func joinAxes(axes []types.Axis) string {
	parts := make([]string, len(axes))
	for i, a := range axes {
		parts[i] = string(a)
	}
	return strings.Join(parts, ",")
}
