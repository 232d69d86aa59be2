package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/NeyGuaiume2/sdisc/internal/refdata"
	"github.com/NeyGuaiume2/sdisc/internal/types"
	"github.com/stretchr/testify/assert"
)

func sampleResult() *types.Result {
	return &types.Result{
		DScore:           12,
		IScore:           3,
		SScore:           -12,
		PrimaryProfile:   "D",
		SecondaryProfile: "I",
		DiscLevels:       map[string]types.Tier{"D": types.TierHigh, "I": types.TierModerate, "S": types.TierModerate, "C": types.TierModerate},
		Ranking: []types.AxisScore{
			{Axis: types.Dominance, Score: 12},
			{Axis: types.Influence, Score: 3},
			{Axis: types.Conformity, Score: 0},
			{Axis: types.Steadiness, Score: -12},
		},
		Interpretations: types.Bundle{
			General: types.InterpretationPair{
				Primary:   types.Interpretation{Type: types.Dominance, Status: types.StatusAvailable},
				Secondary: types.Interpretation{Type: types.Influence, Status: types.StatusUnavailable},
			},
		},
	}
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResult(sampleResult())
	output := buf.String()

	assert.Contains(t, output, "DISC RESULT")
	assert.NotContains(t, output, "INCOMPLETE")
	assert.Contains(t, output, "D/I")
	assert.Contains(t, output, "high")
	assert.Contains(t, output, "-12")
	assert.Contains(t, output, "unavailable")
	assert.NotContains(t, output, "Warnings:")
}

func TestPrintResult_Warnings(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := sampleResult()
	result.Incomplete = true
	result.Warnings = types.Warnings{
		SkippedAnswers:  2,
		UnresolvedWords: 1,
		DataIntegrity:   []string{"a1", "a2", "a3", "a4", "a5", "a6", "a7"},
	}

	p.PrintResult(result)
	output := buf.String()

	assert.Contains(t, output, "DISC RESULT (INCOMPLETE)")
	assert.Contains(t, output, "2 answers skipped")
	assert.Contains(t, output, "1 words not matched")
	assert.Contains(t, output, "a5")
	assert.NotContains(t, output, "a6")
	assert.Contains(t, output, "... and 2 more")
}

func TestPrintResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResult(nil)

	assert.Empty(t, buf.String())
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSummary(types.Summary{
		Text:             strings.Repeat("Perfil dominante com foco em resultados. ", 5),
		DevelopmentAreas: []string{"Ouvir mais"},
	})
	output := buf.String()

	assert.Contains(t, output, "SUMMARY")
	assert.Contains(t, output, "Development areas:")
	assert.Contains(t, output, "• Ouvir mais")
	assert.NotContains(t, output, "...", "summary text is wrapped, not truncated")
}

func TestPrintSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSummary(types.Summary{})
	assert.Empty(t, buf.String())
}

func TestPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintIssues([]refdata.Issue{
		{Severity: refdata.SeverityWarning, Code: refdata.CodeReusedWord, Message: `word "firme" appears in questions [3 9]`},
		{Severity: refdata.SeverityError, Code: refdata.CodeDuplicateWord, QuestionID: 3, Message: `word "Firme" is listed for axes D,C`},
	})
	output := buf.String()

	assert.Contains(t, output, "REFERENCE DATA ISSUES")
	assert.Contains(t, output, "Errors: 1  Warnings: 1  Info: 0")
	// Errors are listed first
	assert.Less(t, strings.Index(output, "[error]"), strings.Index(output, "[warning]"))
}

func TestPrintIssues_None(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintIssues(nil)
	assert.Contains(t, buf.String(), "No issues found")
}

func TestPrintBox_Alignment(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TÍTULO", "Dominância\n"+strings.Repeat("ç", 100))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), "line %q", line)
	}
}

func TestWrap(t *testing.T) {
	lines := wrap("um dois três quatro", 9)
	assert.Equal(t, []string{"um dois", "três", "quatro"}, lines)
	assert.Nil(t, wrap("   ", 10))
}
