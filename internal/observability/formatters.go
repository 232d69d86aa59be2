// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/NeyGuaiume2/sdisc/internal/refdata"
	"github.com/NeyGuaiume2/sdisc/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, boxWidth-4)))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad right-pads to the box interior; widths are counted in runes since the text is Portuguese
func pad(s string) string {
	n := utf8.RuneCountInString(s)
	if n >= boxWidth-4 {
		return s
	}
	return s + strings.Repeat(" ", boxWidth-4-n)
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

// wrap breaks text into lines no wider than width, on word boundaries.
func wrap(text string, width int) []string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && utf8.RuneCountInString(line.String())+1+utf8.RuneCountInString(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// PrintResult outputs the scores, profile and interpretation coverage of a result.
func (p *Printer) PrintResult(result *types.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Profile:  %s/%s\n", result.PrimaryProfile, result.SecondaryProfile))
	sb.WriteString("\n")

	sb.WriteString("Scores:\n")
	for _, as := range result.Ranking {
		sb.WriteString(fmt.Sprintf("  %s  %4d  %s\n", as.Axis, as.Score, result.DiscLevels[string(as.Axis)]))
	}
	sb.WriteString("\n")

	b := result.Interpretations
	sb.WriteString("Interpretations:\n")
	for _, row := range []struct {
		name string
		in   types.Interpretation
	}{
		{"general primary", b.General.Primary},
		{"general secondary", b.General.Secondary},
		{"professional primary", b.Professional.Primary},
		{"professional secondary", b.Professional.Secondary},
	} {
		sb.WriteString(fmt.Sprintf("  %-23s %s\n", row.name, row.in.Status))
	}

	w := result.Warnings
	if w.SkippedAnswers > 0 || w.UnresolvedWords > 0 || w.DiscardedLeast > 0 || len(w.DataIntegrity) > 0 {
		sb.WriteString("\nWarnings:\n")
		if w.SkippedAnswers > 0 {
			sb.WriteString(fmt.Sprintf("  • %d answers skipped\n", w.SkippedAnswers))
		}
		if w.UnresolvedWords > 0 {
			sb.WriteString(fmt.Sprintf("  • %d words not matched\n", w.UnresolvedWords))
		}
		if w.DiscardedLeast > 0 {
			sb.WriteString(fmt.Sprintf("  • %d least picks discarded\n", w.DiscardedLeast))
		}
		count := min(len(w.DataIntegrity), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", w.DataIntegrity[i]))
		}
		if len(w.DataIntegrity) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(w.DataIntegrity)-maxItemsToShow))
		}
	}

	title := "DISC RESULT"
	if result.Incomplete {
		title += " (INCOMPLETE)"
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummary outputs the plain-language summary, wrapped to the box width.
func (p *Printer) PrintSummary(summary types.Summary) {
	if summary.Text == "" {
		return
	}

	var lines []string
	for _, paragraph := range strings.Split(summary.Text, "\n") {
		if strings.TrimSpace(paragraph) == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, wrap(paragraph, boxWidth-4)...)
	}

	if len(summary.DevelopmentAreas) > 0 {
		lines = append(lines, "", "Development areas:")
		for _, area := range summary.DevelopmentAreas {
			lines = append(lines, wrap("• "+area, boxWidth-4)...)
		}
	}

	p.printBox("SUMMARY", strings.Join(lines, "\n"))
}

// PrintIssues outputs reference data integrity issues grouped by severity.
func (p *Printer) PrintIssues(issues []refdata.Issue) {
	if len(issues) == 0 {
		p.printBox("REFERENCE DATA", "No issues found")
		return
	}

	counts := map[refdata.Severity]int{}
	for _, issue := range issues {
		counts[issue.Severity]++
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Errors: %d  Warnings: %d  Info: %d\n\n",
		counts[refdata.SeverityError], counts[refdata.SeverityWarning], counts[refdata.SeverityInfo]))

	for _, severity := range []refdata.Severity{refdata.SeverityError, refdata.SeverityWarning, refdata.SeverityInfo} {
		for _, issue := range issues {
			if issue.Severity != severity {
				continue
			}
			for i, line := range wrap(issue.String(), boxWidth-6) {
				if i == 0 {
					sb.WriteString("• " + line + "\n")
				} else {
					sb.WriteString("  " + line + "\n")
				}
			}
		}
	}

	p.printBox("REFERENCE DATA ISSUES", strings.TrimSuffix(sb.String(), "\n"))
}
