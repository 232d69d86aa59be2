// Package types provides type definitions for structured data used throughout the DISC assessment system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Question represents one forced-choice item: an id plus one word per axis
type Question struct {
	ID int    `json:"id" yaml:"id"`
	D  string `json:"D" yaml:"D"`
	I  string `json:"I" yaml:"I"`
	S  string `json:"S" yaml:"S"`
	C  string `json:"C" yaml:"C"`
}

// Word returns the word authored for the given axis, or "" for an invalid axis.
func (q Question) Word(a Axis) string {
	switch a {
	case Dominance:
		return q.D
	case Influence:
		return q.I
	case Steadiness:
		return q.S
	case Conformity:
		return q.C
	}
	return ""
}

// Words returns the four words in D, I, S, C order.
func (q Question) Words() []string {
	return []string{q.D, q.I, q.S, q.C}
}

// QuestionView is the public form of a question: its words without the axis mapping
type QuestionView struct {
	ID      int      `json:"id"`
	Options []string `json:"options"`
}

// View strips the axis mapping from the question.
func (q Question) View() QuestionView {
	return QuestionView{ID: q.ID, Options: q.Words()}
}

// NormalizeWord trims, collapses inner whitespace and case-folds a word for comparison.
func NormalizeWord(word string) string {
	return strings.ToLower(strings.Join(strings.Fields(word), " "))
}
