// Package refdata loads, validates and serves the read-only DISC reference data.
package refdata

import (
	"sort"

	"github.com/NeyGuaiume2/sdisc/internal/types"
)

// Contents is the decoded reference data a Store is built from
type Contents struct {
	Questions             []types.Question
	Descriptions          map[types.Axis]types.Description
	GeneralPrimary        types.PrimaryTable
	ProfessionalPrimary   types.PrimaryTable
	GeneralSecondary      types.SecondaryTable
	ProfessionalSecondary types.SecondaryTable
}

// Store is the immutable, process-wide reference data.
// It is safe for concurrent use; nothing mutates it after NewStore returns.
type Store struct {
	questions []types.Question
	byID      map[int]types.Question
	contents  Contents
	issues    []Issue
}

// NewStore builds a Store and records the integrity issues found in the contents.
// Nil tables are replaced by empty ones.
func NewStore(c Contents) *Store {
	return newStore(c, nil)
}

func newStore(c Contents, loadIssues []Issue) *Store {
	if c.Descriptions == nil {
		c.Descriptions = map[types.Axis]types.Description{}
	}
	if c.GeneralPrimary == nil {
		c.GeneralPrimary = types.PrimaryTable{}
	}
	if c.ProfessionalPrimary == nil {
		c.ProfessionalPrimary = types.PrimaryTable{}
	}
	if c.GeneralSecondary == nil {
		c.GeneralSecondary = types.SecondaryTable{}
	}
	if c.ProfessionalSecondary == nil {
		c.ProfessionalSecondary = types.SecondaryTable{}
	}

	questions := make([]types.Question, len(c.Questions))
	copy(questions, c.Questions)
	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].ID < questions[j].ID
	})

	byID := make(map[int]types.Question, len(questions))
	for _, q := range questions {
		// First occurrence wins; duplicates are reported by inspect
		if _, seen := byID[q.ID]; !seen {
			byID[q.ID] = q
		}
	}

	c.Questions = questions
	issues := append([]Issue{}, loadIssues...)
	issues = append(issues, inspect(c)...)

	return &Store{
		questions: questions,
		byID:      byID,
		contents:  c,
		issues:    issues,
	}
}

// Questions returns the question bank ordered by id.
func (s *Store) Questions() []types.Question {
	out := make([]types.Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// Question looks up a question by id.
func (s *Store) Question(id int) (types.Question, bool) {
	q, ok := s.byID[id]
	return q, ok
}

// Len returns the number of distinct question ids.
func (s *Store) Len() int {
	return len(s.byID)
}

// Description returns the flat description of an axis.
func (s *Store) Description(a types.Axis) (types.Description, bool) {
	d, ok := s.contents.Descriptions[a]
	return d, ok
}

// Title returns the display title of an axis, falling back to the axis letter.
func (s *Store) Title(a types.Axis) string {
	if d, ok := s.contents.Descriptions[a]; ok && d.Title != "" {
		return d.Title
	}
	return string(a)
}

// GeneralPrimary returns the general primary table. Callers must not modify it.
func (s *Store) GeneralPrimary() types.PrimaryTable {
	return s.contents.GeneralPrimary
}

// ProfessionalPrimary returns the professional primary table. Callers must not modify it.
func (s *Store) ProfessionalPrimary() types.PrimaryTable {
	return s.contents.ProfessionalPrimary
}

// GeneralSecondary returns the general secondary-combination table. Callers must not modify it.
func (s *Store) GeneralSecondary() types.SecondaryTable {
	return s.contents.GeneralSecondary
}

// ProfessionalSecondary returns the professional secondary-combination table. Callers must not modify it.
func (s *Store) ProfessionalSecondary() types.SecondaryTable {
	return s.contents.ProfessionalSecondary
}

// Issues returns the integrity issues recorded while building the store.
func (s *Store) Issues() []Issue {
	out := make([]Issue, len(s.issues))
	copy(out, s.issues)
	return out
}
