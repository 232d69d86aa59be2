// Package types provides type definitions for structured data used throughout the DISC assessment system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var answerValidator = validator.New()

// Answer is one submitted most/least pick for a question
type Answer struct {
	QuestionID int    `json:"question_id" validate:"required,gt=0"`
	Most       string `json:"most" validate:"required"`
	Least      string `json:"least" validate:"required"`
}

// Normalized returns a copy with surrounding whitespace removed from both picks.
func (a Answer) Normalized() Answer {
	return Answer{
		QuestionID: a.QuestionID,
		Most:       strings.TrimSpace(a.Most),
		Least:      strings.TrimSpace(a.Least),
	}
}

// Validate checks that the answer carries a question id and both picks.
// Blank picks are rejected: the answer is validated after normalization.
func (a Answer) Validate() error {
	return answerValidator.Struct(a.Normalized())
}

// pick is the value shape of the keyed answer form {"<id>": {"most": .., "least": ..}}
type pick struct {
	Most  string `json:"most"`
	Least string `json:"least"`
}

// DecodeAnswers decodes submitted answers from JSON.
// Two shapes are accepted: an array of Answer objects, or an object keyed by question id
// whose values carry "most" and "least". Elements that cannot be decoded (wrong field types,
// non-numeric keys) are dropped and counted in skipped. Only a payload that is neither an
// array nor an object is an error.
func DecodeAnswers(raw []byte) (answers []Answer, skipped int, err error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, 0, fmt.Errorf("answers payload is empty")
	}

	switch trimmed[0] {
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return nil, 0, fmt.Errorf("failed to parse answers array: %w", err)
		}
		answers = make([]Answer, 0, len(elems))
		for _, elem := range elems {
			var a Answer
			if err := json.Unmarshal(elem, &a); err != nil {
				skipped++
				continue
			}
			answers = append(answers, a)
		}
		return answers, skipped, nil

	case '{':
		var keyed map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &keyed); err != nil {
			return nil, 0, fmt.Errorf("failed to parse answers object: %w", err)
		}
		answers = make([]Answer, 0, len(keyed))
		for key, value := range keyed {
			id, convErr := strconv.Atoi(strings.TrimSpace(key))
			if convErr != nil {
				skipped++
				continue
			}
			var p pick
			if err := json.Unmarshal(value, &p); err != nil {
				skipped++
				continue
			}
			answers = append(answers, Answer{QuestionID: id, Most: p.Most, Least: p.Least})
		}
		// Map iteration order is random
		sort.Slice(answers, func(i, j int) bool {
			return answers[i].QuestionID < answers[j].QuestionID
		})
		return answers, skipped, nil
	}

	return nil, 0, fmt.Errorf("answers payload must be a JSON array or object")
}
