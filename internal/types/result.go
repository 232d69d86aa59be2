// Package types provides type definitions for structured data used throughout the DISC assessment system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Summary is the plain-language digest of a profile
type Summary struct {
	Text               string   `json:"text"`
	PrimaryTitle       string   `json:"primary_title,omitempty"`
	SecondaryTitle     string   `json:"secondary_title,omitempty"`
	SecondaryInfluence string   `json:"secondary_influence,omitempty"`
	HowToWorkWith      string   `json:"how_to_work_with,omitempty"`
	DevelopmentAreas   []string `json:"development_areas,omitempty"`
}

// Warnings lists the non-fatal conditions met while producing a result
type Warnings struct {
	SkippedAnswers  int      `json:"skipped_answers"`
	UnresolvedWords int      `json:"unresolved_words"`
	DiscardedLeast  int      `json:"discarded_least"`
	DataIntegrity   []string `json:"data_integrity,omitempty"`
}

// Result is the single artifact handed to persistence and rendering.
// It holds values only and never references the reference data it was built from.
type Result struct {
	DScore           int             `json:"d_score"`
	IScore           int             `json:"i_score"`
	SScore           int             `json:"s_score"`
	CScore           int             `json:"c_score"`
	PrimaryProfile   string          `json:"primary_profile"`
	SecondaryProfile string          `json:"secondary_profile"`
	DiscLevels       map[string]Tier `json:"disc_levels"`
	Ranking          []AxisScore     `json:"ranking"`
	Interpretations  Bundle          `json:"interpretations"`
	Summary          Summary         `json:"summary"`
	Warnings         Warnings        `json:"warnings"`
	Incomplete       bool            `json:"incomplete"`
}

// Scores rebuilds the AxisScores from the flat score fields.
func (r Result) Scores() AxisScores {
	return AxisScores{D: r.DScore, I: r.IScore, S: r.SScore, C: r.CScore}
}
