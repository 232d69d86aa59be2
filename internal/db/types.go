package db

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/NeyGuaiume2/sdisc/internal/types"
	"github.com/google/uuid"
)

// Default and maximum page sizes for ListResults
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// SaveInput is what SaveResult persists for one assessment
type SaveInput struct {
	UserName     string
	UserEmail    string
	RawResponses []types.Answer
	Result       *types.Result
}

// ResultRecord is a stored assessment. JSON columns are kept encoded and decoded on demand.
type ResultRecord struct {
	ID               uuid.UUID       `json:"id"`
	UserName         *string         `json:"user_name,omitempty"`
	UserEmail        *string         `json:"user_email,omitempty"`
	DScore           int             `json:"d_score"`
	IScore           int             `json:"i_score"`
	SScore           int             `json:"s_score"`
	CScore           int             `json:"c_score"`
	PrimaryProfile   string          `json:"primary_profile"`
	SecondaryProfile string          `json:"secondary_profile"`
	Incomplete       bool            `json:"incomplete"`
	CreatedAt        time.Time       `json:"created_at"`
	RawResponsesJSON json.RawMessage `json:"-"`
	DiscLevelsJSON   json.RawMessage `json:"-"`
	ResultJSON       json.RawMessage `json:"-"`
}

// RawResponses decodes the submitted answers
func (r *ResultRecord) RawResponses() ([]types.Answer, error) {
	var answers []types.Answer
	if err := json.Unmarshal(r.RawResponsesJSON, &answers); err != nil {
		return nil, fmt.Errorf("failed to decode raw responses: %w", err)
	}
	return answers, nil
}

// DiscLevels decodes the per-axis tiers
func (r *ResultRecord) DiscLevels() (map[string]types.Tier, error) {
	var levels map[string]types.Tier
	if err := json.Unmarshal(r.DiscLevelsJSON, &levels); err != nil {
		return nil, fmt.Errorf("failed to decode disc levels: %w", err)
	}
	return levels, nil
}

// Result decodes the full result record
func (r *ResultRecord) Result() (*types.Result, error) {
	var result types.Result
	if err := json.Unmarshal(r.ResultJSON, &result); err != nil {
		return nil, fmt.Errorf("failed to decode result: %w", err)
	}
	return &result, nil
}

// Scores returns the stored per-axis scores
func (r *ResultRecord) Scores() types.AxisScores {
	return types.AxisScores{D: r.DScore, I: r.IScore, S: r.SScore, C: r.CScore}
}

// ResultSummary is a row of ListResults
type ResultSummary struct {
	ID               uuid.UUID `json:"id"`
	UserName         *string   `json:"user_name,omitempty"`
	PrimaryProfile   string    `json:"primary_profile"`
	SecondaryProfile string    `json:"secondary_profile"`
	Incomplete       bool      `json:"incomplete"`
	CreatedAt        time.Time `json:"created_at"`
}

// clampLimit maps a requested page size into [1, MaxListLimit], 0 meaning the default
func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	}
	return limit
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
