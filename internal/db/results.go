package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/NeyGuaiume2/sdisc/internal/types"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// encodedResult holds the JSON columns of a SaveInput
type encodedResult struct {
	rawResponses []byte
	discLevels   []byte
	result       []byte
}

func encodeSaveInput(input SaveInput) (*encodedResult, error) {
	if input.Result == nil {
		return nil, errors.New("result is required")
	}

	answers := input.RawResponses
	if answers == nil {
		answers = []types.Answer{}
	}
	rawResponses, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal raw responses: %w", err)
	}
	discLevels, err := json.Marshal(input.Result.DiscLevels)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal disc levels: %w", err)
	}
	result, err := json.Marshal(input.Result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &encodedResult{rawResponses: rawResponses, discLevels: discLevels, result: result}, nil
}

// SaveResult stores an assessment result and returns its ID
func (db *DB) SaveResult(ctx context.Context, input SaveInput) (uuid.UUID, error) {
	enc, err := encodeSaveInput(input)
	if err != nil {
		return uuid.Nil, err
	}

	r := input.Result
	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO disc_results (user_name, user_email, raw_responses, d_score, i_score, s_score, c_score,
		                           primary_profile, secondary_profile, disc_levels, result, incomplete)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id`,
		nullable(input.UserName), nullable(input.UserEmail), enc.rawResponses,
		r.DScore, r.IScore, r.SScore, r.CScore,
		r.PrimaryProfile, r.SecondaryProfile, enc.discLevels, enc.result, r.Incomplete,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save result: %w", err)
	}
	return id, nil
}

// GetResult retrieves a stored result by ID. It returns nil, nil when no row matches.
func (db *DB) GetResult(ctx context.Context, id uuid.UUID) (*ResultRecord, error) {
	var rec ResultRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_name, user_email, raw_responses, d_score, i_score, s_score, c_score,
		        primary_profile, secondary_profile, disc_levels, result, incomplete, created_at
		 FROM disc_results WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.UserName, &rec.UserEmail, &rec.RawResponsesJSON,
		&rec.DScore, &rec.IScore, &rec.SScore, &rec.CScore,
		&rec.PrimaryProfile, &rec.SecondaryProfile, &rec.DiscLevelsJSON, &rec.ResultJSON,
		&rec.Incomplete, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get result %s: %w", id, err)
	}
	return &rec, nil
}

// ListResults returns the most recent results, newest first
func (db *DB) ListResults(ctx context.Context, limit int) ([]ResultSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_name, primary_profile, secondary_profile, incomplete, created_at
		 FROM disc_results ORDER BY created_at DESC LIMIT $1`,
		clampLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	defer rows.Close()

	summaries := []ResultSummary{}
	for rows.Next() {
		var s ResultSummary
		if err := rows.Scan(&s.ID, &s.UserName, &s.PrimaryProfile, &s.SecondaryProfile, &s.Incomplete, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate results: %w", err)
	}
	return summaries, nil
}

// DeleteResult removes a stored result. It reports whether a row was deleted.
func (db *DB) DeleteResult(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM disc_results WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete result %s: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
