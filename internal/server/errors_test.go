package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/NeyGuaiume2/sdisc/internal/scoring"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "email", Message: "invalid format"}
	assert.Equal(t, "validation error: email - invalid format", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestErrResultNotFound(t *testing.T) {
	id := uuid.New()
	err := &ErrResultNotFound{ID: id}
	assert.Equal(t, "result not found: "+id.String(), err.Error())
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "ErrValidation",
			err:      &ErrValidation{Field: "answers", Message: "required"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "no answers",
			err:      scoring.ErrNoAnswers,
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped unresolvable answers",
			err:      fmt.Errorf("evaluate: %w", scoring.ErrNoResolvableAnswers),
			expected: http.StatusBadRequest,
		},
		{
			name:     "persistence disabled",
			err:      ErrPersistenceDisabled,
			expected: http.StatusServiceUnavailable,
		},
		{
			name:     "unknown error",
			err:      assert.AnError,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
