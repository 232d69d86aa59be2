// Package server provides the HTTP REST API for DISC assessments.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/NeyGuaiume2/sdisc/internal/scoring"
	"github.com/google/uuid"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrResultNotFound indicates no stored result has the ID
type ErrResultNotFound struct {
	ID uuid.UUID
}

func (e *ErrResultNotFound) Error() string {
	return fmt.Sprintf("result not found: %s", e.ID)
}

// ErrPersistenceDisabled indicates the server runs without a result store
var ErrPersistenceDisabled = errors.New("result persistence is not configured")

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	var notFoundErr *ErrResultNotFound
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, scoring.ErrTotalInputFailure):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.Is(err, ErrPersistenceDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
