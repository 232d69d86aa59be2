package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/NeyGuaiume2/sdisc/internal/db"
	"github.com/NeyGuaiume2/sdisc/internal/scoring"
	"github.com/NeyGuaiume2/sdisc/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxRequestBytes = 1 << 20

var requestValidator = validator.New()

// AssessmentRequest represents the request body for POST /assessments.
// Answers is either an array of {question_id, most, least} or an object keyed by question id.
type AssessmentRequest struct {
	Name    string          `json:"name,omitempty" validate:"omitempty,max=100"`
	Email   string          `json:"email,omitempty" validate:"omitempty,email,max=100"`
	Answers json.RawMessage `json:"answers" validate:"required"`
}

// AssessmentResponse represents the response for POST /assessments
type AssessmentResponse struct {
	ID        string        `json:"id,omitempty"`
	Persisted bool          `json:"persisted"`
	Result    *types.Result `json:"result"`
}

// RejectedResponse is returned when no answer could be used
type RejectedResponse struct {
	Error          string `json:"error"`
	TotalAnswers   int    `json:"total_answers"`
	SkippedAnswers int    `json:"skipped_answers"`
	Unresolved     int    `json:"unresolved_words"`
}

// ResultResponse represents the response for GET /results/{id}
type ResultResponse struct {
	ID        string        `json:"id"`
	UserName  *string       `json:"user_name,omitempty"`
	CreatedAt string        `json:"created_at"`
	Result    *types.Result `json:"result"`
}

// QuestionsResponse represents the response for GET /questions
type QuestionsResponse struct {
	Count     int                  `json:"count"`
	Questions []types.QuestionView `json:"questions"`
}

// handleQuestions lists the question bank without the axis mapping
func (s *Server) handleQuestions(w http.ResponseWriter, _ *http.Request) {
	questions := s.engine.Store().Questions()
	views := make([]types.QuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, q.View())
	}
	s.jsonResponse(w, http.StatusOK, QuestionsResponse{Count: len(views), Questions: views})
}

// handleCreateAssessment scores a submission and stores the result when persistence is configured
func (s *Server) handleCreateAssessment(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)

	var req AssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.metrics.ObserveOutcome(OutcomeInvalid)
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := requestValidator.Struct(req); err != nil {
		s.metrics.ObserveOutcome(OutcomeInvalid)
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	out, err := s.engine.EvaluateJSONOutcome(req.Answers)
	if err != nil {
		if errors.Is(err, scoring.ErrTotalInputFailure) {
			s.metrics.ObserveOutcome(OutcomeRejected)
			s.metrics.ObserveSkipped(out.Report.Skipped)
			s.jsonResponse(w, HTTPStatus(err), RejectedResponse{
				Error:          err.Error(),
				TotalAnswers:   out.Report.Total,
				SkippedAnswers: out.Report.Skipped,
				Unresolved:     out.Report.Unresolved(),
			})
			return
		}
		s.metrics.ObserveOutcome(OutcomeInvalid)
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.metrics.ObserveResult(out.Result)

	resp := AssessmentResponse{Result: out.Result}
	if s.store == nil {
		s.jsonResponse(w, http.StatusOK, resp)
		return
	}

	// Decode cannot fail here: EvaluateJSONOutcome already accepted the payload
	answers, _, _ := types.DecodeAnswers(req.Answers)
	id, err := s.store.SaveResult(r.Context(), db.SaveInput{
		UserName:     req.Name,
		UserEmail:    req.Email,
		RawResponses: answers,
		Result:       out.Result,
	})
	if err != nil {
		s.logger.Error("failed to save result", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save result")
		return
	}

	resp.ID = id.String()
	resp.Persisted = true
	s.jsonResponse(w, http.StatusCreated, resp)
}

// handleGetResult returns a stored result by ID
func (s *Server) handleGetResult(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, HTTPStatus(ErrPersistenceDisabled), ErrPersistenceDisabled.Error())
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid result ID format")
		return
	}

	rec, err := s.store.GetResult(r.Context(), id)
	if err != nil {
		s.logger.Error("failed to get result", zap.String("id", id.String()), zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if rec == nil {
		notFound := &ErrResultNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	result, err := rec.Result()
	if err != nil {
		s.logger.Error("stored result is unreadable", zap.String("id", id.String()), zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Stored result is unreadable")
		return
	}

	s.jsonResponse(w, http.StatusOK, ResultResponse{
		ID:        rec.ID.String(),
		UserName:  rec.UserName,
		CreatedAt: rec.CreatedAt.Format(time.RFC3339),
		Result:    result,
	})
}

// handleListResults lists recent results; ?limit= caps the page size
func (s *Server) handleListResults(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, HTTPStatus(ErrPersistenceDisabled), ErrPersistenceDisabled.Error())
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	summaries, err := s.store.ListResults(r.Context(), limit)
	if err != nil {
		s.logger.Error("failed to list results", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"count":   len(summaries),
		"results": summaries,
	})
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		verr := &ErrValidation{Field: fe.Field(), Message: "failed on " + fe.Tag()}
		return verr.Error()
	}
	return err.Error()
}
