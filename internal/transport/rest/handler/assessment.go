package handler

import (
	"errors"
	"net/http"
	"strconv"

	"workpulse/internal/service"
	"workpulse/internal/transport/rest/middleware"
)

// AssessmentHandler handles burnout assessment endpoints
type AssessmentHandler struct {
	scoringSvc *service.ScoringService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(scoringSvc *service.ScoringService) *AssessmentHandler {
	return &AssessmentHandler{scoringSvc: scoringSvc}
}

// Compute handles POST /v1/assessments/compute
func (h *AssessmentHandler) Compute(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	assessment, err := h.scoringSvc.ComputeOrRefresh(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoAnswers) {
			writeError(w, http.StatusConflict, "complete at least one survey before requesting an assessment")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

// Latest handles GET /v1/assessments/latest
func (h *AssessmentHandler) Latest(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	assessment, err := h.scoringSvc.GetCached(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if assessment == nil {
		writeError(w, http.StatusNotFound, "no assessment available")
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

// History handles GET /v1/assessments/history?days=N
func (h *AssessmentHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	days := 30
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "days must be a positive integer")
			return
		}
		days = parsed
	}

	assessments, err := h.scoringSvc.History(r.Context(), userID, days)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, assessments)
}
