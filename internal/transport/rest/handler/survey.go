package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"workpulse/internal/model"
	"workpulse/internal/service"
	"workpulse/internal/transport/rest/middleware"
)

// SurveyHandler handles survey answer endpoints
type SurveyHandler struct {
	surveySvc *service.SurveyService
}

// NewSurveyHandler creates a new survey handler
func NewSurveyHandler(surveySvc *service.SurveyService) *SurveyHandler {
	return &SurveyHandler{surveySvc: surveySvc}
}

type submitRequest struct {
	Answers map[string]model.AnswerValue `json:"answers"`
}

// Submit handles POST /v1/surveys/{domain}/answers
func (h *SurveyHandler) Submit(w http.ResponseWriter, r *http.Request) {
	domain := model.SurveyDomain(mux.Vars(r)["domain"])
	userID := middleware.GetUserID(r.Context())

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.surveySvc.Submit(r.Context(), userID, domain, req.Answers)
	if err != nil {
		if errors.Is(err, service.ErrUnknownDomain) || errors.Is(err, service.ErrEmptyAnswers) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, record)
}

// Latest handles GET /v1/surveys/{domain}/answers/latest
func (h *SurveyHandler) Latest(w http.ResponseWriter, r *http.Request) {
	domain := model.SurveyDomain(mux.Vars(r)["domain"])
	userID := middleware.GetUserID(r.Context())

	record, err := h.surveySvc.Latest(r.Context(), userID, domain)
	if err != nil {
		if errors.Is(err, service.ErrUnknownDomain) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if record == nil {
		writeError(w, http.StatusNotFound, "no completed survey for this domain")
		return
	}

	writeJSON(w, http.StatusOK, record)
}
