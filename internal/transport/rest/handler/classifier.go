package handler

import (
	"errors"
	"net/http"

	"workpulse/internal/service"
)

// ClassifierHandler handles classifier admin endpoints
type ClassifierHandler struct {
	classifierSvc *service.ClassifierService
}

// NewClassifierHandler creates a new classifier handler
func NewClassifierHandler(classifierSvc *service.ClassifierService) *ClassifierHandler {
	return &ClassifierHandler{classifierSvc: classifierSvc}
}

// Retrain handles POST /v1/classifier/train. Training takes seconds at the
// default sample counts, so it runs async and the call returns immediately.
// A second request while training is in flight gets 409.
func (h *ClassifierHandler) Retrain(w http.ResponseWriter, r *http.Request) {
	if err := h.classifierSvc.StartRetrain(); err != nil {
		if errors.Is(err, service.ErrTrainingInProgress) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "training"})
}

// Status handles GET /v1/classifier/status
func (h *ClassifierHandler) Status(w http.ResponseWriter, r *http.Request) {
	status := "not_ready"
	switch {
	case h.classifierSvc.Training():
		status = "training"
	case h.classifierSvc.Ready():
		status = "ready"
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": status})
}
