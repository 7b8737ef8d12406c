package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"safetyvitals/internal/model"
	"safetyvitals/internal/service"
)

// SurveyHandler handles survey endpoints
type SurveyHandler struct {
	surveySvc *service.SurveyService
}

// NewSurveyHandler creates a new survey handler
func NewSurveyHandler(surveySvc *service.SurveyService) *SurveyHandler {
	return &SurveyHandler{surveySvc: surveySvc}
}

// CreateSurveyRequest is the request body for creating or updating a survey
type CreateSurveyRequest struct {
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	TargetCompany string           `json:"targetCompany"`
	Questions     []model.Question `json:"questions"`
}

// Create handles POST /v1/surveys
func (h *SurveyHandler) Create(w http.ResponseWriter, r *http.Request) {
	orgID := orgFromContext(w, r)
	if orgID == "" {
		return
	}

	var req CreateSurveyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	survey := &model.Survey{
		OrgID:         orgID,
		Title:         req.Title,
		Description:   req.Description,
		TargetCompany: req.TargetCompany,
		Questions:     req.Questions,
	}

	id, err := h.surveySvc.Create(r.Context(), survey)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"surveyId": id})
}

// List handles GET /v1/surveys
func (h *SurveyHandler) List(w http.ResponseWriter, r *http.Request) {
	orgID := orgFromContext(w, r)
	if orgID == "" {
		return
	}

	surveys, err := h.surveySvc.List(r.Context(), orgID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if surveys == nil {
		surveys = []*model.Survey{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"surveys": surveys})
}

// Get handles GET /v1/surveys/{surveyId}
func (h *SurveyHandler) Get(w http.ResponseWriter, r *http.Request) {
	orgID := orgFromContext(w, r)
	if orgID == "" {
		return
	}

	survey, err := h.surveySvc.Get(r.Context(), orgID, mux.Vars(r)["surveyId"])
	if err != nil {
		writeSurveyError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, survey)
}

// Update handles PUT /v1/surveys/{surveyId}
func (h *SurveyHandler) Update(w http.ResponseWriter, r *http.Request) {
	orgID := orgFromContext(w, r)
	if orgID == "" {
		return
	}

	var req CreateSurveyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	survey := &model.Survey{
		ID:            mux.Vars(r)["surveyId"],
		Title:         req.Title,
		Description:   req.Description,
		TargetCompany: req.TargetCompany,
		Questions:     req.Questions,
	}

	if err := h.surveySvc.Update(r.Context(), orgID, survey); err != nil {
		writeSurveyError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"surveyId": survey.ID})
}

// Open handles POST /v1/surveys/{surveyId}/open
func (h *SurveyHandler) Open(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.surveySvc.Open)
}

// Close handles POST /v1/surveys/{surveyId}/close
func (h *SurveyHandler) Close(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.surveySvc.Close)
}

// Delete handles DELETE /v1/surveys/{surveyId}
func (h *SurveyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	orgID := orgFromContext(w, r)
	if orgID == "" {
		return
	}

	if err := h.surveySvc.Delete(r.Context(), orgID, mux.Vars(r)["surveyId"]); err != nil {
		writeSurveyError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Form handles GET /v1/surveys/{surveyId}/form (public, no auth)
func (h *SurveyHandler) Form(w http.ResponseWriter, r *http.Request) {
	form, err := h.surveySvc.PublicForm(r.Context(), mux.Vars(r)["surveyId"])
	if err != nil {
		writeSurveyError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, form)
}

func (h *SurveyHandler) transition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, orgID, surveyID string) error) {
	orgID := orgFromContext(w, r)
	if orgID == "" {
		return
	}

	surveyID := mux.Vars(r)["surveyId"]
	if err := fn(r.Context(), orgID, surveyID); err != nil {
		writeSurveyError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"surveyId": surveyID})
}

// writeSurveyError maps survey service errors to HTTP statuses
func writeSurveyError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSurveyNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotOwner):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrSurveyNotOpen), errors.Is(err, service.ErrBadTransition):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrNoAnswers),
		errors.Is(err, service.ErrUnknownQuestion),
		errors.Is(err, service.ErrMissingRequired):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
