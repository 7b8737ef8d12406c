package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"safetyvitals/internal/model"
	"safetyvitals/internal/service"
)

// ResponseHandler handles response submission and retrieval
type ResponseHandler struct {
	responseSvc *service.ResponseService
}

// NewResponseHandler creates a new response handler
func NewResponseHandler(responseSvc *service.ResponseService) *ResponseHandler {
	return &ResponseHandler{responseSvc: responseSvc}
}

// Submit handles POST /v1/surveys/{surveyId}/responses (public, no auth)
func (h *ResponseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	var sub service.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	respondentID, err := h.responseSvc.Submit(r.Context(), surveyID, &sub)
	if err != nil {
		writeSurveyError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"respondentId": respondentID})
}

// List handles GET /v1/surveys/{surveyId}/responses (admin)
func (h *ResponseHandler) List(w http.ResponseWriter, r *http.Request) {
	orgID := orgFromContext(w, r)
	if orgID == "" {
		return
	}

	responses, err := h.responseSvc.Responses(r.Context(), orgID, mux.Vars(r)["surveyId"])
	if err != nil {
		writeSurveyError(w, err)
		return
	}
	if responses == nil {
		responses = []*model.Response{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"responses": responses})
}
