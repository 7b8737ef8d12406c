package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"safetyvitals/internal/model"
	"safetyvitals/internal/service"
)

// TemplateHandler handles option template endpoints
type TemplateHandler struct {
	templateSvc *service.TemplateService
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templateSvc *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateSvc: templateSvc}
}

// TemplateRequest is the request body for creating or updating a template
type TemplateRequest struct {
	Name    string    `json:"name"`
	Options []string  `json:"options"`
	Scores  []float64 `json:"scores"`
}

// Create handles POST /v1/templates
func (h *TemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	orgID := orgFromContext(w, r)
	if orgID == "" {
		return
	}

	var req TemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tpl := &model.OptionTemplate{
		OrgID:   orgID,
		Name:    req.Name,
		Options: req.Options,
		Scores:  req.Scores,
	}

	id, err := h.templateSvc.Create(r.Context(), tpl)
	if err != nil {
		writeTemplateError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"templateId": id})
}

// List handles GET /v1/templates
func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	orgID := orgFromContext(w, r)
	if orgID == "" {
		return
	}

	templates, err := h.templateSvc.List(r.Context(), orgID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if templates == nil {
		templates = []*model.OptionTemplate{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"templates": templates})
}

// Get handles GET /v1/templates/{templateId}
func (h *TemplateHandler) Get(w http.ResponseWriter, r *http.Request) {
	orgID := orgFromContext(w, r)
	if orgID == "" {
		return
	}

	tpl, err := h.templateSvc.Get(r.Context(), orgID, mux.Vars(r)["templateId"])
	if err != nil {
		writeTemplateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tpl)
}

// Update handles PUT /v1/templates/{templateId}
func (h *TemplateHandler) Update(w http.ResponseWriter, r *http.Request) {
	orgID := orgFromContext(w, r)
	if orgID == "" {
		return
	}

	var req TemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tpl := &model.OptionTemplate{
		ID:      mux.Vars(r)["templateId"],
		Name:    req.Name,
		Options: req.Options,
		Scores:  req.Scores,
	}

	if err := h.templateSvc.Update(r.Context(), orgID, tpl); err != nil {
		writeTemplateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"templateId": tpl.ID})
}

// Delete handles DELETE /v1/templates/{templateId}
func (h *TemplateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	orgID := orgFromContext(w, r)
	if orgID == "" {
		return
	}

	if err := h.templateSvc.Delete(r.Context(), orgID, mux.Vars(r)["templateId"]); err != nil {
		writeTemplateError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeTemplateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrTemplateNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrTemplateLengths):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
