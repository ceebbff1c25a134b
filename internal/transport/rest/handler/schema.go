package handler

import (
	"net/http"

	"revim/internal/service"
)

// SchemaHandler exposes the questionnaire to form-rendering clients
type SchemaHandler struct {
	assessmentSvc *service.AssessmentService
}

func NewSchemaHandler(assessmentSvc *service.AssessmentService) *SchemaHandler {
	return &SchemaHandler{
		assessmentSvc: assessmentSvc,
	}
}

// Get handles GET /v1/schema
func (h *SchemaHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.assessmentSvc.Schema())
}
