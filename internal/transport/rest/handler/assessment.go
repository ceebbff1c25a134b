package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"

	"revim/internal/engine"
	"revim/internal/model"
	"revim/internal/service"
)

// AssessmentHandler handles evaluation endpoints
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
}

func NewAssessmentHandler(assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentSvc: assessmentSvc,
	}
}

// EvaluateRequest is the request body for running an assessment
type EvaluateRequest struct {
	Answers model.AnswerSet `json:"answers"`
}

// Evaluate handles POST /v1/assessments
func (h *AssessmentHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.assessmentSvc.Evaluate(r.Context(), req.Answers)
	if err != nil {
		var mismatch *engine.SchemaMismatchError
		if errors.As(err, &mismatch) {
			writeError(w, http.StatusUnprocessableEntity, mismatch.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// Get handles GET /v1/assessments/{assessmentId}
func (h *AssessmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["assessmentId"]

	record, err := h.assessmentSvc.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStorageUnavailable):
			writeError(w, http.StatusServiceUnavailable, "storage unavailable")
		case errors.Is(err, mongo.ErrNoDocuments):
			writeError(w, http.StatusNotFound, "assessment not found")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, record)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
