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

// SnapshotHandler handles answer-set save/load endpoints
type SnapshotHandler struct {
	snapshotSvc   *service.SnapshotService
	assessmentSvc *service.AssessmentService
}

func NewSnapshotHandler(snapshotSvc *service.SnapshotService, assessmentSvc *service.AssessmentService) *SnapshotHandler {
	return &SnapshotHandler{
		snapshotSvc:   snapshotSvc,
		assessmentSvc: assessmentSvc,
	}
}

// CreateSnapshotRequest is the request body for saving answers
type CreateSnapshotRequest struct {
	Label   string          `json:"label"`
	Answers model.AnswerSet `json:"answers"`
}

// Create handles POST /v1/snapshots
func (h *SnapshotHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSnapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	snapshot, err := h.snapshotSvc.Save(r.Context(), req.Label, req.Answers)
	if err != nil {
		if errors.Is(err, service.ErrStorageUnavailable) {
			writeError(w, http.StatusServiceUnavailable, "storage unavailable")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, snapshot)
}

// List handles GET /v1/snapshots
func (h *SnapshotHandler) List(w http.ResponseWriter, r *http.Request) {
	snapshots, err := h.snapshotSvc.List(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrStorageUnavailable) {
			writeError(w, http.StatusServiceUnavailable, "storage unavailable")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"snapshots": snapshots})
}

// Get handles GET /v1/snapshots/{snapshotId}
func (h *SnapshotHandler) Get(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.loadSnapshot(w, r)
	if err != nil {
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

// Delete handles DELETE /v1/snapshots/{snapshotId}
func (h *SnapshotHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["snapshotId"]

	if err := h.snapshotSvc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrStorageUnavailable) {
			writeError(w, http.StatusServiceUnavailable, "storage unavailable")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Evaluate handles POST /v1/snapshots/{snapshotId}/assessment
func (h *SnapshotHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.loadSnapshot(w, r)
	if err != nil {
		return
	}

	record, err := h.assessmentSvc.EvaluateSnapshot(r.Context(), snapshot)
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

func (h *SnapshotHandler) loadSnapshot(w http.ResponseWriter, r *http.Request) (*model.Snapshot, error) {
	id := mux.Vars(r)["snapshotId"]

	snapshot, err := h.snapshotSvc.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStorageUnavailable):
			writeError(w, http.StatusServiceUnavailable, "storage unavailable")
		case errors.Is(err, mongo.ErrNoDocuments):
			writeError(w, http.StatusNotFound, "snapshot not found")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return nil, err
	}
	return snapshot, nil
}
