package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"revim/internal/service"
	"revim/internal/transport/rest/handler"
)

// Container holds all dependencies for the router
type Container struct {
	AssessmentService *service.AssessmentService
	SnapshotService   *service.SnapshotService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService)
	snapshotHandler := handler.NewSnapshotHandler(c.SnapshotService, c.AssessmentService)
	schemaHandler := handler.NewSchemaHandler(c.AssessmentService)

	r.Use(corsMiddleware)

	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/assessments", assessmentHandler.Evaluate).Methods("POST", "OPTIONS")
	v1.HandleFunc("/assessments/{assessmentId}", assessmentHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/schema", schemaHandler.Get).Methods("GET", "OPTIONS")

	v1.HandleFunc("/snapshots", snapshotHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/snapshots", snapshotHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/snapshots/{snapshotId}", snapshotHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/snapshots/{snapshotId}", snapshotHandler.Delete).Methods("DELETE", "OPTIONS")
	v1.HandleFunc("/snapshots/{snapshotId}/assessment", snapshotHandler.Evaluate).Methods("POST", "OPTIONS")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
