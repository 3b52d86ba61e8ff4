package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"gapscan/app"
	"gapscan/domain/core"
	"gapscan/domain/scan"
	"gapscan/internal/logging"
)

// Server exposes the analysis service over HTTP
type Server struct {
	router  *chi.Mux
	service *app.AnalysisService
	listen  string
	logger  *logging.Logger
}

// NewServer creates an API server around an analysis service
func NewServer(listen string, service *app.AnalysisService) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		service: service,
		listen:  listen,
		logger:  logging.DefaultLogger,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures HTTP middleware
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

// setupRoutes configures the API routes
func (s *Server) setupRoutes() {
	s.router.Post("/analyze", s.handleAnalyze)
	s.router.Get("/healthz", s.handleHealth)
}

// Handler returns the underlying router (used by tests)
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts serving on the configured address
func (s *Server) ListenAndServe() error {
	s.logger.Info("gapscan API listening on %s", s.listen)
	return http.ListenAndServe(s.listen, s.router)
}

// analyzeRequest is the POST /analyze body
type analyzeRequest struct {
	Values         []int64 `json:"values"`
	Factor         float64 `json:"factor"`
	MinClusterSize int     `json:"min_cluster_size"`
	WithProfile    bool    `json:"with_profile"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	params, err := scan.NewParams(req.Factor, req.MinClusterSize)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	report, err := s.service.Analyze(r.Context(), app.AnalyzeRequest{
		Values:      req.Values,
		Params:      params,
		WithProfile: req.WithProfile,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if core.IsInvalidParameterError(err) {
			status = http.StatusBadRequest
		}
		s.logger.Error("analyze failed: %v", err)
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.DefaultLogger.Error("write response: %v", err)
	}
}
