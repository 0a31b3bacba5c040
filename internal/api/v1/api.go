// Package v1 implements the native REST API.
package v1

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
)

// Config holds API server configuration.
type Config struct {
	APIKey  string
	Version string
	SiteURL string
}

// Server is the v1 API server.
type Server struct {
	deps ServerDeps
	cfg  Config
	log  *slog.Logger
}

// New creates a new v1 API server.
func New(deps ServerDeps, cfg Config, log *slog.Logger) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingDependency, err)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Server{deps: deps, cfg: cfg, log: log}, nil
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Export (form-compatible: unauthorized or invalid requests get no output)
	mux.HandleFunc("GET /api/v1/export", s.exportFile)
	mux.HandleFunc("POST /api/v1/export", s.exportFile)

	// Settings
	mux.HandleFunc("GET /api/v1/settings", s.requireAPIKey(s.getSettings))
	mux.HandleFunc("POST /api/v1/settings/per-page", s.setPerPage)

	// Types
	mux.HandleFunc("GET /api/v1/types", s.requireAPIKey(s.listTypes))
	mux.HandleFunc("POST /api/v1/types/refresh", s.requireAPIKey(s.requireSite(s.refreshTypes)))

	// History
	mux.HandleFunc("GET /api/v1/exports", s.requireAPIKey(s.requireHistory(s.listExports)))

	// System
	mux.HandleFunc("GET /api/v1/status", s.requireAPIKey(s.getStatus))
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	writeJSON(w, code, errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// queryInt extracts an optional integer from query string.
func queryInt(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}

// queryString extracts an optional string from query string.
func queryString(r *http.Request, name string) *string {
	val := r.URL.Query().Get(name)
	if val == "" {
		return nil
	}
	return &val
}
