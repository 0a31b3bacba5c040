package v1

import (
	"crypto/subtle"
	"net/http"
)

// authorized reports whether the request carries the configured API key,
// either in the X-Api-Key header or the apikey query parameter.
func (s *Server) authorized(r *http.Request) bool {
	apiKey := r.Header.Get("X-Api-Key")
	if apiKey == "" {
		apiKey = r.URL.Query().Get("apikey")
	}
	if s.cfg.APIKey == "" || apiKey == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(apiKey), []byte(s.cfg.APIKey)) == 1
}

// requireAPIKey wraps a handler and returns 401 for unauthorized callers.
func (s *Server) requireAPIKey(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.authorized(r) {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid API key")
			return
		}
		next(w, r)
	}
}

// requireSite wraps a handler and returns 503 if the site client is not configured.
func (s *Server) requireSite(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.deps.Site == nil {
			writeError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Site client not configured")
			return
		}
		next(w, r)
	}
}

// requireHistory wraps a handler and returns 503 if export history is not configured.
func (s *Server) requireHistory(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.deps.History == nil {
			writeError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Export history not configured")
			return
		}
		next(w, r)
	}
}
