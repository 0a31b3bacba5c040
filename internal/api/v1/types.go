package v1

import (
	"time"

	"github.com/vmunix/cpexport/internal/export"
	"github.com/vmunix/cpexport/internal/history"
)

// ajaxResponse mirrors the {"success":..,"data":..} envelope admin-ajax
// callers expect from the per-page endpoint.
type ajaxResponse struct {
	Success bool   `json:"success"`
	Data    string `json:"data,omitempty"`
}

// settingsResponse is the response for GET /settings.
type settingsResponse struct {
	PerPage          int   `json:"per_page"`
	EffectivePerPage int   `json:"effective_per_page"`
	AllowedPerPage   []int `json:"allowed_per_page"`
}

// typesResponse is the response for GET /types and POST /types/refresh.
type typesResponse struct {
	Types      []export.TypeInfo `json:"types"`
	Discovered *int              `json:"discovered,omitempty"`
}

// exportResponse is the API representation of a history entry.
type exportResponse struct {
	ID         int64     `json:"id"`
	ExportID   string    `json:"export_id"`
	Type       string    `json:"type"`
	Status     string    `json:"status"`
	Records    int       `json:"records"`
	Queries    int       `json:"queries"`
	Bytes      int64     `json:"bytes"`
	Filename   string    `json:"filename,omitempty"`
	Error      string    `json:"error,omitempty"`
	DurationMS int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

// listExportsResponse is the response for GET /exports.
type listExportsResponse struct {
	Items []exportResponse `json:"items"`
	Total int              `json:"total"`
}

func entryToResponse(e *history.Entry) exportResponse {
	return exportResponse{
		ID:         e.ID,
		ExportID:   e.ExportID,
		Type:       e.Type,
		Status:     e.Status,
		Records:    e.Records,
		Queries:    e.Queries,
		Bytes:      e.Bytes,
		Filename:   e.Filename,
		Error:      e.Error,
		DurationMS: e.Duration.Milliseconds(),
		CreatedAt:  e.CreatedAt,
	}
}

// siteStatus reports whether the site's REST index answered.
type siteStatus struct {
	URL       string `json:"url"`
	Reachable bool   `json:"reachable"`
	Name      string `json:"name,omitempty"`
	Error     string `json:"error,omitempty"`
}

// statusResponse is the response for GET /status.
type statusResponse struct {
	Status  string      `json:"status"`
	Version string      `json:"version"`
	Site    *siteStatus `json:"site,omitempty"`
}
