package v1

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/vmunix/cpexport/internal/export"
	"github.com/vmunix/cpexport/internal/settings"
)

// Messages returned by the per-page endpoint.
const (
	msgNotInteger   = "Error: The value supplied was not an integer."
	msgUnauthorized = "Error: You are not allowed to change this setting."
	msgSaveFailed   = "Error: The setting could not be saved."
)

func (s *Server) getSettings(w http.ResponseWriter, r *http.Request) {
	n, err := s.deps.Settings.PerPage(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}

	effective := n
	if !export.ValidPageSize(effective) {
		effective = export.DefaultPageSize
	}
	writeJSON(w, http.StatusOK, settingsResponse{
		PerPage:          n,
		EffectivePerPage: effective,
		AllowedPerPage:   export.AllowedPageSizes,
	})
}

// setPerPage accepts per_page as a form field or a JSON body.
func (s *Server) setPerPage(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, ajaxResponse{Data: msgUnauthorized})
		return
	}

	raw, err := perPageInput(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ajaxResponse{Data: msgNotInteger})
		return
	}
	n, err := settings.ParsePerPage(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ajaxResponse{Data: msgNotInteger})
		return
	}

	if err := s.deps.Settings.SetPerPage(r.Context(), n); err != nil {
		if errors.Is(err, settings.ErrInvalidPerPage) {
			writeJSON(w, http.StatusBadRequest, ajaxResponse{Data: msgNotInteger})
			return
		}
		s.log.Error("save per-page setting failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, ajaxResponse{Data: msgSaveFailed})
		return
	}

	s.log.Info("per-page setting updated", "per_page", n)
	writeJSON(w, http.StatusOK, ajaxResponse{Success: true})
}

func perPageInput(r *http.Request) (string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		return r.FormValue("per_page"), nil
	}

	var body struct {
		PerPage json.Number `json:"per_page"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return "", err
	}
	return body.PerPage.String(), nil
}
