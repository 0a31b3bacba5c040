package v1

import (
	"net/http"

	"github.com/vmunix/cpexport/internal/history"
)

func (s *Server) listTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, typesResponse{Types: s.deps.Types.Types()})
}

func (s *Server) refreshTypes(w http.ResponseWriter, r *http.Request) {
	n, err := s.deps.Types.Refresh(r.Context(), s.deps.Site)
	if err != nil {
		writeError(w, http.StatusBadGateway, "SITE_ERROR", err.Error())
		return
	}
	s.log.Info("custom types refreshed", "discovered", n)
	writeJSON(w, http.StatusOK, typesResponse{Types: s.deps.Types.Types(), Discovered: &n})
}

func (s *Server) listExports(w http.ResponseWriter, r *http.Request) {
	filter := history.Filter{
		Type:   queryString(r, "type"),
		Status: queryString(r, "status"),
		Limit:  queryInt(r, "limit", 50),
	}

	entries, err := s.deps.History.List(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}

	resp := listExportsResponse{
		Items: make([]exportResponse, len(entries)),
		Total: len(entries),
	}
	for i, e := range entries {
		resp.Items[i] = entryToResponse(e)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{Status: "ok", Version: s.cfg.Version}

	if s.deps.Site != nil {
		site := &siteStatus{URL: s.cfg.SiteURL}
		info, err := s.deps.Site.Site(r.Context())
		if err != nil {
			site.Error = err.Error()
		} else {
			site.Reachable = true
			site.Name = info.Name
		}
		resp.Site = site
	}

	writeJSON(w, http.StatusOK, resp)
}
