package v1

import (
	"errors"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vmunix/cpexport/internal/export"
)

// Response headers describing the export to API clients.
const (
	HeaderExportID      = "X-Export-Id"
	HeaderExportRecords = "X-Export-Records"
	HeaderExportQueries = "X-Export-Queries"
)

// exportFile streams an export as a file download. Requests that are not
// authorized, not marked as downloads or name an unknown type produce no
// output at all.
func (s *Server) exportFile(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if d := r.Form.Get("download"); d == "" || d == "0" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	in := url.Values{}
	for k, v := range r.Form {
		if k != "apikey" && k != "download" {
			in[k] = v
		}
	}

	file, err := s.deps.Exporter.Export(r.Context(), export.NewRequest(in))
	switch {
	case errors.Is(err, export.ErrInvalidType):
		s.log.Debug("export skipped", "type", in.Get("type"), "error", err)
		w.WriteHeader(http.StatusNoContent)
		return
	case errors.Is(err, export.ErrInvalidDateRange):
		writeError(w, http.StatusBadRequest, "INVALID_DATE_RANGE", err.Error())
		return
	case err != nil:
		writeError(w, http.StatusBadGateway, "EXPORT_FAILED", err.Error())
		return
	}

	h := w.Header()
	h.Set("Content-Description", "File Transfer")
	h.Set("Content-Disposition", contentDisposition(file.Name))
	h.Set("Content-Type", file.ContentType)
	h.Set("Content-Length", strconv.Itoa(len(file.Data)))
	h.Set(HeaderExportID, file.ExportID)
	h.Set(HeaderExportRecords, strconv.Itoa(file.Records))
	h.Set(HeaderExportQueries, strconv.Itoa(file.Queries))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Data)
}

// contentDisposition formats an attachment header per RFC 6266. Names
// outside ASCII are sent as an RFC 2231 filename* parameter.
func contentDisposition(name string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": name}); v != "" {
		return v
	}
	return "attachment"
}
