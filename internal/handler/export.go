package handler

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/alvesgeorge/PlanerTrip/internal/service"
)

// GetExport implements GET /export.
// The JSON form is the nested snapshot; ?format=csv returns one row per item.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	var format string
	if !queryParam(w, r, "format", &format) {
		return
	}

	switch format {
	case "", "json":
		snap, err := s.export.Snapshot(r.Context())
		if err != nil {
			s.writeServiceError(w, r, err, "export not found")
			return
		}
		writeJSON(w, http.StatusOK, snap)
	case "csv":
		rows, err := s.export.Rows(r.Context())
		if err != nil {
			s.writeServiceError(w, r, err, "export not found")
			return
		}
		var buf bytes.Buffer
		if err := service.WriteCSV(&buf, rows); err != nil {
			s.writeServiceError(w, r, err, "export not found")
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="trips.csv"`)
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
	default:
		writeJSON(w, http.StatusBadRequest, requestBody("format must be one of json, csv"))
	}
}
