package handler

import (
	"net/http"

	"github.com/alvesgeorge/PlanerTrip/internal/citysearch"
)

// SearchCities handles GET /cities?q=. The provider never fails; an empty
// query returns an empty list.
func (s *Server) SearchCities(w http.ResponseWriter, r *http.Request) {
	var query string
	if !queryParam(w, r, "q", &query) {
		return
	}

	out := []citysearch.Suggestion{}
	for sg := range s.cities.Search(r.Context(), query) {
		out = append(out, sg)
	}
	writeJSON(w, http.StatusOK, out)
}
