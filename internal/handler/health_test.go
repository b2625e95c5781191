package handler_test

import (
	"context"
	"encoding/json"
	"iter"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alvesgeorge/PlanerTrip/apidoc"
	"github.com/alvesgeorge/PlanerTrip/internal/citysearch"
	"github.com/alvesgeorge/PlanerTrip/internal/handler"
)

// TestGetHealth_returns200WithOKStatus verifies that GET /healthz returns
// HTTP 200 and a JSON body of {"status":"ok"}.
func TestGetHealth_returns200WithOKStatus(t *testing.T) {
	// Arrange
	httpHandler := handler.NewHealthHandler().Routes()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	// Act
	httpHandler.ServeHTTP(rec, req)

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)

	var body handler.HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "ok", body.Status)
}

// TestHealthHandler_OmitsUnwiredRoutes verifies that routes whose service was
// not supplied are not registered.
func TestHealthHandler_OmitsUnwiredRoutes(t *testing.T) {
	h := handler.NewHealthHandler().Routes()

	for _, path := range []string{"/trips", "/export", "/cities?q=par", "/openapi.yaml"} {
		rec := serve(h, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

// TestGetOpenAPI_servesDocument verifies that the embedded API description
// is served as YAML and names the trip routes.
func TestGetOpenAPI_servesDocument(t *testing.T) {
	h := handler.NewServer(handler.Services{OpenAPI: apidoc.OpenAPI}, nil).Routes()

	rec := serve(h, http.MethodGet, "/openapi.yaml", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "openapi: 3.0.3")
	assert.Contains(t, rec.Body.String(), "/trips/{tripId}/budget/status:")
}

// fakeCities is a citysearch.Provider returning a fixed list.
type fakeCities struct {
	gotQuery string
	results  []citysearch.Suggestion
}

func (f *fakeCities) Search(_ context.Context, query string) iter.Seq[citysearch.Suggestion] {
	f.gotQuery = query
	return func(yield func(citysearch.Suggestion) bool) {
		for _, s := range f.results {
			if !yield(s) {
				return
			}
		}
	}
}

func TestSearchCities_200(t *testing.T) {
	cities := &fakeCities{results: []citysearch.Suggestion{
		{Name: "Paris", Country: "France", Address: "Paris, France", Category: "Cidade", Local: true},
	}}

	rec := serve(newHTTPHandler(handler.Services{Cities: cities}), http.MethodGet, "/cities?q=par", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "par", cities.gotQuery)
	var resp []citysearch.Suggestion
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Paris", resp[0].Name)
}

func TestSearchCities_OfflineProvider(t *testing.T) {
	rec := serve(newHTTPHandler(handler.Services{Cities: citysearch.Offline{}}), http.MethodGet, "/cities?q=zzzz", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
