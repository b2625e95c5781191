package citysearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
)

const (
	// DefaultGeoDBURL is the RapidAPI endpoint of the GeoDB Cities API.
	DefaultGeoDBURL = "https://wft-geo-db.p.rapidapi.com/v1/geo/"

	geoDBTimeout       = 15 * time.Second
	geoDBLimit         = 8
	geoDBMinPopulation = 100000
)

// GeoDB is a client for the GeoDB Cities API served through RapidAPI.
type GeoDB struct {
	baseURL string
	apiKey  string
	host    string
	client  *http.Client
}

// NewGeoDB returns a client for baseURL (DefaultGeoDBURL when empty)
// authenticated with apiKey.
func NewGeoDB(baseURL, apiKey string) (*GeoDB, error) {
	if baseURL == "" {
		baseURL = DefaultGeoDBURL
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("citysearch.NewGeoDB: invalid base URL %q", baseURL)
	}
	return &GeoDB{
		baseURL: strings.TrimSuffix(baseURL, "/") + "/",
		apiKey:  apiKey,
		host:    u.Host,
		client:  &http.Client{Timeout: geoDBTimeout},
	}, nil
}

// StatusError reports a non-200 answer from the API.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return "citysearch: unexpected status " + strconv.Itoa(e.Code)
}

type geoDBResponse struct {
	Data []domain.City `json:"data"`
}

// Cities returns up to 8 cities of at least 100,000 inhabitants whose name
// starts with prefix, most populous first.
func (g *GeoDB) Cities(ctx context.Context, prefix string) ([]domain.City, error) {
	params := url.Values{}
	params.Set("namePrefix", prefix)
	params.Set("limit", strconv.Itoa(geoDBLimit))
	params.Set("minPopulation", strconv.Itoa(geoDBMinPopulation))
	params.Set("sort", "-population")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"cities?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("citysearch.GeoDB.Cities: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", g.apiKey)
	req.Header.Set("X-RapidAPI-Host", g.host)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("citysearch.GeoDB.Cities: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("citysearch.GeoDB.Cities: %w", &StatusError{Code: resp.StatusCode})
	}

	var body geoDBResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("citysearch.GeoDB.Cities: decode: %w", err)
	}
	return body.Data, nil
}
