package geo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// ErrNoResults is returned when the geocoding service answers
// successfully but knows no address for the coordinates.
var ErrNoResults = errors.New("no geocoding results")

// ErrLookupFailed is returned when the geocoding call itself fails.
var ErrLookupFailed = errors.New("geocoding lookup failed")

// Geocoder converts coordinates into a human-readable address via the
// Google Maps Geocoding API.
type Geocoder struct {
	logger  *logrus.Logger
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewGeocoder creates a new Geocoder against the given geocoding endpoint.
func NewGeocoder(logger *logrus.Logger, baseURL, apiKey string) *Geocoder {
	return &Geocoder{
		logger:  logger,
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// ReverseGeocode returns the first result's formatted address for the
// coordinates. ErrNoResults means the service had nothing for the
// position; any other failure wraps ErrLookupFailed.
func (g *Geocoder) ReverseGeocode(ctx context.Context, coords Coordinates) (string, error) {
	query := url.Values{}
	query.Set("latlng", coords.QueryString())
	query.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.WithFields(logrus.Fields{"error": err}).Warn("Geocoding request failed")
		return "", fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		g.logger.WithFields(logrus.Fields{"status": resp.StatusCode}).Warn("Geocoding service returned non-2xx status")
		return "", fmt.Errorf("%w: status %d", ErrLookupFailed, resp.StatusCode)
	}

	var result struct {
		Results []struct {
			FormattedAddress string `json:"formatted_address"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		g.logger.WithFields(logrus.Fields{"error": err}).Warn("Failed to decode geocoding response")
		return "", fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}

	if len(result.Results) == 0 {
		return "", ErrNoResults
	}

	return result.Results[0].FormattedAddress, nil
}
