package geo

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"github.com/Damian-oliveiro/Comp-Arch-Guardian/internal/wifi"
)

// requestTimeout bounds every outbound lookup in this package.
const requestTimeout = 10 * time.Second

// Locator resolves coordinates from Wi-Fi observations via the Google
// Geolocation API.
type Locator struct {
	logger  *logrus.Logger
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewLocator creates a new Locator against the given geolocation endpoint.
func NewLocator(logger *logrus.Logger, baseURL, apiKey string) *Locator {
	return &Locator{
		logger:  logger,
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// Locate submits the observations and returns the estimated
// coordinates. Enrichment is best effort: any network error, non-2xx
// status, or response without a location yields ok=false and is only
// logged, never surfaced as an error.
func (l *Locator) Locate(ctx context.Context, points []wifi.AccessPoint) (Coordinates, bool) {
	body, err := json.Marshal(struct {
		WifiAccessPoints []wifi.AccessPoint `json:"wifiAccessPoints"`
	}{WifiAccessPoints: points})
	if err != nil {
		l.logger.WithFields(logrus.Fields{"error": err}).Error("Failed to encode geolocation request")
		return Coordinates{}, false
	}

	url := l.baseURL + "?key=" + l.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		l.logger.WithFields(logrus.Fields{"error": err}).Error("Failed to build geolocation request")
		return Coordinates{}, false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		l.logger.WithFields(logrus.Fields{"error": err}).Warn("Geolocation request failed")
		return Coordinates{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		l.logger.WithFields(logrus.Fields{"status": resp.StatusCode}).Warn("Geolocation service returned non-2xx status")
		return Coordinates{}, false
	}

	var result struct {
		Location *struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
		Accuracy float64 `json:"accuracy"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		l.logger.WithFields(logrus.Fields{"error": err}).Warn("Failed to decode geolocation response")
		return Coordinates{}, false
	}

	if result.Location == nil {
		l.logger.Warn("Geolocation response carried no location")
		return Coordinates{}, false
	}

	return Coordinates{
		Latitude:  result.Location.Lat,
		Longitude: result.Location.Lng,
	}, true
}
