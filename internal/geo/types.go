package geo

import (
	"strconv"
	"strings"
)

// Coordinates represents a resolved geographic position. A value is
// either fully present or absent; there is no partial location.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// QueryString renders the coordinates as "lat,lng" for use in map
// links and geocoding requests.
func (c Coordinates) QueryString() string {
	return formatCoord(c.Latitude) + "," + formatCoord(c.Longitude)
}

// MapURL returns a Google Maps link pointing at the coordinates.
func (c Coordinates) MapURL() string {
	return "https://www.google.com/maps?q=" + c.QueryString()
}

// formatCoord renders a coordinate with the fewest digits that round
// trip, keeping a trailing ".0" on whole degrees so 37.0 stays "37.0".
func formatCoord(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
