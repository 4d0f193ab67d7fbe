// Package wifi parses the Guardian device's Wi-Fi scan payload.
//
// The device reports nearby access points as a single string of the
// form "mac1,rssi1;mac2,rssi2;...". The format is fixed firmware
// behavior and must be preserved exactly.
package wifi

import (
	"strconv"
	"strings"
)

// AccessPoint represents one observed Wi-Fi network. The JSON tags
// match the Google Geolocation API request shape so observations can
// be submitted without conversion.
type AccessPoint struct {
	MACAddress     string `json:"macAddress"`
	SignalStrength int    `json:"signalStrength"`
}

// Parse converts a scan payload into access point observations.
// Segments that do not yield exactly a MAC address and a numeric
// signal strength are skipped; a malformed segment never fails the
// scan as a whole. An empty result means no usable observations.
func Parse(scan string) []AccessPoint {
	var points []AccessPoint

	for _, segment := range strings.Split(scan, ";") {
		fields := strings.Split(segment, ",")
		if len(fields) != 2 {
			continue
		}

		mac := strings.TrimSpace(fields[0])
		if mac == "" {
			continue
		}

		rssi, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			continue
		}

		points = append(points, AccessPoint{
			MACAddress:     mac,
			SignalStrength: rssi,
		})
	}

	return points
}
