package alert

import (
	"github.com/Damian-oliveiro/Comp-Arch-Guardian/internal/geo"
)

// Alert represents one inbound device request. WifiScan is empty when
// the device supplied no scan payload.
type Alert struct {
	EventMessage string
	WifiScan     string
}

// HasScan reports whether the device supplied a Wi-Fi scan payload.
func (a Alert) HasScan() bool {
	return a.WifiScan != ""
}

// Message is the final outbound payload. Markdown is set whenever a
// scan was supplied and the text carries emphasis markers.
type Message struct {
	Text     string
	Markdown bool
}

// Location is the outcome of the enrichment pipeline for one alert.
// Resolved implies Coordinates are valid; Address is empty when the
// reverse lookup failed, with AddressErr telling the two failure
// classes apart.
type Location struct {
	Resolved    bool
	Coordinates geo.Coordinates
	Address     string
	AddressErr  error
}
