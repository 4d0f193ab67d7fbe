package alert

import (
	"errors"
	"strings"

	"github.com/Damian-oliveiro/Comp-Arch-Guardian/internal/geo"
)

// Fallback address strings shown to the recipient. These are a
// formatting concern: resolver failures reach this package as errors,
// never as magic strings.
const (
	addressNotFound   = "Address not found."
	addressUnresolved = "Could not resolve address."
	locationUnknown   = "Could not be determined."
)

// Format assembles the outbound message text. loc is nil when no scan
// was supplied; a bare alert is plain text, an enriched alert uses
// Markdown emphasis for its section labels.
func Format(a Alert, loc *Location) Message {
	text := "Guardian Alert: " + a.EventMessage
	if loc == nil {
		return Message{Text: text}
	}

	var b strings.Builder
	b.WriteString(text)
	b.WriteString("\n\n")

	if !loc.Resolved {
		b.WriteString("*Location:* " + locationUnknown)
		return Message{Text: b.String(), Markdown: true}
	}

	b.WriteString("*Location:* " + addressText(loc))
	b.WriteString("\n*Map:* " + loc.Coordinates.MapURL())
	return Message{Text: b.String(), Markdown: true}
}

func addressText(loc *Location) string {
	switch {
	case loc.AddressErr == nil:
		return loc.Address
	case errors.Is(loc.AddressErr, geo.ErrNoResults):
		return addressNotFound
	default:
		return addressUnresolved
	}
}
