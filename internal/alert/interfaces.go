package alert

import (
	"context"

	"github.com/Damian-oliveiro/Comp-Arch-Guardian/internal/geo"
	"github.com/Damian-oliveiro/Comp-Arch-Guardian/internal/wifi"
)

// Locator defines the contract for resolving coordinates from Wi-Fi
// observations. ok=false means the position could not be determined.
type Locator interface {
	Locate(ctx context.Context, points []wifi.AccessPoint) (geo.Coordinates, bool)
}

// Geocoder defines the contract for turning coordinates into a
// human-readable address.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, coords geo.Coordinates) (string, error)
}

// Notifier defines the contract for delivering the final message.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}
