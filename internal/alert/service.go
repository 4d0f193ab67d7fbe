// Package alert orchestrates the Guardian pipeline: parse the Wi-Fi
// scan, resolve a position, reverse-geocode it, format the message and
// deliver it.
package alert

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Damian-oliveiro/Comp-Arch-Guardian/internal/metrics"
	"github.com/Damian-oliveiro/Comp-Arch-Guardian/internal/wifi"
)

// Service drives one alert from inbound request to delivered
// notification. It holds no state across alerts.
type Service struct {
	locator  Locator
	geocoder Geocoder
	notifier Notifier
	logger   *logrus.Logger
}

// NewService creates a new alert service.
func NewService(locator Locator, geocoder Geocoder, notifier Notifier, logger *logrus.Logger) *Service {
	return &Service{
		locator:  locator,
		geocoder: geocoder,
		notifier: notifier,
		logger:   logger,
	}
}

// ProcessAlert runs the pipeline for one alert. Enrichment failures
// degrade to fallback text; only a delivery failure is returned.
func (s *Service) ProcessAlert(ctx context.Context, a Alert) error {
	msg := s.buildMessage(ctx, a)

	if err := s.notifier.Send(ctx, msg); err != nil {
		metrics.DeliveryFailures.Inc()
		s.logger.WithFields(logrus.Fields{
			"error":         err,
			"event_message": a.EventMessage,
		}).Error("Failed to deliver alert")
		return fmt.Errorf("deliver alert: %w", err)
	}

	metrics.AlertsForwarded.Inc()
	s.logger.WithFields(logrus.Fields{
		"event_message": a.EventMessage,
		"enriched":      a.HasScan(),
	}).Info("Alert forwarded")
	return nil
}

// buildMessage formats the alert, running the location pipeline when a
// scan is present.
func (s *Service) buildMessage(ctx context.Context, a Alert) Message {
	if !a.HasScan() {
		return Format(a, nil)
	}
	loc := s.resolveLocation(ctx, a.WifiScan)
	return Format(a, loc)
}

// resolveLocation runs scan -> coordinates -> address. Every failure
// along the way is absorbed into an unresolved or partially resolved
// Location.
func (s *Service) resolveLocation(ctx context.Context, scan string) *Location {
	points := wifi.Parse(scan)
	if len(points) == 0 {
		s.logger.WithFields(logrus.Fields{"scan": scan}).Warn("Wi-Fi scan yielded no usable observations")
		metrics.LocationLookups.WithLabelValues("unresolved").Inc()
		return &Location{}
	}

	coords, ok := s.locator.Locate(ctx, points)
	if !ok {
		metrics.LocationLookups.WithLabelValues("unresolved").Inc()
		return &Location{}
	}
	metrics.LocationLookups.WithLabelValues("resolved").Inc()

	address, err := s.geocoder.ReverseGeocode(ctx, coords)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"error":  err,
			"coords": coords.QueryString(),
		}).Warn("Reverse geocoding failed")
	}

	return &Location{
		Resolved:    true,
		Coordinates: coords,
		Address:     address,
		AddressErr:  err,
	}
}
