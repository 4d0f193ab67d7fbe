package alert

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/Damian-oliveiro/Comp-Arch-Guardian/internal/geo"
	"github.com/Damian-oliveiro/Comp-Arch-Guardian/internal/wifi"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type stubLocator struct {
	coords geo.Coordinates
	ok     bool
	calls  int
	points []wifi.AccessPoint
}

func (s *stubLocator) Locate(_ context.Context, points []wifi.AccessPoint) (geo.Coordinates, bool) {
	s.calls++
	s.points = points
	return s.coords, s.ok
}

type stubGeocoder struct {
	address string
	err     error
	calls   int
	coords  geo.Coordinates
}

func (s *stubGeocoder) ReverseGeocode(_ context.Context, coords geo.Coordinates) (string, error) {
	s.calls++
	s.coords = coords
	return s.address, s.err
}

type stubNotifier struct {
	err   error
	calls int
	last  Message
}

func (s *stubNotifier) Send(_ context.Context, msg Message) error {
	s.calls++
	s.last = msg
	return s.err
}

func TestProcessAlertWithoutScan(t *testing.T) {
	locator := &stubLocator{}
	geocoder := &stubGeocoder{}
	notifier := &stubNotifier{}
	service := NewService(locator, geocoder, notifier, newTestLogger())

	err := service.ProcessAlert(context.Background(), Alert{EventMessage: "Fall detected"})
	if err != nil {
		t.Fatalf("ProcessAlert() error = %v", err)
	}

	if notifier.calls != 1 {
		t.Fatalf("notifier calls = %d, want 1", notifier.calls)
	}
	if notifier.last.Text != "Guardian Alert: Fall detected" {
		t.Errorf("sent text = %q, want %q", notifier.last.Text, "Guardian Alert: Fall detected")
	}
	if notifier.last.Markdown {
		t.Error("sent message is Markdown, want plain")
	}
	if locator.calls != 0 || geocoder.calls != 0 {
		t.Errorf("enrichment ran without a scan: locator=%d geocoder=%d", locator.calls, geocoder.calls)
	}
}

func TestProcessAlertFullPipeline(t *testing.T) {
	locator := &stubLocator{coords: geo.Coordinates{Latitude: 37.0, Longitude: -122.0}, ok: true}
	geocoder := &stubGeocoder{address: "123 Main St"}
	notifier := &stubNotifier{}
	service := NewService(locator, geocoder, notifier, newTestLogger())

	a := Alert{
		EventMessage: "Fall detected",
		WifiScan:     "AA:BB:CC:DD:EE:FF,-55;11:22:33:44:55:66,-70",
	}
	if err := service.ProcessAlert(context.Background(), a); err != nil {
		t.Fatalf("ProcessAlert() error = %v", err)
	}

	if locator.calls != 1 {
		t.Fatalf("locator calls = %d, want 1", locator.calls)
	}
	if len(locator.points) != 2 {
		t.Errorf("locator received %d points, want 2", len(locator.points))
	}
	if geocoder.calls != 1 {
		t.Fatalf("geocoder calls = %d, want 1", geocoder.calls)
	}
	if geocoder.coords != locator.coords {
		t.Errorf("geocoder coords = %+v, want %+v", geocoder.coords, locator.coords)
	}

	if !notifier.last.Markdown {
		t.Error("enriched message is not Markdown")
	}
	if !strings.Contains(notifier.last.Text, "123 Main St") {
		t.Errorf("sent text missing address: %q", notifier.last.Text)
	}
	if !strings.Contains(notifier.last.Text, "https://www.google.com/maps?q=37.0,-122.0") {
		t.Errorf("sent text missing map link: %q", notifier.last.Text)
	}
}

func TestProcessAlertUnresolvedLocation(t *testing.T) {
	locator := &stubLocator{ok: false}
	geocoder := &stubGeocoder{}
	notifier := &stubNotifier{}
	service := NewService(locator, geocoder, notifier, newTestLogger())

	a := Alert{EventMessage: "Smoke", WifiScan: "AA:BB:CC:DD:EE:FF,-55"}
	if err := service.ProcessAlert(context.Background(), a); err != nil {
		t.Fatalf("ProcessAlert() error = %v", err)
	}

	if geocoder.calls != 0 {
		t.Errorf("geocoder called %d times after failed geolocation, want 0", geocoder.calls)
	}
	if !strings.Contains(notifier.last.Text, "Could not be determined.") {
		t.Errorf("sent text missing fallback: %q", notifier.last.Text)
	}
}

func TestProcessAlertUnparseableScan(t *testing.T) {
	locator := &stubLocator{ok: true}
	notifier := &stubNotifier{}
	service := NewService(locator, &stubGeocoder{}, notifier, newTestLogger())

	a := Alert{EventMessage: "Smoke", WifiScan: "garbage-with-no-commas"}
	if err := service.ProcessAlert(context.Background(), a); err != nil {
		t.Fatalf("ProcessAlert() error = %v", err)
	}

	if locator.calls != 0 {
		t.Errorf("locator called %d times for an empty parse, want 0", locator.calls)
	}
	if !strings.Contains(notifier.last.Text, "Could not be determined.") {
		t.Errorf("sent text missing fallback: %q", notifier.last.Text)
	}
}

func TestProcessAlertDeliveryFailure(t *testing.T) {
	sendErr := errors.New("Telegram API returned status 503: try again")
	notifier := &stubNotifier{err: sendErr}
	service := NewService(&stubLocator{}, &stubGeocoder{}, notifier, newTestLogger())

	err := service.ProcessAlert(context.Background(), Alert{EventMessage: "Fall"})
	if err == nil {
		t.Fatal("ProcessAlert() error = nil, want delivery failure")
	}
	if !errors.Is(err, sendErr) {
		t.Errorf("ProcessAlert() error = %v, want wrapped %v", err, sendErr)
	}
}
