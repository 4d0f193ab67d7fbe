// Package server exposes the Guardian HTTP API.
package server

import (
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/Damian-oliveiro/Comp-Arch-Guardian/internal/alert"
	"github.com/Damian-oliveiro/Comp-Arch-Guardian/internal/metrics"
)

// Handler maps the inbound API onto the alert service.
type Handler struct {
	service *alert.Service
	logger  *logrus.Logger
}

// NewHandler creates a new Handler.
func NewHandler(service *alert.Service, logger *logrus.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Router builds the route table.
func (h *Handler) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestLogger(h.logger))

	router.HandleFunc("/", h.handleRoot).Methods(http.MethodGet)
	router.HandleFunc("/health", h.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/send_alert", h.handleSendAlert).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return router
}

type sendAlertResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

type rootResponse struct {
	Status string `json:"status"`
}

// handleSendAlert validates the request, runs the pipeline and maps
// the outcome: 400 for a missing event_message (no outbound call is
// made), 502 when delivery fails, 200 otherwise.
func (h *Handler) handleSendAlert(w http.ResponseWriter, r *http.Request) {
	metrics.AlertsReceived.Inc()

	eventMessage := r.URL.Query().Get("event_message")
	if eventMessage == "" {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{
			Detail: "event_message parameter cannot be empty.",
		})
		return
	}

	h.logger.WithFields(logrus.Fields{
		"event_message": eventMessage,
	}).Info("Received alert from Guardian device")

	// The device sends the literal string "none" when it has no scan.
	scan := r.URL.Query().Get("wifi_scan")
	if scan == "none" {
		scan = ""
	}

	a := alert.Alert{EventMessage: eventMessage, WifiScan: scan}
	if err := h.service.ProcessAlert(r.Context(), a); err != nil {
		h.writeJSON(w, http.StatusBadGateway, errorResponse{
			Detail: fmt.Sprintf("Failed to send request to Telegram: %v", err),
		})
		return
	}

	h.writeJSON(w, http.StatusOK, sendAlertResponse{
		Status:  "success",
		Message: "Alert forwarded",
	})
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, rootResponse{Status: "Guardian Alert Server is running"})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.WithFields(logrus.Fields{"error": err}).Error("Failed to encode response")
	}
}
