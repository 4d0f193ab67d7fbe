// Package telegram delivers alert messages through the Telegram Bot API.
package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"github.com/Damian-oliveiro/Comp-Arch-Guardian/internal/alert"
)

// requestTimeout bounds every sendMessage call.
const requestTimeout = 10 * time.Second

// Sender sends messages to a fixed chat through one bot.
type Sender struct {
	logger  *logrus.Logger
	baseURL string
	token   string
	chatID  string
	client  *http.Client
}

// NewSender creates a new Sender. baseURL is the API host
// ("https://api.telegram.org" in production).
func NewSender(logger *logrus.Logger, baseURL, token, chatID string) *Sender {
	return &Sender{
		logger:  logger,
		baseURL: baseURL,
		token:   token,
		chatID:  chatID,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// Send issues one sendMessage call. Any transport error or non-2xx
// status is returned as a delivery failure carrying the API's
// description, so the caller can surface it.
func (s *Sender) Send(ctx context.Context, msg alert.Message) error {
	query := url.Values{}
	query.Set("chat_id", s.chatID)
	query.Set("text", msg.Text)
	if msg.Markdown {
		query.Set("parse_mode", "Markdown")
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage?%s", s.baseURL, s.token, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build Telegram request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send Telegram request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("Telegram API returned status %d: %s", resp.StatusCode, apiDescription(resp.Body))
	}

	s.logger.WithFields(logrus.Fields{
		"chat_id":  s.chatID,
		"markdown": msg.Markdown,
	}).Debug("Telegram message sent")
	return nil
}

// apiDescription extracts the error description from a Bot API failure
// body, falling back to the raw body when it is not the usual shape.
func apiDescription(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return "no response body"
	}

	var apiErr struct {
		Description string `json:"description"`
	}
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Description != "" {
		return apiErr.Description
	}
	return string(raw)
}
