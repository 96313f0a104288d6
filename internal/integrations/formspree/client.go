package formspree

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	// ErrNotConfigured is returned when no form URL is set
	ErrNotConfigured = errors.New("formspree client: form url not configured")

	// ErrInternal is returned for transport failures
	ErrInternal = errors.New("formspree client: internal error")

	// ErrInvalidResponse is returned when the relay rejects the submission
	ErrInvalidResponse = errors.New("formspree client: invalid response")
)

// Logger is the logging interface the client expects
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// BookingNotification is the staff notification sent after a confirmed
// booking
type BookingNotification struct {
	ClientName  string  `json:"clientName"`
	ClientEmail string  `json:"email"`
	ClientPhone string  `json:"phone"`
	Room        string  `json:"room"`
	Engineer    string  `json:"engineer"`
	Start       string  `json:"sessionStart"`
	Duration    string  `json:"duration"`
	TotalPrice  float64 `json:"totalPrice"`
	DepositPaid float64 `json:"depositPaid"`
	PaymentID   string  `json:"paymentId"`
	Message     string  `json:"message,omitempty"`
}

// Client posts booking notifications through the Formspree form relay
type Client struct {
	formURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a form relay client
func NewClient(formURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		formURL: formURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// NotifyBooking relays the booking summary to the studio inbox
func (c *Client) NotifyBooking(ctx context.Context, n BookingNotification) error {
	if c.formURL == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("%w: marshal notification: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.formURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	c.log.Info("formspree: booking notification relayed for %s (payment=%s)", n.ClientEmail, n.PaymentID)
	return nil
}
