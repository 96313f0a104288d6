package gohighlevel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// Logger is the logging interface the client expects
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client talks to the GoHighLevel CRM contacts API
type Client struct {
	baseURL    string
	apiKey     string
	locationID string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a CRM client
func NewClient(baseURL, apiKey, locationID string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		locationID: locationID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// UpsertBookingContact creates or updates the CRM contact for a confirmed
// booking, tagging it for the studio automations
func (c *Client) UpsertBookingContact(ctx context.Context, contact BookingContact) error {
	if c.apiKey == "" || c.locationID == "" {
		return ErrNotConfigured
	}

	engineerTag := "self-service"
	if contact.EngineerName != "" && contact.EngineerName != "No Engineer" {
		engineerTag = "with-engineer"
	}

	payload := contactPayload{
		LocationID: c.locationID,
		FirstName:  contact.FirstName,
		LastName:   contact.LastName,
		Email:      contact.Email,
		Phone:      contact.Phone,
		Tags: []string{
			"studio-booking",
			"deposit-paid",
			contact.RoomID,
			contact.RoomID + "-session",
			engineerTag,
		},
		Source: "Studio Booking System",
		CustomFields: map[string]string{
			"room_booked":          contact.RoomID,
			"engineer_assigned":    contact.EngineerName,
			"booking_date":         contact.BookingDate,
			"booking_time":         contact.BookingTime,
			"session_duration":     strconv.Itoa(contact.DurationHours) + " hours",
			"total_session_cost":   strconv.FormatFloat(contact.TotalPrice, 'f', 2, 64),
			"deposit_paid":         strconv.FormatFloat(contact.DepositPaid, 'f', 2, 64),
			"remaining_balance":    strconv.FormatFloat(contact.Remaining, 'f', 2, 64),
			"payment_confirmation": contact.PaymentID,
			"booking_status":       "confirmed",
			"studio_display_name":  contact.RoomName,
			"appointment_start":    contact.BookingDate + "T" + contact.BookingTime + ":00",
			"booking_source":       "Studio Website",
			"project_type":         contact.ProjectType,
			"customer_message":     contact.Message,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: marshal contact: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/contacts/", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp errorResponse
		raw, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(raw, &errResp) == nil && errResp.Message != "" {
			return fmt.Errorf("%w: status %d: %s", ErrInvalidResponse, resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("%w: status %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	c.log.Info("gohighlevel: contact upserted for %s (room=%s, payment=%s)",
		contact.Email, contact.RoomID, contact.PaymentID)
	return nil
}
