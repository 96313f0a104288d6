package stripepay

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/stripe/stripe-go/v76"
	stripeclient "github.com/stripe/stripe-go/v76/client"
)

// Logger is the logging interface the client expects
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client wraps the Stripe SDK for deposit payment intents
type Client struct {
	api      *stripeclient.API
	currency string
	log      Logger
}

// NewClient creates a Stripe client with its own key (no global SDK state)
func NewClient(secretKey, currency string, log Logger) *Client {
	return &Client{
		api:      stripeclient.New(secretKey, nil),
		currency: currency,
		log:      log,
	}
}

// CreateDepositIntent creates a payment intent for the session deposit.
// Amounts are converted to the smallest currency unit as Stripe expects.
func (c *Client) CreateDepositIntent(ctx context.Context, in DepositIntentInput) (*DepositIntent, error) {
	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(int64(in.DepositAmount * 100)),
		Currency: stripe.String(c.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	withEngineer := "no"
	if in.WithEngineer {
		withEngineer = "yes"
	}

	params.AddMetadata("type", "studio_booking_deposit")
	params.AddMetadata("customerName", in.ClientName)
	params.AddMetadata("customerEmail", in.ClientEmail)
	params.AddMetadata("customerPhone", in.ClientPhone)
	params.AddMetadata("studio", in.RoomID)
	params.AddMetadata("studioName", in.RoomName)
	params.AddMetadata("bookingStart", in.Start.UTC().Format(time.RFC3339))
	params.AddMetadata("durationHours", strconv.Itoa(in.DurationHours))
	params.AddMetadata("withEngineer", withEngineer)
	params.AddMetadata("engineerName", in.EngineerName)
	params.AddMetadata("engineerId", in.EngineerID)
	params.AddMetadata("projectType", in.ProjectType)
	params.AddMetadata("message", in.Message)
	params.AddMetadata("totalAmount", strconv.FormatFloat(in.TotalAmount, 'f', 2, 64))
	params.AddMetadata("depositAmount", strconv.FormatFloat(in.DepositAmount, 'f', 2, 64))
	params.AddMetadata("remainingAmount", strconv.FormatFloat(in.TotalAmount-in.DepositAmount, 'f', 2, 64))

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		c.log.Error("stripepay: failed to create payment intent for %s: %v", in.ClientEmail, err)
		return nil, fmt.Errorf("%w: create payment intent: %v", ErrInternal, err)
	}

	c.log.Info("stripepay: created payment intent id=%s amount=%d %s", intent.ID, intent.Amount, intent.Currency)
	return &DepositIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

// GetIntent retrieves a payment intent by id
func (c *Client) GetIntent(ctx context.Context, id string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{Params: stripe.Params{Context: ctx}}

	intent, err := c.api.PaymentIntents.Get(id, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodeResourceMissing {
			return nil, ErrIntentNotFound
		}
		c.log.Error("stripepay: failed to retrieve payment intent id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: retrieve payment intent: %v", ErrInternal, err)
	}

	return &Intent{
		ID:       intent.ID,
		Status:   string(intent.Status),
		Metadata: intent.Metadata,
	}, nil
}
