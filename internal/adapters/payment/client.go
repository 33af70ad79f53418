// Package payment wraps the hosted-checkout provider used for donations.
package payment

import (
	"context"
	"errors"
)

// CheckoutRequest describes one donation checkout to create.
type CheckoutRequest struct {
	AmountCents int64  // Donation amount in the smallest currency unit
	Currency    string // ISO currency code, lower case (e.g. "usd")
	ProductName string // Line shown on the hosted checkout page
	PayerEmail  string // Prefills the checkout form when set
	SuccessURL  string
	CancelURL   string
}

// CheckoutSession is a created hosted-checkout session the visitor is
// redirected to.
type CheckoutSession struct {
	ID  string
	URL string
}

// CompletedPayment is the settled result reported back by the provider's
// webhook after the visitor pays.
type CompletedPayment struct {
	SessionID   string
	AmountCents int64
	Currency    string
	PayerEmail  string
}

// ErrIgnoredEvent marks webhook deliveries that are valid but not a
// completed checkout; callers acknowledge them without recording anything.
var ErrIgnoredEvent = errors.New("webhook event is not a completed checkout")

// Client creates hosted checkout sessions.
type Client interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (CheckoutSession, error)
}

// WebhookParser authenticates and decodes provider webhook deliveries.
type WebhookParser interface {
	ParseWebhook(payload []byte, signature string) (CompletedPayment, error)
}
