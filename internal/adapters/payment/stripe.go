package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"
)

// StripeClient creates Stripe Checkout sessions and decodes the
// checkout.session.completed webhook.
type StripeClient struct {
	webhookSecret string
}

// NewStripeClient configures the Stripe SDK with the given secret key.
// PRE: apiKey is a Stripe secret key; webhookSecret signs webhook deliveries
func NewStripeClient(apiKey, webhookSecret string) *StripeClient {
	stripe.Key = apiKey
	return &StripeClient{webhookSecret: webhookSecret}
}

// CreateCheckoutSession starts a one-off payment checkout.
// PRE: req.AmountCents > 0, req.Currency is a valid ISO code
// POST: Returns the hosted checkout URL to redirect the visitor to
func (c *StripeClient) CreateCheckoutSession(_ context.Context, req CheckoutRequest) (CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(req.Currency),
				UnitAmount: stripe.Int64(req.AmountCents),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(req.ProductName),
				},
			},
			Quantity: stripe.Int64(1),
		}},
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
	}
	if req.PayerEmail != "" {
		params.CustomerEmail = stripe.String(req.PayerEmail)
	}

	s, err := session.New(params)
	if err != nil {
		slog.Error("stripe_checkout_failed", "error", err, "amount_cents", req.AmountCents)
		return CheckoutSession{}, fmt.Errorf("create checkout session: %w", err)
	}

	slog.Info("stripe_checkout_created", "session_id", s.ID, "amount_cents", req.AmountCents)
	return CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

// ParseWebhook verifies the delivery signature and extracts the completed
// checkout, if that is what the event carries.
// POST: Returns ErrIgnoredEvent for authentic events of any other type
func (c *StripeClient) ParseWebhook(payload []byte, signature string) (CompletedPayment, error) {
	event, err := webhook.ConstructEvent(payload, signature, c.webhookSecret)
	if err != nil {
		return CompletedPayment{}, fmt.Errorf("verify webhook: %w", err)
	}
	if event.Type != "checkout.session.completed" {
		return CompletedPayment{}, ErrIgnoredEvent
	}

	var cs stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
		return CompletedPayment{}, fmt.Errorf("decode checkout session: %w", err)
	}

	completed := CompletedPayment{
		SessionID:   cs.ID,
		AmountCents: cs.AmountTotal,
		Currency:    string(cs.Currency),
	}
	if cs.CustomerDetails != nil {
		completed.PayerEmail = cs.CustomerDetails.Email
	}
	return completed, nil
}
