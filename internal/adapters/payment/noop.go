package payment

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// NoopClient is a payment client for development without Stripe keys. It
// fabricates session ids and accepts every webhook payload unverified.
type NoopClient struct{}

func NewNoopClient() *NoopClient { return &NoopClient{} }

func (c *NoopClient) CreateCheckoutSession(_ context.Context, req CheckoutRequest) (CheckoutSession, error) {
	id := fmt.Sprintf("noop_%d", time.Now().UnixNano())
	slog.Info("noop_checkout_created", "session_id", id, "amount_cents", req.AmountCents)
	return CheckoutSession{ID: id, URL: req.SuccessURL}, nil
}

func (c *NoopClient) ParseWebhook(payload []byte, _ string) (CompletedPayment, error) {
	slog.Info("noop_webhook_received", "bytes", len(payload))
	return CompletedPayment{}, ErrIgnoredEvent
}
