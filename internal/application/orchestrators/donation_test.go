package orchestrators

import (
	"context"
	"errors"
	"testing"

	"greenvours/internal/adapters/payment"
	"greenvours/internal/application/accessors"
)

// mockPaymentClient captures the checkout request.
type mockPaymentClient struct {
	req  payment.CheckoutRequest
	fail error
}

func (m *mockPaymentClient) CreateCheckoutSession(_ context.Context, req payment.CheckoutRequest) (payment.CheckoutSession, error) {
	if m.fail != nil {
		return payment.CheckoutSession{}, m.fail
	}
	m.req = req
	return payment.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.example.com/cs_test_1"}, nil
}

func TestStartDonation(t *testing.T) {
	client := &mockPaymentClient{}
	deps := DonationDeps{
		Client:     client,
		SuccessURL: "https://greenvours.org/thanks",
		CancelURL:  "https://greenvours.org/relief",
	}

	session, err := ExecuteStartDonation(context.Background(), StartDonationInput{
		AmountCents: 5000,
		PayerEmail:  "donor@example.com",
	}, deps)
	if err != nil {
		t.Fatalf("start donation: %v", err)
	}
	if session.URL == "" {
		t.Fatal("expected checkout URL")
	}
	if client.req.Currency != "usd" {
		t.Fatalf("expected default currency usd, got %q", client.req.Currency)
	}
	if client.req.SuccessURL != deps.SuccessURL || client.req.CancelURL != deps.CancelURL {
		t.Fatalf("redirect URLs not forwarded: %+v", client.req)
	}
}

func TestStartDonationRejectsNonPositiveAmount(t *testing.T) {
	deps := DonationDeps{Client: &mockPaymentClient{}}
	for _, cents := range []int64{0, -500} {
		if _, err := ExecuteStartDonation(context.Background(), StartDonationInput{AmountCents: cents}, deps); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount for %d, got %v", cents, err)
		}
	}
}

func TestRecordPaymentIsIdempotent(t *testing.T) {
	store := openTestStore(t)
	payments := accessors.Payments(store)
	deps := DonationDeps{Payments: payments, Now: fixedNow, GenerateID: sequentialIDs()}
	ctx := context.Background()

	completed := payment.CompletedPayment{
		SessionID:   "cs_test_1",
		AmountCents: 5000,
		Currency:    "usd",
		PayerEmail:  "donor@example.com",
	}
	if err := ExecuteRecordPayment(ctx, completed, deps); err != nil {
		t.Fatalf("record payment: %v", err)
	}
	// Webhook replay.
	if err := ExecuteRecordPayment(ctx, completed, deps); err != nil {
		t.Fatalf("replayed record: %v", err)
	}

	all, err := payments.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected one payment record, got %d", len(all))
	}
	if all[0].AmountCents != 5000 || all[0].SessionID != "cs_test_1" {
		t.Fatalf("unexpected record: %+v", all[0])
	}
}
