package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"greenvours/internal/adapters/payment"
	"greenvours/internal/application/accessors"
	domainpayment "greenvours/internal/domain/payment"
)

// StartDonationInput carries input for the donation checkout orchestrator.
type StartDonationInput struct {
	AmountCents int64
	Currency    string
	PayerEmail  string
}

// DonationDeps holds dependencies for the donation orchestrators.
type DonationDeps struct {
	Client     payment.Client
	Payments   *accessors.Accessor[domainpayment.Payment]
	SuccessURL string
	CancelURL  string

	// Injectable for testing
	Now        func() time.Time
	GenerateID func() string
}

var ErrInvalidAmount = errors.New("donation amount must be positive")

const donationProductName = "Greenvours Relief Donation"

// ExecuteStartDonation creates a hosted checkout session for a donation.
// PRE: AmountCents > 0
// POST: Returns the checkout URL to redirect the visitor to
func ExecuteStartDonation(ctx context.Context, input StartDonationInput, deps DonationDeps) (payment.CheckoutSession, error) {
	if input.AmountCents <= 0 {
		return payment.CheckoutSession{}, ErrInvalidAmount
	}
	currency := input.Currency
	if currency == "" {
		currency = "usd"
	}

	session, err := deps.Client.CreateCheckoutSession(ctx, payment.CheckoutRequest{
		AmountCents: input.AmountCents,
		Currency:    currency,
		ProductName: donationProductName,
		PayerEmail:  input.PayerEmail,
		SuccessURL:  deps.SuccessURL,
		CancelURL:   deps.CancelURL,
	})
	if err != nil {
		return payment.CheckoutSession{}, err
	}

	slog.Info("donation_checkout_started", "session_id", session.ID, "amount_cents", input.AmountCents)
	return session, nil
}

// ExecuteRecordPayment persists a completed checkout reported by the
// provider's webhook.
// POST: A payment record exists for the session; replayed webhooks do not
// create duplicates
func ExecuteRecordPayment(ctx context.Context, completed payment.CompletedPayment, deps DonationDeps) error {
	existing, err := deps.Payments.List(ctx)
	if err != nil {
		return err
	}
	for _, p := range existing {
		if p.SessionID == completed.SessionID {
			slog.Info("payment_already_recorded", "session_id", completed.SessionID)
			return nil
		}
	}

	rec := domainpayment.Payment{
		ID:          uuid.New().String(),
		SessionID:   completed.SessionID,
		AmountCents: completed.AmountCents,
		Currency:    completed.Currency,
		ProductName: donationProductName,
		PayerEmail:  completed.PayerEmail,
		CreatedAt:   time.Now(),
	}
	if deps.GenerateID != nil {
		rec.ID = deps.GenerateID()
	}
	if deps.Now != nil {
		rec.CreatedAt = deps.Now()
	}
	if err := rec.Validate(); err != nil {
		return err
	}

	if _, err := deps.Payments.Add(ctx, rec); err != nil {
		return err
	}

	slog.Info("payment_recorded", "session_id", rec.SessionID, "amount_cents", rec.AmountCents)
	return nil
}
