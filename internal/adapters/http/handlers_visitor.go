package web

import (
	"errors"
	"io"
	"net/http"

	"greenvours/internal/adapters/payment"
	"greenvours/internal/application/accessors"
	"greenvours/internal/application/orchestrators"
	"greenvours/internal/domain/contact"
)

func handleContact(w http.ResponseWriter, r *http.Request) {
	var msg contact.Message
	if err := strictDecode(r, &msg); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := orchestrators.ExecuteContactInquiry(r.Context(), msg, orchestrators.ContactInquiryDeps{
		Sender:      deps.Sender,
		Generator:   deps.Generator,
		ContactInfo: accessors.ContactInfo(deps.Store),
	})
	if err != nil {
		if errors.Is(err, contact.ErrEmptyName) || errors.Is(err, contact.ErrInvalidEmail) || errors.Is(err, contact.ErrEmptyMessage) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"reply": result.Reply})
}

func handleSubscribe(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	err := orchestrators.ExecuteSubscribe(r.Context(), orchestrators.SubscribeInput{Email: req.Email},
		orchestrators.SubscribeDeps{Subscribers: deps.subscribers})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func donationDeps() orchestrators.DonationDeps {
	return orchestrators.DonationDeps{
		Client:     deps.Payments,
		Payments:   deps.payments,
		SuccessURL: deps.DonationSuccessURL,
		CancelURL:  deps.DonationCancelURL,
	}
}

func handleDonationCheckout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AmountCents int64  `json:"amountCents"`
		Currency    string `json:"currency"`
		Email       string `json:"email"`
	}
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	session, err := orchestrators.ExecuteStartDonation(r.Context(), orchestrators.StartDonationInput{
		AmountCents: req.AmountCents,
		Currency:    req.Currency,
		PayerEmail:  req.Email,
	}, donationDeps())
	if errors.Is(err, orchestrators.ErrInvalidAmount) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"sessionId": session.ID, "url": session.URL})
}

// handleStripeWebhook records completed checkouts. The payload is
// authenticated by its signature header, not by session.
func handleStripeWebhook(w http.ResponseWriter, r *http.Request) {
	const maxPayload = 64 * 1024
	body, err := io.ReadAll(io.LimitReader(r.Body, maxPayload))
	if err != nil {
		http.Error(w, "unreadable payload", http.StatusBadRequest)
		return
	}

	completed, err := deps.Webhooks.ParseWebhook(body, r.Header.Get("Stripe-Signature"))
	if errors.Is(err, payment.ErrIgnoredEvent) {
		w.WriteHeader(http.StatusOK)
		return
	}
	if err != nil {
		http.Error(w, "invalid webhook", http.StatusBadRequest)
		return
	}

	if err := orchestrators.ExecuteRecordPayment(r.Context(), completed, donationDeps()); err != nil {
		internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
