package payment

import (
	"errors"
	"time"
)

// Domain errors
var (
	ErrEmptySessionID = errors.New("payment session id cannot be empty")
	ErrInvalidAmount  = errors.New("payment amount must be positive")
	ErrEmptyCurrency  = errors.New("payment currency cannot be empty")
)

// Payment records one completed checkout, written when the payment
// provider's webhook reports the session as paid.
type Payment struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"sessionId"`
	AmountCents int64     `json:"amountCents"`
	Currency    string    `json:"currency"`
	ProductName string    `json:"productName"`
	PayerEmail  string    `json:"payerEmail"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate checks if the Payment has valid data.
func (p *Payment) Validate() error {
	if p.SessionID == "" {
		return ErrEmptySessionID
	}
	if p.AmountCents <= 0 {
		return ErrInvalidAmount
	}
	if p.Currency == "" {
		return ErrEmptyCurrency
	}
	return nil
}
