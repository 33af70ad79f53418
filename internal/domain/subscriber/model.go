package subscriber

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidEmail = errors.New("subscriber email must contain '@'")

// Subscriber is one newsletter recipient. Content notifications fan out to
// every subscriber document.
type Subscriber struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

// Validate checks if the Subscriber has valid data.
func (s *Subscriber) Validate() error {
	if !strings.Contains(s.Email, "@") {
		return ErrInvalidEmail
	}
	return nil
}
