package orchestrators

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"greenvours/internal/application/accessors"
	"greenvours/internal/domain/subscriber"
)

// SubscribeInput carries input for the newsletter subscription orchestrator.
type SubscribeInput struct {
	Email string
}

// SubscribeDeps holds dependencies for Subscribe.
type SubscribeDeps struct {
	Subscribers *accessors.Accessor[subscriber.Subscriber]

	// Injectable for testing
	Now        func() time.Time
	GenerateID func() string
}

// ExecuteSubscribe adds an email to the notification list.
// POST: The email appears exactly once regardless of how often it is submitted
func ExecuteSubscribe(ctx context.Context, input SubscribeInput, deps SubscribeDeps) error {
	sub := subscriber.Subscriber{
		Email: strings.ToLower(strings.TrimSpace(input.Email)),
	}
	if err := sub.Validate(); err != nil {
		return err
	}

	existing, err := deps.Subscribers.List(ctx)
	if err != nil {
		return err
	}
	for _, s := range existing {
		if strings.EqualFold(s.Email, sub.Email) {
			slog.Info("subscribe_duplicate", "email", sub.Email)
			return nil
		}
	}

	sub.ID = uuid.New().String()
	if deps.GenerateID != nil {
		sub.ID = deps.GenerateID()
	}
	sub.SubscribedAt = time.Now()
	if deps.Now != nil {
		sub.SubscribedAt = deps.Now()
	}

	if _, err := deps.Subscribers.Add(ctx, sub); err != nil {
		return err
	}

	slog.Info("subscriber_added", "email", sub.Email)
	return nil
}
