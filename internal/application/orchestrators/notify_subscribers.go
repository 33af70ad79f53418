package orchestrators

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"greenvours/internal/adapters/email"
	"greenvours/internal/application/accessors"
	"greenvours/internal/domain/subscriber"
)

// Item types that trigger subscriber notifications. Other content kinds
// change silently.
const (
	NotifyNews     = "NEWS"
	NotifyPrograms = "EDUCATION_PROGRAMS"
	NotifyTours    = "TOURS"
	NotifyProjects = "PROJECTS"
)

// Content change actions.
const (
	ActionAdded   = "added"
	ActionUpdated = "updated"
)

// NotifySubscribersInput describes one published content change.
type NotifySubscribersInput struct {
	ItemType string
	Action   string         // ActionAdded or ActionUpdated
	Item     map[string]any // the changed record's fields
}

// NotifySubscribersDeps holds dependencies for the notification orchestrator.
type NotifySubscribersDeps struct {
	Subscribers *accessors.Accessor[subscriber.Subscriber]
	Sender      email.Sender
}

// ExecuteNotifySubscribers emails every subscriber about a published
// content change.
// POST: Sends nothing for item types without a template or when there are
// no subscribers; both are success, not errors
func ExecuteNotifySubscribers(ctx context.Context, input NotifySubscribersInput, deps NotifySubscribersDeps) error {
	subject, body, ok := notificationContent(input)
	if !ok {
		slog.Info("notify_skipped", "item_type", input.ItemType)
		return nil
	}

	subs, err := deps.Subscribers.List(ctx)
	if err != nil {
		return fmt.Errorf("list subscribers: %w", err)
	}
	if len(subs) == 0 {
		slog.Info("notify_no_subscribers", "item_type", input.ItemType)
		return nil
	}

	reqs := make([]email.SendRequest, 0, len(subs))
	for _, sub := range subs {
		reqs = append(reqs, email.SendRequest{
			To:      []string{sub.Email},
			Subject: subject,
			HTML:    body,
		})
	}
	if _, err := deps.Sender.SendBatch(ctx, reqs); err != nil {
		return fmt.Errorf("send notifications: %w", err)
	}

	slog.Info("notify_sent", "item_type", input.ItemType, "action", input.Action, "recipients", len(subs))
	return nil
}

// notificationContent renders the subject and HTML body for one change, or
// reports false for item types that do not notify.
func notificationContent(input NotifySubscribersInput) (string, string, bool) {
	field := func(name string) string {
		s, _ := input.Item[name].(string)
		return html.EscapeString(s)
	}
	added := input.Action != ActionUpdated

	var subject, detail string
	switch input.ItemType {
	case NotifyNews:
		verb := "Updated"
		if added {
			verb = "Published"
		}
		subject = fmt.Sprintf("New Blog Post %s: %s", verb, field("title"))
		detail = fmt.Sprintf("<p>Our blog has a new post: <strong>%s</strong></p><p>Summary: %s</p>",
			field("title"), field("excerpt"))
	case NotifyPrograms:
		verb := "Updated"
		if added {
			verb = "Launched"
		}
		subject = fmt.Sprintf("New Education Program %s: %s", verb, field("title"))
		detail = fmt.Sprintf("<p>We've %s education program: <strong>%s</strong></p><p>Description: %s</p>",
			verbPhrase(added, "launched a new", "updated an existing"), field("title"), field("description"))
	case NotifyTours:
		verb := "Updated"
		if added {
			verb = "Available"
		}
		subject = fmt.Sprintf("New Eco-Tour %s: %s", verb, field("title"))
		detail = fmt.Sprintf("<p>Discover our %s eco-tour: <strong>%s</strong></p><p>Region: %s</p>",
			verbPhrase(added, "new", "updated"), field("title"), field("region"))
	case NotifyProjects:
		verb := "Updated"
		if added {
			verb = "Started"
		}
		subject = fmt.Sprintf("New Conservation Project %s: %s", verb, field("name"))
		detail = fmt.Sprintf("<p>A conservation project has %s: <strong>%s</strong></p><p>Location: %s</p>",
			verbPhrase(added, "started", "been updated"), field("name"), field("location"))
	default:
		return "", "", false
	}

	body := "<p>Dear Greenvours Member,</p><p>This is an automated notification from Greenvours.</p>" +
		detail +
		"<p>Thank you for your continued support.</p><p>Sincerely,<br>The Greenvours Team</p>"
	return subject, body, true
}

func verbPhrase(added bool, whenAdded, whenUpdated string) string {
	if added {
		return whenAdded
	}
	return whenUpdated
}
