// Package assist drafts the immediate acknowledgement shown to a visitor
// after they submit the contact form.
package assist

import (
	"context"

	"greenvours/internal/domain/contact"
)

// ReplyGenerator produces a reply to a contact inquiry.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, msg contact.Message) (string, error)
}

// StaticReply is the fallback acknowledgement used when no generator is
// configured or generation fails.
const StaticReply = "Thank you for reaching out to Greenvours. We have received your " +
	"message and a member of our team will get back to you soon at the email " +
	"address you provided.\n\nWarm regards,\nThe Greenvours Team"

// StaticReplier always answers with StaticReply.
type StaticReplier struct{}

func NewStaticReplier() *StaticReplier { return &StaticReplier{} }

func (s *StaticReplier) GenerateReply(_ context.Context, _ contact.Message) (string, error) {
	return StaticReply, nil
}
