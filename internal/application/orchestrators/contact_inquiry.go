package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"

	"greenvours/internal/adapters/assist"
	"greenvours/internal/adapters/email"
	"greenvours/internal/adapters/storage/docstore"
	"greenvours/internal/application/accessors"
	"greenvours/internal/domain/contact"
	"greenvours/internal/domain/sitecontent"
)

// DefaultInboxAddress receives contact-form messages until the site's
// contact info record is configured.
const DefaultInboxAddress = "info@greenvours.org"

// ContactInquiryDeps holds dependencies for the contact-form orchestrator.
type ContactInquiryDeps struct {
	Sender      email.Sender
	Generator   assist.ReplyGenerator
	ContactInfo *accessors.Singleton[sitecontent.ContactInfo]
}

// ContactInquiryResult carries the acknowledgement shown to the visitor.
type ContactInquiryResult struct {
	Reply string
}

// ExecuteContactInquiry forwards a contact-form message to the site inbox
// and returns an immediate acknowledgement for the visitor.
// PRE: msg validates
// POST: The inbox email is sent; a failed reply generation falls back to
// the static acknowledgement instead of failing the inquiry
func ExecuteContactInquiry(ctx context.Context, msg contact.Message, deps ContactInquiryDeps) (ContactInquiryResult, error) {
	if err := msg.Validate(); err != nil {
		return ContactInquiryResult{}, err
	}

	reply := assist.StaticReply
	if deps.Generator != nil {
		generated, err := deps.Generator.GenerateReply(ctx, msg)
		if err != nil {
			slog.Warn("contact_reply_fallback", "error", err, "subject", msg.Subject)
		} else {
			reply = generated
		}
	}

	if _, err := deps.Sender.Send(ctx, email.SendRequest{
		To:      []string{inboxAddress(ctx, deps)},
		Subject: fmt.Sprintf("New Contact Form Message: %q", msg.Subject),
		HTML:    inquiryHTML(msg),
		ReplyTo: msg.Email,
	}); err != nil {
		return ContactInquiryResult{}, fmt.Errorf("forward inquiry: %w", err)
	}

	slog.Info("contact_inquiry_forwarded", "from", msg.Email, "subject", msg.Subject)
	return ContactInquiryResult{Reply: reply}, nil
}

func inboxAddress(ctx context.Context, deps ContactInquiryDeps) string {
	if deps.ContactInfo == nil {
		return DefaultInboxAddress
	}
	info, err := deps.ContactInfo.Get(ctx)
	if err != nil {
		if !errors.Is(err, docstore.ErrNotFound) {
			slog.Warn("contact_info_unavailable", "error", err)
		}
		return DefaultInboxAddress
	}
	if info.GeneralEmail != "" {
		return info.GeneralEmail
	}
	if info.BookingEmail != "" {
		return info.BookingEmail
	}
	return DefaultInboxAddress
}

func inquiryHTML(msg contact.Message) string {
	return fmt.Sprintf(`<h1>New Message from Website Contact Form</h1>
<p>You have received a new message from %s.</p>
<h2>Details:</h2>
<ul>
<li><strong>Name:</strong> %s</li>
<li><strong>Email:</strong> <a href="mailto:%s">%s</a></li>
<li><strong>Subject:</strong> %s</li>
</ul>
<h2>Message:</h2>
<p>%s</p>`,
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email), html.EscapeString(msg.Email),
		html.EscapeString(msg.Subject),
		html.EscapeString(msg.Body))
}
