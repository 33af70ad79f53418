package orchestrators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"greenvours/internal/adapters/assist"
	"greenvours/internal/application/accessors"
	"greenvours/internal/domain/contact"
	"greenvours/internal/domain/sitecontent"
)

func validMessage() contact.Message {
	return contact.Message{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Gorilla trek availability",
		Body:    "Do you have permits available in June?",
	}
}

func TestContactInquiryForwardsAndReplies(t *testing.T) {
	store := openTestStore(t)
	info := accessors.ContactInfo(store)
	ctx := context.Background()

	if err := info.Save(ctx, sitecontent.ContactInfo{GeneralEmail: "inbox@greenvours.org"}); err != nil {
		t.Fatalf("save contact info: %v", err)
	}

	sender := &mockSender{}
	result, err := ExecuteContactInquiry(ctx, validMessage(), ContactInquiryDeps{
		Sender:      sender,
		Generator:   &mockReplier{reply: "Thanks for asking about June permits."},
		ContactInfo: info,
	})
	if err != nil {
		t.Fatalf("contact inquiry: %v", err)
	}
	if result.Reply != "Thanks for asking about June permits." {
		t.Fatalf("unexpected reply: %q", result.Reply)
	}

	if len(sender.sent) != 1 {
		t.Fatalf("expected one forwarded email, got %d", len(sender.sent))
	}
	fwd := sender.sent[0]
	if fwd.To[0] != "inbox@greenvours.org" {
		t.Fatalf("expected configured inbox, got %v", fwd.To)
	}
	if fwd.ReplyTo != "visitor@example.com" {
		t.Fatalf("expected reply-to visitor, got %q", fwd.ReplyTo)
	}
	if !strings.Contains(fwd.HTML, "Gorilla trek availability") {
		t.Fatalf("forwarded body missing subject: %q", fwd.HTML)
	}
}

func TestContactInquiryFallsBackWhenGeneratorFails(t *testing.T) {
	sender := &mockSender{}
	result, err := ExecuteContactInquiry(context.Background(), validMessage(), ContactInquiryDeps{
		Sender:    sender,
		Generator: &mockReplier{fail: errors.New("model unavailable")},
	})
	if err != nil {
		t.Fatalf("generator failure must not fail the inquiry: %v", err)
	}
	if result.Reply != assist.StaticReply {
		t.Fatalf("expected static fallback reply, got %q", result.Reply)
	}
	if len(sender.sent) != 1 {
		t.Fatal("inquiry must still be forwarded")
	}
	if sender.sent[0].To[0] != DefaultInboxAddress {
		t.Fatalf("expected default inbox without contact info, got %v", sender.sent[0].To)
	}
}

func TestContactInquiryRejectsInvalidMessage(t *testing.T) {
	sender := &mockSender{}
	_, err := ExecuteContactInquiry(context.Background(), contact.Message{Email: "visitor@example.com"}, ContactInquiryDeps{
		Sender: sender,
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(sender.sent) != 0 {
		t.Fatal("invalid message must not be forwarded")
	}
}

func TestContactInquiryFailsWhenSendFails(t *testing.T) {
	boom := errors.New("provider down")
	_, err := ExecuteContactInquiry(context.Background(), validMessage(), ContactInquiryDeps{
		Sender:    &mockSender{fail: boom},
		Generator: &mockReplier{reply: "hi"},
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected send error, got %v", err)
	}
}
