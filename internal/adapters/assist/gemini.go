package assist

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"greenvours/internal/domain/contact"
)

const defaultModel = "gemini-2.5-flash"

// GeminiReplier drafts contact-form replies with Google's Gemini API.
type GeminiReplier struct {
	client *genai.Client
	model  string
}

// NewGeminiReplier creates a replier using the given API key.
// PRE: apiKey is a valid Gemini API key
// POST: Returns a ready-to-use replier; model defaults to gemini-2.5-flash
func NewGeminiReplier(ctx context.Context, apiKey, model string) (*GeminiReplier, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = defaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiReplier{client: client, model: model}, nil
}

// GenerateReply asks the model for a tailored acknowledgement.
// POST: Returns the model's reply text, or an error the caller should
// recover from with StaticReply
func (g *GeminiReplier) GenerateReply(ctx context.Context, msg contact.Message) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(buildPrompt(msg)), nil)
	if err != nil {
		slog.Error("gemini_reply_failed", "error", err, "subject", msg.Subject)
		return "", fmt.Errorf("generate reply: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("generate reply: empty response")
	}
	slog.Info("gemini_reply_generated", "model", g.model, "subject", msg.Subject)
	return text, nil
}

func buildPrompt(msg contact.Message) string {
	var b strings.Builder
	b.WriteString("You are a helpful and friendly customer service assistant for Greenvours Organisation, ")
	b.WriteString("an eco-tourism and conservation group based in Uganda. ")
	b.WriteString("A visitor has submitted a contact form. Write a helpful and encouraging response to them.\n\n")
	fmt.Fprintf(&b, "Visitor's Name: %s\n", msg.Name)
	fmt.Fprintf(&b, "Visitor's Email: %s\n", msg.Email)
	fmt.Fprintf(&b, "Subject: %s\n", msg.Subject)
	fmt.Fprintf(&b, "Message:\n---\n%s\n---\n\n", msg.Body)
	b.WriteString("Based on their message, provide a direct and helpful answer or guide them on next steps. ")
	b.WriteString("If it's a simple thank you, be warm and appreciative. If it's a question, answer it if ")
	b.WriteString("possible using your knowledge of conservation and Ugandan tourism, or state that a ")
	b.WriteString("specialist will get back to them soon via their provided email. Keep the tone positive ")
	b.WriteString("and aligned with Greenvours' mission of conservation and community support. ")
	b.WriteString(`Sign off warmly from "The Greenvours Team".`)
	return b.String()
}
