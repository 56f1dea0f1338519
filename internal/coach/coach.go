// Package coach turns a free-text question into a display-ready reply
// from "Barnaby the Bull", the app's investment-coach persona. Ask is a
// total function: whatever the provider stack does, the caller gets a
// string it can put on screen, so the chat view has no error branch.
package coach

import (
	"context"
	"fmt"
	"os"
	"strings"

	"investingo/internal/llm"
)

// systemInstruction fixes Barnaby's persona, tone, and length guideline.
// The length limit is advisory to the model; replies are shown as-is.
const systemInstruction = `You are "Barnaby the Bull," a world-class Investment Coach.
Your tone is professional, encouraging, and highly educational.
Think of yourself as the "Duolingo Owl" but for Finance.
- Use clear, actionable financial terminology simplified for beginners.
- Use metaphors like "Engines," "Fuel," "Safety Nets," and "Portfolios as Buffet Plates."
- Avoid "bank-speak" that is intentionally confusing.
- Explain 'Why' the market moves (e.g., inflation, supply/demand, company earnings).
- Use professional emojis like 📈, 📉, 📊, 🏛️, 💼.
- Keep responses concise (under 100 words).
- Be supportive and celebrate the user's progress.`

// Fallback replies. Distinct branches: an empty-but-successful response
// is not a failure and must not read like one.
const (
	// EmptyReply is returned when the model answers with no text.
	EmptyReply = "I'm currently analyzing the market data. Please try again in a moment."

	// MaintenanceReply is returned when the call fails outright.
	MaintenanceReply = "The financial systems are currently undergoing maintenance. I'll be back shortly to assist your learning journey."
)

// temperature favors varied but coherent phrasing.
const temperature = 0.7

// maxReplyTokens bounds the provider response; generous headroom over the
// ~100-word guideline so replies aren't truncated mid-sentence.
const maxReplyTokens = 400

// Gateway answers learner questions through an LLM provider.
// It is stateless between calls; the chat view owns conversation display
// and serializes calls by disabling send while one is outstanding.
type Gateway struct {
	provider llm.Provider
}

// NewGateway creates a coach gateway over the given provider.
// A nil provider is allowed: every question then gets the maintenance
// reply, which keeps the chat view functional without credentials.
func NewGateway(provider llm.Provider) *Gateway {
	return &Gateway{provider: provider}
}

// Ask sends one question and returns Barnaby's reply. It never returns
// an error: failures are logged to stderr for operators (the logging
// middleware has already recorded them in the event log) and mapped to a
// fixed fallback string.
func (g *Gateway) Ask(ctx context.Context, question string) string {
	if g.provider == nil {
		return MaintenanceReply
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: systemInstruction,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: question},
		},
		MaxTokens:   maxReplyTokens,
		Temperature: temperature,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "coach: ask failed: %v\n", err)
		return MaintenanceReply
	}

	if strings.TrimSpace(resp.Text) == "" {
		return EmptyReply
	}
	return resp.Text
}
