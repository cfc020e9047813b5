package ai

import "context"

// Message is a single chat turn sent to an OpenAI-compatible completion endpoint
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider defines the interface for AI providers
type Provider interface {
	Name() string
	// Complete returns the first choice's message content, unmodified.
	Complete(ctx context.Context, messages []Message) (string, error)
}

// ProviderConfig holds configuration for a provider
type ProviderConfig struct {
	Name      string
	BaseURL   string
	APIKey    string
	TextModel string
}
