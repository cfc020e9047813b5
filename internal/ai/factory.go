package ai

import (
	"fmt"

	"github.com/javed1310/Darwix-AI-Hackathon/internal/ai/models"
)

// NewLLMProvider creates a provider instance based on the provider name.
// An empty baseURL selects the provider's public endpoint.
// Supported providers: "groq", "cerebras"
func NewLLMProvider(providerName, apiKey, modelID, baseURL string) *BaseProvider {
	switch providerName {
	case "groq":
		if baseURL == "" {
			baseURL = models.GroqBaseURL
		}
		return NewBaseProvider(ProviderConfig{
			Name:      "Groq",
			BaseURL:   baseURL,
			APIKey:    apiKey,
			TextModel: modelID,
		})
	case "cerebras":
		if baseURL == "" {
			baseURL = models.CerebrasBaseURL
		}
		return NewBaseProvider(ProviderConfig{
			Name:      "Cerebras",
			BaseURL:   baseURL,
			APIKey:    apiKey,
			TextModel: modelID,
		})
	default:
		// Fail fast: don't silently default to an unknown provider
		panic(fmt.Sprintf("unsupported AI provider: %s (supported: groq, cerebras)", providerName))
	}
}
