package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ErrNoChoices is returned when the endpoint answers without any completion.
var ErrNoChoices = errors.New("no choices returned")

// BaseProvider implements common functionality for OpenAI-compatible APIs
type BaseProvider struct {
	config ProviderConfig
	client *openai.Client
}

// NewBaseProvider creates a new base provider. config.BaseURL is the API root;
// the client appends /chat/completions itself.
func NewBaseProvider(config ProviderConfig) *BaseProvider {
	cfg := openai.DefaultConfig(config.APIKey)
	cfg.BaseURL = config.BaseURL
	cfg.HTTPClient = &http.Client{Timeout: 90 * time.Second}

	return &BaseProvider{
		config: config,
		client: openai.NewClientWithConfig(cfg),
	}
}

func (p *BaseProvider) Name() string {
	return p.config.Name
}

// Complete sends one chat-completion request and returns the first choice verbatim.
// Only the model and messages are sent, so the endpoint's decoding defaults apply.
func (p *BaseProvider) Complete(ctx context.Context, messages []Message) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:    p.config.TextModel,
		Messages: toChatMessages(messages),
	}

	log.Printf("[%s.Analysis] Sending request with model %s...", p.config.Name, req.Model)

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		if code := statusCode(err); code != 0 {
			log.Printf("[%s.Analysis] Response status: %d", p.config.Name, code)
			return "", fmt.Errorf("api error: %w", err)
		}
		return "", fmt.Errorf("request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}

	// Returned as-is: callers print the model output exactly as received
	content := resp.Choices[0].Message.Content
	log.Printf("[%s.Analysis] Success, response length: %d", p.config.Name, len(content))
	return content, nil
}

func toChatMessages(messages []Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}
	return out
}

// statusCode extracts the HTTP status from a go-openai error, or 0 when the
// request never got an answer.
func statusCode(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}
