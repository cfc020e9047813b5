package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
)

// MultiProvider tries each provider in order and returns the first success.
// Groq is primary; Cerebras only sees a request after Groq has failed.
type MultiProvider struct {
	providers []Provider
}

// NewMultiProvider creates a new multi-provider orchestrator
func NewMultiProvider(providers ...Provider) *MultiProvider {
	if len(providers) == 0 {
		panic("at least one provider required")
	}
	return &MultiProvider{providers: providers}
}

func (m *MultiProvider) Name() string {
	names := make([]string, len(m.providers))
	for i, p := range m.providers {
		names[i] = p.Name()
	}
	return "Multi[" + strings.Join(names, "+") + "]"
}

// Complete uses provider[0] with fallback to the others
func (m *MultiProvider) Complete(ctx context.Context, messages []Message) (string, error) {
	var errs []error
	for i, provider := range m.providers {
		log.Printf("[MultiProvider] Trying %s for completion (attempt %d/%d)...", provider.Name(), i+1, len(m.providers))
		content, err := provider.Complete(ctx, messages)
		if err == nil {
			log.Printf("[MultiProvider] %s completed (length: %d)", provider.Name(), len(content))
			return content, nil
		}
		log.Printf("[MultiProvider] %s failed: %v", provider.Name(), err)
		errs = append(errs, fmt.Errorf("%s: %w", provider.Name(), err))

		// A cancelled run should not spill over to the next provider
		if ctx.Err() != nil {
			break
		}
	}
	return "", fmt.Errorf("all providers failed: %w", errors.Join(errs...))
}
