package core

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/javed1310/Darwix-AI-Hackathon/internal/ai"
	"github.com/javed1310/Darwix-AI-Hackathon/prompts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	content  string
	err      error
	panicMsg string
	messages []ai.Message
	calls    int
}

func (f *fakeProvider) Name() string { return "Groq" }

func (f *fakeProvider) Complete(ctx context.Context, messages []ai.Message) (string, error) {
	f.calls++
	f.messages = messages
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	return f.content, f.err
}

func TestGenerateReturnsContentVerbatim(t *testing.T) {
	provider := &fakeProvider{content: "\n## Core Claims\n* claim  \n"}

	res := NewAnalyzer(provider, 0).Generate(context.Background(), "Example", "Some article body.")

	require.False(t, res.Degraded())
	assert.NoError(t, res.Err)
	assert.Equal(t, "\n## Core Claims\n* claim  \n", res.Report)
	assert.Equal(t, res.Report, res.String())
	assert.Equal(t, "Groq", res.Provider)
}

func TestGenerateSendsSystemAndUserMessages(t *testing.T) {
	provider := &fakeProvider{content: "ok"}

	NewAnalyzer(provider, 0).Generate(context.Background(), "Example", "Some article body.")

	require.Len(t, provider.messages, 2)
	assert.Equal(t, ai.Message{Role: "system", Content: prompts.System}, provider.messages[0])
	assert.Equal(t, "user", provider.messages[1].Role)
	assert.Equal(t, prompts.RenderCriticalAnalysis("Example", "Some article body."), provider.messages[1].Content)
}

func TestGenerateDegradesOnProviderError(t *testing.T) {
	cause := errors.New("api error: 401 invalid api key")
	provider := &fakeProvider{err: cause}

	res := NewAnalyzer(provider, 0).Generate(context.Background(), "Example", "Some article body.")

	require.True(t, res.Degraded())
	assert.ErrorIs(t, res.Err, ErrRemoteService)
	assert.ErrorIs(t, res.Err, cause)
	assert.Empty(t, res.Report)
	assert.True(t, strings.HasPrefix(res.String(), "# Analysis Failed\n- "))
	assert.Equal(t,
		"# Analysis Failed\n- An error occurred while communicating with the Groq API: api error: 401 invalid api key",
		res.String())
}

func TestGenerateRecoversFromPanic(t *testing.T) {
	provider := &fakeProvider{panicMsg: "nil map"}

	var res Result
	assert.NotPanics(t, func() {
		res = NewAnalyzer(provider, 0).Generate(context.Background(), "Example", "body")
	})
	require.True(t, res.Degraded())
	assert.ErrorIs(t, res.Err, ErrRemoteService)
	assert.True(t, strings.HasPrefix(res.String(), "# Analysis Failed\n- "))
}

func TestGenerateTruncatesOnlyWhenConfigured(t *testing.T) {
	text := strings.Repeat("a", 100)

	uncapped := &fakeProvider{content: "ok"}
	NewAnalyzer(uncapped, 0).Generate(context.Background(), "T", text)
	assert.Contains(t, uncapped.messages[1].Content, text)

	capped := &fakeProvider{content: "ok"}
	NewAnalyzer(capped, 10).Generate(context.Background(), "T", text)
	assert.NotContains(t, capped.messages[1].Content, text)
	assert.Contains(t, capped.messages[1].Content, strings.Repeat("a", 10)+"\n...[truncated]")
}
