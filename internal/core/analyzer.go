package core

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/javed1310/Darwix-AI-Hackathon/internal/ai"
	"github.com/javed1310/Darwix-AI-Hackathon/prompts"
)

// ErrRemoteService matches any failure talking to the completion API.
var ErrRemoteService = errors.New("remote service error")

const failedReportPrefix = "# Analysis Failed\n- "

// RemoteServiceError records which provider failed and why.
type RemoteServiceError struct {
	Provider string
	Err      error
}

func (e *RemoteServiceError) Error() string {
	return fmt.Sprintf("An error occurred while communicating with the %s API: %v", e.Provider, e.Err)
}

func (e *RemoteServiceError) Unwrap() error { return e.Err }

func (e *RemoteServiceError) Is(target error) bool { return target == ErrRemoteService }

// Result is the outcome of one report generation.
type Result struct {
	Report   string
	Provider string
	Err      error
}

// Degraded reports whether the model call failed.
func (r Result) Degraded() bool {
	return r.Err != nil
}

// String renders the report for display. A degraded result becomes a short failure report.
func (r Result) String() string {
	if r.Err != nil {
		return failedReportPrefix + r.Err.Error()
	}
	return r.Report
}

// Analyzer turns article text into a critical analysis report.
type Analyzer struct {
	provider        ai.Provider
	maxContentChars int
}

// NewAnalyzer creates an analyzer. maxContentChars <= 0 sends the article unmodified.
func NewAnalyzer(provider ai.Provider, maxContentChars int) *Analyzer {
	return &Analyzer{
		provider:        provider,
		maxContentChars: maxContentChars,
	}
}

func (a *Analyzer) ProviderName() string {
	return a.provider.Name()
}

// Generate renders the prompt and asks the model for a report.
// It never panics; every failure is carried in Result.Err.
func (a *Analyzer) Generate(ctx context.Context, title, text string) (res Result) {
	name := a.provider.Name()
	res.Provider = name

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Analyzer] Provider %s panicked: %v", name, r)
			res = Result{Provider: name, Err: &RemoteServiceError{Provider: name, Err: fmt.Errorf("panic: %v", r)}}
		}
	}()

	text = ai.TruncateToLimit(text, a.maxContentChars)
	prompt := prompts.RenderCriticalAnalysis(title, text)
	log.Printf("[Analyzer] Prompt ready (~%d tokens), provider %s", ai.EstimateTokens(prompt), name)

	content, err := a.provider.Complete(ctx, []ai.Message{
		{Role: "system", Content: prompts.System},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		res.Err = &RemoteServiceError{Provider: name, Err: err}
		log.Printf("[Analyzer] %v", res.Err)
		return res
	}

	res.Report = content
	return res
}
