package core

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/javed1310/Darwix-AI-Hackathon/internal/scraper"
	"github.com/javed1310/Darwix-AI-Hackathon/internal/store"
)

const (
	rule          = "=================================================="
	untitledTitle = "Untitled article"
)

// Fetcher retrieves and extracts an article.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*scraper.Article, error)
}

// Generator writes the analysis report for an article.
type Generator interface {
	Generate(ctx context.Context, title, text string) Result
	ProviderName() string
}

// ReportArchive keeps finished reports. Optional.
type ReportArchive interface {
	SaveReport(ctx context.Context, report *store.Report) (int64, error)
}

// Skeptic runs one fetch-then-analyze pass over a URL read from the user.
type Skeptic struct {
	fetcher   Fetcher
	generator Generator
	archive   ReportArchive
}

// NewSkeptic wires the pipeline. archive may be nil.
func NewSkeptic(fetcher Fetcher, generator Generator, archive ReportArchive) *Skeptic {
	return &Skeptic{
		fetcher:   fetcher,
		generator: generator,
		archive:   archive,
	}
}

// FinalReport is the text printed for a completed analysis.
func FinalReport(title string, res Result) string {
	return fmt.Sprintf("# Critical Analysis Report for: %s\n\n%s", title, res.String())
}

// Run reads one URL from in and writes progress and the report to out.
// Fetch and model failures are reported as text; only I/O on in fails the run.
func (s *Skeptic) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "🚀 Welcome to the Digital Skeptic AI 🚀")
	fmt.Fprintln(out, rule)
	fmt.Fprint(out, "Please enter the URL of the news article to analyze:\n> ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read url: %w", err)
	}
	url := strings.TrimSpace(line)
	if url == "" {
		fmt.Fprintln(out, "[ERROR] No URL provided.")
		return nil
	}

	fmt.Fprintf(out, "[INFO] Fetching content from: %s\n", url)
	article, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		fmt.Fprintf(out, "[ERROR] %s\n", scraper.Reason(err))
		return nil
	}

	title := article.Title
	if title == "" {
		title = untitledTitle
	}

	fmt.Fprintf(out, "[INFO] Analyzing with %s...\n", s.generator.ProviderName())
	res := s.generator.Generate(ctx, title, article.Text)

	fmt.Fprintln(out, "\n"+rule)
	if res.Degraded() {
		fmt.Fprintf(out, "[ERROR] %v\n", res.Err)
		fmt.Fprintln(out, "⚠️ [WARNING] Analysis failed. Here is the failure report:")
	} else {
		fmt.Fprintln(out, "✅ [SUCCESS] Analysis complete! Here is your report:")
	}
	fmt.Fprint(out, rule+"\n\n")

	report := FinalReport(title, res)
	fmt.Fprintln(out, report)
	fmt.Fprintln(out, "\n"+rule)

	s.archiveReport(ctx, article, url, title, report, res.Degraded())
	return nil
}

func (s *Skeptic) archiveReport(ctx context.Context, article *scraper.Article, url, title, report string, degraded bool) {
	if s.archive == nil {
		return
	}
	_, err := s.archive.SaveReport(ctx, &store.Report{
		URL:      url,
		Title:    title,
		SiteName: article.SiteName,
		Byline:   article.Byline,
		Report:   report,
		Degraded: degraded,
	})
	if err != nil {
		log.Printf("[Skeptic] Failed to archive report: %v", err)
	}
}
