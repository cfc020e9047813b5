package scraper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"github.com/microcosm-cc/bluemonday"
)

var (
	// ErrDownload means no document could be retrieved from the URL.
	ErrDownload = errors.New("download failed")
	// ErrExtraction means a document was retrieved but held no article text.
	ErrExtraction = errors.New("extraction failed")
)

const (
	downloadReason   = "Failed to download the article. The URL may be invalid or the site may be blocking requests."
	extractionReason = "Could not extract a meaningful article from the page."

	maxBodyBytes = 20 << 20
)

// Article is the extracted content of a single page.
type Article struct {
	URL      string
	Title    string
	Text     string
	SiteName string
	Byline   string
}

type Scraper struct {
	client *http.Client
	policy *bluemonday.Policy
}

func NewScraper() *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		policy: bluemonday.StrictPolicy().AddSpaceWhenStrippingTag(true),
	}
}

// NewScraperWithClient is used by tests to point the scraper at a fake transport.
func NewScraperWithClient(client *http.Client) *Scraper {
	s := NewScraper()
	s.client = client
	return s
}

// Reason returns the human-readable explanation for a Fetch error.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDownload):
		return downloadReason
	case errors.Is(err, ErrExtraction):
		return extractionReason
	default:
		return err.Error()
	}
}

// Fetch downloads the page at rawURL and extracts its title and main body text.
// Every returned error wraps either ErrDownload or ErrExtraction.
func (s *Scraper) Fetch(ctx context.Context, rawURL string) (*Article, error) {
	log.Printf("[Scraper] Fetching URL: %s", rawURL)

	raw, pageURL, err := s.download(ctx, rawURL)
	if err != nil {
		log.Printf("[Scraper] Download failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrDownload, err)
	}

	article, err := s.extract(raw, pageURL)
	if err != nil {
		log.Printf("[Scraper] Extraction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	article.URL = rawURL

	log.Printf("[Scraper] Extracted %d characters, title '%s'", len(article.Text), article.Title)
	return article, nil
}

func (s *Scraper) download(ctx context.Context, rawURL string) ([]byte, *url.URL, error) {
	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Browser-like headers avoid the most common 403 blocks
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Upgrade-Insecure-Requests", "1")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch url: %w", err)
	}
	defer resp.Body.Close()

	log.Printf("[Scraper] Response status: %d", resp.StatusCode)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, fmt.Errorf("status code error: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read body: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil, fmt.Errorf("empty response body")
	}

	// Redirects change the base used to resolve relative links
	if resp.Request != nil && resp.Request.URL != nil {
		pageURL = resp.Request.URL
	}
	return body, pageURL, nil
}

func (s *Scraper) extract(raw []byte, pageURL *url.URL) (*Article, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	title := s.metadataTitle(doc)

	// Comments and tables are not part of the article body
	doc.Find("script, style, noscript, template, iframe").Remove()
	doc.Find("table").Remove()
	doc.Find(commentSelectors).Remove()

	cleaned, err := doc.Html()
	if err != nil {
		return nil, fmt.Errorf("failed to render cleaned html: %w", err)
	}

	parsed, err := readability.FromReader(strings.NewReader(cleaned), pageURL)
	if err != nil {
		log.Printf("[Scraper] Readability failed, falling back to landmark text: %v", err)
	}

	text := normalizeText(parsed.TextContent)
	if text == "" {
		text = s.landmarkText(doc)
	}
	if text == "" {
		return nil, errors.New("no article text found")
	}

	if title == "" {
		title = s.clean(parsed.Title)
	}

	return &Article{
		Title:    title,
		Text:     text,
		SiteName: s.clean(parsed.SiteName),
		Byline:   s.clean(parsed.Byline),
	}, nil
}

var commentSelectors = strings.Join([]string{
	"#comments", ".comments", "#disqus_thread", ".comment-list",
	".commentlist", "#respond", ".comment-respond", "[itemprop='comment']",
	"section[class*='comment']", "div[id^='comment-']",
}, ", ")

// metadataTitle reads the title from page metadata, independent of the body extraction.
func (s *Scraper) metadataTitle(doc *goquery.Document) string {
	metaSelectors := []string{
		"meta[property='og:title']",
		"meta[name='twitter:title']",
		"meta[name='title']",
	}
	for _, selector := range metaSelectors {
		if content, ok := doc.Find(selector).First().Attr("content"); ok {
			if title := s.clean(content); title != "" {
				return title
			}
		}
	}

	if title := s.clean(doc.Find("head title").First().Text()); title != "" {
		return title
	}
	return s.clean(doc.Find("h1").First().Text())
}

// clean collapses whitespace. Its input is already decoded text, so a literal
// "<b>" in a title is kept.
func (s *Scraper) clean(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// landmarkText strips the markup of the page's main landmark. Used when
// readability finds no article body.
func (s *Scraper) landmarkText(doc *goquery.Document) string {
	landmark := doc.Find("article, main, [role='main']").First()
	if landmark.Length() == 0 {
		return ""
	}
	raw, err := goquery.OuterHtml(landmark)
	if err != nil {
		return ""
	}
	// The sanitizer escapes text, so unescape only after it has run
	return s.clean(html.UnescapeString(s.policy.Sanitize(raw)))
}

// normalizeText trims each line and collapses runs of blank lines into one.
func normalizeText(raw string) string {
	var sb strings.Builder
	blank := false
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			blank = sb.Len() > 0
			continue
		}
		if blank {
			sb.WriteString("\n\n")
		} else if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(line)
		blank = false
	}
	return sb.String()
}
