package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articlePage = `<!DOCTYPE html>
<html>
<head>
  <title>Example Headline | Daily Example</title>
  <meta property="og:title" content="Example Headline">
  <meta property="og:site_name" content="Daily Example">
</head>
<body>
  <nav><a href="/">Home</a> <a href="/world">World</a></nav>
  <article>
    <h1>Example Headline</h1>
    <p>The city council voted on Tuesday to approve a new transit budget that officials say will expand bus service to every district by the end of next year, according to documents released after the meeting.</p>
    <p>Supporters of the measure argued that the plan would reduce commute times for thousands of residents, while critics questioned whether the projected ridership numbers were realistic given the decline seen over the past three years.</p>
    <p>The mayor, speaking to reporters outside city hall, described the vote as a turning point and promised that an independent audit of the transit authority would be published before the first new routes open to the public.</p>
    <table><tr><td>SECRET-TABLE-CELL</td><td>42</td></tr></table>
    <p>Several neighborhood groups have asked for public hearings on the route map, and the council said it would schedule at least two sessions in the coming months so that residents can comment on the proposed changes.</p>
  </article>
  <section id="comments">
    <p>COMMENT-TEXT this is a reader comment that should never be part of the article body at all.</p>
  </section>
</body>
</html>`

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchExtractsTitleAndText(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla/5.0")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(articlePage))
	})

	s := NewScraperWithClient(srv.Client())
	article, err := s.Fetch(context.Background(), srv.URL+"/news/transit")
	require.NoError(t, err)

	assert.Equal(t, "Example Headline", article.Title)
	assert.Equal(t, srv.URL+"/news/transit", article.URL)
	assert.Contains(t, article.Text, "approve a new transit budget")
	assert.Contains(t, article.Text, "schedule at least two sessions")
	assert.NotContains(t, article.Text, "SECRET-TABLE-CELL")
	assert.NotContains(t, article.Text, "COMMENT-TEXT")
}

func TestFetchFallsBackToTitleTag(t *testing.T) {
	page := strings.Replace(articlePage, `<meta property="og:title" content="Example Headline">`, "", 1)
	page = strings.Replace(page, "Example Headline | Daily Example", "Tom &amp; Jerry Report", 1)
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	})

	article, err := NewScraperWithClient(srv.Client()).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Tom & Jerry Report", article.Title)
}

func TestFetchKeepsLiteralMarkupInTitle(t *testing.T) {
	page := strings.Replace(articlePage,
		`<meta property="og:title" content="Example Headline">`,
		`<meta property="og:title" content="Why 3 &lt; 5 and 7 &gt; 2 matter for &lt;b&gt;budgets">`, 1)
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	})

	article, err := NewScraperWithClient(srv.Client()).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Why 3 < 5 and 7 > 2 matter for <b>budgets", article.Title)
}

func TestLandmarkText(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<html><body>
<nav>Home</nav>
<main><h2>Budget &lt;b&gt; notes</h2><p>First   paragraph.</p><p>Second paragraph.</p></main>
</body></html>`))
	require.NoError(t, err)

	s := NewScraper()
	assert.Equal(t, "Budget <b> notes First paragraph. Second paragraph.", s.landmarkText(doc))

	empty, err := goquery.NewDocumentFromReader(strings.NewReader(`<html><body><p>No landmark</p></body></html>`))
	require.NoError(t, err)
	assert.Empty(t, s.landmarkText(empty))
}

func TestFetchDownloadErrors(t *testing.T) {
	notFound := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	})
	forbidden := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	empty := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	closed := httptest.NewServer(http.NotFoundHandler())
	closedURL := closed.URL
	closed.Close()

	tests := []struct {
		name string
		url  string
	}{
		{"not found", notFound.URL},
		{"forbidden", forbidden.URL},
		{"empty body", empty.URL},
		{"connection refused", closedURL},
		{"not a url", "::not a url"},
		{"unsupported scheme", "ftp://example.com/article"},
	}

	s := NewScraperWithClient(&http.Client{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			article, err := s.Fetch(context.Background(), tt.url)
			require.ErrorIs(t, err, ErrDownload)
			assert.Nil(t, article)
			assert.Equal(t, downloadReason, Reason(err))
		})
	}
}

func TestFetchExtractionError(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title>Nothing here</title></head><body><script>var x = 1;</script></body></html>`))
	})

	article, err := NewScraperWithClient(srv.Client()).Fetch(context.Background(), srv.URL)
	require.ErrorIs(t, err, ErrExtraction)
	assert.Nil(t, article)
	assert.Equal(t, extractionReason, Reason(err))
}

func TestReason(t *testing.T) {
	assert.Empty(t, Reason(nil))
	assert.Equal(t, assert.AnError.Error(), Reason(assert.AnError))
}

func TestNormalizeText(t *testing.T) {
	raw := "\n\n  First line  \n\tSecond line\n\n\n\nThird paragraph \n\n"
	assert.Equal(t, "First line\nSecond line\n\nThird paragraph", normalizeText(raw))
	assert.Empty(t, normalizeText(" \n\t\n "))
}
