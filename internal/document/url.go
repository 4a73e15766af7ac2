package document

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/syllabus-agent/internal/types"
)

// fetchTimeout is the HTTP timeout for online syllabus pages.
const fetchTimeout = 30 * time.Second

// fetchUserAgent identifies the agent to course web servers.
const fetchUserAgent = "Mozilla/5.0 (compatible; SyllabusAgent/1.0)"

// minRenderedLength is the minimum extracted text length before we assume
// the page is JavaScript-rendered and fall back to a headless browser.
const minRenderedLength = 500

// FetchError represents an error while fetching an online syllabus.
type FetchError struct {
	URL     string
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// URLOptions configures online syllabus ingestion.
type URLOptions struct {
	// UseBrowser falls back to headless Chrome when the plain HTTP fetch
	// yields too little text to be a real syllabus page.
	UseBrowser bool
	Verbose    bool
}

// FromURL fetches a syllabus published as a course web page and normalizes
// it to text content. Pages that render their content with JavaScript can be
// retried through a headless browser.
func (n *Normalizer) FromURL(ctx context.Context, pageURL string, opts URLOptions) (*types.NormalizedContent, error) {
	html, err := fetchHTML(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	text, err := extractMainText(html)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Message: "failed to parse HTML", Cause: err}
	}

	if opts.UseBrowser && len(strings.TrimSpace(text)) < minRenderedLength {
		rendered, berr := renderWithBrowser(ctx, pageURL, fetchTimeout, opts.Verbose)
		if berr == nil {
			if renderedText, perr := extractMainText(rendered); perr == nil && len(renderedText) > len(text) {
				text = renderedText
			}
		}
	}

	cleaned := CleanExtractedText(text)
	if cleaned == "" {
		return nil, &FetchError{URL: pageURL, Message: "no text content found on page"}
	}

	return &types.NormalizedContent{
		Kind: types.KindText,
		Text: cleaned,
		Metadata: types.DocumentMetadata{
			OriginalName: pageURL,
			MIMEType:     "text/html",
			Size:         int64(len(html)),
			WordCount:    CountWords(cleaned),
		},
	}, nil
}

// fetchHTML retrieves raw HTML from a URL.
func fetchHTML(ctx context.Context, pageURL string) (string, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &FetchError{URL: pageURL, Message: "invalid URL", Cause: err}
	}

	client := &http.Client{Timeout: fetchTimeout}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", &FetchError{URL: pageURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", fetchUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", &FetchError{URL: pageURL, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: pageURL, Message: "failed to read response body", Cause: err}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{URL: pageURL, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}
	return string(body), nil
}

// syllabusSelectors are tried in order when locating the main content of a
// course page.
var syllabusSelectors = []string{
	".syllabus",
	"#syllabus",
	".course-content",
	"#course-content",
	"main",
	"article",
	".content",
	"#content",
}

// extractMainText parses HTML, removes navigation noise, and returns the
// main body text.
func extractMainText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find("nav, footer, header, script, style, noscript, .sidebar, .cookie-banner, .popup").Remove()

	var main *goquery.Selection
	for _, selector := range syllabusSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			main = sel.First()
			break
		}
	}
	if main == nil {
		main = doc.Find("body")
	}

	lines := strings.Split(main.Text(), "\n")
	var kept []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n"), nil
}
