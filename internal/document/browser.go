package document

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chromedp/chromedp"
)

// renderWithBrowser loads a page in headless Chrome and returns the rendered
// HTML. Used for learning-management systems that build the syllabus page
// with JavaScript. Requires Chrome/Chromium on the host.
func renderWithBrowser(ctx context.Context, pageURL string, timeout time.Duration, verbose bool) (string, error) {
	if verbose {
		slog.Info("document.browser.start", "url", pageURL)
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body"),
		// Give client-side rendering a moment to fill in the page
		chromedp.Sleep(3*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	if verbose {
		slog.Info("document.browser.rendered", "url", pageURL, "bytes", len(html))
	}
	return html, nil
}
