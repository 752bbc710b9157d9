package fetch

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// renderThreshold is the minimum amount of extracted text below which a page
// is assumed to be a client-rendered SPA that needs a real browser.
const renderThreshold = 500

// defaultRenderTimeout bounds a single headless render, including navigation
// and hydration polling.
const defaultRenderTimeout = 30 * time.Second

// ShouldUseBrowser reports whether the plain HTTP fetch produced too little
// text to be a real resume page.
func ShouldUseBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < renderThreshold
}

// RenderPage loads url in a headless Chrome instance, waits for client-side
// rendering to settle, and returns the resulting HTML. Requires a Chrome or
// Chromium binary on the host. A timeout of zero uses defaultRenderTimeout.
func RenderPage(ctx context.Context, url string, timeout time.Duration, verbose bool) (string, error) {
	if timeout <= 0 {
		timeout = defaultRenderTimeout
	}
	if verbose {
		log.Printf("[BROWSER] Rendering %s (timeout %s)", url, timeout)
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, timeout)
	defer cancelTimeout()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		waitForHydration(verbose),
		dismissCookieBanner(),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	if verbose {
		log.Printf("[BROWSER] Rendered HTML: %d bytes", len(html))
	}
	return html, nil
}

// waitForHydration polls the visible text length until it stops growing, so
// SPAs get however long they actually need instead of a fixed sleep. Bails
// out after ten rounds to keep slow pages within the render timeout.
func waitForHydration(verbose bool) chromedp.ActionFunc {
	return func(ctx context.Context) error {
		const (
			pollInterval = 500 * time.Millisecond
			maxPolls     = 10
		)
		prev := -1
		for i := 0; i < maxPolls; i++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(pollInterval):
			}

			var length int
			if err := chromedp.Evaluate(`document.body.innerText.length`, &length).Do(ctx); err != nil {
				return err
			}
			if length == prev && length > 0 {
				if verbose {
					log.Printf("[BROWSER] Content settled at %d chars after %d polls", length, i+1)
				}
				return nil
			}
			prev = length
		}
		// Still growing after maxPolls; proceed with whatever rendered.
		return nil
	}
}

// dismissCookieBanner clicks common consent buttons so overlays don't end up
// in the extracted text. Missing banners are not an error.
func dismissCookieBanner() chromedp.ActionFunc {
	return func(ctx context.Context) error {
		_ = chromedp.Click(`button[id*="accept"], button[class*="accept"]`, chromedp.NodeVisible).Do(ctx)
		return nil
	}
}
