package news

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-shiori/go-readability"
)

const defaultMaxContentLen = 4000

// Extractor pulls the readable body text out of an article page.
type Extractor struct {
	httpClient    *http.Client
	maxContentLen int
}

func NewExtractor(hc *http.Client, maxContentLen int) *Extractor {
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	if maxContentLen <= 0 {
		maxContentLen = defaultMaxContentLen
	}
	return &Extractor{httpClient: hc, maxContentLen: maxContentLen}
}

// Extract returns the page text for link, truncated to the configured length.
// An empty string with a nil error means the page had no readable body.
func (e *Extractor) Extract(ctx context.Context, link string) (string, error) {
	pageURL, err := url.Parse(link)
	if err != nil || pageURL.Scheme == "" || pageURL.Host == "" {
		return "", e.fail(0, fmt.Errorf("invalid URL: %q", link))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return "", e.fail(0, err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; newsbot/1.0)")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", e.fail(0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", e.fail(resp.StatusCode, errors.New(http.StatusText(resp.StatusCode)))
	}

	text, err := readableText(resp.Body, pageURL)
	if err != nil {
		return "", e.fail(resp.StatusCode, err)
	}

	return truncate(text, e.maxContentLen), nil
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func (e *Extractor) fail(status int, err error) error {
	return &FetchError{Provider: "extract", StatusCode: status, Err: err}
}

func readableText(r io.Reader, pageURL *url.URL) (string, error) {
	article, err := readability.FromReader(r, pageURL)
	if err != nil {
		return "", fmt.Errorf("parse content: %w", err)
	}
	return strings.Join(strings.Fields(article.TextContent), " "), nil
}
