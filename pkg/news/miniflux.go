package news

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	miniflux "miniflux.app/v2/client"
)

// MinifluxClient lists unread entries from a self-hosted Miniflux instance.
type MinifluxClient struct {
	client *miniflux.Client
}

func NewMinifluxClient(endpoint, apiKey string, hc *http.Client) *MinifluxClient {
	opts := []miniflux.Option{miniflux.WithAPIKey(apiKey)}
	if hc != nil {
		opts = append(opts, miniflux.WithHTTPClient(hc))
	}
	return &MinifluxClient{client: miniflux.NewClientWithOptions(endpoint, opts...)}
}

func (c *MinifluxClient) Name() string {
	return "Miniflux"
}

func (c *MinifluxClient) Fetch(ctx context.Context, limit int) ([]Article, error) {
	filter := &miniflux.Filter{
		Statuses:  []string{"unread"},
		Order:     "published_at",
		Direction: "desc",
	}
	if limit > 0 {
		filter.Limit = limit
	}

	result, err := c.client.EntriesContext(ctx, filter)
	if err != nil {
		return nil, &FetchError{Provider: c.Name(), StatusCode: minifluxStatus(err), Err: err}
	}

	return entriesToArticles(result.Entries), nil
}

// minifluxStatus recovers the HTTP status behind the client's sentinel errors.
func minifluxStatus(err error) int {
	switch {
	case errors.Is(err, miniflux.ErrNotAuthorized):
		return http.StatusUnauthorized
	case errors.Is(err, miniflux.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, miniflux.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, miniflux.ErrBadRequest):
		return http.StatusBadRequest
	default:
		return 0
	}
}

func entriesToArticles(entries []*miniflux.Entry) []Article {
	articles := make([]Article, 0, len(entries))
	for _, e := range entries {
		a := Article{
			Title:       e.Title,
			Link:        e.URL,
			PublishedAt: e.Date,
		}
		if e.Feed != nil {
			a.Source = e.Feed.Title
		}
		a.Description = entryText(e)
		articles = append(articles, a)
	}
	return articles
}

// entryText reduces the HTML entry body to plain text. Entries whose body
// cannot be parsed keep an empty description.
func entryText(e *miniflux.Entry) string {
	if strings.TrimSpace(e.Content) == "" {
		return ""
	}
	pageURL, err := url.Parse(e.URL)
	if err != nil {
		pageURL = &url.URL{}
	}
	text, err := readableText(strings.NewReader(e.Content), pageURL)
	if err != nil {
		return ""
	}
	return text
}
