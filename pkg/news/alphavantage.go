package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

type AlphaVantageClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewAlphaVantageClient(apiKey string, hc *http.Client) *AlphaVantageClient {
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	return &AlphaVantageClient{
		apiKey:     apiKey,
		httpClient: hc,
	}
}

func (c *AlphaVantageClient) Name() string {
	return "AlphaVantage"
}

func (c *AlphaVantageClient) Fetch(ctx context.Context, limit int) ([]Article, error) {
	q := url.Values{}
	q.Set("function", "NEWS_SENTIMENT")
	q.Set("sort", "LATEST")
	q.Set("apikey", c.apiKey)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://www.alphavantage.co/query?"+q.Encode(), nil)
	if err != nil {
		return nil, &FetchError{Provider: c.Name(), Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Provider: c.Name(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Provider: c.Name(), StatusCode: resp.StatusCode, Err: errors.New(http.StatusText(resp.StatusCode))}
	}

	var raw avResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &FetchError{Provider: c.Name(), StatusCode: resp.StatusCode, Err: fmt.Errorf("decode: %w", err)}
	}

	// Alpha Vantage reports bad keys and throttling with a 200 and a message body.
	if raw.Feed == nil {
		msg := raw.ErrorMessage
		if msg == "" {
			msg = raw.Information
		}
		if msg == "" {
			msg = "response has no feed"
		}
		return nil, &FetchError{Provider: c.Name(), StatusCode: resp.StatusCode, Err: errors.New(msg)}
	}

	articles := make([]Article, 0, len(raw.Feed))
	for _, item := range raw.Feed {
		publishedAt, err := time.Parse("20060102T150405", item.TimePublished)
		if err != nil {
			publishedAt = time.Time{}
		}

		articles = append(articles, Article{
			Title:       item.Title,
			Description: item.Summary,
			Link:        item.URL,
			Source:      item.Source,
			PublishedAt: publishedAt,
		})
	}

	return articles, nil
}

type avResponse struct {
	Feed         []avFeedItem `json:"feed"`
	Information  string       `json:"Information"`
	ErrorMessage string       `json:"Error Message"`
}

type avFeedItem struct {
	Title         string `json:"title"`
	Summary       string `json:"summary"`
	URL           string `json:"url"`
	Source        string `json:"source"`
	TimePublished string `json:"time_published"`
}
