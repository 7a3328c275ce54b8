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

// MassiveClient reads the Massive (formerly Polygon) reference news feed.
type MassiveClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewMassiveClient(apiKey string, hc *http.Client) *MassiveClient {
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	return &MassiveClient{
		apiKey:     apiKey,
		httpClient: hc,
	}
}

func (c *MassiveClient) Name() string {
	return "Massive"
}

func (c *MassiveClient) Fetch(ctx context.Context, limit int) ([]Article, error) {
	q := url.Values{}
	q.Set("order", "desc")
	q.Set("sort", "published_utc")
	q.Set("apiKey", c.apiKey)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://api.massive.com/v2/reference/news?"+q.Encode(), nil)
	if err != nil {
		return nil, &FetchError{Provider: c.Name(), Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Provider: c.Name(), Err: err}
	}
	defer resp.Body.Close()

	var raw massiveResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &FetchError{Provider: c.Name(), StatusCode: resp.StatusCode, Err: fmt.Errorf("decode: %w", err)}
	}

	if resp.StatusCode != http.StatusOK || raw.Status == "ERROR" {
		msg := raw.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &FetchError{Provider: c.Name(), StatusCode: resp.StatusCode, Err: errors.New(msg)}
	}

	articles := make([]Article, 0, len(raw.Results))
	for _, item := range raw.Results {
		publishedAt, err := time.Parse(time.RFC3339, item.PublishedUTC)
		if err != nil {
			publishedAt = time.Time{}
		}

		articles = append(articles, Article{
			Title:       item.Title,
			Description: item.Description,
			Link:        item.ArticleURL,
			Source:      item.Publisher.Name,
			PublishedAt: publishedAt,
		})
	}

	return articles, nil
}

type massiveResponse struct {
	Status  string          `json:"status"`
	Error   string          `json:"error"`
	Results []massiveResult `json:"results"`
}

type massiveResult struct {
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	ArticleURL   string           `json:"article_url"`
	PublishedUTC string           `json:"published_utc"`
	Publisher    massivePublisher `json:"publisher"`
}

type massivePublisher struct {
	Name string `json:"name"`
}
