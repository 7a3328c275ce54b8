package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const newsDataBaseURL = "https://newsdata.io/api/1/news"

type NewsDataClient struct {
	apiKey     string
	baseURL    string
	category   string
	language   string
	domain     string
	httpClient *http.Client
}

type NewsDataOption func(*NewsDataClient)

func WithCategory(category string) NewsDataOption {
	return func(c *NewsDataClient) {
		c.category = category
	}
}

func WithLanguage(language string) NewsDataOption {
	return func(c *NewsDataClient) {
		c.language = language
	}
}

// WithDomain restricts results to the given comma separated source domains.
func WithDomain(domain string) NewsDataOption {
	return func(c *NewsDataClient) {
		c.domain = domain
	}
}

func WithNewsDataBaseURL(u string) NewsDataOption {
	return func(c *NewsDataClient) {
		c.baseURL = u
	}
}

func WithNewsDataHTTPClient(hc *http.Client) NewsDataOption {
	return func(c *NewsDataClient) {
		c.httpClient = hc
	}
}

func NewNewsDataClient(apiKey string, opts ...NewsDataOption) *NewsDataClient {
	c := &NewsDataClient{
		apiKey:     apiKey,
		baseURL:    newsDataBaseURL,
		language:   "en",
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *NewsDataClient) Name() string {
	return "NewsData"
}

func (c *NewsDataClient) Fetch(ctx context.Context, limit int) ([]Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(limit), nil)
	if err != nil {
		return nil, c.fail(0, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail(0, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(resp.StatusCode, err)
	}

	var raw newsDataResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, c.fail(resp.StatusCode, errors.New(http.StatusText(resp.StatusCode)))
		}
		return nil, c.fail(resp.StatusCode, fmt.Errorf("decode: %w", err))
	}

	// On failure newsdata.io replaces the results array with an error object.
	if raw.Status != "success" || resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr newsDataError
		_ = json.Unmarshal(raw.Results, &apiErr)
		if apiErr.Message == "" {
			apiErr.Message = "status " + strconv.Quote(raw.Status)
		}
		return nil, c.fail(resp.StatusCode, errors.New(apiErr.Message))
	}

	var results []newsDataResult
	if err := json.Unmarshal(raw.Results, &results); err != nil {
		return nil, c.fail(resp.StatusCode, fmt.Errorf("decode results: %w", err))
	}

	articles := make([]Article, 0, len(results))
	for _, item := range results {
		if item.Link == "" {
			continue
		}

		publishedAt, err := time.Parse(time.DateTime, item.PubDate)
		if err != nil {
			publishedAt = time.Time{}
		}

		source := item.SourceName
		if source == "" {
			source = item.SourceID
		}

		articles = append(articles, Article{
			Title:       item.Title,
			Description: item.Description,
			Link:        item.Link,
			Source:      source,
			PublishedAt: publishedAt,
		})
	}

	return articles, nil
}

func (c *NewsDataClient) requestURL(limit int) string {
	q := url.Values{}
	q.Set("apikey", c.apiKey)
	if c.language != "" {
		q.Set("language", c.language)
	}
	if c.category != "" {
		q.Set("category", c.category)
	}
	if c.domain != "" {
		q.Set("domain", c.domain)
	}
	if limit > 0 {
		q.Set("size", strconv.Itoa(limit))
	}
	return c.baseURL + "?" + q.Encode()
}

func (c *NewsDataClient) fail(status int, err error) error {
	return &FetchError{Provider: c.Name(), StatusCode: status, Err: err}
}

type newsDataResponse struct {
	Status       string          `json:"status"`
	TotalResults int             `json:"totalResults"`
	Results      json.RawMessage `json:"results"`
}

type newsDataResult struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	SourceID    string `json:"source_id"`
	SourceName  string `json:"source_name"`
	PubDate     string `json:"pubDate"`
}

type newsDataError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}
