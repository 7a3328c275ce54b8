package summary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const textGearsBaseURL = "https://api.textgears.com/summarize"

// TextGearsClient calls the TextGears extractive summarizer.
type TextGearsClient struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
}

type TextGearsOption func(*TextGearsClient)

// WithLanguage sets the TextGears language code, e.g. "en-GB".
func WithLanguage(language string) TextGearsOption {
	return func(c *TextGearsClient) {
		c.language = language
	}
}

func WithTextGearsBaseURL(u string) TextGearsOption {
	return func(c *TextGearsClient) {
		c.baseURL = u
	}
}

func WithTextGearsHTTPClient(hc *http.Client) TextGearsOption {
	return func(c *TextGearsClient) {
		c.httpClient = hc
	}
}

func NewTextGearsClient(apiKey string, opts ...TextGearsOption) *TextGearsClient {
	c := &TextGearsClient{
		apiKey:     apiKey,
		baseURL:    textGearsBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *TextGearsClient) Name() string {
	return "TextGears"
}

func (c *TextGearsClient) Summarize(ctx context.Context, text string) (string, error) {
	form := url.Values{}
	form.Set("key", c.apiKey)
	form.Set("text", text)
	if c.language != "" {
		form.Set("language", c.language)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", c.fail(0, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", c.fail(0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", c.fail(resp.StatusCode, errors.New(http.StatusText(resp.StatusCode)))
	}

	var raw textGearsResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", c.fail(resp.StatusCode, fmt.Errorf("decode: %w", err))
	}

	if !raw.Status {
		return "", c.fail(resp.StatusCode, fmt.Errorf("error %d: %s", raw.ErrorCode, raw.Description))
	}

	result := strings.TrimSpace(strings.Join(raw.Response.Summary, "\n"))
	if result == "" {
		return "", c.fail(resp.StatusCode, errEmptySummary)
	}
	return result, nil
}

func (c *TextGearsClient) fail(status int, err error) error {
	return &SummarizeError{Provider: c.Name(), StatusCode: status, Err: err}
}

type textGearsResponse struct {
	Status      bool   `json:"status"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
	Response    struct {
		Summary   []string `json:"summary"`
		Keywords  []string `json:"keywords"`
		Highlight []string `json:"highlight"`
	} `json:"response"`
}
