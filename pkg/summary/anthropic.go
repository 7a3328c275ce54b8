package summary

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicClient struct {
	client *anthropic.Client
	model  anthropic.Model
}

// NewAnthropicClient builds a messages API summarizer. An empty model selects
// Claude Haiku 4.5.
func NewAnthropicClient(apiKey, model string, opts ...option.RequestOption) *AnthropicClient {
	// The SDK retries failed requests by default. A failed summary ends the run.
	base := []option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(0)}
	client := anthropic.NewClient(append(base, opts...)...)
	m := anthropic.ModelClaudeHaiku4_5
	if model != "" {
		m = anthropic.Model(model)
	}
	return &AnthropicClient{
		client: &client,
		model:  m,
	}
}

func (c *AnthropicClient) Name() string {
	return "Anthropic"
}

func (c *AnthropicClient) Summarize(ctx context.Context, text string) (string, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
	})
	if err != nil {
		sumErr := &SummarizeError{Provider: c.Name(), Err: fmt.Errorf("anthropic API error: %w", err)}
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			sumErr.StatusCode = apiErr.StatusCode
		}
		return "", sumErr
	}

	if len(resp.Content) == 0 {
		return "", &SummarizeError{Provider: c.Name(), Err: errors.New("no response from anthropic")}
	}

	result, err := parseSummary(resp.Content[0].Text)
	if err != nil {
		return "", &SummarizeError{Provider: c.Name(), Err: err}
	}
	return result, nil
}
