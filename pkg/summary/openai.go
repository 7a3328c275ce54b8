package summary

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAIClient struct {
	client *openai.Client
	model  openai.ChatModel
}

// NewOpenAIClient builds a chat completion summarizer. An empty model selects
// gpt-4o-mini.
func NewOpenAIClient(apiKey, model string, opts ...option.RequestOption) *OpenAIClient {
	// The SDK retries failed requests by default. A failed summary ends the run.
	base := []option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(0)}
	client := openai.NewClient(append(base, opts...)...)
	chatModel := openai.ChatModelGPT4oMini
	if model != "" {
		chatModel = openai.ChatModel(model)
	}
	return &OpenAIClient{
		client: &client,
		model:  chatModel,
	}
}

func (c *OpenAIClient) Name() string {
	return "OpenAI"
}

func (c *OpenAIClient) Summarize(ctx context.Context, text string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(text),
		},
	})
	if err != nil {
		sumErr := &SummarizeError{Provider: c.Name(), Err: fmt.Errorf("openai API error: %w", err)}
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			sumErr.StatusCode = apiErr.StatusCode
		}
		return "", sumErr
	}

	if len(resp.Choices) == 0 {
		return "", &SummarizeError{Provider: c.Name(), Err: errors.New("no response from openai")}
	}

	result, err := parseSummary(resp.Choices[0].Message.Content)
	if err != nil {
		return "", &SummarizeError{Provider: c.Name(), Err: err}
	}
	return result, nil
}
