package summary

import (
	"context"
	"fmt"
)

type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
	Name() string
}

// SummarizeError wraps any failure to obtain a summary from a provider,
// including a provider that answers with an empty summary.
type SummarizeError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *SummarizeError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s summarize: status %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s summarize: %v", e.Provider, e.Err)
}

func (e *SummarizeError) Unwrap() error {
	return e.Err
}
