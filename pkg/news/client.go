package news

import (
	"context"
	"fmt"
	"time"
)

type Article struct {
	Title       string
	Description string
	Link        string
	Source      string
	PublishedAt time.Time
}

type NewsClient interface {
	// Fetch returns articles in provider order. limit <= 0 leaves the page
	// size to the provider.
	Fetch(ctx context.Context, limit int) ([]Article, error)
	Name() string
}

// FetchError is returned when the headline listing cannot be retrieved or
// decoded.
type FetchError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s fetch: status %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s fetch: %v", e.Provider, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
