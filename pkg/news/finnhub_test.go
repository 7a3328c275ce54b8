package news

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
	"github.com/go-playground/assert/v2"
)

func strPtr(s string) *string { return &s }
func int64Ptr(n int64) *int64 { return &n }

func TestMarketNewsToArticles(t *testing.T) {
	res := []finnhub.MarketNews{
		{
			Headline: strPtr("Chipmaker beats estimates"),
			Summary:  strPtr("Revenue rose 12%."),
			Url:      strPtr("https://example.com/chips"),
			Source:   strPtr("MarketWatch"),
			Datetime: int64Ptr(1760688000),
		},
		{
			Headline: strPtr("Bare item"),
		},
	}

	articles := marketNewsToArticles(res)

	assert.Equal(t, 2, len(articles))
	assert.Equal(t, "Chipmaker beats estimates", articles[0].Title)
	assert.Equal(t, "Revenue rose 12%.", articles[0].Description)
	assert.Equal(t, "https://example.com/chips", articles[0].Link)
	assert.Equal(t, "MarketWatch", articles[0].Source)
	assert.Equal(t, time.Unix(1760688000, 0), articles[0].PublishedAt)

	assert.Equal(t, "Bare item", articles[1].Title)
	assert.Equal(t, "", articles[1].Link)
	assert.Equal(t, time.Time{}, articles[1].PublishedAt)
}

func TestNewFinnHubClientDefaultsCategory(t *testing.T) {
	c := NewFinnHubClient("key", "", nil)
	assert.Equal(t, "general", c.category)
	assert.Equal(t, "FinnHub", c.Name())
}

func TestFinnHubFetch(t *testing.T) {
	var gotPath, gotCategory, gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotCategory = r.URL.Query().Get("category")
		gotToken = r.Header.Get("X-Finnhub-Token")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"headline":"First","summary":"one","url":"https://example.com/1","source":"Reuters","datetime":1760688000},
			{"headline":"Second","summary":"two","url":"https://example.com/2","source":"CNBC","datetime":1760688100},
			{"headline":"Third","summary":"three","url":"https://example.com/3","source":"AP","datetime":1760688200}
		]`))
	}))
	defer srv.Close()

	hc := &http.Client{Transport: &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}}
	client := NewFinnHubClient("fh-key", "crypto", hc)

	articles, err := client.Fetch(context.Background(), 2)

	assert.Equal(t, nil, err)
	assert.Equal(t, "/api/v1/news", gotPath)
	assert.Equal(t, "crypto", gotCategory)
	assert.Equal(t, "fh-key", gotToken)
	assert.Equal(t, 2, len(articles))
	assert.Equal(t, "First", articles[0].Title)
	assert.Equal(t, "Second", articles[1].Title)
}

func TestFinnHubFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"API limit reached"}`))
	}))
	defer srv.Close()

	hc := &http.Client{Transport: &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}}
	client := NewFinnHubClient("fh-key", "", hc)

	_, err := client.Fetch(context.Background(), 0)

	var fetchErr *FetchError
	assert.Equal(t, true, errors.As(err, &fetchErr))
	assert.Equal(t, "FinnHub", fetchErr.Provider)
	assert.Equal(t, http.StatusTooManyRequests, fetchErr.StatusCode)
}
