package news

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestNewsDataFetch(t *testing.T) {
	payload := map[string]interface{}{
		"status":       "success",
		"totalResults": 3,
		"results": []map[string]interface{}{
			{
				"title":       "A",
				"link":        "l1",
				"description": "desc-A",
				"source_id":   "wired",
				"pubDate":     "2026-10-17 08:30:00",
			},
			{
				"title":       "No link",
				"description": "dropped",
			},
			{
				"title":       "B",
				"link":        "l2",
				"description": "desc-B",
				"source_id":   "phys",
				"source_name": "Phys.org",
				"pubDate":     "garbage",
			},
		},
	}

	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"apikey":   q.Get("apikey"),
			"language": q.Get("language"),
			"category": q.Get("category"),
			"domain":   q.Get("domain"),
			"size":     q.Get("size"),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := NewNewsDataClient("test-key",
		WithNewsDataBaseURL(srv.URL),
		WithCategory("technology"),
		WithDomain("wired,phys"),
	)

	articles, err := client.Fetch(context.Background(), 10)

	assert.Equal(t, nil, err)
	assert.Equal(t, "test-key", gotQuery["apikey"])
	assert.Equal(t, "en", gotQuery["language"])
	assert.Equal(t, "technology", gotQuery["category"])
	assert.Equal(t, "wired,phys", gotQuery["domain"])
	assert.Equal(t, "10", gotQuery["size"])

	assert.Equal(t, 2, len(articles))
	assert.Equal(t, "A", articles[0].Title)
	assert.Equal(t, "desc-A", articles[0].Description)
	assert.Equal(t, "l1", articles[0].Link)
	assert.Equal(t, "wired", articles[0].Source)
	assert.Equal(t, 2026, articles[0].PublishedAt.Year())
	assert.Equal(t, time.October, articles[0].PublishedAt.Month())

	assert.Equal(t, "B", articles[1].Title)
	assert.Equal(t, "Phys.org", articles[1].Source)
	assert.Equal(t, time.Time{}, articles[1].PublishedAt)
}

func TestNewsDataFetchNoLimit(t *testing.T) {
	var hasSize bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasSize = r.URL.Query()["size"]
		w.Write([]byte(`{"status":"success","totalResults":0,"results":[]}`))
	}))
	defer srv.Close()

	client := NewNewsDataClient("k", WithNewsDataBaseURL(srv.URL))
	articles, err := client.Fetch(context.Background(), 0)

	assert.Equal(t, nil, err)
	assert.Equal(t, false, hasSize)
	assert.Equal(t, 0, len(articles))
}

func TestNewsDataFetchProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":"error","results":{"message":"API key is invalid.","code":"Unauthorized"}}`))
	}))
	defer srv.Close()

	client := NewNewsDataClient("bad", WithNewsDataBaseURL(srv.URL))
	_, err := client.Fetch(context.Background(), 0)

	var fetchErr *FetchError
	assert.Equal(t, true, errors.As(err, &fetchErr))
	assert.Equal(t, "NewsData", fetchErr.Provider)
	assert.Equal(t, http.StatusUnauthorized, fetchErr.StatusCode)
	assert.Equal(t, "API key is invalid.", fetchErr.Err.Error())
}

func TestNewsDataFetchNonJSONStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewNewsDataClient("k", WithNewsDataBaseURL(srv.URL))
	_, err := client.Fetch(context.Background(), 0)

	var fetchErr *FetchError
	assert.Equal(t, true, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusBadGateway, fetchErr.StatusCode)
}

func TestNewsDataFetchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","results":"nope"}`))
	}))
	defer srv.Close()

	client := NewNewsDataClient("k", WithNewsDataBaseURL(srv.URL))
	_, err := client.Fetch(context.Background(), 0)

	var fetchErr *FetchError
	assert.Equal(t, true, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusOK, fetchErr.StatusCode)
}

func TestNewsDataFetchNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewNewsDataClient("k", WithNewsDataBaseURL(srv.URL))
	_, err := client.Fetch(context.Background(), 0)

	var fetchErr *FetchError
	assert.Equal(t, true, errors.As(err, &fetchErr))
	assert.Equal(t, 0, fetchErr.StatusCode)
}
