package news

import (
	"context"
	"net/http"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

type FinnHubClient struct {
	client   *finnhub.DefaultApiService
	category string
}

func NewFinnHubClient(apiKey, category string, hc *http.Client) *FinnHubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	if hc != nil {
		cfg.HTTPClient = hc
	}
	if category == "" {
		category = "general"
	}
	return &FinnHubClient{
		client:   finnhub.NewAPIClient(cfg).DefaultApi,
		category: category,
	}
}

func (c *FinnHubClient) Fetch(ctx context.Context, limit int) ([]Article, error) {
	res, httpResp, err := c.client.MarketNews(ctx).Category(c.category).Execute()
	if err != nil {
		fetchErr := &FetchError{Provider: c.Name(), Err: err}
		if httpResp != nil {
			fetchErr.StatusCode = httpResp.StatusCode
		}
		return nil, fetchErr
	}

	articles := marketNewsToArticles(res)
	if limit > 0 && len(articles) > limit {
		articles = articles[:limit]
	}
	return articles, nil
}

func (c *FinnHubClient) Name() string {
	return "FinnHub"
}

func marketNewsToArticles(res []finnhub.MarketNews) []Article {
	articles := make([]Article, 0, len(res))
	for _, item := range res {
		a := Article{
			Title:       item.GetHeadline(),
			Description: item.GetSummary(),
			Link:        item.GetUrl(),
			Source:      item.GetSource(),
		}
		if item.Datetime != nil {
			a.PublishedAt = time.Unix(*item.Datetime, 0)
		}
		articles = append(articles, a)
	}
	return articles
}
