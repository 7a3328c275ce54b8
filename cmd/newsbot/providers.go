package main

import (
	"net/http"

	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	openaioption "github.com/openai/openai-go/option"

	"github.com/MadeInShineA/telegram-bots/internal/config"
	"github.com/MadeInShineA/telegram-bots/pkg/news"
	"github.com/MadeInShineA/telegram-bots/pkg/summary"
)

func newNewsClient(cfg *config.Config, hc *http.Client) news.NewsClient {
	switch cfg.NewsProvider {
	case config.ProviderFinnHub:
		return news.NewFinnHubClient(cfg.NewsAPIKey, cfg.NewsCategory, hc)
	case config.ProviderAlphaVantage:
		return news.NewAlphaVantageClient(cfg.NewsAPIKey, hc)
	case config.ProviderMassive:
		return news.NewMassiveClient(cfg.NewsAPIKey, hc)
	case config.ProviderMiniflux:
		return news.NewMinifluxClient(cfg.MinifluxURL, cfg.NewsAPIKey, hc)
	default:
		return news.NewNewsDataClient(cfg.NewsAPIKey,
			news.WithNewsDataHTTPClient(hc),
			news.WithLanguage(cfg.NewsLanguage),
			news.WithCategory(cfg.NewsCategory),
			news.WithDomain(cfg.NewsDomain),
		)
	}
}

func newSummarizer(cfg *config.Config, hc *http.Client) summary.Summarizer {
	switch cfg.SummaryProvider {
	case config.ProviderOpenAI:
		return summary.NewOpenAIClient(cfg.SummaryAPIKey, cfg.SummaryModel, openaioption.WithHTTPClient(hc))
	case config.ProviderAnthropic:
		return summary.NewAnthropicClient(cfg.SummaryAPIKey, cfg.SummaryModel, anthropicoption.WithHTTPClient(hc))
	default:
		return summary.NewTextGearsClient(cfg.SummaryAPIKey,
			summary.WithTextGearsHTTPClient(hc),
			summary.WithLanguage(cfg.SummaryLanguage),
		)
	}
}
