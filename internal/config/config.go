package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

const (
	ProviderNewsData     = "newsdata"
	ProviderFinnHub      = "finnhub"
	ProviderAlphaVantage = "alphavantage"
	ProviderMassive      = "massive"
	ProviderMiniflux     = "miniflux"

	ProviderTextGears = "textgears"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Config is built once at startup and handed to each component.
type Config struct {
	BotToken      string
	ChatID        string
	NewsAPIKey    string
	SummaryAPIKey string

	NewsProvider string
	NewsCategory string
	NewsLanguage string
	NewsDomain   string
	NewsLimit    int
	MinifluxURL  string

	SummaryProvider string
	SummaryLanguage string
	SummaryModel    string

	ThreadID       int
	ParseMode      string
	ExtractContent bool

	LogLevel slog.Level
}

// ConfigError reports a missing or invalid setting.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Key, e.Reason)
}

// Load reads the configuration through getenv, usually os.Getenv.
func Load(getenv func(string) string) (*Config, error) {
	env := func(keys ...string) string {
		for _, k := range keys {
			if v := strings.TrimSpace(getenv(k)); v != "" {
				return v
			}
		}
		return ""
	}

	cfg := &Config{
		BotToken:        env("BOT_TOKEN"),
		ChatID:          env("BOT_CHAT_ID"),
		NewsAPIKey:      env("NEWS_API_KEY", "NEWS_DATA_KEY"),
		SummaryAPIKey:   env("SUMMARY_API_KEY", "TEXT_GEAR_KEY"),
		NewsProvider:    strings.ToLower(env("NEWS_PROVIDER")),
		NewsCategory:    env("NEWS_CATEGORY"),
		NewsLanguage:    env("NEWS_LANGUAGE"),
		NewsDomain:      env("NEWS_DOMAIN"),
		MinifluxURL:     env("MINIFLUX_URL"),
		SummaryProvider: strings.ToLower(env("SUMMARY_PROVIDER")),
		SummaryLanguage: env("SUMMARY_LANGUAGE"),
		SummaryModel:    env("SUMMARY_MODEL"),
		ParseMode:       env("TELEGRAM_PARSE_MODE"),
	}

	required := []struct {
		key   string
		value string
	}{
		{"BOT_TOKEN", cfg.BotToken},
		{"BOT_CHAT_ID", cfg.ChatID},
		{"NEWS_API_KEY", cfg.NewsAPIKey},
		{"SUMMARY_API_KEY", cfg.SummaryAPIKey},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, &ConfigError{Key: r.key, Reason: "is required"}
		}
	}

	if cfg.NewsProvider == "" {
		cfg.NewsProvider = ProviderNewsData
	}
	switch cfg.NewsProvider {
	case ProviderNewsData, ProviderFinnHub, ProviderAlphaVantage, ProviderMassive:
	case ProviderMiniflux:
		if cfg.MinifluxURL == "" {
			return nil, &ConfigError{Key: "MINIFLUX_URL", Reason: "is required for the miniflux provider"}
		}
	default:
		return nil, &ConfigError{Key: "NEWS_PROVIDER", Reason: fmt.Sprintf("unknown provider %q", cfg.NewsProvider)}
	}

	if cfg.SummaryProvider == "" {
		cfg.SummaryProvider = ProviderTextGears
	}
	switch cfg.SummaryProvider {
	case ProviderTextGears, ProviderOpenAI, ProviderAnthropic:
	default:
		return nil, &ConfigError{Key: "SUMMARY_PROVIDER", Reason: fmt.Sprintf("unknown provider %q", cfg.SummaryProvider)}
	}

	if cfg.NewsLanguage == "" {
		cfg.NewsLanguage = "en"
	}

	if v := env("NEWS_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, &ConfigError{Key: "NEWS_LIMIT", Reason: fmt.Sprintf("must be a non-negative integer, got %q", v)}
		}
		cfg.NewsLimit = n
	}

	if v := env("TELEGRAM_THREAD_ID"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, &ConfigError{Key: "TELEGRAM_THREAD_ID", Reason: fmt.Sprintf("must be a non-negative integer, got %q", v)}
		}
		cfg.ThreadID = n
	}

	switch cfg.ParseMode {
	case "", "Markdown", "MarkdownV2", "HTML":
	default:
		return nil, &ConfigError{Key: "TELEGRAM_PARSE_MODE", Reason: fmt.Sprintf("unknown parse mode %q", cfg.ParseMode)}
	}

	if v := env("EXTRACT_CONTENT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, &ConfigError{Key: "EXTRACT_CONTENT", Reason: fmt.Sprintf("must be a boolean, got %q", v)}
		}
		cfg.ExtractContent = b
	}

	if v := env("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, &ConfigError{Key: "LOG_LEVEL", Reason: fmt.Sprintf("unknown level %q", v)}
		}
	}

	return cfg, nil
}
