package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/MadeInShineA/telegram-bots/internal/config"
	"github.com/MadeInShineA/telegram-bots/internal/pipeline"
	"github.com/MadeInShineA/telegram-bots/pkg/news"
	"github.com/MadeInShineA/telegram-bots/pkg/notify"

	"github.com/joho/godotenv"
)

var logLevel = new(slog.LevelVar)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	hc := &http.Client{Timeout: 30 * time.Second}

	if err := run(context.Background(), os.Getenv, hc); err != nil {
		slog.Error("newsbot run failed", "error", err)
		os.Exit(1)
	}
}

// run loads the configuration before building any client, so a bad
// configuration never reaches the network.
func run(ctx context.Context, getenv func(string) string, hc *http.Client) error {
	cfg, err := config.Load(getenv)
	if err != nil {
		return err
	}
	logLevel.Set(cfg.LogLevel)

	source := newNewsClient(cfg, hc)
	summarizer := newSummarizer(cfg, hc)

	notifier, err := notify.NewTelegramNotifier(cfg.BotToken, "", hc,
		notify.WithThreadID(cfg.ThreadID),
		notify.WithParseMode(cfg.ParseMode),
	)
	if err != nil {
		return err
	}

	slog.Info("starting run",
		"news_provider", source.Name(),
		"summary_provider", summarizer.Name(),
		"bot", notifier.Username(),
	)

	opts := []pipeline.Option{pipeline.WithLimit(cfg.NewsLimit)}
	if cfg.ExtractContent {
		opts = append(opts, pipeline.WithExtractor(news.NewExtractor(hc, 0)))
	}

	report, err := pipeline.New(source, summarizer, notifier, cfg.ChatID, opts...).Run(ctx)
	if err != nil {
		return fmt.Errorf("after %d of %d articles: %w", report.Sent, report.Fetched, err)
	}
	return nil
}
