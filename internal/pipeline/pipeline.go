package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/MadeInShineA/telegram-bots/pkg/news"
	"github.com/MadeInShineA/telegram-bots/pkg/notify"
	"github.com/MadeInShineA/telegram-bots/pkg/summary"
)

type ContentExtractor interface {
	Extract(ctx context.Context, link string) (string, error)
}

type Report struct {
	Fetched int
	Sent    int
}

// Pipeline runs one fetch, then summarizes and posts each article in order.
// The first error ends the run; messages already posted stay posted.
type Pipeline struct {
	source     news.NewsClient
	extractor  ContentExtractor
	summarizer summary.Summarizer
	notifier   notify.Notifier
	chatID     string
	limit      int
}

type Option func(*Pipeline)

// WithExtractor summarizes the linked page text instead of the feed description.
func WithExtractor(e ContentExtractor) Option {
	return func(p *Pipeline) {
		p.extractor = e
	}
}

func WithLimit(limit int) Option {
	return func(p *Pipeline) {
		p.limit = limit
	}
}

func New(source news.NewsClient, summarizer summary.Summarizer, notifier notify.Notifier, chatID string, opts ...Option) *Pipeline {
	p := &Pipeline{
		source:     source,
		summarizer: summarizer,
		notifier:   notifier,
		chatID:     chatID,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Pipeline) Run(ctx context.Context) (Report, error) {
	var report Report

	slog.Info("fetching headlines", "source", p.source.Name(), "limit", p.limit)

	articles, err := p.source.Fetch(ctx, p.limit)
	if err != nil {
		return report, asFetchError(p.source.Name(), err)
	}
	report.Fetched = len(articles)

	slog.Info("headlines fetched", "source", p.source.Name(), "count", len(articles))

	for i, a := range articles {
		text, err := p.articleText(ctx, a)
		if err != nil {
			return report, err
		}

		sum, err := p.summarizer.Summarize(ctx, text)
		if err != nil {
			return report, asSummarizeError(p.summarizer.Name(), err)
		}

		if err := p.notifier.Notify(ctx, p.chatID, FormatMessage(a.Title, sum)); err != nil {
			return report, asNotifyError(p.chatID, err)
		}

		report.Sent++
		slog.Info("article sent", "index", i, "title", a.Title, "link", a.Link)
	}

	slog.Info("run complete", "fetched", report.Fetched, "sent", report.Sent)
	return report, nil
}

func (p *Pipeline) articleText(ctx context.Context, a news.Article) (string, error) {
	if p.extractor == nil || a.Link == "" {
		return a.Description, nil
	}

	text, err := p.extractor.Extract(ctx, a.Link)
	if err != nil {
		return "", asFetchError("extract", err)
	}
	if text == "" {
		slog.Debug("no readable content, using description", "link", a.Link)
		return a.Description, nil
	}
	return text, nil
}

// FormatMessage renders the chat text for one article.
func FormatMessage(title, gist string) string {
	return title + ": " + gist
}

func asFetchError(provider string, err error) error {
	var fetchErr *news.FetchError
	if errors.As(err, &fetchErr) {
		return err
	}
	return &news.FetchError{Provider: provider, Err: err}
}

func asSummarizeError(provider string, err error) error {
	var sumErr *summary.SummarizeError
	if errors.As(err, &sumErr) {
		return err
	}
	return &summary.SummarizeError{Provider: provider, Err: err}
}

func asNotifyError(chatID string, err error) error {
	var notifyErr *notify.NotifyError
	if errors.As(err, &notifyErr) {
		return err
	}
	return &notify.NotifyError{ChatID: chatID, Err: err}
}
