package notify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Notifier interface {
	Notify(ctx context.Context, chatID, text string) error
}

// NotifyError is returned when Telegram cannot be reached or rejects a message.
// Code holds Telegram's error_code when the API answered.
type NotifyError struct {
	ChatID string
	Code   int
	Err    error
}

func (e *NotifyError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("notify chat %s: telegram error %d: %v", e.ChatID, e.Code, e.Err)
	}
	return fmt.Sprintf("notify chat %s: %v", e.ChatID, e.Err)
}

func (e *NotifyError) Unwrap() error {
	return e.Err
}

type TelegramNotifier struct {
	api       *tgbotapi.BotAPI
	threadID  int
	parseMode string
}

type Option func(*TelegramNotifier)

// WithThreadID posts into a forum topic of the destination chat.
func WithThreadID(id int) Option {
	return func(n *TelegramNotifier) {
		n.threadID = id
	}
}

func WithParseMode(mode string) Option {
	return func(n *TelegramNotifier) {
		n.parseMode = mode
	}
}

// NewTelegramNotifier validates the token with getMe. apiEndpoint may be empty
// for the public Bot API.
func NewTelegramNotifier(token, apiEndpoint string, hc *http.Client, opts ...Option) (*TelegramNotifier, error) {
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	if apiEndpoint == "" {
		apiEndpoint = tgbotapi.APIEndpoint
	}

	api, err := tgbotapi.NewBotAPIWithClient(token, apiEndpoint, hc)
	if err != nil {
		return nil, &NotifyError{Err: fmt.Errorf("create bot: %w", err)}
	}

	n := &TelegramNotifier{api: api}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

func (n *TelegramNotifier) Username() string {
	return n.api.Self.UserName
}

func (n *TelegramNotifier) Notify(ctx context.Context, chatID, text string) error {
	if err := ctx.Err(); err != nil {
		return &NotifyError{ChatID: chatID, Err: err}
	}

	params := make(tgbotapi.Params)
	params.AddNonEmpty("chat_id", chatID)
	params.AddNonEmpty("text", text)
	params.AddNonEmpty("parse_mode", n.parseMode)
	params.AddNonZero("message_thread_id", n.threadID)

	_, err := n.api.MakeRequest("sendMessage", params)
	if err != nil {
		notifyErr := &NotifyError{ChatID: chatID, Err: err}
		var tgErr *tgbotapi.Error
		if errors.As(err, &tgErr) {
			notifyErr.Code = tgErr.Code
			notifyErr.Err = errors.New(tgErr.Message)
		}
		return notifyErr
	}
	return nil
}
