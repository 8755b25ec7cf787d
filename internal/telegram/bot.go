package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tb "gopkg.in/telebot.v3"
)

type Bot struct {
	bot *tb.Bot

	handler *Handler

	log *slog.Logger
}

func NewBot(token string, handler *Handler, log *slog.Logger) (*Bot, error) {
	bot, err := tb.NewBot(tb.Settings{
		Token:  token,
		Poller: &tb.LongPoller{Timeout: 5 * time.Second}, //nolint:mnd // it's ok
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &Bot{
		bot: bot,

		handler: handler,

		log: log.With("component", "bot"),
	}, nil
}

func (b *Bot) Start(ctx context.Context) error {
	b.bot.Handle("/start", b.handler.Start)
	b.bot.Handle("/menu", b.handler.Start)
	b.bot.Handle("/burn", b.handler.Burn)

	b.bot.Handle(tb.OnText, b.handler.OnText)
	b.bot.Handle(tb.OnCallback, b.handler.Callback)

	go func() {
		<-ctx.Done()
		b.log.Info("Stopping bot")
		b.bot.Stop()
	}()

	b.bot.Start()

	return nil
}

// Sender adapts the bot for alert fan-out. Telebot sends have their own
// bounded HTTP timeout; ctx is accepted for interface symmetry.
func (b *Bot) SendMessage(_ context.Context, chatID int64, text string) error {
	_, err := b.bot.Send(&tb.User{ID: chatID}, text, tb.ModeMarkdown)
	if err != nil {
		return fmt.Errorf("send message to chatID=%d: %w", chatID, err)
	}
	return nil
}
