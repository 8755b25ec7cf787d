package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	tb "gopkg.in/telebot.v3"

	"github.com/pumpwhale/whalerider/internal/dal"
	"github.com/pumpwhale/whalerider/internal/pkg/metrics"
)

//go:generate mockgen -package mocks -destination mocks/sender.go . Sender

//go:generate mockgen -package mocks -destination mocks/subscribers.go . SubscriberStore

const maxFireGlyphs = 5

type (
	Sender interface {
		SendMessage(ctx context.Context, chatID int64, text string) error
	}

	SubscriberStore interface {
		ExistsSubscriber(chatID int64) (bool, error)
		GetAllSubscribers() ([]dal.Subscriber, error)
		PutSubscriber(sub dal.Subscriber) error
		DeleteSubscriber(chatID int64) error
	}

	// Notifier fans an alert out to the current subscriber set. Deliveries
	// are independent: one failing subscriber never aborts the rest, and
	// failed deliveries are not retried.
	Notifier struct {
		subscribers SubscriberStore
		sender      Sender

		concurrency int
		log         *slog.Logger
	}
)

func NewNotifier(subscribers SubscriberStore, sender Sender, concurrency int, log *slog.Logger) *Notifier {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Notifier{
		subscribers: subscribers,
		sender:      sender,

		concurrency: concurrency,
		log:         log.With("component", "service").With("service", "notifier"),
	}
}

// Broadcast delivers text to every current subscriber, reading the set fresh
// at send time. It returns once every attempt has finished.
func (n *Notifier) Broadcast(ctx context.Context, text string) (int, error) {
	subs, err := n.subscribers.GetAllSubscribers()
	if err != nil {
		return 0, fmt.Errorf("get subscribers: %w", err)
	}

	var delivered atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(n.concurrency)
	for _, sub := range subs {
		g.Go(func() error {
			if err := n.sender.SendMessage(gctx, sub.ChatID, text); err != nil {
				metrics.DeliveriesTotal.WithLabelValues("failure").Inc()
				n.handleSendError(ctx, sub.ChatID, err)
				return nil
			}
			metrics.DeliveriesTotal.WithLabelValues("success").Inc()
			delivered.Add(1)
			return nil
		})
	}
	g.Wait() //nolint:errcheck // goroutines always return nil

	return int(delivered.Load()), nil
}

func (n *Notifier) handleSendError(ctx context.Context, chatID int64, err error) {
	if !errors.Is(err, tb.ErrBlockedByUser) && !errors.Is(err, tb.ErrUserIsDeactivated) {
		n.log.ErrorContext(ctx, "failed to send alert", "chatID", chatID, "error", err)
		return
	}

	n.log.InfoContext(ctx, "bot is blocked by user, purging subscriber", "chatID", chatID)
	if err := n.subscribers.DeleteSubscriber(chatID); err != nil {
		n.log.ErrorContext(ctx, "failed to purge subscriber", "chatID", chatID, "error", err)
	}
}

// FormatAlert renders the whale alert message. Symbol falls back to the first
// characters of the mint, buyer to "Unbekannt"; the fire row scales with
// volume up to five glyphs.
func FormatAlert(v Verdict) string {
	symbol := v.Symbol
	if symbol == "" {
		symbol = v.Mint
		if len(symbol) > 6 {
			symbol = symbol[:6]
		}
	}

	buyer := v.Buyer
	if buyer == "" {
		buyer = "Unbekannt"
	}

	fire := min(int(v.VolumeSOL), maxFireGlyphs)

	var sb strings.Builder
	sb.WriteString("🐋 *Whale Alert*\n")
	sb.WriteString(fmt.Sprintf("Token: `%s`\n", symbol))
	sb.WriteString(fmt.Sprintf("Gekauft von: `%s`\n", buyer))
	sb.WriteString(fmt.Sprintf("Betrag: %.2f SOL\n", v.VolumeSOL))
	sb.WriteString(fmt.Sprintf("⏱️ Alter: %d Minuten\n", v.AgeMinutes))
	sb.WriteString(strings.Repeat("🔥", fire))

	return strings.TrimSpace(sb.String())
}
