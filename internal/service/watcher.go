package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pumpwhale/whalerider/internal/helius"
)

//go:generate mockgen -package mocks -destination mocks/history.go . TransactionHistory

// seenCapacity bounds the signature window of the poller. At one poll per
// minute this covers days of history for a single watched address.
const seenCapacity = 4096

type (
	TransactionHistory interface {
		AddressTransactions(ctx context.Context, address string) ([]helius.TransferEvent, error)
	}

	// Watcher is the pull-model ingestion loop: it scans the transaction
	// history of a watched address on a fixed interval and feeds every new
	// fungible token transfer through the pipeline.
	Watcher struct {
		history  TransactionHistory
		pipeline *Pipeline

		address  string
		interval time.Duration
		seen     *seenSet

		log *slog.Logger
	}
)

func NewWatcher(history TransactionHistory, pipeline *Pipeline, address string, interval time.Duration, log *slog.Logger) *Watcher {
	return &Watcher{
		history:  history,
		pipeline: pipeline,

		address:  address,
		interval: interval,
		seen:     newSeenSet(seenCapacity),

		log: log.With("component", "service").With("service", "watcher"),
	}
}

// Run polls until ctx is canceled. An iteration failure is logged and the
// loop continues on the next tick; the same interval applies after success
// and failure. An in-flight iteration finishes before shutdown completes.
func (w *Watcher) Run(ctx context.Context) {
	w.log.InfoContext(ctx, "starting watcher", "address", w.address, "interval", w.interval)
	defer w.log.Info("stopped watcher")

	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(w.interval):
			if err := w.iterate(ctx); err != nil {
				if errors.Is(err, context.Canceled) {
					return
				}
				w.log.ErrorContext(ctx, "watch iteration failed", "error", err)
			}
		}
	}
}

func (w *Watcher) iterate(ctx context.Context) error {
	txs, err := w.history.AddressTransactions(ctx, w.address)
	if err != nil {
		return fmt.Errorf("fetch transactions: %w", err)
	}

	for _, tx := range txs {
		if tx.Signature == "" || w.seen.contains(tx.Signature) {
			continue
		}
		w.seen.add(tx.Signature)

		for _, transfer := range tx.TokenTransfers {
			if transfer.TokenStandard != helius.TokenStandardFungible {
				continue
			}

			ev := tx
			ev.TokenTransfers = []helius.TokenTransfer{transfer}
			status := w.pipeline.Process(ctx, "poll", ev)
			w.log.DebugContext(ctx, "processed polled transfer",
				"signature", tx.Signature,
				"mint", transfer.Mint,
				"status", status)
		}
	}

	return nil
}

// seenSet is a fixed-capacity signature window: once full, the oldest entry
// is evicted per insert.
type seenSet struct {
	members map[string]struct{}
	order   []string
	next    int
}

func newSeenSet(capacity int) *seenSet {
	return &seenSet{
		members: make(map[string]struct{}, capacity),
		order:   make([]string, capacity),
	}
}

func (s *seenSet) contains(sig string) bool {
	_, ok := s.members[sig]
	return ok
}

func (s *seenSet) add(sig string) {
	if _, ok := s.members[sig]; ok {
		return
	}
	if evicted := s.order[s.next]; evicted != "" {
		delete(s.members, evicted)
	}
	s.order[s.next] = sig
	s.next = (s.next + 1) % len(s.order)
	s.members[sig] = struct{}{}
}
