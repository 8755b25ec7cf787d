package service

import (
	"context"
	"log/slog"

	"github.com/pumpwhale/whalerider/internal/helius"
	"github.com/pumpwhale/whalerider/internal/pkg/metrics"
)

// StatusSent is the terminal status of an event that resulted in an alert.
const StatusSent = "sent"

// Pipeline runs a transfer event through filter, guard and notifier and
// returns the first terminal status reached. Per event the progression is
// strictly: rejected | suppressed | sent, with no retries across stages.
type Pipeline struct {
	filter   *Filter
	guard    *Guard
	notifier *Notifier

	log *slog.Logger
}

func NewPipeline(filter *Filter, guard *Guard, notifier *Notifier, log *slog.Logger) *Pipeline {
	return &Pipeline{
		filter:   filter,
		guard:    guard,
		notifier: notifier,

		log: log.With("component", "service").With("service", "pipeline"),
	}
}

func (p *Pipeline) Process(ctx context.Context, source string, ev helius.TransferEvent) string {
	metrics.EventsTotal.WithLabelValues(source).Inc()

	verdict := p.filter.Evaluate(ctx, ev)
	if !verdict.Accepted {
		metrics.RejectionsTotal.WithLabelValues(verdict.Reason).Inc()
		p.log.DebugContext(ctx, "event rejected",
			"source", source,
			"signature", ev.Signature,
			"reason", verdict.Reason)
		return verdict.Reason
	}

	if status, ok := p.guard.Admit(verdict.Mint, verdict.Buyer); !ok {
		metrics.RejectionsTotal.WithLabelValues(status).Inc()
		p.log.DebugContext(ctx, "event suppressed",
			"source", source,
			"mint", verdict.Mint,
			"buyer", verdict.Buyer,
			"status", status)
		return status
	}

	delivered, err := p.notifier.Broadcast(ctx, FormatAlert(verdict))
	if err != nil {
		// rate-limit state stays consumed; the event is still terminal
		p.log.ErrorContext(ctx, "failed to broadcast alert", "mint", verdict.Mint, "error", err)
	}

	metrics.AlertsSentTotal.Inc()
	p.log.InfoContext(ctx, "whale alert sent",
		"source", source,
		"mint", verdict.Mint,
		"buyer", verdict.Buyer,
		"volumeSOL", verdict.VolumeSOL,
		"delivered", delivered)

	return StatusSent
}
