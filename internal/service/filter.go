package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/pumpwhale/whalerider/internal/helius"
	"github.com/pumpwhale/whalerider/internal/pkg/metrics"
)

//go:generate mockgen -package mocks -destination mocks/oracle.go . Oracle

// Rejection reasons, in evaluation order. A rejection is terminal for the
// event instance.
const (
	ReasonIgnoredType      = "ignored type"
	ReasonNoTransfers      = "no transfers"
	ReasonNoMint           = "no mint"
	ReasonBelowVolume      = "below volume threshold"
	ReasonTooOld           = "too old"
	ReasonLookupFailed     = "lookup failed"
	ReasonNotPlatformToken = "not platform token"
	ReasonMetaFetchFailed  = "meta fetch failed"
)

const lamportsPerSOL = 1_000_000_000

type (
	// Oracle is the read-only chain lookup surface the filter needs.
	Oracle interface {
		FirstTransactionTime(ctx context.Context, mint string) (time.Time, error)
		TokenMetadata(ctx context.Context, mint string) (helius.TokenMetadata, error)
	}

	Clock interface {
		Now() time.Time
	}

	// Verdict is the outcome of evaluating a single transfer event.
	Verdict struct {
		Accepted bool
		Reason   string

		Mint       string
		Buyer      string
		Symbol     string
		VolumeSOL  float64
		AgeMinutes int
	}

	FilterConfig struct {
		MinVolumeSOL      float64
		MaxTokenAge       time.Duration
		PlatformAuthority string
	}

	// Filter decides whether a transfer event is an alertable whale buy.
	// Oracle failures resolve to rejections; Evaluate never returns an error.
	Filter struct {
		oracle Oracle
		clock  Clock
		conf   FilterConfig

		log *slog.Logger
	}
)

func rejected(reason string) Verdict {
	return Verdict{Reason: reason}
}

func NewFilter(oracle Oracle, clock Clock, conf FilterConfig, log *slog.Logger) *Filter {
	return &Filter{
		oracle: oracle,
		clock:  clock,
		conf:   conf,

		log: log.With("component", "service").With("service", "filter"),
	}
}

// Evaluate runs the event through the validation stages, cheapest first, and
// short-circuits on the first failing one.
func (f *Filter) Evaluate(ctx context.Context, ev helius.TransferEvent) Verdict {
	if ev.Type != "BUY" && ev.Type != "SWAP" {
		return rejected(ReasonIgnoredType)
	}

	if len(ev.TokenTransfers) == 0 {
		return rejected(ReasonNoTransfers)
	}

	mint := ev.TokenTransfers[0].Mint
	if mint == "" {
		return rejected(ReasonNoMint)
	}

	var lamports int64
	for _, t := range ev.NativeTransfers {
		lamports += t.Amount
	}
	volume := float64(lamports) / lamportsPerSOL
	if volume < f.conf.MinVolumeSOL {
		return rejected(ReasonBelowVolume)
	}

	mintedAt, err := f.oracle.FirstTransactionTime(ctx, mint)
	if err != nil {
		f.log.WarnContext(ctx, "mint timestamp lookup failed", "mint", mint, "error", err)
		metrics.OracleErrorsTotal.WithLabelValues("first_transaction_time").Inc()
		return rejected(ReasonLookupFailed)
	}

	age := f.clock.Now().Sub(mintedAt)
	if age > f.conf.MaxTokenAge {
		return rejected(ReasonTooOld)
	}

	meta, err := f.oracle.TokenMetadata(ctx, mint)
	if err != nil {
		f.log.WarnContext(ctx, "token metadata fetch failed", "mint", mint, "error", err)
		metrics.OracleErrorsTotal.WithLabelValues("token_metadata").Inc()
		return rejected(ReasonMetaFetchFailed)
	}

	if meta.UpdateAuthority != f.conf.PlatformAuthority {
		return rejected(ReasonNotPlatformToken)
	}

	return Verdict{
		Accepted:   true,
		Mint:       mint,
		Buyer:      ev.FeePayer,
		Symbol:     meta.Symbol,
		VolumeSOL:  volume,
		AgeMinutes: int(age.Minutes()),
	}
}
