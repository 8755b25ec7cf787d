package service

import (
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/pumpwhale/whalerider/internal/dal"
)

//go:generate mockgen -package mocks -destination mocks/alerts.go . AlertStore

// Guard statuses, terminal for the event instance.
const (
	StatusDuplicate   = "duplicate"
	StatusRateLimited = "rate limited"
)

type (
	AlertStore interface {
		GetAlert(key dal.AlertKey) (time.Time, bool, error)
		PutAlert(key dal.AlertKey, sentAt time.Time) error
	}

	// Guard is the two-layer suppression stage: a per-(mint, buyer) dedup
	// window backed by the alert store, and an in-memory per-mint rate
	// limiter. Both layers must pass for an alert to fire.
	Guard struct {
		alerts AlertStore
		clock  Clock

		window   time.Duration
		interval time.Duration

		limiters map[string]*rate.Limiter
		mx       sync.Mutex

		log *slog.Logger
	}
)

func NewGuard(alerts AlertStore, clock Clock, window, interval time.Duration, log *slog.Logger) *Guard {
	return &Guard{
		alerts: alerts,
		clock:  clock,

		window:   window,
		interval: interval,

		limiters: make(map[string]*rate.Limiter),

		log: log.With("component", "service").With("service", "guard"),
	}
}

// Admit reports whether an alert for (mint, buyer) may fire now. On success
// the dedup record is written and the mint's rate token consumed before
// returning, so concurrent callers for the same pair cannot both pass.
// Delivery failures downstream do not roll this state back.
func (g *Guard) Admit(mint, buyer string) (string, bool) {
	g.mx.Lock()
	defer g.mx.Unlock()

	now := g.clock.Now()
	key := dal.BuildAlertKey(mint, buyer)

	sentAt, found, err := g.alerts.GetAlert(key)
	if err != nil {
		// fail open: a missed suppression beats a dropped alert
		g.log.Error("failed to read alert record", "key", key, "error", err)
	} else if found && now.Sub(sentAt) < g.window {
		return StatusDuplicate, false
	}

	if !g.limiter(mint).AllowN(now, 1) {
		return StatusRateLimited, false
	}

	if err := g.alerts.PutAlert(key, now); err != nil {
		g.log.Error("failed to record alert", "key", key, "error", err)
	}

	return "", true
}

// Cleanup drops limiters that have fully refilled; a refilled limiter is
// indistinguishable from a fresh one, so the map stays bounded by the set of
// recently alerted mints.
func (g *Guard) Cleanup() {
	g.mx.Lock()
	defer g.mx.Unlock()

	now := g.clock.Now()
	for mint, l := range g.limiters {
		if l.TokensAt(now) >= 1 {
			delete(g.limiters, mint)
		}
	}
}

func (g *Guard) limiter(mint string) *rate.Limiter {
	l, ok := g.limiters[mint]
	if !ok {
		l = rate.NewLimiter(rate.Every(g.interval), 1)
		g.limiters[mint] = l
	}
	return l
}
