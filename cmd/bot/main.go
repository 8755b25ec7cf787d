package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/pumpwhale/whalerider/internal/config"
	"github.com/pumpwhale/whalerider/internal/dal"
	"github.com/pumpwhale/whalerider/internal/helius"
	"github.com/pumpwhale/whalerider/internal/service"
	"github.com/pumpwhale/whalerider/internal/telegram"
	"github.com/pumpwhale/whalerider/internal/web"
	"github.com/pumpwhale/whalerider/pkg/clock"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	conf, err := config.New(ctx)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	log := mustLogger(conf.Dev)

	store, err := dal.NewBoltDB(conf.DBPath)
	if err != nil {
		log.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	clk := clock.New()
	oracle := helius.NewClient(conf.HeliusAPIKey, helius.WithTimeout(conf.OracleTimeout))

	filter := service.NewFilter(oracle, clk, service.FilterConfig{
		MinVolumeSOL:      conf.MinVolumeSOL,
		MaxTokenAge:       conf.MaxTokenAge,
		PlatformAuthority: conf.PlatformAuthority,
	}, log)
	guard := service.NewGuard(store, clk, conf.DedupWindow, conf.RateLimitInterval, log)
	access := service.NewAccess(oracle, store, store, clk, service.AccessConfig{
		TokenMint:       conf.TokenMint,
		BurnAddress:     conf.BurnAddress,
		MinHolding:      conf.MinHolding,
		BurnAmount:      conf.BurnAmount,
		PremiumDuration: conf.PremiumDuration,
	}, log)

	bot, err := telegram.NewBot(conf.TelegramToken, telegram.NewHandler(access, log), log)
	if err != nil {
		log.Error("Failed to create telegram bot", "error", err)
		os.Exit(1)
	}

	notifier := service.NewNotifier(store, bot, conf.NotifyConcurrency, log)
	pipeline := service.NewPipeline(filter, guard, notifier, log)
	watcher := service.NewWatcher(oracle, pipeline, conf.WatchedWallet, conf.PollInterval, log)
	server := web.NewServer(conf.WebhookSecret, pipeline, log)

	wg := &sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		watcher.Run(ctx)
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.Run(ctx, conf.WebhookAddr); err != nil {
			log.Error("Webhook server failed", "error", err)
			cancel()
		}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		cleanupAlerts(ctx, store, guard, conf.CleanupInterval, conf.DedupWindow, log.With("component", "schedule").With("action", "cleanup"))
	}()

	log.Info("Starting bot")
	err = bot.Start(ctx)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			log.Error("Failed to start bot", "error", err)
		}
	}

	wg.Wait()
	log.Info("Stopped bot")
}

func cleanupAlerts(ctx context.Context, store *dal.BoltDB, guard *service.Guard, delay, window time.Duration, log *slog.Logger) {
	defer func() {
		log.InfoContext(ctx, "Stopped alerts cleanup schedule")
	}()

	log.InfoContext(ctx, "Starting alerts cleanup schedule")
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
			if err := store.CleanupAlerts(window); err != nil {
				log.ErrorContext(ctx, "Error cleaning up alerts", "error", err)
			}
			guard.Cleanup()
		}
	}
}

func mustLogger(dev bool) *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	if dev {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return slog.New(handler)
}
