package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pumpwhale/whalerider/internal/helius"
)

//go:generate mockgen -package mocks -destination mocks/pipeline.go . Pipeline

const shutdownTimeout = 10 * time.Second

type (
	Pipeline interface {
		Process(ctx context.Context, source string, ev helius.TransferEvent) string
	}

	// Server is the push-model ingestion surface: an authenticated webhook
	// that runs one transfer event through the pipeline per request and
	// answers with the terminal status reached.
	Server struct {
		engine   *gin.Engine
		pipeline Pipeline
		secret   string

		log *slog.Logger
	}
)

func NewServer(secret string, pipeline Pipeline, log *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		engine:   gin.New(),
		pipeline: pipeline,
		secret:   secret,

		log: log.With("component", "web"),
	}

	s.engine.Use(gin.Recovery())
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.engine.POST("/pumpwhale", s.authorized, s.handleWebhook)

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second, //nolint:mnd // it's ok
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.log.InfoContext(ctx, "webhook server listening", "addr", addr)

	select {
	case err := <-errCh:
		return fmt.Errorf("listen and serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown webhook server: %w", err)
	}

	s.log.Info("webhook server stopped")
	return nil
}

// authorized compares the Authorization header for exact equality with the
// shared secret; on mismatch the body is never processed.
func (s *Server) authorized(c *gin.Context) {
	if c.GetHeader("Authorization") != s.secret {
		s.log.Warn("webhook auth failed", "remote", c.ClientIP())
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "unauthorized"})
		return
	}
	c.Next()
}

func (s *Server) handleWebhook(c *gin.Context) {
	var ev helius.TransferEvent
	if err := c.ShouldBindJSON(&ev); err != nil {
		s.log.Warn("webhook payload rejected", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"status": "bad request"})
		return
	}

	status := s.pipeline.Process(c.Request.Context(), "webhook", ev)
	c.JSON(http.StatusOK, gin.H{"status": status})
}
