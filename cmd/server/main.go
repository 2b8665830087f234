package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/housepoints/internal/advisory"
	"github.com/mmynk/housepoints/internal/app"
	"github.com/mmynk/housepoints/internal/auth"
	"github.com/mmynk/housepoints/internal/config"
	"github.com/mmynk/housepoints/internal/metrics"
	"github.com/mmynk/housepoints/internal/platform/otel"
	"github.com/mmynk/housepoints/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Setup(ctx, "housepoints", cfg.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	slog.Info("Storage initialized", "backend", cfg.Store)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	verifier, err := auth.NewVerifier(cfg.Credentials)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	gen := advisory.NewGenerator(advisory.Config{
		APIKey:  cfg.AdvisoryAPIKey,
		BaseURL: cfg.AdvisoryBaseURL,
		Model:   cfg.AdvisoryModel,
		Timeout: cfg.AdvisoryTimeout,
	})
	if _, ok := gen.(advisory.Unconfigured); ok {
		slog.Warn("Advisory service not configured; summaries use fallbacks and every reason is accepted")
	}
	advisor := advisory.NewService(gen, slog.Default(), m)
	refresher := advisory.NewRefresher(advisor, cfg.SummaryConcurrency, slog.Default())
	defer refresher.Close()

	a, err := app.New(ctx, app.Options{
		Store:     store,
		Verifier:  verifier,
		Advisor:   advisor,
		Refresher: refresher,
		Metrics:   m,
		Location:  loc,
	})
	if err != nil {
		return fmt.Errorf("failed to load application state: %w", err)
	}

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h2c.NewHandler(newRouter(a, m, reg), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
