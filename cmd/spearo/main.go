// Command spearo is a long-running spearfishing conditions notifier for
// Kaikoura. On a daily or weekly schedule it rates marine, weather,
// forecast, and webcam data and emails a plain-text summary.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	httpadapter "spearo/internal/adapter/http"
	"spearo/internal/adapter/metservice"
	"spearo/internal/adapter/openmeteo"
	"spearo/internal/adapter/smtp"
	"spearo/internal/adapter/webcam"
	"spearo/internal/config"
	"spearo/internal/fetch"
	"spearo/internal/observability"
	"spearo/internal/report"
	"spearo/internal/scheduler"
)

func main() {
	once := flag.Bool("once", false, "run a single update immediately, print the report, and exit")
	flag.Parse()

	// Best-effort .env load for local runs; deployments set the environment
	// directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	fetcher := fetch.NewClient(cfg.FetchTimeout, logger)
	runner := report.NewRunner(
		openmeteo.NewClient(fetcher),
		metservice.NewClient(fetcher),
		webcam.NewClient(fetcher, cfg.WebcamURL),
		smtp.NewMailer(cfg, logger, metrics),
		logger,
		metrics,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *once {
		rep := runner.RunOnce(ctx)
		fmt.Println(rep.Render())
		return
	}

	sched := scheduler.New(runner, cfg, clockwork.NewRealClock(), logger, metrics)
	srv := httpadapter.NewServer(cfg.HTTPAddr, runner, logger)

	// Start ops HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("ops server error", "error", err)
		}
	}()

	// Start scheduling loop.
	go func() {
		if err := sched.Run(ctx); err != nil {
			logger.Error("scheduler error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("ops server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
