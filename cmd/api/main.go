package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/vaultpass/passcheck/internal/config"
	"github.com/vaultpass/passcheck/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.Env,
	}); err != nil {
		slog.Error("sentry initialization failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := context.WithCancel(context.Background())

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.New(ctx, cfg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fatal("server error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		fatal("server forced shutdown", err)
	}

	sentry.Flush(5 * time.Second)
	slog.Info("server stopped")
}

// fatal logs and reports err, then exits once Sentry has drained.
func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	sentry.CaptureException(err)
	sentry.Flush(5 * time.Second)
	os.Exit(1)
}
