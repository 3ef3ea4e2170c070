package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/josh-kwaku/invoice-dashboard/internal/apiclient"
	"github.com/josh-kwaku/invoice-dashboard/internal/config"
	"github.com/josh-kwaku/invoice-dashboard/internal/logging"
	"github.com/josh-kwaku/invoice-dashboard/internal/money"
	"github.com/josh-kwaku/invoice-dashboard/internal/server"
	"github.com/josh-kwaku/invoice-dashboard/internal/service"
	"github.com/josh-kwaku/invoice-dashboard/internal/session"
)

const version = "1.0.0"

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Init("invoice-dashboard", cfg.LogLevel, cfg.AppEnv)

	locale, err := money.ParseLocale(cfg.DisplayLocale)
	if err != nil {
		slog.Error("invalid display locale", "locale", cfg.DisplayLocale, "error", err)
		os.Exit(1)
	}

	store := newSessionStore(cfg)
	client := apiclient.New(cfg.APIBaseURL, store,
		apiclient.WithTimeout(cfg.RequestTimeout),
		apiclient.WithUnauthorizedHandler(func(ctx context.Context) {
			logging.FromContext(ctx).Warn("session rejected by invoice service, login required")
		}),
	)

	router := server.NewRouter(server.Deps{
		Source:    client,
		Service:   service.New(client, store),
		Sessions:  store,
		Formatter: money.NewFormatter(locale),
		Version:   version,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server started", "addr", addr, "api_base_url", cfg.APIBaseURL, "session_store", cfg.SessionStore)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func newSessionStore(cfg *config.Config) session.Store {
	if cfg.SessionStore != "file" {
		return session.NewMemory()
	}
	path := cfg.SessionFile
	if path == "" {
		path = session.DefaultPath()
	}
	slog.Info("using file session store", "path", path)
	return session.NewFile(path)
}
