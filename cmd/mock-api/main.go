package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/josh-kwaku/invoice-dashboard/internal/config"
	"github.com/josh-kwaku/invoice-dashboard/internal/logging"
	"github.com/josh-kwaku/invoice-dashboard/internal/mockapi"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Init("mock-api", cfg.LogLevel, cfg.AppEnv)

	api := mockapi.New(cfg.MockAPIUsername, cfg.MockAPIPassword)
	api.Seed()

	addr := fmt.Sprintf(":%d", cfg.MockAPIPort)
	slog.Info("mock api started", "addr", addr)
	if err := http.ListenAndServe(addr, api.Handler()); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
