package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart-parking/internal/handler/middleware"
	"smart-parking/internal/infra"
	"smart-parking/internal/infra/notifier"
	"smart-parking/internal/pkg/config"
	"smart-parking/internal/relay"

	"github.com/joho/godotenv"
)

const shutdownTimeout = 5 * time.Second

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	redisClient, redisCleanup, err := infra.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisCleanup()

	hub := relay.NewHub(logger)
	go hub.Run()

	queue := notifier.NewRedisChangeQueue(redisClient)
	pump := relay.NewRelay(queue, hub, cfg.Relay.PollInterval, logger)
	go pump.Run(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.ServeWS)

	server := &http.Server{
		Addr:    ":" + cfg.Relay.Port,
		Handler: mux,
	}

	go func() {
		logger.Info("relay listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("relay server failed", "error", err)
			cancel()
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		logger.Info("received signal, shutting down", "signal", s.String())
	case <-ctx.Done():
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("relay shutdown failed", "error", err)
	}
}
