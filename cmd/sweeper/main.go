package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"smart-parking/internal/handler/middleware"
	"smart-parking/internal/infra"
	"smart-parking/internal/infra/db"
	"smart-parking/internal/infra/notifier"
	"smart-parking/internal/infra/repository"
	"smart-parking/internal/infra/uow"
	"smart-parking/internal/pkg/clock"
	"smart-parking/internal/pkg/config"
	"smart-parking/internal/usecase/commands"
	"smart-parking/internal/worker"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

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

	pool, dbCleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbCleanup()

	redisClient, redisCleanup, err := infra.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisCleanup()

	reservationRepo := repository.NewReservationRepository(pool)
	spotRepo := repository.NewSpotRepository(pool)
	unitOfWork := uow.NewPostgresUnitOfWork(pool, cfg.DB.LockTimeout)
	changeNotifier := notifier.NewRedisChangeNotifier(redisClient)

	reservationCommands := commands.NewReservationCommands(
		unitOfWork, reservationRepo, spotRepo, changeNotifier, clock.NewRealClock(), logger,
	)
	sweeper := worker.NewSweeper(reservationCommands, logger)

	// Catch up immediately; reservations may have gone stale while the
	// sweeper was down.
	sweeper.Sweep(ctx)

	scheduler := cron.New()
	spec := fmt.Sprintf("@every %s", cfg.Sweeper.Interval)
	if _, err := scheduler.AddFunc(spec, func() { sweeper.Sweep(ctx) }); err != nil {
		logger.Error("failed to schedule sweep", "error", err)
		os.Exit(1)
	}
	scheduler.Start()

	logger.Info("sweeper started", "interval", cfg.Sweeper.Interval.String())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	s := <-sig
	logger.Info("received signal, shutting down", "signal", s.String())

	cancel()
	<-scheduler.Stop().Done()
}
