package worker

import (
	"context"
	"log/slog"

	"smart-parking/internal/usecase"
)

// Sweeper releases reservations whose window elapsed without the
// driver checking out. It reuses the same command path as the API, so
// released rows publish the same change events.
type Sweeper struct {
	commands usecase.ReservationCommandUseCase
	logger   *slog.Logger
}

func NewSweeper(cmds usecase.ReservationCommandUseCase, logger *slog.Logger) *Sweeper {
	return &Sweeper{commands: cmds, logger: logger}
}

func (s *Sweeper) Sweep(ctx context.Context) {
	released, err := s.commands.ReleaseExpired(ctx)
	if err != nil {
		s.logger.Error("sweep failed", slog.String("error", err.Error()))
		return
	}
	if released > 0 {
		s.logger.Info("sweep released stale reservations", slog.Int("count", released))
	}
}
