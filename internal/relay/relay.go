package relay

import (
	"context"
	"log/slog"
	"time"
)

// ChangeSource yields queued change events, oldest first.
type ChangeSource interface {
	Drain(ctx context.Context) ([][]byte, error)
}

// Relay polls the change queue and pushes every event to the hub.
// Events survive relay downtime in the queue and are delivered on the
// next poll after restart.
type Relay struct {
	source   ChangeSource
	hub      *Hub
	interval time.Duration
	logger   *slog.Logger
}

func NewRelay(source ChangeSource, hub *Hub, interval time.Duration, logger *slog.Logger) *Relay {
	return &Relay{
		source:   source,
		hub:      hub,
		interval: interval,
		logger:   logger,
	}
}

func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("relay stopped")
			return
		case <-ticker.C:
			r.pump(ctx)
		}
	}
}

func (r *Relay) pump(ctx context.Context) {
	messages, err := r.source.Drain(ctx)
	if err != nil {
		r.logger.Error("failed to drain change queue", slog.String("error", err.Error()))
	}
	for _, msg := range messages {
		r.hub.Broadcast(msg)
	}
}
