package commands

import (
	"context"
	"fmt"
	"log/slog"

	"smart-parking/internal/domain/reservation"
	"smart-parking/internal/infra"
	"smart-parking/internal/infra/db"
	"smart-parking/internal/pkg/clock"
	"smart-parking/internal/pkg/errs"
	"smart-parking/internal/usecase/queries"
)

type ReservationCommands struct {
	uow      UnitOfWork
	repo     ReservationRepository
	spots    SpotRepository
	notifier ChangeNotifier
	clk      clock.Clock
	logger   *slog.Logger
}

func NewReservationCommands(
	uow UnitOfWork,
	repo ReservationRepository,
	spots SpotRepository,
	notifier ChangeNotifier,
	clk clock.Clock,
	logger *slog.Logger,
) *ReservationCommands {
	return &ReservationCommands{
		uow:      uow,
		repo:     repo,
		spots:    spots,
		notifier: notifier,
		clk:      clk,
		logger:   logger,
	}
}

// Create books a spot for the given window. The overlap check and the
// insert run in one transaction with the spot's conflicting rows
// locked, so two competing requests for the same window serialize and
// the loser sees the winner's row.
func (c *ReservationCommands) Create(ctx context.Context, userID, spotID int64, r reservation.TimeRange) (*reservation.Reservation, error) {
	exists, err := c.spots.Exists(ctx, spotID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to look up parking spot")
	}
	if !exists {
		return nil, ErrUnknownSpot
	}

	res := reservation.NewReservation(userID, spotID, r)

	err = c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		conflicts, err := c.repo.FindOverlappingBooked(ctx, tx, spotID, r)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return ErrSlotUnavailable
		}

		id, err := c.repo.Insert(ctx, tx, res)
		if err != nil {
			return err
		}
		res = reservation.Reconstruct(id, userID, spotID, r, reservation.StatusBooked)
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindLockTimeout) {
			return nil, errs.Mark(err, ErrLockTimeout)
		}
		return nil, err
	}

	c.notify(ctx, reservation.ChangeCreated, res)
	return res, nil
}

// Complete marks the caller's Booked reservation as Completed. The
// transition is a conditional update; losing the race to the sweeper
// or a duplicate request surfaces as ErrConcurrentModification.
func (c *ReservationCommands) Complete(ctx context.Context, id, userID int64) (*reservation.Reservation, error) {
	res, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrNotFound)
		}
		return nil, err
	}

	if err := res.AuthorizeComplete(userID); err != nil {
		switch err {
		case reservation.ErrNotOwner:
			return nil, ErrForbidden
		case reservation.ErrAlreadyCompleted:
			return nil, ErrAlreadyCompleted
		default:
			return nil, err
		}
	}

	updated, err := c.repo.CompleteByOwner(ctx, id, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to complete reservation")
	}
	if !updated {
		return nil, ErrConcurrentModification
	}

	res = reservation.Reconstruct(id, res.UserID(), res.SpotID(), res.Range(), reservation.StatusCompleted)
	c.notify(ctx, reservation.ChangeCompleted, res)
	return res, nil
}

// ReleaseExpired completes every Booked reservation whose window ended
// before now, returning how many rows were released. Rows completed by
// their owner between the scan and the update are skipped silently.
func (c *ReservationCommands) ReleaseExpired(ctx context.Context) (int, error) {
	now := c.clk.Now()

	stale, err := c.repo.FindStaleBooked(ctx, now)
	if err != nil {
		return 0, errs.Wrap(err, "failed to scan for stale reservations")
	}

	released := 0
	for _, res := range stale {
		updated, err := c.repo.CompleteExpired(ctx, res.ID())
		if err != nil {
			c.logger.Error("failed to auto-release reservation",
				slog.Int64("reservation_id", res.ID()), slog.String("error", err.Error()))
			continue
		}
		if !updated {
			continue
		}

		released++
		c.logger.Info("auto-released stale reservation",
			slog.String("spot", c.spotLabel(ctx, res.SpotID())), slog.Int64("reservation_id", res.ID()))

		done := reservation.Reconstruct(res.ID(), res.UserID(), res.SpotID(), res.Range(), reservation.StatusCompleted)
		c.notify(ctx, reservation.ChangeCompleted, done)
	}

	return released, nil
}

// spotLabel resolves a human-readable spot label for log lines,
// falling back to the raw id when the lookup fails.
func (c *ReservationCommands) spotLabel(ctx context.Context, spotID int64) string {
	s, err := c.spots.FindByID(ctx, spotID)
	if err != nil {
		return fmt.Sprintf("#%d", spotID)
	}
	return fmt.Sprintf("#%d (floor %d)", s.SpotNumber(), s.FloorNumber())
}

func (c *ReservationCommands) notify(ctx context.Context, change reservation.ChangeKind, res *reservation.Reservation) {
	view := queries.ReservationView{
		ID:        res.ID(),
		UserID:    res.UserID(),
		SpotID:    res.SpotID(),
		StartTime: res.Range().Start(),
		EndTime:   res.Range().End(),
		Status:    string(res.Status()),
	}
	if err := c.notifier.NotifyChange(ctx, change, view); err != nil {
		c.logger.Warn("failed to publish reservation change",
			slog.Int64("reservation_id", res.ID()), slog.String("change", string(change)),
			slog.String("error", err.Error()))
	}
}
