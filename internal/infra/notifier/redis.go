package notifier

import (
	"context"
	"encoding/json"
	"errors"

	"smart-parking/internal/domain/reservation"
	"smart-parking/internal/infra"
	"smart-parking/internal/pkg/errs"
	"smart-parking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// QueueKey is the Redis list the API pushes change events onto and the
// websocket relay drains.
const QueueKey = "ws_broadcast"

// Envelope is the wire form of one change event.
type Envelope struct {
	ID      string     `json:"id"`
	Channel string     `json:"channel"`
	Data    ChangeData `json:"data"`
}

type ChangeData struct {
	Change      string            `json:"change"`
	Reservation ReservationRecord `json:"reservation"`
}

// ReservationRecord mirrors the API's reservation shape, with
// timestamps rendered in the wire layout.
type ReservationRecord struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	SpotID    int64  `json:"spot_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
}

type RedisChangeNotifier struct {
	client *redis.Client
}

func NewRedisChangeNotifier(client *redis.Client) *RedisChangeNotifier {
	return &RedisChangeNotifier{client: client}
}

func (n *RedisChangeNotifier) NotifyChange(ctx context.Context, change reservation.ChangeKind, view queries.ReservationView) error {
	env := Envelope{
		ID:      uuid.NewString(),
		Channel: reservation.ChangeChannel,
		Data: ChangeData{
			Change: string(change),
			Reservation: ReservationRecord{
				ID:        view.ID,
				UserID:    view.UserID,
				SpotID:    view.SpotID,
				StartTime: view.StartTime.Format(reservation.WireTimeLayout),
				EndTime:   view.EndTime.Format(reservation.WireTimeLayout),
				Status:    view.Status,
			},
		},
	}

	payload, err := json.Marshal(env)
	if err != nil {
		return errs.Wrap(err, "failed to marshal change event")
	}

	if err := n.client.RPush(ctx, QueueKey, payload).Err(); err != nil {
		return infra.WrapRepoErr("failed to enqueue change event", err)
	}
	return nil
}

// RedisChangeQueue is the consumer side used by the relay.
type RedisChangeQueue struct {
	client *redis.Client
}

func NewRedisChangeQueue(client *redis.Client) *RedisChangeQueue {
	return &RedisChangeQueue{client: client}
}

// Drain pops every queued event, oldest first, leaving the list empty.
// An empty queue returns a nil slice.
func (q *RedisChangeQueue) Drain(ctx context.Context) ([][]byte, error) {
	var out [][]byte
	for {
		payload, err := q.client.LPop(ctx, QueueKey).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return out, nil
			}
			return out, infra.WrapRepoErr("failed to pop change event", err)
		}
		out = append(out, payload)
	}
}
