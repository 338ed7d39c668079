package uow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smart-parking/internal/infra/db"
	"smart-parking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	maxAttempts  = 3
	retryBackoff = 10 * time.Millisecond

	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

type PostgresUnitOfWork struct {
	pool        *pgxpool.Pool
	lockTimeout time.Duration
}

func NewPostgresUnitOfWork(pool *pgxpool.Pool, lockTimeout time.Duration) *PostgresUnitOfWork {
	return &PostgresUnitOfWork{pool: pool, lockTimeout: lockTimeout}
}

// Within runs fn in a transaction, retrying on serialization and
// deadlock failures. fn may run more than once and must not have side
// effects outside the transaction.
func (u *PostgresUnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err := u.runInTx(ctx, fn)
		if err == nil {
			return nil
		}
		if !isRetryable(err) {
			return err
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return errs.Wrap(ctx.Err(), "transaction canceled during retry")
		case <-time.After(retryBackoff * time.Duration(attempt)):
		}
	}
	return errs.Wrap(lastErr, "transaction retries exhausted")
}

func (u *PostgresUnitOfWork) runInTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.pool.Begin(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	// SET LOCAL cannot take bind parameters; the value comes from
	// config, not request input.
	if u.lockTimeout > 0 {
		timeoutSQL := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", u.lockTimeout.Milliseconds())
		if _, err := tx.Exec(ctx, timeoutSQL); err != nil {
			return errs.Wrap(err, "failed to set lock timeout")
		}
	}

	if err := fn(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Wrap(err, "failed to commit transaction")
	}
	return nil
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}
