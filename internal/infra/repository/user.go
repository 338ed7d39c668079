package repository

import (
	"context"
	"errors"

	"smart-parking/internal/domain/user"
	"smart-parking/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const findUserByEmailSQL = `
SELECT id, email, password_hash
FROM users
WHERE email = $1`

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	var (
		id           int64
		rawEmail     string
		passwordHash string
	)
	err := r.pool.QueryRow(ctx, findUserByEmailSQL, email.Value()).Scan(&id, &rawEmail, &passwordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	parsedEmail, err := user.NewEmail(rawEmail)
	if err != nil {
		return nil, infra.WrapRepoErr("stored email is malformed", err)
	}
	return user.Reconstruct(id, parsedEmail, passwordHash), nil
}
