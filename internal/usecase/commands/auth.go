package commands

import (
	"context"
	"errors"

	"smart-parking/internal/domain/user"
	"smart-parking/internal/infra"
	"smart-parking/internal/pkg/errs"
	"smart-parking/internal/pkg/jwt"
	"smart-parking/internal/pkg/password"
)

type AuthCommands struct {
	users  UserRepository
	tokens *jwt.Service
}

func NewAuthCommands(users UserRepository, tokens *jwt.Service) *AuthCommands {
	return &AuthCommands{users: users, tokens: tokens}
}

// LoginResult carries the issued token plus the authenticated identity
// the API echoes back to the client.
type LoginResult struct {
	Token  string
	UserID int64
	Email  string
}

// Login verifies credentials and issues a signed access token.
// Unknown email and wrong password are indistinguishable to callers.
func (c *AuthCommands) Login(ctx context.Context, creds user.Credentials) (LoginResult, error) {
	u, err := c.users.FindByEmail(ctx, creds.Email())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, errs.Wrap(err, "failed to look up user")
	}

	if err := password.ComparePassword(u.PasswordHash(), creds.Password()); err != nil {
		if errors.Is(err, password.ErrComparisonFailed) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, errs.Wrap(err, "failed to verify password")
	}

	token, err := c.tokens.GenerateToken(u.ID(), u.Email().Value())
	if err != nil {
		return LoginResult{}, errs.Wrap(err, "failed to issue token")
	}
	return LoginResult{Token: token, UserID: u.ID(), Email: u.Email().Value()}, nil
}
