package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "jobmatrix/internal/errors"
	"jobmatrix/internal/model"
)

// UserLoader loads a user together with its recruiter record, if any.
type UserLoader interface {
	FindForAuth(ctx context.Context, id uint) (*model.User, error)
}

// Authenticator issues tokens and resolves them back to users.
type Authenticator struct {
	tokens *JWTService
	users  UserLoader
}

// NewAuthenticator creates an authenticator.
func NewAuthenticator(tokens *JWTService, users UserLoader) *Authenticator {
	return &Authenticator{tokens: tokens, users: users}
}

// Issue creates a token for user.
func (a *Authenticator) Issue(user *model.User) (string, time.Time, error) {
	return a.tokens.Issue(user.ID)
}

// Verify checks token and returns the user it names. It fails with
// ErrInvalidToken, ErrTokenExpired or ErrUserNotFound and writes nothing.
func (a *Authenticator) Verify(ctx context.Context, token string) (*model.User, error) {
	claims, err := a.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	user, err := a.users.FindForAuth(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("load token user: %w", err)
	}
	return user, nil
}
