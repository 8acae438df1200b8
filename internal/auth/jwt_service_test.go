package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "jobmatrix/internal/errors"
	"jobmatrix/internal/model"
)

func TestNewJWTService(t *testing.T) {
	tests := []struct {
		name      string
		secret    string
		algorithm string
		days      int
		wantErr   bool
	}{
		{name: "defaults to HS256", secret: "s", days: 7},
		{name: "lower case algorithm", secret: "s", algorithm: "hs512", days: 1},
		{name: "empty secret", secret: "", days: 7, wantErr: true},
		{name: "asymmetric algorithm", secret: "s", algorithm: "RS256", days: 7, wantErr: true},
		{name: "zero lifetime", secret: "s", days: 0, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewJWTService(tt.secret, tt.algorithm, tt.days)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, time.Duration(tt.days)*24*time.Hour, svc.TTL())
		})
	}
}

func TestJWTService_Expiry(t *testing.T) {
	base, err := NewJWTService("test-secret", "HS256", 7)
	require.NoError(t, err)

	for _, issuedAt := range []time.Time{
		time.Date(2025, 1, 10, 9, 30, 0, 0, time.UTC),
		time.Date(2025, 1, 10, 9, 30, 0, 900_000_000, time.UTC),
	} {
		token, expiresAt, err := base.WithClock(func() time.Time { return issuedAt }).Issue(42)
		require.NoError(t, err)
		assert.Equal(t, issuedAt.Truncate(time.Second).Add(7*24*time.Hour), expiresAt)

		tests := []struct {
			name    string
			at      time.Time
			wantErr error
		}{
			{name: "at issue", at: issuedAt},
			{name: "one second before expiry", at: expiresAt.Add(-time.Second)},
			{name: "half a second before expiry", at: expiresAt.Add(-500 * time.Millisecond)},
			{name: "one millisecond before expiry", at: expiresAt.Add(-time.Millisecond)},
			{name: "one second after expiry", at: expiresAt.Add(time.Second), wantErr: apperrors.ErrTokenExpired},
		}
		for _, tt := range tests {
			t.Run(issuedAt.Format("15:04:05.000")+" "+tt.name, func(t *testing.T) {
				claims, err := base.WithClock(func() time.Time { return tt.at }).Parse(token)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, uint(42), claims.UserID)
			})
		}
	}
}

func TestJWTService_ParseRejects(t *testing.T) {
	svc, err := NewJWTService("test-secret", "HS256", 1)
	require.NoError(t, err)
	other, err := NewJWTService("other-secret", "HS256", 1)
	require.NoError(t, err)

	foreign, _, err := other.Issue(1)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: 1}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	noUser, _, err := svc.Issue(0)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":        "not-a-token",
		"wrong secret":   foreign,
		"missing expiry": noExpiry,
		"missing user":   noUser,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Parse(token)
			assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
		})
	}
}

type stubUsers map[uint]*model.User

func (s stubUsers) FindForAuth(_ context.Context, id uint) (*model.User, error) {
	if u, ok := s[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func TestAuthenticator_Verify(t *testing.T) {
	svc, err := NewJWTService("test-secret", "HS256", 1)
	require.NoError(t, err)
	users := stubUsers{7: {ID: 7, Email: "a@mail.test", Role: model.RoleApplicant}}
	authn := NewAuthenticator(svc, users)

	token, _, err := authn.Issue(users[7])
	require.NoError(t, err)
	user, err := authn.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "a@mail.test", user.Email)

	orphan, _, err := svc.Issue(99)
	require.NoError(t, err)
	_, err = authn.Verify(context.Background(), orphan)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	_, err = authn.Verify(context.Background(), "junk")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
