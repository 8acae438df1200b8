package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "jobmatrix/internal/errors"
)

// Claims is the token payload.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// JWTService signs and parses identity tokens.
type JWTService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService creates a service signing with an HMAC algorithm. Tokens
// expire expirationDays after issue.
func NewJWTService(secret, algorithm string, expirationDays int) (*JWTService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	if algorithm == "" {
		algorithm = jwt.SigningMethodHS256.Alg()
	}
	method, ok := jwt.GetSigningMethod(strings.ToUpper(algorithm)).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported signing method %q", algorithm)
	}
	if expirationDays <= 0 {
		return nil, fmt.Errorf("expiration days must be positive, got %d", expirationDays)
	}
	return &JWTService{
		secret: []byte(secret),
		method: method,
		ttl:    time.Duration(expirationDays) * 24 * time.Hour,
		now:    time.Now,
	}, nil
}

// WithClock returns a copy of the service reading time from now.
func (s *JWTService) WithClock(now func() time.Time) *JWTService {
	cp := *s
	cp.now = now
	return &cp
}

// TTL is the lifetime of issued tokens.
func (s *JWTService) TTL() time.Duration {
	return s.ttl
}

// Issue creates a signed token for userID and returns it with its expiry.
// Claims carry whole seconds, so the returned expiry is truncated to match.
func (s *JWTService) Issue(userID uint) (string, time.Time, error) {
	issuedAt := s.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(s.ttl)
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse validates the signature and expiry of tokenString.
func (s *JWTService) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
