package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Notifier delivers out-of-band messages to users.
type Notifier interface {
	SendPasswordReset(ctx context.Context, email, code string, expiresAt time.Time) error
}

// LogNotifier writes notifications to the log instead of sending them.
type LogNotifier struct {
	log *zap.Logger
}

// NewLogNotifier creates a notifier backed by log.
func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// SendPasswordReset logs the reset code.
func (n *LogNotifier) SendPasswordReset(_ context.Context, email, code string, expiresAt time.Time) error {
	n.log.Info("password reset requested",
		zap.String("email", email),
		zap.Time("expires_at", expiresAt),
	)
	n.log.Debug("password reset code", zap.String("email", email), zap.String("code", code))
	return nil
}
