package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"jobmatrix/internal/model"
)

// PasswordResetRepository persists password reset codes.
type PasswordResetRepository interface {
	Create(ctx context.Context, token *model.PasswordResetToken) error
	FindLatest(ctx context.Context, email, code string) (*model.PasswordResetToken, error)
	DeleteByEmail(ctx context.Context, email string) error
}

type passwordResetRepository struct {
	db *gorm.DB
}

// NewPasswordResetRepository creates a new password reset repository.
func NewPasswordResetRepository(db *gorm.DB) PasswordResetRepository {
	return &passwordResetRepository{db: db}
}

func (r *passwordResetRepository) Create(ctx context.Context, token *model.PasswordResetToken) error {
	token.Email = strings.ToLower(strings.TrimSpace(token.Email))
	return r.db.WithContext(ctx).Create(token).Error
}

// FindLatest returns the newest token matching email and code.
func (r *passwordResetRepository) FindLatest(ctx context.Context, email, code string) (*model.PasswordResetToken, error) {
	var token model.PasswordResetToken
	err := r.db.WithContext(ctx).
		Where("email = ? AND token = ?", strings.ToLower(strings.TrimSpace(email)), code).
		Order("created_at DESC").Order("id DESC").
		First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *passwordResetRepository) DeleteByEmail(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Delete(&model.PasswordResetToken{}).Error
}
