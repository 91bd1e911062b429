//go:generate mockery --name RefreshTokenRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"dental_clinic_api/internal/middleware"
	"dental_clinic_api/internal/model"

	"gorm.io/gorm"
)

type RefreshTokenRepository interface {
	Create(ctx context.Context, db *gorm.DB, token *model.RefreshToken) error
	FindByToken(ctx context.Context, db *gorm.DB, token string) (*model.RefreshToken, error)
	DeleteByToken(ctx context.Context, db *gorm.DB, token string) error
	DeleteForUser(ctx context.Context, db *gorm.DB, userID uint) error
}

type gormRefreshTokenRepository struct{}

func NewGormRefreshTokenRepository() RefreshTokenRepository {
	return &gormRefreshTokenRepository{}
}

func (r *gormRefreshTokenRepository) Create(ctx context.Context, db *gorm.DB, token *model.RefreshToken) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Create(token).Error; err != nil {
		logger.Error("Failed to create refresh token", "error", err, "user_id", token.UserID)
		return fmt.Errorf("gormRefreshTokenRepository.Create: %w", err)
	}
	return nil
}

func (r *gormRefreshTokenRepository) FindByToken(ctx context.Context, db *gorm.DB, tokenStr string) (*model.RefreshToken, error) {
	logger := middleware.GetLogger(ctx)
	var token model.RefreshToken
	if err := db.WithContext(ctx).Where("token = ?", tokenStr).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Failed to find refresh token", "error", err)
		return nil, fmt.Errorf("gormRefreshTokenRepository.FindByToken: %w", err)
	}
	return &token, nil
}

// DeleteByToken is idempotent: deleting an absent row is not an error.
func (r *gormRefreshTokenRepository) DeleteByToken(ctx context.Context, db *gorm.DB, tokenStr string) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("token = ?", tokenStr).Delete(&model.RefreshToken{})
	if result.Error != nil {
		logger.Error("Failed to delete refresh token", "error", result.Error)
		return fmt.Errorf("gormRefreshTokenRepository.DeleteByToken: %w", result.Error)
	}
	return nil
}

func (r *gormRefreshTokenRepository) DeleteForUser(ctx context.Context, db *gorm.DB, userID uint) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.RefreshToken{})
	if result.Error != nil {
		logger.Error("Failed to delete refresh tokens for user", "error", result.Error, "user_id", userID)
		return fmt.Errorf("gormRefreshTokenRepository.DeleteForUser: %w", result.Error)
	}
	return nil
}
