//go:generate mockery --name ContactRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"dental_clinic_api/internal/middleware"
	"dental_clinic_api/internal/model"

	"gorm.io/gorm"
)

type ContactRepository interface {
	Create(ctx context.Context, db *gorm.DB, msg *model.ContactMessage) error
	List(ctx context.Context, db *gorm.DB) ([]model.ContactMessage, error)
}

type gormContactRepository struct{}

func NewGormContactRepository() ContactRepository {
	return &gormContactRepository{}
}

func (r *gormContactRepository) Create(ctx context.Context, db *gorm.DB, msg *model.ContactMessage) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Create(msg).Error; err != nil {
		logger.Error("Failed to create contact message", "error", err, "email", msg.Email)
		return fmt.Errorf("gormContactRepository.Create: %w", err)
	}
	return nil
}

func (r *gormContactRepository) List(ctx context.Context, db *gorm.DB) ([]model.ContactMessage, error) {
	logger := middleware.GetLogger(ctx)
	var msgs []model.ContactMessage
	if err := db.WithContext(ctx).Order("created_at DESC").Find(&msgs).Error; err != nil {
		logger.Error("Failed to list contact messages", "error", err)
		return nil, fmt.Errorf("gormContactRepository.List: %w", err)
	}
	return msgs, nil
}
