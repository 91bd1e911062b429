//go:generate mockery --name UserRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"dental_clinic_api/internal/middleware"
	"dental_clinic_api/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// UserRepository is the credential store: keyed lookups over user rows.
// The db handle is passed per call so services can run repository
// operations inside their own transactions.
type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *model.User) error
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.User, error)
	FindByIDNumber(ctx context.Context, db *gorm.DB, idNumber string) (*model.User, error)
	FindByEmailAndActivationCode(ctx context.Context, db *gorm.DB, email, code string) (*model.User, error)
	FindByEmailAndResetCode(ctx context.Context, db *gorm.DB, email, code string) (*model.User, error)
	FindByResetCode(ctx context.Context, db *gorm.DB, code string) (*model.User, error)
	Update(ctx context.Context, db *gorm.DB, user *model.User) error
	List(ctx context.Context, db *gorm.DB) ([]model.User, error)
}

type gormUserRepository struct{}

func NewGormUserRepository() UserRepository {
	return &gormUserRepository{}
}

func (r *gormUserRepository) Create(ctx context.Context, db *gorm.DB, user *model.User) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(user)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Warn(
				"Duplicate key error on create user",
				"error", result.Error,
				"email", user.Email,
				"id_number", user.IDNumber,
			)
			return model.ErrConflict
		}

		logger.Error("Error creating user in DB", "error", result.Error, "email", user.Email)
		return fmt.Errorf("gormUserRepository.Create: %w", result.Error)
	}

	return nil
}

func (r *gormUserRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*model.User, error) {
	return r.findOne(ctx, db, "FindByID", "id = ?", id)
}

func (r *gormUserRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.User, error) {
	return r.findOne(ctx, db, "FindByEmail", "email = ?", email)
}

func (r *gormUserRepository) FindByIDNumber(ctx context.Context, db *gorm.DB, idNumber string) (*model.User, error) {
	return r.findOne(ctx, db, "FindByIDNumber", "id_number = ?", idNumber)
}

// FindByEmailAndActivationCode is the activation lookup: it requires both
// keys, unlike the reset lookup which is global by code.
func (r *gormUserRepository) FindByEmailAndActivationCode(ctx context.Context, db *gorm.DB, email, code string) (*model.User, error) {
	return r.findOne(ctx, db, "FindByEmailAndActivationCode", "email = ? AND activation_code = ?", email, code)
}

func (r *gormUserRepository) FindByEmailAndResetCode(ctx context.Context, db *gorm.DB, email, code string) (*model.User, error) {
	return r.findOne(ctx, db, "FindByEmailAndResetCode", "email = ? AND password_reset_code = ?", email, code)
}

func (r *gormUserRepository) FindByResetCode(ctx context.Context, db *gorm.DB, code string) (*model.User, error) {
	return r.findOne(ctx, db, "FindByResetCode", "password_reset_code = ?", code)
}

func (r *gormUserRepository) findOne(ctx context.Context, db *gorm.DB, op string, query string, args ...interface{}) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var user model.User

	result := db.WithContext(ctx).Where(query, args...).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding user in DB", "op", op, "error", result.Error)
		return nil, fmt.Errorf("gormUserRepository.%s: %w", op, result.Error)
	}
	return &user, nil
}

// Update persists every column of the row, including nulled code/expiry
// pairs. gorm's Updates with a struct would skip zero values, so Save is
// required here.
func (r *gormUserRepository) Update(ctx context.Context, db *gorm.DB, user *model.User) error {
	logger := middleware.GetLogger(ctx)

	if err := db.WithContext(ctx).Save(user).Error; err != nil {
		logger.Error("Error updating user in DB", "error", err, "user_id", user.ID)
		return fmt.Errorf("gormUserRepository.Update: %w", err)
	}
	return nil
}

func (r *gormUserRepository) List(ctx context.Context, db *gorm.DB) ([]model.User, error) {
	logger := middleware.GetLogger(ctx)
	var users []model.User

	if err := db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		logger.Error("Error listing users in DB", "error", err)
		return nil, fmt.Errorf("gormUserRepository.List: %w", err)
	}
	return users, nil
}
