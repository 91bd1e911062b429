package model

import (
	"time"

	"gorm.io/gorm"
)

// UserStatus is the lifecycle state of an account. A freshly registered
// account starts as inactive and becomes active only through activation.
type UserStatus string

const (
	StatusInactive UserStatus = "inactive"
	StatusActive   UserStatus = "active"
	StatusLocked   UserStatus = "locked"
)

type UserRole string

const (
	RoleUser    UserRole = "user"
	RoleDentist UserRole = "dentist"
	RoleAdmin   UserRole = "admin"
)

// User is a clinic account. The activation and password-reset code columns
// are nullable pairs: a code and its expiration are always set together and
// cleared together. An expired code stays in storage until it is overwritten
// or consumed; validity is decided by the expiration, not by mere presence.
type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"not null" json:"name"`
	IDNumber     string     `gorm:"column:id_number;uniqueIndex;not null" json:"id_number"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Phone        string     `json:"phone"`
	Address      string     `json:"address"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	Status       UserStatus `gorm:"type:varchar(20);not null;default:inactive" json:"status"`
	Role         UserRole   `gorm:"type:varchar(20);not null;default:user" json:"role"`

	ActivationCode      *string    `gorm:"index" json:"-"`
	ActivationExpiresAt *time.Time `json:"-"`

	// Reset codes are looked up globally (not scoped by email), so the column
	// carries a unique index to make a collision fail loudly at the storage
	// layer instead of touching the wrong account.
	PasswordResetCode      *string    `gorm:"uniqueIndex" json:"-"`
	PasswordResetExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// RegisterRequest is the request body for the registration endpoint.
type RegisterRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=100"`
	IDNumber  string `json:"id_number" validate:"required,min=4,max=32"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	Phone     string `json:"phone" validate:"omitempty,max=32"`
	Address   string `json:"address" validate:"omitempty,max=255"`
	BirthDate string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateProfileRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=100"`
	Phone     string `json:"phone" validate:"omitempty,max=32"`
	Address   string `json:"address" validate:"omitempty,max=255"`
	BirthDate string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
}

// UserResponse is the sanitized account representation returned to clients:
// no password hash, no codes, no expirations.
type UserResponse struct {
	ID        uint       `json:"id"`
	Name      string     `json:"name"`
	IDNumber  string     `json:"id_number"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	Address   string     `json:"address,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Status    UserStatus `json:"status"`
	Role      UserRole   `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
}

// Sanitize strips credential and code fields for external exposure.
func (u *User) Sanitize() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		IDNumber:  u.IDNumber,
		Email:     u.Email,
		Phone:     u.Phone,
		Address:   u.Address,
		BirthDate: u.BirthDate,
		Status:    u.Status,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
