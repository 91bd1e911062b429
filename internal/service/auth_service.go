//go:generate mockery --name AuthService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"dental_clinic_api/internal/config"
	"dental_clinic_api/internal/middleware"
	"dental_clinic_api/internal/model"
	"dental_clinic_api/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService orchestrates the credential lifecycle: registration,
// activation, login, token refresh, logout and password reset.
type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.UserResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResult, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
	ActivateAccount(ctx context.Context, email, code string) error
	ResendActivationCode(ctx context.Context, email string) error
	RequestPasswordReset(ctx context.Context, email string) error
	VerifyResetCode(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, code, newPassword string) error

	GetProfile(ctx context.Context, userID uint) (*model.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uint, req *model.UpdateProfileRequest) (*model.UserResponse, error)
	ListUsers(ctx context.Context) ([]model.UserResponse, error)
}

type authService struct {
	db       *gorm.DB
	users    repository.UserRepository
	tokens   repository.RefreshTokenRepository
	codes    CodeGenerator
	issuer   TokenIssuer
	notifier Notifier
	now      func() time.Time
}

func NewAuthService(
	db *gorm.DB,
	users repository.UserRepository,
	tokens repository.RefreshTokenRepository,
	codes CodeGenerator,
	issuer TokenIssuer,
	notifier Notifier,
) AuthService {
	return &authService{
		db:       db,
		users:    users,
		tokens:   tokens,
		codes:    codes,
		issuer:   issuer,
		notifier: notifier,
		now:      time.Now,
	}
}

// Register creates an inactive account with a fresh activation code and
// queues the activation email. The email is fire-and-forget: a delivery
// failure never fails the registration.
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.UserResponse, error) {
	logger := middleware.GetLogger(ctx)
	var newUser *model.User
	var activationCode string

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Duplicate checks on both unique identifiers.
		if _, err := s.users.FindByEmail(ctx, tx, req.Email); err == nil {
			logger.Warn("Email already exists", "email", req.Email)
			return model.NewAppError("DUPLICATE_ACCOUNT", "An account with this email or ID number already exists.", "email", model.ErrConflict)
		} else if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check email existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
		}

		if _, err := s.users.FindByIDNumber(ctx, tx, req.IDNumber); err == nil {
			logger.Warn("ID number already exists", "id_number", req.IDNumber)
			return model.NewAppError("DUPLICATE_ACCOUNT", "An account with this email or ID number already exists.", "id_number", model.ErrConflict)
		} else if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check id number existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An error occurred while processing the password.", "", err)
		}

		code, expiresAt, err := s.codes.Generate(config.ActivationCodeLength, config.ActivationCodeTTL)
		if err != nil {
			logger.Error("Failed to generate activation code", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
		}

		var birthDate *time.Time
		if req.BirthDate != "" {
			parsed, err := time.Parse("2006-01-02", req.BirthDate)
			if err != nil {
				return model.NewAppError("VALIDATION_ERROR", "birth_date must be formatted as YYYY-MM-DD.", "birth_date", model.ErrInvalidInput)
			}
			birthDate = &parsed
		}

		user := &model.User{
			Name:                req.Name,
			IDNumber:            req.IDNumber,
			Email:               req.Email,
			PasswordHash:        string(hashedPassword),
			Phone:               req.Phone,
			Address:             req.Address,
			BirthDate:           birthDate,
			Status:              model.StatusInactive,
			Role:                model.RoleUser,
			ActivationCode:      &code,
			ActivationExpiresAt: &expiresAt,
		}

		if err := s.users.Create(ctx, tx, user); err != nil {
			// A unique-key race between the checks above and the insert.
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Conflict during user creation (race condition)", "error", err)
				return model.NewAppError("DUPLICATE_ACCOUNT", "An account with this email or ID number already exists.", "email,id_number", model.ErrConflict)
			}
			logger.Error("Failed to create user in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create the account.", "", err)
		}

		newUser = user
		activationCode = code
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.SendActivationEmail(newUser.Email, activationCode)

	logger.Info("User registered and activation email queued", "user_id", newUser.ID, "email", newUser.Email)
	return newUser.Sanitize(), nil
}

// Login authenticates and issues an access/refresh token pair. A missing
// account and a wrong password produce the same Unauthorized answer so that
// account existence does not leak; only after credential success is the
// account status checked.
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResult, error) {
	logger := middleware.GetLogger(ctx).With("email", req.Email)

	user, err := s.users.FindByEmail(ctx, s.db, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Login failed: user not found")
			return nil, model.NewAppError("AUTHENTICATION_FAILED", "Email or password is incorrect.", "", model.ErrUnauthorized)
		}
		logger.Error("Login failed: db error on FindByEmail", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login failed: password mismatch", "user_id", user.ID)
		return nil, model.NewAppError("AUTHENTICATION_FAILED", "Email or password is incorrect.", "", model.ErrUnauthorized)
	}

	if user.Status != model.StatusActive {
		logger.Warn("Login failed: account not active", "user_id", user.ID, "status", string(user.Status))
		return nil, model.NewAppError("ACCOUNT_NOT_ACTIVE", "The account is not active. Check the activation email sent during registration.", "", model.ErrForbidden)
	}

	accessToken, _, err := s.issuer.IssueAccessToken(user.ID, user.Role)
	if err != nil {
		logger.Error("Failed to sign access token", "error", err, "user_id", user.ID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to issue tokens.", "", err)
	}
	refreshToken, refreshExpiresAt, err := s.issuer.IssueRefreshToken(user.ID, user.Role)
	if err != nil {
		logger.Error("Failed to sign refresh token", "error", err, "user_id", user.ID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to issue tokens.", "", err)
	}

	// Each login adds a refresh-token row: concurrent sessions from multiple
	// devices are permitted, nothing is revoked implicitly.
	row := &model.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: refreshExpiresAt,
	}
	if err := s.tokens.Create(ctx, s.db, row); err != nil {
		logger.Error("Failed to persist refresh token", "error", err, "user_id", user.ID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to issue tokens.", "", err)
	}

	logger.Info("Login successful", "user_id", user.ID)
	return &model.LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user.Sanitize(),
	}, nil
}

// looksLikeJWT is the shape check used by refresh and logout: three
// non-empty dot-separated segments.
func looksLikeJWT(token string) bool {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return false
	}
	for _, p := range parts {
		if p == "" {
			return false
		}
	}
	return true
}

// RefreshAccessToken exchanges a persisted refresh token for a new access
// token. The refresh token itself is not rotated. A stale row (expired or
// failing verification) is deleted before the failure is reported.
func (s *authService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	logger := middleware.GetLogger(ctx)

	refreshToken = strings.TrimSpace(refreshToken)
	if !looksLikeJWT(refreshToken) {
		logger.Warn("Refresh failed: malformed token")
		return "", model.NewAppError("INVALID_REFRESH_TOKEN", "The refresh token is missing or malformed.", "", model.ErrUnauthorized)
	}

	row, err := s.tokens.FindByToken(ctx, s.db, refreshToken)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Refresh failed: token not found")
			return "", model.NewAppError("INVALID_REFRESH_TOKEN", "The refresh token is not recognized.", "", model.ErrUnauthorized)
		}
		logger.Error("Refresh failed: db error on FindByToken", "error", err)
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	if s.now().After(row.ExpiresAt) {
		logger.Warn("Refresh failed: token expired", "user_id", row.UserID, "expires_at", row.ExpiresAt)
		_ = s.tokens.DeleteByToken(ctx, s.db, refreshToken)
		return "", model.NewAppError("REFRESH_TOKEN_EXPIRED", "The refresh token has expired. Log in again.", "", model.ErrForbidden)
	}

	claims, err := s.issuer.Verify(refreshToken)
	if err != nil {
		logger.Warn("Refresh failed: token verification failed", "error", err, "user_id", row.UserID)
		_ = s.tokens.DeleteByToken(ctx, s.db, refreshToken)
		return "", model.NewAppError("INVALID_REFRESH_TOKEN", "The refresh token is invalid.", "", model.ErrForbidden)
	}

	userID, err := claims.SubjectUserID()
	if err != nil {
		logger.Warn("Refresh failed: bad subject claim", "error", err)
		_ = s.tokens.DeleteByToken(ctx, s.db, refreshToken)
		return "", model.NewAppError("INVALID_REFRESH_TOKEN", "The refresh token is invalid.", "", model.ErrForbidden)
	}

	user, err := s.users.FindByID(ctx, s.db, userID)
	if err != nil {
		logger.Warn("Refresh failed: subject account missing", "error", err, "user_id", userID)
		_ = s.tokens.DeleteByToken(ctx, s.db, refreshToken)
		return "", model.NewAppError("INVALID_REFRESH_TOKEN", "The refresh token is invalid.", "", model.ErrForbidden)
	}

	accessToken, _, err := s.issuer.IssueAccessToken(user.ID, user.Role)
	if err != nil {
		logger.Error("Failed to sign access token on refresh", "error", err, "user_id", user.ID)
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to issue the access token.", "", err)
	}

	logger.Info("Access token refreshed", "user_id", user.ID)
	return accessToken, nil
}

// Logout is idempotent. A token that fails the shape check is a silent
// no-op; otherwise any matching persisted row is deleted, and absence is
// not an error.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	logger := middleware.GetLogger(ctx)

	refreshToken = strings.TrimSpace(refreshToken)
	if !looksLikeJWT(refreshToken) {
		logger.Debug("Logout with malformed token, treating as no-op")
		return nil
	}

	if err := s.tokens.DeleteByToken(ctx, s.db, refreshToken); err != nil {
		logger.Error("Logout failed: db error on DeleteByToken", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	logger.Info("Logout successful")
	return nil
}

// ActivateAccount consumes an activation code: the account becomes active
// and both activation fields are cleared together, so repeating the same
// call afterward fails.
func (s *authService) ActivateAccount(ctx context.Context, email, code string) error {
	logger := middleware.GetLogger(ctx).With("email", email)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.users.FindByEmailAndActivationCode(ctx, tx, email, code)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				logger.Warn("Activation failed: code does not match")
				return model.NewAppError("INVALID_ACTIVATION_CODE", "The activation code is invalid.", "code", model.ErrInvalidInput)
			}
			logger.Error("Activation failed: db error", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
		}

		// Validity is decided by the expiration, not by code presence. An
		// expired code stays stored until overwritten or consumed.
		if user.ActivationExpiresAt == nil || s.now().After(*user.ActivationExpiresAt) {
			logger.Warn("Activation failed: code expired", "user_id", user.ID)
			return model.NewAppError("ACTIVATION_CODE_EXPIRED", "The activation code has expired. Request a new one.", "code", model.ErrInvalidInput)
		}

		user.Status = model.StatusActive
		user.ActivationCode = nil
		user.ActivationExpiresAt = nil

		if err := s.users.Update(ctx, tx, user); err != nil {
			logger.Error("Activation failed: could not persist account", "error", err, "user_id", user.ID)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to activate the account.", "", err)
		}

		logger.Info("Account activated", "user_id", user.ID)
		return nil
	})
}

// ResendActivationCode overwrites both activation fields with a fresh code
// and re-queues the email.
func (s *authService) ResendActivationCode(ctx context.Context, email string) error {
	logger := middleware.GetLogger(ctx).With("email", email)

	user, err := s.users.FindByEmail(ctx, s.db, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Resend activation failed: account not found")
			return model.NewAppError("ACCOUNT_NOT_FOUND", "No account exists for this email.", "email", model.ErrNotFound)
		}
		logger.Error("Resend activation failed: db error", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	if user.Status == model.StatusActive {
		logger.Warn("Resend activation failed: account already active", "user_id", user.ID)
		return model.NewAppError("ACCOUNT_ALREADY_ACTIVE", "The account is already active.", "", model.ErrInvalidInput)
	}

	code, expiresAt, err := s.codes.Generate(config.ActivationCodeLength, config.ActivationCodeTTL)
	if err != nil {
		logger.Error("Failed to generate activation code", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	user.ActivationCode = &code
	user.ActivationExpiresAt = &expiresAt
	if err := s.users.Update(ctx, s.db, user); err != nil {
		logger.Error("Failed to persist new activation code", "error", err, "user_id", user.ID)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to issue a new activation code.", "", err)
	}

	s.notifier.SendActivationEmail(user.Email, code)

	logger.Info("Activation code re-issued", "user_id", user.ID)
	return nil
}

// RequestPasswordReset overwrites both reset fields with a fresh short-lived
// code and queues the reset email.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	logger := middleware.GetLogger(ctx).With("email", email)

	user, err := s.users.FindByEmail(ctx, s.db, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Password reset requested for unknown email")
			return model.NewAppError("ACCOUNT_NOT_FOUND", "No account exists for this email.", "email", model.ErrNotFound)
		}
		logger.Error("Password reset request failed: db error", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	code, expiresAt, err := s.codes.Generate(config.ResetCodeLength, config.ResetCodeTTL)
	if err != nil {
		logger.Error("Failed to generate reset code", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	user.PasswordResetCode = &code
	user.PasswordResetExpiresAt = &expiresAt
	if err := s.users.Update(ctx, s.db, user); err != nil {
		logger.Error("Failed to persist reset code", "error", err, "user_id", user.ID)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to issue the reset code.", "", err)
	}

	s.notifier.SendPasswordResetEmail(user.Email, code)

	logger.Info("Password reset code issued", "user_id", user.ID)
	return nil
}

// VerifyResetCode is a read-only check a client runs before presenting the
// reset form. It is scoped by email, unlike ResetPassword.
func (s *authService) VerifyResetCode(ctx context.Context, email, code string) error {
	logger := middleware.GetLogger(ctx).With("email", email)

	user, err := s.users.FindByEmailAndResetCode(ctx, s.db, email, code)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Reset code verification failed: code does not match")
			return model.NewAppError("INVALID_RESET_CODE", "The reset code is invalid.", "code", model.ErrInvalidInput)
		}
		logger.Error("Reset code verification failed: db error", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	if user.PasswordResetExpiresAt == nil || s.now().After(*user.PasswordResetExpiresAt) {
		logger.Warn("Reset code verification failed: code expired", "user_id", user.ID)
		return model.NewAppError("RESET_CODE_EXPIRED", "The reset code has expired. Request a new one.", "code", model.ErrInvalidInput)
	}

	return nil
}

// ResetPassword looks the account up by reset code alone, deliberately not
// scoped by email (the "forgot which email" flow). On success the password
// is re-hashed and both reset fields are cleared together.
func (s *authService) ResetPassword(ctx context.Context, code, newPassword string) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.users.FindByResetCode(ctx, tx, code)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				logger.Warn("Password reset failed: code not found")
				return model.NewAppError("INVALID_RESET_CODE", "The reset code is invalid.", "code", model.ErrInvalidInput)
			}
			logger.Error("Password reset failed: db error", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
		}

		// Expired code: distinct message, stored password hash untouched.
		if user.PasswordResetExpiresAt == nil || s.now().After(*user.PasswordResetExpiresAt) {
			logger.Warn("Password reset failed: code expired", "user_id", user.ID)
			return model.NewAppError("RESET_CODE_EXPIRED", "The reset code has expired. Request a new one.", "code", model.ErrInvalidInput)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash new password", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An error occurred while processing the password.", "", err)
		}

		user.PasswordHash = string(hashedPassword)
		user.PasswordResetCode = nil
		user.PasswordResetExpiresAt = nil

		if err := s.users.Update(ctx, tx, user); err != nil {
			logger.Error("Failed to persist new password", "error", err, "user_id", user.ID)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to update the password.", "", err)
		}

		logger.Info("Password reset successfully", "user_id", user.ID)
		return nil
	})
}

// GetProfile returns the sanitized account of the authenticated user.
func (s *authService) GetProfile(ctx context.Context, userID uint) (*model.UserResponse, error) {
	logger := middleware.GetLogger(ctx)

	user, err := s.users.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Profile lookup failed: account not found", "user_id", userID)
			return nil, model.NewAppError("ACCOUNT_NOT_FOUND", "The account was not found.", "", model.ErrNotFound)
		}
		logger.Error("Profile lookup failed: db error", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}
	return user.Sanitize(), nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID uint, req *model.UpdateProfileRequest) (*model.UserResponse, error) {
	logger := middleware.GetLogger(ctx)

	user, err := s.users.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("ACCOUNT_NOT_FOUND", "The account was not found.", "", model.ErrNotFound)
		}
		logger.Error("Profile update failed: db error", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	user.Name = req.Name
	user.Phone = req.Phone
	user.Address = req.Address
	if req.BirthDate != "" {
		parsed, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return nil, model.NewAppError("VALIDATION_ERROR", "birth_date must be formatted as YYYY-MM-DD.", "birth_date", model.ErrInvalidInput)
		}
		user.BirthDate = &parsed
	}

	if err := s.users.Update(ctx, s.db, user); err != nil {
		logger.Error("Profile update failed: could not persist", "error", err, "user_id", user.ID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to update the profile.", "", err)
	}

	logger.Info("Profile updated", "user_id", user.ID)
	return user.Sanitize(), nil
}

// ListUsers returns all accounts, sanitized. Admin only; the role gate
// lives in the router.
func (s *authService) ListUsers(ctx context.Context) ([]model.UserResponse, error) {
	logger := middleware.GetLogger(ctx)

	users, err := s.users.List(ctx, s.db)
	if err != nil {
		logger.Error("User listing failed: db error", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	responses := make([]model.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *users[i].Sanitize())
	}
	return responses, nil
}
