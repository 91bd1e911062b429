package handlers

import (
	"net/http"

	"dental_clinic_api/internal/middleware"
	"dental_clinic_api/internal/model"
	"dental_clinic_api/internal/service"
	"dental_clinic_api/internal/webutil"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// Register creates a new inactive account and triggers the activation email.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.RegisterRequest
	if !bindRequest(w, r, &req) {
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Registration successful, activation email queued")
	webutil.RespondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Registration successful. Check your email for the activation code.",
		"user":    user,
	}, logger)
}

// Login authenticates and returns the token pair plus the sanitized account.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.LoginRequest
	if !bindRequest(w, r, &req) {
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		// The service layer already logged the failure cause.
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":      "Login successful.",
		"accessToken":  result.AccessToken,
		"refreshToken": result.RefreshToken,
		"user":         result.User,
	}, logger)
}

// Activate consumes an activation code and transitions the account to active.
func (h *AuthHandler) Activate(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.ActivateRequest
	if !bindRequest(w, r, &req) {
		return
	}

	if err := h.service.ActivateAccount(r.Context(), req.Email, req.Code); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Account activated. You can now log in.",
	}, logger)
}

// ResendActivation issues a fresh activation code for a not-yet-active account.
func (h *AuthHandler) ResendActivation(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.ResendActivationRequest
	if !bindRequest(w, r, &req) {
		return
	}

	if err := h.service.ResendActivationCode(r.Context(), req.Email); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "A new activation code has been sent to your email.",
	}, logger)
}

// RequestPasswordReset issues a short-lived reset code.
func (h *AuthHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.ForgotPasswordRequest
	if !bindRequest(w, r, &req) {
		return
	}

	if err := h.service.RequestPasswordReset(r.Context(), req.Email); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "A password reset code has been sent to your email.",
	}, logger)
}

// VerifyResetCode checks a reset code without consuming it, so a client can
// validate before presenting the reset form.
func (h *AuthHandler) VerifyResetCode(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.VerifyResetCodeRequest
	if !bindRequest(w, r, &req) {
		return
	}

	if err := h.service.VerifyResetCode(r.Context(), req.Email, req.Code); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "The reset code is valid.",
	}, logger)
}

// ResetPassword consumes a reset code and stores a new password.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.ResetPasswordRequest
	if !bindRequest(w, r, &req) {
		return
	}

	if err := h.service.ResetPassword(r.Context(), req.Code, req.Password); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Your password has been updated.",
	}, logger)
}

// RefreshToken exchanges a valid persisted refresh token for a new access
// token; the refresh token itself is not rotated.
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.RefreshTokenRequest
	if !bindRequest(w, r, &req) {
		return
	}

	accessToken, err := h.service.RefreshAccessToken(r.Context(), req.RefreshToken)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{
		"accessToken": accessToken,
	}, logger)
}

// Logout revokes the given refresh token. It is idempotent and answers 204
// even when the token is malformed or was never issued.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	// A malformed body is treated the same as a malformed token: no-op.
	var req model.LogoutRequest
	_ = webutil.DecodeJSONBody(r, &req)

	if err := h.service.Logout(r.Context(), req.RefreshToken); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetMe returns the authenticated user's own sanitized account.
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	user, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, user, logger)
}

// UpdateMe updates the authenticated user's profile fields.
func (h *AuthHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.UpdateProfileRequest
	if !bindRequest(w, r, &req) {
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, user, logger)
}

// ListUsers returns all accounts. Admin only.
func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"users": users,
	}, logger)
}
