package model

// LoginRequest is the request body for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult carries both signed tokens plus the sanitized account.
type LoginResult struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	User         *UserResponse `json:"user"`
}

type ActivateRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=8"`
}

type ResendActivationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyResetCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=8"`
}

type ResetPasswordRequest struct {
	Code     string `json:"code" validate:"required,len=8"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// LogoutRequest deliberately has no validate tags: logout is idempotent and
// never fails on a malformed token.
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}
