package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dental_clinic_api/internal/handlers"
	"dental_clinic_api/internal/middleware"
	"dental_clinic_api/internal/model"
	svcmocks "dental_clinic_api/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newJSONRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	var reqBody io.Reader
	if body != nil {
		if bodyStr, ok := body.(string); ok {
			reqBody = strings.NewReader(bodyStr)
		} else {
			jsonData, err := json.Marshal(body)
			require.NoError(t, err)
			reqBody = bytes.NewBuffer(jsonData)
		}
	}
	req, err := http.NewRequest(method, target, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func TestAuthHandler_Register(t *testing.T) {
	validBody := map[string]string{
		"name":      "Taro Yamada",
		"id_number": "ID-0001",
		"email":     "taro@example.com",
		"password":  "password123",
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *svcmocks.AuthService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: validBody,
			setupMock: func(m *svcmocks.AuthService) {
				m.On("Register", mock.Anything, mock.AnythingOfType("*model.RegisterRequest")).
					Return(&model.UserResponse{ID: 1, Email: "taro@example.com", Status: model.StatusInactive}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"email":"taro@example.com"`,
		},
		{
			name:           "Failure - malformed JSON body",
			body:           `{"email": `,
			setupMock:      func(m *svcmocks.AuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message"`,
		},
		{
			name: "Failure - validation error on missing password",
			body: map[string]string{
				"name":      "Taro Yamada",
				"id_number": "ID-0001",
				"email":     "taro@example.com",
			},
			setupMock:      func(m *svcmocks.AuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"details"`,
		},
		{
			name: "Failure - duplicate account",
			body: validBody,
			setupMock: func(m *svcmocks.AuthService) {
				m.On("Register", mock.Anything, mock.AnythingOfType("*model.RegisterRequest")).
					Return(nil, model.NewAppError("DUPLICATE_ACCOUNT", "An account with this email or ID number already exists.", "email", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"message":"An account with this email or ID number already exists."`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(svcmocks.AuthService)
			tt.setupMock(mockService)
			handler := handlers.NewAuthHandler(mockService)

			req := newJSONRequest(t, http.MethodPost, "/api/v1/auth/register", tt.body)
			rr := httptest.NewRecorder()
			handler.Register(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *svcmocks.AuthService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: map[string]string{"email": "taro@example.com", "password": "password123"},
			setupMock: func(m *svcmocks.AuthService) {
				m.On("Login", mock.Anything, mock.AnythingOfType("*model.LoginRequest")).Return(&model.LoginResult{
					AccessToken:  "access.jwt.token",
					RefreshToken: "refresh.jwt.token",
					User:         &model.UserResponse{ID: 1, Email: "taro@example.com"},
				}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"accessToken":"access.jwt.token"`,
		},
		{
			name: "Failure - bad credentials answer 401",
			body: map[string]string{"email": "taro@example.com", "password": "wrong"},
			setupMock: func(m *svcmocks.AuthService) {
				m.On("Login", mock.Anything, mock.AnythingOfType("*model.LoginRequest")).
					Return(nil, model.NewAppError("AUTHENTICATION_FAILED", "Email or password is incorrect.", "", model.ErrUnauthorized)).Once()
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"message":"Email or password is incorrect."`,
		},
		{
			name: "Failure - inactive account answers 403",
			body: map[string]string{"email": "taro@example.com", "password": "password123"},
			setupMock: func(m *svcmocks.AuthService) {
				m.On("Login", mock.Anything, mock.AnythingOfType("*model.LoginRequest")).
					Return(nil, model.NewAppError("ACCOUNT_NOT_ACTIVE", "The account is not active. Check the activation email sent during registration.", "", model.ErrForbidden)).Once()
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `"message"`,
		},
		{
			name:           "Failure - invalid email format",
			body:           map[string]string{"email": "not-an-email", "password": "password123"},
			setupMock:      func(m *svcmocks.AuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"details"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(svcmocks.AuthService)
			tt.setupMock(mockService)
			handler := handlers.NewAuthHandler(mockService)

			req := newJSONRequest(t, http.MethodPost, "/api/v1/auth/login", tt.body)
			rr := httptest.NewRecorder()
			handler.Login(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Activate(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *svcmocks.AuthService)
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]string{"email": "taro@example.com", "code": "AB23CD45"},
			setupMock: func(m *svcmocks.AuthService) {
				m.On("ActivateAccount", mock.Anything, "taro@example.com", "AB23CD45").Return(nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Failure - invalid code answers 400",
			body: map[string]string{"email": "taro@example.com", "code": "WRONG123"},
			setupMock: func(m *svcmocks.AuthService) {
				m.On("ActivateAccount", mock.Anything, "taro@example.com", "WRONG123").
					Return(model.NewAppError("INVALID_ACTIVATION_CODE", "The activation code is invalid.", "code", model.ErrInvalidInput)).Once()
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Failure - code with wrong length rejected by validation",
			body:           map[string]string{"email": "taro@example.com", "code": "SHORT"},
			setupMock:      func(m *svcmocks.AuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(svcmocks.AuthService)
			tt.setupMock(mockService)
			handler := handlers.NewAuthHandler(mockService)

			req := newJSONRequest(t, http.MethodPost, "/api/v1/auth/activate", tt.body)
			rr := httptest.NewRecorder()
			handler.Activate(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *svcmocks.AuthService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success - new access token only",
			body: map[string]string{"refreshToken": "refresh.jwt.token"},
			setupMock: func(m *svcmocks.AuthService) {
				m.On("RefreshAccessToken", mock.Anything, "refresh.jwt.token").Return("new.access.token", nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"accessToken":"new.access.token"`,
		},
		{
			name: "Failure - unknown token answers 401",
			body: map[string]string{"refreshToken": "unknown.jwt.token"},
			setupMock: func(m *svcmocks.AuthService) {
				m.On("RefreshAccessToken", mock.Anything, "unknown.jwt.token").
					Return("", model.NewAppError("INVALID_REFRESH_TOKEN", "The refresh token is not recognized.", "", model.ErrUnauthorized)).Once()
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"message"`,
		},
		{
			name: "Failure - expired token answers 403",
			body: map[string]string{"refreshToken": "expired.jwt.token"},
			setupMock: func(m *svcmocks.AuthService) {
				m.On("RefreshAccessToken", mock.Anything, "expired.jwt.token").
					Return("", model.NewAppError("REFRESH_TOKEN_EXPIRED", "The refresh token has expired. Log in again.", "", model.ErrForbidden)).Once()
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `"message"`,
		},
		{
			name:           "Failure - missing token rejected by validation",
			body:           map[string]string{},
			setupMock:      func(m *svcmocks.AuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"details"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(svcmocks.AuthService)
			tt.setupMock(mockService)
			handler := handlers.NewAuthHandler(mockService)

			req := newJSONRequest(t, http.MethodPost, "/api/v1/auth/token/refresh", tt.body)
			rr := httptest.NewRecorder()
			handler.RefreshToken(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("Success - 204 with no body", func(t *testing.T) {
		mockService := new(svcmocks.AuthService)
		mockService.On("Logout", mock.Anything, "refresh.jwt.token").Return(nil).Once()
		handler := handlers.NewAuthHandler(mockService)

		req := newJSONRequest(t, http.MethodPost, "/api/v1/auth/logout", map[string]string{"refreshToken": "refresh.jwt.token"})
		rr := httptest.NewRecorder()
		handler.Logout(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
		mockService.AssertExpectations(t)
	})

	t.Run("Success - malformed body still answers 204", func(t *testing.T) {
		mockService := new(svcmocks.AuthService)
		mockService.On("Logout", mock.Anything, "").Return(nil).Once()
		handler := handlers.NewAuthHandler(mockService)

		req := newJSONRequest(t, http.MethodPost, "/api/v1/auth/logout", `{"broken`)
		rr := httptest.NewRecorder()
		handler.Logout(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		mockService.AssertExpectations(t)
	})
}

func TestAuthHandler_ResetFlow(t *testing.T) {
	t.Run("RequestPasswordReset - unknown email answers 404", func(t *testing.T) {
		mockService := new(svcmocks.AuthService)
		mockService.On("RequestPasswordReset", mock.Anything, "nobody@example.com").
			Return(model.NewAppError("ACCOUNT_NOT_FOUND", "No account exists for this email.", "email", model.ErrNotFound)).Once()
		handler := handlers.NewAuthHandler(mockService)

		req := newJSONRequest(t, http.MethodPost, "/api/v1/auth/password/request-reset", map[string]string{"email": "nobody@example.com"})
		rr := httptest.NewRecorder()
		handler.RequestPasswordReset(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("VerifyResetCode - valid code answers 200", func(t *testing.T) {
		mockService := new(svcmocks.AuthService)
		mockService.On("VerifyResetCode", mock.Anything, "taro@example.com", "RESET234").Return(nil).Once()
		handler := handlers.NewAuthHandler(mockService)

		req := newJSONRequest(t, http.MethodPost, "/api/v1/auth/password/verify-code", map[string]string{"email": "taro@example.com", "code": "RESET234"})
		rr := httptest.NewRecorder()
		handler.VerifyResetCode(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("ResetPassword - reset request carries no email", func(t *testing.T) {
		mockService := new(svcmocks.AuthService)
		mockService.On("ResetPassword", mock.Anything, "RESET234", "new-password-1").Return(nil).Once()
		handler := handlers.NewAuthHandler(mockService)

		req := newJSONRequest(t, http.MethodPost, "/api/v1/auth/password/reset", map[string]string{"code": "RESET234", "password": "new-password-1"})
		rr := httptest.NewRecorder()
		handler.ResetPassword(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("ResetPassword - short password rejected by validation", func(t *testing.T) {
		mockService := new(svcmocks.AuthService)
		handler := handlers.NewAuthHandler(mockService)

		req := newJSONRequest(t, http.MethodPost, "/api/v1/auth/password/reset", map[string]string{"code": "RESET234", "password": "short"})
		rr := httptest.NewRecorder()
		handler.ResetPassword(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "ResetPassword", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthHandler_GetMe(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(svcmocks.AuthService)
		mockService.On("GetProfile", mock.Anything, uint(1)).
			Return(&model.UserResponse{ID: 1, Email: "taro@example.com"}, nil).Once()
		handler := handlers.NewAuthHandler(mockService)

		req := newJSONRequest(t, http.MethodGet, "/api/v1/me", nil)
		req = req.WithContext(middleware.ContextWithUser(req.Context(), 1, model.RoleUser))
		rr := httptest.NewRecorder()
		handler.GetMe(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"email":"taro@example.com"`)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - no authenticated user in context", func(t *testing.T) {
		mockService := new(svcmocks.AuthService)
		handler := handlers.NewAuthHandler(mockService)

		req := newJSONRequest(t, http.MethodGet, "/api/v1/me", nil)
		rr := httptest.NewRecorder()
		handler.GetMe(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockService.AssertNotCalled(t, "GetProfile", mock.Anything, mock.Anything)
	})
}
