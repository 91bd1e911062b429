package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"dental_clinic_api/internal/config"
	"dental_clinic_api/internal/model"
	"dental_clinic_api/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
)

type userIDCtxKey struct{}
type userRoleCtxKey struct{}

// JWTAuthMiddleware validates the Bearer access token on protected routes
// and stores the caller's user ID and role in the request context.
// Verification fails closed: signature mismatch, expiry, or malformed
// structure are all rejected.
func JWTAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorization header is required.", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorization header format must be 'Bearer {token}'.", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}
			tokenString := headerParts[1]

			// jwt.Parse verifies both the signature and the exp claim.
			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWT.SecretKey), nil
			})
			if err != nil || !token.Valid {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "The access token is invalid or expired.", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				appErr := model.NewAppError("INVALID_TOKEN", "The access token is invalid.", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			subject, err := claims.GetSubject()
			if err != nil || subject == "" {
				logger.Warn("JWT auth failed: Subject (sub) claim missing", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "The access token carries no user identity.", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}
			userID, err := strconv.ParseUint(subject, 10, 64)
			if err != nil {
				logger.Warn("JWT auth failed: Invalid subject (sub) format", "subject", subject, "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "The access token user identity is malformed.", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			role, _ := claims["role"].(string)

			ctx := context.WithValue(r.Context(), userIDCtxKey{}, uint(userID))
			ctx = context.WithValue(ctx, userRoleCtxKey{}, model.UserRole(role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ContextWithUser returns a context carrying the given identity, as if it
// had passed JWTAuthMiddleware. Used by handler tests.
func ContextWithUser(ctx context.Context, userID uint, role model.UserRole) context.Context {
	ctx = context.WithValue(ctx, userIDCtxKey{}, userID)
	return context.WithValue(ctx, userRoleCtxKey{}, role)
}

// GetUserIDFromContext returns the authenticated user's ID set by
// JWTAuthMiddleware.
func GetUserIDFromContext(ctx context.Context) (uint, error) {
	if id, ok := ctx.Value(userIDCtxKey{}).(uint); ok {
		return id, nil
	}
	return 0, model.NewAppError("UNAUTHORIZED", "No authenticated user in request context.", "", model.ErrUnauthorized)
}

// GetUserRoleFromContext returns the authenticated user's role set by
// JWTAuthMiddleware.
func GetUserRoleFromContext(ctx context.Context) (model.UserRole, error) {
	if role, ok := ctx.Value(userRoleCtxKey{}).(model.UserRole); ok {
		return role, nil
	}
	return "", model.NewAppError("UNAUTHORIZED", "No authenticated user in request context.", "", model.ErrUnauthorized)
}
