package middleware

import (
	"net/http"

	"dental_clinic_api/internal/model"
	"dental_clinic_api/internal/webutil"
)

// RequireRole restricts a route to callers holding one of the given roles.
// It must be mounted after JWTAuthMiddleware.
func RequireRole(roles ...model.UserRole) func(http.Handler) http.Handler {
	allowed := make(map[model.UserRole]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			role, err := GetUserRoleFromContext(r.Context())
			if err != nil {
				webutil.HandleError(w, logger, err)
				return
			}
			if !allowed[role] {
				logger.Warn("Role check failed", "role", string(role))
				appErr := model.NewAppError("FORBIDDEN", "You do not have permission to access this resource.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
