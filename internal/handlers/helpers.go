package handlers

import (
	"errors"
	"net/http"

	"dental_clinic_api/internal/middleware"
	"dental_clinic_api/internal/model"
	"dental_clinic_api/internal/webutil"

	"github.com/go-playground/validator/v10"
)

// bindRequest decodes the JSON body into dst and runs struct validation.
// On failure it writes the error response and returns false.
func bindRequest(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	logger := middleware.GetLogger(r.Context())

	if err := webutil.DecodeJSONBody(r, dst); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "The request body is malformed.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return false
	}

	if err := webutil.Validator.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Request validation failed", "errors", validationErrors.Error())
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			logger.Error("Unexpected error during validation", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return false
	}

	return true
}
