package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dental_clinic_api/internal/handlers"
	"dental_clinic_api/internal/model"
	svcmocks "dental_clinic_api/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestContactHandler_Submit(t *testing.T) {
	validBody := map[string]string{
		"name":    "Taro Yamada",
		"email":   "taro@example.com",
		"subject": "Opening hours",
		"body":    "Are you open on Saturdays?",
	}

	t.Run("Success", func(t *testing.T) {
		mockService := new(svcmocks.ContactService)
		mockService.On("Submit", mock.Anything, mock.AnythingOfType("*model.ContactRequest")).
			Return(&model.ContactMessage{MessageID: uuid.New()}, nil).Once()
		handler := handlers.NewContactHandler(mockService)

		req := newJSONRequest(t, http.MethodPost, "/api/v1/contact", validBody)
		rr := httptest.NewRecorder()
		handler.Submit(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"message"`)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - missing subject rejected by validation", func(t *testing.T) {
		mockService := new(svcmocks.ContactService)
		handler := handlers.NewContactHandler(mockService)

		body := map[string]string{"name": "Taro", "email": "taro@example.com", "body": "hello"}
		req := newJSONRequest(t, http.MethodPost, "/api/v1/contact", body)
		rr := httptest.NewRecorder()
		handler.Submit(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})
}
