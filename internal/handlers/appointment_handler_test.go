package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dental_clinic_api/internal/handlers"
	"dental_clinic_api/internal/middleware"
	"dental_clinic_api/internal/model"
	svcmocks "dental_clinic_api/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func contextWithChiURLParam(ctx context.Context, key, value string) context.Context {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return context.WithValue(ctx, chi.RouteCtxKey, rctx)
}

func TestAppointmentHandler_ListOpenSlots(t *testing.T) {
	t.Run("Success - public, no auth required", func(t *testing.T) {
		mockService := new(svcmocks.AppointmentService)
		mockService.On("ListOpenSlots", mock.Anything, uint(5)).Return([]model.AvailabilitySlot{
			{SlotID: uuid.New(), DentistID: 5, Open: true, StartsAt: time.Now().Add(time.Hour)},
		}, nil).Once()
		handler := handlers.NewAppointmentHandler(mockService)

		req := newJSONRequest(t, http.MethodGet, "/api/v1/dentists/5/slots", nil)
		req = req.WithContext(contextWithChiURLParam(req.Context(), "dentistID", "5"))
		rr := httptest.NewRecorder()
		handler.ListOpenSlots(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"slots"`)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - malformed dentist id", func(t *testing.T) {
		mockService := new(svcmocks.AppointmentService)
		handler := handlers.NewAppointmentHandler(mockService)

		req := newJSONRequest(t, http.MethodGet, "/api/v1/dentists/abc/slots", nil)
		req = req.WithContext(contextWithChiURLParam(req.Context(), "dentistID", "abc"))
		rr := httptest.NewRecorder()
		handler.ListOpenSlots(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "ListOpenSlots", mock.Anything, mock.Anything)
	})
}

func TestAppointmentHandler_CreateSlot(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(svcmocks.AppointmentService)
		mockService.On("CreateSlot", mock.Anything, uint(5), mock.AnythingOfType("*model.CreateSlotRequest")).
			Return(&model.AvailabilitySlot{SlotID: uuid.New(), DentistID: 5, Open: true}, nil).Once()
		handler := handlers.NewAppointmentHandler(mockService)

		body := map[string]interface{}{
			"starts_at": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
			"ends_at":   time.Now().Add(25 * time.Hour).Format(time.RFC3339),
		}
		req := newJSONRequest(t, http.MethodPost, "/api/v1/availability", body)
		req = req.WithContext(middleware.ContextWithUser(req.Context(), 5, model.RoleDentist))
		rr := httptest.NewRecorder()
		handler.CreateSlot(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - unauthenticated", func(t *testing.T) {
		mockService := new(svcmocks.AppointmentService)
		handler := handlers.NewAppointmentHandler(mockService)

		req := newJSONRequest(t, http.MethodPost, "/api/v1/availability", map[string]interface{}{})
		rr := httptest.NewRecorder()
		handler.CreateSlot(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestAppointmentHandler_Book(t *testing.T) {
	slotID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockService := new(svcmocks.AppointmentService)
		mockService.On("Book", mock.Anything, uint(3), mock.AnythingOfType("*model.BookAppointmentRequest")).
			Return(&model.Appointment{AppointmentID: uuid.New(), SlotID: slotID, PatientID: 3, Status: model.AppointmentBooked}, nil).Once()
		handler := handlers.NewAppointmentHandler(mockService)

		req := newJSONRequest(t, http.MethodPost, "/api/v1/appointments", map[string]string{"slot_id": slotID.String()})
		req = req.WithContext(middleware.ContextWithUser(req.Context(), 3, model.RoleUser))
		rr := httptest.NewRecorder()
		handler.Book(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - taken slot answers 409", func(t *testing.T) {
		mockService := new(svcmocks.AppointmentService)
		mockService.On("Book", mock.Anything, uint(3), mock.AnythingOfType("*model.BookAppointmentRequest")).
			Return(nil, model.NewAppError("SLOT_TAKEN", "The slot has already been booked.", "slot_id", model.ErrConflict)).Once()
		handler := handlers.NewAppointmentHandler(mockService)

		req := newJSONRequest(t, http.MethodPost, "/api/v1/appointments", map[string]string{"slot_id": slotID.String()})
		req = req.WithContext(middleware.ContextWithUser(req.Context(), 3, model.RoleUser))
		rr := httptest.NewRecorder()
		handler.Book(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		mockService.AssertExpectations(t)
	})
}

func TestAppointmentHandler_Cancel(t *testing.T) {
	apptID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockService := new(svcmocks.AppointmentService)
		mockService.On("Cancel", mock.Anything, uint(3), apptID).Return(nil).Once()
		handler := handlers.NewAppointmentHandler(mockService)

		req := newJSONRequest(t, http.MethodDelete, "/api/v1/appointments/"+apptID.String(), nil)
		ctx := middleware.ContextWithUser(req.Context(), 3, model.RoleUser)
		req = req.WithContext(contextWithChiURLParam(ctx, "appointmentID", apptID.String()))
		rr := httptest.NewRecorder()
		handler.Cancel(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - foreign appointment answers 403", func(t *testing.T) {
		mockService := new(svcmocks.AppointmentService)
		mockService.On("Cancel", mock.Anything, uint(99), apptID).
			Return(model.NewAppError("FORBIDDEN", "You may only cancel your own appointments.", "", model.ErrForbidden)).Once()
		handler := handlers.NewAppointmentHandler(mockService)

		req := newJSONRequest(t, http.MethodDelete, "/api/v1/appointments/"+apptID.String(), nil)
		ctx := middleware.ContextWithUser(req.Context(), 99, model.RoleUser)
		req = req.WithContext(contextWithChiURLParam(ctx, "appointmentID", apptID.String()))
		rr := httptest.NewRecorder()
		handler.Cancel(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - malformed appointment id", func(t *testing.T) {
		mockService := new(svcmocks.AppointmentService)
		handler := handlers.NewAppointmentHandler(mockService)

		req := newJSONRequest(t, http.MethodDelete, "/api/v1/appointments/not-a-uuid", nil)
		ctx := middleware.ContextWithUser(req.Context(), 3, model.RoleUser)
		req = req.WithContext(contextWithChiURLParam(ctx, "appointmentID", "not-a-uuid"))
		rr := httptest.NewRecorder()
		handler.Cancel(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)
	})
}
