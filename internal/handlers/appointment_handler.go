package handlers

import (
	"net/http"
	"strconv"

	"dental_clinic_api/internal/middleware"
	"dental_clinic_api/internal/model"
	"dental_clinic_api/internal/service"
	"dental_clinic_api/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	service service.AppointmentService
}

func NewAppointmentHandler(s service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: s}
}

// CreateSlot publishes an availability slot for the authenticated dentist.
func (h *AppointmentHandler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	dentistID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.CreateSlotRequest
	if !bindRequest(w, r, &req) {
		return
	}

	slot, err := h.service.CreateSlot(r.Context(), dentistID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, slot, logger)
}

// ListOpenSlots is a public listing of a dentist's future open slots.
func (h *AppointmentHandler) ListOpenSlots(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	dentistID, err := strconv.ParseUint(chi.URLParam(r, "dentistID"), 10, 64)
	if err != nil {
		appErr := model.NewAppError("INVALID_REQUEST", "The dentist id is malformed.", "dentistID", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	slots, err := h.service.ListOpenSlots(r.Context(), uint(dentistID))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"slots": slots,
	}, logger)
}

// Book reserves an open slot for the authenticated patient.
func (h *AppointmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	patientID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.BookAppointmentRequest
	if !bindRequest(w, r, &req) {
		return
	}

	appt, err := h.service.Book(r.Context(), patientID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, appt, logger)
}

// Cancel cancels one of the authenticated patient's appointments.
func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	patientID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	apptID, err := uuid.Parse(chi.URLParam(r, "appointmentID"))
	if err != nil {
		appErr := model.NewAppError("INVALID_REQUEST", "The appointment id is malformed.", "appointmentID", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := h.service.Cancel(r.Context(), patientID, apptID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "The appointment has been cancelled.",
	}, logger)
}

// ListMine lists the authenticated patient's appointments.
func (h *AppointmentHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	patientID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	appts, err := h.service.ListForPatient(r.Context(), patientID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"appointments": appts,
	}, logger)
}

// ListSchedule lists the authenticated dentist's upcoming appointments.
func (h *AppointmentHandler) ListSchedule(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	dentistID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	appts, err := h.service.ListForDentist(r.Context(), dentistID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"appointments": appts,
	}, logger)
}
