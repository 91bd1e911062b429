//go:generate mockery --name AppointmentService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"dental_clinic_api/internal/middleware"
	"dental_clinic_api/internal/model"
	"dental_clinic_api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentService manages dentist availability and patient bookings.
type AppointmentService interface {
	CreateSlot(ctx context.Context, dentistID uint, req *model.CreateSlotRequest) (*model.AvailabilitySlot, error)
	ListOpenSlots(ctx context.Context, dentistID uint) ([]model.AvailabilitySlot, error)
	Book(ctx context.Context, patientID uint, req *model.BookAppointmentRequest) (*model.Appointment, error)
	Cancel(ctx context.Context, patientID uint, appointmentID uuid.UUID) error
	ListForPatient(ctx context.Context, patientID uint) ([]model.Appointment, error)
	ListForDentist(ctx context.Context, dentistID uint) ([]model.Appointment, error)
}

type appointmentService struct {
	db    *gorm.DB
	appts repository.AppointmentRepository
	now   func() time.Time
}

func NewAppointmentService(db *gorm.DB, appts repository.AppointmentRepository) AppointmentService {
	return &appointmentService{
		db:    db,
		appts: appts,
		now:   time.Now,
	}
}

func (s *appointmentService) CreateSlot(ctx context.Context, dentistID uint, req *model.CreateSlotRequest) (*model.AvailabilitySlot, error) {
	logger := middleware.GetLogger(ctx)

	if !req.EndsAt.After(req.StartsAt) {
		return nil, model.NewAppError("VALIDATION_ERROR", "The slot must end after it starts.", "ends_at", model.ErrInvalidInput)
	}
	if req.StartsAt.Before(s.now()) {
		return nil, model.NewAppError("VALIDATION_ERROR", "The slot must start in the future.", "starts_at", model.ErrInvalidInput)
	}

	slot := &model.AvailabilitySlot{
		SlotID:    uuid.New(),
		DentistID: dentistID,
		StartsAt:  req.StartsAt,
		EndsAt:    req.EndsAt,
		Open:      true,
	}
	if err := s.appts.CreateSlot(ctx, s.db, slot); err != nil {
		logger.Error("Failed to create slot", "error", err, "dentist_id", dentistID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create the availability slot.", "", err)
	}

	logger.Info("Availability slot created", "slot_id", slot.SlotID.String(), "dentist_id", dentistID)
	return slot, nil
}

func (s *appointmentService) ListOpenSlots(ctx context.Context, dentistID uint) ([]model.AvailabilitySlot, error) {
	logger := middleware.GetLogger(ctx)

	slots, err := s.appts.ListOpenSlots(ctx, s.db, dentistID, s.now())
	if err != nil {
		logger.Error("Failed to list open slots", "error", err, "dentist_id", dentistID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}
	return slots, nil
}

// Book converts an open slot into an appointment inside one transaction:
// the slot is closed and the appointment row is created together.
func (s *appointmentService) Book(ctx context.Context, patientID uint, req *model.BookAppointmentRequest) (*model.Appointment, error) {
	logger := middleware.GetLogger(ctx)
	var appt *model.Appointment

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		slot, err := s.appts.FindSlotByID(ctx, tx, req.SlotID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("SLOT_NOT_FOUND", "The availability slot was not found.", "slot_id", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
		}

		if !slot.Open {
			logger.Warn("Booking failed: slot already taken", "slot_id", slot.SlotID.String())
			return model.NewAppError("SLOT_TAKEN", "The slot has already been booked.", "slot_id", model.ErrConflict)
		}
		if slot.StartsAt.Before(s.now()) {
			return model.NewAppError("SLOT_IN_PAST", "The slot is in the past.", "slot_id", model.ErrInvalidInput)
		}

		slot.Open = false
		if err := s.appts.UpdateSlot(ctx, tx, slot); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to book the slot.", "", err)
		}

		appt = &model.Appointment{
			AppointmentID: uuid.New(),
			SlotID:        slot.SlotID,
			PatientID:     patientID,
			DentistID:     slot.DentistID,
			StartsAt:      slot.StartsAt,
			EndsAt:        slot.EndsAt,
			Status:        model.AppointmentBooked,
			Notes:         req.Notes,
		}
		if err := s.appts.CreateAppointment(ctx, tx, appt); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create the appointment.", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Appointment booked", "appointment_id", appt.AppointmentID.String(), "patient_id", patientID)
	return appt, nil
}

// Cancel marks a booked appointment as cancelled and reopens its slot.
// Only the owning patient may cancel.
func (s *appointmentService) Cancel(ctx context.Context, patientID uint, appointmentID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		appt, err := s.appts.FindAppointmentByID(ctx, tx, appointmentID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("APPOINTMENT_NOT_FOUND", "The appointment was not found.", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
		}

		if appt.PatientID != patientID {
			logger.Warn("Cancel denied: not the owning patient", "appointment_id", appointmentID.String(), "patient_id", patientID)
			return model.NewAppError("FORBIDDEN", "You may only cancel your own appointments.", "", model.ErrForbidden)
		}
		if appt.Status != model.AppointmentBooked {
			return model.NewAppError("APPOINTMENT_NOT_BOOKED", "Only booked appointments can be cancelled.", "", model.ErrInvalidInput)
		}

		appt.Status = model.AppointmentCancelled
		if err := s.appts.UpdateAppointment(ctx, tx, appt); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to cancel the appointment.", "", err)
		}

		slot, err := s.appts.FindSlotByID(ctx, tx, appt.SlotID)
		if err != nil {
			// A slot deleted out from under its appointment is tolerable;
			// anything else must roll the cancellation back.
			if !errors.Is(err, model.ErrNotFound) {
				logger.Error("Failed to load slot for reopening", "error", err, "slot_id", appt.SlotID.String())
				return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to reopen the slot.", "", err)
			}
			logger.Warn("Cancelled appointment has no slot to reopen", "slot_id", appt.SlotID.String())
		} else {
			slot.Open = true
			if err := s.appts.UpdateSlot(ctx, tx, slot); err != nil {
				return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to reopen the slot.", "", err)
			}
		}

		logger.Info("Appointment cancelled", "appointment_id", appointmentID.String())
		return nil
	})
}

func (s *appointmentService) ListForPatient(ctx context.Context, patientID uint) ([]model.Appointment, error) {
	logger := middleware.GetLogger(ctx)

	appts, err := s.appts.ListByPatient(ctx, s.db, patientID)
	if err != nil {
		logger.Error("Failed to list appointments for patient", "error", err, "patient_id", patientID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}
	return appts, nil
}

func (s *appointmentService) ListForDentist(ctx context.Context, dentistID uint) ([]model.Appointment, error) {
	logger := middleware.GetLogger(ctx)

	appts, err := s.appts.ListByDentist(ctx, s.db, dentistID, s.now())
	if err != nil {
		logger.Error("Failed to list schedule for dentist", "error", err, "dentist_id", dentistID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}
	return appts, nil
}
