//go:generate mockery --name AppointmentRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dental_clinic_api/internal/middleware"
	"dental_clinic_api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	CreateSlot(ctx context.Context, db *gorm.DB, slot *model.AvailabilitySlot) error
	FindSlotByID(ctx context.Context, db *gorm.DB, slotID uuid.UUID) (*model.AvailabilitySlot, error)
	ListOpenSlots(ctx context.Context, db *gorm.DB, dentistID uint, from time.Time) ([]model.AvailabilitySlot, error)
	UpdateSlot(ctx context.Context, db *gorm.DB, slot *model.AvailabilitySlot) error

	CreateAppointment(ctx context.Context, db *gorm.DB, appt *model.Appointment) error
	FindAppointmentByID(ctx context.Context, db *gorm.DB, apptID uuid.UUID) (*model.Appointment, error)
	ListByPatient(ctx context.Context, db *gorm.DB, patientID uint) ([]model.Appointment, error)
	ListByDentist(ctx context.Context, db *gorm.DB, dentistID uint, from time.Time) ([]model.Appointment, error)
	UpdateAppointment(ctx context.Context, db *gorm.DB, appt *model.Appointment) error
}

type gormAppointmentRepository struct{}

func NewGormAppointmentRepository() AppointmentRepository {
	return &gormAppointmentRepository{}
}

func (r *gormAppointmentRepository) CreateSlot(ctx context.Context, db *gorm.DB, slot *model.AvailabilitySlot) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Create(slot).Error; err != nil {
		logger.Error("Failed to create availability slot", "error", err, "dentist_id", slot.DentistID)
		return fmt.Errorf("gormAppointmentRepository.CreateSlot: %w", err)
	}
	return nil
}

func (r *gormAppointmentRepository) FindSlotByID(ctx context.Context, db *gorm.DB, slotID uuid.UUID) (*model.AvailabilitySlot, error) {
	logger := middleware.GetLogger(ctx)
	var slot model.AvailabilitySlot
	if err := db.WithContext(ctx).Where("slot_id = ?", slotID).First(&slot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Failed to find availability slot", "error", err, "slot_id", slotID.String())
		return nil, fmt.Errorf("gormAppointmentRepository.FindSlotByID: %w", err)
	}
	return &slot, nil
}

func (r *gormAppointmentRepository) ListOpenSlots(ctx context.Context, db *gorm.DB, dentistID uint, from time.Time) ([]model.AvailabilitySlot, error) {
	logger := middleware.GetLogger(ctx)
	var slots []model.AvailabilitySlot
	err := db.WithContext(ctx).
		Where("dentist_id = ? AND open = ? AND starts_at >= ?", dentistID, true, from).
		Order("starts_at").
		Find(&slots).Error
	if err != nil {
		logger.Error("Failed to list open slots", "error", err, "dentist_id", dentistID)
		return nil, fmt.Errorf("gormAppointmentRepository.ListOpenSlots: %w", err)
	}
	return slots, nil
}

func (r *gormAppointmentRepository) UpdateSlot(ctx context.Context, db *gorm.DB, slot *model.AvailabilitySlot) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Save(slot).Error; err != nil {
		logger.Error("Failed to update availability slot", "error", err, "slot_id", slot.SlotID.String())
		return fmt.Errorf("gormAppointmentRepository.UpdateSlot: %w", err)
	}
	return nil
}

func (r *gormAppointmentRepository) CreateAppointment(ctx context.Context, db *gorm.DB, appt *model.Appointment) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Create(appt).Error; err != nil {
		logger.Error("Failed to create appointment", "error", err, "slot_id", appt.SlotID.String())
		return fmt.Errorf("gormAppointmentRepository.CreateAppointment: %w", err)
	}
	return nil
}

func (r *gormAppointmentRepository) FindAppointmentByID(ctx context.Context, db *gorm.DB, apptID uuid.UUID) (*model.Appointment, error) {
	logger := middleware.GetLogger(ctx)
	var appt model.Appointment
	if err := db.WithContext(ctx).Where("appointment_id = ?", apptID).First(&appt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Failed to find appointment", "error", err, "appointment_id", apptID.String())
		return nil, fmt.Errorf("gormAppointmentRepository.FindAppointmentByID: %w", err)
	}
	return &appt, nil
}

func (r *gormAppointmentRepository) ListByPatient(ctx context.Context, db *gorm.DB, patientID uint) ([]model.Appointment, error) {
	logger := middleware.GetLogger(ctx)
	var appts []model.Appointment
	err := db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("starts_at").
		Find(&appts).Error
	if err != nil {
		logger.Error("Failed to list appointments by patient", "error", err, "patient_id", patientID)
		return nil, fmt.Errorf("gormAppointmentRepository.ListByPatient: %w", err)
	}
	return appts, nil
}

func (r *gormAppointmentRepository) ListByDentist(ctx context.Context, db *gorm.DB, dentistID uint, from time.Time) ([]model.Appointment, error) {
	logger := middleware.GetLogger(ctx)
	var appts []model.Appointment
	err := db.WithContext(ctx).
		Where("dentist_id = ? AND starts_at >= ?", dentistID, from).
		Order("starts_at").
		Find(&appts).Error
	if err != nil {
		logger.Error("Failed to list appointments by dentist", "error", err, "dentist_id", dentistID)
		return nil, fmt.Errorf("gormAppointmentRepository.ListByDentist: %w", err)
	}
	return appts, nil
}

func (r *gormAppointmentRepository) UpdateAppointment(ctx context.Context, db *gorm.DB, appt *model.Appointment) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Save(appt).Error; err != nil {
		logger.Error("Failed to update appointment", "error", err, "appointment_id", appt.AppointmentID.String())
		return fmt.Errorf("gormAppointmentRepository.UpdateAppointment: %w", err)
	}
	return nil
}
