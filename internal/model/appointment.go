package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilitySlot is a window a dentist has published for booking.
// Booking closes the slot; cancelling the appointment reopens it.
type AvailabilitySlot struct {
	SlotID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"slot_id"`
	DentistID uint      `gorm:"not null;index" json:"dentist_id"`
	StartsAt  time.Time `gorm:"not null" json:"starts_at"`
	EndsAt    time.Time `gorm:"not null" json:"ends_at"`
	Open      bool      `gorm:"not null;default:true" json:"open"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AvailabilitySlot) TableName() string {
	return "availability_slots"
}

type AppointmentStatus string

const (
	AppointmentBooked    AppointmentStatus = "booked"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentCompleted AppointmentStatus = "completed"
)

// At most one *booked* appointment exists per slot: Book closes the slot in
// the same transaction that inserts the row. Cancelled rows keep their
// slot_id, so the column is indexed but deliberately not unique.
type Appointment struct {
	AppointmentID uuid.UUID         `gorm:"type:uuid;primaryKey" json:"appointment_id"`
	SlotID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"slot_id"`
	PatientID     uint              `gorm:"not null;index" json:"patient_id"`
	DentistID     uint              `gorm:"not null;index" json:"dentist_id"`
	StartsAt      time.Time         `gorm:"not null" json:"starts_at"`
	EndsAt        time.Time         `gorm:"not null" json:"ends_at"`
	Status        AppointmentStatus `gorm:"type:varchar(20);not null;default:booked" json:"status"`
	Notes         string            `json:"notes,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	DeletedAt     gorm.DeletedAt    `gorm:"index" json:"-"`
}

func (Appointment) TableName() string {
	return "appointments"
}

type CreateSlotRequest struct {
	StartsAt time.Time `json:"starts_at" validate:"required"`
	EndsAt   time.Time `json:"ends_at" validate:"required,gtfield=StartsAt"`
}

type BookAppointmentRequest struct {
	SlotID uuid.UUID `json:"slot_id" validate:"required"`
	Notes  string    `json:"notes" validate:"omitempty,max=500"`
}
