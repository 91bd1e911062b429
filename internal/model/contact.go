package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is a contact-form submission from the public site.
type ContactMessage struct {
	MessageID uuid.UUID `gorm:"type:uuid;primaryKey" json:"message_id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `gorm:"not null" json:"subject"`
	Body      string    `gorm:"not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=32"`
	Subject string `json:"subject" validate:"required,min=1,max=200"`
	Body    string `json:"body" validate:"required,min=1,max=2000"`
}
