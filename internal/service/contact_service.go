//go:generate mockery --name ContactService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"

	"dental_clinic_api/internal/middleware"
	"dental_clinic_api/internal/model"
	"dental_clinic_api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactService persists contact-form submissions from the public site.
type ContactService interface {
	Submit(ctx context.Context, req *model.ContactRequest) (*model.ContactMessage, error)
	List(ctx context.Context) ([]model.ContactMessage, error)
}

type contactService struct {
	db       *gorm.DB
	messages repository.ContactRepository
}

func NewContactService(db *gorm.DB, messages repository.ContactRepository) ContactService {
	return &contactService{db: db, messages: messages}
}

func (s *contactService) Submit(ctx context.Context, req *model.ContactRequest) (*model.ContactMessage, error) {
	logger := middleware.GetLogger(ctx)

	msg := &model.ContactMessage{
		MessageID: uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Body:      req.Body,
	}
	if err := s.messages.Create(ctx, s.db, msg); err != nil {
		logger.Error("Failed to persist contact message", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to submit the message.", "", err)
	}

	logger.Info("Contact message submitted", "message_id", msg.MessageID.String())
	return msg, nil
}

func (s *contactService) List(ctx context.Context) ([]model.ContactMessage, error) {
	logger := middleware.GetLogger(ctx)

	msgs, err := s.messages.List(ctx, s.db)
	if err != nil {
		logger.Error("Failed to list contact messages", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}
	return msgs, nil
}
