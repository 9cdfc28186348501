package services

import (
	"context"
	"log"
	"time"

	"church-backend/internal/mailer"
	"church-backend/internal/models"
	"church-backend/internal/store"
)

// ContactService persists contact messages and fires the email
// notification. Persistence is the source of truth: once the record is
// saved the submission has succeeded, whatever the mail relay thinks.
type ContactService struct {
	Messages store.MessageRepository
	Mailer   mailer.Mailer
}

func NewContactService(messages store.MessageRepository, m mailer.Mailer) *ContactService {
	return &ContactService{Messages: messages, Mailer: m}
}

// Submit stores a new unread message and notifies the church inbox.
func (s *ContactService) Submit(ctx context.Context, name, email, phone, subject, body string) (*models.Message, error) {
	msg := &models.Message{
		ID:        models.NewID(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Subject:   subject,
		Message:   body,
		Timestamp: models.DisplayTime(time.Now()),
		Read:      false,
	}

	if err := s.Messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	// Mail failures are logged and swallowed; the record is already safe.
	if err := s.Mailer.SendContactNotification(msg); err != nil {
		log.Printf("[Contact] Email notification for message %d failed: %v", msg.ID, err)
	}

	return msg, nil
}
