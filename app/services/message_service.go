package services

import (
	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/jobs"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/models"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/repositories"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/config"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/event"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/logger"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/metrics"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/queue"
)

// MessageService owns the contact-form inbox.
type MessageService struct {
	messages *repositories.MessageRepository
}

func NewMessageService(messages *repositories.MessageRepository) *MessageService {
	return &MessageService{messages: messages}
}

// SaveMessageInput is a contact-form submission.
type SaveMessageInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"nullable"`
	Message string `json:"message" validate:"required"`
}

// Save stores a contact message. Saving always succeeds for valid input;
// the message lands unread.
func (s *MessageService) Save(in SaveMessageInput) (models.ContactMessage, error) {
	simulateLatency()

	msg := models.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}
	if err := s.messages.Create(&msg); err != nil {
		return models.ContactMessage{}, err
	}

	metrics.ContactMessages.Inc()
	event.Fire("message.received", msg)

	job := &jobs.ContactNotification{
		AdminEmail: config.AdminEmail(),
		FromName:   msg.Name,
		FromEmail:  msg.Email,
		Message:    msg.Message,
	}
	if err := queue.Dispatch(job); err != nil {
		logger.Warn("messages: admin notification not queued", "error", err)
	}
	return msg, nil
}

// All returns every contact message, most recent first.
func (s *MessageService) All() ([]models.ContactMessage, error) {
	simulateLatency()

	msgs, err := s.messages.All()
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []models.ContactMessage{}
	}
	return msgs, nil
}
