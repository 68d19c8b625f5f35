package services

import (
	"context"
	"log"

	"gravecare/internal/models/db_models"
	"gravecare/internal/models/request_models"
	"gravecare/internal/repositories"
	"gravecare/pkg/utils"
)

type ContactService interface {
	Submit(ctx context.Context, req request_models.ContactFormRequest) error
	ListMessages(ctx context.Context) ([]db_models.ContactMessage, error)
}

type contactService struct {
	repo   repositories.ContactRepository
	mailer IMailService
}

func NewContactService(repo repositories.ContactRepository, mailer IMailService) ContactService {
	return &contactService{repo: repo, mailer: mailer}
}

// Submit persists first; the notification mail is best effort.
func (s *contactService) Submit(ctx context.Context, req request_models.ContactFormRequest) error {
	msg := &db_models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.repo.Insert(ctx, msg); err != nil {
		return utils.ErrDatabaseError
	}

	if err := s.mailer.SendContactNotification(req.Name, req.Email, req.Subject, req.Message); err != nil {
		log.Printf("contact: notification mail for %s: %v", req.Email, err)
	}
	return nil
}

func (s *contactService) ListMessages(ctx context.Context) ([]db_models.ContactMessage, error) {
	msgs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return msgs, nil
}
