package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"flowsite-backend/internal/domains/contact"
	"flowsite-backend/internal/infrastructure/email"
	"flowsite-backend/internal/shared/locale"
	"flowsite-backend/pkg/logger"
)

type contactService struct {
	repo   contact.Repository
	mailer email.Mailer // nil when no API key is configured
}

func NewContactService(repo contact.Repository, mailer email.Mailer) contact.Service {
	return &contactService{repo: repo, mailer: mailer}
}

func (s *contactService) Submit(ctx context.Context, req *contact.SubmitContactReq, loc locale.Locale) (*contact.Message, error) {
	now := time.Now().UTC()
	msg := &contact.Message{
		ID:          uuid.New(),
		Name:        req.Name,
		Email:       req.Email,
		Message:     req.Message,
		Locale:      loc,
		Consent:     req.Consent,
		ConsentAt:   now,
		Status:      contact.StatusNew,
		SubmittedAt: now,
	}

	if err := s.repo.Insert(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}

	// Notification is best-effort: the submission already succeeded,
	// so a mail failure is logged and swallowed.
	if s.mailer != nil {
		go s.notify(*msg)
	}

	return msg, nil
}

func (s *contactService) notify(msg contact.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.mailer.SendContactNotification(ctx, email.ContactNotification{
		Name:    msg.Name,
		Email:   msg.Email,
		Message: msg.Message,
		Locale:  msg.Locale,
	})
	if err != nil {
		logger.Error("contact notification email failed", err)
	}
}

func (s *contactService) List(ctx context.Context, status *contact.Status) ([]contact.Message, error) {
	if status != nil && !status.Valid() {
		return nil, contact.ErrInvalidStatus
	}
	return s.repo.List(ctx, status)
}

func (s *contactService) UpdateStatus(ctx context.Context, id uuid.UUID, status contact.Status) (*contact.Message, error) {
	if !status.Valid() {
		return nil, contact.ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
