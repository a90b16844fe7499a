package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"flowsite-backend/internal/domains/newsletter"
	"flowsite-backend/internal/infrastructure/email"
	"flowsite-backend/internal/shared/locale"
	"flowsite-backend/pkg/logger"
)

type newsletterService struct {
	repo   newsletter.Repository
	mailer email.Mailer // nil when no API key is configured
}

func NewNewsletterService(repo newsletter.Repository, mailer email.Mailer) newsletter.Service {
	return &newsletterService{repo: repo, mailer: mailer}
}

func (s *newsletterService) Subscribe(ctx context.Context, req *newsletter.SubscribeReq, headerLocale locale.Locale) (*newsletter.Subscriber, error) {
	loc := headerLocale
	if req.Locale != "" {
		loc = locale.Resolve(req.Locale)
	}

	now := time.Now().UTC()
	sub := &newsletter.Subscriber{
		ID:        uuid.New(),
		Email:     req.Email,
		Locale:    loc,
		Status:    newsletter.StatusActive,
		Source:    newsletter.SourceWebsite,
		ConsentAt: now,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Upsert(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to store subscriber: %w", err)
	}

	if s.mailer != nil {
		go s.welcome(sub.Email, sub.Locale)
	}

	return sub, nil
}

func (s *newsletterService) welcome(to string, loc locale.Locale) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.mailer.SendNewsletterWelcome(ctx, to, loc); err != nil {
		logger.Error("newsletter welcome email failed", err)
	}
}

func (s *newsletterService) Unsubscribe(ctx context.Context, email string) error {
	return s.repo.SetStatus(ctx, email, newsletter.StatusUnsubscribed)
}

func (s *newsletterService) List(ctx context.Context, status *newsletter.Status) ([]newsletter.Subscriber, error) {
	return s.repo.List(ctx, status)
}
