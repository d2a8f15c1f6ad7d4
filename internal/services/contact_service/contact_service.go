package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"portfolio/internal/domain/models"
	"portfolio/internal/lib/logger/sl"
	"portfolio/internal/metrics"
	"portfolio/internal/repository"
	"portfolio/internal/services/mailer"
)

var (
	ErrInvalidMessage  = errors.New("invalid contact message")
	ErrDeliveryFailed  = errors.New("contact message delivery failed")
	ErrArchiveDisabled = errors.New("contact archive is not configured")
)

// ContactResult is what the form shows after a submission.
type ContactResult struct {
	ID     uuid.UUID            `json:"id"`
	Status models.ContactStatus `json:"status"`
}

type ContactService struct {
	log      *slog.Logger
	validate *validator.Validate
	mailer   mailer.Mailer
	repo     repository.ContactRepository
}

// NewContactService returns a service that delivers through m. repo may be
// nil, in which case submissions are not archived.
func NewContactService(log *slog.Logger, m mailer.Mailer, repo repository.ContactRepository) *ContactService {
	return &ContactService{
		log:      log,
		validate: validator.New(),
		mailer:   m,
		repo:     repo,
	}
}

// Submit validates and delivers msg once. A failed delivery yields the error
// status together with ErrDeliveryFailed; nothing is retried.
func (s *ContactService) Submit(ctx context.Context, msg models.ContactMessage) (ContactResult, error) {
	const op = "service.ContactService.Submit"
	log := s.log.With(slog.String("op", op))

	msg = normalize(msg)
	if err := s.validate.Struct(msg); err != nil {
		log.Info("contact message rejected", sl.Err(err))
		metrics.ContactSubmissions.WithLabelValues("invalid").Inc()
		return ContactResult{Status: models.ContactStatusError}, fmt.Errorf("%s: %w: %w", op, ErrInvalidMessage, err)
	}

	status := models.ContactStatusSuccess
	deliveryErr := s.mailer.Send(ctx, msg)
	if deliveryErr != nil {
		log.Error("failed to deliver contact message", sl.Err(deliveryErr))
		status = models.ContactStatusError
	}

	sub := models.NewContactSubmission(msg, status, deliveryErr)
	s.archive(ctx, log, sub)
	metrics.ContactSubmissions.WithLabelValues(string(status)).Inc()

	result := ContactResult{ID: sub.ID, Status: status}
	if deliveryErr != nil {
		return result, fmt.Errorf("%s: %w: %w", op, ErrDeliveryFailed, deliveryErr)
	}

	log.Info("contact message delivered", slog.String("id", sub.ID.String()))
	return result, nil
}

// ListSubmissions pages through archived messages, newest first.
func (s *ContactService) ListSubmissions(ctx context.Context, page, perPage int) ([]models.ContactSubmission, int, error) {
	const op = "service.ContactService.ListSubmissions"

	if s.repo == nil {
		return nil, 0, fmt.Errorf("%s: %w", op, ErrArchiveDisabled)
	}

	subs, total, err := s.repo.ListSubmissions(ctx, page, perPage)
	if err != nil {
		s.log.Error("failed to list submissions", slog.String("op", op), sl.Err(err))
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return subs, total, nil
}

func (s *ContactService) archive(ctx context.Context, log *slog.Logger, sub models.ContactSubmission) {
	if s.repo == nil {
		return
	}
	if err := s.repo.SaveSubmission(ctx, sub); err != nil {
		log.Error("failed to archive contact message", slog.String("id", sub.ID.String()), sl.Err(err))
	}
}

func normalize(msg models.ContactMessage) models.ContactMessage {
	msg.Title = strings.TrimSpace(msg.Title)
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Phone = strings.TrimSpace(msg.Phone)
	msg.Message = strings.TrimSpace(msg.Message)
	if msg.Title == "" {
		msg.Title = models.DefaultContactTitle
	}
	return msg
}
