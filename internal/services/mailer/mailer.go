// Package mailer delivers contact form messages.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"portfolio/internal/domain/models"
)

var ErrRejected = errors.New("mail provider rejected the message")

type Mailer interface {
	Send(ctx context.Context, msg models.ContactMessage) error
}

type EmailJSConfig struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	PublicKey  string
	PrivateKey string
	Timeout    time.Duration
}

// EmailJS sends messages through the EmailJS REST API.
type EmailJS struct {
	cfg    EmailJSConfig
	client *http.Client
}

func NewEmailJS(cfg EmailJSConfig) *EmailJS {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &EmailJS{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

func (m *EmailJS) Send(ctx context.Context, msg models.ContactMessage) error {
	const op = "mailer.EmailJS.Send"

	body, err := json.Marshal(emailJSRequest{
		ServiceID:   m.cfg.ServiceID,
		TemplateID:  m.cfg.TemplateID,
		UserID:      m.cfg.PublicKey,
		AccessToken: m.cfg.PrivateKey,
		TemplateParams: map[string]string{
			"title":   msg.Title,
			"name":    msg.Name,
			"email":   msg.Email,
			"phone":   msg.Phone,
			"message": msg.Message,
		},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s: %w: status %d: %s", op, ErrRejected, resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	return nil
}

// Log writes messages to the logger instead of sending them.
type Log struct {
	log *slog.Logger
}

func NewLog(log *slog.Logger) *Log {
	return &Log{log: log}
}

func (m *Log) Send(_ context.Context, msg models.ContactMessage) error {
	m.log.Info("contact message",
		slog.String("op", "mailer.Log.Send"),
		slog.String("title", msg.Title),
		slog.String("name", msg.Name),
		slog.String("email", msg.Email),
		slog.Int("length", len(msg.Message)),
	)
	return nil
}
