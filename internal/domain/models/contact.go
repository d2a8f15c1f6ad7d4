package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactStatus mirrors the three states of the contact form.
type ContactStatus string

const (
	ContactStatusIdle    ContactStatus = "idle"
	ContactStatusSuccess ContactStatus = "success"
	ContactStatusError   ContactStatus = "error"
)

// DefaultContactTitle is used when the visitor leaves the subject empty.
const DefaultContactTitle = "Portfolio contact"

// ContactMessage is the payload submitted by the contact form.
type ContactMessage struct {
	Title   string `json:"title" validate:"max=200"`
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,max=40"`
	Message string `json:"message" validate:"required,max=5000"`
}

// ContactSubmission is an archived contact message with its delivery outcome.
type ContactSubmission struct {
	ID        uuid.UUID     `json:"id" db:"id"`
	Title     string        `json:"title" db:"title"`
	Name      string        `json:"name" db:"name"`
	Email     string        `json:"email" db:"email"`
	Phone     string        `json:"phone,omitempty" db:"phone"`
	Message   string        `json:"message" db:"message"`
	Status    ContactStatus `json:"status" db:"status"`
	Error     string        `json:"error,omitempty" db:"error"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
}

// NewContactSubmission builds an archive row for msg.
func NewContactSubmission(msg ContactMessage, status ContactStatus, deliveryErr error) ContactSubmission {
	sub := ContactSubmission{
		ID:        uuid.New(),
		Title:     msg.Title,
		Name:      msg.Name,
		Email:     msg.Email,
		Phone:     msg.Phone,
		Message:   msg.Message,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
	if deliveryErr != nil {
		sub.Error = deliveryErr.Error()
	}
	return sub
}
