package contact

import (
	"time"

	"github.com/google/uuid"

	"flowsite-backend/internal/shared/locale"
)

// Status is the moderation lifecycle of a message. Submissions always
// start as new; staff move them through read and archived.
type Status string

const (
	StatusNew      Status = "new"
	StatusRead     Status = "read"
	StatusArchived Status = "archived"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusRead, StatusArchived:
		return true
	}
	return false
}

// Message is a stored contact form submission.
// Consent is always true on stored rows; submissions without consent
// are rejected before persistence.
type Message struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Message     string        `json:"message"`
	Locale      locale.Locale `json:"locale"`
	Consent     bool          `json:"consent"`
	ConsentAt   time.Time     `json:"consent_at"`
	Status      Status        `json:"status"`
	SubmittedAt time.Time     `json:"submitted_at"`
}
