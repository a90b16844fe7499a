package newsletter

import (
	"time"

	"github.com/google/uuid"

	"flowsite-backend/internal/shared/locale"
)

type Status string

const (
	StatusActive       Status = "active"
	StatusUnsubscribed Status = "unsubscribed"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusUnsubscribed
}

// SourceWebsite is the only intake channel today; the column exists so
// imports from other channels stay distinguishable.
const SourceWebsite = "website"

// Subscriber is a newsletter list entry, unique per email address.
type Subscriber struct {
	ID        uuid.UUID     `json:"id"`
	Email     string        `json:"email"`
	Locale    locale.Locale `json:"locale"`
	Status    Status        `json:"status"`
	Source    string        `json:"source"`
	ConsentAt time.Time     `json:"consent_at"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
