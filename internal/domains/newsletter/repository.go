package newsletter

import "context"

type Repository interface {
	// Upsert inserts the subscriber or, when the email already exists,
	// reactivates the row in place. The stored row is written back to
	// sub, so resubscribing never creates a duplicate.
	Upsert(ctx context.Context, sub *Subscriber) error

	// SetStatus returns ErrSubscriberNotFound when the email is unknown.
	SetStatus(ctx context.Context, email string, status Status) error

	List(ctx context.Context, status *Status) ([]Subscriber, error)
}
