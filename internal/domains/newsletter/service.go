package newsletter

import (
	"context"

	"flowsite-backend/internal/shared/locale"
)

type Service interface {
	// Subscribe upserts by email. Locale precedence: request body,
	// then headerLocale, then the default.
	Subscribe(ctx context.Context, req *SubscribeReq, headerLocale locale.Locale) (*Subscriber, error)

	Unsubscribe(ctx context.Context, email string) error
	List(ctx context.Context, status *Status) ([]Subscriber, error)
}
