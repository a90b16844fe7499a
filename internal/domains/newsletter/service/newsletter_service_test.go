package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowsite-backend/internal/domains/newsletter"
	"flowsite-backend/internal/shared/locale"
)

// fakeRepo mirrors the unique-email upsert the Postgres repository
// performs.
type fakeRepo struct {
	byEmail map[string]*newsletter.Subscriber
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byEmail: map[string]*newsletter.Subscriber{}}
}

func (f *fakeRepo) Upsert(_ context.Context, sub *newsletter.Subscriber) error {
	if existing, ok := f.byEmail[sub.Email]; ok {
		existing.Status = newsletter.StatusActive
		existing.Locale = sub.Locale
		existing.Source = sub.Source
		existing.ConsentAt = sub.ConsentAt
		existing.UpdatedAt = sub.UpdatedAt
		*sub = *existing
		return nil
	}
	cp := *sub
	f.byEmail[sub.Email] = &cp
	return nil
}

func (f *fakeRepo) SetStatus(_ context.Context, email string, status newsletter.Status) error {
	sub, ok := f.byEmail[email]
	if !ok {
		return newsletter.ErrSubscriberNotFound
	}
	sub.Status = status
	return nil
}

func (f *fakeRepo) List(_ context.Context, status *newsletter.Status) ([]newsletter.Subscriber, error) {
	out := []newsletter.Subscriber{}
	for _, s := range f.byEmail {
		if status == nil || s.Status == *status {
			out = append(out, *s)
		}
	}
	return out, nil
}

func TestSubscribeThenResubscribe(t *testing.T) {
	repo := newFakeRepo()
	svc := NewNewsletterService(repo, nil)
	ctx := context.Background()

	first, err := svc.Subscribe(ctx, &newsletter.SubscribeReq{Email: "a@example.com"}, locale.PT)
	require.NoError(t, err)
	assert.Equal(t, newsletter.StatusActive, first.Status)
	assert.Equal(t, newsletter.SourceWebsite, first.Source)

	require.NoError(t, svc.Unsubscribe(ctx, "a@example.com"))
	assert.Equal(t, newsletter.StatusUnsubscribed, repo.byEmail["a@example.com"].Status)

	// resubscribing reactivates the same row
	second, err := svc.Subscribe(ctx, &newsletter.SubscribeReq{Email: "a@example.com"}, locale.PT)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, newsletter.StatusActive, second.Status)
	assert.Len(t, repo.byEmail, 1)
	assert.True(t, second.ConsentAt.After(first.ConsentAt) || second.ConsentAt.Equal(first.ConsentAt))
}

func TestSubscribeLocalePrecedence(t *testing.T) {
	repo := newFakeRepo()
	svc := NewNewsletterService(repo, nil)
	ctx := context.Background()

	// body locale wins over the header locale
	sub, err := svc.Subscribe(ctx, &newsletter.SubscribeReq{Email: "b@example.com", Locale: "fr"}, locale.EN)
	require.NoError(t, err)
	assert.Equal(t, locale.FR, sub.Locale)

	// no body locale: header locale applies
	sub, err = svc.Subscribe(ctx, &newsletter.SubscribeReq{Email: "c@example.com"}, locale.EN)
	require.NoError(t, err)
	assert.Equal(t, locale.EN, sub.Locale)
}

func TestUnsubscribeUnknownEmail(t *testing.T) {
	svc := NewNewsletterService(newFakeRepo(), nil)
	err := svc.Unsubscribe(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, newsletter.ErrSubscriberNotFound)
}
