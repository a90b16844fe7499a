// Package email sends transactional mail through Resend. Both sends in
// this service are best-effort: callers fire them in a goroutine and
// log failures without surfacing them to the client.
package email

import (
	"context"
	"fmt"
	"html"

	"github.com/resend/resend-go/v3"

	"flowsite-backend/internal/shared/locale"
)

// ContactNotification is the payload for the internal inbox mail sent
// when a contact form submission is stored.
type ContactNotification struct {
	Name    string
	Email   string
	Message string
	Locale  locale.Locale
}

// Mailer abstracts the provider; tests use an in-memory fake.
type Mailer interface {
	SendContactNotification(ctx context.Context, n ContactNotification) error
	SendNewsletterWelcome(ctx context.Context, to string, loc locale.Locale) error
}

type resendMailer struct {
	client *resend.Client
	from   string
	inbox  string
}

// NewResendMailer wires the Resend client.
// from must be an address under a domain verified in Resend; inbox is
// where contact notifications land.
func NewResendMailer(apiKey, from, inbox string) Mailer {
	return &resendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
		inbox:  inbox,
	}
}

func (m *resendMailer) SendContactNotification(ctx context.Context, n ContactNotification) error {
	body := fmt.Sprintf(`<h2>New contact message</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Locale:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>`,
		html.EscapeString(n.Name),
		html.EscapeString(n.Email),
		n.Locale,
		html.EscapeString(n.Message),
	)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Flow Productions <%s>", m.from),
		To:      []string{m.inbox},
		Subject: fmt.Sprintf("New contact message from %s", n.Name),
		Html:    body,
	}

	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send contact notification: %w", err)
	}
	return nil
}

var welcomeSubject = map[locale.Locale]string{
	locale.PT: "Bem-vindo à newsletter da Flow Productions",
	locale.EN: "Welcome to the Flow Productions newsletter",
	locale.FR: "Bienvenue dans la newsletter de Flow Productions",
}

var welcomeBody = map[locale.Locale]string{
	locale.PT: "<p>Obrigado por subscrever a nossa newsletter. Em breve receberá as nossas novidades.</p>",
	locale.EN: "<p>Thanks for subscribing to our newsletter. News from the studio is on its way.</p>",
	locale.FR: "<p>Merci de vous être inscrit à notre newsletter. Nos actualités arrivent bientôt.</p>",
}

func (m *resendMailer) SendNewsletterWelcome(ctx context.Context, to string, loc locale.Locale) error {
	subject, ok := welcomeSubject[loc]
	if !ok {
		subject = welcomeSubject[locale.Default]
	}
	body, ok := welcomeBody[loc]
	if !ok {
		body = welcomeBody[locale.Default]
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Flow Productions <%s>", m.from),
		To:      []string{to},
		Subject: subject,
		Html:    body,
	}

	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}
