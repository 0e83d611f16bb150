package notify

import (
	"context"

	"gopkg.in/gomail.v2"
)

// Mailer sends one HTML email. Implementations are best-effort: callers log
// the returned error and carry on.
type Mailer interface {
	Send(ctx context.Context, to []string, subject, htmlBody string) error
}

// SMTPMailer sends through a transactional SMTP relay. If host is empty every
// call is a no-op.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, user, password, from string) *SMTPMailer {
	m := &SMTPMailer{from: from}
	if host != "" {
		m.dialer = gomail.NewDialer(host, port, user, password)
	}
	return m
}

// Send delivers the message. gomail has no context support; ctx is accepted
// for interface symmetry with the other collaborator clients.
func (m *SMTPMailer) Send(_ context.Context, to []string, subject, htmlBody string) error {
	if m.dialer == nil || len(to) == 0 {
		return nil
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return m.dialer.DialAndSend(msg)
}
