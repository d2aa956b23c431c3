package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// Mailer delivers rendered reports over SMTP.
type Mailer struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       []string
}

// NewMailer creates a new Mailer.
func NewMailer(host string, port int, username, password, from string, to []string) *Mailer {
	return &Mailer{Host: host, Port: port, Username: username, Password: password, From: from, To: to}
}

// Deliver sends one HTML document to the configured recipients. A failure
// here is fatal to the run: there is no partial delivery.
func (m *Mailer) Deliver(ctx context.Context, subject, htmlBody string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.From); err != nil {
		return fmt.Errorf("mail from %q: %w", m.From, err)
	}
	if err := msg.To(m.To...); err != nil {
		return fmt.Errorf("mail to %v: %w", m.To, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(m.Host,
		mail.WithPort(m.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.Username),
		mail.WithPassword(m.Password),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
