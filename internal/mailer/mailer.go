package mailer

import (
	"context"
	"fmt"
	"log"

	"github.com/wneessen/go-mail"

	"github.com/linguahub/admin-console-backend/config"
)

// Mailer delivers the temporary password issued by a reset.
type Mailer interface {
	SendTempPassword(ctx context.Context, to, tempPassword string) error
}

// SMTPMailer sends over plain SMTP.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) SendTempPassword(ctx context.Context, to, tempPassword string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("mail to: %w", err)
	}
	msg.Subject("Your temporary password")
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"Your password has been reset by an administrator.\n\n"+
			"Temporary password: %s\n\n"+
			"Please sign in and change it immediately.\n", tempPassword))

	opts := []mail.Option{mail.WithPort(m.cfg.Port)}
	if m.cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.User),
			mail.WithPassword(m.cfg.Password),
		)
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("mail client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// LogMailer is the no-delivery fallback used when SMTP is not configured:
// the temporary password is only written to the server log.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) SendTempPassword(_ context.Context, to, tempPassword string) error {
	log.Printf("[mail] delivery disabled; temporary password for %s: %s", to, tempPassword)
	return nil
}
