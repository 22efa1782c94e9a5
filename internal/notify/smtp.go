package notify

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/wneessen/go-mail"
)

const DefaultSMTPPort = 587

type SMTPNotifier struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

var _ Notifier = (*SMTPNotifier)(nil)

func (s *SMTPNotifier) buildMessage(to string, subject string, htmlBody string) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(s.From); err != nil {
		return nil, fmt.Errorf("notify: invalid from address: %w", err)
	}
	if err := m.To(to); err != nil {
		return nil, fmt.Errorf("notify: invalid to address: %w", err)
	}
	m.Subject(subject)
	m.SetBodyString(mail.TypeTextHTML, htmlBody)

	return m, nil
}

func (s *SMTPNotifier) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(s.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
	}

	if s.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.Username),
			mail.WithPassword(s.Password),
		)
	}

	return opts
}

func (s *SMTPNotifier) Send(ctx context.Context, to string, subject string, htmlBody string) error {
	m, err := s.buildMessage(to, subject, htmlBody)
	if err != nil {
		return fmt.Errorf("notify: SMTPNotifier.Send: %w", err)
	}

	c, err := mail.NewClient(s.Host, s.clientOptions()...)
	if err != nil {
		return fmt.Errorf("notify: SMTPNotifier.Send: could not create client: %w", err)
	}

	if err := c.DialAndSendWithContext(ctx, m); err != nil {
		log.Error().Err(err).Str("smtp_host", s.Host).Str("to", to).Msg("could not send email")
		return fmt.Errorf("notify: SMTPNotifier.Send: %w", err)
	}

	log.Info().Str("to", to).Str("subject", subject).Msg("email sent")
	return nil
}
