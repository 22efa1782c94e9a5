package notify

import (
	"context"

	"github.com/rs/zerolog/log"
)

// LogNotifier only writes outgoing messages to the log. Used when no SMTP server is configured.
type LogNotifier struct{}

var _ Notifier = (*LogNotifier)(nil)

func (l *LogNotifier) Send(_ context.Context, to string, subject string, htmlBody string) error {
	log.Warn().Str("to", to).Str("subject", subject).Int("body_length", len(htmlBody)).Msg("not sending email, smtp is not configured")
	return nil
}
