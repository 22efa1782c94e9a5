package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/safespace-vault/safespace/internal/config"
	"github.com/safespace-vault/safespace/internal/render"
)

const (
	AlertSubject       = "ALERT: Unauthorized Access Attempt"
	alertEmailTemplate = "alert_email.gohtml"
)

type Notifier interface {
	Send(ctx context.Context, to string, subject string, htmlBody string) error
}

// Alert describes a failed login streak that crossed the alert threshold
type Alert struct {
	To       string
	Name     string
	Attempts int
	Time     time.Time
	SourceIP string
}

func (a Alert) HTML() (string, error) {
	body, err := render.Email(alertEmailTemplate, map[string]any{
		"Name":     a.Name,
		"Attempts": a.Attempts,
		"Time":     a.Time.UTC().Format("2006-01-02 15:04:05 MST"),
		"SourceIP": a.SourceIP,
	})
	if err != nil {
		return "", fmt.Errorf("notify: Alert.HTML: %w", err)
	}
	return body, nil
}

// SendAlert renders the alert email and hands it to n
func SendAlert(ctx context.Context, n Notifier, a Alert) error {
	body, err := a.HTML()
	if err != nil {
		return err
	}
	return n.Send(ctx, a.To, AlertSubject, body)
}

// NewFromConfig returns an SMTP notifier when smtp.host is set and a log only notifier otherwise
func NewFromConfig() Notifier {
	config.Lock.RLock()
	defer config.Lock.RUnlock()

	host := viper.GetString(config.KeySMTPHost)
	if host == "" {
		log.Warn().Msg("smtp.host not set, alerts will only be logged")
		return &LogNotifier{}
	}

	port := viper.GetInt(config.KeySMTPPort)
	if port == 0 {
		port = DefaultSMTPPort
	}

	log.Info().Str("smtp_host", host).Int("smtp_port", port).Msg("sending alerts over smtp")

	return &SMTPNotifier{
		Host:     host,
		Port:     port,
		Username: viper.GetString(config.KeySMTPUsername),
		Password: viper.GetString(config.KeySMTPPassword),
		From:     viper.GetString(config.KeySMTPFrom),
	}
}
