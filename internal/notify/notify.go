package notify

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-expense-keeper/internal/config"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
)

// NewNotifier builds the notifier selected by cfg.Kind.
func NewNotifier(cfg config.Notifier, log *logger.Logger) (Notifier, error) {
	switch cfg.Kind {
	case config.NotifierLog, "":
		return NewConsoleNotifier(os.Stdout, log), nil
	case config.NotifierSMTP:
		return NewSMTPNotifier(cfg.SMTP, log)
	case config.NotifierWebhook:
		return NewWebhookNotifier(cfg.Webhook, log), nil
	default:
		return nil, fmt.Errorf("unknown notifier kind %q", cfg.Kind)
	}
}
