package notify

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-expense-keeper/internal/config"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/models"
	"github.com/wneessen/go-mail"
)

// smtpNotifier delivers reset codes as HTML email.
type smtpNotifier struct {
	cfg    config.SMTP
	client *mail.Client
	logger *logger.Logger
}

// NewSMTPNotifier builds a [Notifier] for the configured mail server. No
// connection is made until the first send.
func NewSMTPNotifier(cfg config.SMTP, log *logger.Logger) (Notifier, error) {
	client, err := mail.NewClient(cfg.Host, smtpOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("error creating smtp client: %w", err)
	}

	return &smtpNotifier{cfg: cfg, client: client, logger: log}, nil
}

func smtpOptions(cfg config.SMTP) []mail.Option {
	opts := []mail.Option{mail.WithPort(cfg.Port)}

	switch {
	case cfg.SSL:
		opts = append(opts, mail.WithSSL())
	case cfg.StartTLS:
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	default:
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	return opts
}

// buildResetMessage assembles the email without sending it.
func (n *smtpNotifier) buildResetMessage(notification models.ResetNotification) (*mail.Msg, error) {
	body, err := RenderResetMessage(notification)
	if err != nil {
		return nil, err
	}

	msg := mail.NewMsg()
	if err := msg.From(n.cfg.From); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(notification.Email); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(ResetSubject)
	msg.SetBodyString(mail.TypeTextHTML, body)

	return msg, nil
}

func (n *smtpNotifier) SendResetCode(ctx context.Context, notification models.ResetNotification) error {
	log := logger.FromContext(ctx)

	msg, err := n.buildResetMessage(notification)
	if err != nil {
		return err
	}

	if err := n.client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Err(err).Str("func", "*smtpNotifier.SendResetCode").Msg("error sending reset email")
		return fmt.Errorf("error sending reset email: %w", err)
	}

	log.Info().Str("func", "*smtpNotifier.SendResetCode").Msg("reset email sent")
	return nil
}
