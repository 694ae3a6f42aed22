package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-expense-keeper/internal/config"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/utils"
	"github.com/MKhiriev/go-expense-keeper/models"
)

// webhookPayload is the JSON body posted for every reset code.
type webhookPayload struct {
	Event     string    `json:"event"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

const resetEvent = "password_reset_requested"

// webhookNotifier hands reset codes to an external HTTP endpoint, e.g. a
// mail relay.
type webhookNotifier struct {
	url    string
	secret string
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewWebhookNotifier returns a [Notifier] posting JSON to cfg.URL.
func NewWebhookNotifier(cfg config.Webhook, log *logger.Logger) Notifier {
	return &webhookNotifier{
		url:    cfg.URL,
		secret: cfg.Secret,
		client: utils.NewHTTPClient(cfg.Timeout),
		logger: log,
	}
}

func (n *webhookNotifier) SendResetCode(ctx context.Context, notification models.ResetNotification) error {
	log := logger.FromContext(ctx)

	body, err := json.Marshal(webhookPayload{
		Event:     resetEvent,
		Email:     notification.Email,
		Username:  notification.Username,
		Code:      notification.Code,
		ExpiresAt: notification.ExpiresAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("error encoding webhook payload: %w", err)
	}

	req := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if n.secret != "" {
		req.SetHeader(utils.SignatureHeader, utils.HashString(body, n.secret))
	}

	resp, err := req.Post(n.url)
	if err != nil {
		log.Err(err).Str("func", "*webhookNotifier.SendResetCode").Msg("error calling webhook")
		return fmt.Errorf("error calling webhook: %w", err)
	}
	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Str("func", "*webhookNotifier.SendResetCode").Msg("webhook rejected notification")
		return fmt.Errorf("webhook responded with status %d", resp.StatusCode())
	}

	return nil
}
