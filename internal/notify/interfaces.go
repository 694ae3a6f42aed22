// Package notify delivers password-reset codes to users. Delivery is
// best-effort: a failed send never affects stored reset state.
package notify

import (
	"context"

	"github.com/MKhiriev/go-expense-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notifier_mock.go -package=mock

// Notifier sends a reset code to its owner.
type Notifier interface {
	SendResetCode(ctx context.Context, notification models.ResetNotification) error
}
