package notify

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/models"
)

// consoleNotifier prints reset messages to a writer. Meant for local
// development where no mail server is available.
type consoleNotifier struct {
	mu     sync.Mutex
	out    io.Writer
	logger *logger.Logger
}

// NewConsoleNotifier returns a [Notifier] writing plain-text messages to out.
func NewConsoleNotifier(out io.Writer, log *logger.Logger) Notifier {
	return &consoleNotifier{out: out, logger: log}
}

func (n *consoleNotifier) SendResetCode(ctx context.Context, notification models.ResetNotification) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	_, err := fmt.Fprintf(n.out, "To: %s\nSubject: %s\n\nYour password reset code is %s. It is valid for %s.\n\n",
		notification.Email, ResetSubject, notification.Code, humanizeDuration(notification.ValidFor))
	if err != nil {
		return fmt.Errorf("error writing reset message: %w", err)
	}

	n.logger.Debug().Str("func", "*consoleNotifier.SendResetCode").Msg("reset message printed")
	return nil
}
