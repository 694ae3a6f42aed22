package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/MKhiriev/go-expense-keeper/models"
)

// ResetSubject is the subject line of every reset message.
const ResetSubject = "Your Password Reset OTP"

var resetTemplate = template.Must(template.New("reset").Parse(`<html>
  <body>
    <p>Hello {{.Username}},</p>
    <p>Your password reset code is: <strong>{{.Code}}</strong></p>
    <p>This code is valid for {{.ValidFor}}.</p>
    <p>If you did not request a password reset, you can ignore this email.</p>
  </body>
</html>
`))

type resetView struct {
	Username string
	Code     string
	ValidFor string
}

// RenderResetMessage renders the HTML body of a reset message.
func RenderResetMessage(n models.ResetNotification) (string, error) {
	username := n.Username
	if username == "" {
		username = "there"
	}

	var buf bytes.Buffer
	err := resetTemplate.Execute(&buf, resetView{
		Username: username,
		Code:     n.Code,
		ValidFor: humanizeDuration(n.ValidFor),
	})
	if err != nil {
		return "", fmt.Errorf("error rendering reset message: %w", err)
	}

	return buf.String(), nil
}

// humanizeDuration renders whole hours or minutes ("1 hour", "15 minutes").
func humanizeDuration(d time.Duration) string {
	switch {
	case d >= time.Hour && d%time.Hour == 0:
		return plural(int(d/time.Hour), "hour")
	case d >= time.Minute:
		return plural(int(d/time.Minute), "minute")
	default:
		return plural(int(d/time.Second), "second")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
