package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/peoplehr/leave-system/internal/core/ports"
)

// Mailer delivers a reset notification out-of-band. Real transports (SMTP,
// SMS gateway) plug in here; the development default just logs.
type Mailer interface {
	Send(ctx context.Context, n ports.ResetNotification) error
}

// LogMailer writes the notification to the log instead of sending it.
// Used in development, where the code is also echoed in the API response.
type LogMailer struct {
	log zerolog.Logger
}

func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(_ context.Context, n ports.ResetNotification) error {
	m.log.Info().
		Str("email", n.Email).
		Str("code", n.Code).
		Msg("password reset code delivery")
	return nil
}
