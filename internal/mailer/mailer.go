// Package mailer defines the outbound notification collaborator used after a
// contact submission. The default implementation only logs; a real transport
// can be swapped in without touching the contacts service.
package mailer

import (
	"context"

	"github.com/pabakn/Astro-Destiny/internal/logging"
)

// Mailer sends a notification email. Implementations must be safe for
// concurrent use.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogMailer records the would-be email in the log instead of sending it.
type LogMailer struct {
	log *logging.Logger
}

var _ Mailer = (*LogMailer)(nil)

// NewLogMailer creates a log-only mailer.
func NewLogMailer(log *logging.Logger) *LogMailer {
	if log == nil {
		log = logging.NewDefault("mailer")
	}
	return &LogMailer{log: log}
}

// Send logs the message and always succeeds.
func (m *LogMailer) Send(_ context.Context, to, subject, body string) error {
	m.log.WithField("to", to).
		WithField("subject", subject).
		Infof("email mock: %s", body)
	return nil
}
