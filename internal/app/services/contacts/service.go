// Package contacts implements the contact form business logic.
package contacts

import (
	"context"
	"fmt"

	"github.com/pabakn/Astro-Destiny/internal/app/domain/contact"
	"github.com/pabakn/Astro-Destiny/internal/app/metrics"
	"github.com/pabakn/Astro-Destiny/internal/app/storage"
	"github.com/pabakn/Astro-Destiny/internal/logging"
	"github.com/pabakn/Astro-Destiny/internal/mailer"
)

// Service persists contact submissions and fires the notification email.
type Service struct {
	store  storage.ContactStore
	mailer mailer.Mailer
	log    *logging.Logger
}

// New creates the contacts service. A nil mailer disables notifications.
func New(store storage.ContactStore, m mailer.Mailer, log *logging.Logger) *Service {
	if log == nil {
		log = logging.NewDefault("contacts")
	}
	return &Service{store: store, mailer: m, log: log}
}

// Create validates and persists a submission, then sends the notification
// email best-effort. Mail failure never fails the submission.
func (s *Service) Create(ctx context.Context, in contact.Insert) (contact.Submission, error) {
	if err := in.Validate(); err != nil {
		return contact.Submission{}, err
	}

	sub, err := s.store.CreateContact(ctx, in)
	if err != nil {
		return contact.Submission{}, fmt.Errorf("create contact: %w", err)
	}
	metrics.RecordContactSubmission()

	if s.mailer != nil {
		subject := "We received your query"
		body := fmt.Sprintf("Hi %s, thanks for reaching out about: %s", sub.Name, sub.Query)
		if err := s.mailer.Send(ctx, sub.Email, subject, body); err != nil {
			s.log.WithError(err).WithField("contact_id", sub.ID).Warn("contact notification failed")
		}
	}

	return sub, nil
}

// List returns all submissions in creation order.
func (s *Service) List(ctx context.Context) ([]contact.Submission, error) {
	return s.store.ListContacts(ctx)
}
