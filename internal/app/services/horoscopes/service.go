// Package horoscopes implements per-sign predictions: reads, the startup
// seed, and the optional daily refresher.
package horoscopes

import (
	"context"
	"fmt"

	domain "github.com/pabakn/Astro-Destiny/internal/app/domain/horoscope"
	"github.com/pabakn/Astro-Destiny/internal/app/storage"
	"github.com/pabakn/Astro-Destiny/internal/logging"
)

func defaultPrediction(sign string) string {
	return fmt.Sprintf("Today is a powerful day for %s. The stars align to bring you energy and clarity. Focus on your goals.", sign)
}

// Service exposes horoscope operations.
type Service struct {
	store storage.HoroscopeStore
	log   *logging.Logger
}

// New creates the horoscopes service.
func New(store storage.HoroscopeStore, log *logging.Logger) *Service {
	if log == nil {
		log = logging.NewDefault("horoscopes")
	}
	return &Service{store: store, log: log}
}

// List returns the current horoscope for every sign.
func (s *Service) List(ctx context.Context) ([]domain.Horoscope, error) {
	return s.store.ListHoroscopes(ctx)
}

// Create validates and persists a horoscope.
func (s *Service) Create(ctx context.Context, in domain.Insert) (domain.Horoscope, error) {
	if err := in.Validate(); err != nil {
		return domain.Horoscope{}, err
	}
	h, err := s.store.CreateHoroscope(ctx, in)
	if err != nil {
		return domain.Horoscope{}, fmt.Errorf("create horoscope: %w", err)
	}
	return h, nil
}

// SeedDefaults inserts one horoscope per zodiac sign when the table is
// empty. Safe to call on every process start.
func (s *Service) SeedDefaults(ctx context.Context) error {
	count, err := s.store.CountHoroscopes(ctx)
	if err != nil {
		return fmt.Errorf("count horoscopes: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, sign := range domain.Signs {
		in := domain.Insert{Sign: sign, Prediction: defaultPrediction(sign)}
		if _, err := s.store.CreateHoroscope(ctx, in); err != nil {
			return fmt.Errorf("seed horoscope %s: %w", sign, err)
		}
	}
	s.log.Infof("seeded %d horoscopes", len(domain.Signs))
	return nil
}
