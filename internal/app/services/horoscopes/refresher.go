package horoscopes

import (
	"context"
	"sync"
	"time"

	domain "github.com/pabakn/Astro-Destiny/internal/app/domain/horoscope"
	"github.com/pabakn/Astro-Destiny/internal/app/system"
	"github.com/pabakn/Astro-Destiny/internal/logging"
)

var _ system.Service = (*Refresher)(nil)

// Generator produces a fresh prediction for a sign.
type Generator interface {
	Generate(ctx context.Context, sign string) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, sign string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, sign string) (string, error) {
	return f(ctx, sign)
}

// TemplateGenerator returns the built-in templated predictions.
func TemplateGenerator() Generator {
	return GeneratorFunc(func(_ context.Context, sign string) (string, error) {
		return defaultPrediction(sign), nil
	})
}

// Refresher periodically re-generates every sign's prediction so the daily
// horoscope stays current.
type Refresher struct {
	service   *Service
	store     interface {
		SetPrediction(ctx context.Context, sign, prediction string, date time.Time) (domain.Horoscope, error)
	}
	generator Generator
	log       *logging.Logger
	interval  time.Duration

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
}

// NewRefresher creates a lifecycle-managed horoscope refresher.
func NewRefresher(service *Service, generator Generator, interval time.Duration, log *logging.Logger) *Refresher {
	if log == nil {
		log = logging.NewDefault("horoscope-refresher")
	}
	if generator == nil {
		generator = TemplateGenerator()
	}
	return &Refresher{
		service:   service,
		store:     service.store,
		generator: generator,
		log:       log,
		interval:  interval,
	}
}

func (r *Refresher) Name() string { return "horoscope-refresher" }

func (r *Refresher) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.running || r.interval <= 0 {
		r.mu.Unlock()
		return nil
	}
	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.running = true
	r.mu.Unlock()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-runCtx.Done():
				return
			case <-ticker.C:
				r.tick(runCtx)
			}
		}
	}()

	r.log.Info("horoscope refresher started")
	return nil
}

func (r *Refresher) Stop(ctx context.Context) error {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return nil
	}
	cancel := r.cancel
	r.running = false
	r.cancel = nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		r.wg.Wait()
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	r.log.Info("horoscope refresher stopped")
	return nil
}

func (r *Refresher) tick(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	now := time.Now().UTC()
	for _, sign := range domain.Signs {
		prediction, err := r.generator.Generate(ctx, sign)
		if err != nil {
			r.log.WithError(err).WithField("sign", sign).Warn("prediction generation failed")
			continue
		}
		if _, err := r.store.SetPrediction(ctx, sign, prediction, now); err != nil {
			r.log.WithError(err).WithField("sign", sign).Warn("prediction update failed")
		}
	}
}
