package app

import (
	"context"
	"fmt"
	"time"

	"github.com/pabakn/Astro-Destiny/internal/app/services/blog"
	chatsvc "github.com/pabakn/Astro-Destiny/internal/app/services/chat"
	"github.com/pabakn/Astro-Destiny/internal/app/services/contacts"
	"github.com/pabakn/Astro-Destiny/internal/app/services/horoscopes"
	"github.com/pabakn/Astro-Destiny/internal/app/storage"
	"github.com/pabakn/Astro-Destiny/internal/app/storage/memory"
	"github.com/pabakn/Astro-Destiny/internal/app/system"
	"github.com/pabakn/Astro-Destiny/internal/logging"
	"github.com/pabakn/Astro-Destiny/internal/mailer"
)

// Stores encapsulates persistence dependencies. Nil stores default to the
// in-memory implementation.
type Stores struct {
	Contacts   storage.ContactStore
	Blog       storage.BlogStore
	Horoscopes storage.HoroscopeStore
}

// Options configures optional collaborators.
type Options struct {
	// Mailer handles the post-submission notification. Nil defaults to the
	// log-only mailer.
	Mailer mailer.Mailer

	// Chat is the relay behind POST /api/chat. Nil leaves the endpoint
	// answering with the generic failure message.
	Chat *chatsvc.Service

	// HoroscopeRefresh enables the daily prediction refresher when positive.
	HoroscopeRefresh RefreshConfig
}

// RefreshConfig controls the horoscope refresher.
type RefreshConfig struct {
	Interval  time.Duration
	Generator horoscopes.Generator
}

// Application ties the domain services together and manages their lifecycle.
type Application struct {
	manager *system.Manager
	log     *logging.Logger

	Contacts   *contacts.Service
	Blog       *blog.Service
	Horoscopes *horoscopes.Service
	Chat       *chatsvc.Service
}

// New builds a fully initialised application with the provided stores.
func New(stores Stores, log *logging.Logger, opts Options) (*Application, error) {
	if log == nil {
		log = logging.NewDefault("app")
	}

	mem := memory.New()
	if stores.Contacts == nil {
		stores.Contacts = mem
	}
	if stores.Blog == nil {
		stores.Blog = mem
	}
	if stores.Horoscopes == nil {
		stores.Horoscopes = mem
	}

	m := opts.Mailer
	if m == nil {
		m = mailer.NewLogMailer(log)
	}

	manager := system.NewManager()

	contactService := contacts.New(stores.Contacts, m, log)
	blogService := blog.New(stores.Blog, log)
	horoscopeService := horoscopes.New(stores.Horoscopes, log)

	if opts.HoroscopeRefresh.Interval > 0 {
		gen := opts.HoroscopeRefresh.Generator
		if gen == nil && opts.Chat != nil {
			gen = opts.Chat
		}
		refresher := horoscopes.NewRefresher(horoscopeService, gen, opts.HoroscopeRefresh.Interval, log)
		if err := manager.Register(refresher); err != nil {
			return nil, fmt.Errorf("register refresher: %w", err)
		}
	}

	return &Application{
		manager:    manager,
		log:        log,
		Contacts:   contactService,
		Blog:       blogService,
		Horoscopes: horoscopeService,
		Chat:       opts.Chat,
	}, nil
}

// Start seeds baseline data and starts background services.
func (a *Application) Start(ctx context.Context) error {
	if err := a.InitSeedData(ctx); err != nil {
		return err
	}
	return a.manager.Start(ctx)
}

// Stop shuts down background services.
func (a *Application) Stop(ctx context.Context) error {
	return a.manager.Stop(ctx)
}

// InitSeedData inserts the default posts and horoscopes when their tables are
// empty. Idempotent across restarts.
func (a *Application) InitSeedData(ctx context.Context) error {
	if err := a.Blog.SeedDefaults(ctx); err != nil {
		return fmt.Errorf("seed posts: %w", err)
	}
	if err := a.Horoscopes.SeedDefaults(ctx); err != nil {
		return fmt.Errorf("seed horoscopes: %w", err)
	}
	return nil
}
