// Package main runs the Astro Destiny API server: contact form, blog,
// daily horoscopes, and the astrology chat relay.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	app "github.com/pabakn/Astro-Destiny/internal/app"
	"github.com/pabakn/Astro-Destiny/internal/app/httpapi"
	chatsvc "github.com/pabakn/Astro-Destiny/internal/app/services/chat"
	"github.com/pabakn/Astro-Destiny/internal/app/services/horoscopes"
	"github.com/pabakn/Astro-Destiny/internal/app/storage/postgres"
	"github.com/pabakn/Astro-Destiny/internal/config"
	"github.com/pabakn/Astro-Destiny/internal/logging"
	"github.com/pabakn/Astro-Destiny/internal/mailer"
	"github.com/pabakn/Astro-Destiny/internal/middleware"
	"github.com/pabakn/Astro-Destiny/internal/platform/migrations"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.LoadFromPath(*configPath)
	if err != nil {
		logging.NewDefault("main").Fatalf("load config: %v", err)
	}

	log := logging.New(cfg.Logging, "main")
	if err := run(cfg, log); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func run(cfg *config.Config, log *logging.Logger) error {
	ctx := context.Background()

	stores := app.Stores{}
	if cfg.Database.DSN != "" {
		db, err := openDatabase(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := migrations.Apply(ctx, db); err != nil {
			return err
		}
		store := postgres.New(db)
		stores = app.Stores{Contacts: store, Blog: store, Horoscopes: store}
		log.Info("using postgres storage")
	} else {
		log.Warn("DATABASE_URL not set; using in-memory storage")
	}

	opts := app.Options{
		Mailer: mailer.NewLogMailer(logging.New(cfg.Logging, "mailer")),
		HoroscopeRefresh: app.RefreshConfig{
			Interval:  cfg.Horoscopes.RefreshInterval,
			Generator: horoscopes.TemplateGenerator(),
		},
	}

	var chatLimiter *middleware.RateLimiter
	if cfg.Chat.APIKey != "" {
		relay, err := chatsvc.New(chatsvc.Config{
			BaseURL: cfg.Chat.BaseURL,
			APIKey:  cfg.Chat.APIKey,
			Model:   cfg.Chat.Model,
			Timeout: cfg.Chat.Timeout,
		}, nil, logging.New(cfg.Logging, "chat"))
		if err != nil {
			return err
		}
		opts.Chat = relay
		opts.HoroscopeRefresh.Generator = relay
		chatLimiter = middleware.NewRateLimiter(cfg.Chat.RatePerSecond, cfg.Chat.Burst, logging.New(cfg.Logging, "ratelimit"))
	} else {
		log.Warn("chat API key not set; chat endpoint disabled")
	}

	application, err := app.New(stores, logging.New(cfg.Logging, "app"), opts)
	if err != nil {
		return err
	}
	if err := application.Start(ctx); err != nil {
		return err
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := application.Stop(stopCtx); err != nil {
			log.WithError(err).Error("application stop failed")
		}
	}()

	handler, err := httpapi.NewHandler(application, logging.New(cfg.Logging, "httpapi"), httpapi.Config{
		StaticDir:    cfg.Server.StaticDir,
		ChatLimiter:  chatLimiter,
		AuditLogPath: cfg.Server.AuditLogPath,
	})
	if err != nil {
		return err
	}

	cors := middleware.NewCORSMiddleware(cfg.Server.AllowedOrigins)
	tracing := middleware.NewTracingMiddleware(logging.New(cfg.Logging, "http"))

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      cors.Handler(tracing.Handler(handler)),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Infof("received %s, shutting down", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}

func openDatabase(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
