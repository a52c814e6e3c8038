package storage

import (
	"context"
	"errors"
	"time"

	"github.com/pabakn/Astro-Destiny/internal/app/domain/blog"
	"github.com/pabakn/Astro-Destiny/internal/app/domain/contact"
	"github.com/pabakn/Astro-Destiny/internal/app/domain/horoscope"
)

// ErrNotFound is returned when a requested row does not exist. Callers must
// distinguish it from infrastructure failures.
var ErrNotFound = errors.New("not found")

// ContactStore persists contact form submissions.
type ContactStore interface {
	CreateContact(ctx context.Context, in contact.Insert) (contact.Submission, error)
	ListContacts(ctx context.Context) ([]contact.Submission, error)
}

// BlogStore persists blog posts.
type BlogStore interface {
	CreatePost(ctx context.Context, in blog.Insert) (blog.Post, error)
	GetPost(ctx context.Context, id int64) (blog.Post, error)
	ListPosts(ctx context.Context) ([]blog.Post, error)
	CountPosts(ctx context.Context) (int, error)
}

// HoroscopeStore persists one horoscope per zodiac sign.
type HoroscopeStore interface {
	CreateHoroscope(ctx context.Context, in horoscope.Insert) (horoscope.Horoscope, error)
	ListHoroscopes(ctx context.Context) ([]horoscope.Horoscope, error)
	CountHoroscopes(ctx context.Context) (int, error)
	// SetPrediction replaces the prediction for a sign and re-stamps its date.
	// Only the daily refresher writes through this; no HTTP operation does.
	SetPrediction(ctx context.Context, sign, prediction string, date time.Time) (horoscope.Horoscope, error)
}
