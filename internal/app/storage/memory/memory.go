package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pabakn/Astro-Destiny/internal/app/domain/blog"
	"github.com/pabakn/Astro-Destiny/internal/app/domain/contact"
	"github.com/pabakn/Astro-Destiny/internal/app/domain/horoscope"
	"github.com/pabakn/Astro-Destiny/internal/app/storage"
)

// Store is an in-memory implementation of the storage interfaces. It is safe
// for concurrent use and is primarily intended for tests and local development.
type Store struct {
	mu         sync.RWMutex
	nextID     int64
	contacts   []contact.Submission
	posts      []blog.Post
	horoscopes []horoscope.Horoscope
}

var _ storage.ContactStore = (*Store)(nil)
var _ storage.BlogStore = (*Store)(nil)
var _ storage.HoroscopeStore = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{nextID: 1}
}

func (s *Store) nextIDLocked() int64 {
	id := s.nextID
	s.nextID++
	return id
}

// ContactStore implementation -------------------------------------------------

func (s *Store) CreateContact(_ context.Context, in contact.Insert) (contact.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := contact.Submission{
		ID:        s.nextIDLocked(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Query:     in.Query,
		CreatedAt: time.Now().UTC(),
	}
	s.contacts = append(s.contacts, sub)
	return sub, nil
}

func (s *Store) ListContacts(_ context.Context) ([]contact.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]contact.Submission, len(s.contacts))
	copy(out, s.contacts)
	return out, nil
}

// BlogStore implementation ----------------------------------------------------

func (s *Store) CreatePost(_ context.Context, in blog.Insert) (blog.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := blog.Post{
		ID:        s.nextIDLocked(),
		Title:     in.Title,
		Content:   in.Content,
		Excerpt:   in.Excerpt,
		CreatedAt: time.Now().UTC(),
	}
	s.posts = append(s.posts, post)
	return post, nil
}

func (s *Store) GetPost(_ context.Context, id int64) (blog.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, post := range s.posts {
		if post.ID == id {
			return post, nil
		}
	}
	return blog.Post{}, storage.ErrNotFound
}

func (s *Store) ListPosts(_ context.Context) ([]blog.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Insertion order is creation order.
	out := make([]blog.Post, len(s.posts))
	copy(out, s.posts)
	return out, nil
}

func (s *Store) CountPosts(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts), nil
}

// HoroscopeStore implementation -----------------------------------------------

func (s *Store) CreateHoroscope(_ context.Context, in horoscope.Insert) (horoscope.Horoscope, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := horoscope.Horoscope{
		ID:         s.nextIDLocked(),
		Sign:       in.Sign,
		Prediction: in.Prediction,
		Date:       time.Now().UTC(),
	}
	s.horoscopes = append(s.horoscopes, h)
	return h, nil
}

func (s *Store) ListHoroscopes(_ context.Context) ([]horoscope.Horoscope, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]horoscope.Horoscope, len(s.horoscopes))
	copy(out, s.horoscopes)
	return out, nil
}

func (s *Store) CountHoroscopes(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.horoscopes), nil
}

func (s *Store) SetPrediction(_ context.Context, sign, prediction string, date time.Time) (horoscope.Horoscope, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.horoscopes {
		if s.horoscopes[i].Sign == sign {
			s.horoscopes[i].Prediction = prediction
			s.horoscopes[i].Date = date.UTC()
			return s.horoscopes[i], nil
		}
	}
	return horoscope.Horoscope{}, fmt.Errorf("horoscope for %s: %w", sign, storage.ErrNotFound)
}
