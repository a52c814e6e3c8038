// Package blog implements blog post reads and the startup seed.
package blog

import (
	"context"
	"fmt"

	domain "github.com/pabakn/Astro-Destiny/internal/app/domain/blog"
	"github.com/pabakn/Astro-Destiny/internal/app/storage"
	"github.com/pabakn/Astro-Destiny/internal/logging"
)

var seedPosts = []domain.Insert{
	{
		Title:   "The Moon's Influence on Emotions",
		Content: "The moon rules our emotional nature...",
		Excerpt: "Understanding your lunar sign.",
	},
	{
		Title:   "Mercury Retrograde Survival Guide",
		Content: "Don't panic! Here is how to survive...",
		Excerpt: "Tips for the retrograde season.",
	},
}

// Service exposes blog post operations.
type Service struct {
	store storage.BlogStore
	log   *logging.Logger
}

// New creates the blog service.
func New(store storage.BlogStore, log *logging.Logger) *Service {
	if log == nil {
		log = logging.NewDefault("blog")
	}
	return &Service{store: store, log: log}
}

// List returns all posts ordered by creation time ascending.
func (s *Service) List(ctx context.Context) ([]domain.Post, error) {
	return s.store.ListPosts(ctx)
}

// Get returns one post. Absence surfaces as storage.ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (domain.Post, error) {
	return s.store.GetPost(ctx, id)
}

// Create validates and persists a post.
func (s *Service) Create(ctx context.Context, in domain.Insert) (domain.Post, error) {
	if err := in.Validate(); err != nil {
		return domain.Post{}, err
	}
	post, err := s.store.CreatePost(ctx, in)
	if err != nil {
		return domain.Post{}, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// SeedDefaults inserts the default posts when the table is empty. Safe to
// call on every process start.
func (s *Service) SeedDefaults(ctx context.Context) error {
	count, err := s.store.CountPosts(ctx)
	if err != nil {
		return fmt.Errorf("count posts: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, in := range seedPosts {
		if _, err := s.store.CreatePost(ctx, in); err != nil {
			return fmt.Errorf("seed post %q: %w", in.Title, err)
		}
	}
	s.log.Infof("seeded %d blog posts", len(seedPosts))
	return nil
}
