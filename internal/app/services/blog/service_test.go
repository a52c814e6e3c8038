package blog

import (
	"context"
	"errors"
	"testing"

	domain "github.com/pabakn/Astro-Destiny/internal/app/domain/blog"
	"github.com/pabakn/Astro-Destiny/internal/app/storage"
	"github.com/pabakn/Astro-Destiny/internal/app/storage/memory"
)

func TestSeedDefaults(t *testing.T) {
	svc := New(memory.New(), nil)
	ctx := context.Background()

	if err := svc.SeedDefaults(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	posts, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 seeded posts, got %d", len(posts))
	}
	if posts[0].Title != "The Moon's Influence on Emotions" {
		t.Fatalf("unexpected first post: %q", posts[0].Title)
	}

	// Seeding again must be a no-op.
	if err := svc.SeedDefaults(ctx); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	posts, err = svc.List(ctx)
	if err != nil {
		t.Fatalf("list after reseed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("reseed must not duplicate, got %d posts", len(posts))
	}
}

func TestGetNotFound(t *testing.T) {
	svc := New(memory.New(), nil)

	if _, err := svc.Get(context.Background(), 99999); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateValidates(t *testing.T) {
	svc := New(memory.New(), nil)

	_, err := svc.Create(context.Background(), domain.Insert{Content: "c", Excerpt: "e"})
	if err == nil || err.Error() != "title is required" {
		t.Fatalf("expected title validation error, got %v", err)
	}

	post, err := svc.Create(context.Background(), domain.Insert{Title: "t", Content: "c", Excerpt: "e"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if post.ID == 0 || post.CreatedAt.IsZero() {
		t.Fatalf("expected assigned id and timestamp, got %+v", post)
	}
}
