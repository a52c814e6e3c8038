package client

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	app "github.com/pabakn/Astro-Destiny/internal/app"
	"github.com/pabakn/Astro-Destiny/internal/app/domain/contact"
	"github.com/pabakn/Astro-Destiny/internal/app/httpapi"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	application, err := app.New(app.Stores{}, nil, app.Options{})
	if err != nil {
		t.Fatalf("new application: %v", err)
	}
	if err := application.Start(context.Background()); err != nil {
		t.Fatalf("start application: %v", err)
	}
	t.Cleanup(func() { _ = application.Stop(context.Background()) })

	handler, err := httpapi.NewHandler(application, nil, httpapi.Config{})
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestSubmitContact(t *testing.T) {
	server := newTestServer(t)
	c, err := New(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	ack, err := c.SubmitContact(context.Background(), contact.Insert{
		Name:  "Luna",
		Email: "luna@example.com",
		Phone: "555-0101",
		Query: "q",
	})
	if err != nil {
		t.Fatalf("submit contact: %v", err)
	}
	if ack != "Query received and email sent (mock)." {
		t.Fatalf("unexpected acknowledgement: %q", ack)
	}
}

func TestSubmitContactLocalValidation(t *testing.T) {
	c, err := New(Config{BaseURL: "http://localhost:1"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	// Invalid input never reaches the wire.
	_, err = c.SubmitContact(context.Background(), contact.Insert{Email: "a@b.c"})
	if err == nil || err.Error() != "name is required" {
		t.Fatalf("expected local validation error, got %v", err)
	}
}

func TestPostsAndHoroscopes(t *testing.T) {
	server := newTestServer(t)
	c, err := New(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	ctx := context.Background()

	posts, err := c.ListPosts(ctx)
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}

	post, err := c.GetPost(ctx, posts[0].ID)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if post.Title != posts[0].Title {
		t.Fatalf("mismatched post: %+v vs %+v", post, posts[0])
	}

	if _, err := c.GetPost(ctx, 99999); err == nil || !strings.Contains(err.Error(), "Post not found") {
		t.Fatalf("expected not-found error, got %v", err)
	}

	horoscopes, err := c.ListHoroscopes(ctx)
	if err != nil {
		t.Fatalf("list horoscopes: %v", err)
	}
	if len(horoscopes) != 12 {
		t.Fatalf("expected 12 horoscopes, got %d", len(horoscopes))
	}
}

func TestChatWithoutRelay(t *testing.T) {
	server := newTestServer(t)
	c, err := New(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if _, err := c.Chat(context.Background(), "hello"); err == nil {
		t.Fatal("expected error when no relay is configured")
	}
	if _, err := c.Chat(context.Background(), ""); err == nil || err.Error() != "message is required" {
		t.Fatalf("expected local validation error, got %v", err)
	}
}
