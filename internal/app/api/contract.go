// Package api declares the HTTP contract: one entry per operation, naming its
// method, path, input validator, and allowed response codes. Both the server
// handlers and the Go client are built from this table so the two sides cannot
// silently diverge in shape.
package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pabakn/Astro-Destiny/internal/app/domain/contact"
)

// Input is a request payload that can validate itself. Validate returns the
// first offending field's message and has no side effects.
type Input interface {
	Validate() error
}

// Route describes one operation in the public contract. Path uses gorilla/mux
// placeholder syntax.
type Route struct {
	Name      string
	Method    string
	Path      string
	NewInput  func() Input // nil for read-only operations
	Responses []int
}

// Allows reports whether the operation may answer with the given status code.
func (r Route) Allows(status int) bool {
	for _, code := range r.Responses {
		if code == status {
			return true
		}
	}
	return false
}

// ChatRequest is the body of chat.send.
type ChatRequest struct {
	Message string `json:"message"`
}

// Validate requires a non-empty message.
func (r ChatRequest) Validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}

// ChatResponse is the success body of chat.send.
type ChatResponse struct {
	Response string `json:"response"`
}

// Message is the acknowledgment and error body shape shared by all
// operations.
type Message struct {
	Message string `json:"message"`
}

var (
	// CreateContact accepts a contact form submission.
	CreateContact = Route{
		Name:      "contacts.create",
		Method:    http.MethodPost,
		Path:      "/api/contact",
		NewInput:  func() Input { return &contact.Insert{} },
		Responses: []int{http.StatusCreated, http.StatusBadRequest, http.StatusInternalServerError},
	}

	// ListPosts returns all blog posts in creation order.
	ListPosts = Route{
		Name:      "posts.list",
		Method:    http.MethodGet,
		Path:      "/api/posts",
		Responses: []int{http.StatusOK, http.StatusInternalServerError},
	}

	// GetPost returns one blog post by id.
	GetPost = Route{
		Name:      "posts.get",
		Method:    http.MethodGet,
		Path:      "/api/posts/{id}",
		Responses: []int{http.StatusOK, http.StatusNotFound, http.StatusInternalServerError},
	}

	// ListHoroscopes returns the current horoscope for every sign.
	ListHoroscopes = Route{
		Name:      "horoscopes.list",
		Method:    http.MethodGet,
		Path:      "/api/horoscopes",
		Responses: []int{http.StatusOK, http.StatusInternalServerError},
	}

	// SendChat relays one message to the completion provider.
	SendChat = Route{
		Name:      "chat.send",
		Method:    http.MethodPost,
		Path:      "/api/chat",
		NewInput:  func() Input { return &ChatRequest{} },
		Responses: []int{http.StatusOK, http.StatusBadRequest, http.StatusInternalServerError},
	}
)

// Routes lists every operation in the contract.
var Routes = []Route{CreateContact, ListPosts, GetPost, ListHoroscopes, SendChat}
