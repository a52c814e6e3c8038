// Package client provides a typed Go client for the Astro Destiny REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pabakn/Astro-Destiny/internal/app/api"
	"github.com/pabakn/Astro-Destiny/internal/app/domain/blog"
	"github.com/pabakn/Astro-Destiny/internal/app/domain/contact"
	"github.com/pabakn/Astro-Destiny/internal/app/domain/horoscope"
)

// Client talks to one Astro Destiny server. Safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Config configures the client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// New creates a client for the server at cfg.BaseURL.
func New(cfg Config) (*Client, error) {
	base := strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("base URL required")
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    base,
	}, nil
}

// SubmitContact validates the submission locally, then posts it. The returned
// string is the server's acknowledgement message.
func (c *Client) SubmitContact(ctx context.Context, in contact.Insert) (string, error) {
	if err := in.Validate(); err != nil {
		return "", err
	}
	resp, err := c.do(ctx, api.CreateContact.Method, api.CreateContact.Path, in)
	if err != nil {
		return "", err
	}
	var ack api.Message
	if err := decodeResponse(resp, &ack); err != nil {
		return "", err
	}
	return ack.Message, nil
}

// ListPosts returns all blog posts, oldest first.
func (c *Client) ListPosts(ctx context.Context) ([]blog.Post, error) {
	resp, err := c.do(ctx, api.ListPosts.Method, api.ListPosts.Path, nil)
	if err != nil {
		return nil, err
	}
	var posts []blog.Post
	if err := decodeResponse(resp, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost returns one blog post by id.
func (c *Client) GetPost(ctx context.Context, id int64) (blog.Post, error) {
	path := strings.Replace(api.GetPost.Path, "{id}", strconv.FormatInt(id, 10), 1)
	resp, err := c.do(ctx, api.GetPost.Method, path, nil)
	if err != nil {
		return blog.Post{}, err
	}
	var post blog.Post
	if err := decodeResponse(resp, &post); err != nil {
		return blog.Post{}, err
	}
	return post, nil
}

// ListHoroscopes returns the current prediction for every zodiac sign.
func (c *Client) ListHoroscopes(ctx context.Context) ([]horoscope.Horoscope, error) {
	resp, err := c.do(ctx, api.ListHoroscopes.Method, api.ListHoroscopes.Path, nil)
	if err != nil {
		return nil, err
	}
	var horoscopes []horoscope.Horoscope
	if err := decodeResponse(resp, &horoscopes); err != nil {
		return nil, err
	}
	return horoscopes, nil
}

// Chat relays one message to the assistant and returns its reply.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	in := api.ChatRequest{Message: message}
	if err := in.Validate(); err != nil {
		return "", err
	}
	resp, err := c.do(ctx, api.SendChat.Method, api.SendChat.Path, in)
	if err != nil {
		return "", err
	}
	var out api.ChatResponse
	if err := decodeResponse(resp, &out); err != nil {
		return "", err
	}
	return out.Response, nil
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

func decodeResponse(resp *http.Response, target interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr api.Message
		body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		if err != nil {
			return fmt.Errorf("read error response: %w", err)
		}
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("status %d: %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if target == nil {
		_, err := io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
