// Package chat relays a single user message to an OpenAI-compatible
// completion API. Every call is stateless; no conversation history is kept.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pabakn/Astro-Destiny/internal/logging"
)

const systemPrompt = "You are a helpful and mystical astrology assistant. Answer questions about zodiac signs, horoscopes, and the stars."

// FallbackReply is returned when the provider answers with no content.
const FallbackReply = "The stars are silent today."

// Config describes the completion provider endpoint.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Service is the chat relay. Safe for concurrent use.
type Service struct {
	client  *http.Client
	baseURL *url.URL
	apiKey  string
	model   string
	log     *logging.Logger
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
}

// New constructs the relay. BaseURL must point at the provider's API root
// (the path /chat/completions is appended per call).
func New(cfg Config, client *http.Client, log *logging.Logger) (*Service, error) {
	base := strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("chat base URL required")
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse chat base URL: %w", err)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("chat model required")
	}
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	if log == nil {
		log = logging.NewDefault("chat")
	}
	return &Service{
		client:  client,
		baseURL: parsed,
		apiKey:  strings.TrimSpace(cfg.APIKey),
		model:   cfg.Model,
		log:     log,
	}, nil
}

// Send submits the fixed system instruction plus the user message and returns
// the first completion's text. Provider failures are wrapped; callers surface
// only a generic message to clients.
func (s *Service) Send(ctx context.Context, userMessage string) (string, error) {
	payload := completionRequest{
		Model: s.model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL.String()+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion status %d", resp.StatusCode)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return FallbackReply, nil
	}
	return result.Choices[0].Message.Content, nil
}

// Generate produces a fresh daily prediction for a sign, letting the relay
// double as the horoscope refresher's generator.
func (s *Service) Generate(ctx context.Context, sign string) (string, error) {
	return s.Send(ctx, fmt.Sprintf("Write a short daily horoscope for %s.", sign))
}
