package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSendRelaysMessage(t *testing.T) {
	var captured completionRequest
	var authHeader string
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"The stars favor you."}}]}`))
	}))
	defer provider.Close()

	svc, err := New(Config{BaseURL: provider.URL, APIKey: "secret", Model: "gpt-4o"}, provider.Client(), nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	reply, err := svc.Send(context.Background(), "Am I lucky today?")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if reply != "The stars favor you." {
		t.Fatalf("unexpected reply: %q", reply)
	}
	if authHeader != "Bearer secret" {
		t.Fatalf("expected bearer auth, got %q", authHeader)
	}
	if captured.Model != "gpt-4o" {
		t.Fatalf("unexpected model: %q", captured.Model)
	}
	if len(captured.Messages) != 2 || captured.Messages[0].Role != "system" {
		t.Fatalf("expected system+user messages, got %+v", captured.Messages)
	}
	if captured.Messages[1].Role != "user" || captured.Messages[1].Content != "Am I lucky today?" {
		t.Fatalf("unexpected user message: %+v", captured.Messages[1])
	}
}

func TestSendFallbackOnEmptyChoices(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer provider.Close()

	svc, err := New(Config{BaseURL: provider.URL, Model: "gpt-4o"}, provider.Client(), nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	reply, err := svc.Send(context.Background(), "hello")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if reply != FallbackReply {
		t.Fatalf("expected fallback reply, got %q", reply)
	}
}

func TestSendProviderError(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer provider.Close()

	svc, err := New(Config{BaseURL: provider.URL, Model: "gpt-4o"}, provider.Client(), nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	if _, err := svc.Send(context.Background(), "hello"); err == nil {
		t.Fatal("expected error for non-200 provider status")
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(Config{Model: "gpt-4o"}, nil, nil); err == nil {
		t.Fatal("expected error for missing base URL")
	}
	if _, err := New(Config{BaseURL: "https://api.openai.com/v1"}, nil, nil); err == nil {
		t.Fatal("expected error for missing model")
	}
	svc, err := New(Config{BaseURL: "https://api.openai.com/v1/", Model: "gpt-4o"}, nil, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	if strings.HasSuffix(svc.baseURL.String(), "/") {
		t.Fatalf("expected trailing slash trimmed, got %q", svc.baseURL)
	}
}

func TestGenerateUsesSign(t *testing.T) {
	var captured completionRequest
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&captured)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"A bold day ahead."}}]}`))
	}))
	defer provider.Close()

	svc, err := New(Config{BaseURL: provider.URL, Model: "gpt-4o"}, provider.Client(), nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	prediction, err := svc.Generate(context.Background(), "Leo")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if prediction != "A bold day ahead." {
		t.Fatalf("unexpected prediction: %q", prediction)
	}
	if !strings.Contains(captured.Messages[1].Content, "Leo") {
		t.Fatalf("expected sign in prompt, got %q", captured.Messages[1].Content)
	}
}
