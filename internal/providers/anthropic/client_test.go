package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"outing-advisor/internal/types"
)

const testAPIKey = "sk-ant-test-key-1234"

func TestClient_SendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != messagesPath {
			t.Errorf("path = %s, want %s", r.URL.Path, messagesPath)
		}
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("x-api-key"); got != testAPIKey {
			t.Errorf("x-api-key = %q", got)
		}
		if got := r.Header.Get("anthropic-version"); got != defaultAPIVersion {
			t.Errorf("anthropic-version = %q, want %s", got, defaultAPIVersion)
		}

		var req MessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		if req.Model != "claude-3-5-sonnet-20240620" {
			t.Errorf("model = %q", req.Model)
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
			t.Errorf("messages = %+v", req.Messages)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_01",
			"type": "message",
			"role": "assistant",
			"content": [{"type": "text", "text": "Today looks like a good day to go."}],
			"model": "claude-3-5-sonnet-20240620",
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 120, "output_tokens": 45}
		}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(testAPIKey, server.URL, 5*time.Second)
	resp, err := client.SendMessage(context.Background(), &MessageRequest{
		Model:     "claude-3-5-sonnet-20240620",
		Messages:  []Message{{Role: "user", Content: "Should I go out today?"}},
		MaxTokens: 8192,
	})
	if err != nil {
		t.Fatalf("SendMessage() unexpected error: %v", err)
	}

	if len(resp.Content) != 1 || resp.Content[0].Type != "text" {
		t.Fatalf("content = %+v", resp.Content)
	}
	if resp.Content[0].Text != "Today looks like a good day to go." {
		t.Errorf("text = %q", resp.Content[0].Text)
	}
	if resp.Usage.OutputTokens != 45 {
		t.Errorf("output tokens = %d", resp.Usage.OutputTokens)
	}
}

func TestClient_SendMessage_AuthenticationError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{
			name:   "401 status",
			status: http.StatusUnauthorized,
			body:   `{"error": {"type": "authentication_error", "message": "invalid x-api-key"}}`,
		},
		{
			name:   "authentication_error type on other status",
			status: http.StatusForbidden,
			body:   `{"error": {"type": "authentication_error", "message": "key disabled"}}`,
		},
		{
			name:   "401 with empty body",
			status: http.StatusUnauthorized,
			body:   "",
		},
		{
			name:   "401 with non-JSON body",
			status: http.StatusUnauthorized,
			body:   "unauthorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClientWithBaseURL(testAPIKey, server.URL, 5*time.Second)
			_, err := client.SendMessage(context.Background(), &MessageRequest{
				Model:     "claude-3-5-sonnet-20240620",
				Messages:  []Message{{Role: "user", Content: "hi"}},
				MaxTokens: 8192,
			})
			if err == nil {
				t.Fatal("SendMessage() expected error")
			}

			var authErr *types.AuthenticationError
			if !errors.As(err, &authErr) {
				t.Fatalf("error = %T, want *types.AuthenticationError", err)
			}
			if authErr.Message == "" {
				t.Error("auth error has no message to show the caller")
			}
			if strings.Contains(err.Error(), testAPIKey) {
				t.Errorf("error text leaks the api key: %v", err)
			}
		})
	}
}

func TestClient_SendMessage_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"type": "rate_limit_error", "message": "slow down"}}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(testAPIKey, server.URL, 5*time.Second)
	_, err := client.SendMessage(context.Background(), &MessageRequest{
		Model:     "claude-3-5-sonnet-20240620",
		Messages:  []Message{{Role: "user", Content: "hi"}},
		MaxTokens: 8192,
	})
	if err == nil {
		t.Fatal("SendMessage() expected error")
	}

	var upstream *types.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("error = %T, want *types.UpstreamError", err)
	}
	if upstream.StatusCode != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", upstream.StatusCode)
	}
}

func TestClient_SendMessage_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // refuse all connections

	client := NewClientWithBaseURL(testAPIKey, server.URL, 2*time.Second)
	_, err := client.SendMessage(context.Background(), &MessageRequest{
		Model:     "claude-3-5-sonnet-20240620",
		Messages:  []Message{{Role: "user", Content: "hi"}},
		MaxTokens: 8192,
	})
	if err == nil {
		t.Fatal("SendMessage() expected error")
	}

	var upstream *types.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("error = %T, want *types.UpstreamError", err)
	}
	if strings.Contains(err.Error(), testAPIKey) {
		t.Errorf("error text leaks the api key: %v", err)
	}
}
