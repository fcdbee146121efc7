package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	domainerrors "github.com/Tomas-vilte/SmartCommit/internal/domain/errors"
	"github.com/Tomas-vilte/SmartCommit/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, server *httptest.Server, timeout time.Duration) *Client {
	t.Helper()
	client, err := NewClient(Options{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Timeout: timeout,
	})
	require.NoError(t, err)
	return client
}

func basicRequest(stream bool) models.CompletionRequest {
	return models.CompletionRequest{
		Model: "gpt-4o-mini",
		Messages: []models.ChatMessage{
			{Role: models.RoleSystem, Content: "you write commit messages"},
			{Role: models.RoleUser, Content: "diff --git a/x b/x"},
		},
		Stream: stream,
	}
}

func TestClient_Complete(t *testing.T) {
	t.Run("parses a non-streaming response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req models.CompletionRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "gpt-4o-mini", req.Model)

			_, _ = w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"feat: add login","reasoning_content":"short"},"finish_reason":"stop"}]}`))
		}))
		defer server.Close()

		client := newTestClient(t, server, 5*time.Second)
		resp, err := client.Complete(context.Background(), basicRequest(false), nil)

		require.NoError(t, err)
		require.Len(t, resp.Choices, 1)
		assert.Equal(t, "feat: add login", resp.Choices[0].Content)
		assert.Equal(t, "short", resp.Choices[0].ReasoningContent)
		assert.Equal(t, "stop", resp.Choices[0].FinishReason)
	})

	t.Run("non-2xx status includes the raw body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
		}))
		defer server.Close()

		client := newTestClient(t, server, 5*time.Second)
		_, err := client.Complete(context.Background(), basicRequest(false), nil)

		var apiErr *domainerrors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		assert.Contains(t, apiErr.Error(), "invalid api key")
	})

	t.Run("zero choices is an api error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer server.Close()

		client := newTestClient(t, server, 5*time.Second)
		_, err := client.Complete(context.Background(), basicRequest(false), nil)

		var apiErr *domainerrors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Contains(t, apiErr.Error(), "no choices")
	})

	t.Run("malformed body is an api error with the raw body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>not json</html>`))
		}))
		defer server.Close()

		client := newTestClient(t, server, 5*time.Second)
		_, err := client.Complete(context.Background(), basicRequest(false), nil)

		var apiErr *domainerrors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "<html>not json</html>", apiErr.Body)
	})

	t.Run("slow server surfaces a timeout error", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer server.Close()
		defer close(release)

		client := newTestClient(t, server, 50*time.Millisecond)
		_, err := client.Complete(context.Background(), basicRequest(false), nil)

		var timeoutErr *domainerrors.TimeoutError
		require.ErrorAs(t, err, &timeoutErr)
		assert.Equal(t, 50*time.Millisecond, timeoutErr.Timeout)
	})

	t.Run("unreachable server surfaces a transport error naming the host", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		serverURL := server.URL
		server.Close()

		client, err := NewClient(Options{BaseURL: serverURL, APIKey: "test-key"})
		require.NoError(t, err)

		_, err = client.Complete(context.Background(), basicRequest(false), nil)

		var transportErr *domainerrors.TransportError
		require.ErrorAs(t, err, &transportErr)
		parsed, parseErr := url.Parse(serverURL)
		require.NoError(t, parseErr)
		assert.Equal(t, parsed.Host, transportErr.Host)
		assert.Contains(t, transportErr.Error(), parsed.Host)
	})

	t.Run("streaming emits live events and aggregates the result", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "text/event-stream", r.Header.Get("Accept"))

			w.Header().Set("Content-Type", "text/event-stream")
			_, _ = w.Write([]byte("data: {\"choices\":[{\"index\":0,\"delta\":{\"reasoning_content\":\"hmm \"}}]}\n\n"))
			_, _ = w.Write([]byte("data: {\"choices\":[{\"index\":0,\"delta\":{\"content\":\"feat: add login\"}}]}\n\n"))
			_, _ = w.Write([]byte("data: [DONE]\n\n"))
		}))
		defer server.Close()

		client := newTestClient(t, server, 5*time.Second)

		var events []models.StreamEvent
		resp, err := client.Complete(context.Background(), basicRequest(true), func(event models.StreamEvent) {
			events = append(events, event)
		})

		require.NoError(t, err)
		require.Len(t, resp.Choices, 1)
		assert.Equal(t, "feat: add login", resp.Choices[0].Content)
		assert.Equal(t, "hmm ", resp.Choices[0].ReasoningContent)

		require.Len(t, events, 2)
		assert.Equal(t, models.StreamReasoning, events[0].Kind)
		assert.Equal(t, models.StreamContent, events[1].Kind)
	})

	t.Run("rejects an invalid proxy URL", func(t *testing.T) {
		_, err := NewClient(Options{BaseURL: "https://api.openai.com/v1", Proxy: "://bad"})
		assert.Error(t, err)
	})

	t.Run("trailing slash in base URL is tolerated", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_, _ = w.Write([]byte(`{"choices":[{"index":0,"message":{"content":"ok"}}]}`))
		}))
		defer server.Close()

		client, err := NewClient(Options{BaseURL: server.URL + "/", APIKey: "k"})
		require.NoError(t, err)

		_, err = client.Complete(context.Background(), basicRequest(false), nil)
		require.NoError(t, err)
		assert.Equal(t, "/chat/completions", gotPath)
	})
}
