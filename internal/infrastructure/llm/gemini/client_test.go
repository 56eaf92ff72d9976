package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/your-org/pantry-backend/internal/config"
	"github.com/your-org/pantry-backend/internal/domain/suggestion"
	"github.com/your-org/pantry-backend/internal/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Suggestion: config.SuggestionConfig{
			APIKey:      "test-key",
			Model:       "gemini-test",
			Temperature: 0.2,
			Timeout:     time.Second,
			BaseURL:     server.URL + "/",
		},
	}

	client, err := NewClient(context.Background(), cfg, logger.Discard())
	require.NoError(t, err)
	return client
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(context.Background(), &config.Config{}, logger.Discard())
	assert.Error(t, err)
}

func TestClient_Generate(t *testing.T) {
	prompt := suggestion.Prompt{
		System: "You sort grocery items.",
		Text:   "Which category for bread?",
		Schema: &genai.Schema{Type: genai.TypeObject},
	}

	t.Run("ReturnsText", func(t *testing.T) {
		var body map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.True(t, strings.HasSuffix(r.URL.Path, "models/gemini-test:generateContent"), r.URL.Path)
			assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

			writeJSON(w, http.StatusOK, `{
				"candidates": [{"content": {"role": "model", "parts": [{"text": "{\"category\":\"Boulangerie\"}"}]}}],
				"usageMetadata": {"promptTokenCount": 12, "candidatesTokenCount": 5}
			}`)
		})

		text, err := client.Generate(context.Background(), prompt)
		require.NoError(t, err)
		assert.Equal(t, `{"category":"Boulangerie"}`, text)

		require.Contains(t, body, "generationConfig")
		genConfig, ok := body["generationConfig"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "application/json", genConfig["responseMimeType"])
		assert.Contains(t, genConfig, "responseSchema")
		assert.Contains(t, body, "systemInstruction")
		assert.Contains(t, body, "contents")
	})

	t.Run("EmptyResponse", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"candidates": []}`)
		})

		_, err := client.Generate(context.Background(), prompt)
		assert.ErrorIs(t, err, errEmptyResponse)
	})

	t.Run("EmptyParts", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"candidates": [{"content": {"role": "model", "parts": []}}]}`)
		})

		_, err := client.Generate(context.Background(), prompt)
		assert.ErrorIs(t, err, errEmptyResponse)
	})

	t.Run("APIErrorIsWrapped", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusTooManyRequests, `{"error": {"code": 429, "message": "quota exceeded", "status": "RESOURCE_EXHAUSTED"}}`)
		})

		_, err := client.Generate(context.Background(), prompt)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "GenAI generate failed")

		var apiErr genai.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusTooManyRequests, apiErr.Code)
		assert.Equal(t, "quota exceeded", apiErr.Message)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"candidates": []}`)
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.Generate(ctx, prompt)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
