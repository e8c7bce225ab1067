package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thefurer/PLdescubierto-chat/internal/prompts"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *GeminiClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewGeminiClient(GeminiConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "gemini-2.0-flash",
		Timeout: 5 * time.Second,
	})
}

const validBody = `{"candidates":[{"content":{"role":"model","parts":[{"text":"¡Bienvenido a Puerto López!"}]},"finishReason":"STOP"}]}`

func TestGenerateReturnsText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/gemini-2.0-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "hola", req.Contents[0].Parts[0].Text)

		// The generation parameters are fixed per call.
		assert.InDelta(t, 0.7, req.GenerationConfig.Temperature, 0.001)
		assert.Equal(t, 40, req.GenerationConfig.TopK)
		assert.InDelta(t, 0.95, req.GenerationConfig.TopP, 0.001)
		assert.Equal(t, 1024, req.GenerationConfig.MaxOutputTokens)

		_, _ = w.Write([]byte(validBody))
	})

	got, err := client.Generate(context.Background(), "hola")
	require.NoError(t, err)
	assert.Equal(t, "¡Bienvenido a Puerto López!", got)
}

func TestGenerateStatusCodeMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"rate limited", http.StatusTooManyRequests, ErrRateLimited},
		{"unauthorized", http.StatusUnauthorized, ErrAuthFailure},
		{"forbidden", http.StatusForbidden, ErrAuthFailure},
		{"server error", http.StatusInternalServerError, ErrService},
		{"bad gateway", http.StatusBadGateway, ErrService},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			})

			_, err := client.Generate(context.Background(), "hola")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// A 2xx body without the expected nested text payload substitutes the
// generic "could not process" string instead of raising.
func TestGenerateMalformedResponseSubstitutesText(t *testing.T) {
	bodies := []string{
		`{}`,
		`{"candidates":[]}`,
		`{"candidates":[{"content":{"parts":[]}}]}`,
		`not json at all`,
	}

	for _, body := range bodies {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		})

		got, err := client.Generate(context.Background(), "hola")
		require.NoError(t, err, "body %q", body)
		assert.Equal(t, prompts.CouldNotProcess, got, "body %q", body)
	}
}

func TestGenerateConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	client := NewGeminiClient(GeminiConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Timeout: time.Second,
	})

	_, err := client.Generate(context.Background(), "hola")
	require.Error(t, err)

	var ce *ClientError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ErrTypeService, ce.Type)
}
