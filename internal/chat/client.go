package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/thefurer/PLdescubierto-chat/internal/models"
)

// APIClient talks to the chat endpoint. One instance is shared by the
// controller for the whole conversation.
type APIClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewAPIClient creates a client for the given server base URL. apiKey
// is the public low-privilege access key; empty disables the header.
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		// Cancellation is driven per call through the context; the
		// transport itself carries no extra deadline.
		httpClient: &http.Client{},
	}
}

// Send posts one message and returns the assistant reply.
func (c *APIClient) Send(ctx context.Context, message, sessionID string) (string, error) {
	body, err := json.Marshal(models.ChatRequest{
		Message:   message,
		SessionID: sessionID,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("server returned status %s", resp.Status)
	}

	var out models.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if out.Reply == "" {
		return "", fmt.Errorf("server returned an empty reply")
	}
	return out.Reply, nil
}

// isTimeout reports whether a send failure was caused by the
// cancellation deadline rather than some other network fault. The two
// get distinct user-facing wording.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
