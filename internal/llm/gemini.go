package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/thefurer/PLdescubierto-chat/internal/prompts"
)

// ErrorType categorizes model-client errors so every call site can
// match exhaustively on the closed set.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeRateLimited
	ErrTypeAuthFailure
	ErrTypeService
)

// ClientError represents an error from the Gemini client.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// Sentinel errors for easy checking with errors.Is.
var (
	ErrRateLimited = &ClientError{Type: ErrTypeRateLimited, Message: "model API rate limited"}
	ErrAuthFailure = &ClientError{Type: ErrTypeAuthFailure, Message: "model API rejected credentials"}
	ErrService     = &ClientError{Type: ErrTypeService, Message: "model API unavailable"}
)

// Is lets the sentinels above match wrapped ClientErrors by type.
func (e *ClientError) Is(target error) bool {
	var ce *ClientError
	if errors.As(target, &ce) {
		return e.Type == ce.Type
	}
	return false
}

// GeminiConfig holds configuration for the Gemini client.
type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	Params  GenerationParams
}

// DefaultGeminiConfig returns sensible defaults for the support bot.
func DefaultGeminiConfig(apiKey string) GeminiConfig {
	return GeminiConfig{
		APIKey:  apiKey,
		BaseURL: "https://generativelanguage.googleapis.com/v1beta",
		Model:   "gemini-2.0-flash",
		Timeout: 30 * time.Second,
		Params:  DefaultParams(),
	}
}

// GeminiClient implements Provider against the Gemini generateContent
// REST endpoint.
type GeminiClient struct {
	config     GeminiConfig
	httpClient *http.Client
}

// NewGeminiClient creates a client with custom config, filling defaults
// for zero values.
func NewGeminiClient(config GeminiConfig) *GeminiClient {
	if config.BaseURL == "" {
		config.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if config.Model == "" {
		config.Model = "gemini-2.0-flash"
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.Params == (GenerationParams{}) {
		config.Params = DefaultParams()
	}
	return &GeminiClient{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// Wire types for the generateContent call.

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	TopK            int     `json:"topK,omitempty"`
	TopP            float64 `json:"topP,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
			Role  string       `json:"role"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// Generate issues one generateContent call with the fixed generation
// parameters. Non-2xx statuses map onto the closed error set. A 2xx
// response without the expected nested text payload returns a generic
// "could not process" string instead of an error; this is the only
// place where raw text substitutes for a failure.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     c.config.Params.Temperature,
			TopK:            c.config.Params.TopK,
			TopP:            c.config.Params.TopP,
			MaxOutputTokens: c.config.Params.MaxOutputTokens,
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", &ClientError{Type: ErrTypeUnknown, Message: "failed to marshal request", Cause: err}
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.config.BaseURL, c.config.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", &ClientError{Type: ErrTypeService, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &ClientError{Type: ErrTypeService, Message: "model request failed", Cause: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", ErrRateLimited
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return "", ErrAuthFailure
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return "", &ClientError{
			Type:    ErrTypeService,
			Message: "model API returned status " + resp.Status,
		}
	}

	var result geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return prompts.CouldNotProcess, nil
	}

	text := firstText(result)
	if text == "" {
		return prompts.CouldNotProcess, nil
	}
	return text, nil
}

func firstText(resp geminiResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			return part.Text
		}
	}
	return ""
}
