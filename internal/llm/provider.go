package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Provider is the boundary to a hosted language model.
type Provider interface {
	// Generate sends one request and returns the model output. When
	// req.Schema is set the output is JSON validated against it; otherwise
	// Content holds the raw reply text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System sets the model's role and output rules.
	System string

	// Messages is the conversation. Question generation and chat both send
	// a single user message; no history is carried between calls.
	Messages []Message

	// Schema requests structured JSON output when non-nil.
	Schema *Schema

	MaxTokens int

	// Temperature in [0,1]. Zero leaves the provider default.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema, kebab-case, e.g. "quiz-questions".
	// It is also the cache key for the compiled validator.
	Name string

	Description string

	// Definition is the JSON Schema document.
	Definition map[string]any
}

// Response holds the model output.
type Response struct {
	// Content is validated JSON for schema requests, raw text otherwise.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Text returns the response as plain text. A JSON string payload is
// unquoted; anything else is returned as-is.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	raw := strings.TrimSpace(string(r.Content))
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal([]byte(raw), &s); err == nil {
			return s
		}
	}
	return raw
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// complete builds the Response shared by every SDK backend. Truncated output
// becomes ErrMaxTokensExceeded; schema requests are unfenced and validated.
func complete(req Request, backend, text string, truncated bool, model string, usage Usage) (*Response, error) {
	text = strings.TrimSpace(text)
	content := json.RawMessage(text)
	if truncated {
		return nil, &ErrMaxTokensExceeded{Content: content}
	}
	if text == "" {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("empty %s response", backend)}
	}
	if req.Schema != nil {
		content = StripFences(content)
		if err := validateResponse(req.Schema, content); err != nil {
			return nil, err
		}
	}
	return &Response{Content: content, Usage: usage, Model: model, StopReason: "end"}, nil
}

// statusError classifies an HTTP failure from a provider API. Only 429 is a
// rate limit; anything else counts as the provider being unavailable.
func statusError(status int, err error) error {
	if status == http.StatusTooManyRequests {
		return &ErrRateLimit{Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}
