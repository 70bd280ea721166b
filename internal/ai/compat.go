package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultCompatEndpoint = "https://generativelanguage.googleapis.com/v1beta/openai"
	defaultUserAgent      = "pigcat/0.1"
	defaultRequestTimeout = 30 * time.Second
)

// CompatClient talks to an OpenAI-compatible chat completions endpoint.
type CompatClient struct {
	baseURL   *url.URL
	http      *http.Client
	apiKey    string
	model     string
	userAgent string
}

var _ Generator = (*CompatClient)(nil)

// NewCompatClient builds a client for endpoint. An empty endpoint targets
// Gemini's OpenAI-compatible API.
func NewCompatClient(endpoint, apiKey, model string, timeout time.Duration) (*CompatClient, error) {
	base, err := parseBaseURL(endpoint)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &CompatClient{
		baseURL:   base,
		http:      &http.Client{Timeout: timeout},
		apiKey:    strings.TrimSpace(apiKey),
		model:     strings.TrimSpace(model),
		userAgent: defaultUserAgent,
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends req as a single chat completion.
func (c *CompatClient) Generate(ctx context.Context, req Request) (string, error) {
	if c == nil {
		return "", fmt.Errorf("client is nil")
	}
	if c.apiKey == "" {
		return "", fmt.Errorf("api key is empty")
	}

	messages := make([]chatMessage, 0, 2)
	if strings.TrimSpace(req.System) != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.System})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.Prompt})

	var payload chatResponse
	err := c.post(ctx, "chat/completions", chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}, &payload)
	if err != nil {
		return "", err
	}
	if payload.Error != nil && strings.TrimSpace(payload.Error.Message) != "" {
		return "", fmt.Errorf("openai-compatible error: %s", payload.Error.Message)
	}
	if len(payload.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return payload.Choices[0].Message.Content, nil
}

func (c *CompatClient) post(ctx context.Context, path string, body, dest any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	reqURL := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL.String(), bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("api %s returned status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// parseBaseURL normalises endpoint so chat/completions can be joined onto it.
// A bare host gets https and a /v1 path.
func parseBaseURL(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		trimmed = defaultCompatEndpoint
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse endpoint %q: missing host", endpoint)
	}
	path := strings.TrimRight(u.Path, "/")
	path = strings.TrimSuffix(path, "/chat/completions")
	if path == "" {
		path = "/v1"
	}
	u.Path = path
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
