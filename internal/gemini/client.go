// Package gemini is a minimal client for the Gemini generateContent
// REST endpoint.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	apierrors "github.com/lepinkainen/crux/internal/errors"
)

// Package-level variables for the Gemini API client
// These can be overridden in tests for dependency injection
var (
	geminiHTTPClient    *http.Client
	geminiClientOnce    sync.Once
	geminiHTTPClientNew = func() *http.Client {
		return &http.Client{Timeout: 60 * time.Second}
	}
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
)

// SetBaseURL overrides the API base URL, for configs pointing at a proxy
// or a regional endpoint. Empty input keeps the current value.
func SetBaseURL(baseURL string) {
	if baseURL != "" {
		geminiBaseURL = baseURL
	}
}

// getGeminiHTTPClient returns a singleton HTTP client for the Gemini API
func getGeminiHTTPClient() *http.Client {
	geminiClientOnce.Do(func() {
		geminiHTTPClient = geminiHTTPClientNew()
	})
	return geminiHTTPClient
}

// Request is the generateContent request body.
type Request struct {
	Contents []Content `json:"contents"`
}

// Content is a single turn of conversation content.
type Content struct {
	Parts []Part `json:"parts"`
}

// Part is one piece of content, text only for our purposes.
type Part struct {
	Text string `json:"text"`
}

// Response is the generateContent response body.
type Response struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate is one generated completion.
type Candidate struct {
	Content Content `json:"content"`
}

// NewRequest wraps a prompt string in the request envelope the API expects.
func NewRequest(prompt string) Request {
	return Request{
		Contents: []Content{
			{Parts: []Part{{Text: prompt}}},
		},
	}
}

// FirstText returns the text of the first candidate's first part.
// Returns a MalformedResponseError naming the missing field when the
// response doesn't have the expected shape.
func (r *Response) FirstText() (string, error) {
	if len(r.Candidates) == 0 {
		return "", apierrors.NewMalformedResponseError("candidates")
	}
	if len(r.Candidates[0].Content.Parts) == 0 {
		return "", apierrors.NewMalformedResponseError("candidates[0].content.parts")
	}
	return r.Candidates[0].Content.Parts[0].Text, nil
}

// Client calls the Gemini generateContent endpoint for a fixed model.
type Client struct {
	model  string
	apiKey string
}

// NewClient creates a Gemini client for the given model and API key.
func NewClient(model, apiKey string) *Client {
	return &Client{model: model, apiKey: apiKey}
}

// Generate sends the request to the generateContent endpoint and decodes
// the response. Transport failures and non-2xx statuses come back as
// UpstreamError; an undecodable body comes back as MalformedResponseError.
func (c *Client) Generate(ctx context.Context, request Request) (*Response, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("gemini API key is not configured")
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", geminiBaseURL, c.model, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	slog.Debug("Calling Gemini API", "model", c.model)

	resp, err := getGeminiHTTPClient().Do(req)
	if err != nil {
		return nil, apierrors.NewUpstreamTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apierrors.NewUpstreamStatusError(resp.StatusCode)
	}

	var result Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, apierrors.NewMalformedResponseError("response body")
	}

	return &result, nil
}
