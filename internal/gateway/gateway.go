// Package gateway is the only component that performs outbound HTTP
// calls. Every non-2xx response is normalized into a *domain.APIError
// and every transport-level failure into domain.ErrBackendUnreachable,
// so callers never see raw net/http errors.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"invoicedesk/internal/domain"
)

// Gateway wraps HTTP access to the invoice backend. It adds no retries
// and no timeout beyond the underlying client's; failures propagate
// immediately to the caller.
type Gateway struct {
	baseURL string
	http    *http.Client
}

// New creates a Gateway for the given base URL.
func New(baseURL string, client *http.Client) *Gateway {
	if client == nil {
		client = http.DefaultClient
	}
	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    client,
	}
}

// BaseURL returns the configured backend address.
func (g *Gateway) BaseURL() string {
	return g.baseURL
}

// call performs a JSON request. body is marshaled when non-nil; the
// response is decoded into out when out is non-nil.
func (g *Gateway) call(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w at %s: %v", domain.ErrBackendUnreachable, g.baseURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.NewAPIError(resp.StatusCode, extractErrorMessage(raw))
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// download performs a request whose success response is a binary blob.
func (g *Gateway) download(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w at %s: %v", domain.ErrBackendUnreachable, g.baseURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.NewAPIError(resp.StatusCode, extractErrorMessage(raw))
	}
	return raw, nil
}

func decodeJSON(raw []byte, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// extractErrorMessage pulls a human-readable message out of an error
// body. The backend answers either {"error": "..."} or a
// {"success": false, "error": "..."} envelope; anything else yields ""
// so NewAPIError falls back to the generic message.
func extractErrorMessage(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Error != "" {
		return body.Error
	}
	return body.Message
}
