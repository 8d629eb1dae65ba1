package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"invoicedesk/internal/domain"
	"invoicedesk/internal/port"
)

// UploadLogo sends a logo as a multipart form under the field name the
// backend expects. Extension and size are validated before any bytes
// leave the process.
func (g *Gateway) UploadLogo(ctx context.Context, input port.LogoUploadInput) (*domain.Logo, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Filename), "."))
	if _, ok := domain.AllowedLogoExtensions[ext]; !ok {
		return nil, domain.ErrUnsupportedLogoType
	}
	if input.Size > domain.MaxLogoSizeBytes {
		return nil, domain.ErrLogoTooLarge
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("logo", input.Filename)
	if err != nil {
		return nil, fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(part, input.Body); err != nil {
		return nil, fmt.Errorf("copying logo data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/logos/upload", &buf)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

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

	var envelope struct {
		Success bool        `json:"success"`
		Logo    domain.Logo `json:"logo"`
	}
	if err := decodeJSON(raw, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Logo, nil
}

// DeleteLogo removes an uploaded logo file. Independent of any invoice
// the logo was attached to at upload time.
func (g *Gateway) DeleteLogo(ctx context.Context, filename string) error {
	return g.call(ctx, http.MethodDelete, "/logos/"+url.PathEscape(filename), nil, nil)
}

// ListLogos fetches all uploaded logos.
func (g *Gateway) ListLogos(ctx context.Context) ([]domain.Logo, error) {
	var envelope struct {
		Success bool          `json:"success"`
		Logos   []domain.Logo `json:"logos"`
		Count   int           `json:"count"`
	}
	if err := g.call(ctx, http.MethodGet, "/logos", nil, &envelope); err != nil {
		return nil, fmt.Errorf("listing logos: %w", err)
	}
	return envelope.Logos, nil
}
