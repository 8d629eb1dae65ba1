package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"invoicedesk/internal/domain"
)

// ListClients fetches the full client collection.
func (g *Gateway) ListClients(ctx context.Context) ([]domain.Client, error) {
	var clients []domain.Client
	if err := g.call(ctx, http.MethodGet, "/clients", nil, &clients); err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	return clients, nil
}

// GetClient fetches a single client by id.
func (g *Gateway) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	var client domain.Client
	if err := g.call(ctx, http.MethodGet, "/clients/"+url.PathEscape(id), nil, &client); err != nil {
		return nil, fmt.Errorf("fetching client %s: %w", id, err)
	}
	return &client, nil
}

// CreateClient creates a client and returns the server's copy.
func (g *Gateway) CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	var created domain.Client
	if err := g.call(ctx, http.MethodPost, "/clients", client, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateClient replaces a client record and returns the server's copy.
func (g *Gateway) UpdateClient(ctx context.Context, id string, client *domain.Client) (*domain.Client, error) {
	var updated domain.Client
	if err := g.call(ctx, http.MethodPut, "/clients/"+url.PathEscape(id), client, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteClient deletes a client. The backend refuses when the client
// still has invoices; that arrives here as a plain APIError.
func (g *Gateway) DeleteClient(ctx context.Context, id string) error {
	return g.call(ctx, http.MethodDelete, "/clients/"+url.PathEscape(id), nil, nil)
}
