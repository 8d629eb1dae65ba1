package port

import (
	"context"

	"invoicedesk/internal/domain"
)

// ClientAPI is the outbound contract for the /clients resource.
type ClientAPI interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
	GetClient(ctx context.Context, id string) (*domain.Client, error)
	CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error)
	UpdateClient(ctx context.Context, id string, client *domain.Client) (*domain.Client, error)
	DeleteClient(ctx context.Context, id string) error
}
