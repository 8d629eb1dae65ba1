package port

import (
	"context"

	"invoicedesk/internal/domain"
)

// InvoiceAPI is the outbound contract for the /invoices resource.
type InvoiceAPI interface {
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
	CreateInvoice(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)
	UpdateInvoice(ctx context.Context, id string, inv *domain.Invoice) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, id string) error
	PayInvoice(ctx context.Context, id string, amount float64) (*domain.Invoice, error)
	InvoicePDF(ctx context.Context, id string) ([]byte, error)
}
