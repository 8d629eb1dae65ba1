package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"invoicedesk/internal/domain"
)

// ListInvoices fetches the full invoice collection.
func (g *Gateway) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	if err := g.call(ctx, http.MethodGet, "/invoices", nil, &invoices); err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	return invoices, nil
}

// CreateInvoice creates an invoice. Invoice number, total, status and
// amount_paid come back assigned by the server.
func (g *Gateway) CreateInvoice(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	var created domain.Invoice
	if err := g.call(ctx, http.MethodPost, "/invoices", inv, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateInvoice replaces an invoice and returns the server's copy.
func (g *Gateway) UpdateInvoice(ctx context.Context, id string, inv *domain.Invoice) (*domain.Invoice, error) {
	var updated domain.Invoice
	if err := g.call(ctx, http.MethodPut, "/invoices/"+url.PathEscape(id), inv, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteInvoice deletes an invoice by id.
func (g *Gateway) DeleteInvoice(ctx context.Context, id string) error {
	return g.call(ctx, http.MethodDelete, "/invoices/"+url.PathEscape(id), nil, nil)
}

// PayInvoice records a payment against an invoice. Amount sanity checks
// happen in the controller before this call is ever made.
func (g *Gateway) PayInvoice(ctx context.Context, id string, amount float64) (*domain.Invoice, error) {
	payload := map[string]float64{"amount": amount}
	var updated domain.Invoice
	if err := g.call(ctx, http.MethodPost, "/invoices/"+url.PathEscape(id)+"/pay", payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// InvoicePDF fetches the server-rendered PDF for an invoice.
func (g *Gateway) InvoicePDF(ctx context.Context, id string) ([]byte, error) {
	return g.download(ctx, "/invoices/"+url.PathEscape(id)+"/pdf")
}
