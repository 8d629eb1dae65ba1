package gateway

import (
	"context"
	"fmt"
	"net/http"

	"invoicedesk/internal/domain"
)

// ReportSummary fetches the precomputed aggregate report. The backend
// wraps it in a {success, data} envelope; a success=false body at 200
// is still treated as a failure.
func (g *Gateway) ReportSummary(ctx context.Context) (*domain.ReportSummary, error) {
	var envelope struct {
		Success bool                 `json:"success"`
		Data    domain.ReportSummary `json:"data"`
		Error   string               `json:"error"`
	}
	if err := g.call(ctx, http.MethodGet, "/reports/summary", nil, &envelope); err != nil {
		return nil, fmt.Errorf("fetching report summary: %w", err)
	}
	if !envelope.Success {
		return nil, domain.NewAPIError(http.StatusOK, envelope.Error)
	}
	return &envelope.Data, nil
}

// ReportPDF fetches the server-rendered report PDF.
func (g *Gateway) ReportPDF(ctx context.Context) ([]byte, error) {
	return g.download(ctx, "/reports/pdf")
}

// Health probes backend liveness.
func (g *Gateway) Health(ctx context.Context) (*domain.HealthStatus, error) {
	var status domain.HealthStatus
	if err := g.call(ctx, http.MethodGet, "/health", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
