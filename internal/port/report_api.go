package port

import (
	"context"

	"invoicedesk/internal/domain"
)

// ReportAPI is the outbound contract for the /reports resource.
type ReportAPI interface {
	ReportSummary(ctx context.Context) (*domain.ReportSummary, error)
	ReportPDF(ctx context.Context) ([]byte, error)
}

// HealthAPI probes backend liveness. Consulted before PDF requests so a
// dead backend produces a clearer message than a raw transport error.
type HealthAPI interface {
	Health(ctx context.Context) (*domain.HealthStatus, error)
}
