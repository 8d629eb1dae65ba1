package controller

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"invoicedesk/internal/domain"
	"invoicedesk/internal/logger"
	"invoicedesk/internal/notify"
	"invoicedesk/internal/port"
)

// ReportController fetches the read-only report summary and triggers
// server-rendered PDF downloads. The summary is never mutated here.
type ReportController struct {
	api      port.ReportAPI
	health   port.HealthAPI
	notifier *notify.Notifier
	log      zerolog.Logger

	summary   domain.ReportSummary
	lastError string
	exportDir string
}

// NewReportController creates a controller with an all-zero summary.
func NewReportController(api port.ReportAPI, health port.HealthAPI, notifier *notify.Notifier, exportDir string) *ReportController {
	return &ReportController{
		api:       api,
		health:    health,
		notifier:  notifier,
		log:       logger.WithComponent("reports"),
		exportDir: exportDir,
	}
}

// Load fetches the summary document. On failure the controller keeps an
// all-zero summary so the view never renders missing data, while the
// error message is surfaced.
func (c *ReportController) Load(ctx context.Context) error {
	summary, err := c.api.ReportSummary(ctx)
	if err != nil {
		c.summary = domain.ReportSummary{}
		c.lastError = err.Error()
		c.notifier.Error(err.Error())
		return err
	}
	c.summary = *summary
	c.lastError = ""
	return nil
}

// Summary returns the current summary; all-zero until a successful Load.
func (c *ReportController) Summary() domain.ReportSummary {
	return c.summary
}

// LastError returns the message of the most recent failed Load, or "".
func (c *ReportController) LastError() string {
	return c.lastError
}

// DownloadPDF fetches the report PDF and writes it to the export
// directory with a date-stamped name, returning the file path.
func (c *ReportController) DownloadPDF(ctx context.Context) (string, error) {
	if _, err := c.health.Health(ctx); err != nil {
		err = fmt.Errorf("cannot download report: %w", err)
		c.notifier.Error(err.Error())
		return "", err
	}
	data, err := c.api.ReportPDF(ctx)
	if err != nil {
		c.notifier.Error(err.Error())
		return "", err
	}
	path := filepath.Join(c.exportDir, fmt.Sprintf("invoice-report-%s.pdf", datestamp(time.Now())))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		c.notifier.Error(err.Error())
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	c.notifier.Success("saved " + path)
	return path, nil
}
