package controller_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"invoicedesk/internal/controller"
	"invoicedesk/internal/domain"
	"invoicedesk/internal/notify"
	"invoicedesk/mocks"
)

func TestReportController_Load_Success(t *testing.T) {
	api := new(mocks.MockReportAPI)
	ctl := controller.NewReportController(api, new(mocks.MockHealthAPI), notify.New(), t.TempDir())

	summary := &domain.ReportSummary{
		TotalInvoiced:    50000,
		TotalPaid:        30000,
		TotalOutstanding: 20000,
		InvoiceCount:     12,
		ClientCount:      4,
		StatusBreakdown:  domain.StatusBreakdown{Paid: 5, Partial: 3, Unpaid: 4},
		CollectionRate:   60,
	}
	api.On("ReportSummary", mock.Anything).Return(summary, nil)

	assert.NoError(t, ctl.Load(context.Background()))
	assert.Equal(t, *summary, ctl.Summary())
	assert.Empty(t, ctl.LastError())
}

func TestReportController_Load_FailureKeepsZeroSummary(t *testing.T) {
	api := new(mocks.MockReportAPI)
	notifier := notify.New()
	ctl := controller.NewReportController(api, new(mocks.MockHealthAPI), notifier, t.TempDir())

	api.On("ReportSummary", mock.Anything).Return(nil, domain.NewAPIError(500, "aggregation failed"))

	err := ctl.Load(context.Background())

	assert.Error(t, err)
	assert.Equal(t, domain.ReportSummary{}, ctl.Summary(), "summary stays all-zero on failure")
	assert.Equal(t, "aggregation failed", ctl.LastError())
	assert.Len(t, notifier.Active(), 1)
}

func TestReportController_Load_RecoversAfterFailure(t *testing.T) {
	api := new(mocks.MockReportAPI)
	ctl := controller.NewReportController(api, new(mocks.MockHealthAPI), notify.New(), t.TempDir())

	api.On("ReportSummary", mock.Anything).Return(nil, domain.ErrBackendUnreachable).Once()
	api.On("ReportSummary", mock.Anything).Return(&domain.ReportSummary{InvoiceCount: 3}, nil).Once()

	assert.Error(t, ctl.Load(context.Background()))
	assert.NoError(t, ctl.Load(context.Background()))
	assert.Equal(t, 3, ctl.Summary().InvoiceCount)
	assert.Empty(t, ctl.LastError())
}

func TestReportController_DownloadPDF_HealthProbeFails(t *testing.T) {
	api := new(mocks.MockReportAPI)
	health := new(mocks.MockHealthAPI)
	ctl := controller.NewReportController(api, health, notify.New(), t.TempDir())

	health.On("Health", mock.Anything).Return(nil, domain.ErrBackendUnreachable)

	_, err := ctl.DownloadPDF(context.Background())

	assert.ErrorIs(t, err, domain.ErrBackendUnreachable)
	assert.Contains(t, err.Error(), "cannot download report")
	api.AssertNotCalled(t, "ReportPDF", mock.Anything)
}

func TestReportController_DownloadPDF_WritesDatestampedFile(t *testing.T) {
	api := new(mocks.MockReportAPI)
	health := new(mocks.MockHealthAPI)
	dir := t.TempDir()
	ctl := controller.NewReportController(api, health, notify.New(), dir)

	health.On("Health", mock.Anything).Return(&domain.HealthStatus{Status: "healthy"}, nil)
	api.On("ReportPDF", mock.Anything).Return([]byte("%PDF report"), nil)

	path, err := ctl.DownloadPDF(context.Background())

	require.NoError(t, err)
	expected := filepath.Join(dir, fmt.Sprintf("invoice-report-%s.pdf", time.Now().Format("20060102")))
	assert.Equal(t, expected, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF report", string(data))
}
