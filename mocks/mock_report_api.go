package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"invoicedesk/internal/domain"
)

// MockReportAPI is a mock implementation of port.ReportAPI.
type MockReportAPI struct {
	mock.Mock
}

func (m *MockReportAPI) ReportSummary(ctx context.Context) (*domain.ReportSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportSummary), args.Error(1)
}

func (m *MockReportAPI) ReportPDF(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockHealthAPI is a mock implementation of port.HealthAPI.
type MockHealthAPI struct {
	mock.Mock
}

func (m *MockHealthAPI) Health(ctx context.Context) (*domain.HealthStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HealthStatus), args.Error(1)
}
