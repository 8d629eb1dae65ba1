package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"invoicedesk/internal/domain"
	"invoicedesk/internal/port"
)

// MockLogoAPI is a mock implementation of port.LogoAPI.
type MockLogoAPI struct {
	mock.Mock
}

func (m *MockLogoAPI) UploadLogo(ctx context.Context, input port.LogoUploadInput) (*domain.Logo, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Logo), args.Error(1)
}

func (m *MockLogoAPI) DeleteLogo(ctx context.Context, filename string) error {
	args := m.Called(ctx, filename)
	return args.Error(0)
}

func (m *MockLogoAPI) ListLogos(ctx context.Context) ([]domain.Logo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Logo), args.Error(1)
}
