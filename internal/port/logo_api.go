package port

import (
	"context"
	"io"

	"invoicedesk/internal/domain"
)

// LogoUploadInput encapsulates the parameters needed to upload a logo.
type LogoUploadInput struct {
	Filename string
	Body     io.Reader
	Size     int64
}

// LogoAPI is the outbound contract for the /logos resource.
type LogoAPI interface {
	UploadLogo(ctx context.Context, input LogoUploadInput) (*domain.Logo, error)
	DeleteLogo(ctx context.Context, filename string) error
	ListLogos(ctx context.Context) ([]domain.Logo, error)
}
