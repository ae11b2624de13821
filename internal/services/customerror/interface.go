package customerror

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/noobcogs/internal/services/customerror Service

// Service turns command failures into the owner-configured error message
type Service interface {
	// Report logs a failed command, remembers it and renders the reply
	Report(ctx context.Context, input *ReportInput) (*ReportOutput, error)

	// LastError returns the most recently reported failure
	LastError(ctx context.Context) (*LastErrorOutput, error)

	// SetMessage changes the template; empty restores the default
	SetMessage(ctx context.Context, input *SetMessageInput) error

	// GetSettings returns the template and a preview rendered against Preview
	GetSettings(ctx context.Context, input *GetSettingsInput) (*GetSettingsOutput, error)

	// Reset restores the default template
	Reset(ctx context.Context) error
}
