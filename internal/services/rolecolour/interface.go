package rolecolour

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/noobcogs/internal/services/rolecolour Service

// Service recolours one role per guild on a schedule
type Service interface {
	// Run recolours every enabled guild's role each interval until ctx is done
	Run(ctx context.Context)

	// Cycle recolours every enabled guild's role once
	Cycle(ctx context.Context) error

	// SetRole picks the role to recolour; an empty role clears it
	SetRole(ctx context.Context, input *SetRoleInput) (*SetRoleOutput, error)

	// SetStatus enables or disables recolouring
	SetStatus(ctx context.Context, input *SetStatusInput) error

	// GetSettings returns the guild's settings with any warnings about them
	GetSettings(ctx context.Context, input *GetSettingsInput) (*GetSettingsOutput, error)

	// Reset drops the guild's settings
	Reset(ctx context.Context, input *ResetInput) error

	// ResetCog drops every guild's settings
	ResetCog(ctx context.Context) error
}
