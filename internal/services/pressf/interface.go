package pressf

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/noobcogs/internal/services/pressf Service

// Service runs press F prompts, one per channel at a time
type Service interface {
	// Start posts a prompt in a channel
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)

	// Press pays respects once per member
	Press(ctx context.Context, input *PressInput) (*PressOutput, error)

	// Expire closes a prompt and posts the summary
	Expire(ctx context.Context, sessionID string) error

	// GetSettings returns the guild's settings
	GetSettings(ctx context.Context, input *GetSettingsInput) (*GetSettingsOutput, error)

	// SetEmoji changes the button emoji; empty restores the default
	SetEmoji(ctx context.Context, input *SetEmojiInput) error

	// SetButtonColour changes the button colour; empty restores the default
	SetButtonColour(ctx context.Context, input *SetButtonColourInput) error

	// Reset drops the guild's settings
	Reset(ctx context.Context, input *ResetInput) error

	// ResetCog drops every guild's settings
	ResetCog(ctx context.Context) error

	// Shutdown stops pending prompt timeouts
	Shutdown()
}
