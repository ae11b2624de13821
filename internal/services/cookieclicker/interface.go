package cookieclicker

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/noobcogs/internal/services/cookieclicker Service

// Service runs cookie clicker sessions and the guild leaderboards they feed
type Service interface {
	// Start posts a new clicker for a member
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)

	// Click counts one click on a session owned by the clicking member
	Click(ctx context.Context, input *ClickInput) (*ClickOutput, error)

	// Expire disables a session's button and forgets the session
	Expire(ctx context.Context, sessionID string) error

	// Leaderboard renders the guild ranking
	Leaderboard(ctx context.Context, input *LeaderboardInput) (*LeaderboardOutput, error)

	// ForgetMe removes a member from the guild ranking
	ForgetMe(ctx context.Context, input *ForgetMeInput) error

	// GetSettings returns the guild's settings
	GetSettings(ctx context.Context, input *GetSettingsInput) (*GetSettingsOutput, error)

	// SetEmoji changes the button emoji; empty restores the default
	SetEmoji(ctx context.Context, input *SetEmojiInput) error

	// SetButtonColour changes the button colour; empty restores the default
	SetButtonColour(ctx context.Context, input *SetButtonColourInput) error

	// Reset drops the guild's settings and ranking
	Reset(ctx context.Context, input *ResetInput) error

	// ResetCog drops every guild's settings and ranking
	ResetCog(ctx context.Context) error

	// Shutdown stops pending session timeouts
	Shutdown()
}
