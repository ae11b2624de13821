package timer

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/noobcogs/internal/services/timer Service

// Service defines the interface for timer operations
type Service interface {
	// CreateTimer posts a countdown message and stores its record
	CreateTimer(ctx context.Context, input *CreateTimerInput) (*CreateTimerOutput, error)

	// OptIn adds a member to the list notified when a timer ends
	OptIn(ctx context.Context, input *OptInInput) (*OptInOutput, error)

	// EndTimer ends a timer now, regardless of its deadline
	EndTimer(ctx context.Context, input *EndTimerInput) error

	// CancelTimer stops a timer without notifying anyone
	CancelTimer(ctx context.Context, input *CancelTimerInput) error

	// ListTimers returns a guild's active timers
	ListTimers(ctx context.Context, input *ListTimersInput) (*ListTimersOutput, error)

	// CheckExpired ends every timer whose deadline has passed
	CheckExpired(ctx context.Context) error

	// Run polls for expired timers until ctx is cancelled
	Run(ctx context.Context)

	// HandleMessageDelete drops records whose message was deleted
	HandleMessageDelete(ctx context.Context, input *HandleMessageDeleteInput) error

	// GetSettings returns the guild's timer settings
	GetSettings(ctx context.Context, input *GetSettingsInput) (*GetSettingsOutput, error)

	// SetButtonColour changes the started or ended button colour
	SetButtonColour(ctx context.Context, input *SetButtonColourInput) error

	// SetEmoji changes the notify button emoji
	SetEmoji(ctx context.Context, input *SetEmojiInput) error

	// ToggleNotify flips whether members can opt in to notifications
	ToggleNotify(ctx context.Context, input *ToggleNotifyInput) (*ToggleNotifyOutput, error)

	// SetMaxDuration changes the global maximum timer duration
	SetMaxDuration(ctx context.Context, input *SetMaxDurationInput) error

	// ResetGuild drops the guild's settings and timers
	ResetGuild(ctx context.Context, input *ResetGuildInput) error

	// ResetCog drops every setting and timer
	ResetCog(ctx context.Context) error
}
