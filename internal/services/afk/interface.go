package afk

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/noobcogs/internal/services/afk Service

// Service defines the interface for AFK operations
type Service interface {
	// StartAFK marks a member as away
	StartAFK(ctx context.Context, input *StartAFKInput) (*StartAFKOutput, error)

	// EndAFK clears a member's away status and hands back their ping log
	EndAFK(ctx context.Context, input *EndAFKInput) (*EndAFKOutput, error)

	// ForceAFK toggles another member's away status
	ForceAFK(ctx context.Context, input *ForceAFKInput) (*ForceAFKOutput, error)

	// HandleMessage welcomes back returning members and logs pings of away members
	HandleMessage(ctx context.Context, input *HandleMessageInput) (*HandleMessageOutput, error)

	// HandleMemberRemove forgets a member who left the guild
	HandleMemberRemove(ctx context.Context, input *MemberInput) error

	// ToggleSticky flips whether talking keeps the member away
	ToggleSticky(ctx context.Context, input *MemberInput) (bool, error)

	// ToggleLogs flips whether pings are logged for the member
	ToggleLogs(ctx context.Context, input *MemberInput) (bool, error)

	// ToggleNick flips whether away members get an [AFK] nickname
	ToggleNick(ctx context.Context, input *GuildInput) (bool, error)

	// SetDeleteAfter changes how long ping notices stay up
	SetDeleteAfter(ctx context.Context, input *SetDeleteAfterInput) error

	// GetSettings returns a member's status and the guild settings
	GetSettings(ctx context.Context, input *MemberInput) (*GetSettingsOutput, error)

	// ResetMember drops a member's AFK state and preferences
	ResetMember(ctx context.Context, input *MemberInput) error

	// ResetCog drops all AFK data
	ResetCog(ctx context.Context) error
}
