package donation

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/noobcogs/internal/services/donation Service

// Service tracks member donations per bank and grants roles at thresholds
type Service interface {
	// Setup configures a guild once; Reset allows running it again
	Setup(ctx context.Context, input *SetupInput) (*SetupOutput, error)

	// GetSettings returns the guild's configuration
	GetSettings(ctx context.Context, input *GetSettingsInput) (*GetSettingsOutput, error)

	// SetLogChannel changes where balance changes are logged
	SetLogChannel(ctx context.Context, input *SetLogChannelInput) error

	// AddManagerRole and RemoveManagerRole edit the manager roles
	AddManagerRole(ctx context.Context, input *ManagerRoleInput) error
	RemoveManagerRole(ctx context.Context, input *ManagerRoleInput) error

	// Bank management
	BankAdd(ctx context.Context, input *BankAddInput) (*BankOutput, error)
	BankRemove(ctx context.Context, input *BankRemoveInput) error
	BankHidden(ctx context.Context, input *BankHiddenInput) (*BankOutput, error)
	BankMultiplier(ctx context.Context, input *BankMultiplierInput) (*BankOutput, error)
	BankEmoji(ctx context.Context, input *BankEmojiInput) (*BankOutput, error)
	BankRolesAdd(ctx context.Context, input *BankRolesInput) (*BankOutput, error)
	BankRolesRemove(ctx context.Context, input *BankRolesInput) (*BankOutput, error)

	// Add records a donation
	Add(ctx context.Context, input *ChangeInput) (*ChangeOutput, error)

	// Remove takes an amount off a member's balance
	Remove(ctx context.Context, input *ChangeInput) (*ChangeOutput, error)

	// Set overwrites a member's balance
	Set(ctx context.Context, input *ChangeInput) (*ChangeOutput, error)

	// Balance shows a member's balances
	Balance(ctx context.Context, input *BalanceInput) (*BalanceOutput, error)

	// Check lists donators above or below an amount
	Check(ctx context.Context, input *CheckInput) (*CheckOutput, error)

	// Leaderboard ranks a bank's donators
	Leaderboard(ctx context.Context, input *LeaderboardInput) (*LeaderboardOutput, error)

	// ResetUser drops a member's balances
	ResetUser(ctx context.Context, input *ResetUserInput) error

	// Reset drops every bank, balance and setting of the guild
	Reset(ctx context.Context, input *ResetInput) error
}
