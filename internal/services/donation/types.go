package donation

import (
	"github.com/KirkDiggler/noobcogs/internal/common/clock"
	"github.com/KirkDiggler/noobcogs/internal/gateway"
	"github.com/KirkDiggler/noobcogs/internal/models"
	bankRepo "github.com/KirkDiggler/noobcogs/internal/repositories/bank"
	leaderboardRepo "github.com/KirkDiggler/noobcogs/internal/repositories/leaderboard"
	sessionRepo "github.com/KirkDiggler/noobcogs/internal/repositories/session"
	settingsRepo "github.com/KirkDiggler/noobcogs/internal/repositories/settings"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const (
	// DefaultEmoji prefixes amounts of banks created without one
	DefaultEmoji = "⏣"

	// MaxAmount is the largest amount a single add may record
	MaxAmount int64 = 999999999999999

	// DefaultLeaderboardSize is how many donators Leaderboard shows without a limit
	DefaultLeaderboardSize = 10
)

// CheckMode selects which donators Check lists
type CheckMode string

const (
	CheckMore CheckMode = "more"
	CheckLess CheckMode = "less"
	CheckAll  CheckMode = "all"
)

// Config holds configuration for the donation logger service
type Config struct {
	// Repository dependencies
	SettingsRepo    settingsRepo.Repository
	BankRepo        bankRepo.Repository
	LeaderboardRepo leaderboardRepo.Repository
	SessionRepo     sessionRepo.Repository

	// Gateway manages donation roles and posts to the log channel
	Gateway gateway.Gateway

	Clock  clock.Clock
	Logger *zap.Logger
}

// Actor is the member running a command
type Actor struct {
	UserID  string
	RoleIDs []string

	// ManageGuild is true when the member has the Manage Server permission
	ManageGuild bool
}

// BankSpec describes a bank to create
type BankSpec struct {
	Name  string
	Emoji string
}

// SetupInput contains parameters for setting up a guild
type SetupInput struct {
	GuildID        string
	Actor          Actor
	ManagerRoleIDs []string
	LogChannelID   string
	Banks          []BankSpec
}

// SetupOutput contains the created configuration
type SetupOutput struct {
	Settings *models.DonationSettings
	Banks    []*models.Bank
}

// GetSettingsInput contains parameters for reading a guild's configuration
type GetSettingsInput struct {
	GuildID string
	Actor   Actor
}

// GetSettingsOutput contains a guild's configuration
type GetSettingsOutput struct {
	Settings *models.DonationSettings
	Banks    []*models.Bank
}

// SetLogChannelInput contains parameters for changing the log channel
type SetLogChannelInput struct {
	GuildID string
	Actor   Actor

	// ChannelID empty disables logging
	ChannelID string
}

// ManagerRoleInput contains parameters for adding or removing a manager role
type ManagerRoleInput struct {
	GuildID string
	Actor   Actor
	RoleID  string
}

// BankAddInput contains parameters for creating a bank
type BankAddInput struct {
	GuildID string
	Actor   Actor
	Bank    BankSpec
}

// BankRemoveInput contains parameters for deleting a bank and its balances
type BankRemoveInput struct {
	GuildID string
	Actor   Actor
	Name    string
}

// BankHiddenInput contains parameters for hiding or showing a bank
type BankHiddenInput struct {
	GuildID string
	Actor   Actor
	Name    string
	Hidden  bool
}

// BankMultiplierInput contains parameters for changing a bank's multiplier
type BankMultiplierInput struct {
	GuildID string
	Actor   Actor
	Name    string

	// Multiplier 0 removes it
	Multiplier float64
}

// BankEmojiInput contains parameters for changing a bank's emoji
type BankEmojiInput struct {
	GuildID string
	Actor   Actor
	Name    string
	Emoji   string
}

// BankRolesInput contains parameters for changing the roles of a threshold
type BankRolesInput struct {
	GuildID   string
	Actor     Actor
	Name      string
	Threshold int64
	RoleIDs   []string
}

// BankOutput contains a bank after a change
type BankOutput struct {
	Bank *models.Bank
}

// ChangeInput contains parameters for adding, removing or setting a balance
type ChangeInput struct {
	GuildID   string
	ChannelID string
	Actor     Actor
	Bank      string
	MemberID  string
	Amount    int64
	Note      string

	// JumpURL links the log entry to the command message
	JumpURL string
}

// ChangeOutput contains the result of a balance change
type ChangeOutput struct {
	Bank     *models.Bank
	Amount   int64
	Previous int64
	Updated  int64

	// Roles are the role IDs granted or taken away
	Roles []string

	// Embed is the reply
	Embed *discordgo.MessageEmbed
}

// BalanceInput contains parameters for reading a member's balances
type BalanceInput struct {
	GuildID  string
	Actor    Actor
	MemberID string

	// Bank empty reads every visible bank
	Bank string
}

// BalanceOutput contains a member's balances
type BalanceOutput struct {
	Balances map[string]int64
	Embed    *discordgo.MessageEmbed
}

// CheckInput contains parameters for listing donators around an amount
type CheckInput struct {
	GuildID string
	Actor   Actor
	Bank    string
	Mode    CheckMode
	Amount  int64
}

// CheckOutput contains the pages of the listing
type CheckOutput struct {
	Entries []*models.LeaderboardEntry
	Pages   []*discordgo.MessageEmbed
}

// LeaderboardInput contains parameters for ranking a bank's donators
type LeaderboardInput struct {
	GuildID string
	Actor   Actor
	Bank    string
	Top     int

	// ShowLeftUsers keeps donators who left the guild
	ShowLeftUsers bool
}

// LeaderboardOutput contains the ranking
type LeaderboardOutput struct {
	Entries []*models.LeaderboardEntry
	Embed   *discordgo.MessageEmbed
}

// ResetUserInput contains parameters for dropping a member's balances
type ResetUserInput struct {
	GuildID  string
	Actor    Actor
	MemberID string

	// Bank empty resets every bank
	Bank string
}

// ResetInput contains parameters for dropping a guild's donation data
type ResetInput struct {
	GuildID string
	Actor   Actor
}
