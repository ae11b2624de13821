package afk

import (
	"github.com/KirkDiggler/noobcogs/internal/common/clock"
	"github.com/KirkDiggler/noobcogs/internal/gateway"
	"github.com/KirkDiggler/noobcogs/internal/models"
	settingsRepo "github.com/KirkDiggler/noobcogs/internal/repositories/settings"
	"go.uber.org/zap"
)

const (
	// DefaultReason is used when a member gives none
	DefaultReason = "No reason given."

	// DefaultDeleteAfter is how long ping notices stay up, in seconds
	DefaultDeleteAfter = 10

	// MaxDeleteAfter is the longest allowed notice lifetime, in seconds
	MaxDeleteAfter = 120

	// NickPrefix marks away members
	NickPrefix = "[AFK] "

	// PingLogPageLength bounds one page of returned ping logs
	PingLogPageLength = 2000

	// MaxNickLength is Discord's nickname limit
	MaxNickLength = 32
)

// Config holds configuration for the AFK service
type Config struct {
	SettingsRepo settingsRepo.Repository
	Gateway      gateway.Gateway
	Clock        clock.Clock
	Logger       *zap.Logger
}

// MemberInput addresses one member of a guild
type MemberInput struct {
	GuildID string
	UserID  string
}

// GuildInput addresses a guild
type GuildInput struct {
	GuildID string
}

// StartAFKInput contains parameters for going away
type StartAFKInput struct {
	GuildID string
	UserID  string

	// Reason defaults to DefaultReason
	Reason string
}

// StartAFKOutput reports side effects of going away
type StartAFKOutput struct {
	// NickWarning is set when the nickname could not be changed
	NickWarning string
}

// EndAFKInput contains parameters for coming back
type EndAFKInput struct {
	GuildID string
	UserID  string
}

// EndAFKOutput contains the pings received while away
type EndAFKOutput struct {
	// Name is the member's user name, for the ping log title
	Name string

	// PingPages is empty when there were no pings or logging is off
	PingPages []string

	// NickWarning is set when the nickname could not be restored
	NickWarning string
}

// ForceAFKInput contains parameters for toggling another member
type ForceAFKInput struct {
	GuildID     string
	ModeratorID string
	TargetID    string
	Reason      string
}

// ForceAFKOutput reports which way the status was toggled
type ForceAFKOutput struct {
	// Added is true when the member is now away
	Added bool

	// Name is the target's user name
	Name string

	NickWarning string
	PingPages   []string
}

// Mention is a member mentioned in a message
type Mention struct {
	UserID string
	Bot    bool
}

// HandleMessageInput describes a created message
type HandleMessageInput struct {
	GuildID   string
	ChannelID string
	MessageID string
	AuthorID  string

	// AuthorName is the author's user name
	AuthorName string
	AuthorBot  bool
	WebhookID  string
	Content    string
	Mentions   []Mention
}

// PingNotice is shown in reply to a message that pinged an away member
type PingNotice struct {
	UserID string

	// Reason is the stored away message
	Reason string

	// DeleteAfter is in seconds; 0 keeps the notice
	DeleteAfter int
}

// HandleMessageOutput lists the replies a message warrants
type HandleMessageOutput struct {
	// WelcomeBack is set when the author's status was removed
	WelcomeBack string

	// Returned holds the author's ping log when WelcomeBack is set
	Returned *EndAFKOutput

	Notices []PingNotice
}

// SetDeleteAfterInput contains parameters for the notice lifetime
type SetDeleteAfterInput struct {
	GuildID string

	// Seconds of 0 disables auto deletion
	Seconds int
}

// GetSettingsOutput contains a member's status and the guild's settings
type GetSettingsOutput struct {
	Status   *models.AFKStatus
	Settings *models.AFKSettings
}
