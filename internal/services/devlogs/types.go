package devlogs

import (
	"github.com/KirkDiggler/noobcogs/internal/common/clock"
	"github.com/KirkDiggler/noobcogs/internal/gateway"
	"github.com/KirkDiggler/noobcogs/internal/models"
	devlogRepo "github.com/KirkDiggler/noobcogs/internal/repositories/devlog"
	settingsRepo "github.com/KirkDiggler/noobcogs/internal/repositories/settings"
	"go.uber.org/zap"
)

// DefaultWatched are logged until an owner changes the list
var DefaultWatched = []string{"eval", "debug"}

// Config holds configuration for the devlogs service
type Config struct {
	// Repository dependencies
	SettingsRepo settingsRepo.Repository
	DevLogRepo   devlogRepo.Repository

	// Gateway posts log embeds
	Gateway gateway.Gateway

	// SystemInfo feeds Debug
	SystemInfo SystemInfo

	Clock  clock.Clock
	Logger *zap.Logger

	// OwnerIDs are the bot owners whose commands get logged
	OwnerIDs []string
}

// OnCommandCompleteInput describes a finished command
type OnCommandCompleteInput struct {
	// Command is the top-level command name
	Command string

	// Content is the command as typed, options included
	Content string

	AuthorID   string
	AuthorName string
	AuthorIcon string

	// GuildID is empty in DMs
	GuildID   string
	GuildName string

	ChannelID   string
	ChannelName string

	JumpURL string
}

// OnCommandCompleteOutput reports what happened to the command
type OnCommandCompleteOutput struct {
	// Logged is true when the command was archived
	Logged bool

	// Sent is true when the log embed reached the log channel
	Sent bool

	Entry *models.DevLogEntry
}

// SetChannelInput contains parameters for changing the log channel
type SetChannelInput struct {
	ChannelID string
}

// BypassInput addresses a user on the bypass list
type BypassInput struct {
	UserID string
}

// BypassListOutput contains the bypassed users
type BypassListOutput struct {
	UserIDs []string

	// Pages are embed descriptions
	Pages []string
}

// WatchInput addresses a watched command
type WatchInput struct {
	Command string
}

// HistoryInput contains parameters for reading the archive
type HistoryInput struct {
	Limit    int
	AuthorID string
}

// HistoryOutput contains archived entries, newest first
type HistoryOutput struct {
	Entries []*models.DevLogEntry

	// Pages are embed descriptions
	Pages []string
}

// GetSettingsOutput contains the devlogs settings
type GetSettingsOutput struct {
	Settings *models.DevLogSettings
}
