package autoreaction

import (
	"github.com/KirkDiggler/noobcogs/internal/gateway"
	settingsRepo "github.com/KirkDiggler/noobcogs/internal/repositories/settings"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Config holds configuration for the automatic reaction service
type Config struct {
	SettingsRepo settingsRepo.Repository
	Gateway      gateway.Gateway
	Logger       *zap.Logger
}

// GuildInput addresses a guild
type GuildInput struct {
	GuildID string
}

// AddInput contains parameters for adding a reaction
type AddInput struct {
	GuildID string
	Word    string

	// Emoji is unicode or a custom emoji like <:name:id>
	Emoji string
}

// RemoveInput contains parameters for removing a reaction
type RemoveInput struct {
	GuildID string
	Word    string
}

// HandleMessageInput describes a created message
type HandleMessageInput struct {
	GuildID   string
	ChannelID string
	MessageID string
	AuthorBot bool
	Content   string
}

// HandleEmojisUpdateInput carries a guild's emojis after an update
type HandleEmojisUpdateInput struct {
	GuildID string
	Emojis  []*discordgo.Emoji
}
