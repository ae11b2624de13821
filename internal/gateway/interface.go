package gateway

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_gateway.go github.com/KirkDiggler/noobcogs/internal/gateway Gateway

// Gateway is the subset of the Discord REST API the services call
type Gateway interface {
	// BotUserID returns the ID of the bot's own user
	BotUserID() string

	// Guild fetches a guild, including its roles and emojis
	Guild(ctx context.Context, guildID string) (*discordgo.Guild, error)

	// Member fetches a guild member
	Member(ctx context.Context, guildID, userID string) (*discordgo.Member, error)

	// Message fetches a single message
	Message(ctx context.Context, channelID, messageID string) (*discordgo.Message, error)

	// SendMessage posts a message to a channel
	SendMessage(ctx context.Context, channelID string, msg *discordgo.MessageSend) (*discordgo.Message, error)

	// EditMessage edits an existing message
	EditMessage(ctx context.Context, edit *discordgo.MessageEdit) (*discordgo.Message, error)

	// DeleteMessage deletes a message
	DeleteMessage(ctx context.Context, channelID, messageID string) error

	// DeleteMessageAfter schedules a message deletion; failures are logged
	DeleteMessageAfter(channelID, messageID string, after time.Duration)

	// SetNickname changes a member's nickname; an empty nick resets it
	SetNickname(ctx context.Context, guildID, userID, nick string) error

	// AddRole grants a role to a member
	AddRole(ctx context.Context, guildID, userID, roleID string) error

	// RemoveRole takes a role away from a member
	RemoveRole(ctx context.Context, guildID, userID, roleID string) error

	// EditRoleColour recolours a role
	EditRoleColour(ctx context.Context, guildID, roleID string, colour int) error

	// AddReaction reacts to a message; emoji is unicode or name:id
	AddReaction(ctx context.Context, channelID, messageID, emoji string) error
}
