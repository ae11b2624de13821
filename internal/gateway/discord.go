package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Config holds configuration for the discordgo backed gateway
type Config struct {
	Session *discordgo.Session
	Logger  *zap.Logger
}

type discordGateway struct {
	session *discordgo.Session
	log     *zap.Logger
}

// NewDiscord wraps a discordgo session
func NewDiscord(cfg *Config) (*discordGateway, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &discordGateway{
		session: cfg.Session,
		log:     log.Named("gateway"),
	}, nil
}

func (g *discordGateway) BotUserID() string {
	if g.session.State == nil || g.session.State.User == nil {
		return ""
	}
	return g.session.State.User.ID
}

func (g *discordGateway) Guild(ctx context.Context, guildID string) (*discordgo.Guild, error) {
	if guild, err := g.session.State.Guild(guildID); err == nil && len(guild.Roles) > 0 {
		return guild, nil
	}
	return g.session.Guild(guildID, discordgo.WithContext(ctx))
}

func (g *discordGateway) Member(ctx context.Context, guildID, userID string) (*discordgo.Member, error) {
	if member, err := g.session.State.Member(guildID, userID); err == nil {
		return member, nil
	}
	return g.session.GuildMember(guildID, userID, discordgo.WithContext(ctx))
}

func (g *discordGateway) Message(ctx context.Context, channelID, messageID string) (*discordgo.Message, error) {
	return g.session.ChannelMessage(channelID, messageID, discordgo.WithContext(ctx))
}

func (g *discordGateway) SendMessage(ctx context.Context, channelID string, msg *discordgo.MessageSend) (*discordgo.Message, error) {
	return g.session.ChannelMessageSendComplex(channelID, msg, discordgo.WithContext(ctx))
}

func (g *discordGateway) EditMessage(ctx context.Context, edit *discordgo.MessageEdit) (*discordgo.Message, error) {
	return g.session.ChannelMessageEditComplex(edit, discordgo.WithContext(ctx))
}

func (g *discordGateway) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	return g.session.ChannelMessageDelete(channelID, messageID, discordgo.WithContext(ctx))
}

func (g *discordGateway) DeleteMessageAfter(channelID, messageID string, after time.Duration) {
	time.AfterFunc(after, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := g.DeleteMessage(ctx, channelID, messageID); err != nil && !IsNotFound(err) {
			g.log.Warn("failed to delete message",
				zap.String("channel_id", channelID),
				zap.String("message_id", messageID),
				zap.Error(err))
		}
	})
}

func (g *discordGateway) SetNickname(ctx context.Context, guildID, userID, nick string) error {
	return g.session.GuildMemberNickname(guildID, userID, nick, discordgo.WithContext(ctx))
}

func (g *discordGateway) AddRole(ctx context.Context, guildID, userID, roleID string) error {
	return g.session.GuildMemberRoleAdd(guildID, userID, roleID, discordgo.WithContext(ctx))
}

func (g *discordGateway) RemoveRole(ctx context.Context, guildID, userID, roleID string) error {
	return g.session.GuildMemberRoleRemove(guildID, userID, roleID, discordgo.WithContext(ctx))
}

func (g *discordGateway) EditRoleColour(ctx context.Context, guildID, roleID string, colour int) error {
	_, err := g.session.GuildRoleEdit(guildID, roleID, &discordgo.RoleParams{Color: &colour}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to edit role colour: %w", err)
	}
	return nil
}

func (g *discordGateway) AddReaction(ctx context.Context, channelID, messageID, emoji string) error {
	return g.session.MessageReactionAdd(channelID, messageID, emoji, discordgo.WithContext(ctx))
}
