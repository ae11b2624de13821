package discord

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/noobcogs/internal/gateway"
	"github.com/KirkDiggler/noobcogs/internal/services/autoreaction"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// AutoReactionCommand handles /autoreact and reacts to keyword messages
type AutoReactionCommand struct {
	reactionService autoreaction.Service
	logger          *zap.Logger
}

// NewAutoReactionCommand creates a new automatic reaction command handler
func NewAutoReactionCommand(reactionService autoreaction.Service, logger *zap.Logger) *AutoReactionCommand {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AutoReactionCommand{reactionService: reactionService, logger: logger}
}

func (c *AutoReactionCommand) Name() string {
	return "autoreaction"
}

func (c *AutoReactionCommand) Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:                     "autoreact",
			Description:              "React to messages containing a word",
			DefaultMemberPermissions: manageGuild(),
			DMPermission:             guildContext(),
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("add", "Add an automatic reaction",
					option(discordgo.ApplicationCommandOptionString, "word", "The word to react to", true),
					option(discordgo.ApplicationCommandOptionString, "emoji", "The emoji to react with", true),
				),
				subcommand("remove", "Remove an automatic reaction",
					option(discordgo.ApplicationCommandOptionString, "word", "The word", true),
				),
				subcommand("list", "List the automatic reactions of this server"),
				subcommand("clearremoved", "Remove reactions whose emoji was deleted"),
				subcommand("reset", "Remove every automatic reaction of this server"),
				subcommand("resetcog", "Remove every automatic reaction (bot owner)"),
			},
		},
	}
}

// HandleCommand processes an automatic reaction command
func (c *AutoReactionCommand) HandleCommand(ctx context.Context, r *Request) error {
	if err := guildOnly(r); err != nil {
		return err
	}

	guild := &autoreaction.GuildInput{GuildID: r.GuildID()}

	switch r.Sub() {
	case "add":
		reaction, err := c.reactionService.Add(ctx, &autoreaction.AddInput{
			GuildID: r.GuildID(),
			Word:    r.Options.String("word"),
			Emoji:   r.Options.String("emoji"),
		})
		if err != nil {
			return err
		}
		return r.Reply(ctx, &Reply{Content: fmt.Sprintf("Successfully Added %s automatic reaction for the word `%s`.",
			reaction.Emoji, reaction.Word)})
	case "remove":
		err := c.reactionService.Remove(ctx, &autoreaction.RemoveInput{GuildID: r.GuildID(), Word: r.Options.String("word")})
		if err != nil {
			return err
		}
		return r.Reply(ctx, &Reply{Content: "Successfully Removed automatic reaction for that word."})
	case "list":
		return c.handleList(ctx, r, guild)
	case "clearremoved":
		n, err := c.reactionService.ClearRemoved(ctx, guild)
		if err != nil {
			return err
		}
		return r.Reply(ctx, &Reply{Content: fmt.Sprintf("Removed %d automatic reactions with deleted emojis.", n)})
	case "reset":
		return r.Confirm(ctx, "Are you sure you want to remove every automatic reaction of this server?", func(ctx context.Context) (string, error) {
			if err := c.reactionService.ResetGuild(ctx, guild); err != nil {
				return "", err
			}
			return "Removed every automatic reaction of this server.", nil
		})
	case "resetcog":
		if err := ownerOnly(r); err != nil {
			return err
		}
		return r.Confirm(ctx, "Are you sure you want to remove every automatic reaction?", func(ctx context.Context) (string, error) {
			if err := c.reactionService.ResetCog(ctx); err != nil {
				return "", err
			}
			return "Removed every automatic reaction.", nil
		})
	}

	return ErrUnknownCommand
}

func (c *AutoReactionCommand) handleList(ctx context.Context, r *Request, guild *autoreaction.GuildInput) error {
	reactions, err := c.reactionService.List(ctx, guild)
	if err != nil {
		return err
	}
	if len(reactions) == 0 {
		return autoreaction.ErrNoReactions
	}

	lines := make([]string, 0, len(reactions))
	for _, reaction := range reactions {
		lines = append(lines, fmt.Sprintf("`%s` - %s", reaction.Word, reaction.Emoji))
	}

	pages := gateway.PagifyLines(lines, "\n", 2000)
	return r.Paginate(ctx, textPages("Automatic Reactions", pages, colourDefault), false)
}

// HandleEvent reacts to messages and drops reactions whose emoji was deleted
func (c *AutoReactionCommand) HandleEvent(ctx context.Context, event any) {
	switch e := event.(type) {
	case *discordgo.MessageCreate:
		if e.Author == nil {
			return
		}
		err := c.reactionService.HandleMessage(ctx, &autoreaction.HandleMessageInput{
			GuildID:   e.GuildID,
			ChannelID: e.ChannelID,
			MessageID: e.ID,
			AuthorBot: e.Author.Bot,
			Content:   e.Content,
		})
		if err != nil {
			c.logger.Error("failed to react to message",
				zap.String("guild_id", e.GuildID),
				zap.String("message_id", e.ID),
				zap.Error(err),
			)
		}
	case *discordgo.GuildEmojisUpdate:
		err := c.reactionService.HandleEmojisUpdate(ctx, &autoreaction.HandleEmojisUpdateInput{
			GuildID: e.GuildID,
			Emojis:  e.Emojis,
		})
		if err != nil {
			c.logger.Error("failed to drop deleted emojis", zap.String("guild_id", e.GuildID), zap.Error(err))
		}
	}
}
