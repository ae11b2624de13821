package discord

import (
	"context"
	"strings"

	"github.com/KirkDiggler/noobcogs/internal/gateway"
	"github.com/KirkDiggler/noobcogs/internal/models"
	"github.com/KirkDiggler/noobcogs/internal/services/pressf"
	"github.com/bwmarrin/discordgo"
)

// PressFCommand handles /pressf and /pressfset and the respects button
type PressFCommand struct {
	pressfService pressf.Service
}

// NewPressFCommand creates a new press F command handler
func NewPressFCommand(pressfService pressf.Service) *PressFCommand {
	return &PressFCommand{pressfService: pressfService}
}

func (c *PressFCommand) Name() string {
	return "pressf"
}

func (c *PressFCommand) Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:         "pressf",
			Description:  "Pay respects to something",
			DMPermission: guildContext(),
			Options: []*discordgo.ApplicationCommandOption{
				option(discordgo.ApplicationCommandOptionString, "thing", "What to pay respects to", true),
			},
		},
		{
			Name:                     "pressfset",
			Description:              "Configure press F",
			DefaultMemberPermissions: manageGuild(),
			DMPermission:             guildContext(),
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("emoji", "Change the emoji of the button",
					option(discordgo.ApplicationCommandOptionString, "emoji", "The emoji; leave empty to reset", false),
				),
				subcommand("buttoncolour", "Change the colour of the button",
					withChoices(option(discordgo.ApplicationCommandOptionString, "colour", "The colour; leave empty to reset", false),
						models.ButtonColourChoices()),
				),
				subcommand("showsettings", "Show the press F settings of this server"),
				subcommand("reset", "Reset the press F settings of this server"),
				subcommand("resetcog", "Reset every press F setting (bot owner)"),
			},
		},
	}
}

// HandleCommand processes a press F command
func (c *PressFCommand) HandleCommand(ctx context.Context, r *Request) error {
	if err := guildOnly(r); err != nil {
		return err
	}

	if r.Path[0] == "pressf" {
		_, err := c.pressfService.Start(ctx, &pressf.StartInput{
			GuildID:   r.GuildID(),
			ChannelID: r.ChannelID(),
			UserID:    r.UserID(),
			Thing:     r.Options.String("thing"),
		})
		if err != nil {
			return err
		}
		return r.Ephemeral(ctx, "Paying respects has started.")
	}

	switch r.Sub() {
	case "emoji":
		err := c.pressfService.SetEmoji(ctx, &pressf.SetEmojiInput{GuildID: r.GuildID(), Emoji: r.Options.String("emoji")})
		if err != nil {
			return err
		}
		return r.Ephemeral(ctx, "The press F emoji has been updated.")
	case "buttoncolour":
		err := c.pressfService.SetButtonColour(ctx, &pressf.SetButtonColourInput{
			GuildID: r.GuildID(),
			Colour:  r.Options.String("colour"),
		})
		if err != nil {
			return err
		}
		return r.Ephemeral(ctx, "The press F button colour has been updated.")
	case "showsettings":
		out, err := c.pressfService.GetSettings(ctx, &pressf.GetSettingsInput{GuildID: r.GuildID()})
		if err != nil {
			return err
		}
		return r.Reply(ctx, embedReply(settingsEmbed("Press F Settings",
			setting{"Emoji", out.Settings.Emoji},
			setting{"Button Colour", string(out.Settings.ButtonColour)},
		), true))
	case "reset":
		return r.Confirm(ctx, "Are you sure you want to reset the press F settings of this server?", func(ctx context.Context) (string, error) {
			if err := c.pressfService.Reset(ctx, &pressf.ResetInput{GuildID: r.GuildID()}); err != nil {
				return "", err
			}
			return "The press F settings of this server have been reset.", nil
		})
	case "resetcog":
		if err := ownerOnly(r); err != nil {
			return err
		}
		return r.Confirm(ctx, "Are you sure you want to reset every press F setting?", func(ctx context.Context) (string, error) {
			if err := c.pressfService.ResetCog(ctx); err != nil {
				return "", err
			}
			return "Every press F setting has been reset.", nil
		})
	}

	return ErrUnknownCommand
}

func (c *PressFCommand) ComponentPrefixes() []string {
	return []string{pressf.PressButtonPrefix}
}

// HandleComponent pays the member's respects
func (c *PressFCommand) HandleComponent(ctx context.Context, r *Request) error {
	sessionID := strings.TrimPrefix(r.Interaction.MessageComponentData().CustomID, pressf.PressButtonPrefix)

	name := r.User().Username
	if m := r.Member(); m != nil {
		name = gateway.DisplayName(m)
	}

	_, err := c.pressfService.Press(ctx, &pressf.PressInput{
		SessionID:   sessionID,
		UserID:      r.UserID(),
		DisplayName: name,
	})
	if err != nil {
		return err
	}

	return r.Acknowledge(ctx)
}

// Shutdown stops pending prompt timeouts
func (c *PressFCommand) Shutdown() {
	c.pressfService.Shutdown()
}
