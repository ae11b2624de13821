package discord

import (
	"context"
	"strings"

	"github.com/KirkDiggler/noobcogs/internal/models"
	"github.com/KirkDiggler/noobcogs/internal/services/cookieclicker"
	"github.com/bwmarrin/discordgo"
)

// CookieClickerCommand handles /cookieclicker and /cookieclickerset and the click button
type CookieClickerCommand struct {
	cookieService cookieclicker.Service
}

// NewCookieClickerCommand creates a new cookie clicker command handler
func NewCookieClickerCommand(cookieService cookieclicker.Service) *CookieClickerCommand {
	return &CookieClickerCommand{cookieService: cookieService}
}

func (c *CookieClickerCommand) Name() string {
	return "cookieclicker"
}

func (c *CookieClickerCommand) Commands() []*discordgo.ApplicationCommand {
	top := option(discordgo.ApplicationCommandOptionInteger, "top", "How many members to show", false)
	minTop := 1.0
	top.MinValue = &minTop

	return []*discordgo.ApplicationCommand{
		{
			Name:         "cookieclicker",
			Description:  "Click the cookie",
			DMPermission: guildContext(),
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("start", "Start clicking"),
				subcommand("leaderboard", "Show who clicked the most", top),
				subcommand("forgetme", "Remove yourself from the leaderboard"),
			},
		},
		{
			Name:                     "cookieclickerset",
			Description:              "Configure the cookie clicker",
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
				subcommand("showsettings", "Show the cookie clicker settings of this server"),
				subcommand("reset", "Reset the settings and leaderboard of this server"),
				subcommand("resetcog", "Reset every setting and leaderboard (bot owner)"),
			},
		},
	}
}

// HandleCommand processes a cookie clicker command
func (c *CookieClickerCommand) HandleCommand(ctx context.Context, r *Request) error {
	if err := guildOnly(r); err != nil {
		return err
	}

	switch r.Sub() {
	case "start":
		_, err := c.cookieService.Start(ctx, &cookieclicker.StartInput{
			GuildID:   r.GuildID(),
			ChannelID: r.ChannelID(),
			UserID:    r.UserID(),
		})
		if err != nil {
			return err
		}
		return r.Ephemeral(ctx, "Your cookie clicker is ready, start clicking!")
	case "leaderboard":
		out, err := c.cookieService.Leaderboard(ctx, &cookieclicker.LeaderboardInput{
			GuildID: r.GuildID(),
			Top:     int(r.Options.Int("top")),
		})
		if err != nil {
			return err
		}
		return r.Paginate(ctx, textPages("Cookie Clicker Leaderboard", out.Pages, colourDefault), false)
	case "forgetme":
		err := c.cookieService.ForgetMe(ctx, &cookieclicker.ForgetMeInput{GuildID: r.GuildID(), UserID: r.UserID()})
		if err != nil {
			return err
		}
		return r.Ephemeral(ctx, "You have been removed from the leaderboard.")
	case "emoji":
		err := c.cookieService.SetEmoji(ctx, &cookieclicker.SetEmojiInput{GuildID: r.GuildID(), Emoji: r.Options.String("emoji")})
		if err != nil {
			return err
		}
		return r.Ephemeral(ctx, "The cookie clicker emoji has been updated.")
	case "buttoncolour":
		err := c.cookieService.SetButtonColour(ctx, &cookieclicker.SetButtonColourInput{
			GuildID: r.GuildID(),
			Colour:  r.Options.String("colour"),
		})
		if err != nil {
			return err
		}
		return r.Ephemeral(ctx, "The cookie clicker button colour has been updated.")
	case "showsettings":
		out, err := c.cookieService.GetSettings(ctx, &cookieclicker.GetSettingsInput{GuildID: r.GuildID()})
		if err != nil {
			return err
		}
		return r.Reply(ctx, embedReply(settingsEmbed("Cookie Clicker Settings",
			setting{"Emoji", out.Settings.Emoji},
			setting{"Button Colour", string(out.Settings.ButtonColour)},
		), true))
	case "reset":
		return r.Confirm(ctx, "Are you sure you want to reset the cookie clicker of this server?", func(ctx context.Context) (string, error) {
			if err := c.cookieService.Reset(ctx, &cookieclicker.ResetInput{GuildID: r.GuildID()}); err != nil {
				return "", err
			}
			return "The cookie clicker of this server has been reset.", nil
		})
	case "resetcog":
		if err := ownerOnly(r); err != nil {
			return err
		}
		return r.Confirm(ctx, "Are you sure you want to reset every cookie clicker?", func(ctx context.Context) (string, error) {
			if err := c.cookieService.ResetCog(ctx); err != nil {
				return "", err
			}
			return "Every cookie clicker has been reset.", nil
		})
	}

	return ErrUnknownCommand
}

func (c *CookieClickerCommand) ComponentPrefixes() []string {
	return []string{cookieclicker.ClickButtonPrefix}
}

// HandleComponent counts a click and relabels the button
func (c *CookieClickerCommand) HandleComponent(ctx context.Context, r *Request) error {
	sessionID := strings.TrimPrefix(r.Interaction.MessageComponentData().CustomID, cookieclicker.ClickButtonPrefix)

	out, err := c.cookieService.Click(ctx, &cookieclicker.ClickInput{
		SessionID: sessionID,
		GuildID:   r.GuildID(),
		UserID:    r.UserID(),
	})
	if err != nil {
		return err
	}

	return r.UpdateComponents(ctx, out.Components)
}

// Shutdown stops pending clicker timeouts
func (c *CookieClickerCommand) Shutdown() {
	c.cookieService.Shutdown()
}
