package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/KirkDiggler/noobcogs/internal/gateway"
	"github.com/KirkDiggler/noobcogs/internal/services/afk"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const (
	afkCooldown        = 10 * time.Second
	nickWarningTimeout = 10 * time.Second
)

// AFKCommand handles /afk and /afkset and listens for pings of away members
type AFKCommand struct {
	afkService afk.Service
	gateway    gateway.Gateway
	cooldown   *Cooldown
	logger     *zap.Logger
}

// NewAFKCommand creates a new AFK command handler
func NewAFKCommand(afkService afk.Service, gw gateway.Gateway, logger *zap.Logger) *AFKCommand {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AFKCommand{
		afkService: afkService,
		gateway:    gw,
		cooldown:   NewCooldown(afkCooldown, nil),
		logger:     logger,
	}
}

func (c *AFKCommand) Name() string {
	return "afk"
}

func (c *AFKCommand) Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:         "afk",
			Description:  "Let members know you are away when they ping you",
			DMPermission: guildContext(),
			Options: []*discordgo.ApplicationCommandOption{
				option(discordgo.ApplicationCommandOptionString, "reason", "Why you are away", false),
			},
		},
		{
			Name:         "afkset",
			Description:  "Configure AFK",
			DMPermission: guildContext(),
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("back", "Remove your AFK status"),
				subcommand("sticky", "Toggle whether talking keeps you AFK"),
				subcommand("togglelogs", "Toggle whether your pings are shown when you come back"),
				subcommand("nick", "Toggle the [AFK] nickname prefix for this server (Manage Server)"),
				subcommand("deleteafter", "Change how long ping notices stay up (Manage Server)",
					option(discordgo.ApplicationCommandOptionInteger, "seconds", "Seconds, 0 keeps the notices", true),
				),
				subcommand("forceafk", "Toggle another member's AFK status (Manage Server)",
					option(discordgo.ApplicationCommandOptionUser, "member", "The member", true),
					option(discordgo.ApplicationCommandOptionString, "reason", "Why they are away", false),
				),
				subcommand("showsettings", "Show your AFK settings"),
				subcommand("reset", "Reset your AFK settings"),
				subcommand("resetcog", "Reset every AFK setting (bot owner)"),
			},
		},
	}
}

// HandleCommand processes an AFK command
func (c *AFKCommand) HandleCommand(ctx context.Context, r *Request) error {
	if err := guildOnly(r); err != nil {
		return err
	}

	if r.Path[0] == "afk" {
		return c.handleStart(ctx, r)
	}

	member := &afk.MemberInput{GuildID: r.GuildID(), UserID: r.UserID()}

	switch r.Sub() {
	case "back":
		return c.handleBack(ctx, r)
	case "sticky":
		on, err := c.afkService.ToggleSticky(ctx, member)
		if err != nil {
			return err
		}
		if on {
			return r.Ephemeral(ctx, "Your AFK status will now stay when you talk.")
		}
		return r.Ephemeral(ctx, "Your AFK status will now be removed when you talk.")
	case "togglelogs":
		on, err := c.afkService.ToggleLogs(ctx, member)
		if err != nil {
			return err
		}
		if on {
			return r.Ephemeral(ctx, "I will now show you your pings when you come back.")
		}
		return r.Ephemeral(ctx, "I will no longer show you your pings when you come back.")
	case "nick":
		if !r.HasPermission(discordgo.PermissionManageGuild) {
			return ErrMissingPerms
		}
		on, err := c.afkService.ToggleNick(ctx, &afk.GuildInput{GuildID: r.GuildID()})
		if err != nil {
			return err
		}
		if on {
			return r.Ephemeral(ctx, "AFK members will now get an `[AFK]` nickname.")
		}
		return r.Ephemeral(ctx, "AFK members will no longer get an `[AFK]` nickname.")
	case "deleteafter":
		if !r.HasPermission(discordgo.PermissionManageGuild) {
			return ErrMissingPerms
		}
		seconds := int(r.Options.Int("seconds"))
		err := c.afkService.SetDeleteAfter(ctx, &afk.SetDeleteAfterInput{GuildID: r.GuildID(), Seconds: seconds})
		if err != nil {
			return err
		}
		if seconds <= 0 {
			return r.Ephemeral(ctx, "Ping notices will no longer be deleted.")
		}
		return r.Ephemeral(ctx, fmt.Sprintf("Ping notices will now be deleted after %d seconds.", seconds))
	case "forceafk":
		if !r.HasPermission(discordgo.PermissionManageGuild) {
			return ErrMissingPerms
		}
		return c.handleForce(ctx, r)
	case "showsettings":
		return c.handleShowSettings(ctx, r, member)
	case "reset":
		return r.Confirm(ctx, "Are you sure you want to reset your AFK settings?", func(ctx context.Context) (string, error) {
			if err := c.afkService.ResetMember(ctx, member); err != nil {
				return "", err
			}
			return "Your AFK settings have been reset.", nil
		})
	case "resetcog":
		if err := ownerOnly(r); err != nil {
			return err
		}
		return r.Confirm(ctx, "Are you sure you want to reset every AFK setting?", func(ctx context.Context) (string, error) {
			if err := c.afkService.ResetCog(ctx); err != nil {
				return "", err
			}
			return "Every AFK setting has been reset.", nil
		})
	}

	return ErrUnknownCommand
}

func (c *AFKCommand) handleStart(ctx context.Context, r *Request) error {
	if ok, retry := c.cooldown.Allow(r.UserID()); !ok {
		return cooldownError(retry)
	}

	out, err := c.afkService.StartAFK(ctx, &afk.StartAFKInput{
		GuildID: r.GuildID(),
		UserID:  r.UserID(),
		Reason:  r.Options.String("reason"),
	})
	if err != nil {
		return err
	}

	if err := r.Reply(ctx, &Reply{Content: "You are now AFK. Any member that pings you will now get notified."}); err != nil {
		return err
	}

	if out.NickWarning != "" {
		return r.Ephemeral(ctx, out.NickWarning)
	}
	return nil
}

func (c *AFKCommand) handleBack(ctx context.Context, r *Request) error {
	settings, err := c.afkService.GetSettings(ctx, &afk.MemberInput{GuildID: r.GuildID(), UserID: r.UserID()})
	if err != nil {
		return err
	}
	if !settings.Status.AFK {
		return r.Ephemeral(ctx, "It appears you are not AFK.")
	}

	out, err := c.afkService.EndAFK(ctx, &afk.EndAFKInput{GuildID: r.GuildID(), UserID: r.UserID()})
	if err != nil {
		return err
	}

	if err := r.Ephemeral(ctx, "I have removed your AFK status."); err != nil {
		return err
	}
	if out.NickWarning != "" {
		if err := r.Ephemeral(ctx, out.NickWarning); err != nil {
			return err
		}
	}

	return r.Paginate(ctx, pingLogPages(out.Name, out.PingPages), true)
}

func (c *AFKCommand) handleForce(ctx context.Context, r *Request) error {
	out, err := c.afkService.ForceAFK(ctx, &afk.ForceAFKInput{
		GuildID:     r.GuildID(),
		ModeratorID: r.UserID(),
		TargetID:    r.Options.ID("member"),
		Reason:      r.Options.String("reason"),
	})
	if err != nil {
		return err
	}

	content := fmt.Sprintf("Forcefully removed **%s**'s AFK status.", out.Name)
	if out.Added {
		content = fmt.Sprintf("Forcefully added **%s**'s AFK status.", out.Name)
	}
	if out.NickWarning != "" {
		content += "\n" + out.NickWarning
	}

	if err := r.Reply(ctx, &Reply{Content: content}); err != nil {
		return err
	}

	return r.Paginate(ctx, pingLogPages(out.Name, out.PingPages), false)
}

func (c *AFKCommand) handleShowSettings(ctx context.Context, r *Request, member *afk.MemberInput) error {
	out, err := c.afkService.GetSettings(ctx, member)
	if err != nil {
		return err
	}

	deleteAfter := "Disabled"
	if out.Settings.DeleteAfter > 0 {
		deleteAfter = fmt.Sprintf("%d seconds", out.Settings.DeleteAfter)
	}

	return r.Reply(ctx, embedReply(settingsEmbed("AFK Settings",
		boolSetting("AFK", out.Status.AFK),
		boolSetting("Sticky", out.Status.Sticky),
		boolSetting("Ping Logs", out.Status.ToggleLogs),
		boolSetting("Nick", out.Settings.Nick),
		setting{"Delete After", deleteAfter},
	), true))
}

// HandleEvent welcomes back returning members, notifies pingers and forgets members who left
func (c *AFKCommand) HandleEvent(ctx context.Context, event any) {
	switch e := event.(type) {
	case *discordgo.MessageCreate:
		c.handleMessage(ctx, e.Message)
	case *discordgo.GuildMemberRemove:
		if e.Member == nil || e.Member.User == nil {
			return
		}
		err := c.afkService.HandleMemberRemove(ctx, &afk.MemberInput{GuildID: e.GuildID, UserID: e.Member.User.ID})
		if err != nil {
			c.logger.Error("failed to forget member", zap.String("guild_id", e.GuildID), zap.Error(err))
		}
	}
}

func (c *AFKCommand) handleMessage(ctx context.Context, m *discordgo.Message) {
	if m == nil || m.Author == nil || m.GuildID == "" {
		return
	}

	input := &afk.HandleMessageInput{
		GuildID:    m.GuildID,
		ChannelID:  m.ChannelID,
		MessageID:  m.ID,
		AuthorID:   m.Author.ID,
		AuthorName: m.Author.Username,
		AuthorBot:  m.Author.Bot,
		WebhookID:  m.WebhookID,
		Content:    m.Content,
	}
	for _, u := range m.Mentions {
		input.Mentions = append(input.Mentions, afk.Mention{UserID: u.ID, Bot: u.Bot})
	}

	out, err := c.afkService.HandleMessage(ctx, input)
	if err != nil {
		c.logger.Error("failed to handle AFK message",
			zap.String("guild_id", m.GuildID),
			zap.String("message_id", m.ID),
			zap.Error(err),
		)
		return
	}

	responder := newMessageResponder(c.gateway, m)

	if out.WelcomeBack != "" {
		c.send(ctx, responder, &Reply{Content: out.WelcomeBack}, 0)
		if out.Returned != nil {
			if out.Returned.NickWarning != "" {
				c.send(ctx, responder, &Reply{Content: out.Returned.NickWarning}, nickWarningTimeout)
			}
			for _, page := range pingLogPages(out.Returned.Name, out.Returned.PingPages) {
				c.send(ctx, responder, &Reply{Embeds: []*discordgo.MessageEmbed{page}}, 0)
			}
		}
	}

	for _, notice := range out.Notices {
		embed := &discordgo.MessageEmbed{
			Description: notice.Reason,
			Color:       colourDefault,
		}
		c.send(ctx, responder, &Reply{Embeds: []*discordgo.MessageEmbed{embed}},
			time.Duration(notice.DeleteAfter)*time.Second)
	}
}

// send replies to a message and schedules the reply's deletion when after is set
func (c *AFKCommand) send(ctx context.Context, responder *messageResponder, reply *Reply, after time.Duration) {
	sent, err := responder.Send(ctx, reply)
	if err != nil {
		c.logger.Warn("failed to reply to message",
			zap.String("channel_id", responder.ChannelID()),
			zap.Error(err),
		)
		return
	}

	if after > 0 {
		c.gateway.DeleteMessageAfter(sent.ChannelID, sent.ID, after)
	}
}

// pingLogPages renders a returning member's pings
func pingLogPages(name string, pages []string) []*discordgo.MessageEmbed {
	return textPages(fmt.Sprintf("You have recieved some pings while you were AFK, %s.", name), pages, colourDefault)
}
