package discord

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/noobcogs/internal/common/format"
	"github.com/KirkDiggler/noobcogs/internal/gateway"
	"github.com/KirkDiggler/noobcogs/internal/models"
	"github.com/KirkDiggler/noobcogs/internal/services/timer"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const (
	endTimerCommand    = "End Timer"
	cancelTimerCommand = "Cancel Timer"
	timerListPageLimit = 2000

	// Holders of either permission may end or cancel any timer
	timerModeratorPerms = discordgo.PermissionManageMessages | discordgo.PermissionManageGuild
)

// TimerCommand handles /timer, /timerset and the timer message commands
type TimerCommand struct {
	timerService timer.Service
	logger       *zap.Logger
}

// NewTimerCommand creates a new timer command handler
func NewTimerCommand(timerService timer.Service, logger *zap.Logger) *TimerCommand {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TimerCommand{timerService: timerService, logger: logger}
}

func (c *TimerCommand) Name() string {
	return "timers"
}

func (c *TimerCommand) Commands() []*discordgo.ApplicationCommand {
	messageID := func() *discordgo.ApplicationCommandOption {
		return option(discordgo.ApplicationCommandOptionString, "message_id", "The message ID of the timer", true)
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:                     "timer",
			Description:              "Start and manage timers",
			DefaultMemberPermissions: manageMessages(),
			DMPermission:             guildContext(),
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("start", "Start a timer",
					option(discordgo.ApplicationCommandOptionString, "duration", "How long the timer runs, e.g. 1h30m or in 20 minutes", true),
					option(discordgo.ApplicationCommandOptionString, "title", "What the timer is for", false),
				),
				subcommand("list", "List the running timers of this server"),
				subcommand("end", "End a timer now", messageID()),
				subcommand("cancel", "Cancel a timer without notifying anyone", messageID()),
			},
		},
		{
			Name:                     "timerset",
			Description:              "Configure timers",
			DefaultMemberPermissions: manageGuild(),
			DMPermission:             guildContext(),
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("buttoncolour", "Change the colour of the timer button",
					withChoices(option(discordgo.ApplicationCommandOptionString, "state", "Which state of the timer", true),
						[]*discordgo.ApplicationCommandOptionChoice{
							{Name: "started", Value: string(timer.ButtonStateStarted)},
							{Name: "ended", Value: string(timer.ButtonStateEnded)},
						}),
					withChoices(option(discordgo.ApplicationCommandOptionString, "colour", "The colour; leave empty to reset", false),
						models.ButtonColourChoices()),
				),
				subcommand("emoji", "Change the emoji of the timer button",
					option(discordgo.ApplicationCommandOptionString, "emoji", "The emoji; leave empty to reset", false),
				),
				subcommand("notifymembers", "Toggle whether members can opt in to be notified"),
				subcommand("maxduration", "Change the maximum duration of timers (bot owner)",
					option(discordgo.ApplicationCommandOptionString, "duration", "The maximum duration, e.g. 7d", true),
				),
				subcommand("showsettings", "Show the timer settings of this server"),
				subcommand("resetguild", "Reset the timer settings of this server"),
				subcommand("resetcog", "Reset every timer setting (bot owner)"),
			},
		},
		{
			Name:                     endTimerCommand,
			Type:                     discordgo.MessageApplicationCommand,
			DefaultMemberPermissions: manageGuild(),
			DMPermission:             guildContext(),
		},
		{
			Name:                     cancelTimerCommand,
			Type:                     discordgo.MessageApplicationCommand,
			DefaultMemberPermissions: manageGuild(),
			DMPermission:             guildContext(),
		},
	}
}

// HandleCommand processes a timer command
func (c *TimerCommand) HandleCommand(ctx context.Context, r *Request) error {
	if err := guildOnly(r); err != nil {
		return err
	}

	switch r.Path[0] {
	case endTimerCommand:
		return c.handleEnd(ctx, r, r.Interaction.ApplicationCommandData().TargetID)
	case cancelTimerCommand:
		return c.handleCancel(ctx, r, r.Interaction.ApplicationCommandData().TargetID)
	}

	switch r.Sub() {
	case "start":
		return c.handleStart(ctx, r)
	case "list":
		return c.handleList(ctx, r)
	case "end":
		return c.handleEnd(ctx, r, r.Options.String("message_id"))
	case "cancel":
		return c.handleCancel(ctx, r, r.Options.String("message_id"))
	case "buttoncolour":
		return c.handleButtonColour(ctx, r)
	case "emoji":
		err := c.timerService.SetEmoji(ctx, &timer.SetEmojiInput{GuildID: r.GuildID(), Emoji: r.Options.String("emoji")})
		if err != nil {
			return err
		}
		return r.Ephemeral(ctx, "The timer emoji has been updated.")
	case "notifymembers":
		out, err := c.timerService.ToggleNotify(ctx, &timer.ToggleNotifyInput{GuildID: r.GuildID()})
		if err != nil {
			return err
		}
		if out.NotifyMembers {
			return r.Ephemeral(ctx, "Members can now opt in to be notified when timers end.")
		}
		return r.Ephemeral(ctx, "Members will no longer be notified when timers end.")
	case "maxduration":
		if err := ownerOnly(r); err != nil {
			return err
		}
		if err := c.timerService.SetMaxDuration(ctx, &timer.SetMaxDurationInput{Duration: r.Options.String("duration")}); err != nil {
			return err
		}
		return r.Ephemeral(ctx, "The maximum duration of timers has been updated.")
	case "showsettings":
		return c.handleShowSettings(ctx, r)
	case "resetguild":
		return r.Confirm(ctx, "Are you sure you want to reset the timer settings of this server?", func(ctx context.Context) (string, error) {
			if err := c.timerService.ResetGuild(ctx, &timer.ResetGuildInput{GuildID: r.GuildID()}); err != nil {
				return "", err
			}
			return "The timer settings of this server have been reset.", nil
		})
	case "resetcog":
		if err := ownerOnly(r); err != nil {
			return err
		}
		return r.Confirm(ctx, "Are you sure you want to reset every timer setting?", func(ctx context.Context) (string, error) {
			if err := c.timerService.ResetCog(ctx); err != nil {
				return "", err
			}
			return "Every timer setting has been reset.", nil
		})
	}

	return ErrUnknownCommand
}

func (c *TimerCommand) handleStart(ctx context.Context, r *Request) error {
	out, err := c.timerService.CreateTimer(ctx, &timer.CreateTimerInput{
		GuildID:   r.GuildID(),
		ChannelID: r.ChannelID(),
		HostID:    r.UserID(),
		Duration:  r.Options.String("duration"),
		Title:     r.Options.String("title"),
	})
	if err != nil {
		return err
	}

	return r.Ephemeral(ctx, fmt.Sprintf("Timer **%s** started, it ends %s.",
		out.Timer.Title, format.Timestamp(out.Timer.EndsAt(), format.StyleRelative)))
}

func (c *TimerCommand) handleList(ctx context.Context, r *Request) error {
	out, err := c.timerService.ListTimers(ctx, &timer.ListTimersInput{GuildID: r.GuildID()})
	if err != nil {
		return err
	}

	entries := make([]string, 0, len(out.Timers))
	for _, t := range out.Timers {
		entries = append(entries, fmt.Sprintf("**%s**\nMessage ID: `%s`\n[Jump To Timer](%s)\nHosted by: %s\nEnds: %s (%s)",
			t.Title, t.MessageID, t.JumpURL(), gateway.Mention(t.HostID),
			format.Timestamp(t.EndsAt(), format.StyleRelative), format.Timestamp(t.EndsAt(), format.StyleFull)))
	}

	pages := gateway.PagifyLines(entries, "\n\n", timerListPageLimit)
	return r.Paginate(ctx, textPages("Active Timers", pages, colourDefault), false)
}

func (c *TimerCommand) handleEnd(ctx context.Context, r *Request, messageID string) error {
	if messageID == "" {
		return ErrInvalidSnowflake
	}

	err := c.timerService.EndTimer(ctx, &timer.EndTimerInput{
		GuildID:   r.GuildID(),
		MessageID: messageID,
		ActorID:   r.UserID(),
		Moderator: r.HasPermission(timerModeratorPerms),
	})
	if err != nil {
		return err
	}

	return r.Ephemeral(ctx, "Ended that timer.")
}

func (c *TimerCommand) handleCancel(ctx context.Context, r *Request, messageID string) error {
	if messageID == "" {
		return ErrInvalidSnowflake
	}

	err := c.timerService.CancelTimer(ctx, &timer.CancelTimerInput{
		GuildID:     r.GuildID(),
		MessageID:   messageID,
		CancelledBy: r.UserID(),
		Moderator:   r.HasPermission(timerModeratorPerms),
	})
	if err != nil {
		return err
	}

	return r.Ephemeral(ctx, "Cancelled that timer.")
}

func (c *TimerCommand) handleButtonColour(ctx context.Context, r *Request) error {
	state := timer.ButtonState(r.Options.String("state"))
	err := c.timerService.SetButtonColour(ctx, &timer.SetButtonColourInput{
		GuildID: r.GuildID(),
		State:   state,
		Colour:  r.Options.String("colour"),
	})
	if err != nil {
		return err
	}

	return r.Ephemeral(ctx, fmt.Sprintf("The %s button colour has been updated.", state))
}

func (c *TimerCommand) handleShowSettings(ctx context.Context, r *Request) error {
	out, err := c.timerService.GetSettings(ctx, &timer.GetSettingsInput{GuildID: r.GuildID()})
	if err != nil {
		return err
	}

	return r.Reply(ctx, embedReply(settingsEmbed("Timer Settings",
		setting{"Started Button Colour", string(out.Settings.StartedColour)},
		setting{"Ended Button Colour", string(out.Settings.EndedColour)},
		boolSetting("Notify Members", out.Settings.NotifyMembers),
		setting{"Emoji", out.Settings.Emoji},
		setting{"Max Duration", format.Duration(out.MaxDuration)},
	), true))
}

func (c *TimerCommand) ComponentPrefixes() []string {
	return []string{timer.NotifyButtonID}
}

// HandleComponent opts the member in to the timer's notification
func (c *TimerCommand) HandleComponent(ctx context.Context, r *Request) error {
	if r.Interaction.Message == nil {
		return ErrNotATimer
	}

	out, err := c.timerService.OptIn(ctx, &timer.OptInInput{
		GuildID:   r.GuildID(),
		MessageID: r.Interaction.Message.ID,
		UserID:    r.UserID(),
	})
	if err != nil {
		return err
	}

	if err := r.UpdateComponents(ctx, out.Components); err != nil {
		return err
	}

	return r.Ephemeral(ctx, "You will be notified when this timer ends.")
}

// HandleEvent drops timers whose message was deleted
func (c *TimerCommand) HandleEvent(ctx context.Context, event any) {
	input := &timer.HandleMessageDeleteInput{}
	switch e := event.(type) {
	case *discordgo.MessageDelete:
		input.GuildID, input.MessageIDs = e.GuildID, []string{e.ID}
	case *discordgo.MessageDeleteBulk:
		input.GuildID, input.MessageIDs = e.GuildID, e.Messages
	default:
		return
	}

	if input.GuildID == "" {
		return
	}

	if err := c.timerService.HandleMessageDelete(ctx, input); err != nil {
		c.logger.Error("failed to drop deleted timers",
			zap.String("guild_id", input.GuildID),
			zap.Error(err),
		)
	}
}

// Run polls for expired timers until ctx is done
func (c *TimerCommand) Run(ctx context.Context) {
	c.timerService.Run(ctx)
}
