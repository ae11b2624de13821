package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/noobcogs/internal/common/format"
	"github.com/KirkDiggler/noobcogs/internal/gateway"
	"github.com/KirkDiggler/noobcogs/internal/services/devlogs"
	"github.com/bwmarrin/discordgo"
)

const gib = 1 << 30

// DevLogsCommand handles /devlogset and /debug
type DevLogsCommand struct {
	devLogsService devlogs.Service
}

// NewDevLogsCommand creates a new devlogs command handler
func NewDevLogsCommand(devLogsService devlogs.Service) *DevLogsCommand {
	return &DevLogsCommand{devLogsService: devLogsService}
}

func (c *DevLogsCommand) Name() string {
	return "devlogs"
}

func (c *DevLogsCommand) Commands() []*discordgo.ApplicationCommand {
	user := func() *discordgo.ApplicationCommandOption {
		return option(discordgo.ApplicationCommandOptionUser, "user", "The user", true)
	}
	command := func() *discordgo.ApplicationCommandOption {
		return option(discordgo.ApplicationCommandOptionString, "command", "The top-level command name", true)
	}

	limit := option(discordgo.ApplicationCommandOptionInteger, "limit", "How many entries to show", false)
	minLimit := 1.0
	limit.MinValue = &minLimit

	return []*discordgo.ApplicationCommand{
		{
			Name:        "devlogset",
			Description: "Configure developer command logging (bot owner)",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("channel", "Set the log channel",
					option(discordgo.ApplicationCommandOptionChannel, "channel", "The channel; leave empty to clear", false),
				),
				group("bypass", "Users whose commands are not logged",
					subcommand("add", "Stop logging a user's commands", user()),
					subcommand("remove", "Resume logging a user's commands", user()),
					subcommand("list", "List the bypassed users"),
				),
				subcommand("watch", "Start logging a command", command()),
				subcommand("unwatch", "Stop logging a command", command()),
				subcommand("history", "Show archived dev logs",
					limit,
					option(discordgo.ApplicationCommandOptionUser, "user", "Only show this user's commands", false),
				),
				subcommand("showsettings", "Show the devlogs settings"),
				subcommand("reset", "Reset every devlogs setting"),
			},
		},
		{
			Name:        "debug",
			Description: "Show host and runtime diagnostics (bot owner)",
		},
	}
}

// HandleCommand processes a devlogs command
func (c *DevLogsCommand) HandleCommand(ctx context.Context, r *Request) error {
	if err := ownerOnly(r); err != nil {
		return err
	}

	if r.Path[0] == "debug" {
		return c.handleDebug(ctx, r)
	}

	switch r.Sub() {
	case "channel":
		channelID := r.Options.ID("channel")
		if err := c.devLogsService.SetChannel(ctx, &devlogs.SetChannelInput{ChannelID: channelID}); err != nil {
			return err
		}
		if channelID == "" {
			return r.Ephemeral(ctx, "The devlogs channel has been cleared.")
		}
		return r.Ephemeral(ctx, fmt.Sprintf("Dev logs will now be sent to %s.", gateway.ChannelMention(channelID)))
	case "bypass add":
		userID := r.Options.ID("user")
		if err := c.devLogsService.BypassAdd(ctx, &devlogs.BypassInput{UserID: userID}); err != nil {
			return err
		}
		return r.Ephemeral(ctx, fmt.Sprintf("%s added to the bypass list.", gateway.Mention(userID)))
	case "bypass remove":
		userID := r.Options.ID("user")
		if err := c.devLogsService.BypassRemove(ctx, &devlogs.BypassInput{UserID: userID}); err != nil {
			return err
		}
		return r.Ephemeral(ctx, fmt.Sprintf("%s removed from the bypass list.", gateway.Mention(userID)))
	case "bypass list":
		out, err := c.devLogsService.BypassList(ctx)
		if err != nil {
			return err
		}
		return r.Paginate(ctx, textPages("Bypassed Users", out.Pages, colourDefault), true)
	case "watch":
		name := strings.ToLower(r.Options.String("command"))
		if err := c.devLogsService.Watch(ctx, &devlogs.WatchInput{Command: name}); err != nil {
			return err
		}
		return r.Ephemeral(ctx, fmt.Sprintf("`%s` will now be logged.", name))
	case "unwatch":
		name := strings.ToLower(r.Options.String("command"))
		if err := c.devLogsService.Unwatch(ctx, &devlogs.WatchInput{Command: name}); err != nil {
			return err
		}
		return r.Ephemeral(ctx, fmt.Sprintf("`%s` will no longer be logged.", name))
	case "history":
		out, err := c.devLogsService.History(ctx, &devlogs.HistoryInput{
			Limit:    int(r.Options.Int("limit")),
			AuthorID: r.Options.ID("user"),
		})
		if err != nil {
			return err
		}
		return r.Paginate(ctx, textPages("Dev Log History", out.Pages, colourDefault), true)
	case "showsettings":
		out, err := c.devLogsService.GetSettings(ctx)
		if err != nil {
			return err
		}
		channel := ""
		if out.Settings.ChannelID != "" {
			channel = gateway.ChannelMention(out.Settings.ChannelID)
		}
		bypass := make([]string, 0, len(out.Settings.Bypass))
		for _, id := range out.Settings.Bypass {
			bypass = append(bypass, gateway.Mention(id))
		}
		return r.Reply(ctx, embedReply(settingsEmbed("Dev Logs Settings",
			setting{"Channel", channel},
			setting{"Bypass", strings.Join(bypass, ", ")},
			setting{"Watched", strings.Join(out.Settings.Watched, ", ")},
		), true))
	case "reset":
		return r.Confirm(ctx, "Are you sure you want to reset every devlogs setting?", func(ctx context.Context) (string, error) {
			if err := c.devLogsService.Reset(ctx); err != nil {
				return "", err
			}
			return "Every devlogs setting has been reset.", nil
		})
	}

	return ErrUnknownCommand
}

func (c *DevLogsCommand) handleDebug(ctx context.Context, r *Request) error {
	report, err := c.devLogsService.Debug(ctx)
	if err != nil {
		return err
	}

	embed := &discordgo.MessageEmbed{
		Title: "Debug",
		Color: colourDefault,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Host", Value: report.Hostname, Inline: true},
			{Name: "Platform", Value: fmt.Sprintf("%s %s", report.Platform, report.PlatformVersion), Inline: true},
			{Name: "Kernel", Value: report.KernelVersion, Inline: true},
			{Name: "Uptime", Value: format.Duration(report.HostUptime), Inline: true},
			{Name: "Go", Value: report.GoVersion, Inline: true},
			{Name: "Goroutines", Value: fmt.Sprint(report.Goroutines), Inline: true},
			{Name: "CPU", Value: fmt.Sprintf("%d cores, %.1f%%", report.CPUCount, report.CPUPercent), Inline: true},
			{Name: "Memory", Value: fmt.Sprintf("%.2f/%.2f GiB (%.1f%%)",
				float64(report.MemUsed)/gib, float64(report.MemTotal)/gib, report.MemUsedPercent), Inline: true},
		},
	}

	return r.Reply(ctx, embedReply(embed, true))
}
