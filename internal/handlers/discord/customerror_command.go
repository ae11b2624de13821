package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/noobcogs/internal/common/format"
	"github.com/KirkDiggler/noobcogs/internal/services/customerror"
	"github.com/bwmarrin/discordgo"
)

// errTestCommand is raised by /plzerror so the error message can be previewed
var errTestCommand = errors.New("this is a test error raised by plzerror")

// CustomErrorCommand handles /customerror and /plzerror
type CustomErrorCommand struct {
	customErrorService customerror.Service
}

// NewCustomErrorCommand creates a new custom error command handler
func NewCustomErrorCommand(customErrorService customerror.Service) *CustomErrorCommand {
	return &CustomErrorCommand{customErrorService: customErrorService}
}

func (c *CustomErrorCommand) Name() string {
	return "customerror"
}

func (c *CustomErrorCommand) Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "customerror",
			Description: "Configure the message shown when a command fails (bot owner)",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("message", "Change the error message",
					option(discordgo.ApplicationCommandOptionString, "message", "The message; leave empty to reset", false),
				),
				subcommand("showsettings", "Show the error message and a preview"),
				subcommand("lasterror", "Show the last command error"),
				subcommand("reset", "Restore the default error message"),
			},
		},
		{
			Name:        "plzerror",
			Description: "Raise an error to preview the error message (bot owner)",
		},
	}
}

// HandleCommand processes a custom error command
func (c *CustomErrorCommand) HandleCommand(ctx context.Context, r *Request) error {
	if err := ownerOnly(r); err != nil {
		return err
	}

	if r.Path[0] == "plzerror" {
		return errTestCommand
	}

	switch r.Sub() {
	case "message":
		message := r.Options.String("message")
		if err := c.customErrorService.SetMessage(ctx, &customerror.SetMessageInput{Message: message}); err != nil {
			return err
		}
		if message == "" {
			return r.Ephemeral(ctx, "The error message has been reset.")
		}
		return r.Ephemeral(ctx, "The error message has been updated. Use `/plzerror` to try it out.")
	case "showsettings":
		return c.handleShowSettings(ctx, r)
	case "lasterror":
		out, err := c.customErrorService.LastError(ctx)
		if err != nil {
			return err
		}
		return r.Reply(ctx, embedReply(&discordgo.MessageEmbed{
			Title:       fmt.Sprintf("Last error in `%s`", out.Command),
			Description: fmt.Sprintf("```\n%s\n```\nReported %s", format.Truncate(out.Error, 3900), format.Timestamp(out.ReportedAt, format.StyleRelative)),
			Color:       colourError,
		}, true))
	case "reset":
		return r.Confirm(ctx, "Are you sure you want to restore the default error message?", func(ctx context.Context) (string, error) {
			if err := c.customErrorService.Reset(ctx); err != nil {
				return "", err
			}
			return "The error message has been reset.", nil
		})
	}

	return ErrUnknownCommand
}

func (c *CustomErrorCommand) handleShowSettings(ctx context.Context, r *Request) error {
	out, err := c.customErrorService.GetSettings(ctx, &customerror.GetSettingsInput{
		Preview: r.bot.commandContext(r, "plzerror", errTestCommand),
	})
	if err != nil {
		return err
	}

	return r.Reply(ctx, embedReply(&discordgo.MessageEmbed{
		Title: "Custom Error Settings",
		Color: colourDefault,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Message", Value: fmt.Sprintf("```\n%s\n```", out.Template)},
			{Name: "Preview", Value: out.Preview},
		},
	}, true))
}
