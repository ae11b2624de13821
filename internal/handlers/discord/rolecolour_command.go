package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/noobcogs/internal/gateway"
	"github.com/KirkDiggler/noobcogs/internal/services/rolecolour"
	"github.com/bwmarrin/discordgo"
)

// RoleColourCommand handles /randomcolourrole and runs the recolour loop
type RoleColourCommand struct {
	roleColourService rolecolour.Service
}

// NewRoleColourCommand creates a new random colour role command handler
func NewRoleColourCommand(roleColourService rolecolour.Service) *RoleColourCommand {
	return &RoleColourCommand{roleColourService: roleColourService}
}

func (c *RoleColourCommand) Name() string {
	return "randomcolourrole"
}

func (c *RoleColourCommand) Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:                     "randomcolourrole",
			Description:              "Recolour a role every few minutes",
			DefaultMemberPermissions: manageGuild(),
			DMPermission:             guildContext(),
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("role", "Set the role to recolour",
					option(discordgo.ApplicationCommandOptionRole, "role", "The role; leave empty to clear", false),
				),
				subcommand("status", "Enable or disable recolouring",
					option(discordgo.ApplicationCommandOptionBoolean, "enabled", "Whether the role is recoloured", true),
				),
				subcommand("showsettings", "Show the random colour role settings of this server"),
				subcommand("reset", "Reset the random colour role settings of this server"),
				subcommand("resetcog", "Reset every random colour role setting (bot owner)"),
			},
		},
	}
}

// HandleCommand processes a random colour role command
func (c *RoleColourCommand) HandleCommand(ctx context.Context, r *Request) error {
	if err := guildOnly(r); err != nil {
		return err
	}

	switch r.Sub() {
	case "role":
		out, err := c.roleColourService.SetRole(ctx, &rolecolour.SetRoleInput{
			GuildID: r.GuildID(),
			RoleID:  r.Options.ID("role"),
		})
		if err != nil {
			return err
		}
		if out.Role == nil {
			return r.Ephemeral(ctx, "The random colour role has been cleared.")
		}
		return r.Ephemeral(ctx, fmt.Sprintf("%s will now be recoloured.", gateway.RoleMention(out.Role.ID)))
	case "status":
		enabled, _ := r.Options.Bool("enabled")
		err := c.roleColourService.SetStatus(ctx, &rolecolour.SetStatusInput{GuildID: r.GuildID(), Enabled: enabled})
		if err != nil {
			return err
		}
		if enabled {
			return r.Ephemeral(ctx, "The randomcolourrole has been enabled.")
		}
		return r.Ephemeral(ctx, "The randomcolourrole has been disabled.")
	case "showsettings":
		return c.handleShowSettings(ctx, r)
	case "reset":
		return r.Confirm(ctx, "Are you sure you want to reset the random colour role settings of this server?", func(ctx context.Context) (string, error) {
			if err := c.roleColourService.Reset(ctx, &rolecolour.ResetInput{GuildID: r.GuildID()}); err != nil {
				return "", err
			}
			return "The random colour role settings of this server have been reset.", nil
		})
	case "resetcog":
		if err := ownerOnly(r); err != nil {
			return err
		}
		return r.Confirm(ctx, "Are you sure you want to reset every random colour role setting?", func(ctx context.Context) (string, error) {
			if err := c.roleColourService.ResetCog(ctx); err != nil {
				return "", err
			}
			return "Every random colour role setting has been reset.", nil
		})
	}

	return ErrUnknownCommand
}

func (c *RoleColourCommand) handleShowSettings(ctx context.Context, r *Request) error {
	out, err := c.roleColourService.GetSettings(ctx, &rolecolour.GetSettingsInput{GuildID: r.GuildID()})
	if err != nil {
		return err
	}

	role := ""
	if out.Role != nil {
		role = gateway.RoleMention(out.Role.ID)
	}

	embed := settingsEmbed("Random Colour Role Settings",
		setting{"Role", role},
		boolSetting("Status", out.Settings.Enabled),
	)
	if len(out.Warnings) > 0 {
		embed.Description = strings.Join(out.Warnings, "\n")
	}

	return r.Reply(ctx, embedReply(embed, true))
}

// Run recolours roles until ctx is done
func (c *RoleColourCommand) Run(ctx context.Context) {
	c.roleColourService.Run(ctx)
}
