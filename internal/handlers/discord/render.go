package discord

import (
	"github.com/KirkDiggler/noobcogs/internal/common/format"
	"github.com/bwmarrin/discordgo"
)

const (
	colourDefault = 0x5865f2
	colourError   = 0xff0000 // Red color
)

// setting is one row of a settings embed
type setting struct {
	name  string
	value string
}

// settingsEmbed renders a module's settings as inline fields
func settingsEmbed(title string, rows ...setting) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: title,
		Color: colourDefault,
	}
	for _, row := range rows {
		value := row.value
		if value == "" {
			value = "None"
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   row.name,
			Value:  value,
			Inline: true,
		})
	}
	return embed
}

// boolSetting renders a toggle row
func boolSetting(name string, v bool) setting {
	return setting{name: name, value: format.Bool(v)}
}

// embedReply wraps a single embed
func embedReply(embed *discordgo.MessageEmbed, ephemeral bool) *Reply {
	return &Reply{Embeds: []*discordgo.MessageEmbed{embed}, Ephemeral: ephemeral}
}

// subcommand builds a subcommand option
func subcommand(name, description string, options ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommand,
		Name:        name,
		Description: description,
		Options:     options,
	}
}

// group builds a subcommand group option
func group(name, description string, subs ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
		Name:        name,
		Description: description,
		Options:     subs,
	}
}

// option builds a leaf option
func option(kind discordgo.ApplicationCommandOptionType, name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        kind,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

// withChoices adds fixed choices to a string option
func withChoices(opt *discordgo.ApplicationCommandOption, choices []*discordgo.ApplicationCommandOptionChoice) *discordgo.ApplicationCommandOption {
	opt.Choices = choices
	return opt
}

// manageGuild restricts a command to members with Manage Server by default
func manageGuild() *int64 {
	perm := int64(discordgo.PermissionManageGuild)
	return &perm
}

// manageMessages restricts a command to moderators by default
func manageMessages() *int64 {
	perm := int64(discordgo.PermissionManageMessages)
	return &perm
}

func guildContext() *bool {
	dm := false
	return &dm
}
