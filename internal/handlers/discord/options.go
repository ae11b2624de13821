package discord

import (
	"sort"

	"github.com/bwmarrin/discordgo"
)

// Options are the options of a command keyed by name
type Options map[string]*discordgo.ApplicationCommandInteractionDataOption

// commandPath walks subcommand groups and subcommands down to the leaf options
func commandPath(data discordgo.ApplicationCommandInteractionData) ([]string, Options) {
	path := []string{data.Name}
	opts := data.Options

	for len(opts) == 1 &&
		(opts[0].Type == discordgo.ApplicationCommandOptionSubCommandGroup ||
			opts[0].Type == discordgo.ApplicationCommandOptionSubCommand) {
		path = append(path, opts[0].Name)
		opts = opts[0].Options
	}

	out := make(Options, len(opts))
	for _, o := range opts {
		out[o.Name] = o
	}

	return path, out
}

func (o Options) names() []string {
	names := make([]string, 0, len(o))
	for name := range o {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether an option was given
func (o Options) Has(name string) bool {
	_, ok := o[name]
	return ok
}

// String returns a string option or ""
func (o Options) String(name string) string {
	if opt, ok := o[name]; ok && opt.Type == discordgo.ApplicationCommandOptionString {
		return opt.StringValue()
	}
	return ""
}

// Int returns an integer option or 0
func (o Options) Int(name string) int64 {
	if opt, ok := o[name]; ok && opt.Type == discordgo.ApplicationCommandOptionInteger {
		return opt.IntValue()
	}
	return 0
}

// Number returns a number option or 0
func (o Options) Number(name string) float64 {
	if opt, ok := o[name]; ok && opt.Type == discordgo.ApplicationCommandOptionNumber {
		return opt.FloatValue()
	}
	return 0
}

// Bool returns a boolean option and whether it was given
func (o Options) Bool(name string) (bool, bool) {
	if opt, ok := o[name]; ok && opt.Type == discordgo.ApplicationCommandOptionBoolean {
		return opt.BoolValue(), true
	}
	return false, false
}

// ID returns the snowflake of a user, role, channel or mentionable option
func (o Options) ID(name string) string {
	opt, ok := o[name]
	if !ok {
		return ""
	}

	switch opt.Type {
	case discordgo.ApplicationCommandOptionUser,
		discordgo.ApplicationCommandOptionRole,
		discordgo.ApplicationCommandOptionChannel,
		discordgo.ApplicationCommandOptionMentionable:
		if id, ok := opt.Value.(string); ok {
			return id
		}
	}
	return ""
}
