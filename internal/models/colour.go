package models

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// ButtonColour is a named button style guild admins can pick
type ButtonColour string

const (
	ButtonColourGreen   ButtonColour = "green"
	ButtonColourGrey    ButtonColour = "grey"
	ButtonColourBlurple ButtonColour = "blurple"
	ButtonColourRed     ButtonColour = "red"
)

// ParseButtonColour validates a user supplied colour name
func ParseButtonColour(s string) (ButtonColour, bool) {
	switch c := ButtonColour(strings.ToLower(strings.TrimSpace(s))); c {
	case ButtonColourGreen, ButtonColourGrey, ButtonColourBlurple, ButtonColourRed:
		return c, true
	case "gray":
		return ButtonColourGrey, true
	}
	return "", false
}

// Style maps the colour to a discord button style
func (c ButtonColour) Style() discordgo.ButtonStyle {
	switch c {
	case ButtonColourGreen:
		return discordgo.SuccessButton
	case ButtonColourGrey:
		return discordgo.SecondaryButton
	case ButtonColourRed:
		return discordgo.DangerButton
	default:
		return discordgo.PrimaryButton
	}
}

// ButtonColourChoices lists the colours for slash command choices
func ButtonColourChoices() []*discordgo.ApplicationCommandOptionChoice {
	colours := []ButtonColour{ButtonColourGreen, ButtonColourGrey, ButtonColourBlurple, ButtonColourRed}
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(colours))
	for _, c := range colours {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: string(c), Value: string(c)})
	}
	return choices
}
