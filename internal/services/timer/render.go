package timer

import (
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/noobcogs/internal/common/format"
	"github.com/KirkDiggler/noobcogs/internal/gateway"
	"github.com/KirkDiggler/noobcogs/internal/models"
	"github.com/bwmarrin/discordgo"
)

// Embed colours
const (
	ColourRunning   = 0x5865F2
	ColourEnded     = 0x2F3136
	ColourCancelled = 0xE74C3C
)

const missingHost = "[Host not found in guild]"

func runningEmbed(t *models.Timer, settings *models.TimerSettings) *discordgo.MessageEmbed {
	var prompt string
	if settings.NotifyMembers {
		prompt = fmt.Sprintf("Click the %s button to get notified when this timer ends.\n", settings.Emoji)
	}

	end := t.EndsAt()
	return &discordgo.MessageEmbed{
		Title: t.Title,
		Description: fmt.Sprintf("%sTime left: %s (%s)\nHosted by: %s",
			prompt,
			format.Timestamp(end, format.StyleRelative),
			format.Timestamp(end, format.StyleFull),
			gateway.Mention(t.HostID),
		),
		Color:     ColourRunning,
		Timestamp: end.UTC().Format(time.RFC3339),
		Footer:    &discordgo.MessageEmbedFooter{Text: "Ends at"},
	}
}

func endedEmbed(t *models.Timer, hostPresent bool, now time.Time) *discordgo.MessageEmbed {
	host := missingHost
	if hostPresent {
		host = gateway.Mention(t.HostID)
	}

	return &discordgo.MessageEmbed{
		Title:       t.Title,
		Description: fmt.Sprintf("This timer has ended.\nHosted by: %s", host),
		Color:       ColourEnded,
		Timestamp:   now.UTC().Format(time.RFC3339),
		Footer:      &discordgo.MessageEmbedFooter{Text: "Ended at"},
	}
}

// cancelledEmbed rewrites the timer's current embed, keeping its title
func cancelledEmbed(current *discordgo.MessageEmbed, t *models.Timer, cancelledBy string, now time.Time) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{Title: t.Title}
	if current != nil {
		copied := *current
		embed = &copied
	}

	embed.Description = fmt.Sprintf("This timer was cancelled.\nCancelled by: %s", gateway.Mention(cancelledBy))
	embed.Color = ColourCancelled
	embed.Timestamp = now.UTC().Format(time.RFC3339)
	embed.Footer = &discordgo.MessageEmbedFooter{Text: "Cancelled at"}
	return embed
}

// NotifyComponents builds the opt-in button row of a running timer
func NotifyComponents(settings *models.TimerSettings, memberCount int) []discordgo.MessageComponent {
	label := strconv.Itoa(memberCount)
	if !settings.NotifyMembers {
		label = "Disabled"
	}
	return buttonRow(discordgo.Button{
		CustomID: NotifyButtonID,
		Label:    label,
		Style:    settings.StartedColour.Style(),
		Emoji:    gateway.ComponentEmoji(settings.Emoji),
		Disabled: !settings.NotifyMembers,
	})
}

func endedComponents(settings *models.TimerSettings, memberCount int) []discordgo.MessageComponent {
	return buttonRow(discordgo.Button{
		CustomID: NotifyButtonID,
		Label:    strconv.Itoa(memberCount),
		Style:    settings.EndedColour.Style(),
		Emoji:    gateway.ComponentEmoji(settings.Emoji),
		Disabled: true,
	})
}

func cancelledComponents(settings *models.TimerSettings) []discordgo.MessageComponent {
	return buttonRow(discordgo.Button{
		CustomID: NotifyButtonID,
		Style:    settings.StartedColour.Style(),
		Emoji:    gateway.ComponentEmoji(settings.Emoji),
		Disabled: true,
	})
}

func jumpComponents(url string) []discordgo.MessageComponent {
	return buttonRow(discordgo.Button{
		Label: "Jump To Timer",
		Style: discordgo.LinkButton,
		URL:   url,
	})
}

func buttonRow(buttons ...discordgo.Button) []discordgo.MessageComponent {
	row := discordgo.ActionsRow{}
	for _, b := range buttons {
		row.Components = append(row.Components, b)
	}
	return []discordgo.MessageComponent{row}
}
