package gateway

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// IsNotFound reports whether err means the target resource no longer exists
func IsNotFound(err error) bool {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return false
	}

	if restErr.Message != nil {
		switch restErr.Message.Code {
		case discordgo.ErrCodeUnknownMessage,
			discordgo.ErrCodeUnknownChannel,
			discordgo.ErrCodeUnknownGuild,
			discordgo.ErrCodeUnknownMember,
			discordgo.ErrCodeUnknownRole:
			return true
		}
	}

	return restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound
}

// Mention formats a user mention
func Mention(userID string) string {
	return fmt.Sprintf("<@%s>", userID)
}

// ChannelMention formats a channel mention
func ChannelMention(channelID string) string {
	return fmt.Sprintf("<#%s>", channelID)
}

// RoleMention formats a role mention
func RoleMention(roleID string) string {
	return fmt.Sprintf("<@&%s>", roleID)
}

// DisplayName returns the member's nickname, falling back to global and user names
func DisplayName(member *discordgo.Member) string {
	if member == nil {
		return ""
	}
	if member.Nick != "" {
		return member.Nick
	}
	if member.User == nil {
		return ""
	}
	if member.User.GlobalName != "" {
		return member.User.GlobalName
	}
	return member.User.Username
}

// TopRolePosition returns the highest position among the member's roles
func TopRolePosition(guild *discordgo.Guild, member *discordgo.Member) int {
	if guild == nil || member == nil {
		return 0
	}

	top := 0
	for _, role := range guild.Roles {
		for _, id := range member.Roles {
			if role.ID == id && role.Position > top {
				top = role.Position
			}
		}
	}
	return top
}

// FindRole returns the guild role with the given ID
func FindRole(guild *discordgo.Guild, roleID string) *discordgo.Role {
	if guild == nil {
		return nil
	}
	for _, role := range guild.Roles {
		if role.ID == roleID {
			return role
		}
	}
	return nil
}

var customEmojiPattern = regexp.MustCompile(`^<(a?):([A-Za-z0-9_~]+):(\d+)>$`)

// CustomEmojiID extracts the ID of a custom emoji string like <:name:id>
func CustomEmojiID(emoji string) (string, bool) {
	m := customEmojiPattern.FindStringSubmatch(strings.TrimSpace(emoji))
	if m == nil {
		return "", false
	}
	return m[3], true
}

// ReactionEmoji converts a message-formatted emoji into the form the reaction endpoint expects
func ReactionEmoji(emoji string) string {
	m := customEmojiPattern.FindStringSubmatch(strings.TrimSpace(emoji))
	if m == nil {
		return strings.TrimSpace(emoji)
	}
	return m[2] + ":" + m[3]
}

// ComponentEmoji converts a message-formatted emoji into a button emoji
func ComponentEmoji(emoji string) *discordgo.ComponentEmoji {
	m := customEmojiPattern.FindStringSubmatch(strings.TrimSpace(emoji))
	if m == nil {
		return &discordgo.ComponentEmoji{Name: strings.TrimSpace(emoji)}
	}
	return &discordgo.ComponentEmoji{Name: m[2], ID: m[3], Animated: m[1] == "a"}
}

// Pagify splits text into chunks no longer than limit, preferring to break after delim
func Pagify(text, delim string, limit int) []string {
	var pages []string
	for len(text) > limit {
		cut := strings.LastIndex(text[:limit], delim)
		if cut <= 0 {
			cut = limit
		} else {
			cut += len(delim)
		}
		pages = append(pages, text[:cut])
		text = text[cut:]
	}
	if text != "" {
		pages = append(pages, text)
	}
	return pages
}

// PagifyLines groups lines into pages joined by sep, each no longer than limit.
// A line longer than limit is split on its own.
func PagifyLines(lines []string, sep string, limit int) []string {
	var pages []string
	var cur strings.Builder
	for _, line := range lines {
		if len(line) > limit {
			if cur.Len() > 0 {
				pages = append(pages, cur.String())
				cur.Reset()
			}
			pages = append(pages, Pagify(line, " ", limit)...)
			continue
		}

		if cur.Len() > 0 && cur.Len()+len(sep)+len(line) > limit {
			pages = append(pages, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteString(sep)
		}
		cur.WriteString(line)
	}
	if cur.Len() > 0 {
		pages = append(pages, cur.String())
	}
	return pages
}
