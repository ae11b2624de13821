package customerror

import (
	"strings"

	"github.com/KirkDiggler/noobcogs/internal/gateway"
)

// Render substitutes the known placeholders of template. Unknown placeholders are left as written.
func Render(template string, c *CommandContext) string {
	if c == nil {
		c = &CommandContext{}
	}

	errText := ""
	if c.Err != nil {
		errText = c.Err.Error()
	}

	return strings.NewReplacer(
		"{author}", c.AuthorName,
		"{author(id)}", c.AuthorID,
		"{author(mention)}", mention(c.AuthorID, gateway.Mention),
		"{guild}", c.GuildName,
		"{guild(id)}", c.GuildID,
		"{channel}", c.ChannelName,
		"{channel(id)}", c.ChannelID,
		"{channel(mention)}", mention(c.ChannelID, gateway.ChannelMention),
		"{prefix}", c.Prefix,
		"{error}", errText,
		"{command}", c.Command,
		"{message_content}", c.MessageContent,
		"{message_id}", c.MessageID,
		"{message_jump_url}", c.MessageJumpURL,
	).Replace(template)
}

func mention(id string, f func(string) string) string {
	if id == "" {
		return ""
	}
	return f(id)
}
