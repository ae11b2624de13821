package discord

import (
	"context"

	"github.com/KirkDiggler/noobcogs/internal/gateway"
	"github.com/bwmarrin/discordgo"
)

// messageResponder replies to a plain message seen by a listener
type messageResponder struct {
	gateway gateway.Gateway
	message *discordgo.Message
}

func newMessageResponder(gw gateway.Gateway, m *discordgo.Message) *messageResponder {
	return &messageResponder{gateway: gw, message: m}
}

// Reply sends a reply referencing the message; Ephemeral is ignored
func (r *messageResponder) Reply(ctx context.Context, reply *Reply) error {
	_, err := r.Send(ctx, reply)
	return err
}

// Send replies and returns the sent message
func (r *messageResponder) Send(ctx context.Context, reply *Reply) (*discordgo.Message, error) {
	return r.gateway.SendMessage(ctx, r.message.ChannelID, &discordgo.MessageSend{
		Content:         reply.Content,
		Embeds:          reply.Embeds,
		Components:      reply.Components,
		Reference:       r.message.Reference(),
		AllowedMentions: reply.mentions(),
	})
}

func (r *messageResponder) GuildID() string {
	return r.message.GuildID
}

func (r *messageResponder) AuthorID() string {
	if r.message.Author == nil {
		return ""
	}
	return r.message.Author.ID
}

func (r *messageResponder) ChannelID() string {
	return r.message.ChannelID
}
