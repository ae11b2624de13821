package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Module is a cog hosted by the bot
type Module interface {
	// Name identifies the module in logs
	Name() string

	// Commands returns the application commands the module answers
	Commands() []*discordgo.ApplicationCommand

	// HandleCommand processes one of the module's commands
	HandleCommand(ctx context.Context, r *Request) error
}

// ComponentModule is a module that owns message components
type ComponentModule interface {
	Module

	// ComponentPrefixes returns the custom ID prefixes routed to the module
	ComponentPrefixes() []string

	// HandleComponent processes a component interaction
	HandleComponent(ctx context.Context, r *Request) error
}

// EventHandler receives platform events from the dispatcher
type EventHandler interface {
	HandleEvent(ctx context.Context, event any)
}

// Runner is a module with a background loop
type Runner interface {
	Run(ctx context.Context)
}

// Stopper is a module with pending work to stop on shutdown
type Stopper interface {
	Shutdown()
}

// InteractionSession is the subset of the discordgo session used to answer interactions
type InteractionSession interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Reply is a message sent back to the invoker
type Reply struct {
	Content    string
	Embeds     []*discordgo.MessageEmbed
	Components []discordgo.MessageComponent

	// Ephemeral replies are only shown to the invoker
	Ephemeral bool

	// AllowedMentions defaults to none
	AllowedMentions *discordgo.MessageAllowedMentions
}

func (r *Reply) mentions() *discordgo.MessageAllowedMentions {
	if r.AllowedMentions != nil {
		return r.AllowedMentions
	}
	return &discordgo.MessageAllowedMentions{Parse: []discordgo.AllowedMentionType{}}
}

// Responder answers whoever triggered a handler
type Responder interface {
	Reply(ctx context.Context, reply *Reply) error
	GuildID() string
	AuthorID() string
	ChannelID() string
}

// interactionResponder answers slash commands and components
type interactionResponder struct {
	session     InteractionSession
	interaction *discordgo.Interaction
	responded   bool
}

// Reply responds to the interaction, or sends a followup once it has been answered
func (r *interactionResponder) Reply(ctx context.Context, reply *Reply) error {
	if r.responded {
		params := &discordgo.WebhookParams{
			Content:         reply.Content,
			Embeds:          reply.Embeds,
			Components:      reply.Components,
			AllowedMentions: reply.mentions(),
		}
		if reply.Ephemeral {
			params.Flags = discordgo.MessageFlagsEphemeral
		}
		_, err := r.session.FollowupMessageCreate(r.interaction, true, params, discordgo.WithContext(ctx))
		return err
	}

	return r.respond(ctx, discordgo.InteractionResponseChannelMessageWithSource, reply)
}

// Update edits the message a component belongs to
func (r *interactionResponder) Update(ctx context.Context, reply *Reply) error {
	return r.respond(ctx, discordgo.InteractionResponseUpdateMessage, reply)
}

// Acknowledge answers a component interaction without changing its message
func (r *interactionResponder) Acknowledge(ctx context.Context) error {
	err := r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return err
	}

	r.responded = true
	return nil
}

func (r *interactionResponder) respond(ctx context.Context, kind discordgo.InteractionResponseType, reply *Reply) error {
	data := &discordgo.InteractionResponseData{
		Content:         reply.Content,
		Embeds:          reply.Embeds,
		Components:      reply.Components,
		AllowedMentions: reply.mentions(),
	}
	if reply.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	// An update with no components removes them
	if kind == discordgo.InteractionResponseUpdateMessage && data.Components == nil {
		data.Components = []discordgo.MessageComponent{}
	}

	err := r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: kind,
		Data: data,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return err
	}

	r.responded = true
	return nil
}

func (r *interactionResponder) GuildID() string {
	return r.interaction.GuildID
}

func (r *interactionResponder) AuthorID() string {
	return interactionUser(r.interaction).ID
}

func (r *interactionResponder) ChannelID() string {
	return r.interaction.ChannelID
}

// Request is one interaction routed to a module
type Request struct {
	Interaction *discordgo.Interaction
	Responder   Responder

	// Path is the command name followed by its subcommand group and subcommand
	Path []string

	// Options are the options of the innermost subcommand
	Options Options

	bot *Bot
}

// Reply answers the invoker
func (r *Request) Reply(ctx context.Context, reply *Reply) error {
	return r.Responder.Reply(ctx, reply)
}

// Ephemeral answers the invoker with a message only they see
func (r *Request) Ephemeral(ctx context.Context, content string) error {
	return r.Reply(ctx, &Reply{Content: content, Ephemeral: true})
}

// Update edits the message of a component interaction
func (r *Request) Update(ctx context.Context, reply *Reply) error {
	ir, ok := r.Responder.(*interactionResponder)
	if !ok {
		return r.Reply(ctx, reply)
	}
	return ir.Update(ctx, reply)
}

// UpdateComponents swaps the components of a component's message and keeps its content
func (r *Request) UpdateComponents(ctx context.Context, components []discordgo.MessageComponent) error {
	reply := &Reply{Components: components}
	if m := r.Interaction.Message; m != nil {
		reply.Content = m.Content
		reply.Embeds = m.Embeds
	}
	return r.Update(ctx, reply)
}

// Acknowledge answers a component interaction whose effects were posted elsewhere
func (r *Request) Acknowledge(ctx context.Context) error {
	ir, ok := r.Responder.(*interactionResponder)
	if !ok {
		return nil
	}
	return ir.Acknowledge(ctx)
}

// Confirm asks the invoker to confirm before running action
func (r *Request) Confirm(ctx context.Context, question string, action ConfirmAction) error {
	return r.bot.prompts.ask(ctx, r, question, action)
}

// Paginate replies with embeds browsable with Prev and Next buttons
func (r *Request) Paginate(ctx context.Context, pages []*discordgo.MessageEmbed, ephemeral bool) error {
	return r.bot.pages.start(ctx, r, pages, ephemeral)
}

// Sub returns the subcommand path below the command name
func (r *Request) Sub() string {
	if len(r.Path) < 2 {
		return ""
	}
	return strings.Join(r.Path[1:], " ")
}

func (r *Request) GuildID() string {
	return r.Responder.GuildID()
}

func (r *Request) ChannelID() string {
	return r.Responder.ChannelID()
}

func (r *Request) UserID() string {
	return r.Responder.AuthorID()
}

// User returns the invoking user, inside or outside a guild
func (r *Request) User() *discordgo.User {
	return interactionUser(r.Interaction)
}

// Member returns the invoking member; nil outside guilds
func (r *Request) Member() *discordgo.Member {
	return r.Interaction.Member
}

// IsOwner reports whether the invoker is a bot owner
func (r *Request) IsOwner() bool {
	return r.bot.isOwner(r.UserID())
}

// HasPermission reports whether the invoking member has a permission in the channel
func (r *Request) HasPermission(perm int64) bool {
	m := r.Member()
	if m == nil {
		return false
	}
	return m.Permissions&discordgo.PermissionAdministrator != 0 || m.Permissions&perm != 0
}

// Content renders the command the way it was typed
func (r *Request) Content() string {
	if r.Interaction.Type != discordgo.InteractionApplicationCommand {
		return ""
	}

	var b strings.Builder
	b.WriteString("/" + strings.Join(r.Path, " "))
	for _, name := range r.Options.names() {
		fmt.Fprintf(&b, " %s:%v", name, r.Options[name].Value)
	}
	return b.String()
}

// TargetMessage returns the message a message command was used on
func (r *Request) TargetMessage() *discordgo.Message {
	data := r.Interaction.ApplicationCommandData()
	if data.Resolved == nil {
		return nil
	}
	return data.Resolved.Messages[data.TargetID]
}

func interactionUser(i *discordgo.Interaction) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	if i.User != nil {
		return i.User
	}
	return &discordgo.User{}
}

// ownerOnly rejects invokers that are not bot owners
func ownerOnly(r *Request) error {
	if !r.IsOwner() {
		return ErrNotOwner
	}
	return nil
}

// guildOnly rejects commands used outside guilds
func guildOnly(r *Request) error {
	if r.GuildID() == "" {
		return ErrGuildOnly
	}
	return nil
}
