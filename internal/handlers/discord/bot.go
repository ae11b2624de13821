package discord

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/KirkDiggler/noobcogs/internal/common/timeout"
	"github.com/KirkDiggler/noobcogs/internal/common/uuid"
	"github.com/KirkDiggler/noobcogs/internal/gateway"
	"github.com/KirkDiggler/noobcogs/internal/services/customerror"
	"github.com/KirkDiggler/noobcogs/internal/services/devlogs"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const eventBuffer = 256

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	config     *Config
	logger     *zap.Logger
	modules    []Module
	commands   map[string]Module
	commandIDs map[string]string // Maps command name to command ID
	components map[string]ComponentModule
	prefixes   []string
	events     *dispatcher
	prompts    *prompts
	pages      *paginator

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Config holds the configuration for the bot
type Config struct {
	// Session is the discordgo session shared with the gateway
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// OwnerIDs may run owner-only commands
	OwnerIDs []string

	// Gateway is used to reply to plain messages from listeners
	Gateway gateway.Gateway

	// CustomError renders unexpected command errors
	CustomError customerror.Service

	// DevLogs is told about every completed command
	DevLogs devlogs.Service

	UUID   uuid.UUID
	Logger *zap.Logger

	// Modules are the cogs the bot hosts
	Modules []Module
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	bot, err := newBot(cfg)
	if err != nil {
		return nil, err
	}

	session := cfg.Session
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildEmojis |
		discordgo.IntentsMessageContent
	bot.session = session

	// Register the interaction handler
	session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		bot.route(context.Background(), s, i)
	})
	bot.addEventHandlers(session)

	return bot, nil
}

func newBot(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Gateway == nil {
		return nil, errors.New("gateway cannot be nil")
	}

	if cfg.CustomError == nil {
		return nil, errors.New("custom error service cannot be nil")
	}

	if cfg.DevLogs == nil {
		return nil, errors.New("devlogs service cannot be nil")
	}

	if cfg.UUID == nil {
		return nil, errors.New("uuid generator cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	bot := &Bot{
		config:     cfg,
		logger:     logger,
		commands:   make(map[string]Module),
		commandIDs: make(map[string]string),
		components: make(map[string]ComponentModule),
		prompts:    newPrompts(cfg.UUID, timeout.New(nil)),
		pages:      newPaginator(cfg.UUID, timeout.New(nil)),
	}

	var handlers []EventHandler
	for _, m := range cfg.Modules {
		if err := bot.addModule(m); err != nil {
			return nil, err
		}
		if h, ok := m.(EventHandler); ok {
			handlers = append(handlers, h)
		}
	}
	bot.events = newDispatcher(handlers, eventBuffer, logger)

	return bot, nil
}

func (b *Bot) addModule(m Module) error {
	b.modules = append(b.modules, m)

	for _, cmd := range m.Commands() {
		if _, ok := b.commands[cmd.Name]; ok {
			return fmt.Errorf("command %s registered twice", cmd.Name)
		}
		b.commands[cmd.Name] = m
	}

	if cm, ok := m.(ComponentModule); ok {
		for _, prefix := range cm.ComponentPrefixes() {
			if _, ok := b.components[prefix]; ok {
				return fmt.Errorf("component prefix %s registered twice", prefix)
			}
			b.components[prefix] = cm
			b.prefixes = append(b.prefixes, prefix)
		}
	}

	// Longest prefix wins
	sort.Slice(b.prefixes, func(i, j int) bool { return len(b.prefixes[i]) > len(b.prefixes[j]) })

	return nil
}

// Start opens the Discord connection, registers commands and starts background loops
func (b *Bot) Start(ctx context.Context) error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.registerCommands(); err != nil {
		return err
	}

	ctx, b.cancel = context.WithCancel(ctx)

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.events.run(ctx)
	}()

	for _, m := range b.modules {
		r, ok := m.(Runner)
		if !ok {
			continue
		}

		b.wg.Add(1)
		go func(name string, r Runner) {
			defer b.wg.Done()
			b.logger.Info("starting background loop", zap.String("module", name))
			r.Run(ctx)
		}(m.Name(), r)
	}

	b.logger.Info("bot is now running", zap.Int("modules", len(b.modules)))
	return nil
}

// Stop gracefully shuts down the background loops and the Discord connection
func (b *Bot) Stop() error {
	if b.cancel != nil {
		b.cancel()
	}
	b.wg.Wait()

	for _, m := range b.modules {
		if s, ok := m.(Stopper); ok {
			s.Shutdown()
		}
	}
	b.prompts.stop()
	b.pages.stop()

	// Commands registered for a development guild are removed again
	if b.config.GuildID != "" {
		appID := b.appID()
		for cmdName, cmdID := range b.commandIDs {
			if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
				b.logger.Warn("failed to delete command",
					zap.String("command", cmdName),
					zap.Error(err),
				)
			}
		}
	}

	return b.session.Close()
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// registerCommands overwrites the application commands with every module's commands
func (b *Bot) registerCommands() error {
	var cmds []*discordgo.ApplicationCommand
	for _, m := range b.modules {
		cmds = append(cmds, m.Commands()...)
	}

	created, err := b.session.ApplicationCommandBulkOverwrite(b.appID(), b.config.GuildID, cmds)
	if err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	for _, cmd := range created {
		b.commandIDs[cmd.Name] = cmd.ID
	}

	b.logger.Info("registered commands",
		zap.Int("count", len(created)),
		zap.String("guild_id", b.config.GuildID),
	)

	return nil
}

// route handles Discord interactions
func (b *Bot) route(ctx context.Context, s InteractionSession, i *discordgo.InteractionCreate) {
	r := b.newRequest(s, i.Interaction)

	// Handle different interaction types
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.handleCommand(ctx, r)
	case discordgo.InteractionMessageComponent:
		b.handleComponent(ctx, r)
	}
}

func (b *Bot) newRequest(s InteractionSession, i *discordgo.Interaction) *Request {
	r := &Request{
		Interaction: i,
		Responder:   &interactionResponder{session: s, interaction: i},
		bot:         b,
	}

	if i.Type == discordgo.InteractionApplicationCommand {
		r.Path, r.Options = commandPath(i.ApplicationCommandData())
	}

	return r
}

func (b *Bot) handleCommand(ctx context.Context, r *Request) {
	data := r.Interaction.ApplicationCommandData()
	command := strings.Join(r.Path, " ")

	m, ok := b.commands[data.Name]
	if !ok {
		b.logger.Warn("unknown command", zap.String("command", command))
		return
	}

	if err := m.HandleCommand(ctx, r); err != nil {
		b.handleError(ctx, r, command, err)
		return
	}

	b.completed(ctx, r, command)
}

func (b *Bot) handleComponent(ctx context.Context, r *Request) {
	customID := r.Interaction.MessageComponentData().CustomID

	var err error
	switch {
	case strings.HasPrefix(customID, confirmPrefix):
		err = b.prompts.handle(ctx, r)
	case strings.HasPrefix(customID, pagePrefix):
		err = b.pages.handle(ctx, r)
	default:
		m := b.componentModule(customID)
		if m == nil {
			b.logger.Warn("unknown component", zap.String("custom_id", customID))
			return
		}
		err = m.HandleComponent(ctx, r)
	}

	if err != nil {
		b.handleError(ctx, r, customID, err)
	}
}

func (b *Bot) componentModule(customID string) ComponentModule {
	for _, prefix := range b.prefixes {
		if strings.HasPrefix(customID, prefix) {
			return b.components[prefix]
		}
	}
	return nil
}

// handleError replies with user-facing rejections as they are and reports anything else
func (b *Bot) handleError(ctx context.Context, r *Request, command string, err error) {
	if msg, ok := userMessage(err); ok {
		if rerr := r.Reply(ctx, &Reply{Content: msg, Ephemeral: true}); rerr != nil {
			b.logger.Warn("failed to send rejection", zap.String("command", command), zap.Error(rerr))
		}
		return
	}

	content := "Something went wrong while running that command."
	out, rerr := b.config.CustomError.Report(ctx, &customerror.ReportInput{Context: b.commandContext(r, command, err)})
	if rerr != nil {
		b.logger.Error("failed to report command error",
			zap.String("command", command),
			zap.NamedError("command_error", err),
			zap.Error(rerr),
		)
	} else {
		content = out.Content
	}

	if rerr := r.Reply(ctx, &Reply{Content: content, Ephemeral: true}); rerr != nil {
		b.logger.Warn("failed to send error reply", zap.String("command", command), zap.Error(rerr))
	}
}

func (b *Bot) commandContext(r *Request, command string, err error) *customerror.CommandContext {
	user := r.User()
	return &customerror.CommandContext{
		AuthorName:     user.Username,
		AuthorID:       user.ID,
		GuildName:      b.guildName(r.GuildID()),
		GuildID:        r.GuildID(),
		ChannelName:    b.channelName(r.ChannelID()),
		ChannelID:      r.ChannelID(),
		Prefix:         "/",
		Command:        command,
		MessageContent: r.Content(),
		MessageID:      r.Interaction.ID,
		MessageJumpURL: channelURL(r.GuildID(), r.ChannelID()),
		Err:            err,
	}
}

// completed hands a successful command to the dev logs
func (b *Bot) completed(ctx context.Context, r *Request, command string) {
	user := r.User()
	_, err := b.config.DevLogs.OnCommandComplete(ctx, &devlogs.OnCommandCompleteInput{
		Command:     r.Path[0],
		Content:     r.Content(),
		AuthorID:    user.ID,
		AuthorName:  user.Username,
		AuthorIcon:  user.AvatarURL(""),
		GuildID:     r.GuildID(),
		GuildName:   b.guildName(r.GuildID()),
		ChannelID:   r.ChannelID(),
		ChannelName: b.channelName(r.ChannelID()),
		JumpURL:     channelURL(r.GuildID(), r.ChannelID()),
	})
	if err != nil {
		b.logger.Warn("failed to log command", zap.String("command", command), zap.Error(err))
	}
}

func (b *Bot) isOwner(userID string) bool {
	return slices.Contains(b.config.OwnerIDs, userID)
}

func (b *Bot) guildName(guildID string) string {
	if b.session == nil || guildID == "" {
		return ""
	}
	if g, err := b.session.State.Guild(guildID); err == nil {
		return g.Name
	}
	return ""
}

func (b *Bot) channelName(channelID string) string {
	if b.session == nil || channelID == "" {
		return ""
	}
	if c, err := b.session.State.Channel(channelID); err == nil {
		return c.Name
	}
	return ""
}

func (b *Bot) addEventHandlers(s *discordgo.Session) {
	s.AddHandler(func(_ *discordgo.Session, e *discordgo.Ready) {
		b.logger.Info("connected to Discord",
			zap.String("user", e.User.Username),
			zap.Int("guilds", len(e.Guilds)),
		)
		b.events.push(e)
	})
	s.AddHandler(func(_ *discordgo.Session, e *discordgo.MessageCreate) { b.events.push(e) })
	s.AddHandler(func(_ *discordgo.Session, e *discordgo.MessageDelete) { b.events.push(e) })
	s.AddHandler(func(_ *discordgo.Session, e *discordgo.MessageDeleteBulk) { b.events.push(e) })
	s.AddHandler(func(_ *discordgo.Session, e *discordgo.GuildMemberRemove) { b.events.push(e) })
	s.AddHandler(func(_ *discordgo.Session, e *discordgo.GuildEmojisUpdate) { b.events.push(e) })
}

func channelURL(guildID, channelID string) string {
	if channelID == "" {
		return ""
	}
	if guildID == "" {
		guildID = "@me"
	}
	return fmt.Sprintf("https://discord.com/channels/%s/%s", guildID, channelID)
}
