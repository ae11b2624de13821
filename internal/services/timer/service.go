package timer

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/noobcogs/internal/common/clock"
	"github.com/KirkDiggler/noobcogs/internal/common/format"
	"github.com/KirkDiggler/noobcogs/internal/gateway"
	"github.com/KirkDiggler/noobcogs/internal/models"
	settingsRepo "github.com/KirkDiggler/noobcogs/internal/repositories/settings"
	timerRepo "github.com/KirkDiggler/noobcogs/internal/repositories/timer"
	"github.com/bwmarrin/discordgo"
	"github.com/sho0pi/naturaltime"
	"github.com/xhit/go-str2duration/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const cogName = "timers"

// Setting fields
const (
	fieldStartedColour = "button_colour_started"
	fieldEndedColour   = "button_colour_ended"
	fieldNotify        = "notify_members"
	fieldEmoji         = "timer_emoji"
	fieldMaxDuration   = "maximum_duration"
)

// service implements the Service interface
type service struct {
	timerRepo    timerRepo.Repository
	settingsRepo settingsRepo.Repository
	gateway      gateway.Gateway
	clock        clock.Clock
	logger       *zap.Logger
	parser       *naturaltime.Parser

	pollInterval    time.Duration
	chunkInterval   time.Duration
	notificationTTL time.Duration
	claimTTL        time.Duration
}

// New creates a new timer service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.TimerRepo == nil {
		return nil, ErrNilTimerRepo
	}

	if cfg.SettingsRepo == nil {
		return nil, ErrNilSettingsRepo
	}

	if cfg.Gateway == nil {
		return nil, ErrNilGateway
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	parser, err := naturaltime.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create natural time parser: %w", err)
	}

	s := &service{
		timerRepo:       cfg.TimerRepo,
		settingsRepo:    cfg.SettingsRepo,
		gateway:         cfg.Gateway,
		clock:           cfg.Clock,
		logger:          cfg.Logger,
		parser:          parser,
		pollInterval:    cfg.PollInterval,
		chunkInterval:   cfg.ChunkInterval,
		notificationTTL: cfg.NotificationTTL,
		claimTTL:        cfg.ClaimTTL,
	}

	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.pollInterval <= 0 {
		s.pollInterval = DefaultPollInterval
	}
	if s.chunkInterval <= 0 {
		s.chunkInterval = 500 * time.Millisecond
	}
	if s.notificationTTL <= 0 {
		s.notificationTTL = 3 * time.Second
	}
	if s.claimTTL <= 0 {
		s.claimTTL = time.Minute
	}

	return s, nil
}

// CreateTimer validates the duration, posts the running timer and stores it
func (s *service) CreateTimer(ctx context.Context, input *CreateTimerInput) (*CreateTimerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	now := s.clock.Now()

	duration, err := s.parseDuration(input.Duration, now)
	if err != nil {
		return nil, err
	}

	maxDuration, err := s.maxDuration(ctx)
	if err != nil {
		return nil, err
	}

	if duration > maxDuration {
		return nil, TimerError(fmt.Sprintf("Max duration for timers is: **%s**.", format.Duration(maxDuration)))
	}

	if duration < MinDuration {
		return nil, ErrDurationTooShort
	}

	settings, err := s.guildSettings(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = DefaultTitle
	}

	timer := &models.Timer{
		GuildID:      input.GuildID,
		ChannelID:    input.ChannelID,
		HostID:       input.HostID,
		Title:        title,
		EndTimestamp: now.Add(duration).Round(time.Second).Unix(),
	}

	msg, err := s.gateway.SendMessage(ctx, input.ChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{runningEmbed(timer, settings)},
		Components: NotifyComponents(settings, 0),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to post timer: %w", err)
	}

	timer.MessageID = msg.ID

	if err := s.timerRepo.Create(ctx, &timerRepo.CreateInput{Timer: timer}); err != nil {
		return nil, fmt.Errorf("failed to store timer: %w", err)
	}

	s.logger.Info("timer started",
		zap.String("guild_id", timer.GuildID),
		zap.String("message_id", timer.MessageID),
		zap.Int64("end_timestamp", timer.EndTimestamp),
	)

	return &CreateTimerOutput{Timer: timer}, nil
}

// OptIn adds a member to a timer's notification list
func (s *service) OptIn(ctx context.Context, input *OptInInput) (*OptInOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	settings, err := s.guildSettings(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	if !settings.NotifyMembers {
		return nil, ErrNotificationsOff
	}

	timer, err := s.getTimer(ctx, input.GuildID, input.MessageID)
	if err != nil {
		return nil, err
	}

	if timer.HostID == input.UserID {
		return nil, ErrHostOptIn
	}

	added, err := s.timerRepo.AddMember(ctx, &timerRepo.AddMemberInput{
		GuildID:   input.GuildID,
		MessageID: input.MessageID,
		UserID:    input.UserID,
	})
	if err != nil {
		if errors.Is(err, timerRepo.ErrTimerNotFound) {
			return nil, ErrTimerNotFound
		}
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	if !added {
		return nil, ErrAlreadyNotified
	}

	count := len(timer.Members) + 1
	return &OptInOutput{
		MemberCount: count,
		Components:  NotifyComponents(settings, count),
	}, nil
}

// EndTimer ends a timer now; the deadline is ignored
func (s *service) EndTimer(ctx context.Context, input *EndTimerInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	timer, err := s.activeTimer(ctx, input.GuildID, input.MessageID)
	if err != nil {
		return err
	}

	if !canManage(timer, input.ActorID, input.Moderator) {
		return ErrNotTimerHost
	}

	ended, err := s.endTimer(ctx, timer)
	if err != nil {
		return err
	}

	if !ended {
		return ErrTimerNotFound
	}

	return nil
}

// CancelTimer drops a timer and marks its message cancelled
func (s *service) CancelTimer(ctx context.Context, input *CancelTimerInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	timer, err := s.activeTimer(ctx, input.GuildID, input.MessageID)
	if err != nil {
		return err
	}

	if !canManage(timer, input.CancelledBy, input.Moderator) {
		return ErrNotTimerHost
	}

	claimed, err := s.claim(ctx, timer)
	if err != nil {
		return err
	}
	if !claimed {
		return ErrTimerNotFound
	}

	if err := s.deleteRecord(ctx, timer); err != nil {
		return err
	}

	settings, err := s.guildSettings(ctx, timer.GuildID)
	if err != nil {
		return err
	}

	msg, err := s.gateway.Message(ctx, timer.ChannelID, timer.MessageID)
	if err != nil {
		if !gateway.IsNotFound(err) {
			s.logger.Warn("failed to fetch cancelled timer message",
				zap.String("guild_id", timer.GuildID),
				zap.String("message_id", timer.MessageID),
				zap.Error(err),
			)
		}
		return nil
	}

	var current *discordgo.MessageEmbed
	if len(msg.Embeds) > 0 {
		current = msg.Embeds[0]
	}

	embeds := []*discordgo.MessageEmbed{cancelledEmbed(current, timer, input.CancelledBy, s.clock.Now())}
	components := cancelledComponents(settings)

	edit := discordgo.NewMessageEdit(timer.ChannelID, timer.MessageID)
	edit.Embeds = &embeds
	edit.Components = &components

	if _, err := s.gateway.EditMessage(ctx, edit); err != nil {
		s.logger.Warn("failed to edit cancelled timer",
			zap.String("guild_id", timer.GuildID),
			zap.String("message_id", timer.MessageID),
			zap.Error(err),
		)
	}

	return nil
}

// ListTimers returns a guild's active timers, soonest first
func (s *service) ListTimers(ctx context.Context, input *ListTimersInput) (*ListTimersOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	out, err := s.timerRepo.ListByGuild(ctx, &timerRepo.ListByGuildInput{GuildID: input.GuildID})
	if err != nil {
		return nil, fmt.Errorf("failed to list timers: %w", err)
	}

	if len(out.Timers) == 0 {
		return nil, ErrNoTimers
	}

	return &ListTimersOutput{Timers: out.Timers}, nil
}

// CheckExpired runs the end action of every timer past its deadline
func (s *service) CheckExpired(ctx context.Context) error {
	guilds, err := s.timerRepo.ListGuilds(ctx)
	if err != nil {
		return fmt.Errorf("failed to list timer guilds: %w", err)
	}

	now := s.clock.Now()
	for _, guildID := range guilds {
		out, err := s.timerRepo.ListByGuild(ctx, &timerRepo.ListByGuildInput{GuildID: guildID})
		if err != nil {
			s.logger.Error("failed to list timers", zap.String("guild_id", guildID), zap.Error(err))
			continue
		}

		// Timers are ordered by deadline
		for _, timer := range out.Timers {
			if !timer.Expired(now) {
				break
			}

			if _, err := s.endTimer(ctx, timer); err != nil {
				s.logger.Error("failed to end timer",
					zap.String("guild_id", timer.GuildID),
					zap.String("message_id", timer.MessageID),
					zap.Error(err),
				)
			}
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	return nil
}

// Run polls for expired timers until ctx is cancelled
func (s *service) Run(ctx context.Context) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	s.logger.Info("timer poll loop started", zap.Duration("interval", s.pollInterval))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("timer poll loop stopped")
			return
		case <-ticker.C:
			if err := s.CheckExpired(ctx); err != nil && !errors.Is(err, context.Canceled) {
				s.logger.Error("timer poll failed", zap.Error(err))
			}
		}
	}
}

// HandleMessageDelete drops the records of deleted timer messages
func (s *service) HandleMessageDelete(ctx context.Context, input *HandleMessageDeleteInput) error {
	if input == nil || input.GuildID == "" || len(input.MessageIDs) == 0 {
		return nil
	}

	removed, err := s.timerRepo.Delete(ctx, &timerRepo.DeleteInput{
		GuildID:    input.GuildID,
		MessageIDs: input.MessageIDs,
	})
	if err != nil {
		return fmt.Errorf("failed to delete timers: %w", err)
	}

	if removed > 0 {
		s.logger.Info("removed timers of deleted messages",
			zap.String("guild_id", input.GuildID),
			zap.Int64("count", removed),
		)
	}

	return nil
}

// GetSettings returns the guild's settings and the global maximum duration
func (s *service) GetSettings(ctx context.Context, input *GetSettingsInput) (*GetSettingsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	settings, err := s.guildSettings(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	maxDuration, err := s.maxDuration(ctx)
	if err != nil {
		return nil, err
	}

	return &GetSettingsOutput{Settings: settings, MaxDuration: maxDuration}, nil
}

// SetButtonColour changes one of the button colours; an empty colour or "reset" restores the default
func (s *service) SetButtonColour(ctx context.Context, input *SetButtonColourInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	var field string
	switch input.State {
	case ButtonStateStarted:
		field = fieldStartedColour
	case ButtonStateEnded:
		field = fieldEndedColour
	default:
		return ErrInvalidButtonState
	}

	scope := settingsRepo.Guild(cogName, input.GuildID)

	raw := strings.TrimSpace(input.Colour)
	if raw == "" || strings.EqualFold(raw, "reset") {
		_, err := s.settingsRepo.DeleteFields(ctx, &settingsRepo.DeleteFieldsInput{Scope: scope, Fields: []string{field}})
		return err
	}

	colour, ok := models.ParseButtonColour(raw)
	if !ok {
		return ErrInvalidButtonColour
	}

	return s.settingsRepo.Set(ctx, &settingsRepo.SetInput{
		Scope:  scope,
		Fields: map[string]string{field: string(colour)},
	})
}

// SetEmoji changes the notify button emoji; empty restores the default
func (s *service) SetEmoji(ctx context.Context, input *SetEmojiInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	scope := settingsRepo.Guild(cogName, input.GuildID)

	emoji := strings.TrimSpace(input.Emoji)
	if emoji == "" {
		_, err := s.settingsRepo.DeleteFields(ctx, &settingsRepo.DeleteFieldsInput{Scope: scope, Fields: []string{fieldEmoji}})
		return err
	}

	return s.settingsRepo.Set(ctx, &settingsRepo.SetInput{
		Scope:  scope,
		Fields: map[string]string{fieldEmoji: emoji},
	})
}

// ToggleNotify flips whether members may opt in to notifications
func (s *service) ToggleNotify(ctx context.Context, input *ToggleNotifyInput) (*ToggleNotifyOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	settings, err := s.guildSettings(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	notify := !settings.NotifyMembers
	err = s.settingsRepo.Set(ctx, &settingsRepo.SetInput{
		Scope:  settingsRepo.Guild(cogName, input.GuildID),
		Fields: map[string]string{fieldNotify: strconv.FormatBool(notify)},
	})
	if err != nil {
		return nil, err
	}

	return &ToggleNotifyOutput{NotifyMembers: notify}, nil
}

// SetMaxDuration changes the longest timer any guild may start
func (s *service) SetMaxDuration(ctx context.Context, input *SetMaxDurationInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	duration, err := str2duration.ParseDuration(strings.TrimSpace(input.Duration))
	if err != nil || duration < MinDuration || duration > DefaultMaxDuration {
		return ErrInvalidMaxDuration
	}

	return s.settingsRepo.Set(ctx, &settingsRepo.SetInput{
		Scope:  settingsRepo.Global(cogName),
		Fields: map[string]string{fieldMaxDuration: strconv.FormatInt(int64(duration/time.Second), 10)},
	})
}

// ResetGuild drops the guild's settings and its running timers
func (s *service) ResetGuild(ctx context.Context, input *ResetGuildInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := s.settingsRepo.Clear(ctx, &settingsRepo.ClearInput{Scope: settingsRepo.Guild(cogName, input.GuildID)}); err != nil {
		return fmt.Errorf("failed to clear timer settings: %w", err)
	}

	if err := s.timerRepo.DeleteGuild(ctx, &timerRepo.DeleteGuildInput{GuildID: input.GuildID}); err != nil {
		return fmt.Errorf("failed to delete guild timers: %w", err)
	}

	return nil
}

// ResetCog drops every timer setting and every running timer
func (s *service) ResetCog(ctx context.Context) error {
	if err := s.settingsRepo.ClearCog(ctx, &settingsRepo.ClearCogInput{Cog: cogName}); err != nil {
		return fmt.Errorf("failed to clear timer settings: %w", err)
	}

	if err := s.timerRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to delete timers: %w", err)
	}

	return nil
}

// endTimer performs the end action and reports whether this caller owned it.
// Only the fetch of the timer message decides between retry and drop; the
// edit, notification and reply are best effort.
func (s *service) endTimer(ctx context.Context, timer *models.Timer) (bool, error) {
	claimed, err := s.claim(ctx, timer)
	if err != nil || !claimed {
		return false, err
	}

	log := s.logger.With(zap.String("guild_id", timer.GuildID), zap.String("message_id", timer.MessageID))

	settings, err := s.guildSettings(ctx, timer.GuildID)
	if err != nil {
		return false, err
	}

	if _, err := s.gateway.Message(ctx, timer.ChannelID, timer.MessageID); err != nil {
		if gateway.IsNotFound(err) {
			log.Info("timer message is gone, dropping timer")
			return true, s.deleteRecord(ctx, timer)
		}
		return false, fmt.Errorf("failed to fetch timer message: %w", err)
	}

	hostPresent := s.inGuild(ctx, timer.GuildID, timer.HostID)

	embeds := []*discordgo.MessageEmbed{endedEmbed(timer, hostPresent, s.clock.Now())}
	components := endedComponents(settings, len(timer.Members))

	edit := discordgo.NewMessageEdit(timer.ChannelID, timer.MessageID)
	edit.Embeds = &embeds
	edit.Components = &components

	if _, err := s.gateway.EditMessage(ctx, edit); err != nil {
		log.Warn("failed to edit ended timer", zap.Error(err))
	}

	if settings.NotifyMembers {
		recipients := make([]string, 0, len(timer.Members)+1)
		if hostPresent {
			recipients = append(recipients, timer.HostID)
		}
		for _, id := range timer.Members {
			if s.inGuild(ctx, timer.GuildID, id) {
				recipients = append(recipients, id)
			}
		}
		s.notifyMembers(ctx, timer, recipients)
	}

	_, err = s.gateway.SendMessage(ctx, timer.ChannelID, &discordgo.MessageSend{
		Content: fmt.Sprintf("The timer for **%s** has ended!", timer.Title),
		Reference: &discordgo.MessageReference{
			MessageID: timer.MessageID,
			ChannelID: timer.ChannelID,
			GuildID:   timer.GuildID,
		},
		Components:      jumpComponents(timer.JumpURL()),
		AllowedMentions: &discordgo.MessageAllowedMentions{Parse: []discordgo.AllowedMentionType{}},
	})
	if err != nil {
		log.Warn("failed to reply to ended timer", zap.Error(err))
	}

	log.Info("timer ended", zap.Int("members", len(timer.Members)))

	return true, s.deleteRecord(ctx, timer)
}

// notifyMembers pings the recipients in short-lived chunks
func (s *service) notifyMembers(ctx context.Context, timer *models.Timer, recipients []string) {
	if len(recipients) == 0 {
		return
	}

	mentions := make([]string, 0, len(recipients))
	for _, id := range recipients {
		mentions = append(mentions, gateway.Mention(id))
	}

	limiter := rate.NewLimiter(rate.Every(s.chunkInterval), 1)
	for _, page := range gateway.Pagify(strings.Join(mentions, ","), ",", 1900) {
		if err := limiter.Wait(ctx); err != nil {
			return
		}

		msg, err := s.gateway.SendMessage(ctx, timer.ChannelID, &discordgo.MessageSend{Content: page})
		if err != nil {
			s.logger.Warn("failed to send timer notification",
				zap.String("guild_id", timer.GuildID),
				zap.String("message_id", timer.MessageID),
				zap.Error(err),
			)
			continue
		}

		s.gateway.DeleteMessageAfter(timer.ChannelID, msg.ID, s.notificationTTL)
	}
}

// inGuild is false only when Discord says the member is gone
func (s *service) inGuild(ctx context.Context, guildID, userID string) bool {
	_, err := s.gateway.Member(ctx, guildID, userID)
	if err == nil {
		return true
	}

	if gateway.IsNotFound(err) {
		return false
	}

	s.logger.Warn("failed to look up timer member",
		zap.String("guild_id", guildID),
		zap.String("user_id", userID),
		zap.Error(err),
	)
	return true
}

func (s *service) claim(ctx context.Context, timer *models.Timer) (bool, error) {
	claimed, err := s.timerRepo.Claim(ctx, &timerRepo.ClaimInput{
		GuildID:   timer.GuildID,
		MessageID: timer.MessageID,
		TTL:       s.claimTTL,
	})
	if err != nil {
		return false, fmt.Errorf("failed to claim timer: %w", err)
	}
	return claimed, nil
}

func (s *service) deleteRecord(ctx context.Context, timer *models.Timer) error {
	_, err := s.timerRepo.Delete(ctx, &timerRepo.DeleteInput{
		GuildID:    timer.GuildID,
		MessageIDs: []string{timer.MessageID},
	})
	if err != nil {
		return fmt.Errorf("failed to delete timer: %w", err)
	}
	return nil
}

// canManage reports whether the actor may end or cancel the timer
func canManage(timer *models.Timer, actorID string, moderator bool) bool {
	return moderator || (actorID != "" && actorID == timer.HostID)
}

// activeTimer looks a timer up for the end and cancel commands
func (s *service) activeTimer(ctx context.Context, guildID, messageID string) (*models.Timer, error) {
	out, err := s.timerRepo.ListByGuild(ctx, &timerRepo.ListByGuildInput{GuildID: guildID})
	if err != nil {
		return nil, fmt.Errorf("failed to list timers: %w", err)
	}

	if len(out.Timers) == 0 {
		return nil, ErrNoTimers
	}

	return s.getTimer(ctx, guildID, messageID)
}

func (s *service) getTimer(ctx context.Context, guildID, messageID string) (*models.Timer, error) {
	timer, err := s.timerRepo.Get(ctx, &timerRepo.GetInput{GuildID: guildID, MessageID: messageID})
	if err != nil {
		if errors.Is(err, timerRepo.ErrTimerNotFound) {
			return nil, ErrTimerNotFound
		}
		return nil, fmt.Errorf("failed to get timer: %w", err)
	}
	return timer, nil
}

// parseDuration accepts compact durations ("1d2h", "90s") and falls back to
// natural language end times ("in 2 hours", "tomorrow at 5pm")
func (s *service) parseDuration(raw string, now time.Time) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrInvalidDuration
	}

	if d, err := str2duration.ParseDuration(raw); err == nil {
		return d, nil
	}

	end, err := s.parser.ParseDate(raw, now)
	if err != nil || end == nil {
		return 0, ErrInvalidDuration
	}

	return end.Sub(now), nil
}

func (s *service) maxDuration(ctx context.Context) (time.Duration, error) {
	fields, err := s.settingsRepo.GetAll(ctx, &settingsRepo.GetAllInput{Scope: settingsRepo.Global(cogName)})
	if err != nil {
		return 0, fmt.Errorf("failed to get timer settings: %w", err)
	}

	if raw, ok := fields[fieldMaxDuration]; ok {
		if seconds, err := strconv.ParseInt(raw, 10, 64); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second, nil
		}
	}

	return DefaultMaxDuration, nil
}

func (s *service) guildSettings(ctx context.Context, guildID string) (*models.TimerSettings, error) {
	fields, err := s.settingsRepo.GetAll(ctx, &settingsRepo.GetAllInput{Scope: settingsRepo.Guild(cogName, guildID)})
	if err != nil {
		return nil, fmt.Errorf("failed to get timer settings: %w", err)
	}

	settings := &models.TimerSettings{
		StartedColour: models.ButtonColourGreen,
		EndedColour:   models.ButtonColourGrey,
		NotifyMembers: true,
		Emoji:         DefaultEmoji,
	}

	if c, ok := models.ParseButtonColour(fields[fieldStartedColour]); ok {
		settings.StartedColour = c
	}
	if c, ok := models.ParseButtonColour(fields[fieldEndedColour]); ok {
		settings.EndedColour = c
	}
	if v, err := strconv.ParseBool(fields[fieldNotify]); err == nil {
		settings.NotifyMembers = v
	}
	if v := fields[fieldEmoji]; v != "" {
		settings.Emoji = v
	}

	return settings, nil
}
