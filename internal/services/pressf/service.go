package pressf

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/noobcogs/internal/common/clock"
	"github.com/KirkDiggler/noobcogs/internal/common/timeout"
	"github.com/KirkDiggler/noobcogs/internal/common/uuid"
	"github.com/KirkDiggler/noobcogs/internal/gateway"
	"github.com/KirkDiggler/noobcogs/internal/models"
	sessionRepo "github.com/KirkDiggler/noobcogs/internal/repositories/session"
	settingsRepo "github.com/KirkDiggler/noobcogs/internal/repositories/settings"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const cogName = "pressf"

// Setting fields
const (
	fieldEmoji        = "emoji"
	fieldButtonColour = "button_colour"
)

const sessionGrace = time.Minute

// service implements the Service interface
type service struct {
	settingsRepo settingsRepo.Repository
	sessionRepo  sessionRepo.Repository
	gateway      gateway.Gateway
	clock        clock.Clock
	uuid         uuid.UUID
	logger       *zap.Logger

	sessionDuration time.Duration
	timeouts        *timeout.Scheduler
}

// New creates a new press F service
func New(cfg *Config) (*service, error) {
	return newService(cfg, nil)
}

func newService(cfg *Config, afterFunc timeout.AfterFunc) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SettingsRepo == nil {
		return nil, ErrNilSettingsRepo
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.Gateway == nil {
		return nil, ErrNilGateway
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUID
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	duration := cfg.SessionDuration
	if duration <= 0 {
		duration = DefaultSessionDuration
	}

	return &service{
		settingsRepo:    cfg.SettingsRepo,
		sessionRepo:     cfg.SessionRepo,
		gateway:         cfg.Gateway,
		clock:           cfg.Clock,
		uuid:            cfg.UUID,
		logger:          logger,
		sessionDuration: duration,
		timeouts:        timeout.New(afterFunc),
	}, nil
}

// Start opens a prompt unless the channel already has one
func (s *service) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	thing := strings.TrimSpace(input.Thing)
	if thing == "" {
		return nil, ErrEmptyThing
	}

	settings, err := s.guildSettings(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	session := &models.ViewSession{
		ID:        s.uuid.NewUUID(),
		Kind:      cogName,
		GuildID:   input.GuildID,
		ChannelID: input.ChannelID,
		OwnerID:   input.UserID,
		Subject:   thing,
		CreatedAt: s.clock.Now(),
	}

	ttl := s.sessionDuration + sessionGrace

	locked, err := s.sessionRepo.Lock(ctx, &sessionRepo.LockInput{
		Name:  channelLock(input.ChannelID),
		Owner: session.ID,
		TTL:   ttl,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to lock channel: %w", err)
	}

	if !locked {
		return nil, ErrAlreadyActive
	}

	err = s.sessionRepo.Create(ctx, &sessionRepo.CreateInput{Session: session, TTL: ttl})
	if err != nil {
		s.unlock(ctx, input.ChannelID)
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	msg, err := s.gateway.SendMessage(ctx, input.ChannelID, &discordgo.MessageSend{
		Content:         fmt.Sprintf("Everyone, let's pay respects to **%s**!", thing),
		Components:      pressComponents(session.ID, settings, false),
		AllowedMentions: noMentions(),
	})
	if err != nil {
		s.forget(ctx, session)
		return nil, fmt.Errorf("failed to post press f: %w", err)
	}

	session.MessageID = msg.ID
	err = s.sessionRepo.SetMessage(ctx, &sessionRepo.SetMessageInput{
		ID:        session.ID,
		ChannelID: input.ChannelID,
		MessageID: msg.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to attach session message: %w", err)
	}

	id := session.ID
	s.timeouts.Schedule(id, s.sessionDuration, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.Expire(ctx, id); err != nil {
			s.logger.Error("failed to expire press f",
				zap.String("session_id", id),
				zap.Error(err),
			)
		}
	})

	return &StartOutput{Session: session}, nil
}

// Press pays respects for a member the first time they press
func (s *service) Press(ctx context.Context, input *PressInput) (*PressOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	session, err := s.sessionRepo.Get(ctx, &sessionRepo.GetInput{ID: input.SessionID})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionEnded
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	added, err := s.sessionRepo.AddParticipant(ctx, &sessionRepo.AddParticipantInput{
		ID:     session.ID,
		UserID: input.UserID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionEnded
		}
		return nil, fmt.Errorf("failed to add participant: %w", err)
	}

	if !added {
		return nil, ErrAlreadyPaid
	}

	count, err := s.sessionRepo.Incr(ctx, &sessionRepo.IncrInput{ID: session.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to count respects: %w", err)
	}

	_, err = s.gateway.SendMessage(ctx, session.ChannelID, &discordgo.MessageSend{
		Content:         fmt.Sprintf("**%s** has paid their respects.", input.DisplayName),
		AllowedMentions: noMentions(),
	})
	if err != nil {
		s.logger.Warn("failed to announce respects",
			zap.String("session_id", session.ID),
			zap.Error(err),
		)
	}

	return &PressOutput{Count: count}, nil
}

// Expire disables the prompt, posts how many paid respects and frees the channel
func (s *service) Expire(ctx context.Context, sessionID string) error {
	s.timeouts.Cancel(sessionID)

	session, err := s.sessionRepo.Get(ctx, &sessionRepo.GetInput{ID: sessionID})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	settings, err := s.guildSettings(ctx, session.GuildID)
	if err != nil {
		return err
	}

	if session.MessageID != "" {
		components := pressComponents(session.ID, settings, true)
		edit := discordgo.NewMessageEdit(session.ChannelID, session.MessageID)
		edit.Components = &components
		if _, err := s.gateway.EditMessage(ctx, edit); err != nil && !gateway.IsNotFound(err) {
			s.logger.Warn("failed to disable press f",
				zap.String("session_id", sessionID),
				zap.Error(err),
			)
		}
	}

	summary := fmt.Sprintf("No one has paid respects to **%s**.", session.Subject)
	if session.Count > 0 {
		summary = fmt.Sprintf("**%d** people have paid their respects to **%s**.", session.Count, session.Subject)
	}

	_, err = s.gateway.SendMessage(ctx, session.ChannelID, &discordgo.MessageSend{
		Content:         summary,
		AllowedMentions: noMentions(),
	})
	if err != nil {
		s.logger.Warn("failed to post press f summary",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
	}

	s.forget(ctx, session)
	return nil
}

// GetSettings returns the guild's settings
func (s *service) GetSettings(ctx context.Context, input *GetSettingsInput) (*GetSettingsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	settings, err := s.guildSettings(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	return &GetSettingsOutput{Settings: settings}, nil
}

// SetEmoji changes the button emoji
func (s *service) SetEmoji(ctx context.Context, input *SetEmojiInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	return s.setField(ctx, input.GuildID, fieldEmoji, strings.TrimSpace(input.Emoji))
}

// SetButtonColour changes the button colour
func (s *service) SetButtonColour(ctx context.Context, input *SetButtonColourInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	raw := strings.TrimSpace(input.Colour)
	if raw == "" || strings.EqualFold(raw, "reset") {
		return s.setField(ctx, input.GuildID, fieldButtonColour, "")
	}

	colour, ok := models.ParseButtonColour(raw)
	if !ok {
		return ErrInvalidButtonColour
	}

	return s.setField(ctx, input.GuildID, fieldButtonColour, string(colour))
}

// Reset drops the guild's settings
func (s *service) Reset(ctx context.Context, input *ResetInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	return s.settingsRepo.Clear(ctx, &settingsRepo.ClearInput{Scope: settingsRepo.Guild(cogName, input.GuildID)})
}

// ResetCog drops every guild's settings
func (s *service) ResetCog(ctx context.Context) error {
	return s.settingsRepo.ClearCog(ctx, &settingsRepo.ClearCogInput{Cog: cogName})
}

// Shutdown stops pending prompt timeouts
func (s *service) Shutdown() {
	s.timeouts.Stop()
}

func (s *service) forget(ctx context.Context, session *models.ViewSession) {
	s.timeouts.Cancel(session.ID)

	if err := s.sessionRepo.Delete(ctx, &sessionRepo.DeleteInput{ID: session.ID}); err != nil {
		s.logger.Warn("failed to delete press f session",
			zap.String("session_id", session.ID),
			zap.Error(err),
		)
	}

	s.unlock(ctx, session.ChannelID)
}

func (s *service) unlock(ctx context.Context, channelID string) {
	if err := s.sessionRepo.Unlock(ctx, &sessionRepo.UnlockInput{Name: channelLock(channelID)}); err != nil {
		s.logger.Warn("failed to unlock press f channel",
			zap.String("channel_id", channelID),
			zap.Error(err),
		)
	}
}

func (s *service) setField(ctx context.Context, guildID, field, value string) error {
	scope := settingsRepo.Guild(cogName, guildID)

	if value == "" {
		_, err := s.settingsRepo.DeleteFields(ctx, &settingsRepo.DeleteFieldsInput{Scope: scope, Fields: []string{field}})
		return err
	}

	return s.settingsRepo.Set(ctx, &settingsRepo.SetInput{
		Scope:  scope,
		Fields: map[string]string{field: value},
	})
}

func (s *service) guildSettings(ctx context.Context, guildID string) (*models.PressFSettings, error) {
	fields, err := s.settingsRepo.GetAll(ctx, &settingsRepo.GetAllInput{Scope: settingsRepo.Guild(cogName, guildID)})
	if err != nil {
		return nil, fmt.Errorf("failed to get press f settings: %w", err)
	}

	settings := &models.PressFSettings{
		Emoji:        DefaultEmoji,
		ButtonColour: DefaultButtonColour,
	}

	if v := fields[fieldEmoji]; v != "" {
		settings.Emoji = v
	}
	if c, ok := models.ParseButtonColour(fields[fieldButtonColour]); ok {
		settings.ButtonColour = c
	}

	return settings, nil
}

func channelLock(channelID string) string {
	return cogName + ":" + channelID
}

func noMentions() *discordgo.MessageAllowedMentions {
	return &discordgo.MessageAllowedMentions{Parse: []discordgo.AllowedMentionType{}}
}

func pressComponents(sessionID string, settings *models.PressFSettings, disabled bool) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					CustomID: PressButtonPrefix + sessionID,
					Style:    settings.ButtonColour.Style(),
					Emoji:    gateway.ComponentEmoji(settings.Emoji),
					Disabled: disabled,
				},
			},
		},
	}
}
