package cookieclicker

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/noobcogs/internal/common/clock"
	"github.com/KirkDiggler/noobcogs/internal/common/format"
	"github.com/KirkDiggler/noobcogs/internal/common/timeout"
	"github.com/KirkDiggler/noobcogs/internal/common/uuid"
	"github.com/KirkDiggler/noobcogs/internal/gateway"
	"github.com/KirkDiggler/noobcogs/internal/models"
	leaderboardRepo "github.com/KirkDiggler/noobcogs/internal/repositories/leaderboard"
	sessionRepo "github.com/KirkDiggler/noobcogs/internal/repositories/session"
	settingsRepo "github.com/KirkDiggler/noobcogs/internal/repositories/settings"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const cogName = "cookieclicker"

// Setting fields
const (
	fieldEmoji        = "emoji"
	fieldButtonColour = "button_colour"
)

// sessions outlive their timeout in the store so an expiry can still find the message
const sessionGrace = time.Minute

const leaderboardPageLength = 2000

// service implements the Service interface
type service struct {
	settingsRepo    settingsRepo.Repository
	leaderboardRepo leaderboardRepo.Repository
	sessionRepo     sessionRepo.Repository
	gateway         gateway.Gateway
	clock           clock.Clock
	uuid            uuid.UUID
	logger          *zap.Logger

	sessionTimeout time.Duration
	clickLimit     rate.Limit
	clickBurst     int

	timeouts *timeout.Scheduler

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// New creates a new cookie clicker service
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

	if cfg.LeaderboardRepo == nil {
		return nil, ErrNilLeaderboardRepo
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

	s := &service{
		settingsRepo:    cfg.SettingsRepo,
		leaderboardRepo: cfg.LeaderboardRepo,
		sessionRepo:     cfg.SessionRepo,
		gateway:         cfg.Gateway,
		clock:           cfg.Clock,
		uuid:            cfg.UUID,
		logger:          cfg.Logger,
		sessionTimeout:  cfg.SessionTimeout,
		clickLimit:      cfg.ClickLimit,
		clickBurst:      cfg.ClickBurst,
		timeouts:        timeout.New(afterFunc),
		limiters:        make(map[string]*rate.Limiter),
	}

	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.sessionTimeout <= 0 {
		s.sessionTimeout = DefaultSessionTimeout
	}
	if s.clickLimit <= 0 {
		s.clickLimit = DefaultClickLimit
	}
	if s.clickBurst <= 0 {
		s.clickBurst = DefaultClickBurst
	}

	return s, nil
}

// Start posts a clicker and opens its session
func (s *service) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	settings, err := s.guildSettings(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	err = s.leaderboardRepo.Ensure(ctx, &leaderboardRepo.EnsureInput{
		Board:  board(input.GuildID),
		UserID: input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add member to leaderboard: %w", err)
	}

	session := &models.ViewSession{
		ID:        s.uuid.NewUUID(),
		Kind:      cogName,
		GuildID:   input.GuildID,
		ChannelID: input.ChannelID,
		OwnerID:   input.UserID,
		CreatedAt: s.clock.Now(),
	}

	err = s.sessionRepo.Create(ctx, &sessionRepo.CreateInput{
		Session: session,
		TTL:     s.sessionTimeout + sessionGrace,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	msg, err := s.gateway.SendMessage(ctx, input.ChannelID, &discordgo.MessageSend{
		Components: clickComponents(session.ID, settings, 0, false),
	})
	if err != nil {
		s.forget(ctx, session.ID)
		return nil, fmt.Errorf("failed to post cookie clicker: %w", err)
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

	s.scheduleExpiry(session.ID)

	return &StartOutput{Session: session}, nil
}

// Click counts a click by the session owner
func (s *service) Click(ctx context.Context, input *ClickInput) (*ClickOutput, error) {
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

	if session.OwnerID != input.UserID {
		return nil, ErrNotYourClicker
	}

	if !s.limiter(session.ID).Allow() {
		return nil, ErrClickingTooFast
	}

	count, err := s.sessionRepo.Incr(ctx, &sessionRepo.IncrInput{
		ID:  session.ID,
		TTL: s.sessionTimeout + sessionGrace,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionEnded
		}
		return nil, fmt.Errorf("failed to count click: %w", err)
	}

	score, err := s.leaderboardRepo.Incr(ctx, &leaderboardRepo.IncrInput{
		Board:  board(session.GuildID),
		UserID: input.UserID,
		By:     1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update leaderboard: %w", err)
	}

	s.scheduleExpiry(session.ID)

	settings, err := s.guildSettings(ctx, session.GuildID)
	if err != nil {
		return nil, err
	}

	return &ClickOutput{
		Count:      count,
		Score:      score,
		Components: clickComponents(session.ID, settings, count, false),
	}, nil
}

// Expire disables the clicker's button and forgets the session
func (s *service) Expire(ctx context.Context, sessionID string) error {
	s.timeouts.Cancel(sessionID)

	session, err := s.sessionRepo.Get(ctx, &sessionRepo.GetInput{ID: sessionID})
	if err != nil {
		s.dropLimiter(sessionID)
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	if session.MessageID != "" {
		settings, err := s.guildSettings(ctx, session.GuildID)
		if err != nil {
			return err
		}

		components := clickComponents(session.ID, settings, session.Count, true)
		edit := discordgo.NewMessageEdit(session.ChannelID, session.MessageID)
		edit.Components = &components
		if _, err := s.gateway.EditMessage(ctx, edit); err != nil && !gateway.IsNotFound(err) {
			s.logger.Warn("failed to disable cookie clicker",
				zap.String("session_id", sessionID),
				zap.Error(err),
			)
		}
	}

	s.forget(ctx, sessionID)
	return nil
}

// Leaderboard renders the top members of the guild
func (s *service) Leaderboard(ctx context.Context, input *LeaderboardInput) (*LeaderboardOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	top := input.Top
	if top <= 0 {
		top = DefaultLeaderboardSize
	}

	entries, err := s.leaderboardRepo.Top(ctx, &leaderboardRepo.TopInput{
		Board: board(input.GuildID),
		Limit: top,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	if len(entries) == 0 {
		return nil, ErrEmptyLeaderboard
	}

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("` %d. ` %s - **%s :cookie:**",
			entry.Rank, gateway.Mention(entry.UserID), format.Number(entry.Score)))
	}

	return &LeaderboardOutput{
		Entries: entries,
		Pages:   gateway.PagifyLines(lines, "\n", leaderboardPageLength),
	}, nil
}

// ForgetMe removes the member from the guild ranking
func (s *service) ForgetMe(ctx context.Context, input *ForgetMeInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	removed, err := s.leaderboardRepo.Remove(ctx, &leaderboardRepo.RemoveInput{
		Board:  board(input.GuildID),
		UserID: input.UserID,
	})
	if err != nil {
		return fmt.Errorf("failed to remove member from leaderboard: %w", err)
	}

	if !removed {
		return ErrNotInLeaderboard
	}

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

// Reset drops the guild's settings and ranking
func (s *service) Reset(ctx context.Context, input *ResetInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := s.settingsRepo.Clear(ctx, &settingsRepo.ClearInput{Scope: settingsRepo.Guild(cogName, input.GuildID)}); err != nil {
		return fmt.Errorf("failed to clear cookie clicker settings: %w", err)
	}

	if err := s.leaderboardRepo.Clear(ctx, &leaderboardRepo.ClearInput{Board: board(input.GuildID)}); err != nil {
		return fmt.Errorf("failed to clear leaderboard: %w", err)
	}

	return nil
}

// ResetCog drops every guild's settings and ranking
func (s *service) ResetCog(ctx context.Context) error {
	if err := s.settingsRepo.ClearCog(ctx, &settingsRepo.ClearCogInput{Cog: cogName}); err != nil {
		return fmt.Errorf("failed to clear cookie clicker settings: %w", err)
	}

	if err := s.leaderboardRepo.ClearAll(ctx, &leaderboardRepo.ClearAllInput{Name: cogName}); err != nil {
		return fmt.Errorf("failed to clear leaderboards: %w", err)
	}

	return nil
}

// Shutdown stops pending session timeouts; their buttons stay enabled until clicked
func (s *service) Shutdown() {
	s.timeouts.Stop()
}

func (s *service) scheduleExpiry(sessionID string) {
	s.timeouts.Schedule(sessionID, s.sessionTimeout, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.Expire(ctx, sessionID); err != nil {
			s.logger.Error("failed to expire cookie clicker",
				zap.String("session_id", sessionID),
				zap.Error(err),
			)
		}
	})
}

// forget drops the session and everything tracked for it
func (s *service) forget(ctx context.Context, sessionID string) {
	s.timeouts.Cancel(sessionID)
	s.dropLimiter(sessionID)

	if err := s.sessionRepo.Delete(ctx, &sessionRepo.DeleteInput{ID: sessionID}); err != nil {
		s.logger.Warn("failed to delete cookie clicker session",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
	}
}

func (s *service) limiter(sessionID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.limiters[sessionID]
	if !ok {
		l = rate.NewLimiter(s.clickLimit, s.clickBurst)
		s.limiters[sessionID] = l
	}
	return l
}

func (s *service) dropLimiter(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.limiters, sessionID)
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

func (s *service) guildSettings(ctx context.Context, guildID string) (*models.CookieClickerSettings, error) {
	fields, err := s.settingsRepo.GetAll(ctx, &settingsRepo.GetAllInput{Scope: settingsRepo.Guild(cogName, guildID)})
	if err != nil {
		return nil, fmt.Errorf("failed to get cookie clicker settings: %w", err)
	}

	settings := &models.CookieClickerSettings{
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

func board(guildID string) leaderboardRepo.Board {
	return leaderboardRepo.Board{Name: cogName, GuildID: guildID}
}

// clickComponents builds the clicker button labelled with the session count
func clickComponents(sessionID string, settings *models.CookieClickerSettings, count int64, disabled bool) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					CustomID: ClickButtonPrefix + sessionID,
					Label:    strconv.FormatInt(count, 10),
					Style:    settings.ButtonColour.Style(),
					Emoji:    gateway.ComponentEmoji(settings.Emoji),
					Disabled: disabled,
				},
			},
		},
	}
}
