package afk

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/noobcogs/internal/common/clock"
	"github.com/KirkDiggler/noobcogs/internal/common/format"
	"github.com/KirkDiggler/noobcogs/internal/gateway"
	"github.com/KirkDiggler/noobcogs/internal/models"
	settingsRepo "github.com/KirkDiggler/noobcogs/internal/repositories/settings"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const cogName = "afk"

// Setting fields
const (
	fieldNick        = "nick"
	fieldDeleteAfter = "delete_after"

	fieldAFK        = "afk"
	fieldSticky     = "sticky"
	fieldToggleLogs = "toggle_logs"
	fieldReason     = "reason"
	fieldSince      = "since"

	listPingLogs = "pinglogs"
)

// service implements the Service interface
type service struct {
	settingsRepo settingsRepo.Repository
	gateway      gateway.Gateway
	clock        clock.Clock
	logger       *zap.Logger
}

// New creates a new AFK service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
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

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		settingsRepo: cfg.SettingsRepo,
		gateway:      cfg.Gateway,
		clock:        cfg.Clock,
		logger:       logger,
	}, nil
}

// StartAFK marks a member as away
func (s *service) StartAFK(ctx context.Context, input *StartAFKInput) (*StartAFKOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	status, err := s.memberStatus(ctx, input.GuildID, input.UserID)
	if err != nil {
		return nil, err
	}

	if status.AFK {
		return nil, ErrAlreadyAFK
	}

	return s.startAFK(ctx, input.GuildID, input.UserID, input.Reason)
}

// EndAFK clears a member's away status
func (s *service) EndAFK(ctx context.Context, input *EndAFKInput) (*EndAFKOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return s.endAFK(ctx, input.GuildID, input.UserID)
}

// ForceAFK toggles another member's away status
func (s *service) ForceAFK(ctx context.Context, input *ForceAFKInput) (*ForceAFKOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	guild, err := s.gateway.Guild(ctx, input.GuildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild: %w", err)
	}

	target, err := s.gateway.Member(ctx, input.GuildID, input.TargetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	switch {
	case input.TargetID == guild.OwnerID:
		return nil, ErrForceOwner
	case input.TargetID == input.ModeratorID:
		return nil, ErrForceSelf
	case target.User != nil && target.User.Bot:
		return nil, ErrForceBot
	}

	if input.ModeratorID != guild.OwnerID {
		moderator, err := s.gateway.Member(ctx, input.GuildID, input.ModeratorID)
		if err != nil {
			return nil, fmt.Errorf("failed to get member: %w", err)
		}
		if gateway.TopRolePosition(guild, target) >= gateway.TopRolePosition(guild, moderator) {
			return nil, ErrForceHierarchy
		}
	}

	status, err := s.memberStatus(ctx, input.GuildID, input.TargetID)
	if err != nil {
		return nil, err
	}

	out := &ForceAFKOutput{Name: userName(target)}

	if status.AFK {
		ended, err := s.endAFK(ctx, input.GuildID, input.TargetID)
		if err != nil {
			return nil, err
		}
		out.NickWarning = ended.NickWarning
		out.PingPages = ended.PingPages
		return out, nil
	}

	started, err := s.startAFK(ctx, input.GuildID, input.TargetID, input.Reason)
	if err != nil {
		return nil, err
	}
	out.Added = true
	out.NickWarning = started.NickWarning
	return out, nil
}

// HandleMessage welcomes back a returning author and logs pings of away members
func (s *service) HandleMessage(ctx context.Context, input *HandleMessageInput) (*HandleMessageOutput, error) {
	out := &HandleMessageOutput{}
	if input == nil || input.GuildID == "" || input.AuthorBot || input.WebhookID != "" {
		return out, nil
	}

	author, err := s.memberStatus(ctx, input.GuildID, input.AuthorID)
	if err != nil {
		return nil, err
	}

	if author.AFK && !author.Sticky {
		ended, err := s.endAFK(ctx, input.GuildID, input.AuthorID)
		if err != nil {
			return nil, err
		}
		out.WelcomeBack = fmt.Sprintf("Welcome back %s! I have removed your AFK status.", input.AuthorName)
		out.Returned = ended
	}

	if len(input.Mentions) == 0 {
		return out, nil
	}

	settings, err := s.guildSettings(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	seen := make(map[string]bool, len(input.Mentions))
	for _, mention := range input.Mentions {
		if mention.UserID == input.AuthorID || seen[mention.UserID] {
			continue
		}
		seen[mention.UserID] = true

		status, err := s.memberStatus(ctx, input.GuildID, mention.UserID)
		if err != nil {
			return nil, err
		}
		if !status.AFK {
			continue
		}

		if status.ToggleLogs {
			entry := fmt.Sprintf("` - ` %s [pinged you in](%s) %s %s.\n**Message:** %s",
				gateway.Mention(input.AuthorID),
				models.JumpURL(input.GuildID, input.ChannelID, input.MessageID),
				gateway.ChannelMention(input.ChannelID),
				format.Timestamp(now, format.StyleRelative),
				input.Content,
			)
			err := s.settingsRepo.Append(ctx, &settingsRepo.AppendInput{
				Scope: settingsRepo.Member(cogName, input.GuildID, mention.UserID),
				List:  listPingLogs,
				Value: entry,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to log ping: %w", err)
			}
		}

		out.Notices = append(out.Notices, PingNotice{
			UserID:      mention.UserID,
			Reason:      status.Reason,
			DeleteAfter: settings.DeleteAfter,
		})
	}

	return out, nil
}

// HandleMemberRemove forgets a member who left
func (s *service) HandleMemberRemove(ctx context.Context, input *MemberInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	return s.settingsRepo.Clear(ctx, &settingsRepo.ClearInput{
		Scope: settingsRepo.Member(cogName, input.GuildID, input.UserID),
	})
}

// ToggleSticky flips the member's sticky flag and returns the new value
func (s *service) ToggleSticky(ctx context.Context, input *MemberInput) (bool, error) {
	if input == nil {
		return false, errors.New("input cannot be nil")
	}

	status, err := s.memberStatus(ctx, input.GuildID, input.UserID)
	if err != nil {
		return false, err
	}

	return s.setFlag(ctx, settingsRepo.Member(cogName, input.GuildID, input.UserID), fieldSticky, !status.Sticky)
}

// ToggleLogs flips the member's ping logging and returns the new value
func (s *service) ToggleLogs(ctx context.Context, input *MemberInput) (bool, error) {
	if input == nil {
		return false, errors.New("input cannot be nil")
	}

	status, err := s.memberStatus(ctx, input.GuildID, input.UserID)
	if err != nil {
		return false, err
	}

	return s.setFlag(ctx, settingsRepo.Member(cogName, input.GuildID, input.UserID), fieldToggleLogs, !status.ToggleLogs)
}

// ToggleNick flips the guild's nickname prefixing and returns the new value
func (s *service) ToggleNick(ctx context.Context, input *GuildInput) (bool, error) {
	if input == nil {
		return false, errors.New("input cannot be nil")
	}

	settings, err := s.guildSettings(ctx, input.GuildID)
	if err != nil {
		return false, err
	}

	return s.setFlag(ctx, settingsRepo.Guild(cogName, input.GuildID), fieldNick, !settings.Nick)
}

// SetDeleteAfter changes the notice lifetime; 0 disables deletion
func (s *service) SetDeleteAfter(ctx context.Context, input *SetDeleteAfterInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if input.Seconds > MaxDeleteAfter {
		return ErrDeleteAfterTooLong
	}

	seconds := input.Seconds
	if seconds < 0 {
		seconds = 0
	}

	return s.settingsRepo.Set(ctx, &settingsRepo.SetInput{
		Scope:  settingsRepo.Guild(cogName, input.GuildID),
		Fields: map[string]string{fieldDeleteAfter: strconv.Itoa(seconds)},
	})
}

// GetSettings returns a member's status and the guild's settings
func (s *service) GetSettings(ctx context.Context, input *MemberInput) (*GetSettingsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	status, err := s.memberStatus(ctx, input.GuildID, input.UserID)
	if err != nil {
		return nil, err
	}

	settings, err := s.guildSettings(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	return &GetSettingsOutput{Status: status, Settings: settings}, nil
}

// ResetMember drops a member's AFK state and preferences
func (s *service) ResetMember(ctx context.Context, input *MemberInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	return s.settingsRepo.Clear(ctx, &settingsRepo.ClearInput{
		Scope: settingsRepo.Member(cogName, input.GuildID, input.UserID),
	})
}

// ResetCog drops all AFK data
func (s *service) ResetCog(ctx context.Context) error {
	return s.settingsRepo.ClearCog(ctx, &settingsRepo.ClearCogInput{Cog: cogName})
}

func (s *service) startAFK(ctx context.Context, guildID, userID, reason string) (*StartAFKOutput, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultReason
	}

	now := s.clock.Now()
	err := s.settingsRepo.Set(ctx, &settingsRepo.SetInput{
		Scope: settingsRepo.Member(cogName, guildID, userID),
		Fields: map[string]string{
			fieldAFK: "true",
			fieldReason: fmt.Sprintf("%s is currently AFK since %s.\n\n**Reason:**\n%s",
				gateway.Mention(userID), format.Timestamp(now, format.StyleRelative), reason),
			fieldSince: strconv.FormatInt(now.Unix(), 10),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save AFK status: %w", err)
	}

	settings, err := s.guildSettings(ctx, guildID)
	if err != nil {
		return nil, err
	}

	out := &StartAFKOutput{}
	if !settings.Nick {
		return out, nil
	}

	member, err := s.gateway.Member(ctx, guildID, userID)
	if err != nil {
		s.logger.Warn("failed to get member for nick change", zap.String("guild_id", guildID), zap.Error(err))
		return out, nil
	}

	display := gateway.DisplayName(member)
	if strings.HasPrefix(display, NickPrefix) {
		return out, nil
	}

	out.NickWarning = s.setNick(ctx, guildID, userID, format.Truncate(NickPrefix+display, MaxNickLength))
	return out, nil
}

func (s *service) endAFK(ctx context.Context, guildID, userID string) (*EndAFKOutput, error) {
	scope := settingsRepo.Member(cogName, guildID, userID)

	if _, err := s.settingsRepo.DeleteFields(ctx, &settingsRepo.DeleteFieldsInput{
		Scope:  scope,
		Fields: []string{fieldAFK, fieldReason, fieldSince},
	}); err != nil {
		return nil, fmt.Errorf("failed to clear AFK status: %w", err)
	}

	status, err := s.memberStatus(ctx, guildID, userID)
	if err != nil {
		return nil, err
	}

	logs, err := s.settingsRepo.DrainList(ctx, &settingsRepo.GetListInput{Scope: scope, List: listPingLogs})
	if err != nil {
		return nil, fmt.Errorf("failed to read ping logs: %w", err)
	}

	out := &EndAFKOutput{}
	if status.ToggleLogs {
		out.PingPages = gateway.PagifyLines(logs, "\n", PingLogPageLength)
	}

	member, err := s.gateway.Member(ctx, guildID, userID)
	if err != nil {
		s.logger.Warn("failed to get returning member", zap.String("guild_id", guildID), zap.Error(err))
		return out, nil
	}
	out.Name = userName(member)

	settings, err := s.guildSettings(ctx, guildID)
	if err != nil {
		return nil, err
	}

	display := gateway.DisplayName(member)
	if settings.Nick && strings.HasPrefix(display, strings.TrimSpace(NickPrefix)) {
		nick := strings.TrimSpace(strings.TrimPrefix(display, strings.TrimSpace(NickPrefix)))
		out.NickWarning = s.setNick(ctx, guildID, userID, nick)
	}

	return out, nil
}

// setNick changes a nickname and returns a warning for the member when it fails
func (s *service) setNick(ctx context.Context, guildID, userID, nick string) string {
	err := s.gateway.SetNickname(ctx, guildID, userID, nick)
	if err == nil {
		return ""
	}

	s.logger.Warn("failed to change nickname",
		zap.String("guild_id", guildID),
		zap.String("user_id", userID),
		zap.Error(err),
	)

	guild, gerr := s.gateway.Guild(ctx, guildID)
	if gerr == nil && guild.OwnerID == userID {
		return NickWarningOwner
	}
	return NickWarningHierarchy
}

func (s *service) setFlag(ctx context.Context, scope settingsRepo.Scope, field string, value bool) (bool, error) {
	err := s.settingsRepo.Set(ctx, &settingsRepo.SetInput{
		Scope:  scope,
		Fields: map[string]string{field: strconv.FormatBool(value)},
	})
	if err != nil {
		return false, err
	}
	return value, nil
}

func (s *service) memberStatus(ctx context.Context, guildID, userID string) (*models.AFKStatus, error) {
	fields, err := s.settingsRepo.GetAll(ctx, &settingsRepo.GetAllInput{
		Scope: settingsRepo.Member(cogName, guildID, userID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get AFK status: %w", err)
	}

	status := &models.AFKStatus{
		AFK:        parseBool(fields[fieldAFK], false),
		Sticky:     parseBool(fields[fieldSticky], false),
		ToggleLogs: parseBool(fields[fieldToggleLogs], true),
		Reason:     fields[fieldReason],
	}
	status.Since, _ = strconv.ParseInt(fields[fieldSince], 10, 64)

	return status, nil
}

func (s *service) guildSettings(ctx context.Context, guildID string) (*models.AFKSettings, error) {
	fields, err := s.settingsRepo.GetAll(ctx, &settingsRepo.GetAllInput{
		Scope: settingsRepo.Guild(cogName, guildID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get AFK settings: %w", err)
	}

	settings := &models.AFKSettings{
		Nick:        parseBool(fields[fieldNick], true),
		DeleteAfter: DefaultDeleteAfter,
	}
	if v, err := strconv.Atoi(fields[fieldDeleteAfter]); err == nil {
		settings.DeleteAfter = v
	}

	return settings, nil
}

func parseBool(raw string, def bool) bool {
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func userName(member *discordgo.Member) string {
	if member == nil || member.User == nil {
		return ""
	}
	return member.User.Username
}
