package rolecolour

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/noobcogs/internal/colour"
	"github.com/KirkDiggler/noobcogs/internal/gateway"
	"github.com/KirkDiggler/noobcogs/internal/models"
	settingsRepo "github.com/KirkDiggler/noobcogs/internal/repositories/settings"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const cogName = "randomcolourrole"

// Setting fields
const (
	fieldRole   = "role"
	fieldStatus = "status"
)

// service implements the Service interface
type service struct {
	settingsRepo settingsRepo.Repository
	gateway      gateway.Gateway
	picker       colour.Picker
	logger       *zap.Logger

	interval    time.Duration
	guildPacing time.Duration
}

// New creates a new random colour role service
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

	if cfg.Picker == nil {
		return nil, ErrNilPicker
	}

	s := &service{
		settingsRepo: cfg.SettingsRepo,
		gateway:      cfg.Gateway,
		picker:       cfg.Picker,
		logger:       cfg.Logger,
		interval:     cfg.Interval,
		guildPacing:  cfg.GuildPacing,
	}

	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.interval <= 0 {
		s.interval = DefaultInterval
	}
	if s.guildPacing <= 0 {
		s.guildPacing = DefaultGuildPacing
	}

	return s, nil
}

// Run recolours roles right away and then every interval
func (s *service) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("random colour role loop started", zap.Duration("interval", s.interval))

	for {
		if err := s.Cycle(ctx); err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Error("random colour role cycle failed", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			s.logger.Info("random colour role loop stopped")
			return
		case <-ticker.C:
		}
	}
}

// Cycle recolours the role of every enabled guild, one guild per pacing interval.
// Failures in one guild never stop the others.
func (s *service) Cycle(ctx context.Context) error {
	guilds, err := s.settingsRepo.ListGuilds(ctx, &settingsRepo.ListGuildsInput{Cog: cogName})
	if err != nil {
		return fmt.Errorf("failed to list guilds: %w", err)
	}

	limiter := rate.NewLimiter(rate.Every(s.guildPacing), 1)
	for _, guildID := range guilds {
		settings, err := s.guildSettings(ctx, guildID)
		if err != nil {
			s.logger.Warn("failed to get random colour role settings", zap.String("guild_id", guildID), zap.Error(err))
			continue
		}

		if !settings.Enabled || settings.RoleID == "" {
			continue
		}

		if err := limiter.Wait(ctx); err != nil {
			return err
		}

		if err := s.recolour(ctx, guildID, settings.RoleID); err != nil {
			s.logger.Warn("failed to recolour role",
				zap.String("guild_id", guildID),
				zap.String("role_id", settings.RoleID),
				zap.Error(err),
			)
		}
	}

	return nil
}

func (s *service) recolour(ctx context.Context, guildID, roleID string) error {
	guild, err := s.gateway.Guild(ctx, guildID)
	if err != nil {
		return fmt.Errorf("failed to get guild: %w", err)
	}

	role := gateway.FindRole(guild, roleID)
	if role == nil {
		return ErrRoleNotFound
	}

	return s.gateway.EditRoleColour(ctx, guildID, roleID, s.picker.Pick(role.Color))
}

// SetRole stores the role to recolour once it is below the bot's top role
func (s *service) SetRole(ctx context.Context, input *SetRoleInput) (*SetRoleOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	scope := settingsRepo.Guild(cogName, input.GuildID)

	roleID := strings.TrimSpace(input.RoleID)
	if roleID == "" {
		if _, err := s.settingsRepo.DeleteFields(ctx, &settingsRepo.DeleteFieldsInput{Scope: scope, Fields: []string{fieldRole}}); err != nil {
			return nil, err
		}
		return &SetRoleOutput{}, nil
	}

	guild, err := s.gateway.Guild(ctx, input.GuildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild: %w", err)
	}

	role := gateway.FindRole(guild, roleID)
	if role == nil {
		return nil, ErrRoleNotFound
	}

	above, err := s.aboveBot(ctx, guild, role)
	if err != nil {
		return nil, err
	}
	if above {
		return nil, ErrRoleTooHigh
	}

	err = s.settingsRepo.Set(ctx, &settingsRepo.SetInput{
		Scope:  scope,
		Fields: map[string]string{fieldRole: roleID},
	})
	if err != nil {
		return nil, err
	}

	return &SetRoleOutput{Role: role}, nil
}

// SetStatus enables or disables recolouring in a guild
func (s *service) SetStatus(ctx context.Context, input *SetStatusInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	return s.settingsRepo.Set(ctx, &settingsRepo.SetInput{
		Scope:  settingsRepo.Guild(cogName, input.GuildID),
		Fields: map[string]string{fieldStatus: strconv.FormatBool(input.Enabled)},
	})
}

// GetSettings returns the guild's settings and warns about anything that stops recolouring
func (s *service) GetSettings(ctx context.Context, input *GetSettingsInput) (*GetSettingsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	settings, err := s.guildSettings(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	out := &GetSettingsOutput{Settings: settings}

	guild, err := s.gateway.Guild(ctx, input.GuildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild: %w", err)
	}

	bot, err := s.gateway.Member(ctx, input.GuildID, s.gateway.BotUserID())
	if err != nil {
		return nil, fmt.Errorf("failed to get bot member: %w", err)
	}

	if !canManageRoles(guild, bot) {
		out.Warnings = append(out.Warnings, WarningNoPermission)
	}

	if settings.RoleID != "" {
		out.Role = gateway.FindRole(guild, settings.RoleID)
		switch {
		case out.Role == nil:
			out.Warnings = append(out.Warnings, WarningRoleMissing)
		case out.Role.Position >= gateway.TopRolePosition(guild, bot):
			out.Warnings = append(out.Warnings, WarningRoleTooHigh)
		}
	}

	if !settings.Enabled {
		out.Warnings = append(out.Warnings, WarningDisabled)
	}

	return out, nil
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

func (s *service) aboveBot(ctx context.Context, guild *discordgo.Guild, role *discordgo.Role) (bool, error) {
	bot, err := s.gateway.Member(ctx, guild.ID, s.gateway.BotUserID())
	if err != nil {
		return false, fmt.Errorf("failed to get bot member: %w", err)
	}

	return role.Position >= gateway.TopRolePosition(guild, bot), nil
}

func (s *service) guildSettings(ctx context.Context, guildID string) (*models.RoleColourSettings, error) {
	fields, err := s.settingsRepo.GetAll(ctx, &settingsRepo.GetAllInput{Scope: settingsRepo.Guild(cogName, guildID)})
	if err != nil {
		return nil, fmt.Errorf("failed to get random colour role settings: %w", err)
	}

	settings := &models.RoleColourSettings{RoleID: fields[fieldRole]}
	if v, err := strconv.ParseBool(fields[fieldStatus]); err == nil {
		settings.Enabled = v
	}

	return settings, nil
}

// canManageRoles reports whether any of the member's roles, or @everyone, grants Manage Roles
func canManageRoles(guild *discordgo.Guild, member *discordgo.Member) bool {
	const wanted = discordgo.PermissionManageRoles | discordgo.PermissionAdministrator

	if guild.OwnerID != "" && member.User != nil && guild.OwnerID == member.User.ID {
		return true
	}

	for _, role := range guild.Roles {
		if role.ID != guild.ID && !slices.Contains(member.Roles, role.ID) {
			continue
		}
		if role.Permissions&wanted != 0 {
			return true
		}
	}
	return false
}
