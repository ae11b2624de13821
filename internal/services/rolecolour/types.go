package rolecolour

import (
	"time"

	"github.com/KirkDiggler/noobcogs/internal/colour"
	"github.com/KirkDiggler/noobcogs/internal/gateway"
	"github.com/KirkDiggler/noobcogs/internal/models"
	settingsRepo "github.com/KirkDiggler/noobcogs/internal/repositories/settings"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const (
	// DefaultInterval is how often roles are recoloured
	DefaultInterval = 5 * time.Minute

	// DefaultGuildPacing spaces out role edits across guilds
	DefaultGuildPacing = 2500 * time.Millisecond
)

// Config holds configuration for the random colour role service
type Config struct {
	SettingsRepo settingsRepo.Repository

	// Gateway reads guilds and edits roles
	Gateway gateway.Gateway

	// Picker chooses the next colour
	Picker colour.Picker

	Logger *zap.Logger

	// Interval defaults to DefaultInterval
	Interval time.Duration

	// GuildPacing defaults to DefaultGuildPacing
	GuildPacing time.Duration
}

// SetRoleInput contains parameters for picking the role
type SetRoleInput struct {
	GuildID string

	// RoleID is empty to clear the role
	RoleID string
}

// SetRoleOutput contains the picked role
type SetRoleOutput struct {
	// Role is nil when the role was cleared
	Role *discordgo.Role
}

// SetStatusInput contains parameters for enabling or disabling
type SetStatusInput struct {
	GuildID string
	Enabled bool
}

// GetSettingsInput contains parameters for reading settings
type GetSettingsInput struct {
	GuildID string
}

// GetSettingsOutput contains the settings and what is wrong with them
type GetSettingsOutput struct {
	Settings *models.RoleColourSettings

	// Role is nil when none is set or it was deleted
	Role *discordgo.Role

	Warnings []string
}

// ResetInput contains parameters for resetting a guild
type ResetInput struct {
	GuildID string
}
