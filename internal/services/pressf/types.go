package pressf

import (
	"time"

	"github.com/KirkDiggler/noobcogs/internal/common/clock"
	"github.com/KirkDiggler/noobcogs/internal/common/uuid"
	"github.com/KirkDiggler/noobcogs/internal/gateway"
	"github.com/KirkDiggler/noobcogs/internal/models"
	sessionRepo "github.com/KirkDiggler/noobcogs/internal/repositories/session"
	settingsRepo "github.com/KirkDiggler/noobcogs/internal/repositories/settings"
	"go.uber.org/zap"
)

const (
	// DefaultEmoji decorates the button
	DefaultEmoji = "🇫"

	// DefaultButtonColour is used until a guild picks one
	DefaultButtonColour = models.ButtonColourBlurple

	// DefaultSessionDuration is how long a prompt accepts presses
	DefaultSessionDuration = 60 * time.Second

	// PressButtonPrefix starts the custom ID of every press button; the session ID follows
	PressButtonPrefix = "pressf:press:"
)

// Config holds configuration for the press F service
type Config struct {
	// Repository dependencies
	SettingsRepo settingsRepo.Repository
	SessionRepo  sessionRepo.Repository

	// Gateway posts prompts and respects
	Gateway gateway.Gateway

	// Service dependencies
	Clock  clock.Clock
	UUID   uuid.UUID
	Logger *zap.Logger

	// SessionDuration defaults to DefaultSessionDuration
	SessionDuration time.Duration
}

// StartInput contains parameters for opening a prompt
type StartInput struct {
	GuildID   string
	ChannelID string
	UserID    string

	// Thing is what respects are paid to
	Thing string
}

// StartOutput contains the opened session
type StartOutput struct {
	Session *models.ViewSession
}

// PressInput contains parameters for a press
type PressInput struct {
	SessionID string
	UserID    string

	// DisplayName is shown in the channel announcement
	DisplayName string
}

// PressOutput contains how many members have paid respects so far
type PressOutput struct {
	Count int64
}

// GetSettingsInput contains parameters for reading settings
type GetSettingsInput struct {
	GuildID string
}

// GetSettingsOutput contains the guild's settings
type GetSettingsOutput struct {
	Settings *models.PressFSettings
}

// SetEmojiInput contains parameters for changing the emoji
type SetEmojiInput struct {
	GuildID string
	Emoji   string
}

// SetButtonColourInput contains parameters for changing the colour
type SetButtonColourInput struct {
	GuildID string
	Colour  string
}

// ResetInput contains parameters for resetting a guild
type ResetInput struct {
	GuildID string
}
