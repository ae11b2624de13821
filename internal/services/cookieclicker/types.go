package cookieclicker

import (
	"time"

	"github.com/KirkDiggler/noobcogs/internal/common/clock"
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

const (
	// DefaultEmoji decorates the click button
	DefaultEmoji = "🍪"

	// DefaultButtonColour is used until a guild picks one
	DefaultButtonColour = models.ButtonColourBlurple

	// DefaultSessionTimeout is how long a clicker stays up after the last click
	DefaultSessionTimeout = 15 * time.Second

	// DefaultLeaderboardSize is how many members Leaderboard shows without a limit
	DefaultLeaderboardSize = 10

	// ClickButtonPrefix starts the custom ID of every click button; the session ID follows
	ClickButtonPrefix = "cookie:click:"
)

// DefaultClickLimit bounds clicks per session
var DefaultClickLimit = rate.Limit(10)

// DefaultClickBurst is the click burst allowed per session
const DefaultClickBurst = 10

// Config holds configuration for the cookie clicker service
type Config struct {
	// Repository dependencies
	SettingsRepo    settingsRepo.Repository
	LeaderboardRepo leaderboardRepo.Repository
	SessionRepo     sessionRepo.Repository

	// Gateway posts and edits clicker messages
	Gateway gateway.Gateway

	// Service dependencies
	Clock  clock.Clock
	UUID   uuid.UUID
	Logger *zap.Logger

	// SessionTimeout defaults to DefaultSessionTimeout
	SessionTimeout time.Duration

	// ClickLimit and ClickBurst default to DefaultClickLimit and DefaultClickBurst
	ClickLimit rate.Limit
	ClickBurst int
}

// StartInput contains parameters for opening a clicker
type StartInput struct {
	GuildID   string
	ChannelID string
	UserID    string
}

// StartOutput contains the opened session
type StartOutput struct {
	Session *models.ViewSession
}

// ClickInput contains parameters for a click
type ClickInput struct {
	SessionID string
	GuildID   string
	UserID    string
}

// ClickOutput contains the updated button
type ClickOutput struct {
	Count      int64
	Score      int64
	Components []discordgo.MessageComponent
}

// LeaderboardInput contains parameters for rendering the ranking
type LeaderboardInput struct {
	GuildID string

	// Top defaults to DefaultLeaderboardSize
	Top int
}

// LeaderboardOutput contains the rendered ranking
type LeaderboardOutput struct {
	Entries []*models.LeaderboardEntry

	// Pages are embed descriptions
	Pages []string
}

// ForgetMeInput contains parameters for leaving the ranking
type ForgetMeInput struct {
	GuildID string
	UserID  string
}

// GetSettingsInput contains parameters for reading settings
type GetSettingsInput struct {
	GuildID string
}

// GetSettingsOutput contains the guild's settings
type GetSettingsOutput struct {
	Settings *models.CookieClickerSettings
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
