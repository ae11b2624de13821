package timer

import (
	"time"

	"github.com/KirkDiggler/noobcogs/internal/common/clock"
	"github.com/KirkDiggler/noobcogs/internal/gateway"
	"github.com/KirkDiggler/noobcogs/internal/models"
	settingsRepo "github.com/KirkDiggler/noobcogs/internal/repositories/settings"
	timerRepo "github.com/KirkDiggler/noobcogs/internal/repositories/timer"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const (
	// MinDuration is the shortest timer allowed
	MinDuration = 10 * time.Second

	// DefaultMaxDuration is the longest timer allowed until an owner changes it
	DefaultMaxDuration = 14 * 24 * time.Hour

	// DefaultPollInterval is how often expired timers are looked for
	DefaultPollInterval = 3 * time.Second

	// DefaultTitle is used when the host gives none
	DefaultTitle = "New Timer!"

	// DefaultEmoji decorates the notify button
	DefaultEmoji = "⏰"

	// NotifyButtonID is the custom ID of every timer's opt-in button
	NotifyButtonID = "timer:notify"
)

// Config holds configuration for the timer service
type Config struct {
	// Repository dependencies
	TimerRepo    timerRepo.Repository
	SettingsRepo settingsRepo.Repository

	// Gateway posts and edits timer messages
	Gateway gateway.Gateway

	// Service dependencies
	Clock  clock.Clock
	Logger *zap.Logger

	// PollInterval defaults to DefaultPollInterval
	PollInterval time.Duration

	// ChunkInterval paces notification chunks; defaults to 500ms
	ChunkInterval time.Duration

	// NotificationTTL is how long notification chunks stay up; defaults to 3s
	NotificationTTL time.Duration

	// ClaimTTL bounds how long a failed end action blocks a retry; defaults to 1m
	ClaimTTL time.Duration
}

// CreateTimerInput contains parameters for starting a timer
type CreateTimerInput struct {
	GuildID   string
	ChannelID string
	HostID    string

	// Duration is free text such as "1h30m", "2d" or "in 20 minutes"
	Duration string

	// Title defaults to DefaultTitle
	Title string
}

// CreateTimerOutput contains the started timer
type CreateTimerOutput struct {
	Timer *models.Timer
}

// OptInInput contains parameters for the notify button
type OptInInput struct {
	GuildID   string
	MessageID string
	UserID    string
}

// OptInOutput contains the number of members who will be notified
type OptInOutput struct {
	MemberCount int

	// Components is the relabelled button row of the timer message
	Components []discordgo.MessageComponent
}

// EndTimerInput contains parameters for ending a timer by hand
type EndTimerInput struct {
	GuildID   string
	MessageID string
	ActorID   string
	// Moderator lets the actor end timers hosted by someone else
	Moderator bool
}

// CancelTimerInput contains parameters for cancelling a timer
type CancelTimerInput struct {
	GuildID     string
	MessageID   string
	CancelledBy string
	Moderator   bool
}

// ListTimersInput contains parameters for listing timers
type ListTimersInput struct {
	GuildID string
}

// ListTimersOutput contains a guild's active timers, soonest first
type ListTimersOutput struct {
	Timers []*models.Timer
}

// HandleMessageDeleteInput contains deleted message IDs
type HandleMessageDeleteInput struct {
	GuildID    string
	MessageIDs []string
}

// GetSettingsInput contains parameters for reading settings
type GetSettingsInput struct {
	GuildID string
}

// GetSettingsOutput contains the guild's settings and the global maximum
type GetSettingsOutput struct {
	Settings    *models.TimerSettings
	MaxDuration time.Duration
}

// ButtonState selects which button colour to change
type ButtonState string

const (
	ButtonStateStarted ButtonState = "started"
	ButtonStateEnded   ButtonState = "ended"
)

// SetButtonColourInput contains parameters for changing a button colour
type SetButtonColourInput struct {
	GuildID string
	State   ButtonState

	// Colour is a colour name; empty or "reset" restores the default
	Colour string
}

// SetEmojiInput contains parameters for changing the button emoji
type SetEmojiInput struct {
	GuildID string

	// Emoji restores the default when empty
	Emoji string
}

// ToggleNotifyInput contains parameters for toggling notifications
type ToggleNotifyInput struct {
	GuildID string
}

// ToggleNotifyOutput contains the new notification state
type ToggleNotifyOutput struct {
	NotifyMembers bool
}

// SetMaxDurationInput contains parameters for changing the global maximum
type SetMaxDurationInput struct {
	// Duration is free text such as "7d"
	Duration string
}

// ResetGuildInput contains parameters for resetting a guild
type ResetGuildInput struct {
	GuildID string
}
