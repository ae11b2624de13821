package customerror

import (
	"time"

	"github.com/KirkDiggler/noobcogs/internal/common/clock"
	settingsRepo "github.com/KirkDiggler/noobcogs/internal/repositories/settings"
	"go.uber.org/zap"
)

// DefaultMessage is the template used until an owner sets one
const DefaultMessage = "`Error in command '{command}'. Check your console or logs for details.`"

// Config holds configuration for the custom error service
type Config struct {
	SettingsRepo settingsRepo.Repository
	Clock        clock.Clock
	Logger       *zap.Logger
}

// CommandContext describes the invocation that failed
type CommandContext struct {
	AuthorName string
	AuthorID   string

	GuildName string
	GuildID   string

	ChannelName string
	ChannelID   string

	// Prefix is "/" for slash commands
	Prefix string

	// Command is the qualified command name, e.g. "timer start"
	Command string

	MessageContent string
	MessageID      string
	MessageJumpURL string

	Err error
}

// ReportInput contains the failed invocation
type ReportInput struct {
	Context *CommandContext
}

// ReportOutput contains the rendered reply
type ReportOutput struct {
	Content string
}

// LastErrorOutput contains the most recent failure
type LastErrorOutput struct {
	Command    string
	Error      string
	ReportedAt time.Time
}

// SetMessageInput contains parameters for changing the template
type SetMessageInput struct {
	Message string
}

// GetSettingsInput contains the context a preview is rendered against
type GetSettingsInput struct {
	Preview *CommandContext
}

// GetSettingsOutput contains the raw template and its preview
type GetSettingsOutput struct {
	Template string
	Preview  string
}
