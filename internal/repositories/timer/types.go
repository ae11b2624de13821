package timer

import (
	"time"

	"github.com/KirkDiggler/noobcogs/internal/models"
)

// CreateInput contains parameters for storing a new timer
type CreateInput struct {
	Timer *models.Timer
}

// GetInput contains parameters for retrieving a timer
type GetInput struct {
	GuildID   string
	MessageID string
}

// ListByGuildInput contains parameters for listing a guild's timers
type ListByGuildInput struct {
	GuildID string
}

// ListByGuildOutput contains a guild's timers ordered by deadline
type ListByGuildOutput struct {
	Timers []*models.Timer
}

// AddMemberInput contains parameters for opting a member in
type AddMemberInput struct {
	GuildID   string
	MessageID string
	UserID    string
}

// ClaimInput contains parameters for claiming the end action of a timer
type ClaimInput struct {
	GuildID   string
	MessageID string

	// TTL bounds how long a crashed claimant blocks the timer
	TTL time.Duration
}

// DeleteInput contains parameters for removing timers
type DeleteInput struct {
	GuildID    string
	MessageIDs []string
}

// DeleteGuildInput contains parameters for removing every timer of a guild
type DeleteGuildInput struct {
	GuildID string
}
