package session

import (
	"time"

	"github.com/KirkDiggler/noobcogs/internal/models"
)

// CreateInput contains parameters for storing a new session
type CreateInput struct {
	Session *models.ViewSession

	// TTL is how long the session lives without activity
	TTL time.Duration
}

// GetInput contains parameters for retrieving a session
type GetInput struct {
	ID string
}

// SetMessageInput contains parameters for attaching a message
type SetMessageInput struct {
	ID        string
	ChannelID string
	MessageID string
}

// IncrInput contains parameters for counting an interaction
type IncrInput struct {
	ID string

	// TTL is the refreshed lifetime; 0 keeps the current one
	TTL time.Duration
}

// AddParticipantInput contains parameters for recording a participant
type AddParticipantInput struct {
	ID     string
	UserID string
}

// DeleteInput contains parameters for removing a session
type DeleteInput struct {
	ID string
}

// LockInput contains parameters for taking a named lock
type LockInput struct {
	// Name identifies the guarded resource, e.g. pressf:<channel_id>
	Name string

	// Owner is stored as the lock value
	Owner string

	TTL time.Duration
}

// UnlockInput contains parameters for releasing a named lock
type UnlockInput struct {
	Name string
}
