package models

import (
	"time"
)

// ViewSession is an interaction-scoped UI session such as a cookie clicker
// or a press F prompt
type ViewSession struct {
	// ID is the unique identifier carried in the component custom ID
	ID string `json:"id"`

	// Kind names the cog that owns the session
	Kind string `json:"kind"`

	// GuildID is the Discord server/guild this session belongs to
	GuildID string `json:"guild_id"`

	// ChannelID is where the session message was posted
	ChannelID string `json:"channel_id"`

	// MessageID is the session message, set once it has been sent
	MessageID string `json:"message_id,omitempty"`

	// OwnerID is the user who opened the session
	OwnerID string `json:"owner_id"`

	// Subject is what the session is about (press F target)
	Subject string `json:"subject,omitempty"`

	// Count is the number of accepted interactions so far
	Count int64 `json:"-"`

	// Participants tracks who has interacted, for sessions that only count once per user
	Participants []string `json:"-"`

	// CreatedAt is when the session was created
	CreatedAt time.Time `json:"created_at"`
}
