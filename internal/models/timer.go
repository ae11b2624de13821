package models

import (
	"fmt"
	"slices"
	"time"
)

// Timer is an active countdown posted in a guild channel
type Timer struct {
	// GuildID is the guild the timer belongs to
	GuildID string `json:"-"`

	// MessageID identifies the timer message and keys the record within its guild
	MessageID string `json:"-"`

	// EndTimestamp is the deadline in Unix seconds
	EndTimestamp int64 `json:"end_timestamp"`

	// HostID is the member who created the timer
	HostID string `json:"host_id"`

	// ChannelID is the channel the timer message lives in
	ChannelID string `json:"channel_id"`

	// Title is the display string
	Title string `json:"title"`

	// Members opted in to be notified when the timer ends
	Members []string `json:"-"`
}

// EndsAt returns the deadline as a time
func (t *Timer) EndsAt() time.Time {
	return time.Unix(t.EndTimestamp, 0)
}

// Expired reports whether now is past the deadline
func (t *Timer) Expired(now time.Time) bool {
	return now.Unix() > t.EndTimestamp
}

// HasMember reports whether userID opted in
func (t *Timer) HasMember(userID string) bool {
	return slices.Contains(t.Members, userID)
}

// JumpURL links to the timer message
func (t *Timer) JumpURL() string {
	return JumpURL(t.GuildID, t.ChannelID, t.MessageID)
}

// TimerSettings is the per-guild timer configuration
type TimerSettings struct {
	StartedColour ButtonColour
	EndedColour   ButtonColour
	NotifyMembers bool
	Emoji         string
}

// JumpURL builds a message link
func JumpURL(guildID, channelID, messageID string) string {
	return fmt.Sprintf("https://discord.com/channels/%s/%s/%s", guildID, channelID, messageID)
}
