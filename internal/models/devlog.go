package models

import "time"

// DevLogEntry is one archived owner command invocation
type DevLogEntry struct {
	ID        int64     `db:"id"`
	Command   string    `db:"command"`
	Content   string    `db:"content"`
	AuthorID  string    `db:"author_id"`
	GuildID   string    `db:"guild_id"`
	ChannelID string    `db:"channel_id"`
	JumpURL   string    `db:"jump_url"`
	CreatedAt time.Time `db:"created_at"`
}

// DevLogSettings is the global devlogs configuration
type DevLogSettings struct {
	ChannelID string
	Bypass    []string
	Watched   []string
}
