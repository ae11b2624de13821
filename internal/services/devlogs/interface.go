package devlogs

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/noobcogs/internal/services/devlogs Service

// Service logs owner-only developer commands to a channel and an archive
type Service interface {
	// OnCommandComplete logs a finished command when it is watched and run by an owner
	OnCommandComplete(ctx context.Context, input *OnCommandCompleteInput) (*OnCommandCompleteOutput, error)

	// IsOwner reports whether a user is a bot owner
	IsOwner(userID string) bool

	// SetChannel changes the log channel; empty clears it
	SetChannel(ctx context.Context, input *SetChannelInput) error

	// BypassAdd stops logging a user's commands
	BypassAdd(ctx context.Context, input *BypassInput) error

	// BypassRemove resumes logging a user's commands
	BypassRemove(ctx context.Context, input *BypassInput) error

	// BypassList renders the bypassed users
	BypassList(ctx context.Context) (*BypassListOutput, error)

	// Watch starts logging a command
	Watch(ctx context.Context, input *WatchInput) error

	// Unwatch stops logging a command
	Unwatch(ctx context.Context, input *WatchInput) error

	// History reads the archive
	History(ctx context.Context, input *HistoryInput) (*HistoryOutput, error)

	// Debug reports on the host the bot runs on
	Debug(ctx context.Context) (*SystemReport, error)

	// GetSettings returns the log channel, bypass list and watched commands
	GetSettings(ctx context.Context) (*GetSettingsOutput, error)

	// Reset drops every devlogs setting; the archive is kept
	Reset(ctx context.Context) error
}
