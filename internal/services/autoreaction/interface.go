package autoreaction

import (
	"context"

	"github.com/KirkDiggler/noobcogs/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/noobcogs/internal/services/autoreaction Service

// Service defines the interface for automatic reactions
type Service interface {
	// Add reacts with an emoji to every message containing a word
	Add(ctx context.Context, input *AddInput) (*models.AutoReaction, error)

	// Remove stops reacting to a word
	Remove(ctx context.Context, input *RemoveInput) error

	// List returns a guild's reactions ordered by word
	List(ctx context.Context, input *GuildInput) ([]*models.AutoReaction, error)

	// ClearRemoved drops reactions whose custom emoji left the guild
	ClearRemoved(ctx context.Context, input *GuildInput) (int, error)

	// HandleMessage reacts to a created message
	HandleMessage(ctx context.Context, input *HandleMessageInput) error

	// HandleEmojisUpdate drops reactions whose custom emoji was deleted
	HandleEmojisUpdate(ctx context.Context, input *HandleEmojisUpdateInput) error

	// ResetGuild drops a guild's reactions
	ResetGuild(ctx context.Context, input *GuildInput) error

	// ResetCog drops every guild's reactions
	ResetCog(ctx context.Context) error
}
