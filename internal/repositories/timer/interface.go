package timer

import (
	"context"

	"github.com/KirkDiggler/noobcogs/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/noobcogs/internal/repositories/timer Repository

// Repository defines the interface for timer persistence
type Repository interface {
	// Create stores a new timer keyed by its message
	Create(ctx context.Context, input *CreateInput) error

	// Get retrieves a timer with its members
	Get(ctx context.Context, input *GetInput) (*models.Timer, error)

	// ListByGuild retrieves every timer of a guild
	ListByGuild(ctx context.Context, input *ListByGuildInput) (*ListByGuildOutput, error)

	// ListGuilds returns the guilds that have had timers
	ListGuilds(ctx context.Context) ([]string, error)

	// AddMember opts a member in and reports whether they were new
	AddMember(ctx context.Context, input *AddMemberInput) (bool, error)

	// Claim marks a timer as being ended; only the first caller gets true,
	// and only while the timer is still stored
	Claim(ctx context.Context, input *ClaimInput) (bool, error)

	// Delete removes timers and returns how many existed
	Delete(ctx context.Context, input *DeleteInput) (int64, error)

	// DeleteGuild removes every timer of a guild
	DeleteGuild(ctx context.Context, input *DeleteGuildInput) error

	// DeleteAll removes every timer of every guild
	DeleteAll(ctx context.Context) error
}
